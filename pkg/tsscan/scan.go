// Package tsscan provides the bracket-depth-aware text scanning primitives
// the extractor uses to pick apart a declaration header (its
// generics clause, parameter list, extends/implements clauses, member list)
// without needing a full expression parser. It is a "skip-with-brace-depth"
// scanner: function bodies, initializers and the insides of type
// expressions are never evaluated, only scanned far enough to find their
// boundaries.
//
// Every function here treats string/template literals and comments as
// opaque units — a bracket character inside a string or comment never
// affects depth.
package tsscan

import (
	"strings"
	"unicode/utf8"
)

// skipUnit advances past one lexical unit starting at s[i]: a quoted
// string, a template literal (with correctly nested `${ ... }` holes), a
// comment, or a single rune. Returns the index immediately after the unit.
func skipUnit(s string, i int) int {
	n := len(s)
	if i >= n {
		return i
	}
	switch s[i] {
	case '"', '\'':
		return skipQuoted(s, i, s[i])
	case '`':
		return skipTemplate(s, i)
	case '/':
		if i+1 < n && s[i+1] == '/' {
			j := i + 2
			for j < n && s[j] != '\n' {
				j++
			}
			return j
		}
		if i+1 < n && s[i+1] == '*' {
			j := i + 2
			for j+1 < n && !(s[j] == '*' && s[j+1] == '/') {
				j++
			}
			if j+1 < n {
				return j + 2
			}
			return n
		}
		return i + 1
	default:
		_, size := utf8.DecodeRuneInString(s[i:])
		if size == 0 {
			size = 1
		}
		return i + size
	}
}

func skipQuoted(s string, i int, quote byte) int {
	n := len(s)
	j := i + 1
	for j < n {
		if s[j] == '\\' {
			j += 2
			continue
		}
		if s[j] == quote {
			return j + 1
		}
		j++
	}
	return n
}

// skipTemplate skips a full template literal, descending into `${ ... }`
// holes (which may themselves contain further template literals, strings,
// and balanced braces) and resuming template-literal mode on the matching
// close brace.
func skipTemplate(s string, i int) int {
	n := len(s)
	j := i + 1
	for j < n {
		switch {
		case s[j] == '\\':
			j += 2
		case s[j] == '`':
			return j + 1
		case s[j] == '$' && j+1 < n && s[j+1] == '{':
			j += 2
			depth := 1
			for j < n && depth > 0 {
				switch s[j] {
				case '{':
					depth++
					j++
				case '}':
					depth--
					j++
				case '"', '\'':
					j = skipQuoted(s, j, s[j])
				case '`':
					j = skipTemplate(s, j)
				case '/':
					nj := skipUnit(s, j)
					if nj == j {
						j++
					} else {
						j = nj
					}
				default:
					j++
				}
			}
		default:
			j++
		}
	}
	return n
}

var closeOf = map[byte]byte{'(': ')', '{': '}', '[': ']'}

// MatchBracket returns the index of the character matching the bracket at
// s[openIdx] (one of '(', '{', '['), or -1 if unbalanced. Strings,
// templates, and comments between the two are skipped as opaque units.
func MatchBracket(s string, openIdx int) int {
	if openIdx >= len(s) {
		return -1
	}
	open := s[openIdx]
	close, ok := closeOf[open]
	if !ok {
		return -1
	}
	depth := 0
	n := len(s)
	for i := openIdx; i < n; {
		c := s[i]
		switch {
		case c == '"' || c == '\'' || c == '`' || c == '/':
			ni := skipUnit(s, i)
			if ni == i {
				i++
			} else {
				i = ni
			}
		case c == open:
			depth++
			i++
		case c == close:
			depth--
			i++
			if depth == 0 {
				return i - 1
			}
		default:
			i++
		}
	}
	return -1
}

// MatchAngle returns the index of the '>' that closes the '<' at s[openIdx],
// using the standard heuristic of counting bare '<'/'>' characters outside
// strings/templates/comments. This is the same compromise TypeScript's own
// generic-vs-relational disambiguation makes harder to get exactly right
// without full expression parsing — acceptable here because the emitter
// never needs to evaluate what is inside a generics clause, only where it
// ends.
func MatchAngle(s string, openIdx int) int {
	if openIdx >= len(s) || s[openIdx] != '<' {
		return -1
	}
	depth := 0
	n := len(s)
	for i := openIdx; i < n; {
		c := s[i]
		switch {
		case c == '"' || c == '\'' || c == '`' || c == '/':
			ni := skipUnit(s, i)
			if ni == i {
				i++
			} else {
				i = ni
			}
		case c == '<':
			depth++
			i++
		case c == '>':
			depth--
			i++
			if depth == 0 {
				return i - 1
			}
		default:
			i++
		}
	}
	return -1
}

// isOpen/isClose classify the four bracket kinds SplitTopLevel and
// SplitMembers use for depth tracking (angle brackets included, since
// parameter lists and extends clauses both need generic-argument commas to
// not count as top-level separators).
func isOpen(c byte) bool  { return c == '(' || c == '{' || c == '[' || c == '<' }
func isClose(c byte) bool { return c == ')' || c == '}' || c == ']' || c == '>' }

// SplitTopLevel splits s on any byte in seps that occurs at bracket depth 0
// (across (){}[]<>), skipping strings/templates/comments. Empty segments
// (consecutive separators) are omitted.
func SplitTopLevel(s string, seps string) []string {
	var parts []string
	depth := 0
	start := 0
	n := len(s)
	for i := 0; i < n; {
		c := s[i]
		switch {
		case c == '"' || c == '\'' || c == '`' || c == '/':
			ni := skipUnit(s, i)
			if ni == i {
				i++
			} else {
				i = ni
			}
		case isOpen(c):
			depth++
			i++
		case isClose(c):
			if depth > 0 {
				depth--
			}
			i++
		case depth == 0 && strings.IndexByte(seps, c) >= 0:
			parts = append(parts, s[start:i])
			i++
			start = i
		default:
			i++
		}
	}
	if start <= n {
		if seg := s[start:]; strings.TrimSpace(seg) != "" || len(parts) > 0 {
			parts = append(parts, seg)
		}
	}
	return parts
}

// SplitMembers splits the inner text of an interface/class/enum body into
// one substring per member. Members are terminated by a top-level ';', ',',
// or (absent either) a newline once real content has been seen since the
// last split point — TypeScript allows bare-newline-terminated members.
func SplitMembers(s string) []string {
	var parts []string
	depth := 0
	start := 0
	sawContent := false
	n := len(s)
	flush := func(end int) {
		seg := strings.TrimSpace(s[start:end])
		if seg != "" {
			parts = append(parts, seg)
		}
	}
	for i := 0; i < n; {
		c := s[i]
		switch {
		case c == '"' || c == '\'' || c == '`' || c == '/':
			ni := skipUnit(s, i)
			if ni == i {
				i++
			} else {
				i = ni
			}
			sawContent = true
		case isOpen(c):
			depth++
			i++
			sawContent = true
		case isClose(c):
			closedToZero := c == '}' && depth == 1
			if depth > 0 {
				depth--
			}
			i++
			sawContent = true
			if closedToZero {
				// A depth-0 closing brace ends a member on its own — a
				// method/accessor body or a static block — the same
				// boundary ';'/',' mark, needed because nothing requires
				// whitespace between it and the next member.
				flush(i)
				start = i
				sawContent = false
			}
		case depth == 0 && (c == ';' || c == ','):
			flush(i)
			i++
			start = i
			sawContent = false
		case depth == 0 && c == '\n':
			if sawContent {
				flush(i)
				i++
				start = i
				sawContent = false
			} else {
				i++
			}
		default:
			if c != ' ' && c != '\t' && c != '\r' {
				sawContent = true
			}
			i++
		}
	}
	flush(n)
	return parts
}

// SplitGenerics peels a leading `<...>` generics clause (including the
// angle brackets) off s, returning it and the remaining text. Returns an
// empty clause if s does not start with '<' after leading whitespace.
func SplitGenerics(s string) (generics string, rest string) {
	trimmed := strings.TrimLeft(s, " \t\r\n")
	lead := len(s) - len(trimmed)
	if trimmed == "" || trimmed[0] != '<' {
		return "", s
	}
	end := MatchAngle(trimmed, 0)
	if end < 0 {
		return "", s
	}
	return trimmed[:end+1], s[lead+end+1:]
}

func isIdentPart(r rune) bool {
	return r == '_' || r == '$' || (r >= '0' && r <= '9') ||
		(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// FindTopLevelWord returns the byte index of the first whole-word
// occurrence of word in s at bracket depth 0, or -1. Used to split class
// headers on "extends"/"implements" without matching them inside strings,
// comments, or a generic constraint.
func FindTopLevelWord(s string, word string) int {
	depth := 0
	n := len(s)
	wn := len(word)
	for i := 0; i < n; {
		c := s[i]
		switch {
		case c == '"' || c == '\'' || c == '`' || c == '/':
			ni := skipUnit(s, i)
			if ni == i {
				i++
			} else {
				i = ni
			}
		case isOpen(c):
			depth++
			i++
		case isClose(c):
			if depth > 0 {
				depth--
			}
			i++
		case depth == 0 && i+wn <= n && s[i:i+wn] == word:
			before := byte(' ')
			if i > 0 {
				before = s[i-1]
			}
			after := byte(' ')
			if i+wn < n {
				after = s[i+wn]
			}
			if !isIdentPart(rune(before)) && !isIdentPart(rune(after)) {
				return i
			}
			i++
		default:
			i++
		}
	}
	return -1
}

// FirstTopLevelByte returns the index of the first occurrence of b at
// bracket depth 0 (across (){}[]<>), skipping strings/templates/comments,
// or -1. Used to find a function header's body-opening '{' without being
// fooled by an object-type-literal brace earlier in the return type.
func FirstTopLevelByte(s string, b byte) int {
	depth := 0
	n := len(s)
	for i := 0; i < n; {
		c := s[i]
		switch {
		case c == '"' || c == '\'' || c == '`' || c == '/':
			ni := skipUnit(s, i)
			if ni == i {
				i++
			} else {
				i = ni
			}
		case depth == 0 && c == b:
			return i
		case isOpen(c):
			depth++
			i++
		case isClose(c):
			if depth > 0 {
				depth--
			}
			i++
		default:
			i++
		}
	}
	return -1
}

// TopLevelAssignIndex returns the byte index of the top-level '=' that
// separates a variable declarator's type/binding from its initializer, or -1
// if there is none. Skips strings/templates/comments, anything inside
// brackets, and compound operators that contain '=' (==, =>, <=, >=, !=,
// +=, -=, etc.) so an arrow-function initializer's own '=>' is never
// mistaken for the declarator's assignment.
func TopLevelAssignIndex(s string) int {
	depth := 0
	n := len(s)
	for i := 0; i < n; {
		c := s[i]
		switch {
		case c == '"' || c == '\'' || c == '`' || c == '/':
			ni := skipUnit(s, i)
			if ni == i {
				i++
			} else {
				i = ni
			}
		case isOpen(c):
			depth++
			i++
		case isClose(c):
			if depth > 0 {
				depth--
			}
			i++
		case depth == 0 && c == '=':
			prev := byte(0)
			if i > 0 {
				prev = s[i-1]
			}
			next := byte(0)
			if i+1 < n {
				next = s[i+1]
			}
			if next == '=' || next == '>' || isCompoundAssignLead(prev) {
				i++
				continue
			}
			return i
		default:
			i++
		}
	}
	return -1
}

func isCompoundAssignLead(b byte) bool {
	switch b {
	case '=', '!', '<', '>', '+', '-', '*', '/', '%', '&', '|', '^':
		return true
	}
	return false
}

// Segment is one statement substring returned by SplitStatements, with its
// byte offset into the original string (for recomputing absolute spans).
type Segment struct {
	Text  string
	Start int
}

// SplitStatements splits the body of a namespace/module/global-augmentation
// block into top-level statement substrings. A statement ends at a
// depth-0 ';', or — for statements that open a depth-0 '{' block (function,
// class, interface, enum, namespace/module, declare-global bodies) — right
// after that block's matching '}' (plus one optional trailing ';').
// Comments between statements are skipped and not returned as segments;
// nested declarations do not carry trivia.
func SplitStatements(s string) []Segment {
	var segs []Segment
	n := len(s)
	i := 0
	for i < n {
		for i < n && (s[i] == ' ' || s[i] == '\t' || s[i] == '\r' || s[i] == '\n') {
			i++
		}
		if i < n && (s[i] == '/' && i+1 < n && (s[i+1] == '/' || s[i+1] == '*')) {
			i = skipUnit(s, i)
			continue
		}
		if i >= n {
			break
		}
		start := i
		depth := 0
		sawBlock := false
		for i < n {
			c := s[i]
			switch {
			case c == '"' || c == '\'' || c == '`' || c == '/':
				ni := skipUnit(s, i)
				if ni == i {
					i++
				} else {
					i = ni
				}
			case c == '(' || c == '{' || c == '[':
				if c == '{' {
					sawBlock = true
				}
				depth++
				i++
			case c == ')' || c == '}' || c == ']':
				if depth > 0 {
					depth--
				}
				i++
				if depth == 0 && c == '}' && sawBlock {
					goto closed
				}
			case depth == 0 && c == ';':
				i++
				goto closed
			default:
				i++
			}
		}
	closed:
		if depth == 0 {
			j := i
			for j < n && (s[j] == ' ' || s[j] == '\t' || s[j] == '\r') {
				j++
			}
			if j < n && s[j] == ';' {
				i = j + 1
			}
		}
		segs = append(segs, Segment{Text: s[start:i], Start: start})
	}
	return segs
}

// LeadingIdentifier reads the identifier at the start of s (after trimming
// leading whitespace), returning it and the remainder of s.
func LeadingIdentifier(s string) (ident string, rest string) {
	trimmed := strings.TrimLeft(s, " \t\r\n")
	lead := len(s) - len(trimmed)
	i := 0
	for i < len(trimmed) {
		r, size := utf8.DecodeRuneInString(trimmed[i:])
		if !isIdentPart(r) {
			break
		}
		i += size
	}
	return trimmed[:i], s[lead+i:]
}
