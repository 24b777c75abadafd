package extractor

import (
	"strings"

	"github.com/dtsgen/dtsgen/pkg/decl"
	"github.com/dtsgen/dtsgen/pkg/tsscan"
)

// parseMembers splits an interface/class body's interior text into Members.
// isClass enables class-only forms (constructor, static/abstract/visibility
// modifiers, parameter properties); interface bodies ignore those tokens if
// present (they can't occur there) and additionally recognize call/
// construct signatures, which classes can't have.
func parseMembers(body string, isClass bool) []decl.Member {
	var members []decl.Member
	for _, raw := range tsscan.SplitMembers(body) {
		text := strings.TrimSpace(raw)
		if text == "" {
			continue
		}
		m, ok := parseMember(text, isClass)
		if ok {
			members = append(members, m)
		}
	}
	return members
}

func parseMember(text string, isClass bool) (decl.Member, bool) {
	var m decl.Member

	for {
		switch {
		case isClass && hasWord(text, "static"):
			m.IsStatic = true
			_, text = peelWord(text, "static")
		case isClass && hasWord(text, "abstract"):
			m.IsAbstract = true
			_, text = peelWord(text, "abstract")
		case hasWord(text, "readonly"):
			m.IsReadonly = true
			_, text = peelWord(text, "readonly")
		case isClass && hasWord(text, "public"):
			_, text = peelWord(text, "public")
		case isClass && hasWord(text, "private"):
			m.Visibility = "private"
			_, text = peelWord(text, "private")
		case isClass && hasWord(text, "protected"):
			m.Visibility = "protected"
			_, text = peelWord(text, "protected")
		default:
			goto modsdone
		}
		text = strings.TrimLeft(text, " \t\r\n")
	}
modsdone:
	text = strings.TrimLeft(text, " \t\r\n")

	isAsync := false
	if hasWord(text, "async") {
		isAsync = true
		_, text = peelWord(text, "async")
		text = strings.TrimLeft(text, " \t\r\n")
	}

	accessor := ""
	if hasWord(text, "get") || hasWord(text, "set") {
		// Only an accessor keyword if followed by a name, not `get(): T`
		// itself being the member name (rare but legal as a method name) —
		// disambiguate by checking the next token isn't immediately '('.
		word := "get"
		if !hasWord(text, "get") {
			word = "set"
		}
		_, after := peelWord(text, word)
		trimmed := strings.TrimLeft(after, " \t\r\n")
		if !strings.HasPrefix(trimmed, "(") {
			accessor = word
			text = trimmed
		}
	}

	text = strings.TrimLeft(text, " \t\r\n")

	switch {
	case isClass && (strings.HasPrefix(text, "constructor(") || text == "constructor" || strings.HasPrefix(text, "constructor ")):
		m.Kind = MemberConstructorKind()
		_, rest := peelWord(text, "constructor")
		rest = strings.TrimLeft(rest, " \t\r\n")
		if strings.HasPrefix(rest, "(") {
			end := tsscan.MatchBracket(rest, 0)
			if end >= 0 {
				m.Parameters = parseParamList(rest[1:end])
			}
		}
		return m, true

	case !isClass && strings.HasPrefix(text, "new"):
		if ok, rest := peelWord(text, "new"); ok {
			rest = strings.TrimLeft(rest, " \t\r\n")
			generics, rest := tsscan.SplitGenerics(rest)
			rest = strings.TrimLeft(rest, " \t\r\n")
			if strings.HasPrefix(rest, "(") {
				end := tsscan.MatchBracket(rest, 0)
				if end >= 0 {
					m.Kind = decl.MemberConstructSignature
					m.Generics = generics
					m.Parameters = parseParamList(rest[1:end])
					m.ReturnType = parseSignatureReturn(rest[end+1:])
					return m, true
				}
			}
		}

	case !isClass && strings.HasPrefix(text, "("):
		end := tsscan.MatchBracket(text, 0)
		if end >= 0 {
			m.Kind = decl.MemberCallSignature
			m.Parameters = parseParamList(text[1:end])
			m.ReturnType = parseSignatureReturn(text[end+1:])
			return m, true
		}

	case !isClass && strings.HasPrefix(text, "<"):
		generics, rest := tsscan.SplitGenerics(text)
		rest = strings.TrimLeft(rest, " \t\r\n")
		if strings.HasPrefix(rest, "(") {
			end := tsscan.MatchBracket(rest, 0)
			if end >= 0 {
				m.Kind = decl.MemberCallSignature
				m.Generics = generics
				m.Parameters = parseParamList(rest[1:end])
				m.ReturnType = parseSignatureReturn(rest[end+1:])
				return m, true
			}
		}

	case strings.HasPrefix(text, "["):
		end := tsscan.MatchBracket(text, 0)
		if end < 0 {
			break
		}
		inner := text[1:end]
		rest := strings.TrimLeft(text[end+1:], " \t\r\n")
		colonIdx := tsscan.FirstTopLevelByte(inner, ':')
		if colonIdx >= 0 && isPlainIdent(strings.TrimSpace(inner[:colonIdx])) {
			m.Kind = decl.MemberIndexSignature
			m.IndexKeyName = strings.TrimSpace(inner[:colonIdx])
			m.IndexKeyType = strings.TrimSpace(inner[colonIdx+1:])
			if strings.HasPrefix(rest, ":") {
				m.Type = strings.TrimSpace(rest[1:])
			}
			return m, true
		}
		// Computed property/method key: [Symbol.iterator] etc.
		m.Key = "[" + inner + "]"
		return parseMemberAfterName(m, rest, isAsync, accessor)
	}

	name, rest := tsscan.LeadingIdentifier(text)
	if name == "" {
		return decl.Member{}, false
	}
	m.Name = name
	return parseMemberAfterName(m, rest, isAsync, accessor)
}

func parseMemberAfterName(m decl.Member, rest string, isAsync bool, accessor string) (decl.Member, bool) {
	isGenerator := false
	rest = strings.TrimLeft(rest, " \t\r\n")
	if strings.HasPrefix(rest, "*") {
		isGenerator = true
		rest = strings.TrimLeft(rest[1:], " \t\r\n")
	}
	if strings.HasPrefix(rest, "?") {
		m.IsOptional = true
		rest = strings.TrimLeft(rest[1:], " \t\r\n")
	}

	generics, rest2 := tsscan.SplitGenerics(rest)
	rest2 = strings.TrimLeft(rest2, " \t\r\n")

	if strings.HasPrefix(rest2, "(") {
		end := tsscan.MatchBracket(rest2, 0)
		if end >= 0 {
			m.Kind = decl.MemberMethod
			m.IsAsync = isAsync
			m.IsGenerator = isGenerator
			m.Generics = generics
			m.Parameters = parseParamList(rest2[1:end])
			m.ReturnType = parseSignatureReturn(rest2[end+1:])
			switch accessor {
			case "get":
				m.Kind = decl.MemberProperty
				m.Type = m.ReturnType
				m.ReturnType = ""
				m.Parameters = nil
			case "set":
				m.Kind = decl.MemberProperty
				if len(m.Parameters) > 0 {
					m.Type = m.Parameters[0].Type
				}
				m.ReturnType = ""
				m.Parameters = nil
			}
			return m, true
		}
	}

	// Property: optional `: Type`.
	m.Kind = decl.MemberProperty
	rest2 = strings.TrimLeft(rest2, " \t\r\n")
	if strings.HasPrefix(rest2, ":") {
		typ, _, _ := splitAssign(rest2[1:])
		m.Type = strings.TrimSpace(typ)
	}
	return m, true
}

// parseSignatureReturn extracts a method/signature's return-type text
// following its parameter list's closing ')', stripping a leading ':' and
// any method body a member substring may carry (see extractReturnType).
func parseSignatureReturn(s string) string {
	s = strings.TrimLeft(s, " \t\r\n")
	if !strings.HasPrefix(s, ":") {
		return ""
	}
	return strings.TrimSpace(extractReturnType(s[1:]))
}

func isPlainIdent(s string) bool {
	if s == "" {
		return false
	}
	ident, rest := tsscan.LeadingIdentifier(s)
	return ident != "" && strings.TrimSpace(rest) == ""
}

// MemberConstructorKind exists only so members.go doesn't need to import
// decl's MemberConstructor constant twice under two names; kept as a tiny
// indirection point in case constructor detection grows extra cases.
func MemberConstructorKind() decl.MemberKind { return decl.MemberConstructor }
