package extractor

import (
	"regexp"
	"strings"

	"github.com/dtsgen/dtsgen/pkg/decl"
)

// identifierPattern matches a capitalized identifier — a crude "looks like
// a type reference" heuristic. It is deliberately over-inclusive: a
// capitalized word found inside a template-literal type's string portion
// still counts as a reference (kept, not a bug — see DESIGN.md).
var identifierPattern = regexp.MustCompile(`[A-Z][A-Za-z0-9_]*`)

// DefaultBuiltinTypeNames is the closed allow-list of built-in
// TypeScript/JavaScript type names the reference closure never treats as a
// local declaration to pull in.
func DefaultBuiltinTypeNames() map[string]bool {
	names := []string{
		"Array", "Promise", "Record", "Partial", "Required", "Pick", "Omit",
		"Exclude", "Extract", "NonNullable", "ReturnType", "Parameters",
		"ConstructorParameters", "InstanceType", "ThisType", "Function",
		"Date", "RegExp", "Error", "Map", "Set", "WeakMap", "WeakSet",
	}
	m := make(map[string]bool, len(names))
	for _, n := range names {
		m[n] = true
	}
	return m
}

// DefaultSingleLetterGenerics is the closed list of common single-letter
// generic parameter names, also never treated as a closure target.
func DefaultSingleLetterGenerics() map[string]bool {
	letters := "TKVURPEABCDFGHIJLMNOQSWXYZ"
	m := make(map[string]bool, len(letters))
	for _, r := range letters {
		m[string(r)] = true
	}
	return m
}

// CloseReferences computes the reference closure over all extracted
// declarations: starting from the surfaced set (exported declarations, plus
// ambient modules/global augmentations, which are always surfaced), it scans
// each surfaced declaration's type-bearing text once for capitalized
// identifiers and pulls in any matching non-exported top-level
// interface/type-alias/class/enum declaration. The search is non-recursive —
// a newly-pulled-in declaration's own references are not themselves scanned
// — closure is computed in a single pass over the originally-surfaced set.
//
// excluded, when non-nil, additionally excludes names in it from ever being
// treated as a reference (e.g. a caller that always uses T/U/K/V for generic
// parameters can pass that set to avoid false pulls — a caller-supplied
// parameter rather than a hidden default).
func CloseReferences(all []decl.Declaration, builtins map[string]bool, excluded map[string]bool) []decl.Declaration {
	byName := map[string]int{}
	for i, d := range all {
		switch d.Kind {
		case decl.KindInterface, decl.KindTypeAlias, decl.KindClass, decl.KindEnum:
			byName[d.Name] = i
		}
	}

	included := make(map[int]bool)
	var surfaced []int
	for i, d := range all {
		if d.IsExported {
			included[i] = true
			surfaced = append(surfaced, i)
		}
	}

	for _, idx := range surfaced {
		for _, match := range identifierPattern.FindAllString(typeRefsText(all[idx]), -1) {
			if builtins[match] || excluded[match] {
				continue
			}
			target, ok := byName[match]
			if !ok {
				continue
			}
			included[target] = true
		}
	}

	var out []decl.Declaration
	for i, d := range all {
		if included[i] {
			out = append(out, d)
		}
	}
	return out
}

// typeRefsText concatenates the type-bearing substrings of a declaration —
// the places a reference to another declaration can legally appear — so the
// closure scan never has to read (and thus never pulls references out of) a
// function or method's implementation body, which this extractor never
// stores in the first place.
func typeRefsText(d decl.Declaration) string {
	var b strings.Builder
	b.WriteString(d.Generics)
	b.WriteByte(' ')
	switch d.Kind {
	case decl.KindVariable:
		b.WriteString(d.TypeAnnotation)
	case decl.KindFunction:
		writeParams(&b, d.Parameters)
		b.WriteString(d.ReturnType)
	case decl.KindInterface:
		b.WriteString(strings.Join(d.Extends, " "))
		writeMembers(&b, d.Members)
	case decl.KindClass:
		b.WriteString(strings.Join(d.Extends, " "))
		b.WriteByte(' ')
		b.WriteString(strings.Join(d.Implements, " "))
		writeMembers(&b, d.Members)
	case decl.KindTypeAlias:
		b.WriteString(d.RHS)
	case decl.KindModule:
		for _, child := range d.Body {
			b.WriteString(typeRefsText(child))
			b.WriteByte(' ')
		}
	}
	return b.String()
}

func writeParams(b *strings.Builder, params []decl.Parameter) {
	for _, p := range params {
		b.WriteString(p.Type)
		b.WriteByte(' ')
	}
}

func writeMembers(b *strings.Builder, members []decl.Member) {
	for _, m := range members {
		b.WriteString(m.Generics)
		b.WriteByte(' ')
		writeParams(b, m.Parameters)
		b.WriteString(m.ReturnType)
		b.WriteByte(' ')
		b.WriteString(m.Type)
		b.WriteByte(' ')
		b.WriteString(m.IndexKeyType)
		b.WriteByte(' ')
	}
}
