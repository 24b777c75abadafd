package extractor

import (
	"strings"

	"github.com/dtsgen/dtsgen/pkg/decl"
	"github.com/dtsgen/dtsgen/pkg/tsscan"
)

// parseModule parses `namespace Name { ... }` or `module Name { ... }` /
// `module "pkg-name" { ... }`. A string-literal name makes it an ambient
// module augmentation, treated as exported for surface purposes regardless
// of an explicit `export` keyword.
//
// Dotted namespace names (`namespace A.B.C {}`) are kept as one Declaration
// whose Name is the full dotted path; the emitter writes that dotted name
// back verbatim after `declare namespace`, which is itself valid TypeScript
// shorthand for the nested form — so no explicit nesting expansion is
// needed on either side.
func parseModule(h parsedHeader, span decl.Span, raw string) (decl.Declaration, bool) {
	kw := leadKeyword(h.rest)
	ok, rest := peelWord(h.rest, kw)
	if !ok {
		return decl.Declaration{}, false
	}
	rest = strings.TrimLeft(rest, " \t\r\n")

	var name string
	isAmbientModule := false
	if rest != "" && (rest[0] == '"' || rest[0] == '\'') {
		isAmbientModule = true
		name, rest = readStringLiteral(rest)
	} else {
		name, rest = leadingDottedName(rest)
	}
	if name == "" {
		return decl.Declaration{}, false
	}
	rest = strings.TrimLeft(rest, " \t\r\n")

	bodyStart := tsscan.FirstTopLevelByte(rest, '{')
	if bodyStart < 0 {
		return decl.Declaration{}, false
	}
	bodyEnd := tsscan.MatchBracket(rest, bodyStart)
	if bodyEnd < 0 {
		return decl.Declaration{}, false
	}
	body := rest[bodyStart+1 : bodyEnd]
	bodyAbsStart := span.Start + uint32(len(raw)-len(body))

	isExported := h.isExported || isAmbientModule

	return decl.Declaration{
		Kind:            decl.KindModule,
		Name:            name,
		Span:            span,
		IsExported:      isExported,
		IsAmbientModule: isAmbientModule,
		Body:            subDeclarations(body, bodyAbsStart),
	}, true
}

// parseGlobalAugment parses `declare global { ... }`: members of the block
// augment the global scope and are always surfaced.
func parseGlobalAugment(h parsedHeader, span decl.Span, raw string) (decl.Declaration, bool) {
	ok, rest := peelWord(h.rest, "global")
	if !ok {
		return decl.Declaration{}, false
	}
	rest = strings.TrimLeft(rest, " \t\r\n")
	bodyStart := tsscan.FirstTopLevelByte(rest, '{')
	if bodyStart < 0 {
		return decl.Declaration{}, false
	}
	bodyEnd := tsscan.MatchBracket(rest, bodyStart)
	if bodyEnd < 0 {
		return decl.Declaration{}, false
	}
	body := rest[bodyStart+1 : bodyEnd]
	bodyAbsStart := span.Start + uint32(len(raw)-len(body))

	return decl.Declaration{
		Kind:            decl.KindModule,
		Name:            "global",
		Span:            span,
		IsExported:      true,
		IsGlobalAugment: true,
		Body:            subDeclarations(body, bodyAbsStart),
	}, true
}

// readStringLiteral reads a single/double-quoted string starting at s[0],
// returning its unquoted value and the remainder of s.
func readStringLiteral(s string) (value string, rest string) {
	if s == "" {
		return "", s
	}
	quote := s[0]
	i := 1
	for i < len(s) {
		if s[i] == '\\' {
			i += 2
			continue
		}
		if s[i] == quote {
			return s[1:i], s[i+1:]
		}
		i++
	}
	return "", s
}

// leadingDottedName reads an `A.B.C`-shaped identifier path.
func leadingDottedName(s string) (name string, rest string) {
	first, r := tsscan.LeadingIdentifier(s)
	if first == "" {
		return "", s
	}
	name = first
	rest = r
	for strings.HasPrefix(rest, ".") {
		next, r2 := tsscan.LeadingIdentifier(rest[1:])
		if next == "" {
			break
		}
		name += "." + next
		rest = r2
	}
	return name, rest
}
