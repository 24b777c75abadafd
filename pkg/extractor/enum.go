package extractor

import (
	"strings"

	"github.com/dtsgen/dtsgen/pkg/decl"
	"github.com/dtsgen/dtsgen/pkg/tsscan"
)

// parseEnum parses `[const] enum Name { A, B = 1, C = "c" }`.
func parseEnum(h parsedHeader, span decl.Span, isConst bool) (decl.Declaration, bool) {
	rest := h.rest
	if isConst {
		ok, r := peelWord(rest, "const")
		if !ok {
			return decl.Declaration{}, false
		}
		rest = r
	}
	ok, rest := peelWord(rest, "enum")
	if !ok {
		return decl.Declaration{}, false
	}
	rest = strings.TrimLeft(rest, " \t\r\n")
	name, rest := tsscan.LeadingIdentifier(rest)
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

	var members []decl.EnumMember
	for _, raw := range tsscan.SplitTopLevel(body, ",") {
		text := strings.TrimSpace(raw)
		if text == "" {
			continue
		}
		var em decl.EnumMember
		if strings.HasPrefix(text, "\"") || strings.HasPrefix(text, "'") {
			// quoted member name (rare; TS requires identifier names, but
			// some .d.ts input may carry string literal keys from JS enums)
			em.Name = unquote(text)
		} else if idx := tsscan.TopLevelAssignIndex(text); idx >= 0 {
			em.Name = strings.TrimSpace(text[:idx])
			em.Initializer = strings.TrimSpace(text[idx+1:])
			em.HasInit = true
		} else {
			em.Name = text
		}
		members = append(members, em)
	}

	return decl.Declaration{
		Kind:        decl.KindEnum,
		Name:        name,
		Span:        span,
		IsExported:  h.isExported,
		IsDefault:   h.isDefault,
		IsConst:     isConst,
		EnumMembers: members,
	}, true
}
