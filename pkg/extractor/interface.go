package extractor

import (
	"strings"

	"github.com/dtsgen/dtsgen/pkg/decl"
	"github.com/dtsgen/dtsgen/pkg/tsscan"
)

// parseInterface parses `interface Name<T> extends A, B<T> { members }`.
func parseInterface(h parsedHeader, span decl.Span) (decl.Declaration, bool) {
	ok, rest := peelWord(h.rest, "interface")
	if !ok {
		return decl.Declaration{}, false
	}
	rest = strings.TrimLeft(rest, " \t\r\n")
	name, rest := tsscan.LeadingIdentifier(rest)
	if name == "" {
		return decl.Declaration{}, false
	}
	rest = strings.TrimLeft(rest, " \t\r\n")
	generics, rest := tsscan.SplitGenerics(rest)
	rest = strings.TrimLeft(rest, " \t\r\n")

	var extends []string
	if ok, after := peelWord(rest, "extends"); ok {
		braceIdx := tsscan.FirstTopLevelByte(after, '{')
		clauseText := after
		if braceIdx >= 0 {
			clauseText = after[:braceIdx]
		}
		for _, e := range tsscan.SplitTopLevel(clauseText, ",") {
			e = strings.TrimSpace(e)
			if e != "" {
				extends = append(extends, e)
			}
		}
		if braceIdx >= 0 {
			rest = after[braceIdx:]
		} else {
			rest = ""
		}
	}

	bodyStart := tsscan.FirstTopLevelByte(rest, '{')
	if bodyStart < 0 {
		return decl.Declaration{}, false
	}
	bodyEnd := tsscan.MatchBracket(rest, bodyStart)
	if bodyEnd < 0 {
		return decl.Declaration{}, false
	}
	body := rest[bodyStart+1 : bodyEnd]

	return decl.Declaration{
		Kind:       decl.KindInterface,
		Name:       name,
		Span:       span,
		IsExported: h.isExported,
		IsDefault:  h.isDefault,
		Generics:   generics,
		Extends:    extends,
		Members:    parseMembers(body, false),
	}, true
}
