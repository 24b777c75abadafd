package extractor

import (
	"strings"

	"github.com/dtsgen/dtsgen/pkg/decl"
	"github.com/dtsgen/dtsgen/pkg/tsscan"
)

// parseClass parses `[abstract] class [Name]<T> [extends Base<T>]
// [implements A, B] { members }`. The name is optional only for a default
// export's anonymous class expression.
func parseClass(h parsedHeader, span decl.Span) (decl.Declaration, bool) {
	rest := h.rest
	isAbstract := false
	if ok, r := peelWord(rest, "abstract"); ok {
		isAbstract = true
		rest = r
	}
	ok, rest := peelWord(rest, "class")
	if !ok {
		return decl.Declaration{}, false
	}
	rest = strings.TrimLeft(rest, " \t\r\n")

	var name string
	if rest != "" && rest[0] != '<' && rest[0] != '{' {
		name, rest = tsscan.LeadingIdentifier(rest)
	}
	rest = strings.TrimLeft(rest, " \t\r\n")
	generics, rest := tsscan.SplitGenerics(rest)
	rest = strings.TrimLeft(rest, " \t\r\n")

	var extendsList []string
	var implementsList []string

	for {
		if ok, after := peelWord(rest, "extends"); ok {
			end := clauseEnd(after)
			extendsList = append(extendsList, strings.TrimSpace(after[:end]))
			rest = after[end:]
			continue
		}
		if ok, after := peelWord(rest, "implements"); ok {
			end := clauseEnd(after)
			for _, item := range tsscan.SplitTopLevel(after[:end], ",") {
				item = strings.TrimSpace(item)
				if item != "" {
					implementsList = append(implementsList, item)
				}
			}
			rest = after[end:]
			continue
		}
		break
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
		Kind:       decl.KindClass,
		Name:       name,
		Span:       span,
		IsExported: h.isExported,
		IsDefault:  h.isDefault,
		IsAbstract: isAbstract,
		Generics:   generics,
		Extends:    extendsList,
		Implements: implementsList,
		Members:    parseMembers(body, true),
	}, true
}

// clauseEnd finds the end of an extends/implements clause: up to (but not
// including) the next top-level "extends"/"implements" keyword or the
// class body's opening '{', whichever comes first.
func clauseEnd(s string) int {
	brace := tsscan.FirstTopLevelByte(s, '{')
	end := len(s)
	if brace >= 0 {
		end = brace
	}
	for _, kw := range []string{"extends", "implements"} {
		if idx := tsscan.FindTopLevelWord(s[:end], kw); idx > 0 {
			end = idx
		}
	}
	return end
}
