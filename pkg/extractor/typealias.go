package extractor

import (
	"strings"

	"github.com/dtsgen/dtsgen/pkg/decl"
	"github.com/dtsgen/dtsgen/pkg/tsscan"
)

// parseTypeAlias parses `type Name<T> = <RHS>;`. RHS is kept verbatim — the
// emitter never interprets it, only re-prints it.
func parseTypeAlias(h parsedHeader, span decl.Span) (decl.Declaration, bool) {
	ok, rest := peelWord(h.rest, "type")
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
	if !strings.HasPrefix(rest, "=") {
		return decl.Declaration{}, false
	}
	rhs := stripTrailingSemicolon(rest[1:])

	return decl.Declaration{
		Kind:       decl.KindTypeAlias,
		Name:       name,
		Span:       span,
		IsExported: h.isExported,
		IsDefault:  h.isDefault,
		Generics:   generics,
		RHS:        strings.TrimSpace(rhs),
	}, true
}
