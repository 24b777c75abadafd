package extractor

import (
	"strings"

	"github.com/dtsgen/dtsgen/pkg/decl"
	"github.com/dtsgen/dtsgen/pkg/tsscan"
)

// parseVariableGroup parses a `const|let|var a: T = x, b = y;` statement.
// An unexported variable statement is discarded entirely —
// it never becomes a closure target, unlike interfaces/type aliases/classes/enums.
// One Declaration is produced per binding; all bindings in the statement
// share the statement's span, since only top-level spans need to
// be disjoint *between statements*.
func parseVariableGroup(h parsedHeader, span decl.Span, kind decl.BindingKind) ([]decl.Declaration, bool) {
	if !h.isExported {
		return []decl.Declaration{}, true
	}

	kwLen := map[decl.BindingKind]int{
		decl.BindingConst: len("const"),
		decl.BindingLet:   len("let"),
		decl.BindingVar:   len("var"),
	}[kind]
	body := stripTrailingSemicolon(h.rest)
	if len(body) < kwLen {
		return nil, false
	}
	list := body[kwLen:]

	var out []decl.Declaration
	for _, part := range tsscan.SplitTopLevel(list, ",") {
		text := strings.TrimSpace(part)
		if text == "" {
			continue
		}
		name, rest := tsscan.LeadingIdentifier(text)
		if name == "" {
			continue
		}
		d := decl.Declaration{
			Kind:        decl.KindVariable,
			Name:        name,
			IsExported:  true,
			BindingKind: kind,
			Span:        span,
		}
		rest = strings.TrimSpace(rest)
		if strings.HasPrefix(rest, ":") {
			typ, init, hasInit := splitAssign(rest[1:])
			d.TypeAnnotation = strings.TrimSpace(typ)
			d.HasTypeAnnotated = true
			if hasInit {
				d.InitializerText = strings.TrimSpace(init)
			}
		} else {
			_, init, hasInit := splitAssign(rest)
			if hasInit {
				d.InitializerText = strings.TrimSpace(init)
			}
		}
		out = append(out, d)
	}
	if len(out) == 0 {
		return nil, false
	}
	return out, true
}

// splitAssign splits "Type = init" (or just "Type"/"= init") on the
// top-level '=' that introduces the initializer.
func splitAssign(s string) (before string, after string, hasAfter bool) {
	idx := tsscan.TopLevelAssignIndex(s)
	if idx < 0 {
		return s, "", false
	}
	return s[:idx], s[idx+1:], true
}
