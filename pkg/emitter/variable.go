package emitter

import (
	"strconv"
	"strings"

	"github.com/dtsgen/dtsgen/pkg/decl"
)

// emitVariable renders `[export ]declare (const|let|var) NAME[: TYPE];`.
func emitVariable(d decl.Declaration, ctx Context) (string, bool) {
	if d.Name == "" {
		return "", false
	}
	typ := d.TypeAnnotation
	if !d.HasTypeAnnotated {
		typ = inferVariableType(d.InitializerText)
	}
	s := exportPrefix(d) + declareKeyword(ctx) + d.BindingKind.String() + " " + d.Name
	if typ != "" {
		s += ": " + typ
	}
	return s + ";", true
}

// inferVariableType implements the variable type fallback rule:
// literal string/int/bool initializers get their literal's type; anything
// else falls back to any.
func inferVariableType(initializer string) string {
	s := strings.TrimSpace(initializer)
	if s == "" {
		return "any"
	}
	if len(s) >= 2 {
		q := s[0]
		if (q == '"' || q == '\'' || q == '`') && s[len(s)-1] == q {
			return "string"
		}
	}
	if s == "true" || s == "false" {
		return "boolean"
	}
	if _, err := strconv.ParseInt(s, 10, 64); err == nil {
		return "number"
	}
	return "any"
}
