package emitter

import (
	"strings"

	"github.com/dtsgen/dtsgen/pkg/decl"
)

// formatParams renders a parameter list. A destructured parameter with more
// than three bound names is split across indented lines for readability
// simple identifier parameters are always inline.
func formatParams(params []decl.Parameter) string {
	if len(params) == 0 {
		return ""
	}
	parts := make([]string, 0, len(params))
	multiline := false
	for _, p := range params {
		text, wide := formatParam(p)
		if wide {
			multiline = true
		}
		parts = append(parts, text)
	}
	if !multiline {
		return strings.Join(parts, ", ")
	}
	var b strings.Builder
	for i, p := range parts {
		b.WriteString("\n  ")
		b.WriteString(p)
		if i < len(parts)-1 {
			b.WriteByte(',')
		}
	}
	b.WriteString("\n")
	return b.String()
}

// formatParam renders one parameter. wide reports whether its destructured
// binding carries more than three names, the trigger for multi-line layout
// of the whole parameter list.
func formatParam(p decl.Parameter) (string, bool) {
	var b strings.Builder
	if p.IsRest {
		b.WriteString("...")
	}
	wide := false
	if p.BindingText != "" {
		b.WriteString(p.BindingText)
		wide = countBoundNames(p.BindingText) > 3
	} else {
		b.WriteString(p.Name)
	}
	if p.Optional || p.HasDefault {
		b.WriteByte('?')
	}
	if p.Type != "" {
		b.WriteString(": ")
		b.WriteString(p.Type)
	}
	return b.String(), wide
}

func countBoundNames(binding string) int {
	inner := strings.TrimSuffix(strings.TrimPrefix(strings.TrimSpace(binding), "{"), "}")
	inner = strings.TrimSuffix(strings.TrimPrefix(inner, "["), "]")
	if strings.TrimSpace(inner) == "" {
		return 0
	}
	return len(strings.Split(inner, ","))
}

func parenthesize(params []decl.Parameter) string {
	return "(" + formatParams(params) + ")"
}
