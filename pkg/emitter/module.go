package emitter

import (
	"strings"

	"github.com/dtsgen/dtsgen/pkg/decl"
)

// emitModule renders a namespace/module/global-augmentation block.
// Children are rendered at relative depth 1 — indentLines in the top-level
// Emit call then shifts the whole returned string (header, already-relative
// children, closing brace) by this declaration's own absolute depth, so
// nesting composes without double-indenting.
func emitModule(d decl.Declaration, depth int, opts Options) (string, bool) {
	if d.Name == "" && !d.IsGlobalAugment {
		return "", false
	}

	var header string
	var childCtx Context
	switch {
	case d.IsGlobalAugment:
		header = "declare global"
		childCtx = ContextAmbientModule
	case d.IsAmbientModule:
		header = exportPrefix(d) + "declare module " + quoteModuleName(d.Name)
		childCtx = ContextAmbientModule
	default:
		header = exportPrefix(d) + "declare namespace " + d.Name
		childCtx = ContextNamespace
	}

	var b strings.Builder
	b.WriteString(header)
	b.WriteString(" {\n")
	for _, child := range d.Body {
		rendered, warn := Emit(child, childCtx, 1, opts)
		if warn != nil {
			continue
		}
		b.WriteString(rendered)
		b.WriteString("\n")
	}
	b.WriteString("}")
	return b.String(), true
}
