// Package emitter renders Declaration IR values (pkg/decl) back into
// canonical `.d.ts` text. The format is bit-exact: downstream tooling diffs
// and parses this output, so the same Declaration always renders to the
// same bytes regardless of how many times it is emitted.
package emitter

import (
	"strings"

	"github.com/dtsgen/dtsgen/pkg/decl"
)

// Context is the surrounding scope a Declaration is rendered into. It only
// affects whether `declare` is written; indentation comes from Emit's depth.
type Context int

const (
	ContextTopLevel Context = iota
	ContextAmbientModule
	ContextNamespace
)

// Options controls emission.
type Options struct {
	KeepComments bool
}

// Warning is an emission skip: a Declaration missing a field the canonical
// form requires. The declaration is omitted from output rather than
// emitting invalid text.
type Warning struct {
	Span    decl.Span
	Message string
}

// Emit renders one Declaration at the given indent depth and context. Depth
// is relative: 0 at top level, 1 for a direct child of a namespace/module
// (emitModule always passes 1; deeper nesting comes from each enclosing
// block indenting its whole rendered text).
func Emit(d decl.Declaration, ctx Context, depth int, opts Options) (string, *Warning) {
	var body string
	var ok bool

	switch d.Kind {
	case decl.KindImport:
		body, ok = emitImport(d)
	case decl.KindExport:
		body, ok = emitExport(d)
	case decl.KindExportEquals:
		body, ok = emitExportEquals(d)
	case decl.KindExportAsNamespace:
		body, ok = emitExportAsNamespace(d)
	case decl.KindVariable:
		body, ok = emitVariable(d, ctx)
	case decl.KindFunction:
		body, ok = emitFunction(d, ctx)
	case decl.KindInterface:
		body, ok = emitInterface(d, depth)
	case decl.KindTypeAlias:
		body, ok = emitTypeAlias(d)
	case decl.KindClass:
		body, ok = emitClass(d, ctx, depth)
	case decl.KindEnum:
		body, ok = emitEnum(d, ctx)
	case decl.KindModule:
		body, ok = emitModule(d, depth, opts)
	}

	if !ok {
		return "", &Warning{Span: d.Span, Message: "skipped (" + d.Kind.String() + "): missing required field"}
	}

	indented := indentLines(body, depth)
	if opts.KeepComments && len(d.LeadingComments) > 0 {
		indented = renderComments(d.LeadingComments, depth) + indented
	}
	return indented, nil
}

// emitImport reproduces the import statement verbatim — downstream tooling
// relies on a bit-exact emission, and re-synthesizing it from the parsed
// specifier/source fields would normalize quote style and spacing that the
// original source may not have used.
func emitImport(d decl.Declaration) (string, bool) {
	if d.RawText == "" {
		return "", false
	}
	return d.RawText, true
}

// emitExport reproduces the export statement verbatim, the same reasoning
// as emitImport: default-export, star re-export, and named re-export all
// carry their original text in RawText rather than being rebuilt from
// Specifiers/ExportSource.
func emitExport(d decl.Declaration) (string, bool) {
	if d.RawText == "" {
		return "", false
	}
	return d.RawText, true
}

func emitExportEquals(d decl.Declaration) (string, bool) {
	if d.ExportEqualsTarget == "" {
		return "", false
	}
	return "export = " + d.ExportEqualsTarget + ";", true
}

func emitExportAsNamespace(d decl.Declaration) (string, bool) {
	if d.NamespaceName == "" {
		return "", false
	}
	return "export as namespace " + d.NamespaceName + ";", true
}

// declareKeyword reports whether this context writes `declare` for
// kinds that carry it (function/variable/class/enum); interfaces and type
// aliases never carry it regardless of context.
func declareKeyword(ctx Context) string {
	if ctx == ContextAmbientModule {
		return ""
	}
	return "declare "
}

func exportPrefix(d decl.Declaration) string {
	if d.IsExported {
		return "export "
	}
	return ""
}

// quoteModuleName renders a string-literal module name as a single-quoted
// TS string literal — the canonical ambient-module form (`declare module
// '...'`) uses single quotes, distinct from the double-quoted string
// literals TypeScript source otherwise favors.
func quoteModuleName(s string) string {
	var b strings.Builder
	b.WriteByte('\'')
	for _, r := range s {
		switch r {
		case '\'':
			b.WriteString(`\'`)
		case '\\':
			b.WriteString(`\\`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('\'')
	return b.String()
}

func indentLines(s string, depth int) string {
	if depth == 0 {
		return s
	}
	prefix := strings.Repeat("  ", depth)
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if l == "" {
			continue
		}
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}

func renderComments(comments []decl.CommentBlock, depth int) string {
	var b strings.Builder
	prefix := strings.Repeat("  ", depth)
	for i, c := range comments {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, line := range strings.Split(strings.TrimRight(c.Text, "\n"), "\n") {
			b.WriteString(prefix)
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}
	return b.String()
}
