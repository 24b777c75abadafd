// Package assembler merges per-Declaration emitted fragments into one
// `.d.ts` file: imports first in source order, then everything
// else in source order, separated per the keep_comments rule, with a
// trailing newline.
package assembler

import (
	"strings"

	"github.com/dtsgen/dtsgen/pkg/decl"
	"github.com/dtsgen/dtsgen/pkg/emitter"
)

// Assemble renders decls into one file. Declarations that fail to emit are
// skipped and their warning appended to warnings; skipping one declaration
// never aborts the rest.
func Assemble(decls []decl.Declaration, opts emitter.Options) (string, []emitter.Warning) {
	var imports []string
	var rest []string
	var warnings []emitter.Warning

	for _, d := range decls {
		text, warn := emitter.Emit(d, emitter.ContextTopLevel, 0, opts)
		if warn != nil {
			warnings = append(warnings, *warn)
			continue
		}
		if d.Kind == decl.KindImport {
			imports = append(imports, text)
		} else {
			rest = append(rest, text)
		}
	}

	fragments := make([]string, 0, len(imports)+len(rest))
	fragments = append(fragments, imports...)
	fragments = append(fragments, rest...)

	sep := "\n"
	if opts.KeepComments {
		sep = "\n\n"
	}

	var b strings.Builder
	for i, f := range fragments {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(f)
	}
	if len(fragments) > 0 {
		b.WriteString("\n")
	}
	return b.String(), warnings
}
