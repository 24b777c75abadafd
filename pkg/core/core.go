// Package core exposes the two pure entry points collaborators call:
// Extract parses and extracts a Declaration IR plus warnings from one
// source file; Emit renders a Declaration IR back into `.d.ts` text. Both
// are pure — calling Emit(Extract(s).Declarations) twice on identical input
// yields byte-identical output — and single-threaded/synchronous per call:
// no pool, no shared state, safe to call concurrently from many goroutines
// as long as each call gets its own arguments.
package core

import (
	"fmt"

	"github.com/dtsgen/dtsgen/pkg/assembler"
	"github.com/dtsgen/dtsgen/pkg/decl"
	"github.com/dtsgen/dtsgen/pkg/emitter"
	"github.com/dtsgen/dtsgen/pkg/extractor"
	"github.com/dtsgen/dtsgen/pkg/parser"
)

// Options controls both Extract and Emit.
type Options struct {
	KeepComments bool
}

// Warning is a recoverable anomaly from either phase: a parse-recovery
// point, an unrecognized top-level statement, or an emission skip.
type Warning struct {
	Span    decl.Span
	Message string
}

// InvariantError reports an internal logic error — not a malformed input,
// but a violated assumption this package makes about its own state. This is
// fatal: the caller decides whether to abort the file or the whole run.
type InvariantError struct {
	Message string
}

func (e *InvariantError) Error() string {
	return "dts: invariant violation: " + e.Message
}

// ExtractResult is Extract's output: the reference-closed Declaration set
// plus any warnings collected along the way.
type ExtractResult struct {
	Declarations []decl.Declaration
	Warnings     []Warning
}

// Extract parses sourceText as fileName and returns the exported-surface
// Declaration set, already closed over non-exported interface/type-alias/
// class/enum declarations reachable by reference. fileName is used only for
// diagnostics — it selects the tree-sitter TS/TSX grammar variant by
// extension but never changes emitted output.
func Extract(sourceText []byte, fileName string, opts Options) (res ExtractResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &InvariantError{Message: fmt.Sprintf("%v", r)}
		}
	}()

	sf, perr := parser.Parse(sourceText, fileName)
	if perr != nil {
		return ExtractResult{}, fmt.Errorf("core: parse %s: %w", fileName, perr)
	}
	defer sf.Close()

	all, warnings := extractor.Extract(sf, extractor.Options{KeepComments: opts.KeepComments})
	closed := extractor.CloseReferences(all, extractor.DefaultBuiltinTypeNames(), extractor.DefaultSingleLetterGenerics())

	res.Declarations = closed
	for _, w := range warnings {
		res.Warnings = append(res.Warnings, Warning{Span: w.Span, Message: w.Message})
	}
	return res, nil
}

// Emit renders decls into one `.d.ts` text buffer.
func Emit(decls []decl.Declaration, opts Options) (dtsText string, warnings []Warning, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &InvariantError{Message: fmt.Sprintf("%v", r)}
		}
	}()

	text, emitWarnings := assembler.Assemble(decls, emitter.Options{KeepComments: opts.KeepComments})
	for _, w := range emitWarnings {
		warnings = append(warnings, Warning{Span: w.Span, Message: w.Message})
	}
	return text, warnings, nil
}
