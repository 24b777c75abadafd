package parser

import (
	"bytes"
	"fmt"

	ts "github.com/tree-sitter/go-tree-sitter"
	ts_typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"
)

// utf8BOM is the three-byte UTF-8 byte-order mark some editors prepend.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ParseError is a recoverable syntactic anomaly the grammar recovered from.
// It is never fatal — it is carried on SourceFile for the extractor to
// surface as a Warning.
type ParseError struct {
	StartByte uint32
	EndByte   uint32
	Message   string
}

// SourceFile is the parsed form of one TypeScript/TSX source buffer: the
// tree-sitter tree plus the original bytes (spans are copied as substrings
// of Source) and any recoverable parse errors the grammar flagged.
//
// SourceFile owns the underlying *ts.Tree and must be released with Close.
type SourceFile struct {
	FileName string
	Source   []byte
	Variant  Variant

	tree *ts.Tree
}

// Root returns the tree's root node (the "program" node).
func (sf *SourceFile) Root() ts.Node {
	return sf.tree.RootNode()
}

// Close releases the underlying tree-sitter tree. Must be called once the
// SourceFile is no longer needed.
func (sf *SourceFile) Close() {
	if sf.tree != nil {
		sf.tree.Close()
		sf.tree = nil
	}
}

// Text returns the verbatim source substring for a byte span.
func (sf *SourceFile) Text(startByte, endByte uint32) string {
	if endByte > uint32(len(sf.Source)) {
		endByte = uint32(len(sf.Source))
	}
	if startByte > endByte {
		return ""
	}
	return string(sf.Source[startByte:endByte])
}

// Parse parses one TypeScript/TSX source buffer.
//
// Parse never fails on malformed TypeScript: the grammar recovers to the
// next plausible boundary on its own and records an ERROR node in the tree,
// which ParseErrors below surfaces as non-fatal diagnostics. Parse only
// returns an error for conditions outside the source text itself (grammar
// load failure, parser allocation failure).
//
// The core is single-threaded and synchronous per call: Parse
// creates one *ts.Parser, uses it once, and closes it — no pool, no shared
// state across calls.
func Parse(source []byte, fileName string) (*SourceFile, error) {
	variant := DetectVariant(fileName)
	source = bytes.TrimPrefix(source, utf8BOM)

	langPtr := ts_typescript.LanguageTypescript()
	if variant == VariantTSX {
		langPtr = ts_typescript.LanguageTSX()
	}

	p := ts.NewParser()
	if p == nil {
		return nil, fmt.Errorf("parser: failed to allocate tree-sitter parser")
	}
	defer p.Close()

	lang := ts.NewLanguage(langPtr)
	if err := p.SetLanguage(lang); err != nil {
		return nil, fmt.Errorf("parser: failed to set %s grammar: %w", variant, err)
	}

	tree := p.Parse(source, nil)
	if tree == nil {
		return nil, fmt.Errorf("parser: tree-sitter returned a nil tree for %s", fileName)
	}

	return &SourceFile{
		FileName: fileName,
		Source:   source,
		Variant:  variant,
		tree:     tree,
	}, nil
}

// ParseErrors walks the tree for ERROR nodes and MISSING tokens, returning
// one ParseError per occurrence. The parser already recovered past each of
// these; this just makes the recovery points observable as warnings.
func (sf *SourceFile) ParseErrors() []ParseError {
	var errs []ParseError
	var walk func(n *ts.Node)
	walk = func(n *ts.Node) {
		if n == nil {
			return
		}
		if n.IsError() {
			errs = append(errs, ParseError{
				StartByte: n.StartByte(),
				EndByte:   n.EndByte(),
				Message:   "unexpected syntax",
			})
		} else if n.IsMissing() {
			errs = append(errs, ParseError{
				StartByte: n.StartByte(),
				EndByte:   n.EndByte(),
				Message:   fmt.Sprintf("missing %s", n.GrammarName()),
			})
		}
		count := n.ChildCount()
		for i := uint(0); i < count; i++ {
			walk(n.Child(i))
		}
	}
	root := sf.Root()
	walk(&root)
	return errs
}
