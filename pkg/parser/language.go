package parser

import (
	"path/filepath"
	"strings"
)

// Variant selects which tree-sitter grammar to compile a source with.
// TypeScript and TSX share the same declaration syntax; TSX additionally
// allows JSX inside expression position. Since the core only inspects
// top-level declaration shapes (bodies are erased, never read), the variant
// only matters for whether the grammar accepts the file at all.
type Variant int

const (
	// VariantTypeScript parses plain .ts/.mts/.cts sources.
	VariantTypeScript Variant = iota
	// VariantTSX parses .tsx sources (JSX-enabled grammar).
	VariantTSX
)

// String returns the variant's diagnostic name.
func (v Variant) String() string {
	if v == VariantTSX {
		return "tsx"
	}
	return "typescript"
}

// DetectVariant picks the grammar variant from a file name's extension.
// Unrecognized extensions fall back to VariantTypeScript; the core does not
// reject a source based on its name, only on whether the grammar can parse
// it at all.
func DetectVariant(fileName string) Variant {
	ext := strings.ToLower(filepath.Ext(fileName))
	if ext == ".tsx" {
		return VariantTSX
	}
	return VariantTypeScript
}
