package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtsgen/dtsgen/pkg/decl"
)

func TestParseImportRetainsRawTextVerbatim(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"default plus named, single-quoted", `import React, { useState } from 'react';`},
		{"namespace import, double-quoted", `import * as path from "path";`},
		{"side effect import", `import './style.css';`},
		{"type-only named import", `import type { Props } from './props';`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			decls, ok := classifyText(tc.src, decl.Span{})
			require.True(t, ok)
			require.Len(t, decls, 1)
			assert.Equal(t, decl.KindImport, decls[0].Kind)
			assert.Equal(t, tc.src, decls[0].RawText, "import emission must reproduce the original statement verbatim")
		})
	}
}

func TestParseExportFormRetainsRawTextVerbatim(t *testing.T) {
	tests := []struct {
		name string
		src  string
		kind decl.Kind
	}{
		{"named re-export, single-quoted source", `export { a, b } from './mod';`, decl.KindExport},
		{"star re-export with alias", `export * as utils from './utils';`, decl.KindExport},
		{"default export expression", `export default 42;`, decl.KindExport},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			decls, ok := classifyText(tc.src, decl.Span{})
			require.True(t, ok)
			require.Len(t, decls, 1)
			assert.Equal(t, tc.kind, decls[0].Kind)
			assert.Equal(t, tc.src, decls[0].RawText, "export emission must reproduce the original statement verbatim")
		})
	}
}
