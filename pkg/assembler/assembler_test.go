package assembler

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtsgen/dtsgen/pkg/decl"
	"github.com/dtsgen/dtsgen/pkg/emitter"
)

func TestAssembleOrdersImportsBeforeEverythingElse(t *testing.T) {
	decls := []decl.Declaration{
		{Kind: decl.KindTypeAlias, Name: "ID", RHS: "string"},
		{
			Kind: decl.KindImport, ImportSource: "react", HasDefaultImport: true,
			ImportDefault: "React", RawText: `import React from 'react';`,
		},
		{Kind: decl.KindVariable, Name: "x", BindingKind: decl.BindingConst, HasTypeAnnotated: true, TypeAnnotation: "number"},
	}

	text, warnings := Assemble(decls, emitter.Options{})
	require.Empty(t, warnings)

	importIdx := strings.Index(text, "import React")
	typeIdx := strings.Index(text, "type ID")
	varIdx := strings.Index(text, "const x")

	require.GreaterOrEqual(t, importIdx, 0)
	require.GreaterOrEqual(t, typeIdx, 0)
	require.GreaterOrEqual(t, varIdx, 0)
	assert.Less(t, importIdx, typeIdx, "import must come before the type alias")
	assert.Less(t, typeIdx, varIdx, "non-import declarations keep their relative source order")
}

func TestAssembleSkipsInvalidDeclarationWithoutAbortingRest(t *testing.T) {
	decls := []decl.Declaration{
		{Kind: decl.KindFunction}, // missing Name: invalid, should be skipped with a warning
		{Kind: decl.KindTypeAlias, Name: "ID", RHS: "string"},
	}

	text, warnings := Assemble(decls, emitter.Options{})
	require.Len(t, warnings, 1)
	assert.Contains(t, text, "type ID = string;")
}

func TestAssembleEndsWithTrailingNewline(t *testing.T) {
	decls := []decl.Declaration{
		{Kind: decl.KindTypeAlias, Name: "ID", RHS: "string"},
	}
	text, warnings := Assemble(decls, emitter.Options{})
	require.Empty(t, warnings)
	assert.True(t, strings.HasSuffix(text, "\n"))
}

func TestAssembleEmptyInputProducesEmptyOutput(t *testing.T) {
	text, warnings := Assemble(nil, emitter.Options{})
	assert.Empty(t, warnings)
	assert.Equal(t, "", text)
}
