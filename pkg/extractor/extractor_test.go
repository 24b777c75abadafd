package extractor

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtsgen/dtsgen/pkg/decl"
	"github.com/dtsgen/dtsgen/pkg/parser"
)

func extractSample(t *testing.T) ([]decl.Declaration, []Warning) {
	t.Helper()
	src, err := os.ReadFile("testdata/sample.ts")
	require.NoError(t, err)
	sf, err := parser.Parse(src, "sample.ts")
	require.NoError(t, err)
	defer sf.Close()
	return Extract(sf, Options{KeepComments: true})
}

func findByName(decls []decl.Declaration, name string) (decl.Declaration, bool) {
	for _, d := range decls {
		if d.Name == name {
			return d, true
		}
	}
	return decl.Declaration{}, false
}

func TestExtractSampleRecognizesEveryTopLevelStatement(t *testing.T) {
	decls, warnings := extractSample(t)
	assert.Empty(t, warnings, "no top-level statement in the fixture should be unrecognized")

	wantKinds := map[string]decl.Kind{
		"add":      decl.KindFunction,
		"Point":    decl.KindInterface,
		"Shape":    decl.KindInterface,
		"ID":       decl.KindTypeAlias,
		"VERSION":  decl.KindVariable,
		"Counter":  decl.KindClass,
		"Direction": decl.KindEnum,
		"Internal": decl.KindModule,
	}
	for name, kind := range wantKinds {
		d, ok := findByName(decls, name)
		require.True(t, ok, "expected a declaration named %q", name)
		assert.Equal(t, kind, d.Kind, "declaration %q has wrong kind", name)
	}

	exportEquals, ok := findByName(decls, "Internal")
	_ = exportEquals
	require.True(t, ok)
}

func TestExtractSampleExportFlagsMatchSource(t *testing.T) {
	decls, _ := extractSample(t)

	exported := map[string]bool{
		"add":     true,
		"Shape":   true,
		"VERSION": true,
		"Counter": true,
		"Direction": true,
	}
	notExported := map[string]bool{
		"Point": true,
		"ID":    true,
	}
	for name := range exported {
		d, ok := findByName(decls, name)
		require.True(t, ok, name)
		assert.True(t, d.IsExported, "%s should be exported", name)
	}
	for name := range notExported {
		d, ok := findByName(decls, name)
		require.True(t, ok, name)
		assert.False(t, d.IsExported, "%s should not be exported", name)
	}
}

func TestExtractSampleLeadingCommentAttachesToNextDeclaration(t *testing.T) {
	decls, _ := extractSample(t)
	d, ok := findByName(decls, "add")
	require.True(t, ok)
	require.Len(t, d.LeadingComments, 1)
	assert.Contains(t, d.LeadingComments[0].Text, "Doc comment for add.")
}

func TestExtractSampleExportEqualsTargetsNamespace(t *testing.T) {
	decls, _ := extractSample(t)
	var found bool
	for _, d := range decls {
		if d.Kind == decl.KindExportEquals {
			found = true
			assert.Equal(t, "Internal", d.ExportEqualsTarget)
		}
	}
	assert.True(t, found, "expected an export_equals declaration")
}

func TestExtractSampleNamespaceBodyIsParsedRecursively(t *testing.T) {
	decls, _ := extractSample(t)
	ns, ok := findByName(decls, "Internal")
	require.True(t, ok)
	require.Len(t, ns.Body, 1)
	assert.Equal(t, "secret", ns.Body[0].Name)
	assert.Equal(t, decl.KindVariable, ns.Body[0].Kind)
	assert.True(t, ns.Body[0].IsExported)
}

func TestExtractWithoutKeepCommentsDropsTrivia(t *testing.T) {
	src, err := os.ReadFile("testdata/sample.ts")
	require.NoError(t, err)
	sf, err := parser.Parse(src, "sample.ts")
	require.NoError(t, err)
	defer sf.Close()

	decls, _ := Extract(sf, Options{KeepComments: false})
	d, ok := findByName(decls, "add")
	require.True(t, ok)
	assert.Nil(t, d.LeadingComments)
}

func TestExtractPreservesSourceOrder(t *testing.T) {
	decls, _ := extractSample(t)
	for i := 1; i < len(decls); i++ {
		assert.LessOrEqual(t, decls[i-1].Span.Start, decls[i].Span.Start,
			"declaration %d (%s) starts before declaration %d (%s)", i-1, decls[i-1].Name, i, decls[i].Name)
	}
}

func TestExtractUnrecognizedStatementProducesWarningNotPanic(t *testing.T) {
	src := []byte("@decorator\nclass Weird {}\n")
	sf, err := parser.Parse(src, "weird.ts")
	require.NoError(t, err)
	defer sf.Close()

	var warnings []Warning
	assert.NotPanics(t, func() {
		_, warnings = Extract(sf, Options{})
	})
	assert.NotEmpty(t, warnings)
}
