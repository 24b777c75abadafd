package driver

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/dtsgen/dtsgen/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func silentLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDiscoverFiltersNonTSSources(t *testing.T) {
	dir := t.TempDir()
	write := func(name string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("export const x = 1;\n"), 0644))
	}
	write("a.ts")
	write("b.tsx")
	write("c.d.ts")
	write("readme.md")

	files, err := Discover([]string{filepath.Join(dir, "*")})
	require.NoError(t, err)

	var names []string
	for _, f := range files {
		names = append(names, filepath.Base(f))
	}
	assert.ElementsMatch(t, []string{"a.ts", "b.tsx"}, names)
}

func TestOutputPath(t *testing.T) {
	assert.Equal(t, filepath.Join("src", "a.d.ts"), OutputPath(filepath.Join("src", "a.ts"), ""))
	assert.Equal(t, filepath.Join("dist", "a.d.ts"), OutputPath(filepath.Join("src", "a.ts"), "dist"))
}

func TestRunGeneratesDeclarationsForEachFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.ts"), []byte("export function add(a: number, b: number): number { return a + b }\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.ts"), []byte("export interface Point { x: number; y: number }\n"), 0644))

	results, fileErrors, err := Run([]string{filepath.Join(dir, "*.ts")}, 2, core.Options{}, silentLogger())
	require.NoError(t, err)
	assert.Empty(t, fileErrors)
	require.Len(t, results, 2)

	byFile := make(map[string]FileResult)
	for _, r := range results {
		byFile[filepath.Base(r.FilePath)] = r
	}
	assert.Contains(t, byFile["a.ts"].DTSText, "export declare function add(a: number, b: number): number;")
	assert.Contains(t, byFile["b.ts"].DTSText, "export interface Point")
}

func TestPoolReportsReadErrorsWithoutAbortingBatch(t *testing.T) {
	dir := t.TempDir()
	ok := filepath.Join(dir, "ok.ts")
	require.NoError(t, os.WriteFile(ok, []byte("export const n = 1;\n"), 0644))
	missing := filepath.Join(dir, "missing.ts")

	pool := NewPool(2, core.Options{}, silentLogger())
	pool.Start()
	require.NoError(t, pool.Submit(FileJob{FilePath: ok, JobID: 0}))
	require.NoError(t, pool.Submit(FileJob{FilePath: missing, JobID: 1}))
	pool.FinishSubmitting()

	var results []FileResult
	var fileErrors []FileError
	for i := 0; i < 2; i++ {
		select {
		case r := <-pool.Results():
			results = append(results, r)
		case e := <-pool.Errors():
			fileErrors = append(fileErrors, e)
		}
	}
	pool.Stop()

	require.Len(t, results, 1)
	require.Len(t, fileErrors, 1)
	assert.Equal(t, missing, fileErrors[0].FilePath)
}
