package driver

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/dtsgen/dtsgen/pkg/core"
)

// Discover expands glob patterns (e.g. "src/**/*.ts") into a deduped list of
// TypeScript source files. Non-.ts/.tsx matches are dropped; declaration
// files (.d.ts) are never sources for generating more declarations.
func Discover(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("driver: glob %q: %w", pattern, err)
		}
		for _, m := range matches {
			if !isSourceFile(m) || seen[m] {
				continue
			}
			seen[m] = true
			out = append(out, m)
		}
	}
	return out, nil
}

func isSourceFile(path string) bool {
	if strings.HasSuffix(path, ".d.ts") {
		return false
	}
	return strings.HasSuffix(path, ".ts") || strings.HasSuffix(path, ".tsx")
}

// OutputPath returns the `.d.ts` sibling path for a source file, replacing
// the file's directory with outDir when outDir is non-empty.
func OutputPath(sourcePath, outDir string) string {
	base := filepath.Base(sourcePath)
	base = strings.TrimSuffix(base, filepath.Ext(base)) + ".d.ts"
	if outDir == "" {
		return filepath.Join(filepath.Dir(sourcePath), base)
	}
	return filepath.Join(outDir, base)
}

// Run discovers patterns, generates `.d.ts` text for each matched file
// concurrently via a Pool, and returns one FileResult per successfully
// processed file plus a FileError slice for files that failed to read,
// parse, or emit — run never aborts the whole batch over a single file's
// failure — per-declaration and per-file failures are recoverable.
func Run(patterns []string, numWorkers int, opts core.Options, logger *slog.Logger) ([]FileResult, []FileError, error) {
	files, err := Discover(patterns)
	if err != nil {
		return nil, nil, err
	}

	pool := NewPool(numWorkers, opts, logger)
	pool.Start()

	go func() {
		for i, f := range files {
			if err := pool.Submit(FileJob{FilePath: f, JobID: i}); err != nil {
				break
			}
		}
		pool.FinishSubmitting()
	}()

	var results []FileResult
	var errs []FileError
	for remaining := len(files); remaining > 0; remaining-- {
		select {
		case r := <-pool.Results():
			results = append(results, r)
		case e := <-pool.Errors():
			errs = append(errs, e)
		}
	}
	pool.Stop()

	return results, errs, nil
}
