package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/dtsgen/dtsgen/pkg/core"
	"github.com/dtsgen/dtsgen/pkg/driver"
	"github.com/dtsgen/dtsgen/pkg/util"
)

// runGenerate implements `dtsgen generate <glob>... [--out dir] [--keep-comments]`.
func runGenerate(args []string) {
	var patterns []string
	var outFlag string
	var keepCommentsFlag bool

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--out":
			if i+1 < len(args) {
				i++
				outFlag = args[i]
			}
		case "--keep-comments":
			keepCommentsFlag = true
		default:
			if !strings.HasPrefix(args[i], "--") {
				patterns = append(patterns, args[i])
			}
		}
	}

	if len(patterns) == 0 {
		fmt.Fprintln(os.Stderr, "usage: dtsgen generate <glob>... [--out dir] [--keep-comments]")
		os.Exit(1)
	}

	outDir := resolveOutDir(outFlag)
	opts := core.Options{KeepComments: resolveKeepComments(keepCommentsFlag)}
	logger := defaultLogger()

	results, fileErrors, err := driver.Run(patterns, util.GetOptimalPoolSize(), opts, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dtsgen: %v\n", err)
		os.Exit(1)
	}

	exitCode := 0
	for _, fe := range fileErrors {
		fmt.Fprintf(os.Stderr, "%s: %v\n", fe.FilePath, fe.Error)
		exitCode = 1
	}

	for _, r := range results {
		outPath := driver.OutputPath(r.FilePath, outDir)
		if outDir != "" {
			if err := os.MkdirAll(outDir, 0755); err != nil {
				fmt.Fprintf(os.Stderr, "%s: create out dir: %v\n", r.FilePath, err)
				exitCode = 1
				continue
			}
		}
		if err := os.WriteFile(outPath, []byte(r.DTSText), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "%s: write %s: %v\n", r.FilePath, outPath, err)
			exitCode = 1
			continue
		}
		fmt.Printf("%s -> %s", r.FilePath, outPath)
		if len(r.Warnings) > 0 {
			fmt.Printf(" (%d warning(s))", len(r.Warnings))
		}
		fmt.Println()
		for _, w := range r.Warnings {
			fmt.Printf("  [%d,%d) %s\n", w.Span.Start, w.Span.End, w.Message)
		}
	}

	if exitCode != 0 {
		os.Exit(exitCode)
	}
}

