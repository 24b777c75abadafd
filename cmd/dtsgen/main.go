package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/dtsgen/dtsgen/pkg/mcplog"
	"github.com/dtsgen/dtsgen/pkg/mcpserver"
	"github.com/dtsgen/dtsgen/pkg/util"
)

const version = "0.1.0-dev"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch command := os.Args[1]; command {
	case "generate":
		runGenerate(os.Args[2:])
	case "serve":
		runServe(os.Args[2:])
	case "version":
		fmt.Printf("dtsgen %s\n", version)
	case "help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

// runServe implements `dtsgen serve [--log path]`, starting the MCP server
// on stdio.
func runServe(args []string) {
	var logPath string
	for i := 0; i < len(args); i++ {
		if args[i] == "--log" && i+1 < len(args) {
			i++
			logPath = args[i]
		}
	}

	var logger *mcplog.Logger
	if logPath != "" {
		l, err := mcplog.NewLogger(logPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
			os.Exit(1)
		}
		logger = l
	}

	srv := mcpserver.NewServer(logger)
	defer srv.Close()
	if err := srv.ServeStdio(); err != nil {
		fmt.Fprintf(os.Stderr, "server error: %v\n", err)
		os.Exit(1)
	}
}

// defaultLogger builds the slog.Logger passed to the driver pool: JSON to
// stderr, level from DTSGEN_LOG_LEVEL (debug/info/warn/error; defaults to
// info).
func defaultLogger() *slog.Logger {
	level := util.LevelInfo
	if v := strings.ToLower(os.Getenv("DTSGEN_LOG_LEVEL")); v != "" {
		level = util.LogLevel(v)
	}
	return util.NewLogger(util.LoggerConfig{
		Level:  level,
		Format: util.FormatJSON,
		Output: os.Stderr,
	})
}

func printUsage() {
	fmt.Println("Usage: dtsgen <command>")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  generate <glob>...  Generate .d.ts files for matching .ts/.tsx sources")
	fmt.Println("                      flags: --out <dir>, --keep-comments")
	fmt.Println("  serve               Start the MCP server on stdio")
	fmt.Println("                      flags: --log <path> (JSONL tool-call log)")
	fmt.Println("  version             Print version")
	fmt.Println("  help                Show this help message")
}
