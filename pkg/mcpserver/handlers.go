package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dtsgen/dtsgen/pkg/core"
	"github.com/mark3labs/mcp-go/mcp"
)

// requestArgs pulls source/file_name/keep_comments out of a tool call's
// arguments, matching the loose map[string]any shape mcp-go hands handlers
// (the same accessor the logging middleware already uses via GetArguments).
func requestArgs(req mcp.CallToolRequest) (source, fileName string, keepComments bool, err error) {
	args := req.GetArguments()
	s, ok := args["source"].(string)
	if !ok || s == "" {
		return "", "", false, fmt.Errorf("mcpserver: %q argument is required", "source")
	}
	fileName = "source.ts"
	if v, ok := args["file_name"].(string); ok && v != "" {
		fileName = v
	}
	if v, ok := args["keep_comments"].(bool); ok {
		keepComments = v
	}
	return s, fileName, keepComments, nil
}

// handleGenerateDTS implements the generate_dts tool: parse -> extract ->
// close references -> emit, returning the rendered `.d.ts` text plus any
// warnings as a single text content block.
func (s *Server) handleGenerateDTS(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	source, fileName, keepComments, err := requestArgs(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	opts := core.Options{KeepComments: keepComments}
	extracted, err := core.Extract([]byte(source), fileName, opts)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	dtsText, emitWarnings, err := core.Emit(extracted.Declarations, opts)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	warnings := append(append([]core.Warning{}, extracted.Warnings...), emitWarnings...)
	if len(warnings) == 0 {
		return mcp.NewToolResultText(dtsText), nil
	}
	return mcp.NewToolResultText(dtsText + "\n// warnings:\n" + formatWarnings(warnings)), nil
}

// handleExtractDeclarations implements the extract_declarations tool:
// parse -> extract -> close references, returning the Declaration set as
// formatted JSON rather than emitted `.d.ts` text.
func (s *Server) handleExtractDeclarations(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	source, fileName, keepComments, err := requestArgs(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	extracted, err := core.Extract([]byte(source), fileName, core.Options{KeepComments: keepComments})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	payload, err := json.MarshalIndent(struct {
		Declarations interface{}    `json:"declarations"`
		Warnings     []core.Warning `json:"warnings"`
	}{extracted.Declarations, extracted.Warnings}, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("mcpserver: marshal result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(payload)), nil
}

func formatWarnings(warnings []core.Warning) string {
	var out string
	for _, w := range warnings {
		out += fmt.Sprintf("//   [%d,%d) %s\n", w.Span.Start, w.Span.End, w.Message)
	}
	return out
}
