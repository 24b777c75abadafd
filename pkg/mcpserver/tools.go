package mcpserver

import "github.com/mark3labs/mcp-go/mcp"

// generateDTSTool describes the generate_dts tool: given TypeScript source
// text, return the rendered `.d.ts` text.
func generateDTSTool() mcp.Tool {
	return mcp.NewTool("generate_dts",
		mcp.WithDescription("Generate a .d.ts declaration file from TypeScript source text"),
		mcp.WithString("source", mcp.Required(), mcp.Description("TypeScript source text")),
		mcp.WithString("file_name", mcp.Description("source file name, used to pick the .ts/.tsx grammar (default source.ts)")),
		mcp.WithBoolean("keep_comments", mcp.Description("preserve leading JSDoc/comment trivia on emitted declarations")),
	)
}

// extractDeclarationsTool describes the extract_declarations tool: given
// TypeScript source text, return the reference-closed Declaration set as
// JSON without emitting `.d.ts` text — useful for callers that want to
// inspect the surface (names, kinds, spans) before rendering.
func extractDeclarationsTool() mcp.Tool {
	return mcp.NewTool("extract_declarations",
		mcp.WithDescription("Extract the exported declaration surface from TypeScript source text as JSON"),
		mcp.WithString("source", mcp.Required(), mcp.Description("TypeScript source text")),
		mcp.WithString("file_name", mcp.Description("source file name, used to pick the .ts/.tsx grammar (default source.ts)")),
		mcp.WithBoolean("keep_comments", mcp.Description("include leading JSDoc/comment trivia in the returned declarations")),
	)
}
