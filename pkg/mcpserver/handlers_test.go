package mcpserver

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRequest(toolName string, arguments map[string]interface{}) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      toolName,
			Arguments: arguments,
		},
	}
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, res)
	require.Len(t, res.Content, 1)
	tc, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content")
	return tc.Text
}

func TestHandleGenerateDTSMissingSource(t *testing.T) {
	s := NewServer(nil)
	res, err := s.handleGenerateDTS(context.Background(), testRequest("generate_dts", map[string]interface{}{}))
	require.NoError(t, err)
	require.True(t, res.IsError)
}

func TestHandleGenerateDTSBasic(t *testing.T) {
	s := NewServer(nil)
	src := "export function add(a: number, b: number): number { return a + b }\n"
	res, err := s.handleGenerateDTS(context.Background(), testRequest("generate_dts", map[string]interface{}{
		"source": src,
	}))
	require.NoError(t, err)
	require.False(t, res.IsError)
	assert.Contains(t, resultText(t, res), "export declare function add(a: number, b: number): number;")
}

func TestHandleExtractDeclarationsBasic(t *testing.T) {
	s := NewServer(nil)
	src := "export interface Point { x: number; y: number }\n"
	res, err := s.handleExtractDeclarations(context.Background(), testRequest("extract_declarations", map[string]interface{}{
		"source": src,
	}))
	require.NoError(t, err)
	require.False(t, res.IsError)
	assert.Contains(t, resultText(t, res), "\"Point\"")
}
