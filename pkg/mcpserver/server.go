// Package mcpserver exposes the extractor/emitter pipeline as MCP tools
// over stdio: generate_dts and extract_declarations.
package mcpserver

import (
	"github.com/dtsgen/dtsgen/pkg/mcplog"
	"github.com/mark3labs/mcp-go/server"
)

const serverVersion = "0.1.0-dev"

// Server implements the MCP server for dtsgen, exposing the extractor and
// emitter as stdio tools.
type Server struct {
	mcpServer *server.MCPServer
	logger    *mcplog.Logger // may be nil if logging is disabled
}

// NewServer creates an MCP server. Pass nil for logger to disable
// per-call JSONL logging.
func NewServer(logger *mcplog.Logger) *Server {
	s := &Server{logger: logger}

	opts := []server.ServerOption{
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	}
	if logger != nil {
		opts = append(opts, server.WithToolHandlerMiddleware(s.loggingMiddleware()))
	}

	s.mcpServer = server.NewMCPServer("dtsgen", serverVersion, opts...)

	s.mcpServer.AddTools(
		server.ServerTool{Tool: generateDTSTool(), Handler: s.handleGenerateDTS},
		server.ServerTool{Tool: extractDeclarationsTool(), Handler: s.handleExtractDeclarations},
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// Close shuts down the logger if one is active. Should be deferred after NewServer.
func (s *Server) Close() error {
	if s.logger != nil {
		return s.logger.Close()
	}
	return nil
}
