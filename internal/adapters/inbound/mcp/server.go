// Package mcp exposes tfconform validation over the Model Context Protocol.
package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewTfconformMCPServer creates a new MCP server with all tfconform tools
// and resources registered. The projectPath is the default directory to
// validate when a tool call does not override it.
func NewTfconformMCPServer(projectPath string) *server.MCPServer {
	s := server.NewMCPServer(
		"tfconform",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, projectPath)
	registerResources(s, projectPath)

	return s
}
