package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewKCLWrapMCPServer creates a new MCP server with the kclwrap tools
// registered. The projectPath is the root directory relative paths
// resolve against.
func NewKCLWrapMCPServer(projectPath string) *server.MCPServer {
	s := server.NewMCPServer(
		"kclwrap",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	registerTools(s, projectPath)

	return s
}
