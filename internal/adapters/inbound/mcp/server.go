package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewCodeQCMCPServer creates a new MCP server with all CodeQC tools and
// resources registered. projectPath is the root of the project under
// verification; runPath points at the recorded run results file.
func NewCodeQCMCPServer(projectPath, runPath string) *server.MCPServer {
	s := server.NewMCPServer(
		"codeqc",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, projectPath, runPath)
	registerResources(s, projectPath, runPath)

	return s
}
