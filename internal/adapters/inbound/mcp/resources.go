package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	appconfig "github.com/maidos/codeqc/internal/adapters/outbound/config"
	"github.com/maidos/codeqc/internal/adapters/outbound/runfile"
	"github.com/maidos/codeqc/internal/application"
)

// registerResources registers all CodeQC MCP resources on the given server.
func registerResources(s *server.MCPServer, projectPath, runPath string) {
	// 1. codeqc://verdict - full verification result
	s.AddResource(
		mcplib.NewResource(
			"codeqc://verdict",
			"Acceptance Verdict",
			mcplib.WithResourceDescription("Full acceptance verdict for the recorded run: evidence, gates, DoD, waveform"),
			mcplib.WithMIMEType("application/json"),
		),
		handleVerdictResource(projectPath, runPath),
	)

	// 2. codeqc://waveform - three-channel quality report
	s.AddResource(
		mcplib.NewResource(
			"codeqc://waveform",
			"Waveform Report",
			mcplib.WithResourceDescription("Three-channel quality report with composite score"),
			mcplib.WithMIMEType("application/json"),
		),
		handleWaveformResource(projectPath, runPath),
	)
}

func resourceJSON(uri string, v any) ([]mcplib.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding resource: %w", err)
	}
	return []mcplib.ResourceContents{
		mcplib.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

func handleVerdictResource(projectPath, runPath string) server.ResourceHandlerFunc {
	return func(_ context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		svc := application.NewVerifyService(appconfig.New(), runfile.New())
		result, err := svc.VerifyRun(projectPath, runPath)
		if err != nil {
			return nil, fmt.Errorf("verification failed: %w", err)
		}
		return resourceJSON(request.Params.URI, result)
	}
}

func handleWaveformResource(projectPath, runPath string) server.ResourceHandlerFunc {
	return func(_ context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		svc := application.NewVerifyService(appconfig.New(), runfile.New())
		result, err := svc.VerifyRun(projectPath, runPath)
		if err != nil {
			return nil, fmt.Errorf("scoring failed: %w", err)
		}
		return resourceJSON(request.Params.URI, result.Waveform)
	}
}
