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
	"github.com/maidos/codeqc/internal/domain/manifest"
)

// registerTools registers all CodeQC MCP tools on the given server.
func registerTools(s *server.MCPServer, projectPath, runPath string) {
	// 1. codeqc_verify
	s.AddTool(
		mcplib.NewTool("codeqc_verify",
			mcplib.WithDescription("Returns the full acceptance verdict (evidence, gates, DoD, waveform) for the recorded run as JSON"),
			mcplib.WithString("run", mcplib.Description("Override path to the run results file")),
		),
		handleVerify(projectPath, runPath),
	)

	// 2. codeqc_waveform
	s.AddTool(
		mcplib.NewTool("codeqc_waveform",
			mcplib.WithDescription("Returns the three-channel waveform quality report for the recorded run"),
			mcplib.WithString("run", mcplib.Description("Override path to the run results file")),
		),
		handleWaveform(projectPath, runPath),
	)

	// 3. codeqc_evidence
	s.AddTool(
		mcplib.NewTool("codeqc_evidence",
			mcplib.WithDescription("Returns the normalized sixteen-artifact evidence collection for the recorded run"),
			mcplib.WithString("run", mcplib.Description("Override path to the run results file")),
		),
		handleEvidence(projectPath, runPath),
	)

	// 4. codeqc_manifest
	s.AddTool(
		mcplib.NewTool("codeqc_manifest",
			mcplib.WithDescription("Returns the Proof Pack summary text ending in the final verdict line"),
			mcplib.WithString("run", mcplib.Description("Override path to the run results file")),
		),
		handleManifest(projectPath, runPath),
	)
}

// verifyRun runs the verification pipeline for a tool call, honoring a
// per-call run-file override.
func verifyRun(projectPath, runPath string, request mcplib.CallToolRequest) (*application.VerifyResult, error) {
	if override, _ := request.GetArguments()["run"].(string); override != "" {
		runPath = override
	}
	svc := application.NewVerifyService(appconfig.New(), runfile.New())
	return svc.VerifyRun(projectPath, runPath)
}

func handleVerify(projectPath, runPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		result, err := verifyRun(projectPath, runPath, request)
		if err != nil {
			return errorResult(fmt.Sprintf("verification failed: %v", err)), nil
		}
		return jsonResult(result)
	}
}

func handleWaveform(projectPath, runPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		result, err := verifyRun(projectPath, runPath, request)
		if err != nil {
			return errorResult(fmt.Sprintf("scoring failed: %v", err)), nil
		}
		return jsonResult(result.Waveform)
	}
}

func handleEvidence(projectPath, runPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		result, err := verifyRun(projectPath, runPath, request)
		if err != nil {
			return errorResult(fmt.Sprintf("collection failed: %v", err)), nil
		}
		return jsonResult(result.Evidence)
	}
}

func handleManifest(projectPath, runPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		result, err := verifyRun(projectPath, runPath, request)
		if err != nil {
			return errorResult(fmt.Sprintf("verification failed: %v", err)), nil
		}
		return &mcplib.CallToolResult{
			Content: []mcplib.Content{mcplib.NewTextContent(manifest.RenderSummary(result.Evidence, result.DoD))},
		}, nil
	}
}

func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
