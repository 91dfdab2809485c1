package cli

import (
	mcpadapter "github.com/maidos/codeqc/internal/adapters/inbound/mcp"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the CodeQC MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	var (
		projectPath string
		runPath     string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start CodeQC MCP server (stdio)",
		Long:  "Start the CodeQC MCP server using stdio transport. This allows AI coding assistants to query the acceptance verdict, waveform report, and evidence for a recorded run.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if projectPath == "" {
				projectPath = "."
			}
			s := mcpadapter.NewCodeQCMCPServer(projectPath, runPath)
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().StringVar(&projectPath, "path", "", "Project path (defaults to current working directory)")
	cmd.Flags().StringVar(&runPath, "run", "run.yaml", "Path to the recorded run results file")

	return cmd
}
