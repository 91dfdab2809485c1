package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/maidos/codeqc/internal/adapters/outbound/config"
	"github.com/maidos/codeqc/internal/adapters/outbound/runfile"
	"github.com/maidos/codeqc/internal/adapters/outbound/tui"
	"github.com/maidos/codeqc/internal/application"
	"github.com/spf13/cobra"
)

func newWaveformCmd() *cobra.Command {
	var (
		runPath    string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "waveform [path]",
		Short: "Score a pipeline run on the three quality channels",
		Long:  "Turn a recorded pipeline run into the three-channel waveform report: functional completeness, code-quality compliance, and authenticity, with a weighted composite score.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			svc := application.NewVerifyService(config.New(), runfile.New())
			result, err := svc.VerifyRun(absPath, runPath)
			if err != nil {
				return fmt.Errorf("scoring failed: %w", err)
			}

			if jsonOutput {
				data, err := json.MarshalIndent(result.Waveform, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), tui.RenderWaveform(result.Waveform))
			return nil
		},
	}

	cmd.Flags().StringVar(&runPath, "run", "run.yaml", "Path to the recorded run results file")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the waveform report as JSON")

	return cmd
}
