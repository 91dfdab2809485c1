package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/maidos/codeqc/internal/adapters/outbound/config"
	"github.com/maidos/codeqc/internal/adapters/outbound/evidencefs"
	"github.com/maidos/codeqc/internal/adapters/outbound/gitinfo"
	"github.com/maidos/codeqc/internal/adapters/outbound/history"
	"github.com/maidos/codeqc/internal/adapters/outbound/runfile"
	"github.com/maidos/codeqc/internal/adapters/outbound/tui"
	"github.com/maidos/codeqc/internal/application"
	"github.com/maidos/codeqc/internal/domain"
	"github.com/spf13/cobra"
)

func newVerifyCmd() *cobra.Command {
	var (
		runPath       string
		jsonOutput    bool
		ciMode        bool
		writeEvidence bool
	)

	cmd := &cobra.Command{
		Use:   "verify [path]",
		Short: "Evaluate a pipeline run against the acceptance gates",
		Long:  "Collect evidence from a recorded pipeline run, evaluate the gates and the eight Definition-of-Done items, and score the three waveform channels.",
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
				return fmt.Errorf("verification failed: %w", err)
			}

			// Attach git commit hash if available
			gi := gitinfo.New()
			if hash, err := gi.CommitHash(absPath); err == nil {
				result.CommitHash = hash
			}

			// Save to history
			hist := history.New()
			entry := domain.RunEntry{
				Timestamp:       time.Now().Format(time.RFC3339),
				CommitHash:      result.CommitHash,
				MissionComplete: result.DoD.MissionComplete,
				CompositeScore:  result.Waveform.CompositeScore,
			}
			_ = hist.Save(absPath, entry) // history is best-effort

			if writeEvidence {
				cfg, err := config.New().Load(absPath)
				if err != nil {
					return err
				}
				dir := filepath.Join(absPath, cfg.EvidenceDir)
				if err := evidencefs.New().Write(dir, result.Evidence); err != nil {
					return fmt.Errorf("writing evidence: %w", err)
				}
			}

			if jsonOutput {
				data, err := json.MarshalIndent(result, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), tui.RenderVerdict(result))
			}

			if ciMode && !result.DoD.MissionComplete {
				return fmt.Errorf("mission incomplete: %d of %d DoD items failed",
					failedItems(result), len(result.DoD.Items))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&runPath, "run", "run.yaml", "Path to the recorded run results file")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the full result as JSON")
	cmd.Flags().BoolVar(&ciMode, "ci", false, "Exit non-zero unless the mission is complete")
	cmd.Flags().BoolVar(&writeEvidence, "write-evidence", false, "Persist one log file per artifact to the evidence dir")

	return cmd
}

func failedItems(result *application.VerifyResult) int {
	n := 0
	for _, item := range result.DoD.Items {
		if !item.Passed {
			n++
		}
	}
	return n
}
