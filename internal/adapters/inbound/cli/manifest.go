package cli

import (
	"fmt"
	"path/filepath"

	"github.com/maidos/codeqc/internal/adapters/outbound/config"
	"github.com/maidos/codeqc/internal/adapters/outbound/evidencefs"
	"github.com/maidos/codeqc/internal/adapters/outbound/gitinfo"
	"github.com/maidos/codeqc/internal/adapters/outbound/proofpack"
	"github.com/maidos/codeqc/internal/adapters/outbound/runfile"
	"github.com/maidos/codeqc/internal/application"
	"github.com/maidos/codeqc/internal/domain/manifest"
	"github.com/spf13/cobra"
)

func newManifestCmd() *cobra.Command {
	var (
		runPath string
		pack    bool
	)

	cmd := &cobra.Command{
		Use:   "manifest [path]",
		Short: "Render the Proof Pack summary for a pipeline run",
		Long:  "Render the human-readable Proof Pack summary ending in the final verdict line. With --pack, also persist the evidence logs and seal them under a hash manifest with a merkle root.",
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

			fmt.Fprintln(cmd.OutOrStdout(), manifest.RenderSummary(result.Evidence, result.DoD))

			if !pack {
				return nil
			}

			cfg, err := config.New().Load(absPath)
			if err != nil {
				return err
			}
			dir := filepath.Join(absPath, cfg.EvidenceDir)
			if err := evidencefs.New().Write(dir, result.Evidence); err != nil {
				return fmt.Errorf("writing evidence: %w", err)
			}

			git := manifest.GitState{}
			gi := gitinfo.New()
			if hash, err := gi.CommitHash(absPath); err == nil {
				git.Commit = hash
			}
			if dirty, err := gi.IsDirty(absPath); err == nil {
				git.Dirty = dirty
			}

			m, err := proofpack.New().Pack(dir, manifest.JourneysFromDoD(result.DoD), git)
			if err != nil {
				return fmt.Errorf("sealing proof pack: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "sealed %d files, merkle=%s...\n", len(m.Hashes), m.MerkleRoot[:16])
			return nil
		},
	}

	cmd.Flags().StringVar(&runPath, "run", "run.yaml", "Path to the recorded run results file")
	cmd.Flags().BoolVar(&pack, "pack", false, "Persist evidence logs and seal them under manifest.json")

	return cmd
}
