package cli

import "github.com/spf13/cobra"

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "codeqc",
		Short:         "Is this change allowed to ship?",
		Long:          "CodeQC reduces the outcomes of a verification pipeline into an unambiguous, reproducible acceptance verdict: evidence, gates, Definition of Done, and a three-channel quality score.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newVerifyCmd())
	cmd.AddCommand(newWaveformCmd())
	cmd.AddCommand(newManifestCmd())
	cmd.AddCommand(newMCPCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}
