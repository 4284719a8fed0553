package blob

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seqvault/seqvault/cmd/seqvault/cmdutil"
)

var detachCmd = &cobra.Command{
	Use:   "detach <org> <entry> <label>",
	Short: "Remove a version's payload",
	Long: `Remove a version's payload from object storage and clear its blob
coordinates. The version itself is kept.

Examples:
  # Detach with confirmation prompt
  seqvault blob detach uniprot swissprot 2026_01

  # Detach without prompting
  seqvault blob detach uniprot swissprot 2026_01 --force`,
	Args: cobra.ExactArgs(3),
	RunE: runDetach,
}

func init() {
	detachCmd.Flags().BoolVar(&cmdutil.Flags.Force, "force", false, "Skip confirmation prompt")
}

func runDetach(cmd *cobra.Command, args []string) error {
	p, cleanup, err := cmdutil.GetPlatform(cmd.Context())
	if err != nil {
		return err
	}
	defer cleanup()

	version, err := p.ResolveVersion(cmd.Context(), args[0], args[1], args[2])
	if err != nil {
		return fmt.Errorf("failed to resolve version: %w", err)
	}

	name := fmt.Sprintf("payload of %s/%s@%s", args[0], args[1], args[2])
	return cmdutil.RunDeleteWithConfirmation("blob", name, func() error {
		if err := p.DetachVersionBlob(cmd.Context(), version.ID); err != nil {
			return fmt.Errorf("failed to detach blob: %w", err)
		}
		return nil
	})
}
