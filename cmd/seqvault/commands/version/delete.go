package version

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seqvault/seqvault/cmd/seqvault/cmdutil"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <org> <entry> <label>",
	Short: "Delete a version and its payload",
	Long: `Delete a version. Any attached blob is removed from object storage
before the metadata row is deleted.

Examples:
  # Delete with confirmation prompt
  seqvault version delete uniprot swissprot 2026_01

  # Delete without prompting
  seqvault version delete uniprot swissprot 2026_01 --force`,
	Args: cobra.ExactArgs(3),
	RunE: runDelete,
}

func init() {
	deleteCmd.Flags().BoolVar(&cmdutil.Flags.Force, "force", false, "Skip confirmation prompt")
}

func runDelete(cmd *cobra.Command, args []string) error {
	p, cleanup, err := cmdutil.GetPlatform(cmd.Context())
	if err != nil {
		return err
	}
	defer cleanup()

	version, err := p.ResolveVersion(cmd.Context(), args[0], args[1], args[2])
	if err != nil {
		return fmt.Errorf("failed to resolve version: %w", err)
	}

	name := fmt.Sprintf("%s/%s@%s", args[0], args[1], args[2])
	return cmdutil.RunDeleteWithConfirmation("version", name, func() error {
		if err := p.DeleteVersion(cmd.Context(), version.ID); err != nil {
			return fmt.Errorf("failed to delete version: %w", err)
		}
		return nil
	})
}
