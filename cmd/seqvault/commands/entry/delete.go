package entry

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seqvault/seqvault/cmd/seqvault/cmdutil"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <org> <entry>",
	Short: "Delete a registry entry",
	Long: `Delete a registry entry.

The entry must have no versions; delete or detach those first.

Examples:
  # Delete with confirmation prompt
  seqvault entry delete uniprot swissprot

  # Delete without prompting
  seqvault entry delete uniprot swissprot --force`,
	Args: cobra.ExactArgs(2),
	RunE: runDelete,
}

func init() {
	deleteCmd.Flags().BoolVar(&cmdutil.Flags.Force, "force", false, "Skip confirmation prompt")
}

func runDelete(cmd *cobra.Command, args []string) error {
	s, err := cmdutil.GetStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	entry, err := resolveEntry(cmd.Context(), s, args[0], args[1])
	if err != nil {
		return err
	}

	return cmdutil.RunDeleteWithConfirmation("entry", args[0]+"/"+args[1], func() error {
		if err := s.DeleteEntry(cmd.Context(), entry.ID); err != nil {
			return fmt.Errorf("failed to delete entry: %w", err)
		}
		return nil
	})
}
