package entry

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/seqvault/seqvault/cmd/seqvault/cmdutil"
)

var (
	editName        string
	editDescription string
	editMultiActive bool
)

var editCmd = &cobra.Command{
	Use:   "edit <org> <entry>",
	Short: "Edit a registry entry",
	Long: `Edit a registry entry's name, description, or publication policy.

The slug and entry type are immutable and cannot be changed.

Examples:
  # Rename an entry
  seqvault entry edit uniprot swissprot --name "UniProtKB/Swiss-Prot"

  # Allow multiple concurrently published versions
  seqvault entry edit ebi blast --multi-active`,
	Args: cobra.ExactArgs(2),
	RunE: runEdit,
}

func init() {
	editCmd.Flags().StringVar(&editName, "name", "", "New name")
	editCmd.Flags().StringVar(&editDescription, "description", "", "New description")
	editCmd.Flags().BoolVar(&editMultiActive, "multi-active", false, "Allow multiple concurrently published versions")
}

func runEdit(cmd *cobra.Command, args []string) error {
	s, err := cmdutil.GetStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	entry, err := resolveEntry(cmd.Context(), s, args[0], args[1])
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("name") {
		entry.Name = editName
	}
	if cmd.Flags().Changed("description") {
		entry.Description = editDescription
	}
	if cmd.Flags().Changed("multi-active") {
		entry.SingleActiveVersion = !editMultiActive
	}

	if err := s.UpdateEntry(cmd.Context(), entry); err != nil {
		return fmt.Errorf("failed to update entry: %w", err)
	}

	return cmdutil.PrintResourceWithSuccess(os.Stdout, entry,
		fmt.Sprintf("Entry %q updated successfully", entry.Slug))
}
