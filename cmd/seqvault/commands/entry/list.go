package entry

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/seqvault/seqvault/cmd/seqvault/cmdutil"
	"github.com/seqvault/seqvault/pkg/registry/models"
)

var listCmd = &cobra.Command{
	Use:   "list <org>",
	Short: "List an organization's entries",
	Long: `List all registry entries owned by an organization.

Examples:
  # List as table
  seqvault entry list uniprot

  # List as JSON
  seqvault entry list uniprot -o json`,
	Args: cobra.ExactArgs(1),
	RunE: runList,
}

// EntryList is a list of entries for table rendering.
type EntryList []*models.RegistryEntry

// Headers implements TableRenderer.
func (el EntryList) Headers() []string {
	return []string{"SLUG", "TYPE", "NAME", "SINGLE ACTIVE", "CREATED"}
}

// Rows implements TableRenderer.
func (el EntryList) Rows() [][]string {
	rows := make([][]string, 0, len(el))
	for _, e := range el {
		rows = append(rows, []string{
			e.Slug,
			string(e.EntryType),
			e.Name,
			cmdutil.BoolToYesNo(e.SingleActiveVersion),
			e.CreatedAt.Format("2006-01-02"),
		})
	}
	return rows
}

func runList(cmd *cobra.Command, args []string) error {
	s, err := cmdutil.GetStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	org, err := s.GetOrganization(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get organization: %w", err)
	}

	entries, err := s.ListEntries(cmd.Context(), org.ID)
	if err != nil {
		return fmt.Errorf("failed to list entries: %w", err)
	}

	return cmdutil.PrintOutput(os.Stdout, entries, len(entries) == 0, "No entries found.", EntryList(entries))
}
