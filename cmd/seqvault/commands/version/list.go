package version

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/seqvault/seqvault/cmd/seqvault/cmdutil"
	"github.com/seqvault/seqvault/pkg/registry/models"
)

var listCmd = &cobra.Command{
	Use:   "list <org> <entry>",
	Short: "List an entry's versions",
	Long: `List all versions of a registry entry, oldest first.

Examples:
  # List as table
  seqvault version list uniprot swissprot

  # List as JSON
  seqvault version list uniprot swissprot -o json`,
	Args: cobra.ExactArgs(2),
	RunE: runList,
}

// VersionList is a list of versions for table rendering.
type VersionList []*models.Version

// Headers implements TableRenderer.
func (vl VersionList) Headers() []string {
	return []string{"LABEL", "STATUS", "BLOB", "SIZE", "CREATED"}
}

// Rows implements TableRenderer.
func (vl VersionList) Rows() [][]string {
	rows := make([][]string, 0, len(vl))
	for _, v := range vl {
		size := "-"
		if v.HasBlob() {
			size = fmt.Sprintf("%d", v.BlobSize)
		}
		rows = append(rows, []string{
			v.Label,
			string(v.Status),
			cmdutil.BoolToYesNo(v.HasBlob()),
			size,
			v.CreatedAt.Format("2006-01-02"),
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
	entry, err := s.GetEntry(cmd.Context(), org.ID, args[1])
	if err != nil {
		return fmt.Errorf("failed to get entry: %w", err)
	}

	versions, err := s.ListVersions(cmd.Context(), entry.ID)
	if err != nil {
		return fmt.Errorf("failed to list versions: %w", err)
	}

	return cmdutil.PrintOutput(os.Stdout, versions, len(versions) == 0, "No versions found.", VersionList(versions))
}
