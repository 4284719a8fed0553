package version

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/seqvault/seqvault/cmd/seqvault/cmdutil"
	"github.com/seqvault/seqvault/pkg/registry/models"
)

var getCmd = &cobra.Command{
	Use:   "get <org> <entry> <label>",
	Short: "Show a version",
	Args:  cobra.ExactArgs(3),
	RunE:  runGet,
}

// versionDetail renders one version as a key-value table.
type versionDetail struct {
	version *models.Version
}

// Headers implements TableRenderer.
func (d versionDetail) Headers() []string {
	return []string{"FIELD", "VALUE"}
}

// Rows implements TableRenderer.
func (d versionDetail) Rows() [][]string {
	v := d.version
	rows := [][]string{
		{"ID", v.ID},
		{"Label", v.Label},
		{"Status", string(v.Status)},
	}
	if v.HasBlob() {
		rows = append(rows,
			[]string{"Blob key", v.BlobKey},
			[]string{"Blob size", fmt.Sprintf("%d", v.BlobSize)},
			[]string{"Blob checksum", v.BlobChecksum},
			[]string{"Blob content type", cmdutil.EmptyOr(v.BlobContentType, "-")},
		)
	} else {
		rows = append(rows, []string{"Blob", "not attached"})
	}
	rows = append(rows,
		[]string{"Created", v.CreatedAt.Format("2006-01-02 15:04:05")},
		[]string{"Updated", v.UpdatedAt.Format("2006-01-02 15:04:05")},
	)
	return rows
}

func runGet(cmd *cobra.Command, args []string) error {
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
	version, err := s.GetVersionByLabel(cmd.Context(), entry.ID, args[2])
	if err != nil {
		return fmt.Errorf("failed to get version: %w", err)
	}

	return cmdutil.PrintResource(os.Stdout, version, versionDetail{version})
}
