package entry

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/seqvault/seqvault/cmd/seqvault/cmdutil"
	"github.com/seqvault/seqvault/pkg/registry/models"
)

var getCmd = &cobra.Command{
	Use:   "get <org> <entry>",
	Short: "Show a registry entry",
	Args:  cobra.ExactArgs(2),
	RunE:  runGet,
}

// entryDetail renders one entry as a key-value table.
type entryDetail struct {
	entry *models.RegistryEntry
}

// Headers implements TableRenderer.
func (d entryDetail) Headers() []string {
	return []string{"FIELD", "VALUE"}
}

// Rows implements TableRenderer.
func (d entryDetail) Rows() [][]string {
	e := d.entry
	return [][]string{
		{"ID", e.ID},
		{"Slug", e.Slug},
		{"Type", string(e.EntryType)},
		{"Name", e.Name},
		{"Description", cmdutil.EmptyOr(e.Description, "-")},
		{"Single active version", cmdutil.BoolToYesNo(e.SingleActiveVersion)},
		{"Created", e.CreatedAt.Format("2006-01-02 15:04:05")},
		{"Updated", e.UpdatedAt.Format("2006-01-02 15:04:05")},
	}
}

func runGet(cmd *cobra.Command, args []string) error {
	s, err := cmdutil.GetStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	entry, err := resolveEntry(cmd.Context(), s, args[0], args[1])
	if err != nil {
		return err
	}

	return cmdutil.PrintResource(os.Stdout, entry, entryDetail{entry})
}
