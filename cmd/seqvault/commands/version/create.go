package version

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/seqvault/seqvault/cmd/seqvault/cmdutil"
	"github.com/seqvault/seqvault/pkg/registry/models"
)

var createCmd = &cobra.Command{
	Use:   "create <org> <entry> <label>",
	Short: "Create a draft version",
	Long: `Create a new version of a registry entry.

The version starts in draft status with no payload. Attach a blob with
"seqvault blob attach" and move it forward with "seqvault version
publish".

Examples:
  # Create a draft for a yearly release
  seqvault version create uniprot swissprot 2026_01`,
	Args: cobra.ExactArgs(3),
	RunE: runCreate,
}

func runCreate(cmd *cobra.Command, args []string) error {
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

	version := &models.Version{
		EntryID: entry.ID,
		Label:   args[2],
		Status:  models.VersionDraft,
	}
	if _, err := s.CreateVersion(cmd.Context(), version); err != nil {
		return fmt.Errorf("failed to create version: %w", err)
	}

	return cmdutil.PrintResourceWithSuccess(os.Stdout, version,
		fmt.Sprintf("Version %q created for entry %q", version.Label, entry.Slug))
}
