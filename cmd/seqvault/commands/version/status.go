package version

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/seqvault/seqvault/cmd/seqvault/cmdutil"
	"github.com/seqvault/seqvault/pkg/registry/models"
)

var statusCmd = &cobra.Command{
	Use:   "status <org> <entry> <label> <status>",
	Short: "Advance a version's lifecycle status",
	Long: `Advance a version to a later lifecycle status.

Transitions are forward-only along draft, published, deprecated,
archived. Stages may be skipped but never revisited. Publishing fails
if a sibling version is already published and the entry enforces a
single active version.

Examples:
  # Deprecate a published version
  seqvault version status uniprot swissprot 2025_06 deprecated

  # Archive it for good
  seqvault version status uniprot swissprot 2025_06 archived`,
	Args: cobra.ExactArgs(4),
	RunE: runStatus,
}

var publishCmd = &cobra.Command{
	Use:   "publish <org> <entry> <label>",
	Short: "Publish a version",
	Long: `Publish a draft version. Shorthand for "version status ... published".

Examples:
  seqvault version publish uniprot swissprot 2026_01`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return advanceStatus(cmd, args[0], args[1], args[2], models.VersionPublished)
	},
}

func runStatus(cmd *cobra.Command, args []string) error {
	next := models.VersionStatus(args[3])
	if !next.Valid() {
		return fmt.Errorf("invalid status %q (valid: draft, published, deprecated, archived)", args[3])
	}
	return advanceStatus(cmd, args[0], args[1], args[2], next)
}

func advanceStatus(cmd *cobra.Command, orgSlug, entrySlug, label string, next models.VersionStatus) error {
	s, err := cmdutil.GetStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	org, err := s.GetOrganization(cmd.Context(), orgSlug)
	if err != nil {
		return fmt.Errorf("failed to get organization: %w", err)
	}
	entry, err := s.GetEntry(cmd.Context(), org.ID, entrySlug)
	if err != nil {
		return fmt.Errorf("failed to get entry: %w", err)
	}
	version, err := s.GetVersionByLabel(cmd.Context(), entry.ID, label)
	if err != nil {
		return fmt.Errorf("failed to get version: %w", err)
	}

	if err := s.UpdateVersionStatus(cmd.Context(), version.ID, next); err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}
	version.Status = next

	return cmdutil.PrintResourceWithSuccess(os.Stdout, version,
		fmt.Sprintf("Version %q is now %s", version.Label, next))
}
