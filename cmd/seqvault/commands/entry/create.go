package entry

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/seqvault/seqvault/cmd/seqvault/cmdutil"
	"github.com/seqvault/seqvault/pkg/registry/models"
)

var (
	createSlug        string
	createType        string
	createName        string
	createDescription string
	createMultiActive bool
)

var createCmd = &cobra.Command{
	Use:   "create <org>",
	Short: "Create a registry entry",
	Long: `Create a new registry entry under an organization.

The slug and entry type are immutable after creation. By default at most
one version of the entry may be published at a time; pass --multi-active
to allow several concurrently published versions.

Examples:
  # Create a data source entry
  seqvault entry create uniprot --slug swissprot --type data_source --name "Swiss-Prot"

  # Create a tool entry allowing multiple published versions
  seqvault entry create ebi --slug blast --type tool --name "BLAST" --multi-active`,
	Args: cobra.ExactArgs(1),
	RunE: runCreate,
}

func init() {
	createCmd.Flags().StringVar(&createSlug, "slug", "", "Entry slug, unique within the organization (required)")
	createCmd.Flags().StringVar(&createType, "type", "", "Entry type: data_source or tool (required)")
	createCmd.Flags().StringVar(&createName, "name", "", "Human-readable name (required)")
	createCmd.Flags().StringVar(&createDescription, "description", "", "Entry description")
	createCmd.Flags().BoolVar(&createMultiActive, "multi-active", false, "Allow multiple concurrently published versions")
	_ = createCmd.MarkFlagRequired("slug")
	_ = createCmd.MarkFlagRequired("type")
	_ = createCmd.MarkFlagRequired("name")
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

	entry := &models.RegistryEntry{
		OrganizationID:      org.ID,
		Slug:                createSlug,
		EntryType:           models.EntryType(createType),
		Name:                createName,
		Description:         createDescription,
		SingleActiveVersion: !createMultiActive,
	}

	if _, err := s.CreateEntry(cmd.Context(), entry); err != nil {
		return fmt.Errorf("failed to create entry: %w", err)
	}

	return cmdutil.PrintResourceWithSuccess(os.Stdout, entry,
		fmt.Sprintf("Entry %q created in organization %q", entry.Slug, org.Slug))
}
