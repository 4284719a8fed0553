package org

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/seqvault/seqvault/cmd/seqvault/cmdutil"
	"github.com/seqvault/seqvault/pkg/registry/models"
)

var (
	createSlug        string
	createName        string
	createWebsite     string
	createDescription string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new organization",
	Long: `Create a new organization in the registry.

The slug is immutable after creation and must be a lowercase URL-safe
identifier (letters, digits, hyphens, underscores).

Examples:
  # Create an organization
  seqvault org create --slug uniprot --name "UniProt Consortium"

  # With website and description
  seqvault org create --slug ensembl --name Ensembl \
    --website https://www.ensembl.org --description "Genome browser"`,
	RunE: runCreate,
}

func init() {
	createCmd.Flags().StringVar(&createSlug, "slug", "", "Organization slug (required)")
	createCmd.Flags().StringVar(&createName, "name", "", "Display name (required)")
	createCmd.Flags().StringVar(&createWebsite, "website", "", "Website URL")
	createCmd.Flags().StringVar(&createDescription, "description", "", "Description")
	_ = createCmd.MarkFlagRequired("slug")
	_ = createCmd.MarkFlagRequired("name")
}

func runCreate(cmd *cobra.Command, args []string) error {
	s, err := cmdutil.GetStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	org := &models.Organization{
		Slug:        createSlug,
		DisplayName: createName,
		Website:     createWebsite,
		Description: createDescription,
	}
	if _, err := s.CreateOrganization(cmd.Context(), org); err != nil {
		return fmt.Errorf("failed to create organization: %w", err)
	}

	return cmdutil.PrintResourceWithSuccess(os.Stdout, org,
		fmt.Sprintf("Organization %q created successfully", org.Slug))
}
