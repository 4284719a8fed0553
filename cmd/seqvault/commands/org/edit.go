package org

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/seqvault/seqvault/cmd/seqvault/cmdutil"
)

var (
	editName        string
	editWebsite     string
	editDescription string
)

var editCmd = &cobra.Command{
	Use:   "edit <slug>",
	Short: "Edit an organization",
	Long: `Edit an organization's display name, website, or description.

The slug is immutable and cannot be changed.

Examples:
  # Rename an organization
  seqvault org edit uniprot --name "UniProt Knowledgebase"

  # Clear the website
  seqvault org edit uniprot --website ""`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func init() {
	editCmd.Flags().StringVar(&editName, "name", "", "New display name")
	editCmd.Flags().StringVar(&editWebsite, "website", "", "New website URL")
	editCmd.Flags().StringVar(&editDescription, "description", "", "New description")
}

func runEdit(cmd *cobra.Command, args []string) error {
	s, err := cmdutil.GetStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	org, err := s.GetOrganization(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get organization: %w", err)
	}

	if cmd.Flags().Changed("name") {
		org.DisplayName = editName
	}
	if cmd.Flags().Changed("website") {
		org.Website = editWebsite
	}
	if cmd.Flags().Changed("description") {
		org.Description = editDescription
	}

	if err := s.UpdateOrganization(cmd.Context(), org); err != nil {
		return fmt.Errorf("failed to update organization: %w", err)
	}

	return cmdutil.PrintResourceWithSuccess(os.Stdout, org,
		fmt.Sprintf("Organization %q updated successfully", org.Slug))
}
