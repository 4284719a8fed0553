package org

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/seqvault/seqvault/cmd/seqvault/cmdutil"
	"github.com/seqvault/seqvault/pkg/registry/models"
)

var listIncludeDeleted bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List organizations",
	Long: `List organizations in the registry.

Examples:
  # List active organizations as table
  seqvault org list

  # Include soft-deleted organizations
  seqvault org list --include-deleted

  # List as JSON
  seqvault org list -o json`,
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVar(&listIncludeDeleted, "include-deleted", false, "Include soft-deleted organizations")
}

// OrgList is a list of organizations for table rendering.
type OrgList []*models.Organization

// Headers implements TableRenderer.
func (ol OrgList) Headers() []string {
	return []string{"SLUG", "NAME", "STATUS", "WEBSITE", "CREATED"}
}

// Rows implements TableRenderer.
func (ol OrgList) Rows() [][]string {
	rows := make([][]string, 0, len(ol))
	for _, o := range ol {
		rows = append(rows, []string{
			o.Slug,
			o.DisplayName,
			string(o.Status),
			cmdutil.EmptyOr(o.Website, "-"),
			o.CreatedAt.Format("2006-01-02"),
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

	orgs, err := s.ListOrganizations(cmd.Context(), listIncludeDeleted)
	if err != nil {
		return fmt.Errorf("failed to list organizations: %w", err)
	}

	return cmdutil.PrintOutput(os.Stdout, orgs, len(orgs) == 0, "No organizations found.", OrgList(orgs))
}
