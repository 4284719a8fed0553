package org

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/seqvault/seqvault/cmd/seqvault/cmdutil"
	"github.com/seqvault/seqvault/internal/cli/output"
	"github.com/seqvault/seqvault/pkg/registry/models"
)

var getCmd = &cobra.Command{
	Use:   "get <slug>",
	Short: "Show an organization",
	Args:  cobra.ExactArgs(1),
	RunE:  runGet,
}

// orgDetail renders one organization as a key-value table.
type orgDetail struct {
	org *models.Organization
}

// Headers implements TableRenderer.
func (d orgDetail) Headers() []string {
	return []string{"FIELD", "VALUE"}
}

// Rows implements TableRenderer.
func (d orgDetail) Rows() [][]string {
	o := d.org
	return [][]string{
		{"ID", o.ID},
		{"Slug", o.Slug},
		{"Name", o.DisplayName},
		{"Status", string(o.Status)},
		{"Website", cmdutil.EmptyOr(o.Website, "-")},
		{"Description", cmdutil.EmptyOr(o.Description, "-")},
		{"Created", o.CreatedAt.Format("2006-01-02 15:04:05")},
		{"Updated", o.UpdatedAt.Format("2006-01-02 15:04:05")},
	}
}

var _ output.TableRenderer = orgDetail{}

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

	return cmdutil.PrintResource(os.Stdout, org, orgDetail{org})
}
