// Package entry implements registry entry management commands for seqvault.
package entry

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seqvault/seqvault/pkg/registry/models"
	"github.com/seqvault/seqvault/pkg/registry/store"
)

// Cmd is the parent command for registry entry management.
var Cmd = &cobra.Command{
	Use:   "entry",
	Short: "Registry entry management",
	Long: `Manage registry entries: the cataloged data sources and tools.

Every entry belongs to exactly one organization and is addressed by the
pair of organization slug and entry slug. The slug and entry type are
immutable after creation.

Examples:
  # List an organization's entries
  seqvault entry list uniprot

  # Create a data source entry
  seqvault entry create uniprot --slug swissprot --type data_source --name "Swiss-Prot"

  # Search the whole registry
  seqvault entry search "protein"`,
}

func init() {
	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(getCmd)
	Cmd.AddCommand(createCmd)
	Cmd.AddCommand(editCmd)
	Cmd.AddCommand(deleteCmd)
	Cmd.AddCommand(searchCmd)
}

// resolveEntry looks up an entry by organization slug and entry slug.
func resolveEntry(ctx context.Context, s store.Store, orgSlug, entrySlug string) (*models.RegistryEntry, error) {
	org, err := s.GetOrganization(ctx, orgSlug)
	if err != nil {
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}
	entry, err := s.GetEntry(ctx, org.ID, entrySlug)
	if err != nil {
		return nil, fmt.Errorf("failed to get entry: %w", err)
	}
	return entry, nil
}
