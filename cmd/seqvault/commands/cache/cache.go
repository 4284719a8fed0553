// Package cache implements client cache commands for seqvault.
package cache

import (
	"github.com/spf13/cobra"
)

// Cmd is the parent command for client cache management.
var Cmd = &cobra.Command{
	Use:   "cache",
	Short: "Client-side read cache",
	Long: `Inspect and manage the client-side read cache.

Read operations against a remote seqvault API are cached in two tiers:
an in-process memory tier and a TTL-expired disk tier under the
configured cache directory. The cache never holds source-of-truth data;
clearing it is always safe.

Examples:
  # Read through the cache
  seqvault cache fetch get_entry --param org=uniprot --param entry=swissprot

  # Show cache location and contents
  seqvault cache info

  # Drop everything
  seqvault cache clear`,
}

func init() {
	Cmd.AddCommand(fetchCmd)
	Cmd.AddCommand(infoCmd)
	Cmd.AddCommand(clearCmd)
}
