// Package version implements version lifecycle commands for seqvault.
package version

import (
	"github.com/spf13/cobra"
)

// Cmd is the parent command for version management.
var Cmd = &cobra.Command{
	Use:   "version",
	Short: "Version lifecycle management",
	Long: `Manage versions: independently-lifecycled releases of a registry entry.

A version is addressed by organization slug, entry slug, and label. It
starts as a draft and moves forward only: draft, published, deprecated,
archived. When the owning entry enforces a single active version, at
most one of its versions may be published at a time.

Examples:
  # List an entry's versions
  seqvault version list uniprot swissprot

  # Create a draft
  seqvault version create uniprot swissprot 2026_01

  # Publish it
  seqvault version publish uniprot swissprot 2026_01`,
}

func init() {
	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(getCmd)
	Cmd.AddCommand(createCmd)
	Cmd.AddCommand(statusCmd)
	Cmd.AddCommand(publishCmd)
	Cmd.AddCommand(deleteCmd)
}
