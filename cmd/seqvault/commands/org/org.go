// Package org implements organization management commands for seqvault.
package org

import (
	"github.com/spf13/cobra"
)

// Cmd is the parent command for organization management.
var Cmd = &cobra.Command{
	Use:   "org",
	Short: "Organization management",
	Long: `Manage organizations in the SeqVault registry.

Organizations own registry entries. The slug is the public immutable
identifier and never changes after creation; deleting an organization
soft-deletes it so that its entries keep a valid owner reference.

Examples:
  # List all organizations
  seqvault org list

  # Create an organization
  seqvault org create --slug uniprot --name "UniProt Consortium"

  # Show one organization
  seqvault org get uniprot

  # Soft-delete an organization
  seqvault org delete uniprot`,
}

func init() {
	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(getCmd)
	Cmd.AddCommand(createCmd)
	Cmd.AddCommand(editCmd)
	Cmd.AddCommand(deleteCmd)
}
