package org

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seqvault/seqvault/cmd/seqvault/cmdutil"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <slug>",
	Short: "Soft-delete an organization",
	Long: `Soft-delete an organization.

The organization is marked deleted but its row is kept so that registry
entries retain a valid owner reference. Deleting an already deleted
organization succeeds without change.

Examples:
  # Delete with confirmation prompt
  seqvault org delete uniprot

  # Delete without prompting
  seqvault org delete uniprot --force`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func init() {
	deleteCmd.Flags().BoolVar(&cmdutil.Flags.Force, "force", false, "Skip confirmation prompt")
}

func runDelete(cmd *cobra.Command, args []string) error {
	s, err := cmdutil.GetStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	return cmdutil.RunDeleteWithConfirmation("organization", args[0], func() error {
		if err := s.DeleteOrganization(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("failed to delete organization: %w", err)
		}
		return nil
	})
}
