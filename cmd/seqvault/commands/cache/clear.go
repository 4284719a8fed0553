package cache

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seqvault/seqvault/cmd/seqvault/cmdutil"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Empty the client cache",
	Long: `Remove every record from both cache tiers.

Cached values are always re-derivable from the backends, so this is
safe at any time.`,
	Args: cobra.NoArgs,
	RunE: runClear,
}

func runClear(cmd *cobra.Command, args []string) error {
	c, err := cmdutil.GetCache()
	if err != nil {
		return err
	}
	defer c.Close()

	if err := c.Clear(); err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}

	cmdutil.PrintSuccess("Cache cleared")
	return nil
}
