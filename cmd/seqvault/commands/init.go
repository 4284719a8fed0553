package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/seqvault/seqvault/cmd/seqvault/cmdutil"
	"github.com/seqvault/seqvault/pkg/config"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a configuration file",
	Long: `Write a configuration file with default values.

The file is written to the default location unless --config points
somewhere else. Edit it afterwards to set the blob storage bucket and
credentials for your deployment.

Examples:
  # Write the default config
  seqvault init

  # Write to a custom location
  seqvault init --config /etc/seqvault/config.yaml`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing config file")
}

func runInit(cmd *cobra.Command, args []string) error {
	path := cmdutil.Flags.ConfigPath
	if path == "" {
		path = config.GetDefaultConfigPath()
	}

	if _, err := os.Stat(path); err == nil && !initForce {
		return fmt.Errorf("config file already exists at %s (use --force to overwrite)", path)
	}

	cfg := config.GetDefaultConfig()
	if err := config.SaveConfig(cfg, path); err != nil {
		return err
	}

	fmt.Printf("Configuration written to %s\n", path)
	fmt.Println("Edit the blob section to point at your S3 bucket before first use.")
	return nil
}
