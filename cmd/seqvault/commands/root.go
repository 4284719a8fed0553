// Package commands implements the CLI commands for seqvault.
package commands

import (
	"errors"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/seqvault/seqvault/cmd/seqvault/cmdutil"
	blobcmd "github.com/seqvault/seqvault/cmd/seqvault/commands/blob"
	cachecmd "github.com/seqvault/seqvault/cmd/seqvault/commands/cache"
	entrycmd "github.com/seqvault/seqvault/cmd/seqvault/commands/entry"
	orgcmd "github.com/seqvault/seqvault/cmd/seqvault/commands/org"
	versioncmd "github.com/seqvault/seqvault/cmd/seqvault/commands/version"
	"github.com/seqvault/seqvault/internal/logger"
	"github.com/seqvault/seqvault/pkg/config"
	seqprom "github.com/seqvault/seqvault/pkg/metrics/prometheus"
)

var (
	// Version information injected at build time.
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "seqvault",
	Short: "SeqVault - Storage and caching for biological data",
	Long: `seqvault manages the SeqVault registry: organizations, data source
and tool entries, their versions, and the blob payloads attached to them.

Use "seqvault [command] --help" for more information about a command.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Sync flags to cmdutil.Flags for subcommands
		cmdutil.Flags.ConfigPath, _ = cmd.Flags().GetString("config")
		cmdutil.Flags.Output, _ = cmd.Flags().GetString("output")
		cmdutil.Flags.NoColor, _ = cmd.Flags().GetBool("no-color")
		cmdutil.Flags.Verbose, _ = cmd.Flags().GetBool("verbose")

		// Best effort: configure logging from the config file when one
		// loads; commands that need config report their own errors.
		if cfg, err := cmdutil.GetConfig(); err == nil {
			level := cfg.Logging.Level
			if cmdutil.Flags.Verbose {
				level = "DEBUG"
			}
			_ = logger.Init(logger.Config{
				Level:  level,
				Format: cfg.Logging.Format,
				Output: cfg.Logging.Output,
			})

			// Scrape endpoint for long-running invocations (bulk blob
			// transfers). The server dies with the process.
			if cfg.Metrics.Enabled && cfg.Metrics.Port > 0 {
				exporter := seqprom.NewExporter(cfg.Metrics.Port)
				go func() {
					if err := exporter.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
						logger.Debug("metrics exporter stopped", logger.Err(err))
					}
				}()
			}
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

// GetRootCmd returns the root command for testing purposes.
func GetRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().String("config", "", "Config file path (default: "+config.GetDefaultConfigPath()+")")
	rootCmd.PersistentFlags().StringP("output", "o", "table", "Output format (table|json|yaml)")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")

	rootCmd.Version = Version
	rootCmd.SetVersionTemplate(buildVersionString())

	// Add subcommands
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(orgcmd.Cmd)
	rootCmd.AddCommand(entrycmd.Cmd)
	rootCmd.AddCommand(versioncmd.Cmd)
	rootCmd.AddCommand(blobcmd.Cmd)
	rootCmd.AddCommand(cachecmd.Cmd)
}

// PrintErr prints an error message to stderr.
func PrintErr(format string, args ...any) {
	rootCmd.PrintErrf(format+"\n", args...)
}

// Exit prints an error and exits with code 1.
func Exit(format string, args ...any) {
	PrintErr(format, args...)
	os.Exit(1)
}
