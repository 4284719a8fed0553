// Package cmdutil provides shared utilities for seqvault commands.
package cmdutil

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/seqvault/seqvault/internal/cli/output"
	"github.com/seqvault/seqvault/pkg/clientcache"
	"github.com/seqvault/seqvault/pkg/config"
	"github.com/seqvault/seqvault/pkg/platform"
	"github.com/seqvault/seqvault/pkg/registry/store"
)

// Flags stores global flag values accessible by subcommands.
var Flags = &GlobalFlags{}

// GlobalFlags holds the global flag values.
type GlobalFlags struct {
	ConfigPath string
	Output     string
	NoColor    bool
	Verbose    bool
	Force      bool
}

var (
	loadOnce  sync.Once
	loadedCfg *config.Config
	loadErr   error
)

// GetConfig loads the configuration once per process, honoring the
// --config flag.
func GetConfig() (*config.Config, error) {
	loadOnce.Do(func() {
		loadedCfg, loadErr = config.Load(Flags.ConfigPath)
	})
	return loadedCfg, loadErr
}

// GetStore opens the registry database from configuration. The caller
// owns the returned store and must Close it.
func GetStore() (store.Store, error) {
	cfg, err := GetConfig()
	if err != nil {
		return nil, err
	}
	s, err := config.NewRegistryStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open registry database: %w", err)
	}
	return s, nil
}

// GetPlatform builds the storage facade: registry database plus the S3
// blob backend. The returned cleanup closes the database connection.
func GetPlatform(ctx context.Context) (*platform.Platform, func(), error) {
	cfg, err := GetConfig()
	if err != nil {
		return nil, nil, err
	}

	registry, err := config.NewRegistryStore(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open registry database: %w", err)
	}

	blobs, err := config.NewBlobStore(ctx, cfg, nil)
	if err != nil {
		_ = registry.Close()
		return nil, nil, fmt.Errorf("failed to connect to blob storage: %w", err)
	}

	cleanup := func() { _ = registry.Close() }
	return platform.New(registry, blobs), cleanup, nil
}

// GetCache builds the two-tier client cache backed by the configured
// remote API.
func GetCache() (*clientcache.Cache, error) {
	cfg, err := GetConfig()
	if err != nil {
		return nil, err
	}
	return config.NewClientCache(cfg, nil)
}

// GetOutputFormatParsed returns the parsed output format.
func GetOutputFormatParsed() (output.Format, error) {
	return output.ParseFormat(Flags.Output)
}

// PrintOutput prints data in the selected format (JSON, YAML, or table).
// For table format, it displays emptyMsg if data is empty, otherwise uses
// the tableRenderer.
func PrintOutput(w io.Writer, data any, isEmpty bool, emptyMsg string, tableRenderer output.TableRenderer) error {
	format, err := GetOutputFormatParsed()
	if err != nil {
		return err
	}

	switch format {
	case output.FormatJSON:
		return output.PrintJSON(w, data)
	case output.FormatYAML:
		return output.PrintYAML(w, data)
	default:
		if isEmpty {
			_, _ = fmt.Fprintln(w, emptyMsg)
			return nil
		}
		return output.PrintTable(w, tableRenderer)
	}
}

// PrintResource prints a single resource in the selected format. For table
// format, it uses the provided tableRenderer.
func PrintResource(w io.Writer, data any, tableRenderer output.TableRenderer) error {
	format, err := GetOutputFormatParsed()
	if err != nil {
		return err
	}

	switch format {
	case output.FormatJSON:
		return output.PrintJSON(w, data)
	case output.FormatYAML:
		return output.PrintYAML(w, data)
	default:
		return output.PrintTable(w, tableRenderer)
	}
}

// PrintResourceWithSuccess prints a resource in the selected format. For
// table format, it displays a success message instead. Useful for create
// and update operations.
func PrintResourceWithSuccess(w io.Writer, data any, successMsg string) error {
	format, err := GetOutputFormatParsed()
	if err != nil {
		return err
	}

	switch format {
	case output.FormatJSON:
		return output.PrintJSON(w, data)
	case output.FormatYAML:
		return output.PrintYAML(w, data)
	default:
		PrintSuccess(successMsg)
		return nil
	}
}

// PrintSuccess prints a success message if the output format is table.
func PrintSuccess(msg string) {
	format, err := GetOutputFormatParsed()
	if err != nil || format != output.FormatTable {
		return
	}
	printer := output.NewPrinter(os.Stdout, format, !Flags.NoColor)
	printer.Success(msg)
}

// RunDeleteWithConfirmation prompts on stdin for confirmation (unless the
// --force flag is set) and runs deleteFn.
func RunDeleteWithConfirmation(resourceType, name string, deleteFn func() error) error {
	if !Flags.Force {
		confirmed, err := Confirm(fmt.Sprintf("Delete %s %q?", resourceType, name))
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := deleteFn(); err != nil {
		return err
	}

	PrintSuccess(fmt.Sprintf("%s %q deleted successfully", resourceType, name))
	return nil
}

// Confirm asks a yes/no question on stdin. Only "y" and "yes" count as
// confirmation.
func Confirm(question string) (bool, error) {
	fmt.Printf("%s [y/N]: ", question)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false, fmt.Errorf("failed to read confirmation: %w", err)
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes", nil
}

// BoolToYesNo converts a boolean to "yes" or "no" string.
func BoolToYesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// EmptyOr returns the value if not empty, otherwise returns the fallback.
// Useful for table display where empty fields should show "-".
func EmptyOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
