package blob

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/seqvault/seqvault/cmd/seqvault/cmdutil"
)

var fetchFile string

var fetchCmd = &cobra.Command{
	Use:   "fetch <org> <entry> <label>",
	Short: "Download a version's payload",
	Long: `Download a version's payload and verify it against the checksum
recorded in the registry.

Without --file the raw bytes go to stdout.

Examples:
  # Download to a file
  seqvault blob fetch uniprot swissprot 2026_01 -f ./swissprot.fasta.gz

  # Pipe to another tool
  seqvault blob fetch uniprot swissprot 2026_01 | zcat | head`,
	Args: cobra.ExactArgs(3),
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().StringVarP(&fetchFile, "file", "f", "", "Write the payload to this file instead of stdout")
}

func runFetch(cmd *cobra.Command, args []string) error {
	p, cleanup, err := cmdutil.GetPlatform(cmd.Context())
	if err != nil {
		return err
	}
	defer cleanup()

	version, err := p.ResolveVersion(cmd.Context(), args[0], args[1], args[2])
	if err != nil {
		return fmt.Errorf("failed to resolve version: %w", err)
	}

	data, ref, err := p.FetchVersionBlob(cmd.Context(), version.ID)
	if err != nil {
		return fmt.Errorf("failed to fetch blob: %w", err)
	}

	if fetchFile == "" {
		_, err := os.Stdout.Write(data)
		return err
	}

	if err := os.WriteFile(fetchFile, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", fetchFile, err)
	}
	cmdutil.PrintSuccess(fmt.Sprintf("Wrote %d bytes to %s (sha256:%s)", ref.Size, fetchFile, ref.Checksum))
	return nil
}
