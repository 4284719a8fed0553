package blob

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/seqvault/seqvault/cmd/seqvault/cmdutil"
)

var attachContentType string

var attachCmd = &cobra.Command{
	Use:   "attach <org> <entry> <label> <file>",
	Short: "Upload a version's payload",
	Long: `Upload a file as a version's payload.

The file is uploaded to object storage first; the version's blob
coordinates are recorded only once the object is durable. Attaching to
a version that already has a payload replaces it.

Examples:
  # Upload a compressed FASTA file
  seqvault blob attach uniprot swissprot 2026_01 ./swissprot.fasta.gz --content-type application/gzip`,
	Args: cobra.ExactArgs(4),
	RunE: runAttach,
}

func init() {
	attachCmd.Flags().StringVar(&attachContentType, "content-type", "application/octet-stream", "MIME type recorded with the payload")
}

func runAttach(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[3])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[3], err)
	}

	p, cleanup, err := cmdutil.GetPlatform(cmd.Context())
	if err != nil {
		return err
	}
	defer cleanup()

	version, err := p.ResolveVersion(cmd.Context(), args[0], args[1], args[2])
	if err != nil {
		return fmt.Errorf("failed to resolve version: %w", err)
	}

	ref, err := p.AttachBlobToVersion(cmd.Context(), version.ID, data, attachContentType)
	if err != nil {
		return fmt.Errorf("failed to attach blob: %w", err)
	}

	cmdutil.PrintSuccess(fmt.Sprintf("Uploaded %d bytes to %s (sha256:%s)", ref.Size, ref.Key, ref.Checksum))
	return nil
}
