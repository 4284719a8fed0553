package blob

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/seqvault/seqvault/cmd/seqvault/cmdutil"
)

var urlTTL time.Duration

var urlCmd = &cobra.Command{
	Use:   "url <org> <entry> <label>",
	Short: "Issue a presigned download URL",
	Long: `Issue a presigned, time-limited download URL for a version's payload.

Anyone holding the URL can download the object until it expires, without
seqvault credentials. The default lifetime comes from the blob.presign_ttl
configuration setting.

Examples:
  # Default lifetime
  seqvault blob url uniprot swissprot 2026_01

  # One-hour link
  seqvault blob url uniprot swissprot 2026_01 --ttl 1h`,
	Args: cobra.ExactArgs(3),
	RunE: runURL,
}

func init() {
	urlCmd.Flags().DurationVar(&urlTTL, "ttl", 0, "URL lifetime (default: blob.presign_ttl from config)")
}

func runURL(cmd *cobra.Command, args []string) error {
	cfg, err := cmdutil.GetConfig()
	if err != nil {
		return err
	}
	ttl := urlTTL
	if ttl <= 0 {
		ttl = cfg.Blob.PresignTTL
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

	url, err := p.VersionBlobURL(cmd.Context(), version.ID, ttl)
	if err != nil {
		return fmt.Errorf("failed to presign URL: %w", err)
	}

	fmt.Println(url)
	return nil
}
