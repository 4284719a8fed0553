// Package blob implements payload transfer commands for seqvault.
package blob

import (
	"github.com/spf13/cobra"
)

// Cmd is the parent command for blob payload management.
var Cmd = &cobra.Command{
	Use:   "blob",
	Short: "Version payload management",
	Long: `Upload, download, and manage the blob payload attached to a version.

A version carries at most one payload. Uploads are verified end to end:
the object store's checksum must match the uploaded bytes, and every
download is re-verified against the checksum recorded in the registry.

Examples:
  # Upload a payload
  seqvault blob attach uniprot swissprot 2026_01 ./swissprot.fasta.gz

  # Download it again
  seqvault blob fetch uniprot swissprot 2026_01 -f ./out.fasta.gz

  # Hand out a time-limited download link
  seqvault blob url uniprot swissprot 2026_01 --ttl 1h`,
}

func init() {
	Cmd.AddCommand(attachCmd)
	Cmd.AddCommand(fetchCmd)
	Cmd.AddCommand(urlCmd)
	Cmd.AddCommand(detachCmd)
}
