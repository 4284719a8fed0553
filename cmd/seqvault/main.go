// seqvault is the command-line interface for the SeqVault registry:
// organizations, entries, versions, blob payloads, and the client-side
// read cache.
package main

import (
	"os"

	"github.com/seqvault/seqvault/cmd/seqvault/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		commands.PrintErr("Error: %v", err)
		os.Exit(1)
	}
}
