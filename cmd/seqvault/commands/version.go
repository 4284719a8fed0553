package commands

import (
	"fmt"
	"runtime"
)

// buildVersionString assembles the output of "seqvault --version". The
// "version" subcommand name is taken by the version resource group, so
// build information lives on the root flag instead.
func buildVersionString() string {
	return fmt.Sprintf("seqvault %s\n  Commit:     %s\n  Built:      %s\n  Go version: %s\n  OS/Arch:    %s/%s\n",
		Version, Commit, Date, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
