package cache

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/seqvault/seqvault/cmd/seqvault/cmdutil"
	"github.com/seqvault/seqvault/pkg/clientcache"
)

var fetchParams []string

var fetchCmd = &cobra.Command{
	Use:   "fetch <operation>",
	Short: "Read from the remote API through the cache",
	Long: `Perform a cacheable read against the configured remote API and print
the raw response body. Repeated identical reads within the cache TTL are
served locally without touching the network.

Operations and their parameters:
  list_organizations
  get_organization    org
  list_entries        org
  get_entry           org, entry
  search_entries      q, limit (optional)
  list_versions       org, entry
  get_version         org, entry, label
  fetch_blob          org, entry, label

Examples:
  # Fetch an entry, cached
  seqvault cache fetch get_entry --param org=uniprot --param entry=swissprot

  # Ranked search with a result cap
  seqvault cache fetch search_entries --param q=protein --param limit=5`,
	Args: cobra.ExactArgs(1),
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().StringArrayVar(&fetchParams, "param", nil, "Operation parameter as key=value (repeatable)")
}

func runFetch(cmd *cobra.Command, args []string) error {
	params := make(map[string]string, len(fetchParams))
	for _, p := range fetchParams {
		key, value, ok := strings.Cut(p, "=")
		if !ok || key == "" {
			return fmt.Errorf("invalid --param %q, expected key=value", p)
		}
		params[key] = value
	}

	c, err := cmdutil.GetCache()
	if err != nil {
		return err
	}
	defer c.Close()

	body, err := c.Lookup(cmd.Context(), clientcache.Request{
		Operation: args[0],
		Params:    params,
	})
	if err != nil {
		return err
	}

	_, err = os.Stdout.Write(body)
	return err
}
