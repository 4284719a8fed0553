package entry

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/seqvault/seqvault/cmd/seqvault/cmdutil"
	"github.com/seqvault/seqvault/pkg/registry/models"
)

var searchLimit int

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search registry entries",
	Long: `Search registry entries across all organizations.

Entry names and descriptions are matched; results are ordered by
descending relevance, with name matches ranked above description-only
matches.

Examples:
  # Search everything
  seqvault entry search "protein"

  # Only the top five hits
  seqvault entry search "alignment tool" --limit 5`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVar(&searchLimit, "limit", 0, "Maximum number of results (0 = unlimited)")
}

// SearchResultList is a ranked result set for table rendering.
type SearchResultList []models.SearchResult

// Headers implements TableRenderer.
func (rl SearchResultList) Headers() []string {
	return []string{"SCORE", "SLUG", "TYPE", "NAME"}
}

// Rows implements TableRenderer.
func (rl SearchResultList) Rows() [][]string {
	rows := make([][]string, 0, len(rl))
	for _, r := range rl {
		rows = append(rows, []string{
			fmt.Sprintf("%.2f", r.Score),
			r.Entry.Slug,
			string(r.Entry.EntryType),
			r.Entry.Name,
		})
	}
	return rows
}

func runSearch(cmd *cobra.Command, args []string) error {
	s, err := cmdutil.GetStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	results, err := s.SearchEntries(cmd.Context(), args[0], searchLimit)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	return cmdutil.PrintOutput(os.Stdout, results, len(results) == 0, "No matching entries.", SearchResultList(results))
}
