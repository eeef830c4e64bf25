package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/suchetkumbar/Syntara/internal/output"
	"github.com/suchetkumbar/Syntara/internal/similarity"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Find library prompts similar to a query",
	Long: `Rank library prompts by term-frequency cosine similarity to the query.

Multiple arguments are joined into one query.

EXAMPLES:

  syntara search "code review checklist" --library prompts/
  syntara search summarise meeting notes -l library.json --limit 3`,
	Args: usageArgs(cobra.MinimumNArgs(1)),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSearch(cmd, strings.Join(args, " "))
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().Int("limit", similarity.DefaultLimit, "Maximum number of matches")
	searchCmd.Flags().Float64("threshold", similarity.DefaultThreshold, "Minimum similarity kept (0-1)")
}

func runSearch(cmd *cobra.Command, query string) error {
	rt, err := newRuntime(cmd)
	if err != nil {
		return err
	}
	defer rt.close()

	lib, err := rt.loadLibrary()
	if err != nil {
		return err
	}

	opts := similarity.Options{Limit: rt.cfg.Search.Limit, Threshold: rt.cfg.Search.Threshold}
	results := similarity.Search(query, lib.Prompts, opts)
	rt.log.Debug("search finished", "query", query, "candidates", len(lib.Prompts), "matches", len(results))

	return rt.write(&output.Report{Command: "search", Search: output.NewSearchResult(query, results)})
}
