package cmd

import (
	"github.com/spf13/cobra"

	"github.com/suchetkumbar/Syntara/internal/output"
	"github.com/suchetkumbar/Syntara/internal/scoring"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Summarise prompt quality across the library",
	Long: `Score every library prompt and report the average, the label
distribution, the lowest scoring prompts and the most common suggestions.

EXAMPLES:

  syntara summary --library prompts/
  syntara summary -l library.yaml -f markdown -o QUALITY.md`,
	Args: usageArgs(cobra.NoArgs),
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runSummary(cmd)
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command) error {
	rt, err := newRuntime(cmd)
	if err != nil {
		return err
	}
	defer rt.close()

	lib, err := rt.loadLibrary()
	if err != nil {
		return err
	}

	scorer := scoring.NewScorer()
	results := make([]output.ScoreResult, len(lib.Prompts))
	err = forEach(cmd.Context(), rt.cfg.Concurrency, len(lib.Prompts), func(i int) error {
		p := lib.Prompts[i]
		results[i] = output.NewScoreResult(p.Source, p.Title, scorer.Score(p.Content))
		return nil
	})
	if err != nil {
		return err
	}

	return rt.write(&output.Report{Command: "summary", Summary: output.Summarize(results)})
}
