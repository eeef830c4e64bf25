package cmd

import (
	"github.com/spf13/cobra"

	"github.com/suchetkumbar/Syntara/internal/output"
	"github.com/suchetkumbar/Syntara/internal/scoring"
)

var (
	scoreExplain  bool
	scoreExternal string
)

var scoreCmd = &cobra.Command{
	Use:   "score [files...]",
	Short: "Score prompts against the quality rubric",
	Long: `Score prompts from 0 to 100 across six dimensions: role, constraints,
output format, specificity, structure and clarity.

Arguments may be prompt files, directories, library files, or '-' for
stdin. With --library and no arguments every library prompt is scored.

EXAMPLES:

  syntara score prompt.md
  syntara score --explain prompts/
  echo "You are a reviewer..." | syntara score -
  syntara score prompt.md --external llm-score.json`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScore(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(scoreCmd)

	scoreCmd.Flags().BoolVar(&scoreExplain, "explain", false, "Show the per-dimension breakdown")
	scoreCmd.Flags().StringVar(&scoreExternal, "external", "", "JSON score from an external evaluator to normalise alongside the local score")
}

func runScore(cmd *cobra.Command, args []string) error {
	rt, err := newRuntime(cmd)
	if err != nil {
		return err
	}
	defer rt.close()

	inputs, err := rt.loadInputs(args)
	if err != nil {
		return err
	}
	if len(args) == 0 && rt.cfg.Library != "" {
		lib, err := rt.loadLibrary()
		if err != nil {
			return err
		}
		for _, p := range lib.Prompts {
			inputs = append(inputs, input{Name: p.Source, Title: p.Title, Prompt: p})
		}
	}
	if len(inputs) == 0 {
		return usageErrorf("nothing to score: pass files, '-' for stdin, or --library")
	}
	if scoreExternal != "" && len(inputs) != 1 {
		return usageErrorf("--external needs exactly one prompt, got %d", len(inputs))
	}

	rt.log.Debug("scoring", "prompts", len(inputs), "workers", rt.cfg.Concurrency)

	scorer := scoring.NewScorer()
	results := make([]output.ScoreResult, len(inputs))
	err = forEach(cmd.Context(), rt.cfg.Concurrency, len(inputs), func(i int) error {
		in := inputs[i]
		results[i] = output.NewScoreResult(in.Name, in.Title, scorer.Score(in.Prompt.Content))
		return nil
	})
	if err != nil {
		return err
	}

	if scoreExternal != "" {
		raw, err := rt.readText(scoreExternal)
		if err != nil {
			return err
		}
		ext, err := scoring.ParseExternal(raw)
		if err != nil {
			rt.log.Warn("external score rejected", "file", scoreExternal, "error", err)
			results[0].ExternalError = err.Error()
		} else {
			results[0].External = &ext
		}
	}

	return rt.write(&output.Report{Command: "score", Scores: results, Explain: scoreExplain})
}
