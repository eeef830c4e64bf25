package cmd

import (
	"github.com/spf13/cobra"

	"github.com/suchetkumbar/Syntara/internal/output"
	"github.com/suchetkumbar/Syntara/internal/tokens"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [files...]",
	Short: "Estimate token counts and costs",
	Long: `Estimate tokens (about four characters per token), the input cost on
common models, and how much of a context window the prompt uses.

EXAMPLES:

  syntara tokens prompt.md
  syntara tokens prompts/ -f json
  cat prompt.txt | syntara tokens -`,
	Args: usageArgs(cobra.MinimumNArgs(1)),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTokens(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
	rt, err := newRuntime(cmd)
	if err != nil {
		return err
	}
	defer rt.close()

	inputs, err := rt.loadInputs(args)
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		return usageErrorf("no prompts found in %v", args)
	}

	var counter tokens.EstimatingCounter
	results := make([]output.TokensResult, len(inputs))
	err = forEach(cmd.Context(), rt.cfg.Concurrency, len(inputs), func(i int) error {
		report := tokens.Analyze(counter, inputs[i].Prompt.Content)
		results[i] = output.TokensResult{
			File:    inputs[i].label(),
			Display: tokens.FormatCount(report.Tokens),
			Report:  report,
		}
		return nil
	})
	if err != nil {
		return err
	}

	return rt.write(&output.Report{Command: "tokens", Tokens: results})
}
