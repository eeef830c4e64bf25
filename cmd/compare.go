package cmd

import (
	"github.com/spf13/cobra"

	"github.com/suchetkumbar/Syntara/internal/compare"
	"github.com/suchetkumbar/Syntara/internal/output"
)

var compareCmd = &cobra.Command{
	Use:   "compare <a> <b>",
	Short: "Score two prompts side by side",
	Long: `Run an A/B experiment: score both prompts, report the winner, the
margin and the per-dimension deltas (B minus A).

EXAMPLES:

  syntara compare v1.md v2.md
  syntara compare old.txt - < new.txt`,
	Args: usageArgs(cobra.ExactArgs(2)),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCompare(cmd, args[0], args[1])
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, a, b string) error {
	if a == stdinArg && b == stdinArg {
		return usageErrorf("only one side can be read from stdin")
	}

	rt, err := newRuntime(cmd)
	if err != nil {
		return err
	}
	defer rt.close()

	promptA, err := rt.readPrompt(a)
	if err != nil {
		return err
	}
	promptB, err := rt.readPrompt(b)
	if err != nil {
		return err
	}

	exp := compare.Run(promptA, promptB)
	rt.log.Debug("compared", "a", a, "b", b, "winner", exp.Winner, "margin", exp.Margin)

	return rt.write(&output.Report{Command: "compare", Compare: &exp})
}
