package cmd

import (
	"github.com/spf13/cobra"

	"github.com/suchetkumbar/Syntara/internal/optimizer"
	"github.com/suchetkumbar/Syntara/internal/output"
)

var optimizeList bool

var optimizeCmd = &cobra.Command{
	Use:   "optimize <file>",
	Short: "Rewrite a prompt for a target model",
	Long: `Apply a model's prompt conventions and describe what changed.

An unknown model leaves the prompt unchanged. Use --list to see the
known models and their tips.

EXAMPLES:

  syntara optimize prompt.md --model claude-35
  syntara optimize - --model gpt-4o < prompt.txt
  syntara optimize --list`,
	Args: func(cmd *cobra.Command, args []string) error {
		if optimizeList {
			return usageArgs(cobra.NoArgs)(cmd, args)
		}
		return usageArgs(cobra.ExactArgs(1))(cmd, args)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOptimize(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(optimizeCmd)

	optimizeCmd.Flags().String("model", "gpt-4o", "Target model id")
	optimizeCmd.Flags().BoolVar(&optimizeList, "list", false, "List known models")
}

func runOptimize(cmd *cobra.Command, args []string) error {
	rt, err := newRuntime(cmd)
	if err != nil {
		return err
	}
	defer rt.close()

	if optimizeList {
		return rt.write(&output.Report{Command: "optimize", Models: optimizer.Profiles()})
	}

	prompt, err := rt.readPrompt(args[0])
	if err != nil {
		return err
	}

	model := rt.cfg.Optimizer.Model
	result := &output.OptimizeResult{File: args[0], Result: optimizer.Optimize(prompt, model)}
	if profile, ok := optimizer.Lookup(model); ok {
		result.Known = true
		result.Tips = profile.Tips
	} else {
		rt.log.Warn("unknown model", "model", model, "known", optimizer.IDs())
	}

	return rt.write(&output.Report{Command: "optimize", Optimize: result})
}
