package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/suchetkumbar/Syntara/internal/generator"
	"github.com/suchetkumbar/Syntara/internal/output"
	"github.com/suchetkumbar/Syntara/internal/scoring"
	"github.com/suchetkumbar/Syntara/internal/textutil"
)

var generateCmd = &cobra.Command{
	Use:   "generate [idea]",
	Short: "Turn a short idea into a structured prompt",
	Long: `Expand an idea into a full prompt using one of the strategies:
standard, chain-of-thought, few-shot or system-prompt.

Without an idea the command asks for one interactively when stdin is a
terminal, and reads it from stdin otherwise.

EXAMPLES:

  syntara generate "summarise weekly sales calls"
  syntara generate "triage bug reports" --strategy few-shot
  echo "explain kubernetes to a new hire" | syntara generate`,
	Args: usageArgs(cobra.ArbitraryArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd, strings.Join(args, " "))
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().String("strategy", string(generator.StrategyStandard), "Strategy (standard|chain-of-thought|few-shot|system-prompt)")
}

func runGenerate(cmd *cobra.Command, idea string) error {
	rt, err := newRuntime(cmd)
	if err != nil {
		return err
	}
	defer rt.close()

	strategy, err := generator.ParseStrategy(rt.cfg.Generator.Strategy)
	if err != nil {
		return usageError(err)
	}

	if textutil.IsBlank(idea) {
		if isTerminal(rt.stdin) {
			idea, strategy, err = askIdea(rt.stdin, cmd.ErrOrStderr(), strategy)
			if err != nil {
				return err
			}
		} else {
			data, err := io.ReadAll(rt.stdin)
			if err != nil {
				return fmt.Errorf("failed to read stdin: %w", err)
			}
			idea = string(data)
		}
	}
	if textutil.IsBlank(idea) {
		return usageErrorf("no idea given: pass it as an argument or on stdin")
	}

	prompt := generator.Generate(idea, strategy)
	rt.log.Debug("prompt generated", "strategy", strategy, "words", textutil.WordCount(prompt))

	return rt.write(&output.Report{Command: "generate", Generate: &output.GenerateResult{
		Idea:     strings.TrimSpace(idea),
		Strategy: string(strategy),
		Prompt:   prompt,
		Score:    scoring.NewScorer().Score(prompt),
	}})
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func askIdea(in io.Reader, out io.Writer, current generator.Strategy) (string, generator.Strategy, error) {
	var idea string
	choice := string(current)

	options := make([]huh.Option[string], 0, len(generator.Strategies()))
	for _, s := range generator.Strategies() {
		options = append(options, huh.NewOption(fmt.Sprintf("%s - %s", s.Label, s.Description), string(s.Strategy)))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("What should the prompt do?").
				Placeholder("e.g. review pull requests for security issues").
				Value(&idea).
				Validate(func(s string) error {
					if textutil.IsBlank(s) {
						return errors.New("an idea is required")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Strategy").
				Options(options...).
				Value(&choice),
		),
	).WithInput(in).WithOutput(out)

	if err := form.Run(); err != nil {
		return "", "", fmt.Errorf("generate form failed: %w", err)
	}
	return idea, generator.Strategy(choice), nil
}
