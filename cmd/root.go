// Package cmd implements the syntara command line.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/suchetkumbar/Syntara/internal/output"
)

// Exit codes.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

var (
	configFile   string
	quiet        bool
	verbose      bool
	outputFormat string
	outputFile   string
	failOn       string
	libraryPath  string
	concurrency  int
)

// exitFunc is swapped out by tests.
var exitFunc = os.Exit

var rootCmd = &cobra.Command{
	Use:   "syntara",
	Short: "Syntara - score, debug and refine LLM prompts",
	Long: `Syntara is a prompt engineering workbench. It scores prompts against a
fixed quality rubric, lints them for vague or conflicting instructions,
diffs versions, searches a prompt library and adapts prompts to a target
model, all offline.

Prompts are read from files (markdown with optional YAML frontmatter,
.prompt or .txt), from stdin with '-', or from a library of
*.prompts.yaml, .json or .hjson files.`,
	Version:       output.Version,
	SilenceErrors: true,
	SilenceUsage:  true,
	Args:          usageArgs(cobra.NoArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// Execute runs the root command and exits with its status code.
func Execute() {
	if code := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); code != exitOK {
		exitFunc(code)
	}
}

// run executes args and maps the outcome to an exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if args == nil {
		args = []string{}
	}
	rootCmd.SetArgs(args)
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Subcommands keep the context of their first execution.
	for _, c := range rootCmd.Commands() {
		c.SetContext(ctx)
	}
	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return exitOK
	}

	code := exitCode(err)
	if msg := err.Error(); msg != "" {
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	if code == exitUsage {
		fmt.Fprintf(stderr, "Run '%s --help' for usage.\n", rootCmd.Name())
	}
	return code
}

func init() {
	cobra.OnInitialize(bindFlags)
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "Config file (default .syntararc.{json,yaml,yml})")
	flags.BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	flags.StringVarP(&outputFormat, "format", "f", "console", "Output format (console|json|markdown)")
	flags.StringVarP(&outputFile, "output", "o", "", "Write the report to a file instead of stdout")
	flags.StringVar(&failOn, "fail-on", "error", "Exit 1 when an issue reaches this level (error|warning|info|never)")
	flags.StringVarP(&libraryPath, "library", "l", "", "Prompt library file or directory")
	flags.IntVar(&concurrency, "concurrency", 4, "Maximum files processed in parallel")
}

// flagKeys maps config keys to the flags that override them.
var flagKeys = []struct {
	key  string
	cmd  *cobra.Command
	flag string
}{
	{"quiet", rootCmd, "quiet"},
	{"verbose", rootCmd, "verbose"},
	{"format", rootCmd, "format"},
	{"output", rootCmd, "output"},
	{"failOn", rootCmd, "fail-on"},
	{"library", rootCmd, "library"},
	{"concurrency", rootCmd, "concurrency"},
	{"search.limit", searchCmd, "limit"},
	{"search.threshold", searchCmd, "threshold"},
	{"optimizer.model", optimizeCmd, "model"},
	{"generator.strategy", generateCmd, "strategy"},
}

// bindFlags runs before every command so that flags win over the
// environment and config files.
func bindFlags() {
	for _, fk := range flagKeys {
		f := fk.cmd.PersistentFlags().Lookup(fk.flag)
		if f == nil {
			f = fk.cmd.Flags().Lookup(fk.flag)
		}
		if f != nil {
			_ = viper.BindPFlag(fk.key, f)
		}
	}
}

// exitError carries an exit code. An empty message is not printed.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return ""
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error { return e.err }

// errThresholdReached reports issues at or above --fail-on; the report
// itself already explains why.
var errThresholdReached = &exitError{code: exitFailure}

func usageError(err error) error {
	return &exitError{code: exitUsage, err: err}
}

func usageErrorf(format string, args ...any) error {
	return usageError(fmt.Errorf(format, args...))
}

// usageArgs marks argument validation failures as usage errors.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return usageError(err)
		}
		return nil
	}
}

// exitCode maps errors to exit codes. Errors without a code are runtime
// failures.
func exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitFailure
}
