package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/suchetkumbar/Syntara/internal/baseline"
	"github.com/suchetkumbar/Syntara/internal/debugger"
	"github.com/suchetkumbar/Syntara/internal/git"
	"github.com/suchetkumbar/Syntara/internal/output"
	"github.com/suchetkumbar/Syntara/internal/types"
)

var (
	useBaseline    bool
	createBaseline bool
	baselinePath   string
	debugChanged   bool
)

var debugCmd = &cobra.Command{
	Use:   "debug [files...]",
	Short: "Find vague, conflicting or missing instructions in prompts",
	Long: `Lint prompts for vague language, conflicting instructions, overly long
sentences, missing sections, missing structure and too many questions.

Issues are reported as error, warning or info. The command exits 1 when
any issue reaches the --fail-on level (default error).

BASELINE:

  Record the current issues and report only new ones afterwards:
    syntara debug prompts/ --write-baseline
    syntara debug prompts/ --baseline

GIT:

  Check only prompt files with uncommitted changes:
    syntara debug --changed`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDebug(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(debugCmd)

	debugCmd.Flags().BoolVar(&useBaseline, "baseline", false, "Ignore issues recorded in the baseline file")
	debugCmd.Flags().BoolVar(&createBaseline, "write-baseline", false, "Record current issues in the baseline file and exit 0")
	debugCmd.Flags().StringVar(&baselinePath, "baseline-path", baseline.DefaultFile, "Baseline file location")
	debugCmd.Flags().BoolVar(&debugChanged, "changed", false, "Only check prompt files with uncommitted git changes")
}

func runDebug(cmd *cobra.Command, args []string) error {
	rt, err := newRuntime(cmd)
	if err != nil {
		return err
	}
	defer rt.close()

	paths := args
	if debugChanged {
		changed, err := changedPromptFiles()
		if err != nil {
			return err
		}
		rt.log.Debug("changed prompt files", "count", len(changed))
		paths = append(paths, changed...)
	}

	inputs, err := rt.loadInputs(paths)
	if err != nil {
		return err
	}
	if len(args) == 0 && !debugChanged && rt.cfg.Library != "" {
		lib, err := rt.loadLibrary()
		if err != nil {
			return err
		}
		for _, p := range lib.Prompts {
			inputs = append(inputs, input{Name: p.Source, Title: p.Title, Prompt: p})
		}
	}
	if len(inputs) == 0 && !debugChanged {
		return usageErrorf("nothing to debug: pass files, '-' for stdin, --library or --changed")
	}

	var known *baseline.Baseline
	if useBaseline && !createBaseline {
		known = loadBaseline(rt, baselinePath)
	}

	issues := make([][]debugger.Issue, len(inputs))
	err = forEach(cmd.Context(), rt.cfg.Concurrency, len(inputs), func(i int) error {
		issues[i] = debugger.Debug(inputs[i].Prompt.Content)
		return nil
	})
	if err != nil {
		return err
	}

	report := &output.Report{Command: "debug", Debug: make([]output.DebugResult, 0, len(inputs))}
	var findings []baseline.Finding
	failed := false
	threshold, enforce := failThreshold(rt.cfg.FailOn)

	for i, in := range inputs {
		name := in.label()
		for _, issue := range issues[i] {
			findings = append(findings, baseline.Finding{File: name, Issue: issue})
		}
		kept, ignored := known.Filter(name, issues[i])
		report.Debug = append(report.Debug, output.NewDebugResult(name, kept, ignored))
		if enforce && debugger.AtOrAbove(kept, threshold) {
			failed = true
		}
	}

	if err := rt.write(report); err != nil {
		return err
	}

	if createBaseline {
		b := baseline.Create(findings)
		if err := b.Save(baselinePath); err != nil {
			return fmt.Errorf("failed to save baseline: %w", err)
		}
		rt.log.Info("baseline written", "file", baselinePath, "issues", b.Len())
		return nil
	}

	if failed {
		return errThresholdReached
	}
	return nil
}

// failThreshold converts the fail-on level; "never" disables the check.
func failThreshold(level string) (types.Severity, bool) {
	sev, ok := types.ParseSeverity(level)
	return sev, ok
}

// loadBaseline returns nil when the file is missing or unreadable.
func loadBaseline(rt *runtime, path string) *baseline.Baseline {
	if _, err := os.Stat(path); err != nil {
		rt.log.Warn("baseline not found, reporting all issues", "file", path)
		return nil
	}
	b, err := baseline.Load(path)
	if err != nil {
		rt.log.Warn("failed to load baseline", "file", path, "error", err)
		return nil
	}
	rt.log.Debug("baseline loaded", "file", path, "fingerprints", b.Len())
	return b
}

func changedPromptFiles() ([]string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	if !git.IsGitRepo(wd) {
		return nil, usageErrorf("--changed needs a git repository")
	}
	files, err := git.ChangedPromptFiles(wd)
	if err != nil {
		return nil, fmt.Errorf("listing changed files: %w", err)
	}
	// relative names keep baseline fingerprints stable across invocations
	for i, f := range files {
		if rel, err := filepath.Rel(wd, f); err == nil {
			files[i] = rel
		}
	}
	return files, nil
}
