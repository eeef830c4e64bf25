package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/suchetkumbar/Syntara/internal/git"
	"github.com/suchetkumbar/Syntara/internal/output"
	"github.com/suchetkumbar/Syntara/internal/types"
)

// currentVersion names a library prompt's live content in --from/--to.
const currentVersion = "current"

var (
	diffHead   bool
	diffPrompt string
	diffFrom   string
	diffTo     string
)

var diffCmd = &cobra.Command{
	Use:   "diff <old> <new>",
	Short: "Show line differences between two prompt versions",
	Long: `Show a line diff between two prompts.

USAGE MODES:

  Two files (either may be '-' for stdin):
    syntara diff old.md new.md

  Working copy against the last commit:
    syntara diff --head prompt.md

  Two versions of a library prompt ('current' is the live content):
    syntara diff --prompt review --from v1 --to v2
    syntara diff --prompt review               # latest version vs. current`,
	Args: usageArgs(func(cmd *cobra.Command, args []string) error {
		switch {
		case diffHead && diffPrompt != "":
			return fmt.Errorf("--head and --prompt cannot be combined")
		case diffPrompt != "":
			return cobra.NoArgs(cmd, args)
		case diffHead:
			return cobra.ExactArgs(1)(cmd, args)
		default:
			return cobra.ExactArgs(2)(cmd, args)
		}
	}),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDiff(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(diffCmd)

	diffCmd.Flags().BoolVar(&diffHead, "head", false, "Compare the file with its content at git HEAD")
	diffCmd.Flags().StringVar(&diffPrompt, "prompt", "", "Library prompt id or title")
	diffCmd.Flags().StringVar(&diffFrom, "from", "", "Old version id (default: the version before --to)")
	diffCmd.Flags().StringVar(&diffTo, "to", "", "New version id (default: current content)")
}

func runDiff(cmd *cobra.Command, args []string) error {
	rt, err := newRuntime(cmd)
	if err != nil {
		return err
	}
	defer rt.close()

	var result *output.DiffResult
	switch {
	case diffPrompt != "":
		result, err = diffVersions(rt)
	case diffHead:
		result, err = diffHEAD(rt, args[0])
	default:
		result, err = diffFiles(rt, args[0], args[1])
	}
	if err != nil {
		return err
	}

	rt.log.Debug("diff computed", "added", result.Stats.Added, "removed", result.Stats.Removed)
	return rt.write(&output.Report{Command: "diff", Diff: result})
}

func diffFiles(rt *runtime, oldPath, newPath string) (*output.DiffResult, error) {
	if oldPath == stdinArg && newPath == stdinArg {
		return nil, usageErrorf("only one side of the diff can be stdin")
	}
	oldText, err := rt.readText(oldPath)
	if err != nil {
		return nil, err
	}
	newText, err := rt.readText(newPath)
	if err != nil {
		return nil, err
	}
	return output.NewDiffResult(oldPath, newPath, oldText, newText), nil
}

func diffHEAD(rt *runtime, path string) (*output.DiffResult, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	if !git.IsGitRepo(wd) {
		return nil, usageErrorf("--head needs a git repository")
	}
	committed, err := git.ShowHead(wd, path)
	if err != nil {
		return nil, err
	}
	working, err := rt.readText(path)
	if err != nil {
		return nil, err
	}
	return output.NewDiffResult(path+"@HEAD", path, committed, working), nil
}

func diffVersions(rt *runtime) (*output.DiffResult, error) {
	lib, err := rt.loadLibrary()
	if err != nil {
		return nil, err
	}
	p, err := findPrompt(lib, diffPrompt)
	if err != nil {
		return nil, err
	}

	to := diffTo
	if to == "" {
		to = currentVersion
	}
	newText, err := versionContent(p, to)
	if err != nil {
		return nil, err
	}

	from := diffFrom
	if from == "" {
		from, err = previousVersion(p, to)
		if err != nil {
			return nil, err
		}
	}
	oldText, err := versionContent(p, from)
	if err != nil {
		return nil, err
	}

	return output.NewDiffResult(p.Title+"@"+from, p.Title+"@"+to, oldText, newText), nil
}

func versionContent(p types.Prompt, id string) (string, error) {
	if id == currentVersion {
		return p.Content, nil
	}
	v, ok := p.Version(id)
	if !ok {
		return "", fmt.Errorf("prompt %q has no version %q", p.Title, id)
	}
	return v.Content, nil
}

// previousVersion picks the version listed before to; for the live content
// that is the latest version.
func previousVersion(p types.Prompt, to string) (string, error) {
	if to == currentVersion {
		latest, ok := p.Latest()
		if !ok {
			return "", fmt.Errorf("prompt %q has no versions to compare with", p.Title)
		}
		return latest.ID, nil
	}
	for i, v := range p.Versions {
		if v.ID == to {
			if i == 0 {
				return "", fmt.Errorf("version %q of %q has no predecessor; pass --from", to, p.Title)
			}
			return p.Versions[i-1].ID, nil
		}
	}
	return "", fmt.Errorf("prompt %q has no version %q", p.Title, to)
}
