package cmd

import (
	"github.com/spf13/cobra"

	"github.com/suchetkumbar/Syntara/internal/output"
	"github.com/suchetkumbar/Syntara/internal/textutil"
)

var historyCmd = &cobra.Command{
	Use:   "history <id>",
	Short: "List the saved versions of a library prompt",
	Long: `List a library prompt's versions with their age, note, word count and
recorded score. The prompt is matched by id or title.

EXAMPLES:

  syntara history code-review --library library.json`,
	Args: usageArgs(cobra.ExactArgs(1)),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHistory(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, id string) error {
	rt, err := newRuntime(cmd)
	if err != nil {
		return err
	}
	defer rt.close()

	lib, err := rt.loadLibrary()
	if err != nil {
		return err
	}
	p, err := findPrompt(lib, id)
	if err != nil {
		return err
	}

	rows := make([]output.VersionRow, 0, len(p.Versions))
	for _, v := range p.Versions {
		rows = append(rows, output.NewVersionRow(v, textutil.WordCount(v.Content)))
	}

	return rt.write(&output.Report{Command: "history", History: &output.HistoryResult{
		ID:       p.ID,
		Title:    p.Title,
		Versions: rows,
	}})
}
