package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/suchetkumbar/Syntara/internal/generator"
	"github.com/suchetkumbar/Syntara/internal/output"
	"github.com/suchetkumbar/Syntara/internal/scoring"
)

var buildInit bool

var buildCmd = &cobra.Command{
	Use:   "build <blocks.yaml>",
	Short: "Assemble a prompt from a block file",
	Long: `Assemble the enabled blocks of a YAML block file into one prompt and
score it. Use --init to write the default block template instead.

Block file format:

  blocks:
    - type: role
      content: You are a senior Go reviewer.
    - type: task
      content: Review the diff below.
    - type: example
      enabled: false

EXAMPLES:

  syntara build --init blocks.yaml
  syntara build blocks.yaml -f json`,
	Args: usageArgs(cobra.ExactArgs(1)),
	RunE: func(cmd *cobra.Command, args []string) error {
		if buildInit {
			return runBuildInit(cmd, args[0])
		}
		return runBuild(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().BoolVar(&buildInit, "init", false, "Write the default block template to the file")
}

func runBuild(cmd *cobra.Command, path string) error {
	rt, err := newRuntime(cmd)
	if err != nil {
		return err
	}
	defer rt.close()

	blocks, err := generator.LoadBlocks(path)
	if err != nil {
		return err
	}

	enabled := 0
	for _, b := range blocks {
		if b.Enabled {
			enabled++
		}
	}
	prompt := generator.Assemble(blocks)
	rt.log.Debug("blocks assembled", "file", path, "blocks", len(blocks), "enabled", enabled)

	return rt.write(&output.Report{Command: "build", Build: &output.BuildResult{
		Source:  path,
		Enabled: enabled,
		Total:   len(blocks),
		Prompt:  prompt,
		Score:   scoring.NewScorer().Score(prompt),
	}})
}

func runBuildInit(cmd *cobra.Command, path string) error {
	rt, err := newRuntime(cmd)
	if err != nil {
		return err
	}
	defer rt.close()

	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	data, err := generator.MarshalBlocks(generator.DefaultBlocks())
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	rt.log.Info("block template written", "file", path)
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}
