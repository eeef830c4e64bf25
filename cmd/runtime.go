package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/suchetkumbar/Syntara/internal/config"
	"github.com/suchetkumbar/Syntara/internal/discovery"
	"github.com/suchetkumbar/Syntara/internal/library"
	"github.com/suchetkumbar/Syntara/internal/logging"
	"github.com/suchetkumbar/Syntara/internal/output"
	"github.com/suchetkumbar/Syntara/internal/outputters"
	"github.com/suchetkumbar/Syntara/internal/types"
)

// stdinArg names standard input on the command line.
const stdinArg = "-"

// runtime is what every command needs once flags are parsed.
type runtime struct {
	cfg   *config.Config
	log   logging.Logger
	out   *outputters.Outputter
	stdin io.Reader
}

func newRuntime(cmd *cobra.Command) (*runtime, error) {
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		return nil, usageError(fmt.Errorf("error loading configuration: %w", err))
	}

	log, err := logging.New(logging.Options{
		Output:  cmd.ErrOrStderr(),
		Verbose: cfg.Verbose,
		Quiet:   cfg.Quiet,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating logger: %w", err)
	}
	if cfg.ConfigFile != "" {
		log.Debug("config loaded", "file", cfg.ConfigFile)
	}

	return &runtime{
		cfg:   cfg,
		log:   log,
		out:   outputters.NewOutputter(cfg, cmd.OutOrStdout()),
		stdin: cmd.InOrStdin(),
	}, nil
}

func (rt *runtime) close() {
	_ = rt.log.Close()
}

func (rt *runtime) write(r *output.Report) error {
	if err := rt.out.Write(r); err != nil {
		return err
	}
	if rt.cfg.Output != "" {
		rt.log.Info("report written", "file", rt.cfg.Output, "format", rt.cfg.Format)
	}
	return nil
}

// input is one prompt to analyse.
type input struct {
	Name   string
	Title  string
	Prompt types.Prompt
}

// label names the input in reports; library records add their title.
func (in input) label() string {
	if in.Title == "" {
		return in.Name
	}
	return fmt.Sprintf("%s (%s)", in.Name, in.Title)
}

// loadInputs reads every argument. "-" reads stdin once; anything else goes
// through the library loader, so directories and library files expand to
// all of their prompts.
func (rt *runtime) loadInputs(args []string) ([]input, error) {
	var inputs []input
	var loader *library.Loader
	stdinUsed := false

	for _, arg := range args {
		if arg == stdinArg {
			if stdinUsed {
				return nil, usageErrorf("stdin can only be read once")
			}
			stdinUsed = true
			data, err := io.ReadAll(rt.stdin)
			if err != nil {
				return nil, fmt.Errorf("failed to read stdin: %w", err)
			}
			inputs = append(inputs, input{Name: "<stdin>", Prompt: types.Prompt{Content: string(data)}})
			continue
		}

		if loader == nil {
			var err error
			if loader, err = library.NewLoader(rt.cfg.Exclude); err != nil {
				return nil, err
			}
		}
		lib, err := loader.Load(arg)
		if err != nil {
			return nil, err
		}
		info, _ := os.Stat(arg)
		single := info != nil && !info.IsDir() && len(lib.Prompts) == 1 && !isLibraryFile(arg)
		for _, p := range lib.Prompts {
			in := input{Name: p.Source, Prompt: p}
			if !single {
				in.Title = p.Title
			}
			inputs = append(inputs, in)
		}
		rt.log.Debug("input loaded", "path", arg, "prompts", len(lib.Prompts))
	}
	return inputs, nil
}

// loadLibrary loads the configured library.
func (rt *runtime) loadLibrary() (*library.Library, error) {
	if rt.cfg.Library == "" {
		return nil, usageErrorf("no prompt library configured: pass --library or set library in the config")
	}
	loader, err := library.NewLoader(rt.cfg.Exclude)
	if err != nil {
		return nil, err
	}
	lib, err := loader.Load(rt.cfg.Library)
	if err != nil {
		return nil, fmt.Errorf("error loading library: %w", err)
	}
	rt.log.Debug("library loaded", "path", rt.cfg.Library, "prompts", len(lib.Prompts))
	return lib, nil
}

// findPrompt resolves a library prompt, mapping a miss to a clear message.
func findPrompt(lib *library.Library, idOrTitle string) (types.Prompt, error) {
	p, err := lib.Find(idOrTitle)
	if errors.Is(err, library.ErrNotFound) {
		return types.Prompt{}, fmt.Errorf("prompt %q not found in library", idOrTitle)
	}
	return p, err
}

// readText returns the raw text of a file or of stdin for "-".
func (rt *runtime) readText(path string) (string, error) {
	if path == stdinArg {
		data, err := io.ReadAll(rt.stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

// readPrompt reads a single prompt. Frontmatter is dropped from prompt
// files; other files are used verbatim.
func (rt *runtime) readPrompt(path string) (string, error) {
	text, err := rt.readText(path)
	if err != nil || path == stdinArg {
		return text, err
	}
	if ft, _ := discovery.DetectFileType(path); ft != discovery.FileTypePrompt {
		return text, nil
	}
	p, err := library.ParsePromptFile(path, text)
	if err != nil {
		return "", err
	}
	return p.Content, nil
}

func isLibraryFile(path string) bool {
	ft, _ := discovery.DetectFileType(path)
	return ft == discovery.FileTypeLibrary
}

// forEach calls fn for 0..n-1 with at most limit calls in flight. fn writes
// its result at index i, so output order matches input order.
func forEach(ctx context.Context, limit, n int, fn func(i int) error) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(limit, 1))
	for i := 0; i < n; i++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return fn(i)
		})
	}
	return g.Wait()
}
