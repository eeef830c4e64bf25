// Package outputters picks a formatter for the configured format and
// routes its output to stdout or the configured file.
package outputters

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/suchetkumbar/Syntara/internal/config"
	"github.com/suchetkumbar/Syntara/internal/output"
)

// FormatterFactory creates formatters writing to w.
type FormatterFactory interface {
	CreateFormatter(format string, w io.Writer) (output.Formatter, error)
}

// DefaultFormatterFactory builds the console, JSON and markdown formatters.
type DefaultFormatterFactory struct {
	quiet   bool
	verbose bool
}

// NewDefaultFormatterFactory creates a factory honouring quiet and verbose.
func NewDefaultFormatterFactory(quiet, verbose bool) *DefaultFormatterFactory {
	return &DefaultFormatterFactory{quiet: quiet, verbose: verbose}
}

// CreateFormatter implements FormatterFactory.
func (f *DefaultFormatterFactory) CreateFormatter(format string, w io.Writer) (output.Formatter, error) {
	switch format {
	case "console", "":
		return output.NewConsoleFormatter(w, f.quiet, f.verbose), nil
	case "json":
		return output.NewJSONFormatter(w, true), nil
	case "markdown":
		return output.NewMarkdownFormatter(w, f.verbose), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// Outputter handles output formatting
type Outputter struct {
	config  *config.Config
	factory FormatterFactory
	stdout  io.Writer
}

// NewOutputter creates an Outputter using the default formatters.
func NewOutputter(cfg *config.Config, stdout io.Writer) *Outputter {
	return NewOutputterWithFactory(cfg, stdout, NewDefaultFormatterFactory(cfg.Quiet, cfg.Verbose))
}

// NewOutputterWithFactory creates an Outputter with a custom factory.
func NewOutputterWithFactory(cfg *config.Config, stdout io.Writer, factory FormatterFactory) *Outputter {
	if stdout == nil {
		stdout = os.Stdout
	}
	return &Outputter{config: cfg, factory: factory, stdout: stdout}
}

// Write renders report in the configured format. When an output file is
// configured the report replaces its contents.
func (o *Outputter) Write(report *output.Report) (err error) {
	if report == nil {
		return fmt.Errorf("no report to write")
	}

	w := o.stdout
	if o.config.Output != "" {
		file, err := createOutputFile(o.config.Output)
		if err != nil {
			return err
		}
		defer func() {
			if cerr := file.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("error closing %s: %w", o.config.Output, cerr)
			}
		}()
		w = file
	}

	formatter, err := o.factory.CreateFormatter(o.config.Format, w)
	if err != nil {
		return err
	}
	if err := formatter.Format(report); err != nil {
		return fmt.Errorf("error formatting output: %w", err)
	}
	return nil
}

func createOutputFile(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("error creating directory for %s: %w", path, err)
		}
	}
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("error writing to file %s: %w", path, err)
	}
	return file, nil
}
