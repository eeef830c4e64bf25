// Package logging adapts github.com/baditaflorin/l to the small logger
// interface the CLI passes around.
package logging

import (
	"io"
	"log/slog"
	"os"

	"github.com/baditaflorin/l"
)

// Logger is a structured key/value logger.
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	Close() error
}

// Options configures New.
type Options struct {
	Output  io.Writer // defaults to os.Stderr
	JSON    bool
	Verbose bool // emit Debug messages
	Quiet   bool // drop everything below Warn
}

// StdLogger wraps an l.Logger and applies the verbosity filter.
type StdLogger struct {
	logger  l.Logger
	verbose bool
	quiet   bool
}

// New creates a logger writing to opts.Output.
func New(opts Options) (*StdLogger, error) {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	level := slog.LevelInfo
	if opts.Verbose {
		level = l.LevelDebug
	}
	logger, err := l.NewStandardFactory().CreateLogger(l.Config{
		Output:     out,
		Level:      level,
		MinLevel:   level,
		JsonFormat: opts.JSON,
		AsyncWrite: false,
		AddSource:  opts.Verbose,
	})
	if err != nil {
		return nil, err
	}
	return &StdLogger{logger: logger, verbose: opts.Verbose, quiet: opts.Quiet}, nil
}

// Debug logs a debug message when verbose.
func (s *StdLogger) Debug(msg string, keysAndValues ...interface{}) {
	if s.verbose {
		s.logger.Debug(msg, keysAndValues...)
	}
}

// Info logs an info message unless quiet.
func (s *StdLogger) Info(msg string, keysAndValues ...interface{}) {
	if !s.quiet {
		s.logger.Info(msg, keysAndValues...)
	}
}

// Warn logs a warning message.
func (s *StdLogger) Warn(msg string, keysAndValues ...interface{}) {
	s.logger.Warn(msg, keysAndValues...)
}

// Error logs an error message.
func (s *StdLogger) Error(msg string, keysAndValues ...interface{}) {
	s.logger.Error(msg, keysAndValues...)
}

// Close flushes and closes the underlying logger.
func (s *StdLogger) Close() error {
	return s.logger.Close()
}

// Nop discards everything.
type Nop struct{}

func (Nop) Debug(string, ...interface{}) {}
func (Nop) Info(string, ...interface{})  {}
func (Nop) Warn(string, ...interface{})  {}
func (Nop) Error(string, ...interface{}) {}
func (Nop) Close() error                 { return nil }
