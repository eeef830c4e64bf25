package outputters

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/suchetkumbar/Syntara/internal/config"
	"github.com/suchetkumbar/Syntara/internal/output"
	"github.com/suchetkumbar/Syntara/internal/scoring"
)

// =============================================================================
// Mock Formatter for testing
// =============================================================================

type mockFormatter struct {
	formatCalled bool
	formatError  error
	report       *output.Report
}

func (m *mockFormatter) Format(report *output.Report) error {
	m.formatCalled = true
	m.report = report
	return m.formatError
}

// =============================================================================
// Mock FormatterFactory for testing
// =============================================================================

type mockFormatterFactory struct {
	createCalled    bool
	requestedFormat string
	writer          io.Writer
	formatter       output.Formatter
	createError     error
}

func (m *mockFormatterFactory) CreateFormatter(format string, w io.Writer) (output.Formatter, error) {
	m.createCalled = true
	m.requestedFormat = format
	m.writer = w
	if m.createError != nil {
		return nil, m.createError
	}
	return m.formatter, nil
}

func sampleReport() *output.Report {
	return &output.Report{
		Command: "score",
		Scores: []output.ScoreResult{
			output.NewScoreResult("a.md", "", scoring.Score("You are an expert reviewer. Review the code and list every bug as a numbered list.")),
		},
	}
}

func TestNewOutputter(t *testing.T) {
	cfg := &config.Config{Format: "console"}
	var buf bytes.Buffer

	outputter := NewOutputter(cfg, &buf)

	if outputter.config != cfg {
		t.Errorf("NewOutputter() config = %v, want %v", outputter.config, cfg)
	}
	if _, ok := outputter.factory.(*DefaultFormatterFactory); !ok {
		t.Errorf("NewOutputter() factory type = %T, want *DefaultFormatterFactory", outputter.factory)
	}
	if outputter.stdout != &buf {
		t.Error("NewOutputter() did not keep the stdout writer")
	}
}

func TestNewOutputterWithFactory_DefaultsToStdout(t *testing.T) {
	outputter := NewOutputterWithFactory(&config.Config{}, nil, &mockFormatterFactory{})
	if outputter.stdout != os.Stdout {
		t.Errorf("stdout = %v, want os.Stdout", outputter.stdout)
	}
}

func TestOutputter_Write_Success(t *testing.T) {
	cfg := &config.Config{Format: "json"}
	var buf bytes.Buffer
	mockForm := &mockFormatter{}
	mockFactory := &mockFormatterFactory{formatter: mockForm}

	report := sampleReport()
	if err := NewOutputterWithFactory(cfg, &buf, mockFactory).Write(report); err != nil {
		t.Fatalf("Write() error = %v, want nil", err)
	}

	if !mockFactory.createCalled || mockFactory.requestedFormat != "json" {
		t.Errorf("CreateFormatter called=%v format=%q, want json", mockFactory.createCalled, mockFactory.requestedFormat)
	}
	if mockFactory.writer != &buf {
		t.Error("formatter should write to stdout when no output file is set")
	}
	if mockForm.report != report {
		t.Error("Write() passed wrong report to formatter")
	}
}

func TestOutputter_Write_Errors(t *testing.T) {
	cfg := &config.Config{Format: "console"}

	createErr := errors.New("no formatter")
	err := NewOutputterWithFactory(cfg, io.Discard, &mockFormatterFactory{createError: createErr}).Write(sampleReport())
	if !errors.Is(err, createErr) {
		t.Errorf("Write() error = %v, want %v", err, createErr)
	}

	formatErr := errors.New("broken pipe")
	err = NewOutputterWithFactory(cfg, io.Discard, &mockFormatterFactory{
		formatter: &mockFormatter{formatError: formatErr},
	}).Write(sampleReport())
	if !errors.Is(err, formatErr) || !strings.Contains(err.Error(), "error formatting output") {
		t.Errorf("Write() error = %v, want wrapped %v", err, formatErr)
	}

	if err := NewOutputter(cfg, io.Discard).Write(nil); err == nil {
		t.Error("Write(nil) should fail")
	}
}

func TestOutputter_Write_ToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "score.md")
	cfg := &config.Config{Format: "markdown", Output: path}
	var stdout bytes.Buffer

	if err := NewOutputter(cfg, &stdout).Write(sampleReport()); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if stdout.Len() != 0 {
		t.Errorf("nothing should reach stdout, got %q", stdout.String())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("report file not written: %v", err)
	}
	if !strings.HasPrefix(string(data), "# Syntara Score Report") {
		t.Errorf("unexpected report content:\n%s", data)
	}
}

func TestDefaultFormatterFactory_CreateFormatter(t *testing.T) {
	factory := NewDefaultFormatterFactory(false, false)

	tests := []struct {
		format   string
		wantType string
		wantErr  bool
	}{
		{"console", "*output.ConsoleFormatter", false},
		{"", "*output.ConsoleFormatter", false},
		{"json", "*output.JSONFormatter", false},
		{"markdown", "*output.MarkdownFormatter", false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			formatter, err := factory.CreateFormatter(tt.format, io.Discard)
			if tt.wantErr {
				if err == nil {
					t.Errorf("CreateFormatter(%q) expected error", tt.format)
				}
				return
			}
			if err != nil {
				t.Fatalf("CreateFormatter(%q) error = %v", tt.format, err)
			}
			if got := typeName(formatter); got != tt.wantType {
				t.Errorf("CreateFormatter(%q) type = %s, want %s", tt.format, got, tt.wantType)
			}
		})
	}
}

func TestOutputter_AllFormats(t *testing.T) {
	for _, format := range config.Formats {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			cfg := &config.Config{Format: format}
			if err := NewOutputter(cfg, &buf).Write(sampleReport()); err != nil {
				t.Fatalf("Write() error = %v", err)
			}
			if !strings.Contains(buf.String(), "a.md") {
				t.Errorf("%s output does not mention the file:\n%s", format, buf.String())
			}
		})
	}
}

func typeName(v any) string {
	switch v.(type) {
	case *output.ConsoleFormatter:
		return "*output.ConsoleFormatter"
	case *output.JSONFormatter:
		return "*output.JSONFormatter"
	case *output.MarkdownFormatter:
		return "*output.MarkdownFormatter"
	default:
		return "unknown"
	}
}
