package output

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/suchetkumbar/Syntara/internal/diff"
	"github.com/suchetkumbar/Syntara/internal/scoring"
	"github.com/suchetkumbar/Syntara/internal/types"
)

const (
	maxNameWidth = 40
	barWidth     = 10
)

// consoleStyles are bound to a renderer for the destination writer, so
// colour is dropped automatically when the writer is not a terminal.
type consoleStyles struct {
	success lipgloss.Style
	warning lipgloss.Style
	danger  lipgloss.Style
	info    lipgloss.Style
	dim     lipgloss.Style
	bold    lipgloss.Style
	header  lipgloss.Style
}

func newConsoleStyles(w io.Writer) consoleStyles {
	r := lipgloss.NewRenderer(w)
	return consoleStyles{
		success: r.NewStyle().Foreground(lipgloss.Color("10")),
		warning: r.NewStyle().Foreground(lipgloss.Color("3")),
		danger:  r.NewStyle().Foreground(lipgloss.Color("9")),
		info:    r.NewStyle().Foreground(lipgloss.Color("7")),
		dim:     r.NewStyle().Foreground(lipgloss.Color("8")),
		bold:    r.NewStyle().Bold(true),
		header:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
	}
}

// forScore returns the style matching scoring.ScoreColor.
func (s consoleStyles) forScore(total int) lipgloss.Style {
	switch scoring.ScoreColor(total) {
	case scoring.ColorSuccess:
		return s.success
	case scoring.ColorWarning:
		return s.warning
	default:
		return s.danger
	}
}

func (s consoleStyles) forSeverity(sev types.Severity) lipgloss.Style {
	switch sev {
	case types.SeverityError:
		return s.danger
	case types.SeverityWarning:
		return s.warning
	default:
		return s.info
	}
}

func (s consoleStyles) forLine(t diff.LineType) lipgloss.Style {
	switch t {
	case diff.Added:
		return s.success
	case diff.Removed:
		return s.danger
	default:
		return s.dim
	}
}

func severitySymbol(sev types.Severity) string {
	switch sev {
	case types.SeverityError:
		return "✘"
	case types.SeverityWarning:
		return "⚠"
	default:
		return "•"
	}
}

// bar renders count out of total as a fixed-width bar.
func (s consoleStyles) bar(count, total int, style lipgloss.Style) string {
	if total == 0 {
		return ""
	}
	filled := (count * barWidth) / total
	if count > 0 && filled == 0 {
		filled = 1
	}
	return style.Render(strings.Repeat("█", filled)) + s.dim.Render(strings.Repeat("░", barWidth-filled))
}

// column pads or truncates s to exactly width display cells.
func column(s string, width int) string {
	if runewidth.StringWidth(s) > width {
		s = runewidth.Truncate(s, width, "…")
	}
	return runewidth.FillRight(s, width)
}

// columnWidth is the display width of the widest name, capped.
func columnWidth(names []string) int {
	w := 0
	for _, n := range names {
		w = max(w, runewidth.StringWidth(n))
	}
	return min(w, maxNameWidth)
}

func plural(n int, singular, pluralForm string) string {
	if n == 1 {
		return singular
	}
	return pluralForm
}
