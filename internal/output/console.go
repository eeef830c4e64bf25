package output

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/suchetkumbar/Syntara/internal/compare"
	"github.com/suchetkumbar/Syntara/internal/optimizer"
	"github.com/suchetkumbar/Syntara/internal/scoring"
)

// ConsoleFormatter formats output for console display
type ConsoleFormatter struct {
	w       io.Writer
	quiet   bool
	verbose bool
	styles  consoleStyles
	now     func() time.Time
}

// NewConsoleFormatter creates a ConsoleFormatter writing to w. Quiet keeps
// only the essential payload of each command.
func NewConsoleFormatter(w io.Writer, quiet, verbose bool) *ConsoleFormatter {
	return &ConsoleFormatter{
		w:       w,
		quiet:   quiet,
		verbose: verbose,
		styles:  newConsoleStyles(w),
		now:     time.Now,
	}
}

// Format prints every section the report carries.
func (f *ConsoleFormatter) Format(r *Report) error {
	f.printScores(r.Scores, r.Explain)
	f.printDebug(r.Debug)
	f.printDiff(r.Diff)
	f.printSearch(r.Search)
	f.printModels(r.Models)
	f.printOptimize(r.Optimize)
	f.printGenerate(r.Generate)
	f.printBuild(r.Build)
	f.printTokens(r.Tokens)
	f.printCompare(r.Compare)
	f.printSummary(r.Summary)
	f.printHistory(r.History)
	return nil
}

func (f *ConsoleFormatter) printf(format string, args ...any) {
	fmt.Fprintf(f.w, format, args...)
}

func (f *ConsoleFormatter) scoreText(total int) string {
	return f.styles.forScore(total).Render(fmt.Sprintf("%3d/100", total))
}

func (f *ConsoleFormatter) printScores(results []ScoreResult, explain bool) {
	if len(results) == 0 {
		return
	}

	names := make([]string, len(results))
	for i, r := range results {
		names[i] = displayName(r)
	}
	width := columnWidth(names)

	for i, r := range results {
		f.printf("%s  %s  %s\n", column(names[i], width), f.scoreText(r.Score.Total), r.Label)
		if f.quiet {
			continue
		}
		if explain || f.verbose {
			f.printBreakdown(r.Score)
		}
		if r.External != nil {
			ext := *r.External
			f.printf("  %s %s  %s\n", f.styles.dim.Render("external:"), f.scoreText(ext.Total), scoring.ScoreLabel(ext.Total))
		} else if r.ExternalError != "" {
			f.printf("  %s %s\n", f.styles.dim.Render("external:"), f.styles.danger.Render(r.ExternalError))
		}
		for _, s := range r.Score.Suggestions {
			f.printf("  %s %s\n", f.styles.dim.Render("→"), s)
		}
	}

	if !f.quiet && len(results) > 1 {
		sum := 0
		for _, r := range results {
			sum += r.Score.Total
		}
		f.printf("\n%d prompts, average %.1f\n", len(results), float64(sum)/float64(len(results)))
	}
}

func (f *ConsoleFormatter) printBreakdown(s scoring.PromptScore) {
	for _, d := range breakdownRows(s.Breakdown) {
		style := f.styles.forScore(d.points * 100 / d.max)
		f.printf("  %s %s %s\n", column(d.name, 13), style.Render(fmt.Sprintf("%2d/%-2d", d.points, d.max)), f.styles.bar(d.points, d.max, style))
	}
	if !f.verbose {
		return
	}
	for _, m := range s.Details {
		line := fmt.Sprintf("    %s: %d/%d", m.Name, m.Points, m.MaxPoints)
		if m.Note != "" {
			line += " (" + m.Note + ")"
		}
		if len(m.Matches) > 0 {
			line += " [" + strings.Join(m.Matches, ", ") + "]"
		}
		f.printf("%s\n", f.styles.dim.Render(line))
	}
}

func (f *ConsoleFormatter) printDebug(results []DebugResult) {
	if len(results) == 0 {
		return
	}

	var errs, warns, infos, ignored int
	for _, r := range results {
		errs += r.Counts.Errors
		warns += r.Counts.Warnings
		infos += r.Counts.Infos
		ignored += r.Ignored

		if len(r.Issues) == 0 {
			if !f.quiet {
				f.printf("%s %s\n", f.styles.success.Render("✓"), r.File)
			}
			continue
		}

		status := f.styles.warning.Render("⚠")
		if r.Counts.Errors > 0 {
			status = f.styles.danger.Render("✗")
		}
		f.printf("%s %s\n", status, r.File)
		for _, issue := range r.Issues {
			style := f.styles.forSeverity(issue.Severity)
			f.printf("    %s %s %s\n", style.Render(severitySymbol(issue.Severity)), f.styles.bold.Render("["+issue.Category+"]"), issue.Message)
			if issue.Suggestion != "" && !f.quiet {
				f.printf("      %s %s\n", f.styles.dim.Render("→"), issue.Suggestion)
			}
		}
	}

	if f.quiet {
		return
	}
	f.printf("\n%d %s, %d %s, %d %s, %d info\n",
		len(results), plural(len(results), "file", "files"),
		errs, plural(errs, "error", "errors"),
		warns, plural(warns, "warning", "warnings"),
		infos)
	if ignored > 0 {
		f.printf("%s\n", f.styles.dim.Render(fmt.Sprintf("%d known %s ignored by baseline", ignored, plural(ignored, "issue", "issues"))))
	}
}

func (f *ConsoleFormatter) printDiff(d *DiffResult) {
	if d == nil {
		return
	}
	if !f.quiet {
		f.printf("%s\n%s\n", f.styles.danger.Render("--- "+d.From), f.styles.success.Render("+++ "+d.To))
	}
	for _, l := range d.Lines {
		f.printf("%s\n", f.styles.forLine(l.Type).Render(l.Type.Prefix()+l.Content))
	}
	if !f.quiet {
		f.printf("\n%s %s %s\n",
			f.styles.success.Render(fmt.Sprintf("+%d", d.Stats.Added)),
			f.styles.danger.Render(fmt.Sprintf("-%d", d.Stats.Removed)),
			f.styles.dim.Render(fmt.Sprintf("=%d", d.Stats.Unchanged)))
	}
}

func (f *ConsoleFormatter) printSearch(s *SearchResult) {
	if s == nil {
		return
	}
	if len(s.Matches) == 0 {
		if !f.quiet {
			f.printf("No prompts matched %q\n", s.Query)
		}
		return
	}

	ids := make([]string, len(s.Matches))
	for i, m := range s.Matches {
		ids[i] = m.ID
	}
	width := columnWidth(ids)
	for _, m := range s.Matches {
		f.printf("%s  %s  %s\n", f.styles.bold.Render(fmt.Sprintf("%.2f", m.Score)), column(m.ID, width), m.Title)
	}
}

func (f *ConsoleFormatter) printModels(models []optimizer.Profile) {
	if len(models) == 0 {
		return
	}
	ids := make([]string, len(models))
	names := make([]string, len(models))
	for i, m := range models {
		ids[i] = m.ID
		names[i] = m.Name
	}
	idWidth, nameWidth := columnWidth(ids), columnWidth(names)
	for _, m := range models {
		f.printf("%s  %s  %s  %s tokens\n",
			f.styles.bold.Render(column(m.ID, idWidth)), column(m.Name, nameWidth),
			column(m.Provider, 10), humanize.Comma(int64(m.ContextLimit)))
		if f.verbose {
			for _, tip := range m.Tips {
				f.printf("    %s %s\n", f.styles.dim.Render("•"), tip)
			}
		}
	}
}

func (f *ConsoleFormatter) printOptimize(o *OptimizeResult) {
	if o == nil {
		return
	}
	if !o.Known {
		f.printf("%s\n", f.styles.warning.Render("Unknown model: "+o.Model))
		return
	}
	if !f.quiet {
		f.printf("%s\n", f.styles.header.Render("Optimized for "+o.Model))
		for _, c := range o.Changes {
			f.printf("  %s %s\n", f.styles.success.Render("•"), c)
		}
		for _, tip := range o.Tips {
			f.printf("  %s %s\n", f.styles.dim.Render("tip:"), tip)
		}
		f.printf("\n")
	}
	f.printf("%s\n", o.Optimized)
}

func (f *ConsoleFormatter) printGenerate(g *GenerateResult) {
	if g == nil {
		return
	}
	f.printf("%s\n", g.Prompt)
	if !f.quiet {
		f.printf("\n%s %s %s  %s\n", f.styles.dim.Render("strategy "+g.Strategy+","), f.styles.dim.Render("score"), f.scoreText(g.Score.Total), scoring.ScoreLabel(g.Score.Total))
	}
}

func (f *ConsoleFormatter) printBuild(b *BuildResult) {
	if b == nil {
		return
	}
	f.printf("%s\n", b.Prompt)
	if !f.quiet {
		f.printf("\n%s %s  %s\n",
			f.styles.dim.Render(fmt.Sprintf("%d/%d blocks enabled, score", b.Enabled, b.Total)),
			f.scoreText(b.Score.Total), scoring.ScoreLabel(b.Score.Total))
		for _, s := range b.Score.Suggestions {
			f.printf("  %s %s\n", f.styles.dim.Render("→"), s)
		}
	}
}

func (f *ConsoleFormatter) printTokens(results []TokensResult) {
	for i, t := range results {
		if i > 0 && !f.quiet {
			f.printf("\n")
		}
		f.printf("%s  %s tokens\n", f.styles.bold.Render(t.File), t.Display)
		if f.quiet {
			continue
		}
		labels := make([]string, len(t.Costs))
		for j, c := range t.Costs {
			labels[j] = c.Model
		}
		width := columnWidth(labels)
		for _, c := range t.Costs {
			f.printf("  %s  %s\n", column(c.Model, width), c.Display)
		}
		if t.Warning != "" {
			f.printf("  %s\n", f.styles.warning.Render("⚠ "+t.Warning))
		}
	}
}

func (f *ConsoleFormatter) printCompare(e *compare.Experiment) {
	if e == nil {
		return
	}
	if !f.quiet {
		f.printf("%s  %s  %s  %s\n", column("dimension", 13), "   A", "   B", "diff")
		for _, d := range e.Deltas {
			diffStyle := f.styles.dim
			switch {
			case d.Diff > 0:
				diffStyle = f.styles.success
			case d.Diff < 0:
				diffStyle = f.styles.danger
			}
			f.printf("%s  %4d  %4d  %s\n", column(d.Dimension, 13), d.A, d.B, diffStyle.Render(fmt.Sprintf("%+d", d.Diff)))
		}
		f.printf("%s  %4d  %4d  %+d\n\n", column("total", 13), e.ScoreA.Total, e.ScoreB.Total, e.ScoreB.Total-e.ScoreA.Total)
	}
	switch e.Winner {
	case compare.WinnerTie:
		f.printf("%s\n", f.styles.bold.Render("Tie"))
	default:
		f.printf("%s\n", f.styles.success.Render(fmt.Sprintf("Winner: %s by %d %s", e.Winner, e.Margin, plural(e.Margin, "point", "points"))))
	}
}

func (f *ConsoleFormatter) printSummary(s *LibrarySummary) {
	if s == nil {
		return
	}
	f.printf("%s\n", f.styles.header.Render("PROMPT QUALITY SUMMARY"))
	f.printf("Prompts analyzed: %d, average score %.1f\n", s.Total, s.Average)
	if f.quiet || s.Total == 0 {
		return
	}

	f.printf("\n%s\n", f.styles.header.Render("QUALITY DISTRIBUTION"))
	for _, lc := range s.Labels {
		pct := float64(lc.Count) / float64(s.Total) * 100
		f.printf("  %s %4d (%5.1f%%)  %s\n", column(lc.Label, 10), lc.Count, pct, f.styles.bar(lc.Count, s.Total, f.styles.forScore(labelFloor(lc.Label))))
	}

	if len(s.TopSuggestions) > 0 {
		f.printf("\n%s\n", f.styles.header.Render("TOP SUGGESTIONS"))
		for _, sc := range s.TopSuggestions {
			f.printf("  %4d  %s\n", sc.Count, sc.Suggestion)
		}
	}

	if len(s.Lowest) > 0 {
		f.printf("\n%s\n", f.styles.header.Render("LOWEST SCORING"))
		names := make([]string, len(s.Lowest))
		for i, r := range s.Lowest {
			names[i] = displayName(r)
		}
		width := columnWidth(names)
		for i, r := range s.Lowest {
			f.printf("  %s  %s  %s\n", column(names[i], width), f.scoreText(r.Score.Total), r.Label)
		}
	}
}

func (f *ConsoleFormatter) printHistory(h *HistoryResult) {
	if h == nil {
		return
	}
	f.printf("%s %s\n", f.styles.header.Render(h.Title), f.styles.dim.Render("("+h.ID+")"))
	if len(h.Versions) == 0 {
		f.printf("  no versions recorded\n")
		return
	}

	ids := make([]string, len(h.Versions))
	for i, v := range h.Versions {
		ids[i] = v.ID
	}
	width := columnWidth(ids)
	now := f.now()
	for _, v := range h.Versions {
		age := "-"
		if !v.CreatedAt.IsZero() {
			age = humanize.RelTime(v.CreatedAt, now, "ago", "from now")
		}
		score := f.styles.dim.Render("  -/100")
		if v.Total != nil {
			score = f.scoreText(*v.Total)
		}
		f.printf("  %s  %s  %s  %s words", column(v.ID, width), column(age, 16), score, humanize.Comma(int64(v.Words)))
		if v.Note != "" {
			f.printf("  %s", f.styles.dim.Render(v.Note))
		}
		f.printf("\n")
	}
}

func displayName(r ScoreResult) string {
	if r.Title != "" {
		return r.Title
	}
	return r.File
}

// labelFloor is the lowest total carrying label, used to colour it.
func labelFloor(label string) int {
	switch label {
	case "Excellent":
		return 85
	case "Great":
		return 70
	case "Good":
		return 55
	case "Fair":
		return 40
	case "Basic":
		return 20
	default:
		return 0
	}
}
