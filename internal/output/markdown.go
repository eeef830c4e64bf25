package output

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/suchetkumbar/Syntara/internal/compare"
	"github.com/suchetkumbar/Syntara/internal/scoring"
	"github.com/suchetkumbar/Syntara/internal/textutil"
)

// MarkdownFormatter formats output as Markdown
type MarkdownFormatter struct {
	w       io.Writer
	verbose bool
	now     func() time.Time
}

// NewMarkdownFormatter creates a MarkdownFormatter writing to w.
func NewMarkdownFormatter(w io.Writer, verbose bool) *MarkdownFormatter {
	return &MarkdownFormatter{w: w, verbose: verbose, now: time.Now}
}

// Format writes the report as a markdown document.
func (f *MarkdownFormatter) Format(r *Report) error {
	var b strings.Builder

	title := "Syntara Report"
	if r.Command != "" {
		title = fmt.Sprintf("Syntara %s Report", textutil.Capitalize(r.Command))
	}
	b.WriteString("# " + title + "\n\n")
	b.WriteString(fmt.Sprintf("**Generated:** %s\n\n", f.now().Format("2006-01-02 15:04:05")))

	f.writeScores(&b, r.Scores, r.Explain)
	f.writeDebug(&b, r.Debug)
	f.writeDiff(&b, r.Diff)
	f.writeSearch(&b, r.Search)
	f.writeModels(&b, r)
	f.writeOptimize(&b, r.Optimize)
	f.writeGenerated(&b, r)
	f.writeTokens(&b, r.Tokens)
	f.writeCompare(&b, r.Compare)
	f.writeSummary(&b, r.Summary)
	f.writeHistory(&b, r.History)

	if _, err := io.WriteString(f.w, b.String()); err != nil {
		return fmt.Errorf("error writing markdown: %w", err)
	}
	return nil
}

func (f *MarkdownFormatter) writeScores(b *strings.Builder, results []ScoreResult, explain bool) {
	if len(results) == 0 {
		return
	}
	b.WriteString("## Scores\n\n")
	b.WriteString("| Prompt | Score | Label |\n")
	b.WriteString("|--------|-------|-------|\n")
	for _, r := range results {
		b.WriteString(fmt.Sprintf("| %s | %d | %s |\n", escapeCell(displayName(r)), r.Score.Total, r.Label))
	}
	b.WriteString("\n")

	for _, r := range results {
		if len(r.Score.Suggestions) == 0 && !explain && r.External == nil && r.ExternalError == "" {
			continue
		}
		b.WriteString(fmt.Sprintf("### %s\n\n", displayName(r)))
		if explain || f.verbose {
			b.WriteString("| Dimension | Points | Max |\n")
			b.WriteString("|-----------|--------|-----|\n")
			for _, d := range breakdownRows(r.Score.Breakdown) {
				b.WriteString(fmt.Sprintf("| %s | %d | %d |\n", d.name, d.points, d.max))
			}
			b.WriteString("\n")
		}
		if r.External != nil {
			b.WriteString(fmt.Sprintf("External score: **%d** (%s)\n\n", r.External.Total, scoring.ScoreLabel(r.External.Total)))
		} else if r.ExternalError != "" {
			b.WriteString(fmt.Sprintf("External score rejected: %s\n\n", r.ExternalError))
		}
		for _, s := range r.Score.Suggestions {
			b.WriteString("- " + s + "\n")
		}
		if len(r.Score.Suggestions) > 0 {
			b.WriteString("\n")
		}
	}
}

func (f *MarkdownFormatter) writeDebug(b *strings.Builder, results []DebugResult) {
	if len(results) == 0 {
		return
	}
	b.WriteString("## Issues\n\n")
	b.WriteString("| File | Errors | Warnings | Info |\n")
	b.WriteString("|------|--------|----------|------|\n")
	for _, r := range results {
		b.WriteString(fmt.Sprintf("| %s | %d | %d | %d |\n", escapeCell(r.File), r.Counts.Errors, r.Counts.Warnings, r.Counts.Infos))
	}
	b.WriteString("\n")

	for _, r := range results {
		if len(r.Issues) == 0 {
			if f.verbose {
				b.WriteString(fmt.Sprintf("### %s\n\n✅ No issues\n\n", r.File))
			}
			continue
		}
		b.WriteString(fmt.Sprintf("### %s\n\n", r.File))
		for _, issue := range r.Issues {
			b.WriteString(fmt.Sprintf("- **%s** `[%s]` %s", issue.Severity, issue.Category, issue.Message))
			if issue.Suggestion != "" {
				b.WriteString(fmt.Sprintf(" _%s_", issue.Suggestion))
			}
			b.WriteString("\n")
		}
		if r.Ignored > 0 {
			b.WriteString(fmt.Sprintf("\n%d known %s ignored by baseline.\n", r.Ignored, plural(r.Ignored, "issue", "issues")))
		}
		b.WriteString("\n")
	}
}

func (f *MarkdownFormatter) writeDiff(b *strings.Builder, d *DiffResult) {
	if d == nil {
		return
	}
	b.WriteString(fmt.Sprintf("## Diff\n\n`%s` → `%s`: +%d -%d =%d\n\n", d.From, d.To, d.Stats.Added, d.Stats.Removed, d.Stats.Unchanged))
	b.WriteString("```diff\n")
	for _, l := range d.Lines {
		b.WriteString(l.Type.Prefix() + l.Content + "\n")
	}
	b.WriteString("```\n\n")
}

func (f *MarkdownFormatter) writeSearch(b *strings.Builder, s *SearchResult) {
	if s == nil {
		return
	}
	b.WriteString(fmt.Sprintf("## Search: %s\n\n", s.Query))
	if len(s.Matches) == 0 {
		b.WriteString("*No prompts matched.*\n\n")
		return
	}
	b.WriteString("| Score | ID | Title |\n")
	b.WriteString("|-------|----|-------|\n")
	for _, m := range s.Matches {
		b.WriteString(fmt.Sprintf("| %.2f | %s | %s |\n", m.Score, escapeCell(m.ID), escapeCell(m.Title)))
	}
	b.WriteString("\n")
}

func (f *MarkdownFormatter) writeModels(b *strings.Builder, r *Report) {
	if len(r.Models) == 0 {
		return
	}
	b.WriteString("## Models\n\n")
	b.WriteString("| ID | Name | Provider | Context |\n")
	b.WriteString("|----|------|----------|---------|\n")
	for _, m := range r.Models {
		b.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n", m.ID, m.Name, m.Provider, humanize.Comma(int64(m.ContextLimit))))
	}
	b.WriteString("\n")
}

func (f *MarkdownFormatter) writeOptimize(b *strings.Builder, o *OptimizeResult) {
	if o == nil {
		return
	}
	if !o.Known {
		b.WriteString(fmt.Sprintf("## Optimize\n\nUnknown model `%s`.\n\n", o.Model))
		return
	}
	b.WriteString(fmt.Sprintf("## Optimized for %s\n\n", o.Model))
	for _, c := range o.Changes {
		b.WriteString("- " + c + "\n")
	}
	b.WriteString("\n```text\n" + o.Optimized + "\n```\n\n")
	if len(o.Tips) > 0 {
		b.WriteString("### Tips\n\n")
		for _, t := range o.Tips {
			b.WriteString("- " + t + "\n")
		}
		b.WriteString("\n")
	}
}

func (f *MarkdownFormatter) writeGenerated(b *strings.Builder, r *Report) {
	if g := r.Generate; g != nil {
		b.WriteString(fmt.Sprintf("## Generated (%s)\n\n", g.Strategy))
		b.WriteString("```text\n" + g.Prompt + "\n```\n\n")
		b.WriteString(fmt.Sprintf("Score: **%d** (%s)\n\n", g.Score.Total, scoring.ScoreLabel(g.Score.Total)))
	}
	if bl := r.Build; bl != nil {
		b.WriteString(fmt.Sprintf("## Built from %s\n\n", bl.Source))
		b.WriteString(fmt.Sprintf("%d of %d blocks enabled.\n\n", bl.Enabled, bl.Total))
		b.WriteString("```text\n" + bl.Prompt + "\n```\n\n")
		b.WriteString(fmt.Sprintf("Score: **%d** (%s)\n\n", bl.Score.Total, scoring.ScoreLabel(bl.Score.Total)))
	}
}

func (f *MarkdownFormatter) writeTokens(b *strings.Builder, results []TokensResult) {
	if len(results) == 0 {
		return
	}
	b.WriteString("## Tokens\n\n")
	for _, t := range results {
		b.WriteString(fmt.Sprintf("### %s\n\n~%s tokens\n\n", t.File, t.Display))
		b.WriteString("| Model | Cost |\n")
		b.WriteString("|-------|------|\n")
		for _, c := range t.Costs {
			b.WriteString(fmt.Sprintf("| %s | %s |\n", c.Model, c.Display))
		}
		b.WriteString("\n")
		if t.Warning != "" {
			b.WriteString("> ⚠ " + t.Warning + "\n\n")
		}
	}
}

func (f *MarkdownFormatter) writeCompare(b *strings.Builder, e *compare.Experiment) {
	if e == nil {
		return
	}
	b.WriteString("## Comparison\n\n")
	b.WriteString("| Dimension | A | B | Diff |\n")
	b.WriteString("|-----------|---|---|------|\n")
	for _, d := range e.Deltas {
		b.WriteString(fmt.Sprintf("| %s | %d | %d | %+d |\n", d.Dimension, d.A, d.B, d.Diff))
	}
	b.WriteString(fmt.Sprintf("| **total** | %d | %d | %+d |\n\n", e.ScoreA.Total, e.ScoreB.Total, e.ScoreB.Total-e.ScoreA.Total))
	if e.Winner == compare.WinnerTie {
		b.WriteString("Result: **tie**\n\n")
	} else {
		b.WriteString(fmt.Sprintf("Winner: **%s** by %d %s\n\n", e.Winner, e.Margin, plural(e.Margin, "point", "points")))
	}
}

func (f *MarkdownFormatter) writeSummary(b *strings.Builder, s *LibrarySummary) {
	if s == nil {
		return
	}
	b.WriteString("## Summary\n\n")
	b.WriteString("| Metric | Value |\n")
	b.WriteString("|--------|-------|\n")
	b.WriteString(fmt.Sprintf("| Prompts | %d |\n", s.Total))
	b.WriteString(fmt.Sprintf("| Average score | %.1f |\n\n", s.Average))

	b.WriteString("### Quality distribution\n\n")
	b.WriteString("| Label | Count |\n")
	b.WriteString("|-------|-------|\n")
	for _, lc := range s.Labels {
		b.WriteString(fmt.Sprintf("| %s | %d |\n", lc.Label, lc.Count))
	}
	b.WriteString("\n")

	if len(s.TopSuggestions) > 0 {
		b.WriteString("### Top suggestions\n\n")
		for _, sc := range s.TopSuggestions {
			b.WriteString(fmt.Sprintf("- %s (%d)\n", sc.Suggestion, sc.Count))
		}
		b.WriteString("\n")
	}
	if len(s.Lowest) > 0 {
		b.WriteString("### Lowest scoring\n\n")
		for _, r := range s.Lowest {
			b.WriteString(fmt.Sprintf("- %s: %d (%s)\n", displayName(r), r.Score.Total, r.Label))
		}
		b.WriteString("\n")
	}
}

func (f *MarkdownFormatter) writeHistory(b *strings.Builder, h *HistoryResult) {
	if h == nil {
		return
	}
	b.WriteString(fmt.Sprintf("## History: %s\n\n", h.Title))
	if len(h.Versions) == 0 {
		b.WriteString("*No versions recorded.*\n\n")
		return
	}
	b.WriteString("| Version | Created | Score | Words | Note |\n")
	b.WriteString("|---------|---------|-------|-------|------|\n")
	now := f.now()
	for _, v := range h.Versions {
		created, score := "-", "-"
		if !v.CreatedAt.IsZero() {
			created = humanize.RelTime(v.CreatedAt, now, "ago", "from now")
		}
		if v.Total != nil {
			score = fmt.Sprintf("%d (%s)", *v.Total, v.Label)
		}
		b.WriteString(fmt.Sprintf("| %s | %s | %s | %d | %s |\n", escapeCell(v.ID), created, score, v.Words, escapeCell(v.Note)))
	}
	b.WriteString("\n")
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
