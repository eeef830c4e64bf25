// Package output renders command results as console text, JSON or
// markdown.
package output

import (
	"time"

	"github.com/suchetkumbar/Syntara/internal/compare"
	"github.com/suchetkumbar/Syntara/internal/debugger"
	"github.com/suchetkumbar/Syntara/internal/diff"
	"github.com/suchetkumbar/Syntara/internal/optimizer"
	"github.com/suchetkumbar/Syntara/internal/scoring"
	"github.com/suchetkumbar/Syntara/internal/similarity"
	"github.com/suchetkumbar/Syntara/internal/tokens"
	"github.com/suchetkumbar/Syntara/internal/types"
)

// Tool and Version identify reports.
const Tool = "syntara"

// Version is set at build time through -ldflags.
var Version = "dev"

// Formatter renders a report.
type Formatter interface {
	Format(r *Report) error
}

// Report carries the result of one command. Only the sections the command
// filled are rendered.
type Report struct {
	Command  string              `json:"command"`
	Scores   []ScoreResult       `json:"scores,omitempty"`
	Debug    []DebugResult       `json:"debug,omitempty"`
	Diff     *DiffResult         `json:"diff,omitempty"`
	Search   *SearchResult       `json:"search,omitempty"`
	Optimize *OptimizeResult     `json:"optimize,omitempty"`
	Models   []optimizer.Profile `json:"models,omitempty"`
	Generate *GenerateResult     `json:"generate,omitempty"`
	Build    *BuildResult        `json:"build,omitempty"`
	Tokens   []TokensResult      `json:"tokens,omitempty"`
	Compare  *compare.Experiment `json:"compare,omitempty"`
	Summary  *LibrarySummary     `json:"summary,omitempty"`
	History  *HistoryResult      `json:"history,omitempty"`
	Explain  bool                `json:"-"`
}

// ScoreResult is the local score of one prompt, optionally next to a
// normalised external score.
type ScoreResult struct {
	File          string               `json:"file"`
	Title         string               `json:"title,omitempty"`
	Label         string               `json:"label"`
	Color         string               `json:"color"`
	Score         scoring.PromptScore  `json:"score"`
	External      *scoring.PromptScore `json:"external,omitempty"`
	ExternalError string               `json:"externalError,omitempty"`
}

// NewScoreResult labels a score.
func NewScoreResult(file, title string, score scoring.PromptScore) ScoreResult {
	return ScoreResult{
		File:  file,
		Title: title,
		Label: scoring.ScoreLabel(score.Total),
		Color: scoring.ScoreColor(score.Total),
		Score: score,
	}
}

// DebugResult lists the issues found in one prompt.
type DebugResult struct {
	File    string           `json:"file"`
	Issues  []debugger.Issue `json:"issues"`
	Counts  debugger.Counts  `json:"counts"`
	Ignored int              `json:"ignored,omitempty"`
}

// NewDebugResult tallies issues for file.
func NewDebugResult(file string, issues []debugger.Issue, ignored int) DebugResult {
	if issues == nil {
		issues = []debugger.Issue{}
	}
	return DebugResult{File: file, Issues: issues, Counts: debugger.Count(issues), Ignored: ignored}
}

// DiffResult is a line diff between two texts.
type DiffResult struct {
	From  string      `json:"from"`
	To    string      `json:"to"`
	Lines []diff.Line `json:"lines"`
	Stats diff.Stats  `json:"stats"`
}

// NewDiffResult computes the diff between oldText and newText.
func NewDiffResult(from, to, oldText, newText string) *DiffResult {
	lines := diff.Compute(oldText, newText)
	return &DiffResult{From: from, To: to, Lines: lines, Stats: diff.Summarize(lines)}
}

// SearchMatch is one similarity hit.
type SearchMatch struct {
	ID     string  `json:"id"`
	Title  string  `json:"title"`
	Source string  `json:"source,omitempty"`
	Score  float64 `json:"score"`
}

// SearchResult lists the hits for a query.
type SearchResult struct {
	Query   string        `json:"query"`
	Matches []SearchMatch `json:"matches"`
}

// NewSearchResult converts similarity results.
func NewSearchResult(query string, results []similarity.Result) *SearchResult {
	matches := make([]SearchMatch, 0, len(results))
	for _, r := range results {
		matches = append(matches, SearchMatch{
			ID:     r.Prompt.ID,
			Title:  r.Prompt.Title,
			Source: r.Prompt.Source,
			Score:  r.Score,
		})
	}
	return &SearchResult{Query: query, Matches: matches}
}

// OptimizeResult is an optimized prompt with the target model's tips.
type OptimizeResult struct {
	File string `json:"file"`
	optimizer.Result
	Known bool     `json:"known"`
	Tips  []string `json:"tips,omitempty"`
}

// GenerateResult is a prompt produced from an idea.
type GenerateResult struct {
	Idea     string              `json:"idea"`
	Strategy string              `json:"strategy"`
	Prompt   string              `json:"prompt"`
	Score    scoring.PromptScore `json:"score"`
}

// BuildResult is a prompt assembled from blocks.
type BuildResult struct {
	Source  string              `json:"source"`
	Enabled int                 `json:"enabledBlocks"`
	Total   int                 `json:"totalBlocks"`
	Prompt  string              `json:"prompt"`
	Score   scoring.PromptScore `json:"score"`
}

// TokensResult is the token estimate of one prompt.
type TokensResult struct {
	File    string `json:"file"`
	Display string `json:"display"`
	tokens.Report
}

// VersionRow is one entry of a prompt's history.
type VersionRow struct {
	ID        string    `json:"id"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
	Total     *int      `json:"total,omitempty"`
	Label     string    `json:"label,omitempty"`
	Words     int       `json:"words"`
}

// HistoryResult lists the versions of a library prompt, oldest first.
type HistoryResult struct {
	ID       string       `json:"id"`
	Title    string       `json:"title"`
	Versions []VersionRow `json:"versions"`
}

// NewVersionRow describes a stored version. A stored score is shown as
// recorded; it is not recomputed.
func NewVersionRow(v types.PromptVersion, words int) VersionRow {
	row := VersionRow{ID: v.ID, Note: v.Note, CreatedAt: v.CreatedAt, Words: words}
	if v.Score != nil {
		total := scoring.FromRecord(*v.Score).Total()
		row.Total = &total
		row.Label = scoring.ScoreLabel(total)
	}
	return row
}

type dimensionRow struct {
	name        string
	points, max int
}

// breakdownRows lists the dimensions in rubric order.
func breakdownRows(b scoring.ScoreBreakdown) []dimensionRow {
	return []dimensionRow{
		{scoring.DimensionRole, b.Role, scoring.MaxRole},
		{scoring.DimensionConstraints, b.Constraints, scoring.MaxConstraints},
		{scoring.DimensionOutputFormat, b.OutputFormat, scoring.MaxOutputFormat},
		{scoring.DimensionSpecificity, b.Specificity, scoring.MaxSpecificity},
		{scoring.DimensionStructure, b.Structure, scoring.MaxStructure},
		{scoring.DimensionClarity, b.Clarity, scoring.MaxClarity},
	}
}
