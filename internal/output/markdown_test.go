package output

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suchetkumbar/Syntara/internal/compare"
	"github.com/suchetkumbar/Syntara/internal/debugger"
	"github.com/suchetkumbar/Syntara/internal/scoring"
	"github.com/suchetkumbar/Syntara/internal/types"
)

func runMarkdown(t *testing.T, r *Report, verbose bool) string {
	t.Helper()
	var buf bytes.Buffer
	f := NewMarkdownFormatter(&buf, verbose)
	f.now = func() time.Time { return fixedNow }
	require.NoError(t, f.Format(r))
	return buf.String()
}

func TestMarkdownFormatter_Header(t *testing.T) {
	out := runMarkdown(t, &Report{Command: "score"}, false)
	assert.True(t, strings.HasPrefix(out, "# Syntara Score Report\n\n"))
	assert.Contains(t, out, "**Generated:** 2024-06-01 12:00:00")

	out = runMarkdown(t, &Report{}, false)
	assert.True(t, strings.HasPrefix(out, "# Syntara Report\n\n"))
}

func TestMarkdownFormatter_Scores(t *testing.T) {
	out := runMarkdown(t, &Report{
		Explain: true,
		Scores: []ScoreResult{
			NewScoreResult("weak.md", "", weakScore()),
			NewScoreResult("a|b.md", "", strongScore()),
		},
	}, false)

	assert.Contains(t, out, "| Prompt | Score | Label |")
	assert.Contains(t, out, "| weak.md | 3 | Needs Work |")
	assert.Contains(t, out, `| a\|b.md | 92 | Excellent |`)
	assert.Contains(t, out, "| role | 0 | 15 |")
	assert.Contains(t, out, "- "+scoring.SuggestTooShort)
}

func TestMarkdownFormatter_Debug(t *testing.T) {
	out := runMarkdown(t, &Report{Debug: []DebugResult{
		NewDebugResult("a.md", []debugger.Issue{{
			Severity:   types.SeverityInfo,
			Category:   debugger.CategoryAmbiguity,
			Message:    "4 questions detected, AI may lose focus",
			Suggestion: "Focus on one primary question",
		}}, 1),
		NewDebugResult("clean.md", nil, 0),
	}}, true)

	assert.Contains(t, out, "| a.md | 0 | 0 | 1 |")
	assert.Contains(t, out, "- **info** `[Ambiguity]` 4 questions detected, AI may lose focus _Focus on one primary question_")
	assert.Contains(t, out, "1 known issue ignored by baseline.")
	assert.Contains(t, out, "### clean.md\n\n✅ No issues")
}

func TestMarkdownFormatter_DiffAndCompare(t *testing.T) {
	out := runMarkdown(t, &Report{
		Diff:    NewDiffResult("v1", "v2", "a\nb", "a\nc"),
		Compare: ptr(compare.Run("same", "same")),
	}, false)

	assert.Contains(t, out, "`v1` → `v2`: +1 -1 =1")
	assert.Contains(t, out, "```diff\n a\n-b\n+c\n```")
	assert.Contains(t, out, "| **total** |")
	assert.Contains(t, out, "Result: **tie**")
}

func TestMarkdownFormatter_HistoryAndSummary(t *testing.T) {
	total := 72
	out := runMarkdown(t, &Report{
		History: &HistoryResult{ID: "p1", Title: "Review", Versions: []VersionRow{
			{ID: "v1", CreatedAt: fixedNow.Add(-3 * time.Hour), Total: &total, Label: "Great", Words: 40},
		}},
		Summary: Summarize([]ScoreResult{NewScoreResult("a.md", "", strongScore())}),
	}, false)

	assert.Contains(t, out, "## History: Review")
	assert.Contains(t, out, "| v1 | 3 hours ago | 72 (Great) | 40 |  |")
	assert.Contains(t, out, "| Prompts | 1 |")
	assert.Contains(t, out, "| Excellent | 1 |")
	assert.Contains(t, out, "- a.md: 92 (Excellent)")
}
