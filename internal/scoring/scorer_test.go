package scoring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const richPrompt = `## Role
You are an expert in data analysis and act as a senior specialist.

## Task
Analyze the attached sales data and compare quarterly results. Evaluate trends, summarize key findings and propose next steps.

## Constraints
- You must cite the source rows.
- Do not invent numbers and avoid speculation.
- Always keep the answer within 400 words.

## Output Format
Return the result in markdown with a table and bullet points.

For example:
Input: Q1 revenue 10k, Q2 revenue 12k
Output: Revenue grew 20% quarter over quarter.`

func TestScore_ShortCircuits(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		total      int
		suggestion string
	}{
		{"empty", "", 0, SuggestEmpty},
		{"whitespace", "  \n\t ", 0, SuggestEmpty},
		{"one word", "hello", 1, SuggestTooShort},
		{"two words", "hello world", 2, SuggestTooShort},
		{"four words", "you are an expert", 4, SuggestTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.input)
			assert.Equal(t, tt.total, got.Total)
			assert.Equal(t, tt.total, got.Breakdown.Specificity)
			assert.Equal(t, ScoreBreakdown{Specificity: tt.total}, got.Breakdown)
			assert.Equal(t, []string{tt.suggestion}, got.Suggestions)
		})
	}
}

func TestScore_RichPrompt(t *testing.T) {
	got := Score(richPrompt)

	assert.GreaterOrEqual(t, got.Total, 75)
	assert.Equal(t, MaxRole, got.Breakdown.Role)
	assert.Equal(t, MaxConstraints, got.Breakdown.Constraints)
	assert.Equal(t, MaxOutputFormat, got.Breakdown.OutputFormat)
	assert.Equal(t, MaxStructure, got.Breakdown.Structure)
	assert.Equal(t, MaxClarity, got.Breakdown.Clarity)
	assert.GreaterOrEqual(t, got.Breakdown.Specificity, 9)
	assert.Empty(t, got.Suggestions)
	assert.NotNil(t, got.Suggestions)
	assert.Len(t, got.Details, 6)
}

func TestScore_RoleScenario(t *testing.T) {
	got := Score("You are an expert web developer. Analyze the structure of this project. Always use TypeScript. Return the result in JSON format.")
	assert.GreaterOrEqual(t, got.Breakdown.Role, 12)
}

func TestScore_WeakPromptSuggestions(t *testing.T) {
	got := Score("Write a blog post about technology")

	assert.Greater(t, len(got.Suggestions), 2)
	assert.Equal(t, SuggestAddRole, got.Suggestions[0])
	assert.Equal(t, []string{
		SuggestAddRole,
		SuggestAddConstraints,
		SuggestOutputFormat,
		SuggestMoreDetail,
		SuggestStructure,
		SuggestExamples,
		SuggestActionVerbs,
	}, got.Suggestions)
	assert.Equal(t, 1, got.Total)
}

func TestScore_RoleTiers(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		role       int
		suggestion string
	}{
		{"two primary", "You are a persona that writes release notes for us", 15, ""},
		{"one primary", "You are going to write release notes for the team", 12, ""},
		{"adjacent only", "I want you to write a short poem about the sea", 6, SuggestStrengthenRole},
		{"none", "Write a short poem about the sea today", 0, SuggestAddRole},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.input)
			assert.Equal(t, tt.role, got.Breakdown.Role)
			if tt.suggestion != "" {
				require.NotEmpty(t, got.Suggestions)
				assert.Equal(t, tt.suggestion, got.Suggestions[0])
			} else {
				assert.NotContains(t, got.Suggestions, SuggestAddRole)
				assert.NotContains(t, got.Suggestions, SuggestStrengthenRole)
			}
		})
	}
}

func TestScore_ConstraintSuggestions(t *testing.T) {
	got := Score("Write the summary and you must keep it brief please")
	assert.Equal(t, 4, got.Breakdown.Constraints)
	assert.Contains(t, got.Suggestions, SuggestMoreConstraints)
	assert.NotContains(t, got.Suggestions, SuggestAddConstraints)
}

func TestScore_SpecificityTiers(t *testing.T) {
	tests := []struct {
		words int
		want  int
	}{
		{5, 1},
		{15, 1},
		{16, 3},
		{31, 6},
		{51, 9},
		{71, 11},
		{101, 13},
		{151, 15},
	}

	for _, tt := range tests {
		got := Score(strings.TrimSpace(strings.Repeat("word ", tt.words)))
		assert.Equal(t, tt.want, got.Breakdown.Specificity, "words=%d", tt.words)
	}
}

func TestScore_Invariants(t *testing.T) {
	inputs := []string{
		"",
		"x",
		richPrompt,
		strings.Repeat("You must always analyze ## - 1. for example ", 40),
		"Act as a reviewer. Review, compare, evaluate, rank and propose. Output a table in json.",
	}

	for _, in := range inputs {
		a := Score(in)
		b := Score(in)
		assert.Equal(t, a, b, "score must be deterministic")
		assert.Equal(t, a.Breakdown.Total(), a.Total)
		assert.GreaterOrEqual(t, a.Total, 0)
		assert.LessOrEqual(t, a.Total, MaxTotal)
		assert.Equal(t, a.Breakdown, Clamp(a.Breakdown))
	}
}

func TestScorer_CustomKeywords(t *testing.T) {
	kw := DefaultKeywords()
	kw.SpecificVerbs = []string{"frobnicate"}
	s := NewScorerWithKeywords(kw)

	got := s.Score("Please frobnicate the widget list for the team")
	assert.Equal(t, 2, got.Breakdown.Clarity)
	assert.Equal(t, 0, Score("Please frobnicate the widget list for the team").Breakdown.Clarity)
}

func TestClamp(t *testing.T) {
	got := Clamp(ScoreBreakdown{Role: 99, Specificity: -3, Clarity: 11, Structure: 20, Constraints: 21, OutputFormat: 5})
	assert.Equal(t, ScoreBreakdown{Role: 15, Specificity: 0, Clarity: 10, Structure: 20, Constraints: 20, OutputFormat: 5}, got)
	assert.Equal(t, 70, got.Total())
}

func TestRecordRoundTrip(t *testing.T) {
	b := ScoreBreakdown{Role: 12, Specificity: 6, Clarity: 4, Structure: 9, Constraints: 8, OutputFormat: 10}
	assert.Equal(t, b, FromRecord(*b.Record()))
}
