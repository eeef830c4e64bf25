package optimizer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfiles(t *testing.T) {
	ps := Profiles()
	require.Len(t, ps, 5)
	assert.Equal(t, []string{"gpt-4o", "gpt-35", "claude-35", "gemini-pro", "llama-3"}, IDs())
	for _, p := range ps {
		assert.NotEmpty(t, p.ID)
		assert.NotEmpty(t, p.Name)
		assert.NotEmpty(t, p.Provider)
		assert.Positive(t, p.ContextLimit)
		assert.Len(t, p.Tips, 3)
		assert.NotNil(t, p.transform)
	}

	ps[0].Tips[0] = "mutated"
	again, _ := Lookup("gpt-4o")
	assert.NotEqual(t, "mutated", again.Tips[0])
}

func TestLookup(t *testing.T) {
	p, ok := Lookup("gpt-4o")
	require.True(t, ok)
	assert.Equal(t, "GPT-4o", p.Name)
	assert.Equal(t, "OpenAI", p.Provider)

	_, ok = Lookup("nonexistent-model")
	assert.False(t, ok)
}

func TestOptimize(t *testing.T) {
	tests := []struct {
		name        string
		prompt      string
		model       string
		contains    []string
		notContains []string
	}{
		{"gpt-4o adds role", "Write a summary", "gpt-4o", []string{"## Role\nYou are an expert AI assistant."}, nil},
		{"gpt-4o json hint", "Return a json object with the data", "gpt-4o", []string{"Respond in valid JSON"}, nil},
		{"gpt-35 wraps", "Summarize the text", "gpt-35", []string{"You are a helpful AI assistant"}, nil},
		{"gpt-35 keeps persona", "You are an expert. Summarize the text.", "gpt-35", nil, []string{"You are a helpful AI assistant"}},
		{"gpt-35 long", "You are an expert. " + strings.Repeat("word ", 510), "gpt-35", []string{"focused and concise"}, nil},
		{"claude tags", "## Task\nDo something\n\n## Output Format\nReturn text", "claude-35", []string{"<task>\n<!-- Task -->", "<output_format>\n<!-- Output Format -->"}, []string{"## Task"}},
		{"claude thinking", "Write a summary", "claude-35", []string{"think through this carefully"}, nil},
		{"claude step by step", "Think step by step about this", "claude-35", nil, []string{"think through this carefully"}},
		{"gemini steps", "Write a summary", "gemini-pro", []string{"numbered steps"}, nil},
		{"gemini has steps", "Follow these steps to summarize", "gemini-pro", nil, []string{"numbered steps"}},
		{"llama wraps and formats", "Summarize the text", "llama-3", []string{"You are a helpful AI assistant", "sections and bullet points"}, nil},
		{"llama has format", "You are an expert. Format the output as a list.", "llama-3", nil, []string{"sections and bullet points", "helpful AI assistant"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Optimize(tt.prompt, tt.model)
			for _, s := range tt.contains {
				assert.Contains(t, got.Optimized, s)
			}
			for _, s := range tt.notContains {
				assert.NotContains(t, got.Optimized, s)
			}
		})
	}
}

func TestOptimize_NoDuplicates(t *testing.T) {
	got := Optimize("## Role\nYou are an expert.\n\nWrite a summary.", "gpt-4o")
	assert.Equal(t, 1, strings.Count(got.Optimized, "## Role"))

	got = Optimize("Return a json object. Respond in JSON.", "gpt-4o")
	assert.Equal(t, 1, strings.Count(strings.ToLower(got.Optimized), "respond in"))
}

func TestOptimize_Changes(t *testing.T) {
	unknown := Optimize("Write a poem", "unknown-model-xyz")
	assert.Equal(t, "Write a poem", unknown.Optimized)
	assert.Equal(t, "unknown-model-xyz", unknown.Model)
	assert.Equal(t, []string{ChangeUnknownModel}, unknown.Changes)

	same := Optimize("You are an expert. Follow these steps to complete the task. Format the output clearly.", "llama-3")
	assert.Equal(t, []string{ChangeAlreadyOptimal}, same.Changes)

	assert.Equal(t, "Claude 3.5 Sonnet", Optimize("hello", "claude-35").Model)

	claude := Optimize("## Task\nDo it", "claude-35")
	assert.Contains(t, claude.Changes, ChangeXMLTags)
	assert.Contains(t, claude.Changes, ChangeReasoning)
	assert.Regexp(t, `^Added \d+ characters of model-specific guidance$`, claude.Changes[0])

	gpt := Optimize("Return the data", "gpt-4o")
	assert.Contains(t, gpt.Changes, ChangeJSONHint)
}
