package diff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pairs = []struct {
	name     string
	old, new string
}{
	{"identical", "a\nb\nc", "a\nb\nc"},
	{"both empty", "", ""},
	{"from empty", "", "one\ntwo"},
	{"to empty", "one\ntwo", ""},
	{"append", "a\nb", "a\nb\nc"},
	{"prepend", "b\nc", "a\nb\nc"},
	{"replace middle", "a\nb\nc", "a\nx\nc"},
	{"blank lines", "a\n\nb\n", "a\nb\n\n"},
	{"reorder", "a\nb\nc\nd", "d\nc\nb\na"},
	{"prompt edit", "## Role\nYou are a writer.\n\n## Task\nWrite a post.", "## Role\nYou are an expert writer.\n\n## Task\nWrite a post.\n\n## Output Format\nMarkdown."},
	{"whitespace literal", "a \nb", "a\nb"},
}

func TestCompute_Reconstructs(t *testing.T) {
	for _, tt := range pairs {
		t.Run(tt.name, func(t *testing.T) {
			lines := Compute(tt.old, tt.new)
			assert.Equal(t, tt.old, Old(lines))
			assert.Equal(t, tt.new, New(lines))
		})
	}
}

func TestCompute_UnchangedIsLCS(t *testing.T) {
	for _, tt := range pairs {
		t.Run(tt.name, func(t *testing.T) {
			lines := Compute(tt.old, tt.new)
			var unchanged []string
			for _, l := range lines {
				if l.Type == Unchanged {
					unchanged = append(unchanged, l.Content)
				}
			}
			a, b := strings.Split(tt.old, "\n"), strings.Split(tt.new, "\n")
			assert.Equal(t, lcsLen(a, b), len(unchanged))
			assert.True(t, isSubsequence(unchanged, a))
			assert.True(t, isSubsequence(unchanged, b))
		})
	}
}

func TestCompute_Identical(t *testing.T) {
	text := "## Role\n\nYou are a reviewer.\n\n"
	lines := Compute(text, text)

	stats := Summarize(lines)
	assert.Equal(t, 0, stats.Added)
	assert.Equal(t, 0, stats.Removed)
	assert.False(t, stats.HasChanges())
	require.Len(t, lines, 5)
	for i, l := range lines {
		assert.Equal(t, Unchanged, l.Type)
		assert.Equal(t, strings.Split(text, "\n")[i], l.Content)
	}
}

func TestCompute_ReplacementOrder(t *testing.T) {
	got := Compute("a\nb\nc", "a\nx\nc")
	assert.Equal(t, []Line{
		{Type: Unchanged, Content: "a"},
		{Type: Removed, Content: "b"},
		{Type: Added, Content: "x"},
		{Type: Unchanged, Content: "c"},
	}, got)
}

func TestCompute_EmptyLinesPreserved(t *testing.T) {
	got := Compute("a", "a\n\n")
	assert.Equal(t, []Line{
		{Type: Unchanged, Content: "a"},
		{Type: Added, Content: ""},
		{Type: Added, Content: ""},
	}, got)
}

func TestSummarize(t *testing.T) {
	stats := Summarize(Compute("a\nb\nc", "a\nx\ny\nc"))
	assert.Equal(t, Stats{Added: 2, Removed: 1, Unchanged: 2}, stats)
	assert.True(t, stats.HasChanges())
}

func TestUnified(t *testing.T) {
	got := Unified(Compute("a\nb", "a\nc"))
	assert.Equal(t, " a\n-b\n+c\n", got)
}

func lcsLen(a, b []string) int {
	prev := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		cur := make([]int, len(b)+1)
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				cur[j] = prev[j-1] + 1
			} else {
				cur[j] = max(prev[j], cur[j-1])
			}
		}
		prev = cur
	}
	return prev[len(b)]
}

func isSubsequence(sub, seq []string) bool {
	i := 0
	for _, s := range seq {
		if i < len(sub) && sub[i] == s {
			i++
		}
	}
	return i == len(sub)
}
