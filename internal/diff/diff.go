// Package diff computes line-level differences between two prompt versions
// using a longest-common-subsequence table.
package diff

import (
	"strings"

	"github.com/suchetkumbar/Syntara/internal/textutil"
)

// LineType tags a diff line.
type LineType string

// Line types.
const (
	Added     LineType = "added"
	Removed   LineType = "removed"
	Unchanged LineType = "unchanged"
)

// Line is one entry of a diff. Content is the literal line, never trimmed.
type Line struct {
	Type    LineType `json:"type"`
	Content string   `json:"content"`
}

// Compute returns the edit script turning oldText into newText, in forward
// order. The unchanged lines form a longest common subsequence of the two
// inputs' lines. When both directions keep the LCS length, the new side is
// consumed first, so additions are emitted after removals at the same spot.
func Compute(oldText, newText string) []Line {
	a := textutil.SplitLines(oldText)
	b := textutil.SplitLines(newText)
	m, n := len(a), len(b)

	dp := make([][]int, m+1)
	for i := range dp {
		dp[i] = make([]int, n+1)
	}
	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			if a[i-1] == b[j-1] {
				dp[i][j] = dp[i-1][j-1] + 1
			} else {
				dp[i][j] = max(dp[i-1][j], dp[i][j-1])
			}
		}
	}

	lines := make([]Line, 0, m+n)
	i, j := m, n
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && a[i-1] == b[j-1]:
			lines = append(lines, Line{Type: Unchanged, Content: a[i-1]})
			i--
			j--
		case j > 0 && (i == 0 || dp[i][j-1] >= dp[i-1][j]):
			lines = append(lines, Line{Type: Added, Content: b[j-1]})
			j--
		default:
			lines = append(lines, Line{Type: Removed, Content: a[i-1]})
			i--
		}
	}

	for l, r := 0, len(lines)-1; l < r; l, r = l+1, r-1 {
		lines[l], lines[r] = lines[r], lines[l]
	}
	return lines
}

// Stats counts lines per type.
type Stats struct {
	Added     int `json:"added"`
	Removed   int `json:"removed"`
	Unchanged int `json:"unchanged"`
}

// HasChanges reports whether any line was added or removed.
func (s Stats) HasChanges() bool {
	return s.Added > 0 || s.Removed > 0
}

// Summarize counts the lines of a diff.
func Summarize(lines []Line) Stats {
	var s Stats
	for _, l := range lines {
		switch l.Type {
		case Added:
			s.Added++
		case Removed:
			s.Removed++
		case Unchanged:
			s.Unchanged++
		}
	}
	return s
}

// Old rebuilds the old text from the removed and unchanged lines.
func Old(lines []Line) string {
	return rebuild(lines, Removed)
}

// New rebuilds the new text from the added and unchanged lines.
func New(lines []Line) string {
	return rebuild(lines, Added)
}

func rebuild(lines []Line, side LineType) string {
	var out []string
	for _, l := range lines {
		if l.Type == side || l.Type == Unchanged {
			out = append(out, l.Content)
		}
	}
	return strings.Join(out, "\n")
}

// Unified renders lines with "+", "-" and " " prefixes, one per line.
func Unified(lines []Line) string {
	var sb strings.Builder
	for _, l := range lines {
		sb.WriteString(l.Type.Prefix())
		sb.WriteString(l.Content)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Prefix returns the unified-diff marker for the line type.
func (t LineType) Prefix() string {
	switch t {
	case Added:
		return "+"
	case Removed:
		return "-"
	default:
		return " "
	}
}
