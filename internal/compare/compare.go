// Package compare runs A/B experiments between two prompts using the local
// scorer.
package compare

import "github.com/suchetkumbar/Syntara/internal/scoring"

// Winner outcomes.
const (
	WinnerA   = "A"
	WinnerB   = "B"
	WinnerTie = "tie"
)

// Delta is the per-dimension difference B minus A.
type Delta struct {
	Dimension string `json:"dimension"`
	A         int    `json:"a"`
	B         int    `json:"b"`
	Diff      int    `json:"diff"`
}

// Experiment is the result of comparing two prompts.
type Experiment struct {
	PromptA string              `json:"promptA"`
	PromptB string              `json:"promptB"`
	ScoreA  scoring.PromptScore `json:"scoreA"`
	ScoreB  scoring.PromptScore `json:"scoreB"`
	Winner  string              `json:"winner"`
	Margin  int                 `json:"margin"`
	Deltas  []Delta             `json:"deltas"`
}

// Run scores both prompts and picks the higher total.
func Run(a, b string) Experiment {
	return RunWith(scoring.NewScorer(), a, b)
}

// RunWith compares using the given scorer.
func RunWith(s *scoring.Scorer, a, b string) Experiment {
	sa, sb := s.Score(a), s.Score(b)

	winner := WinnerTie
	switch {
	case sa.Total > sb.Total:
		winner = WinnerA
	case sb.Total > sa.Total:
		winner = WinnerB
	}

	margin := sa.Total - sb.Total
	if margin < 0 {
		margin = -margin
	}

	return Experiment{
		PromptA: a,
		PromptB: b,
		ScoreA:  sa,
		ScoreB:  sb,
		Winner:  winner,
		Margin:  margin,
		Deltas:  deltas(sa.Breakdown, sb.Breakdown),
	}
}

func deltas(a, b scoring.ScoreBreakdown) []Delta {
	pairs := []struct {
		name string
		a, b int
	}{
		{scoring.DimensionRole, a.Role, b.Role},
		{scoring.DimensionSpecificity, a.Specificity, b.Specificity},
		{scoring.DimensionClarity, a.Clarity, b.Clarity},
		{scoring.DimensionStructure, a.Structure, b.Structure},
		{scoring.DimensionConstraints, a.Constraints, b.Constraints},
		{scoring.DimensionOutputFormat, a.OutputFormat, b.OutputFormat},
	}
	out := make([]Delta, len(pairs))
	for i, p := range pairs {
		out[i] = Delta{Dimension: p.name, A: p.a, B: p.b, Diff: p.b - p.a}
	}
	return out
}
