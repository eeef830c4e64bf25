package scoring

// Tier maps a lower bound (exclusive) to the points awarded above it.
type Tier struct {
	Above  int
	Points int
}

// ScoreTiered returns the points of the first tier whose bound value exceeds,
// or fallback when none does. Tiers must be ordered from highest bound down.
func ScoreTiered(value int, tiers []Tier, fallback int) int {
	for _, t := range tiers {
		if value > t.Above {
			return t.Points
		}
	}
	return fallback
}

// ScoreLinear awards perMatch points per match, capped at max.
func ScoreLinear(matches, perMatch, maxPoints int) int {
	return min(maxPoints, matches*perMatch)
}

// metric builds a ScoringMetric for one dimension.
func metric(dimension, name string, points, maxPoints int, matches []string, note string) ScoringMetric {
	return ScoringMetric{
		Dimension: dimension,
		Name:      name,
		Points:    points,
		MaxPoints: maxPoints,
		Passed:    points == maxPoints,
		Note:      note,
		Matches:   matches,
	}
}
