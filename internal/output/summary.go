package output

import (
	"cmp"
	"slices"

	"github.com/suchetkumbar/Syntara/internal/scoring"
)

const (
	lowestShown      = 5
	suggestionsShown = 5
)

// LabelCount is the number of prompts carrying a quality label.
type LabelCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// SuggestionCount is how many prompts received a suggestion.
type SuggestionCount struct {
	Suggestion string `json:"suggestion"`
	Count      int    `json:"count"`
}

// LibrarySummary aggregates the scores of many prompts.
type LibrarySummary struct {
	Total          int               `json:"total"`
	Average        float64           `json:"average"`
	Labels         []LabelCount      `json:"labels"`
	Lowest         []ScoreResult     `json:"lowest"`
	TopSuggestions []SuggestionCount `json:"topSuggestions"`
}

// Summarize builds a library summary. Labels are listed best first,
// including empty ones. Ties in the lowest list keep input order.
func Summarize(results []ScoreResult) *LibrarySummary {
	s := &LibrarySummary{
		Total:          len(results),
		Lowest:         []ScoreResult{},
		TopSuggestions: []SuggestionCount{},
	}

	counts := make(map[string]int)
	suggestions := make(map[string]int)
	var order []string
	sum := 0
	for _, r := range results {
		sum += r.Score.Total
		counts[scoring.ScoreLabel(r.Score.Total)]++
		for _, sug := range r.Score.Suggestions {
			if suggestions[sug] == 0 {
				order = append(order, sug)
			}
			suggestions[sug]++
		}
	}
	if len(results) > 0 {
		s.Average = float64(sum) / float64(len(results))
	}

	for _, label := range scoring.Labels() {
		s.Labels = append(s.Labels, LabelCount{Label: label, Count: counts[label]})
	}

	lowest := slices.Clone(results)
	slices.SortStableFunc(lowest, func(a, b ScoreResult) int {
		return cmp.Compare(a.Score.Total, b.Score.Total)
	})
	if len(lowest) > lowestShown {
		lowest = lowest[:lowestShown]
	}
	s.Lowest = append(s.Lowest, lowest...)

	for _, sug := range order {
		s.TopSuggestions = append(s.TopSuggestions, SuggestionCount{Suggestion: sug, Count: suggestions[sug]})
	}
	slices.SortStableFunc(s.TopSuggestions, func(a, b SuggestionCount) int {
		return cmp.Compare(b.Count, a.Count)
	})
	if len(s.TopSuggestions) > suggestionsShown {
		s.TopSuggestions = s.TopSuggestions[:suggestionsShown]
	}

	return s
}
