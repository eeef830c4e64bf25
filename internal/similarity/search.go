package similarity

import (
	"sort"

	"github.com/suchetkumbar/Syntara/internal/textutil"
	"github.com/suchetkumbar/Syntara/internal/types"
)

// Defaults used when Options fields are zero.
const (
	DefaultLimit     = 5
	DefaultThreshold = 0.05
)

// Options tunes a search.
type Options struct {
	Limit     int     // maximum results; 0 means DefaultLimit
	Threshold float64 // minimum score kept
}

// DefaultOptions returns the default limit and threshold.
func DefaultOptions() Options {
	return Options{Limit: DefaultLimit, Threshold: DefaultThreshold}
}

// Result pairs a candidate with its similarity to the query.
type Result struct {
	Prompt types.Prompt `json:"prompt"`
	Score  float64      `json:"score"`
}

// Search ranks corpus against query. The query is tokenized on its own while
// each candidate is tokenized on its title and content together. Results
// below the threshold, and results sharing no tokens with the query, are
// dropped. Ties keep corpus order.
func Search(query string, corpus []types.Prompt, opts Options) []Result {
	if opts.Limit <= 0 {
		opts.Limit = DefaultLimit
	}
	if textutil.IsBlank(query) || len(corpus) == 0 {
		return []Result{}
	}

	qv := TermFrequency(textutil.Tokenize(query))
	if len(qv) == 0 {
		return []Result{}
	}

	results := make([]Result, 0, len(corpus))
	for _, p := range corpus {
		score := Cosine(qv, TermFrequency(textutil.Tokenize(p.SearchText())))
		if score == 0 || score < opts.Threshold {
			continue
		}
		results = append(results, Result{Prompt: p, Score: score})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > opts.Limit {
		results = results[:opts.Limit]
	}
	return results
}
