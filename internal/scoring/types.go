package scoring

import "github.com/suchetkumbar/Syntara/internal/types"

// Dimension maxima.
const (
	MaxRole         = 15
	MaxSpecificity  = 15
	MaxClarity      = 10
	MaxStructure    = 20
	MaxConstraints  = 20
	MaxOutputFormat = 20
	MaxTotal        = MaxRole + MaxSpecificity + MaxClarity + MaxStructure + MaxConstraints + MaxOutputFormat
)

// Dimension names as they appear in reports.
const (
	DimensionRole         = "role"
	DimensionSpecificity  = "specificity"
	DimensionClarity      = "clarity"
	DimensionStructure    = "structure"
	DimensionConstraints  = "constraints"
	DimensionOutputFormat = "outputFormat"
)

// ScoreBreakdown holds the six sub-scores. The total is always derived.
type ScoreBreakdown struct {
	Role         int `json:"role"`
	Specificity  int `json:"specificity"`
	Clarity      int `json:"clarity"`
	Structure    int `json:"structure"`
	Constraints  int `json:"constraints"`
	OutputFormat int `json:"outputFormat"`
}

// Total returns the exact sum of the six sub-scores.
func (b ScoreBreakdown) Total() int {
	return b.Role + b.Specificity + b.Clarity + b.Structure + b.Constraints + b.OutputFormat
}

// Record converts the breakdown to the storable form used on prompt versions.
func (b ScoreBreakdown) Record() *types.Breakdown {
	return &types.Breakdown{
		Role:         b.Role,
		Specificity:  b.Specificity,
		Clarity:      b.Clarity,
		Structure:    b.Structure,
		Constraints:  b.Constraints,
		OutputFormat: b.OutputFormat,
	}
}

// FromRecord converts a stored breakdown back, clamping each field.
func FromRecord(r types.Breakdown) ScoreBreakdown {
	return Clamp(ScoreBreakdown{
		Role:         r.Role,
		Specificity:  r.Specificity,
		Clarity:      r.Clarity,
		Structure:    r.Structure,
		Constraints:  r.Constraints,
		OutputFormat: r.OutputFormat,
	})
}

// Clamp limits every field to [0, max].
func Clamp(b ScoreBreakdown) ScoreBreakdown {
	return ScoreBreakdown{
		Role:         clamp(b.Role, MaxRole),
		Specificity:  clamp(b.Specificity, MaxSpecificity),
		Clarity:      clamp(b.Clarity, MaxClarity),
		Structure:    clamp(b.Structure, MaxStructure),
		Constraints:  clamp(b.Constraints, MaxConstraints),
		OutputFormat: clamp(b.OutputFormat, MaxOutputFormat),
	}
}

// PromptScore is the result of scoring one prompt.
type PromptScore struct {
	Total       int             `json:"total"`       // 0-100, always Breakdown.Total()
	Breakdown   ScoreBreakdown  `json:"breakdown"`   // six weighted dimensions
	Suggestions []string        `json:"suggestions"` // evaluation order, not severity
	Details     []ScoringMetric `json:"details,omitempty"`
}

// ScoringMetric explains how one dimension was scored.
type ScoringMetric struct {
	Dimension string   `json:"dimension"`
	Name      string   `json:"name"`
	Points    int      `json:"points"`
	MaxPoints int      `json:"max_points"`
	Passed    bool     `json:"passed"`
	Note      string   `json:"note,omitempty"`
	Matches   []string `json:"matches,omitempty"`
}

// NewPromptScore builds a PromptScore whose total is derived from the breakdown.
func NewPromptScore(breakdown ScoreBreakdown, suggestions []string, details []ScoringMetric) PromptScore {
	if suggestions == nil {
		suggestions = []string{}
	}
	return PromptScore{
		Total:       breakdown.Total(),
		Breakdown:   breakdown,
		Suggestions: suggestions,
		Details:     details,
	}
}

func clamp(v, limit int) int {
	switch {
	case v < 0:
		return 0
	case v > limit:
		return limit
	default:
		return v
	}
}
