package scoring

import (
	"fmt"

	"github.com/suchetkumbar/Syntara/internal/textutil"
)

// minRubricWords is the word count below which the rubric is skipped.
const minRubricWords = 5

// Suggestion texts, in the order the rubric can emit them.
const (
	SuggestEmpty           = "Start by writing a prompt, even a rough idea helps!"
	SuggestTooShort        = "Your prompt is very short. Expand it with context, constraints, and output format."
	SuggestStrengthenRole  = "Strengthen the role: use 'You are an expert...' for best results"
	SuggestAddRole         = "Add a role definition (e.g., 'You are an expert...')"
	SuggestAddConstraints  = "Add constraints to guide the AI's behavior"
	SuggestMoreConstraints = "Consider adding more constraints for precision"
	SuggestOutputFormat    = "Specify the desired output format"
	SuggestMoreDetail      = "Add more detail (aim for at least 50 words)"
	SuggestStructure       = "Use structured sections (headers, bullet points)"
	SuggestExamples        = "Include examples to improve clarity (few-shot style)"
	SuggestActionVerbs     = "Use specific action verbs (analyze, compare, evaluate...)"
)

var specificityTiers = []Tier{
	{Above: 150, Points: 15},
	{Above: 100, Points: 13},
	{Above: 70, Points: 11},
	{Above: 50, Points: 9},
	{Above: 30, Points: 6},
	{Above: 15, Points: 3},
}

// Scorer evaluates prompts against a fixed set of keyword tables.
type Scorer struct {
	keywords Keywords
}

// NewScorer creates a Scorer using the built-in keyword tables.
func NewScorer() *Scorer {
	return NewScorerWithKeywords(DefaultKeywords())
}

// NewScorerWithKeywords creates a Scorer with custom keyword tables.
func NewScorerWithKeywords(kw Keywords) *Scorer {
	return &Scorer{keywords: kw}
}

var defaultScorer = NewScorer()

// Score evaluates content with the built-in keyword tables.
func Score(content string) PromptScore {
	return defaultScorer.Score(content)
}

// Score evaluates a prompt and returns its quality score with suggestions.
func (s *Scorer) Score(content string) PromptScore {
	if textutil.IsBlank(content) {
		return NewPromptScore(ScoreBreakdown{}, []string{SuggestEmpty}, nil)
	}

	wordCount := textutil.WordCount(content)
	if wordCount < minRubricWords {
		points := min(minRubricWords, wordCount)
		return NewPromptScore(
			ScoreBreakdown{Specificity: points},
			[]string{SuggestTooShort},
			[]ScoringMetric{metric(DimensionSpecificity, "Word count", points, MaxSpecificity, nil,
				fmt.Sprintf("%d words, below the %d-word minimum", wordCount, minRubricWords))},
		)
	}

	var (
		b           ScoreBreakdown
		suggestions []string
		details     []ScoringMetric
	)

	// Role (15 points max)
	roleMatches := textutil.MatchedKeywords(content, s.keywords.Role)
	adjacent := textutil.MatchedKeywords(content, s.keywords.RoleAdjacent)
	var roleNote string
	switch {
	case len(roleMatches) >= 2:
		b.Role = MaxRole
		roleNote = "Strong role definition"
	case len(roleMatches) == 1:
		b.Role = 12
		roleNote = "Role defined"
	case len(adjacent) > 0:
		b.Role = 6
		roleNote = "Role-adjacent language only"
		roleMatches = adjacent
		suggestions = append(suggestions, SuggestStrengthenRole)
	default:
		roleNote = "No role"
		suggestions = append(suggestions, SuggestAddRole)
	}
	details = append(details, metric(DimensionRole, "Role definition", b.Role, MaxRole, roleMatches, roleNote))

	// Constraints (20 points max)
	constraints := textutil.MatchedKeywords(content, s.keywords.Constraints)
	b.Constraints = ScoreLinear(len(constraints), 4, MaxConstraints)
	switch {
	case len(constraints) == 0:
		suggestions = append(suggestions, SuggestAddConstraints)
	case len(constraints) < 3:
		suggestions = append(suggestions, SuggestMoreConstraints)
	}
	details = append(details, metric(DimensionConstraints, "Constraints", b.Constraints, MaxConstraints, constraints,
		fmt.Sprintf("%d constraint keywords", len(constraints))))

	// Output format (20 points max)
	outputs := textutil.MatchedKeywords(content, s.keywords.Output)
	switch {
	case len(outputs) >= 3:
		b.OutputFormat = MaxOutputFormat
	case len(outputs) == 2:
		b.OutputFormat = 16
	case len(outputs) == 1:
		b.OutputFormat = 10
	default:
		suggestions = append(suggestions, SuggestOutputFormat)
	}
	details = append(details, metric(DimensionOutputFormat, "Output format", b.OutputFormat, MaxOutputFormat, outputs,
		fmt.Sprintf("%d output keywords", len(outputs))))

	// Specificity (15 points max)
	b.Specificity = ScoreTiered(wordCount, specificityTiers, 1)
	if wordCount < 30 {
		suggestions = append(suggestions, SuggestMoreDetail)
	}
	details = append(details, metric(DimensionSpecificity, "Word count", b.Specificity, MaxSpecificity, nil,
		fmt.Sprintf("%d words", wordCount)))

	// Structure (20 points max)
	sections := textutil.MatchedKeywords(content, s.keywords.SectionMarkers)
	examples := textutil.MatchedKeywords(content, s.keywords.ExampleMarkers)
	b.Structure = min(MaxStructure, len(sections)*3+len(examples)*4)
	if len(sections) < 2 {
		suggestions = append(suggestions, SuggestStructure)
	}
	if len(examples) == 0 {
		suggestions = append(suggestions, SuggestExamples)
	}
	details = append(details, metric(DimensionStructure, "Sections and examples", b.Structure, MaxStructure,
		append(append([]string{}, sections...), examples...),
		fmt.Sprintf("%d section markers, %d example markers", len(sections), len(examples))))

	// Clarity (10 points max)
	verbs := textutil.MatchedKeywords(content, s.keywords.SpecificVerbs)
	b.Clarity = ScoreLinear(len(verbs), 2, MaxClarity)
	if len(verbs) == 0 {
		suggestions = append(suggestions, SuggestActionVerbs)
	}
	details = append(details, metric(DimensionClarity, "Action verbs", b.Clarity, MaxClarity, verbs,
		fmt.Sprintf("%d specific verbs", len(verbs))))

	return NewPromptScore(b, suggestions, details)
}
