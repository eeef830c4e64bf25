// Package debugger lints prompt text with fixed rules and reports
// categorised issues ordered by severity.
package debugger

import (
	"fmt"
	"slices"
	"strings"

	"github.com/suchetkumbar/Syntara/internal/textutil"
	"github.com/suchetkumbar/Syntara/internal/types"
)

// Issue categories.
const (
	CategoryEmpty          = "Empty"
	CategoryVague          = "Vague Language"
	CategoryConflict       = "Conflict"
	CategoryComplexity     = "Complexity"
	CategoryMissingSection = "Missing Section"
	CategoryStructure      = "Structure"
	CategoryAmbiguity      = "Ambiguity"
)

const (
	maxQuotedMatches   = 3
	maxQuestions       = 3
	longPromptWords    = 100
	conflictSuggestion = "Choose one direction and be consistent"
)

// Issue is one problem found in a prompt.
type Issue struct {
	Severity   types.Severity `json:"severity"`
	Category   string         `json:"category"`
	Message    string         `json:"message"`
	Suggestion string         `json:"suggestion"`
}

// Debug scans text and returns its issues sorted by severity. Issues of the
// same severity keep detection order: vague language, conflicts, complexity,
// missing sections, structure, ambiguity.
func Debug(text string) []Issue {
	if textutil.IsBlank(text) {
		return []Issue{{
			Severity:   types.SeverityError,
			Category:   CategoryEmpty,
			Message:    "Prompt is empty",
			Suggestion: "Start with a role, task, and output format",
		}}
	}

	var issues []Issue

	for _, r := range vagueRules {
		matches := uniqueLower(r.pattern.FindAll(text))
		if len(matches) == 0 {
			continue
		}
		if len(matches) > maxQuotedMatches {
			matches = matches[:maxQuotedMatches]
		}
		issues = append(issues, Issue{
			Severity:   types.SeverityWarning,
			Category:   CategoryVague,
			Message:    fmt.Sprintf(`%s: "%s"`, r.message, strings.Join(matches, `", "`)),
			Suggestion: r.suggestion,
		})
	}

	for _, r := range conflictRules {
		if r.a.MatchString(text) && r.b.MatchString(text) {
			issues = append(issues, Issue{
				Severity:   types.SeverityError,
				Category:   CategoryConflict,
				Message:    r.message,
				Suggestion: conflictSuggestion,
			})
		}
	}

	for _, r := range complexityRules {
		if r.pattern.MatchString(text) {
			issues = append(issues, Issue{
				Severity:   types.SeverityWarning,
				Category:   CategoryComplexity,
				Message:    r.message,
				Suggestion: r.suggestion,
			})
		}
	}

	lower := strings.ToLower(text)
	for _, r := range sectionRules {
		if textutil.ContainsAny(lower, r.keywords) {
			continue
		}
		issues = append(issues, Issue{
			Severity:   types.SeverityInfo,
			Category:   CategoryMissingSection,
			Message:    fmt.Sprintf("No %s section detected", r.label),
			Suggestion: fmt.Sprintf("Consider adding a %s section to improve clarity", r.label),
		})
	}

	if textutil.WordCount(text) > longPromptWords && !structureMarkers.MatchString(text) {
		issues = append(issues, Issue{
			Severity:   types.SeverityWarning,
			Category:   CategoryStructure,
			Message:    "Long prompt without clear structure",
			Suggestion: "Use headers (##), bullet points (-), or numbered lists for readability",
		})
	}

	if q := strings.Count(text, "?"); q > maxQuestions {
		issues = append(issues, Issue{
			Severity:   types.SeverityWarning,
			Category:   CategoryAmbiguity,
			Message:    fmt.Sprintf("%d questions detected, AI may lose focus", q),
			Suggestion: "Limit to 1-2 key questions or break into separate prompts",
		})
	}

	slices.SortStableFunc(issues, func(a, b Issue) int {
		return a.Severity.Rank() - b.Severity.Rank()
	})
	return issues
}

// Counts tallies issues per severity.
type Counts struct {
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
	Infos    int `json:"infos"`
}

// Count tallies issues per severity.
func Count(issues []Issue) Counts {
	var c Counts
	for _, i := range issues {
		switch i.Severity {
		case types.SeverityError:
			c.Errors++
		case types.SeverityWarning:
			c.Warnings++
		case types.SeverityInfo:
			c.Infos++
		}
	}
	return c
}

// AtOrAbove reports whether any issue is at least as severe as threshold.
func AtOrAbove(issues []Issue, threshold types.Severity) bool {
	for _, i := range issues {
		if i.Severity.Rank() <= threshold.Rank() {
			return true
		}
	}
	return false
}

func uniqueLower(matches []string) []string {
	seen := make(map[string]bool, len(matches))
	var out []string
	for _, m := range matches {
		m = strings.ToLower(m)
		if seen[m] {
			continue
		}
		seen[m] = true
		out = append(out, m)
	}
	return out
}
