package debugger

import (
	"regexp"

	"github.com/dlclark/regexp2"
)

// matcher is the small surface the rules need from a compiled pattern.
// Patterns that need lookahead or backreferences run on regexp2, the rest
// on the standard engine.
type matcher interface {
	MatchString(s string) bool
	FindAll(s string) []string
}

type reMatcher struct{ re *regexp.Regexp }

func (m reMatcher) MatchString(s string) bool { return m.re.MatchString(s) }
func (m reMatcher) FindAll(s string) []string { return m.re.FindAllString(s, -1) }

type ecmaMatcher struct{ re *regexp2.Regexp }

func (m ecmaMatcher) MatchString(s string) bool {
	ok, err := m.re.MatchString(s)
	return err == nil && ok
}

func (m ecmaMatcher) FindAll(s string) []string {
	var out []string
	match, err := m.re.FindStringMatch(s)
	for err == nil && match != nil {
		out = append(out, match.String())
		match, err = m.re.FindNextMatch(match)
	}
	return out
}

func std(pattern string) matcher {
	return reMatcher{re: regexp.MustCompile(`(?i)` + pattern)}
}

func ecma(pattern string) matcher {
	return ecmaMatcher{re: regexp2.MustCompile(pattern, regexp2.ECMAScript|regexp2.IgnoreCase)}
}

type patternRule struct {
	pattern    matcher
	message    string
	suggestion string
}

type conflictRule struct {
	a, b    matcher
	message string
}

type sectionRule struct {
	label    string
	keywords []string
}

var vagueRules = []patternRule{
	{std(`\b(stuff|things|etc\.?|and so on)\b`), "Vague language detected", "Replace with specific terms"},
	{ecma(`\b(good|nice|great|bad|better)\b(?!\s+(practice|example))`), "Subjective qualifier", "Define what 'good' means in this context"},
	{std(`\b(maybe|perhaps|might|possibly|somewhat)\b`), "Uncertain language weakens intent", "Use definitive language"},
	{std(`\b(very|really|extremely|totally|absolutely)\b`), "Filler intensifier", "Remove or replace with measurable criteria"},
	{std(`\b(try to|attempt to|aim to)\b`), "Weak directive", "Use direct commands: 'Do X' instead of 'Try to X'"},
	{std(`\b(some|various|several|many|a few)\b`), "Imprecise quantity", "Specify exact numbers or ranges"},
}

var conflictRules = []conflictRule{
	{
		std(`\b(be (brief|concise|short))\b`),
		std(`\b(be (detailed|comprehensive|thorough|exhaustive))\b`),
		"Conflicting: asks for both brevity AND detail",
	},
	{
		std(`\b(formal|professional)\b`),
		std(`\b(casual|friendly|informal|conversational)\b`),
		"Conflicting: asks for both formal AND casual tone",
	},
	{
		std(`\b(do not|don't|never)\s+\w+\s+example`),
		std(`\b(provide|include|give)\s+example`),
		"Conflicting: both prohibits AND requests examples",
	},
	{
		std(`\b(simple|basic|beginner)\b`),
		std(`\b(advanced|complex|expert|sophisticated)\b`),
		"Conflicting: targets both simple AND advanced levels",
	},
}

var complexityRules = []patternRule{
	{std(`[^.!?]{200,}`), "Sentence exceeds 200 chars, hard to follow", "Break into shorter, focused sentences"},
	{ecma(`(\b\w+\b)(?=.*?\b\1\b.*?\b\1\b)`), "Word repetition detected", "Vary vocabulary or restructure"},
}

var sectionRules = []sectionRule{
	{"Role/Persona", []string{"role", "you are", "act as", "persona"}},
	{"Task/Goal", []string{"task", "goal", "objective", "your job"}},
	{"Output Format", []string{"output", "format", "respond", "return"}},
	{"Constraints", []string{"constraint", "must", "should", "do not", "avoid"}},
}

var structureMarkers = regexp.MustCompile(`[#\-*\d]`)
