// Package textutil holds the text primitives shared by the analysers:
// tokenization, word counting, keyword matching and line splitting.
package textutil

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// minTokenLen is the shortest token Tokenize keeps.
const minTokenLen = 3

// Tokenize lowercases text, drops punctuation and returns the remaining
// word tokens longer than two characters, in order of appearance.
func Tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_')
	})
	var tokens []string
	for _, f := range fields {
		if utf8.RuneCountInString(f) < minTokenLen {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

// WordCount returns the number of whitespace-separated fields.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// IsBlank reports whether text is empty or whitespace only.
func IsBlank(text string) bool {
	return strings.TrimSpace(text) == ""
}

// CountMatches counts how many keywords occur in text, case-insensitively.
// Each keyword counts once no matter how often it appears.
func CountMatches(text string, keywords []string) int {
	return len(MatchedKeywords(text, keywords))
}

// MatchedKeywords returns the keywords contained in text, in keyword order.
func MatchedKeywords(text string, keywords []string) []string {
	lower := strings.ToLower(text)
	var matched []string
	for _, k := range keywords {
		if strings.Contains(lower, k) {
			matched = append(matched, k)
		}
	}
	return matched
}

// SplitLines splits on "\n" only. Empty lines are kept and nothing is trimmed.
func SplitLines(text string) []string {
	return strings.Split(text, "\n")
}

// ContainsAny reports whether lower contains any of the keywords.
// lower must already be lowercased.
func ContainsAny(lower string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}

// Capitalize upper-cases the first rune of s.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
