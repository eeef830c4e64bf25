// Package tokens estimates token usage, cost and context-window pressure.
package tokens

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/suchetkumbar/Syntara/internal/optimizer"
)

// charsPerToken is the rough characters-per-token ratio of English text.
const charsPerToken = 4

// nearLimitRatio is the share of a context window that triggers a warning.
const nearLimitRatio = 0.8

// Counter counts tokens in text.
type Counter interface {
	Count(text string) int
}

// EstimatingCounter approximates tokens as ceil(characters / 4).
type EstimatingCounter struct{}

// Count implements Counter.
func (EstimatingCounter) Count(text string) int {
	n := utf8.RuneCountInString(text)
	return (n + charsPerToken - 1) / charsPerToken
}

// Estimate counts tokens with the EstimatingCounter.
func Estimate(text string) int {
	return EstimatingCounter{}.Count(text)
}

// Price is the input price of a model in US dollars per million tokens.
type Price struct {
	ModelID    string
	Model      string
	PerMillion float64
}

var prices = []Price{
	{"gpt-4o", "GPT-4o", 2.50},
	{"gpt-35", "GPT-3.5 Turbo", 0.50},
	{"claude-35", "Claude 3.5 Sonnet", 3.00},
	{"gemini-pro", "Gemini Pro", 1.25},
	{"llama-3", "Llama 3", 0.20},
}

// Cost is the estimated input cost of a prompt for one model.
type Cost struct {
	Model   string  `json:"model"`
	Dollars float64 `json:"dollars"`
	Display string  `json:"display"`
}

// EstimateCosts prices tokens for every known model.
func EstimateCosts(tokens int) []Cost {
	costs := make([]Cost, 0, len(prices))
	for _, p := range prices {
		d := float64(tokens) * p.PerMillion / 1_000_000
		costs = append(costs, Cost{Model: p.Model, Dollars: d, Display: formatDollars(d)})
	}
	return costs
}

func formatDollars(d float64) string {
	switch {
	case d == 0:
		return "$0"
	case d < 0.0001:
		return "<$0.0001"
	default:
		return fmt.Sprintf("$%.4f", d)
	}
}

// ContextWarning names the models whose context window tokens exceeds or
// nearly fills. It returns "" when every model has room.
func ContextWarning(tokens int) string {
	var exceeded, near []string
	for _, p := range optimizer.Profiles() {
		switch {
		case tokens > p.ContextLimit:
			exceeded = append(exceeded, p.Name)
		case float64(tokens) > nearLimitRatio*float64(p.ContextLimit):
			near = append(near, p.Name)
		}
	}

	var parts []string
	if len(exceeded) > 0 {
		parts = append(parts, "Exceeds context window for "+strings.Join(exceeded, ", "))
	}
	if len(near) > 0 {
		parts = append(parts, "Over 80% of context window for "+strings.Join(near, ", "))
	}
	return strings.Join(parts, "; ")
}

var printer = message.NewPrinter(language.English)

// FormatCount renders a token count with thousands separators.
func FormatCount(tokens int) string {
	return printer.Sprintf("%d", tokens)
}

// Report bundles the estimate for one text.
type Report struct {
	Tokens  int    `json:"tokens"`
	Costs   []Cost `json:"costs"`
	Warning string `json:"warning,omitempty"`
}

// Analyze estimates tokens, costs and context pressure for text.
func Analyze(c Counter, text string) Report {
	n := c.Count(text)
	return Report{Tokens: n, Costs: EstimateCosts(n), Warning: ContextWarning(n)}
}
