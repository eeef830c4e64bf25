// Package types provides shared types used across the syntara codebase.
// This package is at the bottom of the dependency graph and should not import
// any other internal packages to avoid circular dependencies.
package types

import (
	"strings"
	"time"
)

// Severity ranks a debugger issue.
type Severity string

// Severity level constants.
const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// severityRank orders severities for sorting and fail-on thresholds.
var severityRank = map[Severity]int{
	SeverityError:   0,
	SeverityWarning: 1,
	SeverityInfo:    2,
}

// Rank returns the sort rank of a severity (error=0, warning=1, info=2).
// Unknown severities sort after info.
func (s Severity) Rank() int {
	if r, ok := severityRank[s]; ok {
		return r
	}
	return len(severityRank)
}

// ParseSeverity converts a string to a Severity.
func ParseSeverity(s string) (Severity, bool) {
	sev := Severity(strings.ToLower(strings.TrimSpace(s)))
	_, ok := severityRank[sev]
	return sev, ok
}

// Breakdown mirrors the six scoring dimensions so records can carry a stored
// score without importing the scoring package.
type Breakdown struct {
	Role         int `json:"role" yaml:"role" mapstructure:"role"`
	Specificity  int `json:"specificity" yaml:"specificity" mapstructure:"specificity"`
	Clarity      int `json:"clarity" yaml:"clarity" mapstructure:"clarity"`
	Structure    int `json:"structure" yaml:"structure" mapstructure:"structure"`
	Constraints  int `json:"constraints" yaml:"constraints" mapstructure:"constraints"`
	OutputFormat int `json:"outputFormat" yaml:"outputFormat" mapstructure:"outputFormat"`
}

// Prompt is a prompt record supplied by the caller (a file, a library entry).
type Prompt struct {
	ID        string          `json:"id" yaml:"id" mapstructure:"id"`
	Title     string          `json:"title" yaml:"title" mapstructure:"title"`
	Content   string          `json:"content" yaml:"content" mapstructure:"content"`
	Tags      []string        `json:"tags,omitempty" yaml:"tags,omitempty" mapstructure:"tags"`
	Versions  []PromptVersion `json:"versions,omitempty" yaml:"versions,omitempty" mapstructure:"versions"`
	CreatedAt time.Time       `json:"createdAt,omitempty" yaml:"createdAt,omitempty" mapstructure:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt,omitempty" yaml:"updatedAt,omitempty" mapstructure:"updatedAt"`
	Source    string          `json:"source,omitempty" yaml:"-" mapstructure:"-"`
}

// PromptVersion is a saved snapshot of a prompt's content.
type PromptVersion struct {
	ID        string     `json:"id" yaml:"id" mapstructure:"id"`
	Content   string     `json:"content" yaml:"content" mapstructure:"content"`
	Score     *Breakdown `json:"score,omitempty" yaml:"score,omitempty" mapstructure:"score"`
	CreatedAt time.Time  `json:"createdAt,omitempty" yaml:"createdAt,omitempty" mapstructure:"createdAt"`
	Note      string     `json:"note,omitempty" yaml:"note,omitempty" mapstructure:"note"`
}

// SearchText is the text a prompt is matched on: title and body joined.
func (p Prompt) SearchText() string {
	return p.Title + " " + p.Content
}

// Version returns the version with the given id.
func (p Prompt) Version(id string) (PromptVersion, bool) {
	for _, v := range p.Versions {
		if v.ID == id {
			return v, true
		}
	}
	return PromptVersion{}, false
}

// Latest returns the most recently created version, or false when the
// prompt has no versions. Ties keep the later entry in the list.
func (p Prompt) Latest() (PromptVersion, bool) {
	if len(p.Versions) == 0 {
		return PromptVersion{}, false
	}
	latest := p.Versions[0]
	for _, v := range p.Versions[1:] {
		if !v.CreatedAt.Before(latest.CreatedAt) {
			latest = v
		}
	}
	return latest, true
}

// Output format constants.
const (
	FormatConsole  = "console"
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
)
