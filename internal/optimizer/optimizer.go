// Package optimizer rewrites prompts with model-specific conventions.
package optimizer

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"
)

// Change messages reported by Optimize.
const (
	ChangeUnknownModel   = "Unknown model, no changes applied"
	ChangeAlreadyOptimal = "Prompt already well-optimized for this model"
	ChangeJSONHint       = "Added JSON output mode hint"
	ChangeReasoning      = "Added reasoning instruction"
	ChangeXMLTags        = "Converted headers to XML-style tags (Claude preference)"
	ChangeFormatting     = "Applied model-specific formatting"
)

// Result is the outcome of optimizing one prompt.
type Result struct {
	Optimized string   `json:"optimized"`
	Model     string   `json:"model"`
	Changes   []string `json:"changes"`
}

// Profiles returns every known model profile in display order.
func Profiles() []Profile {
	out := make([]Profile, len(profiles))
	for i, p := range profiles {
		p.Tips = slices.Clone(p.Tips)
		out[i] = p
	}
	return out
}

// Lookup returns the profile with the given id.
func Lookup(id string) (Profile, bool) {
	for _, p := range profiles {
		if p.ID == id {
			p.Tips = slices.Clone(p.Tips)
			return p, true
		}
	}
	return Profile{}, false
}

// IDs returns the known model ids.
func IDs() []string {
	ids := make([]string, len(profiles))
	for i, p := range profiles {
		ids[i] = p.ID
	}
	return ids
}

// Optimize applies the model's transform and describes what changed. An
// unknown model returns the prompt unchanged with the id as Model.
func Optimize(prompt, modelID string) Result {
	profile, ok := Lookup(modelID)
	if !ok {
		return Result{Optimized: prompt, Model: modelID, Changes: []string{ChangeUnknownModel}}
	}

	optimized := profile.transform(prompt)
	return Result{
		Optimized: optimized,
		Model:     profile.Name,
		Changes:   describeChanges(prompt, optimized),
	}
}

func describeChanges(original, optimized string) []string {
	if optimized == original {
		return []string{ChangeAlreadyOptimal}
	}

	var changes []string
	if grown := utf8.RuneCountInString(optimized) - utf8.RuneCountInString(original); grown > 0 {
		changes = append(changes, fmt.Sprintf("Added %d characters of model-specific guidance", grown))
	}
	if introduced(original, optimized, "JSON") {
		changes = append(changes, ChangeJSONHint)
	}
	if introduced(original, optimized, "think") {
		changes = append(changes, ChangeReasoning)
	}
	if introduced(original, optimized, "<") {
		changes = append(changes, ChangeXMLTags)
	}
	if len(changes) == 0 {
		changes = append(changes, ChangeFormatting)
	}
	return changes
}

func introduced(original, optimized, marker string) bool {
	return strings.Contains(optimized, marker) && !strings.Contains(original, marker)
}
