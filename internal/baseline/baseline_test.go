package baseline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/suchetkumbar/Syntara/internal/debugger"
	"github.com/suchetkumbar/Syntara/internal/types"
)

func vague(msg string) debugger.Issue {
	return debugger.Issue{
		Severity:   types.SeverityWarning,
		Category:   debugger.CategoryVague,
		Message:    msg,
		Suggestion: "Replace with specific, measurable criteria",
	}
}

func TestCreate(t *testing.T) {
	findings := []Finding{
		{File: "prompts/review.md", Issue: vague(`Vague quantifiers: "some"`)},
		{File: "prompts/summary.md", Issue: debugger.Issue{
			Severity: types.SeverityError,
			Category: debugger.CategoryConflict,
			Message:  "Conflicting length instructions",
		}},
		{File: "prompts/review.md", Issue: vague(`Vague quantifiers: "some"`)},
	}

	b := Create(findings)

	if b.Version != "1.0" {
		t.Errorf("Expected version 1.0, got %s", b.Version)
	}
	if b.CreatedAt == "" {
		t.Error("Expected CreatedAt to be set")
	}
	if len(b.Fingerprints) != 2 {
		t.Errorf("Expected 2 unique fingerprints, got %d", len(b.Fingerprints))
	}
	if len(b.index) != 2 {
		t.Errorf("Expected index with 2 entries, got %d", len(b.index))
	}
	if b.Len() != 2 {
		t.Errorf("Len() = %d, want 2", b.Len())
	}
}

func TestIsKnown(t *testing.T) {
	known := Finding{File: "a.md", Issue: vague(`Vague quantifiers: "many"`)}
	other := Finding{File: "b.md", Issue: vague(`Vague quantifiers: "many"`)}

	b := Create([]Finding{known})

	if !b.IsKnown(known) {
		t.Error("Expected finding to be known in baseline")
	}
	if b.IsKnown(other) {
		t.Error("Same issue in another file should not be known")
	}

	var nilBaseline *Baseline
	if nilBaseline.IsKnown(known) {
		t.Error("nil baseline should know nothing")
	}
}

func TestFilter(t *testing.T) {
	old := vague(`Vague quantifiers: "some"`)
	b := Create([]Finding{{File: "a.md", Issue: old}})

	fresh := debugger.Issue{
		Severity: types.SeverityInfo,
		Category: debugger.CategoryStructure,
		Message:  "Long prompt without structure",
	}
	// Quoted values are normalised away, so a different word is still known.
	renamed := vague(`Vague quantifiers: "several"`)

	kept, ignored := b.Filter("a.md", []debugger.Issue{old, fresh, renamed})
	if ignored != 2 {
		t.Errorf("ignored = %d, want 2", ignored)
	}
	if len(kept) != 1 || kept[0].Category != debugger.CategoryStructure {
		t.Errorf("kept = %+v, want only the structure issue", kept)
	}

	var nilBaseline *Baseline
	all, n := nilBaseline.Filter("a.md", []debugger.Issue{old})
	if n != 0 || len(all) != 1 {
		t.Errorf("nil baseline should not filter, got %d kept %d ignored", len(all), n)
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", DefaultFile)
	finding := Finding{File: "a.md", Issue: vague(`Vague quantifiers: "some"`)}

	original := Create([]Finding{finding})
	if err := original.Save(path); err != nil {
		t.Fatalf("Failed to save baseline: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("Baseline file not created: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to load baseline: %v", err)
	}
	if loaded.Version != original.Version {
		t.Errorf("Version mismatch: expected %s, got %s", original.Version, loaded.Version)
	}
	if loaded.CreatedAt != original.CreatedAt {
		t.Errorf("CreatedAt mismatch: expected %s, got %s", original.CreatedAt, loaded.CreatedAt)
	}
	if len(loaded.index) != len(original.Fingerprints) {
		t.Errorf("Index not rebuilt: expected %d entries, got %d", len(original.Fingerprints), len(loaded.index))
	}
	if !loaded.IsKnown(finding) {
		t.Error("Expected loaded baseline to recognize original finding")
	}
}

func TestNormalizeMessage(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`Vague quantifiers: "some", "many"`, `Vague quantifiers: "*", "*"`},
		{"Found 4 questions in 120 words", "Found N questions in N words"},
		{"Term 'concise' doesn't match 'thorough'", "Term '*' doesn't match '*'"},
		{"Extra   whitespace   here", "Extra whitespace here"},
	}

	for _, tt := range tests {
		if got := normalizeMessage(tt.input); got != tt.expected {
			t.Errorf("normalizeMessage(%q)\nExpected: %q\nGot:      %q", tt.input, tt.expected, got)
		}
	}
}

func TestFingerprintStability(t *testing.T) {
	f := Finding{File: "a.md", Issue: vague(`Vague quantifiers: "some"`)}
	fp1 := fingerprint(f)

	f.Issue.Suggestion = "different suggestion"
	if fingerprint(f) != fp1 {
		t.Error("Fingerprint changed when only the suggestion changed")
	}

	f.Issue.Severity = types.SeverityError
	if fingerprint(f) == fp1 {
		t.Error("Fingerprint didn't change when severity changed")
	}

	f.Issue.Severity = types.SeverityWarning
	f.Issue.Message = "Completely different issue"
	if fingerprint(f) == fp1 {
		t.Error("Fingerprint didn't change when message pattern changed")
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load("/nonexistent/path/" + DefaultFile); err == nil {
		t.Error("Expected error when loading nonexistent baseline")
	}

	path := filepath.Join(t.TempDir(), DefaultFile)
	if err := os.WriteFile(path, []byte("invalid json"), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Expected error when loading invalid JSON")
	}
}
