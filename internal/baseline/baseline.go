// Package baseline records known debugger issues so that later runs only
// report new ones.
package baseline

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/suchetkumbar/Syntara/internal/debugger"
)

// DefaultFile is the baseline file name used when none is given.
const DefaultFile = ".syntarabaseline.json"

const currentVersion = "1.0"

var (
	doubleQuoted = regexp.MustCompile(`"[^"]+"`)
	singleQuoted = regexp.MustCompile(`(^|\s)'([^']+)'(\s|$)`)
	numbers      = regexp.MustCompile(`\b\d+\b`)
)

// Finding is a debugger issue tied to the file it was reported for.
type Finding struct {
	File  string
	Issue debugger.Issue
}

// Baseline represents a snapshot of known issues that should be ignored.
type Baseline struct {
	Version      string   `json:"version"`
	CreatedAt    string   `json:"created_at"`
	Fingerprints []string `json:"fingerprints"`
	index        map[string]bool
}

// Create builds a baseline from findings. Duplicates collapse into one
// fingerprint.
func Create(findings []Finding) *Baseline {
	fingerprints := make([]string, 0, len(findings))
	index := make(map[string]bool)

	for _, f := range findings {
		fp := fingerprint(f)
		if !index[fp] {
			fingerprints = append(fingerprints, fp)
			index[fp] = true
		}
	}

	sort.Strings(fingerprints)

	return &Baseline{
		Version:      currentVersion,
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
		Fingerprints: fingerprints,
		index:        index,
	}
}

// Load reads a baseline from a JSON file.
func Load(path string) (*Baseline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read baseline file: %w", err)
	}

	var b Baseline
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("failed to parse baseline file: %w", err)
	}

	b.index = make(map[string]bool, len(b.Fingerprints))
	for _, fp := range b.Fingerprints {
		b.index[fp] = true
	}

	return &b, nil
}

// Save writes the baseline to path as indented JSON.
func (b *Baseline) Save(path string) error {
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal baseline: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create baseline directory: %w", err)
		}
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write baseline file: %w", err)
	}

	return nil
}

// IsKnown reports whether the finding is recorded in the baseline.
func (b *Baseline) IsKnown(f Finding) bool {
	if b == nil || b.index == nil {
		return false
	}
	return b.index[fingerprint(f)]
}

// Len returns the number of recorded fingerprints.
func (b *Baseline) Len() int {
	if b == nil {
		return 0
	}
	return len(b.Fingerprints)
}

// Filter drops the issues of file that the baseline already knows and
// returns the rest with the number ignored. A nil baseline filters nothing.
func (b *Baseline) Filter(file string, issues []debugger.Issue) ([]debugger.Issue, int) {
	if b == nil {
		return issues, 0
	}

	kept := make([]debugger.Issue, 0, len(issues))
	ignored := 0
	for _, issue := range issues {
		if b.IsKnown(Finding{File: file, Issue: issue}) {
			ignored++
			continue
		}
		kept = append(kept, issue)
	}
	return kept, ignored
}

// fingerprint hashes the file, category, severity and normalised message.
// Line positions are not part of an issue, so edits elsewhere in a prompt
// keep its fingerprints stable.
func fingerprint(f Finding) string {
	data := fmt.Sprintf("%s|%s|%s|%s",
		filepath.ToSlash(f.File), f.Issue.Category, f.Issue.Severity, normalizeMessage(f.Issue.Message))

	hash := sha256.Sum256([]byte(data))
	return fmt.Sprintf("%x", hash)
}

// normalizeMessage replaces quoted values and numbers with placeholders so
// that similar issues share a fingerprint.
func normalizeMessage(msg string) string {
	msg = doubleQuoted.ReplaceAllString(msg, `"*"`)
	// only quotes surrounded by whitespace, so contractions survive
	msg = singleQuoted.ReplaceAllString(msg, `$1'*'$3`)
	msg = numbers.ReplaceAllString(msg, `N`)
	return strings.Join(strings.Fields(msg), " ")
}
