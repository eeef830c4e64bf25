package git

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestIsPromptFile(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected bool
	}{
		{"markdown", "prompts/review.md", true},
		{"prompt extension", "review.prompt", true},
		{"text", "notes/idea.txt", true},
		{"upper case extension", "README.MD", true},
		{"library yaml", "team.prompts.yaml", false},
		{"go source", "main.go", false},
		{"no extension", "Makefile", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isPromptFile(tt.path); got != tt.expected {
				t.Errorf("isPromptFile(%q) = %v, want %v", tt.path, got, tt.expected)
			}
		})
	}
}

func TestFilterPromptFiles(t *testing.T) {
	tmpDir := t.TempDir()

	testFiles := map[string]bool{
		"prompts/review.md": true,
		"summarize.prompt":  true,
		"library.yaml":      false,
		"main.go":           false,
	}
	for path := range testFiles {
		writeFile(t, filepath.Join(tmpDir, path), "test")
	}

	gitOutput := "prompts/review.md\nsummarize.prompt\nlibrary.yaml\nmain.go\ndeleted.md\nprompts/review.md\n"
	filtered := filterPromptFiles(gitOutput, tmpDir)

	if len(filtered) != 2 {
		t.Fatalf("got %d files, want 2: %v", len(filtered), filtered)
	}
	for _, absPath := range filtered {
		rel, err := filepath.Rel(tmpDir, absPath)
		if err != nil {
			t.Fatalf("failed to compute relative path: %v", err)
		}
		if !testFiles[filepath.ToSlash(rel)] {
			t.Errorf("unexpected file in results: %s", rel)
		}
	}
}

func TestFilterPromptFiles_Empty(t *testing.T) {
	files := filterPromptFiles("", t.TempDir())
	if files == nil || len(files) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", files)
	}
}

func TestChangedPromptFiles_NonGitRepo(t *testing.T) {
	skipIfNoGit(t)
	files, err := ChangedPromptFiles(t.TempDir())
	if err != nil {
		t.Errorf("ChangedPromptFiles should not error for non-git repo: %v", err)
	}
	if len(files) != 0 {
		t.Errorf("expected empty slice for non-git repo, got %d files", len(files))
	}
}

func TestIsGitRepo(t *testing.T) {
	skipIfNoGit(t)
	repo := initRepo(t)
	if !IsGitRepo(repo) {
		t.Error("IsGitRepo should return true for an initialised repository")
	}
	if IsGitRepo(t.TempDir()) {
		t.Error("IsGitRepo should return false for non-git directory")
	}
}

func TestChangedPromptFiles_NoCommits(t *testing.T) {
	skipIfNoGit(t)
	repo := initRepo(t)

	writeFile(t, filepath.Join(repo, "prompts", "review.md"), "# Review")
	writeFile(t, filepath.Join(repo, "helper.go"), "package helper")
	gitCmd(t, repo, "add", ".")

	files, err := ChangedPromptFiles(repo)
	if err != nil {
		t.Fatalf("ChangedPromptFiles failed: %v", err)
	}
	if len(files) != 1 || !strings.HasSuffix(files[0], "review.md") {
		t.Errorf("expected only review.md, got %v", files)
	}
}

func TestChangedPromptFiles_WithCommits(t *testing.T) {
	skipIfNoGit(t)
	repo := initRepo(t)

	writeFile(t, filepath.Join(repo, "stable.md"), "unchanged")
	writeFile(t, filepath.Join(repo, "edited.md"), "before")
	gitCmd(t, repo, "add", ".")
	gitCmd(t, repo, "commit", "-m", "initial")

	writeFile(t, filepath.Join(repo, "edited.md"), "after")
	writeFile(t, filepath.Join(repo, "fresh.prompt"), "new prompt")

	files, err := ChangedPromptFiles(repo)
	if err != nil {
		t.Fatalf("ChangedPromptFiles failed: %v", err)
	}

	var names []string
	for _, f := range files {
		names = append(names, filepath.Base(f))
	}
	joined := strings.Join(names, ",")
	if !strings.Contains(joined, "edited.md") || !strings.Contains(joined, "fresh.prompt") {
		t.Errorf("expected edited.md and fresh.prompt, got %v", names)
	}
	if strings.Contains(joined, "stable.md") {
		t.Errorf("stable.md should not be reported as changed, got %v", names)
	}
}

func TestShowHead(t *testing.T) {
	skipIfNoGit(t)
	repo := initRepo(t)

	path := filepath.Join(repo, "prompts", "review.md")
	writeFile(t, path, "You are a reviewer.\n")
	gitCmd(t, repo, "add", ".")
	gitCmd(t, repo, "commit", "-m", "initial")
	writeFile(t, path, "You are a strict reviewer.\n")

	got, err := ShowHead(repo, path)
	if err != nil {
		t.Fatalf("ShowHead failed: %v", err)
	}
	if got != "You are a reviewer.\n" {
		t.Errorf("ShowHead = %q, want committed content", got)
	}

	rel, err := ShowHead(repo, filepath.Join("prompts", "review.md"))
	if err != nil {
		t.Fatalf("ShowHead with relative path failed: %v", err)
	}
	if rel != got {
		t.Errorf("relative lookup = %q, want %q", rel, got)
	}
}

func TestShowHead_Errors(t *testing.T) {
	skipIfNoGit(t)

	if _, err := ShowHead(t.TempDir(), "x.md"); err == nil {
		t.Error("expected error outside a repository")
	}

	repo := initRepo(t)
	writeFile(t, filepath.Join(repo, "a.md"), "a")
	gitCmd(t, repo, "add", ".")
	gitCmd(t, repo, "commit", "-m", "initial")

	if _, err := ShowHead(repo, "missing.md"); err == nil {
		t.Error("expected error for a file not in HEAD")
	}
}

func skipIfNoGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available, skipping integration test")
	}
}

func initRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	gitCmd(t, dir, "init", "-q")
	gitCmd(t, dir, "config", "user.email", "test@test.com")
	gitCmd(t, dir, "config", "user.name", "Test User")
	gitCmd(t, dir, "config", "commit.gpgsign", "false")
	return dir
}

func gitCmd(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("git %s failed: %v: %s", strings.Join(args, " "), err, out)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}
