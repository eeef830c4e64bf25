package git

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/suchetkumbar/Syntara/internal/discovery"
)

// ChangedPromptFiles returns absolute paths of prompt files with uncommitted
// changes (staged and unstaged). In a repository without commits every
// tracked prompt file counts as changed. Returns an empty slice outside a
// git repository.
func ChangedPromptFiles(rootPath string) ([]string, error) {
	if !IsGitRepo(rootPath) {
		return []string{}, nil
	}

	if !hasCommits(rootPath) {
		output, err := run(rootPath, "ls-files")
		if err != nil {
			return nil, err
		}
		return filterPromptFiles(output, rootPath), nil
	}

	output, err := run(rootPath, "diff", "--name-only", "--relative", "HEAD")
	if err != nil {
		return nil, err
	}
	untracked, err := run(rootPath, "ls-files", "--others", "--exclude-standard")
	if err != nil {
		return nil, err
	}
	return filterPromptFiles(output+"\n"+untracked, rootPath), nil
}

// ShowHead returns the committed content of path at HEAD. path may be
// absolute or relative to rootPath.
func ShowHead(rootPath, path string) (string, error) {
	if !IsGitRepo(rootPath) {
		return "", fmt.Errorf("%s is not inside a git repository", rootPath)
	}

	top, err := run(rootPath, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", err
	}
	top = strings.TrimSpace(top)

	abs := path
	if !filepath.IsAbs(abs) {
		abs = filepath.Join(rootPath, path)
	}
	rel, err := relativeTo(top, abs)
	if err != nil {
		return "", err
	}

	content, err := run(top, "show", "HEAD:"+filepath.ToSlash(rel))
	if err != nil {
		return "", fmt.Errorf("reading %s at HEAD: %w", rel, err)
	}
	return content, nil
}

// IsGitRepo checks if the given directory is within a git repository.
func IsGitRepo(rootPath string) bool {
	cmd := exec.Command("git", "rev-parse", "--git-dir")
	cmd.Dir = rootPath
	cmd.Stderr = nil
	return cmd.Run() == nil
}

func hasCommits(rootPath string) bool {
	cmd := exec.Command("git", "rev-parse", "HEAD")
	cmd.Dir = rootPath
	return cmd.Run() == nil
}

func run(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	output, err := cmd.Output()
	if err != nil {
		var stderr string
		if ee, ok := err.(*exec.ExitError); ok {
			stderr = strings.TrimSpace(string(ee.Stderr))
		}
		return "", fmt.Errorf("git %s failed: %w: %s", strings.Join(args, " "), err, stderr)
	}
	return string(output), nil
}

// relativeTo resolves symlinks on both sides so that temp directories
// behind a symlinked /tmp still produce a path inside the repository.
func relativeTo(top, abs string) (string, error) {
	if resolved, err := filepath.EvalSymlinks(top); err == nil {
		top = resolved
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		abs = resolved
	} else if dir, derr := filepath.EvalSymlinks(filepath.Dir(abs)); derr == nil {
		abs = filepath.Join(dir, filepath.Base(abs))
	}
	rel, err := filepath.Rel(top, abs)
	if err != nil {
		return "", fmt.Errorf("resolving %s against %s: %w", abs, top, err)
	}
	if strings.HasPrefix(rel, "..") {
		return "", fmt.Errorf("%s is outside the repository at %s", abs, top)
	}
	return rel, nil
}

// filterPromptFiles keeps existing prompt files from git's name-only output
// and returns them as absolute, de-duplicated paths.
func filterPromptFiles(gitOutput, rootPath string) []string {
	files := []string{}
	seen := make(map[string]bool)

	for _, line := range strings.Split(gitOutput, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || seen[line] {
			continue
		}
		seen[line] = true

		if !isPromptFile(line) {
			continue
		}

		absPath := filepath.Join(rootPath, line)
		// git reports deletions too
		if _, err := os.Stat(absPath); os.IsNotExist(err) {
			continue
		}
		files = append(files, absPath)
	}

	return files
}

func isPromptFile(relPath string) bool {
	ft, err := discovery.DetectFileType(relPath)
	return err == nil && ft == discovery.FileTypePrompt
}
