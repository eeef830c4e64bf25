package discovery

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// FileType categorizes discovered files.
type FileType int

const (
	FileTypeUnknown FileType = iota
	FileTypePrompt
	FileTypeLibrary
)

// String returns the human-readable name of the file type.
func (ft FileType) String() string {
	switch ft {
	case FileTypePrompt:
		return "prompt"
	case FileTypeLibrary:
		return "library"
	default:
		return "unknown"
	}
}

// FileTypeEntry defines the discovery patterns for a file type.
type FileTypeEntry struct {
	Type     FileType
	Patterns []string
}

// DefaultFileTypes is the registry of file types and their discovery patterns.
// Library files inside a directory must carry the .prompts infix so that
// unrelated YAML and JSON files are not picked up.
var DefaultFileTypes = []FileTypeEntry{
	{Type: FileTypeLibrary, Patterns: []string{"**/*.prompts.yaml", "**/*.prompts.yml", "**/*.prompts.json", "**/*.prompts.hjson"}},
	{Type: FileTypePrompt, Patterns: []string{"**/*.md", "**/*.prompt", "**/*.txt"}},
}

// DefaultExcludes are skipped unless the caller replaces them.
var DefaultExcludes = []string{".git/**", "node_modules/**", "vendor/**"}

// DetectFileType determines the type of a single file from its extension.
// Any YAML, JSON or HJSON file named explicitly is treated as a library.
func DetectFileType(path string) (FileType, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown", ".prompt", ".txt":
		return FileTypePrompt, nil
	case ".yaml", ".yml", ".json", ".hjson":
		return FileTypeLibrary, nil
	case "":
		return FileTypeUnknown, fmt.Errorf("unsupported file: %s has no extension", filepath.Base(path))
	default:
		return FileTypeUnknown, fmt.Errorf("unsupported file type: %s", filepath.Ext(path))
	}
}

// ValidateFilePath checks that path names a readable, non-binary file and
// returns its absolute, symlink-resolved form. Empty files are allowed; an
// empty prompt is a valid input.
func ValidateFilePath(path string) (absPath string, err error) {
	absPath, err = filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("invalid path %q: %w", path, err)
	}

	info, err := os.Lstat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("file not found: %s", absPath)
		}
		if os.IsPermission(err) {
			return "", fmt.Errorf("permission denied: %s", absPath)
		}
		return "", fmt.Errorf("cannot access file: %s: %w", absPath, err)
	}

	if info.Mode()&os.ModeSymlink != 0 {
		realPath, evalErr := filepath.EvalSymlinks(absPath)
		if evalErr != nil {
			return "", fmt.Errorf("cannot resolve symlink %s: %w", absPath, evalErr)
		}
		absPath = realPath
		info, err = os.Stat(absPath)
		if err != nil {
			return "", fmt.Errorf("symlink target inaccessible: %s: %w", absPath, err)
		}
	}

	if info.IsDir() {
		return "", fmt.Errorf("path is a directory, not a file: %s", absPath)
	}
	if info.Size() == 0 {
		return absPath, nil
	}

	f, err := os.Open(absPath)
	if err != nil {
		return "", fmt.Errorf("cannot read file: %s: %w", absPath, err)
	}
	defer f.Close()

	buf := make([]byte, 512)
	n, err := f.Read(buf)
	if err != nil {
		return "", fmt.Errorf("cannot read file: %s: %w", absPath, err)
	}
	if bytes.Contains(buf[:n], []byte{0}) {
		return "", fmt.Errorf("file appears to be binary, not text: %s", absPath)
	}

	return absPath, nil
}

// File represents a discovered file with its metadata.
type File struct {
	Path     string
	RelPath  string
	Size     int64
	Type     FileType
	Contents string
}

// FileDiscovery manages file discovery operations.
type FileDiscovery struct {
	rootPath       string
	followSymlinks bool
	excludes       []string
}

// NewFileDiscovery creates a FileDiscovery rooted at rootPath. A nil
// excludes slice selects DefaultExcludes.
func NewFileDiscovery(rootPath string, followSymlinks bool, excludes []string) *FileDiscovery {
	if excludes == nil {
		excludes = DefaultExcludes
	}
	return &FileDiscovery{
		rootPath:       rootPath,
		followSymlinks: followSymlinks,
		excludes:       excludes,
	}
}

// DiscoverFiles finds every prompt and library file under the root,
// sorted by relative path.
func (fd *FileDiscovery) DiscoverFiles() ([]File, error) {
	return fd.DiscoverFilesWithRegistry(DefaultFileTypes)
}

// DiscoverFilesWithRegistry finds files using a custom registry. A file
// matched by several entries keeps the first entry's type.
func (fd *FileDiscovery) DiscoverFilesWithRegistry(registry []FileTypeEntry) ([]File, error) {
	var files []File
	seen := make(map[string]bool)

	for _, ftc := range registry {
		discovered, err := fd.findFilesByPattern(ftc.Patterns)
		if err != nil {
			return nil, fmt.Errorf("error discovering %s files: %w", ftc.Type, err)
		}
		for _, f := range discovered {
			if seen[f.RelPath] {
				continue
			}
			seen[f.RelPath] = true
			f.Type = ftc.Type
			files = append(files, f)
		}
	}

	sort.Slice(files, func(i, j int) bool { return files[i].RelPath < files[j].RelPath })
	return files, nil
}

func (fd *FileDiscovery) findFilesByPattern(patterns []string) ([]File, error) {
	var files []File

	for _, pattern := range patterns {
		matches, err := doublestar.Glob(os.DirFS(fd.rootPath), pattern)
		if err != nil {
			return nil, fmt.Errorf("error evaluating pattern %s: %w", pattern, err)
		}

		for _, match := range matches {
			if fd.excluded(match) {
				continue
			}
			if f, ok := fd.processMatch(match); ok {
				files = append(files, f)
			}
		}
	}

	return files, nil
}

func (fd *FileDiscovery) excluded(relPath string) bool {
	for _, pattern := range fd.excludes {
		if ok, err := doublestar.Match(pattern, relPath); err == nil && ok {
			return true
		}
	}
	return false
}

// processMatch converts a glob match into a File, returning false if the match should be skipped.
func (fd *FileDiscovery) processMatch(match string) (File, bool) {
	fullPath := filepath.Join(fd.rootPath, match)

	info, err := os.Lstat(fullPath)
	if err != nil || info.IsDir() {
		return File{}, false
	}

	if info.Mode()&os.ModeSymlink != 0 {
		resolved, resolvedInfo, ok := fd.resolveSymlink(fullPath)
		if !ok {
			return File{}, false
		}
		fullPath = resolved
		info = resolvedInfo
	}

	contents, err := os.ReadFile(fullPath)
	if err != nil || bytes.IndexByte(contents, 0) >= 0 {
		return File{}, false
	}

	return File{
		Path:     fullPath,
		RelPath:  filepath.ToSlash(match),
		Size:     info.Size(),
		Contents: string(contents),
	}, true
}

// resolveSymlink follows a symlink if configured and it stays under the root.
func (fd *FileDiscovery) resolveSymlink(fullPath string) (string, os.FileInfo, bool) {
	if !fd.followSymlinks {
		return "", nil, false
	}

	realPath, err := filepath.EvalSymlinks(fullPath)
	if err != nil {
		return "", nil, false
	}

	root, err := filepath.EvalSymlinks(fd.rootPath)
	if err != nil || !strings.HasPrefix(realPath, root) {
		return "", nil, false
	}

	info, err := os.Stat(realPath)
	if err != nil || info.IsDir() {
		return "", nil, false
	}

	return realPath, info, true
}
