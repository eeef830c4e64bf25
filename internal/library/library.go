// Package library loads prompt records from prompt files, directories and
// library files (YAML, JSON or HJSON).
package library

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/hjson/hjson-go/v4"
	"gopkg.in/yaml.v3"

	"github.com/suchetkumbar/Syntara/internal/cue"
	"github.com/suchetkumbar/Syntara/internal/discovery"
	"github.com/suchetkumbar/Syntara/internal/frontend"
	"github.com/suchetkumbar/Syntara/internal/types"
)

// ErrNotFound is returned by Find when no prompt matches.
var ErrNotFound = errors.New("prompt not found")

// idNamespace scopes the deterministic ids given to records without one.
var idNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/suchetkumbar/Syntara/prompt"))

// Library is an ordered set of prompt records.
type Library struct {
	Prompts []types.Prompt
}

// Find returns the prompt whose id matches exactly, or else the first whose
// title matches case-insensitively.
func (l *Library) Find(idOrTitle string) (types.Prompt, error) {
	for _, p := range l.Prompts {
		if p.ID == idOrTitle {
			return p, nil
		}
	}
	for _, p := range l.Prompts {
		if strings.EqualFold(p.Title, idOrTitle) {
			return p, nil
		}
	}
	return types.Prompt{}, fmt.Errorf("%w: %s", ErrNotFound, idOrTitle)
}

// Loader reads prompt records from disk.
type Loader struct {
	excludes  []string
	validator *cue.Validator
}

// NewLoader creates a Loader. A nil excludes slice selects the discovery
// defaults.
func NewLoader(excludes []string) (*Loader, error) {
	v := cue.NewValidator()
	if err := v.LoadSchemas(); err != nil {
		return nil, err
	}
	return &Loader{excludes: excludes, validator: v}, nil
}

// Load reads every path into one library. Directories are searched for
// prompt and library files; files are read according to their extension.
// Prompt ids must be unique across all paths.
func (ld *Loader) Load(paths ...string) (*Library, error) {
	lib := &Library{}
	seen := make(map[string]string)

	add := func(prompts []types.Prompt) error {
		for _, p := range prompts {
			if prev, dup := seen[p.ID]; dup {
				return fmt.Errorf("duplicate prompt id %q in %s (first seen in %s)", p.ID, p.Source, prev)
			}
			seen[p.ID] = p.Source
			lib.Prompts = append(lib.Prompts, p)
		}
		return nil
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("cannot access %s: %w", path, err)
		}

		if info.IsDir() {
			files, err := discovery.NewFileDiscovery(path, false, ld.excludes).DiscoverFiles()
			if err != nil {
				return nil, err
			}
			for _, f := range files {
				prompts, err := ld.parse(filepath.Join(path, f.RelPath), f.Type, []byte(f.Contents))
				if err != nil {
					return nil, err
				}
				if err := add(prompts); err != nil {
					return nil, err
				}
			}
			continue
		}

		ft, err := discovery.DetectFileType(path)
		if err != nil {
			return nil, err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		prompts, err := ld.parse(path, ft, data)
		if err != nil {
			return nil, err
		}
		if err := add(prompts); err != nil {
			return nil, err
		}
	}

	return lib, nil
}

func (ld *Loader) parse(path string, ft discovery.FileType, data []byte) ([]types.Prompt, error) {
	switch ft {
	case discovery.FileTypePrompt:
		p, err := ParsePromptFile(path, string(data))
		if err != nil {
			return nil, err
		}
		return []types.Prompt{p}, nil
	case discovery.FileTypeLibrary:
		return ld.ParseLibraryFile(path, data)
	default:
		return nil, fmt.Errorf("unsupported file: %s", path)
	}
}

// ParsePromptFile builds a record from a single prompt file. Frontmatter
// may set id, title, tags and timestamps; the title otherwise comes from the
// first level-one heading or the file name.
func ParsePromptFile(path, content string) (types.Prompt, error) {
	fm, err := frontend.ParseYAMLFrontmatter(content)
	if err != nil {
		return types.Prompt{}, fmt.Errorf("%s: %w", path, err)
	}
	meta, err := fm.Meta()
	if err != nil {
		return types.Prompt{}, fmt.Errorf("%s: %w", path, err)
	}

	p := types.Prompt{
		ID:        meta.ID,
		Title:     meta.Title,
		Content:   strings.TrimSpace(fm.Body),
		Tags:      meta.Tags,
		CreatedAt: meta.CreatedAt,
		UpdatedAt: meta.UpdatedAt,
		Source:    path,
	}
	if p.Title == "" {
		p.Title = HeadingTitle(p.Content)
	}
	if p.Title == "" {
		p.Title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if p.ID == "" {
		p.ID = DeterministicID(path, p.Title)
	}
	return p, nil
}

// ParseLibraryFile decodes a library file holding either a list of records
// or a mapping with a "prompts" list. Every record is checked against the
// prompt schema before use.
func (ld *Loader) ParseLibraryFile(path string, data []byte) ([]types.Prompt, error) {
	raw, err := decodeLibrary(path, data)
	if err != nil {
		return nil, err
	}

	prompts := make([]types.Prompt, 0, len(raw))
	for i, rec := range raw {
		m, ok := rec.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%s: prompt %d is not a mapping", path, i)
		}
		errs, err := ld.validator.ValidatePrompt(fmt.Sprintf("%s[%d]", path, i), m)
		if err != nil {
			return nil, err
		}
		if len(errs) > 0 {
			return nil, errors.Join(toErrors(errs)...)
		}

		var p types.Prompt
		if err := frontend.Decode(m, &p); err != nil {
			return nil, fmt.Errorf("%s: prompt %d: %w", path, i, err)
		}
		p.Source = path
		if p.ID == "" {
			p.ID = DeterministicID(path, p.Title)
		}
		prompts = append(prompts, p)
	}
	return prompts, nil
}

func decodeLibrary(path string, data []byte) ([]any, error) {
	var doc any
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, &doc)
	case ".hjson":
		err = hjson.Unmarshal(data, &doc)
	default:
		err = yaml.Unmarshal(data, &doc)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	switch v := doc.(type) {
	case nil:
		return nil, nil
	case []any:
		return v, nil
	case map[string]any:
		list, ok := v["prompts"]
		if !ok {
			return nil, fmt.Errorf("%s: missing \"prompts\" list", path)
		}
		if list == nil {
			return nil, nil
		}
		items, ok := list.([]any)
		if !ok {
			return nil, fmt.Errorf("%s: \"prompts\" must be a list", path)
		}
		return items, nil
	default:
		return nil, fmt.Errorf("%s: expected a list or a mapping with \"prompts\"", path)
	}
}

// DeterministicID derives a stable id from where a record came from.
func DeterministicID(source, title string) string {
	return uuid.NewSHA1(idNamespace, []byte(filepath.ToSlash(source)+"\x00"+title)).String()
}

func toErrors(errs []cue.ValidationError) []error {
	out := make([]error, len(errs))
	for i, e := range errs {
		out[i] = e
	}
	return out
}
