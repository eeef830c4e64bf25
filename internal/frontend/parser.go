// Package frontend parses YAML frontmatter at the top of prompt files.
package frontend

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"gopkg.in/yaml.v3"
)

const delimiter = "---"

// Frontmatter represents parsed frontmatter data.
type Frontmatter struct {
	Data map[string]interface{}
	Body string
}

// PromptMeta is the frontmatter a prompt file may declare.
type PromptMeta struct {
	ID        string    `mapstructure:"id"`
	Title     string    `mapstructure:"title"`
	Tags      []string  `mapstructure:"tags"`
	CreatedAt time.Time `mapstructure:"createdAt"`
	UpdatedAt time.Time `mapstructure:"updatedAt"`
}

// ParseYAMLFrontmatter splits a leading "---" delimited YAML block from the
// body. Content that does not open with a delimiter line, or whose block is
// never closed, is returned whole as the body.
func ParseYAMLFrontmatter(content string) (*Frontmatter, error) {
	none := &Frontmatter{Data: map[string]interface{}{}, Body: content}

	rest, ok := cutDelimiterLine(content)
	if !ok {
		return none, nil
	}

	var yamlLines []string
	lines := strings.SplitAfter(rest, "\n")
	for i, line := range lines {
		if strings.TrimRight(line, "\r\n") != delimiter {
			yamlLines = append(yamlLines, line)
			continue
		}

		data := map[string]interface{}{}
		if err := yaml.Unmarshal([]byte(strings.Join(yamlLines, "")), &data); err != nil {
			return nil, fmt.Errorf("invalid frontmatter: %w", err)
		}
		if data == nil {
			data = map[string]interface{}{}
		}
		return &Frontmatter{Data: data, Body: strings.Join(lines[i+1:], "")}, nil
	}
	return none, nil
}

func cutDelimiterLine(content string) (string, bool) {
	content = strings.TrimPrefix(content, "\uFEFF")
	first, rest, found := strings.Cut(content, "\n")
	if !found || strings.TrimRight(first, "\r") != delimiter {
		return "", false
	}
	return rest, true
}

// Meta decodes the known prompt fields from the frontmatter data.
func (f *Frontmatter) Meta() (PromptMeta, error) {
	var meta PromptMeta
	if err := Decode(f.Data, &meta); err != nil {
		return meta, fmt.Errorf("invalid frontmatter fields: %w", err)
	}
	return meta, nil
}

// Decode copies loosely typed YAML/JSON data into out using mapstructure
// tags. Scalars are converted where sensible and time strings are parsed.
func Decode(data any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       timeHook,
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	return dec.Decode(data)
}

var timeLayouts = []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"}

func timeHook(from, to reflect.Type, data interface{}) (interface{}, error) {
	if to != reflect.TypeOf(time.Time{}) || from.Kind() != reflect.String {
		return data, nil
	}
	s := strings.TrimSpace(data.(string))
	if s == "" {
		return time.Time{}, nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return nil, fmt.Errorf("unrecognised time %q", s)
}
