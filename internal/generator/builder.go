package generator

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// BlockType names a builder section.
type BlockType string

// Block types in their default order.
const (
	BlockRole         BlockType = "role"
	BlockTask         BlockType = "task"
	BlockContext      BlockType = "context"
	BlockConstraints  BlockType = "constraints"
	BlockOutputFormat BlockType = "outputFormat"
	BlockExample      BlockType = "example"
)

var blockHeaders = map[BlockType]string{
	BlockRole:         "Role",
	BlockTask:         "Task",
	BlockContext:      "Context",
	BlockConstraints:  "Constraints",
	BlockOutputFormat: "Output Format",
	BlockExample:      "Example",
}

// Block is one section of a built prompt.
type Block struct {
	ID      string    `yaml:"id" json:"id"`
	Type    BlockType `yaml:"type" json:"type"`
	Label   string    `yaml:"label" json:"label"`
	Content string    `yaml:"content" json:"content"`
	Enabled bool      `yaml:"enabled" json:"enabled"`
}

// Header returns the markdown heading text for the block.
func (b Block) Header() string {
	if h, ok := blockHeaders[b.Type]; ok {
		return h
	}
	if b.Label != "" {
		return b.Label
	}
	return string(b.Type)
}

// DefaultBlocks returns the starting layout. The example block is disabled.
func DefaultBlocks() []Block {
	return []Block{
		{ID: "1", Type: BlockRole, Label: "Role", Enabled: true},
		{ID: "2", Type: BlockTask, Label: "Task", Enabled: true},
		{ID: "3", Type: BlockContext, Label: "Context", Enabled: true},
		{ID: "4", Type: BlockConstraints, Label: "Constraints", Enabled: true},
		{ID: "5", Type: BlockOutputFormat, Label: "Output Format", Enabled: true},
		{ID: "6", Type: BlockExample, Label: "Example (optional)", Enabled: false},
	}
}

// Assemble joins enabled, non-blank blocks as "## Header\ncontent" separated
// by a blank line.
func Assemble(blocks []Block) string {
	var parts []string
	for _, b := range blocks {
		if !b.Enabled || strings.TrimSpace(b.Content) == "" {
			continue
		}
		parts = append(parts, "## "+b.Header()+"\n"+b.Content)
	}
	return strings.Join(parts, "\n\n")
}

type blockFile struct {
	Blocks []Block `yaml:"blocks"`
}

// ParseBlocks decodes a YAML block document. Blocks omitting "enabled" are
// enabled; a missing id is filled from the block's position.
func ParseBlocks(data []byte) ([]Block, error) {
	var raw struct {
		Blocks []struct {
			ID      string    `yaml:"id"`
			Type    BlockType `yaml:"type"`
			Label   string    `yaml:"label"`
			Content string    `yaml:"content"`
			Enabled *bool     `yaml:"enabled"`
		} `yaml:"blocks"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse blocks: %w", err)
	}

	blocks := make([]Block, 0, len(raw.Blocks))
	for i, rb := range raw.Blocks {
		b := Block{
			ID:      rb.ID,
			Type:    rb.Type,
			Label:   rb.Label,
			Content: rb.Content,
			Enabled: rb.Enabled == nil || *rb.Enabled,
		}
		if b.ID == "" {
			b.ID = fmt.Sprint(i + 1)
		}
		if _, ok := blockHeaders[b.Type]; !ok && b.Label == "" {
			return nil, fmt.Errorf("block %s: unknown type %q and no label", b.ID, b.Type)
		}
		blocks = append(blocks, b)
	}
	return blocks, nil
}

// LoadBlocks reads a YAML block file.
func LoadBlocks(path string) ([]Block, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return ParseBlocks(data)
}

// MarshalBlocks encodes blocks in the format ParseBlocks reads.
func MarshalBlocks(blocks []Block) ([]byte, error) {
	return yaml.Marshal(blockFile{Blocks: blocks})
}
