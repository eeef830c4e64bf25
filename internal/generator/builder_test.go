package generator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssemble(t *testing.T) {
	blocks := DefaultBlocks()
	blocks[0].Content = "You are a senior editor."
	blocks[1].Content = "Edit the draft."
	blocks[2].Content = "   "
	blocks[5].Content = "Input: x"

	got := Assemble(blocks)
	assert.Equal(t, "## Role\nYou are a senior editor.\n\n## Task\nEdit the draft.", got)

	blocks[5].Enabled = true
	got = Assemble(blocks)
	assert.Equal(t, "## Role\nYou are a senior editor.\n\n## Task\nEdit the draft.\n\n## Example\nInput: x", got)

	assert.Equal(t, "", Assemble(DefaultBlocks()))
}

func TestDefaultBlocks(t *testing.T) {
	blocks := DefaultBlocks()
	require.Len(t, blocks, 6)
	for _, b := range blocks[:5] {
		assert.True(t, b.Enabled, b.Label)
	}
	assert.False(t, blocks[5].Enabled)
	assert.Equal(t, "Output Format", blocks[4].Header())
}

func TestParseBlocks(t *testing.T) {
	data := []byte(`blocks:
  - type: role
    content: You are a tester.
  - type: task
    content: Write tests.
    enabled: false
  - type: notes
    label: Notes
    content: Keep it short.
`)

	blocks, err := ParseBlocks(data)
	require.NoError(t, err)
	require.Len(t, blocks, 3)
	assert.Equal(t, "1", blocks[0].ID)
	assert.True(t, blocks[0].Enabled)
	assert.False(t, blocks[1].Enabled)
	assert.Equal(t, "Notes", blocks[2].Header())
	assert.Equal(t, "## Role\nYou are a tester.\n\n## Notes\nKeep it short.", Assemble(blocks))

	_, err = ParseBlocks([]byte("blocks:\n  - type: mystery\n    content: x\n"))
	assert.Error(t, err)

	_, err = ParseBlocks([]byte("blocks: [unterminated"))
	assert.Error(t, err)
}

func TestLoadBlocks_RoundTrip(t *testing.T) {
	blocks := DefaultBlocks()
	blocks[0].Content = "You are a reviewer."

	data, err := MarshalBlocks(blocks)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "blocks.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	loaded, err := LoadBlocks(path)
	require.NoError(t, err)
	assert.Equal(t, blocks, loaded)

	_, err = LoadBlocks(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
