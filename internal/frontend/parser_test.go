package frontend

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseYAMLFrontmatter(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantData map[string]any
		wantBody string
		wantErr  bool
	}{
		{
			name:     "simple",
			input:    "---\ntitle: Code Review\nid: review\n---\nYou are a reviewer.\n",
			wantData: map[string]any{"title": "Code Review", "id": "review"},
			wantBody: "You are a reviewer.\n",
		},
		{
			name:     "no frontmatter",
			input:    "# Just Markdown\n\nNo frontmatter here.",
			wantData: map[string]any{},
			wantBody: "# Just Markdown\n\nNo frontmatter here.",
		},
		{
			name:     "horizontal rule in body",
			input:    "Intro\n\n---\n\nMore text",
			wantData: map[string]any{},
			wantBody: "Intro\n\n---\n\nMore text",
		},
		{
			name:     "unclosed block",
			input:    "---\ntitle: x\nbody without close",
			wantData: map[string]any{},
			wantBody: "---\ntitle: x\nbody without close",
		},
		{
			name:     "empty block",
			input:    "---\n---\n# Content",
			wantData: map[string]any{},
			wantBody: "# Content",
		},
		{
			name:     "crlf",
			input:    "---\r\ntitle: Win\r\n---\r\nBody",
			wantData: map[string]any{"title": "Win"},
			wantBody: "Body",
		},
		{
			name:    "invalid yaml",
			input:   "---\ntitle: [unclosed\n---\nBody",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseYAMLFrontmatter(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantData, got.Data)
			assert.Equal(t, tt.wantBody, got.Body)
		})
	}
}

func TestFrontmatter_Meta(t *testing.T) {
	fm, err := ParseYAMLFrontmatter(`---
id: blog
title: Blog Writer
tags: [writing, marketing]
createdAt: "2024-03-01"
updatedAt: 2024-03-02T10:00:00Z
---
Write a blog post.`)
	require.NoError(t, err)

	meta, err := fm.Meta()
	require.NoError(t, err)
	assert.Equal(t, "blog", meta.ID)
	assert.Equal(t, "Blog Writer", meta.Title)
	assert.Equal(t, []string{"writing", "marketing"}, meta.Tags)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), meta.CreatedAt)
	assert.True(t, meta.UpdatedAt.Equal(time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC)))
}

func TestFrontmatter_MetaErrors(t *testing.T) {
	fm := &Frontmatter{Data: map[string]any{"createdAt": "last tuesday"}}
	_, err := fm.Meta()
	assert.Error(t, err)

	fm = &Frontmatter{Data: map[string]any{"title": 42}}
	meta, err := fm.Meta()
	require.NoError(t, err)
	assert.Equal(t, "42", meta.Title)
}
