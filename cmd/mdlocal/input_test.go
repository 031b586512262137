package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveInputPath_FromArgs(t *testing.T) {
	var out bytes.Buffer

	path, err := resolveInputPath([]string{"docs/readme.md"}, strings.NewReader(""), &out)
	require.NoError(t, err)
	assert.Equal(t, "docs/readme.md", path)
	assert.Empty(t, out.String(), "no prompt when a path is given")
}

func TestResolveInputPath_Prompt(t *testing.T) {
	var out bytes.Buffer

	path, err := resolveInputPath(nil, strings.NewReader("  notes/post.md \nignored\n"), &out)
	require.NoError(t, err)
	assert.Equal(t, "notes/post.md", path)
	assert.Equal(t, "Enter markdown file path: ", out.String())
}

func TestResolveInputPath_PromptWithoutNewline(t *testing.T) {
	path, err := resolveInputPath(nil, strings.NewReader(`"My Docs/post.md"`), &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "My Docs/post.md", path)
}

func TestResolveInputPath_EmptyPrompt(t *testing.T) {
	_, err := resolveInputPath(nil, strings.NewReader("\n"), &bytes.Buffer{})
	require.Error(t, err)
}

func TestCleanPath(t *testing.T) {
	assert.Equal(t, "a.md", cleanPath(" a.md\r\n"))
	assert.Equal(t, "a b.md", cleanPath("'a b.md'"))
	assert.Equal(t, `"a.md`, cleanPath(`"a.md`))
	assert.Equal(t, "", cleanPath(`""`))
}
