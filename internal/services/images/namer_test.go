package images

import (
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtensionFromURL(t *testing.T) {
	tests := []struct {
		url      string
		expected string
	}{
		{"http://x/y.png", "png"},
		{"https://cdn.example.com/a/pic.jpeg?x=1", "jpeg"},
		{"https://cdn.example.com/a/anim.gif", "gif"},
		{"https://cdn.example.com/a/photo", "jpg"},
		{"https://cdn.example.com/a/photo?format=webp", "jpg"},
		{"https://cdn.example.com/archive.tar.gz", "gz"},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtensionFromURL(tt.url))
		})
	}
}

func TestNamer_FileName(t *testing.T) {
	fixed := time.UnixMilli(1700000000123)
	namer := &Namer{
		now:  func() time.Time { return fixed },
		intn: func(n int) int { return 45 },
	}

	assert.Equal(t, "image_1700000000123_45.png", namer.FileName("http://x/y.png"))
	assert.Equal(t, "image_1700000000123_45.jpg", namer.FileName("http://x/noext"))
}

func TestNamer_DefaultFormat(t *testing.T) {
	name := NewNamer().FileName("https://example.com/pic.webp?w=100")

	assert.Regexp(t, regexp.MustCompile(`^image_\d+_\d{1,3}\.webp$`), name)
}

func TestAssetDir(t *testing.T) {
	docDir := filepath.Join("notes", "2024")

	assert.Equal(t, filepath.Join(docDir, "assets"), AssetDir(docDir, ""))
	assert.Equal(t, filepath.Join(docDir, "img"), AssetDir(docDir, "img"))
}

func TestRelativePath(t *testing.T) {
	docDir := t.TempDir()
	full := filepath.Join(docDir, "assets", "image_123_45.jpg")

	rel, err := RelativePath(docDir, full)
	require.NoError(t, err)
	assert.Equal(t, "./assets/image_123_45.jpg", rel)
}

func TestRelativePath_NestedAssetDir(t *testing.T) {
	docDir := t.TempDir()
	full := filepath.Join(docDir, "static", "img", "image_1_2.png")

	rel, err := RelativePath(docDir, full)
	require.NoError(t, err)
	assert.Equal(t, "./static/img/image_1_2.png", rel)
}
