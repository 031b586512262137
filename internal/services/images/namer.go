package images

import (
	"fmt"
	"math/rand"
	"path/filepath"
	"regexp"
	"time"
)

const (
	// DefaultAssetDir is the directory, next to the document, that receives downloaded images
	DefaultAssetDir = "assets"

	// DefaultExtension is used when the URL carries no recognisable extension
	DefaultExtension = "jpg"
)

// extensionRegex captures a trailing ".ext" that ends the URL or precedes its query string
var extensionRegex = regexp.MustCompile(`\.(\w+)(?:\?|$)`)

// Namer generates image_<unix-millis>_<0..999>.<ext> filenames.
// Names are unique with high probability only; two calls in the same
// millisecond that draw the same suffix collide.
type Namer struct {
	now  func() time.Time
	intn func(n int) int
}

// NewNamer creates a namer backed by the wall clock and math/rand
func NewNamer() *Namer {
	return &Namer{
		now:  time.Now,
		intn: rand.Intn,
	}
}

// FileName returns a fresh filename for imageURL
func (n *Namer) FileName(imageURL string) string {
	return fmt.Sprintf("image_%d_%d.%s", n.now().UnixMilli(), n.intn(1000), ExtensionFromURL(imageURL))
}

// ExtensionFromURL extracts the file extension (without the dot) from imageURL
func ExtensionFromURL(imageURL string) string {
	match := extensionRegex.FindStringSubmatch(imageURL)
	if len(match) < 2 {
		return DefaultExtension
	}
	return match[1]
}

// AssetDir resolves the asset directory against the document's own directory
func AssetDir(documentDir, name string) string {
	if name == "" {
		name = DefaultAssetDir
	}
	return filepath.Join(documentDir, name)
}

// RelativePath returns fullPath relative to documentDir as a "./"-prefixed,
// forward-slash path suitable for a markdown link
func RelativePath(documentDir, fullPath string) (string, error) {
	rel, err := filepath.Rel(documentDir, fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to compute relative path: %w", err)
	}
	return "./" + filepath.ToSlash(rel), nil
}
