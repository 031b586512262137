package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ternarybob/mdlocal/internal/models"
)

func TestRewrite_SingleReference(t *testing.T) {
	input := "Intro\n\n![A](http://x/y.png)\n"
	refs := Extract(input)
	replacements := models.ReplacementMap{"http://x/y.png": "./assets/image_123_45.png"}

	result := Rewrite(input, refs, replacements)
	assert.Equal(t, "Intro\n\n![A](./assets/image_123_45.png)\n", result)
}

func TestRewrite_FailedDownloadIsNoOp(t *testing.T) {
	input := "![A](http://x/y.png) ![B](http://x/z.png)"
	refs := Extract(input)
	replacements := models.ReplacementMap{
		"http://x/y.png": "http://x/y.png",
		"http://x/z.png": "./assets/image_1_1.png",
	}

	result := Rewrite(input, refs, replacements)
	assert.Equal(t, "![A](http://x/y.png) ![B](./assets/image_1_1.png)", result)
}

func TestRewrite_MissingEntryIsNoOp(t *testing.T) {
	input := "![A](http://x/y.png)"

	result := Rewrite(input, Extract(input), models.ReplacementMap{})
	assert.Equal(t, input, result)
}

func TestRewrite_ReplacesAllOccurrences(t *testing.T) {
	input := "![logo](https://x/logo.svg)\ntext\n![logo](https://x/logo.svg)\n![other alt](https://x/logo.svg)\n"
	refs := Extract(input)
	replacements := models.ReplacementMap{"https://x/logo.svg": "./assets/image_9_9.svg"}

	result := Rewrite(input, refs, replacements)
	expected := "![logo](./assets/image_9_9.svg)\ntext\n![logo](./assets/image_9_9.svg)\n![other alt](./assets/image_9_9.svg)\n"
	assert.Equal(t, expected, result)
}

func TestRewrite_LeavesLocalImagesAlone(t *testing.T) {
	input := "![a](./local.png) ![b](http://x/b.jpg)"
	replacements := models.ReplacementMap{"http://x/b.jpg": "./assets/image_2_3.jpg"}

	result := Rewrite(input, Extract(input), replacements)
	assert.Equal(t, "![a](./local.png) ![b](./assets/image_2_3.jpg)", result)
}

func TestRewrite_ConvertedReferencesDoNotExtractAgain(t *testing.T) {
	input := "![a](http://x/1.png)\n![b](https://x/2.jpeg?x=1)\n![c](http://x/3.gif)\n"
	refs := Extract(input)
	replacements := models.ReplacementMap{
		"http://x/1.png":       "./assets/image_1_1.png",
		"https://x/2.jpeg?x=1": "./assets/image_1_2.jpeg",
		"http://x/3.gif":       "http://x/3.gif",
	}

	output := Rewrite(input, refs, replacements)

	remaining := Extract(output)
	assert.Len(t, remaining, 1)
	assert.Equal(t, "http://x/3.gif", remaining[0].URL)
}
