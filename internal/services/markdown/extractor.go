// -----------------------------------------------------------------------
// Markdown image extraction and rewriting
// -----------------------------------------------------------------------

package markdown

import (
	"regexp"

	"github.com/ternarybob/mdlocal/internal/models"
)

// remoteImageRegex matches inline images whose target is an http(s) URL.
// Alt text stops at the first "]" and the URL at the first ")".
var remoteImageRegex = regexp.MustCompile(`!\[([^\]]*?)\]\((https?://.*?)\)`)

// Extract returns every remote image reference in text, in order of appearance.
// Repeated references are kept positionally; no match is a normal empty result.
func Extract(text string) []models.ImageReference {
	matches := remoteImageRegex.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}

	refs := make([]models.ImageReference, 0, len(matches))
	for _, match := range matches {
		refs = append(refs, models.ImageReference{
			FullMatch: match[0],
			AltText:   match[1],
			URL:       match[2],
		})
	}

	return refs
}
