package markdown

import (
	"strings"

	"github.com/ternarybob/mdlocal/internal/models"
)

// Rewrite replaces each reference's markup with `![alt](replacement)`.
// Every occurrence of an identical markup string is replaced, so duplicates
// always end up pointing at the same file. References whose URL has no entry,
// or maps to itself, are left untouched.
func Rewrite(text string, refs []models.ImageReference, replacements models.ReplacementMap) string {
	for _, ref := range refs {
		if !replacements.Converted(ref.URL) {
			continue
		}
		text = strings.ReplaceAll(text, ref.FullMatch, imageMarkup(ref.AltText, replacements[ref.URL]))
	}
	return text
}

func imageMarkup(alt, target string) string {
	return "![" + alt + "](" + target + ")"
}
