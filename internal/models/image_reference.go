package models

// ImageReference is one `![alt](url)` occurrence found in a markdown document.
// Values are immutable once extracted.
type ImageReference struct {
	FullMatch string `json:"full_match"` // Exact markup as it appears in the source text
	AltText   string `json:"alt_text"`
	URL       string `json:"url"` // Always http:// or https://
}

// ReplacementMap maps a source image URL to the path written back into the document.
// A URL that failed to download maps to itself.
type ReplacementMap map[string]string

// Converted reports whether url has an entry that differs from the url itself
func (m ReplacementMap) Converted(url string) bool {
	replacement, ok := m[url]
	return ok && replacement != url
}
