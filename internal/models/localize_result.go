package models

// StoredImage represents a downloaded and stored image
type StoredImage struct {
	OriginalURL string `json:"original_url"`
	LocalPath   string `json:"local_path"` // "./"-prefixed path relative to the document directory
	FullPath    string `json:"full_path"`
	Size        int64  `json:"size"`
	Error       string `json:"error,omitempty"`
}

// LocalizeResult summarises a single localize run over one document
type LocalizeResult struct {
	RunID      string `json:"run_id"`
	InputPath  string `json:"input_path"`
	OutputPath string `json:"output_path,omitempty"` // Empty when nothing was written

	Found     int `json:"found"`     // Image references matched, duplicates included
	Converted int `json:"converted"` // References rewritten to a local path
	Failed    int `json:"failed"`    // References left pointing at the remote URL
	Remaining int `json:"remaining"` // Remote images still present in the output document

	Images []StoredImage `json:"images,omitempty"` // One entry per distinct URL attempted
}
