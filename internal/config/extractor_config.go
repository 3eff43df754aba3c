package config

// ExtractorConfig defines which optional slide dimensions are extracted.
// Disabling a dimension removes it from both snapshots, so it never shows
// up in a diff.
type ExtractorConfig struct {
	IncludeNotes    bool `json:"include_notes" yaml:"include_notes"`
	IncludeComments bool `json:"include_comments" yaml:"include_comments"`
	IncludeImages   bool `json:"include_images" yaml:"include_images"`
}

// NewDefaultExtractorConfig creates default extractor configuration
func NewDefaultExtractorConfig() ExtractorConfig {
	return ExtractorConfig{
		IncludeNotes:    true,
		IncludeComments: true,
		IncludeImages:   true,
	}
}
