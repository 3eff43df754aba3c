package config

// DiffConfig defines tuning for slide alignment and preview rendering.
type DiffConfig struct {
	// SimilarityThreshold is the inclusive Jaccard ratio above which two
	// slides with overlapping word sets are considered the same slide.
	SimilarityThreshold float64 `json:"similarity_threshold,omitempty" yaml:"similarity_threshold,omitempty" validate:"gte=0,lte=1"`
	// TextPreviewLength is the maximum number of characters in the text
	// preview of added/deleted slides.
	TextPreviewLength int `json:"text_preview_length,omitempty" yaml:"text_preview_length,omitempty" validate:"gt=0"`
}

// NewDefaultDiffConfig creates default diff configuration
func NewDefaultDiffConfig() DiffConfig {
	return DiffConfig{
		SimilarityThreshold: DefaultSimilarityThreshold,
		TextPreviewLength:   DefaultTextPreviewLength,
	}
}
