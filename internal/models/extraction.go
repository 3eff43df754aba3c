package models

import "strings"

// Extraction is an immutable snapshot of a presentation's content as
// produced by the extractor. The differ consumes it read-only and never
// mutates or re-validates it.
type Extraction struct {
	FileName string   `json:"file_name"`
	Metadata Metadata `json:"metadata"`
	Slides   []Slide  `json:"slides"`
}

// Metadata holds the document-level core properties of a presentation.
// Pointer fields distinguish an absent property from an empty string.
type Metadata struct {
	Title          *string `json:"title,omitempty"`
	Author         *string `json:"author,omitempty"`
	LastModifiedBy *string `json:"last_modified_by,omitempty"`
	Created        *string `json:"created,omitempty"`
	Modified       *string `json:"modified,omitempty"`
	SlideCount     int     `json:"slide_count"`
}

// Slide is one slide's extracted content in presentation order.
type Slide struct {
	Number   int      `json:"number"` // 1-based position in the deck
	Layout   string   `json:"layout"`
	Shapes   []Shape  `json:"shapes"`
	Notes    *string  `json:"notes,omitempty"`
	Comments []string `json:"comments,omitempty"` // rendered as "author: text"
	Images   []Image  `json:"images,omitempty"`
}

// Text returns the concatenated text of all shapes on the slide, one shape
// per line, skipping shapes without text.
func (s Slide) Text() string {
	parts := make([]string, 0, len(s.Shapes))
	for _, shape := range s.Shapes {
		if shape.Text != "" {
			parts = append(parts, shape.Text)
		}
	}
	return strings.Join(parts, "\n")
}

// Shape is a named drawing element carrying text. Shapes with an empty name
// are excluded from identity-based matching.
type Shape struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Text string `json:"text"`
}

// Image is an embedded picture. Identity is the content hash, not the file
// name: a renamed but byte-identical image is the same image.
type Image struct {
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	Hash        string `json:"hash"` // hex-encoded SHA-256 of the raw bytes
	Size        int64  `json:"size"`
}
