package differ

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/aleister1102/deckdiff/internal/models"
)

// imageHashPreviewLen is how many hex characters of an image's content hash
// appear in rendered image entries.
const imageHashPreviewLen = 12

// SlideComparator diffs an aligned slide pair across its four tracked
// dimensions: shapes, speaker notes, comments, and embedded images.
type SlideComparator struct {
	shapeMatcher *ShapeMatcher
	logger       zerolog.Logger
}

// NewSlideComparator creates a new slide comparator
func NewSlideComparator(shapeMatcher *ShapeMatcher, logger zerolog.Logger) *SlideComparator {
	return &SlideComparator{
		shapeMatcher: shapeMatcher,
		logger:       logger.With().Str("component", "SlideComparator").Logger(),
	}
}

// Compare returns the modification between two aligned slides, or nil when
// no tracked dimension differs. Layout alone is not diffed: a pair whose
// only difference is the layout name still counts as identical.
func (sc *SlideComparator) Compare(oldSlide, newSlide models.Slide) *models.SlideModification {
	mod := models.SlideModification{
		OldNumber: oldSlide.Number,
		NewNumber: newSlide.Number,
		Layout:    newSlide.Layout,
	}
	changed := false

	added, deleted, modified := sc.shapeMatcher.DiffShapes(oldSlide.Shapes, newSlide.Shapes)
	if len(added) > 0 || len(deleted) > 0 || len(modified) > 0 {
		mod.ShapesAdded = added
		mod.ShapesDeleted = deleted
		mod.ShapesModified = modified
		changed = true
	}

	if !equalOptionalString(oldSlide.Notes, newSlide.Notes) {
		mod.NotesChange = &models.NotesChange{Old: oldSlide.Notes, New: newSlide.Notes}
		changed = true
	}

	mod.CommentsAdded = stringSetDifference(newSlide.Comments, oldSlide.Comments)
	mod.CommentsDeleted = stringSetDifference(oldSlide.Comments, newSlide.Comments)
	if len(mod.CommentsAdded) > 0 || len(mod.CommentsDeleted) > 0 {
		changed = true
	}

	mod.ImagesAdded = imageSetDifference(newSlide.Images, oldSlide.Images)
	mod.ImagesDeleted = imageSetDifference(oldSlide.Images, newSlide.Images)
	if len(mod.ImagesAdded) > 0 || len(mod.ImagesDeleted) > 0 {
		changed = true
	}

	if !changed {
		return nil
	}
	return &mod
}

// equalOptionalString compares optional strings where absent and empty are
// distinct states.
func equalOptionalString(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// stringSetDifference returns the members of a that are absent from b,
// deduplicated, in a's original order.
func stringSetDifference(a, b []string) []string {
	other := make(map[string]struct{}, len(b))
	for _, s := range b {
		other[s] = struct{}{}
	}

	var out []string
	seen := make(map[string]struct{}, len(a))
	for _, s := range a {
		if _, ok := other[s]; ok {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// imageSetDifference returns rendered entries for images of a whose content
// hash does not occur in b, deduplicated by hash, in a's original order. A
// renamed but byte-identical image is never reported.
func imageSetDifference(a, b []models.Image) []string {
	other := make(map[string]struct{}, len(b))
	for _, img := range b {
		other[img.Hash] = struct{}{}
	}

	var out []string
	seen := make(map[string]struct{}, len(a))
	for _, img := range a {
		if _, ok := other[img.Hash]; ok {
			continue
		}
		if _, dup := seen[img.Hash]; dup {
			continue
		}
		seen[img.Hash] = struct{}{}
		out = append(out, formatImageEntry(img))
	}
	return out
}

// formatImageEntry renders an image reference with a truncated content hash,
// e.g. "chart.png (image/png, sha256:9f86d081884c...)".
func formatImageEntry(img models.Image) string {
	hash := img.Hash
	if len(hash) > imageHashPreviewLen {
		hash = hash[:imageHashPreviewLen] + "..."
	}
	return fmt.Sprintf("%s (%s, sha256:%s)", img.FileName, img.ContentType, hash)
}
