package differ

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/aleister1102/deckdiff/internal/models"
)

// gapIndex marks the missing side of an alignment pair.
const gapIndex = -1

// AlignedPair couples an old slide index with a new slide index. A gapIndex
// on the new side is a deletion, on the old side an addition.
type AlignedPair struct {
	Old int
	New int
}

// IsDeletion reports whether the pair has no counterpart in the new deck.
func (p AlignedPair) IsDeletion() bool { return p.New == gapIndex }

// IsAddition reports whether the pair has no counterpart in the old deck.
func (p AlignedPair) IsAddition() bool { return p.Old == gapIndex }

// SlideAligner computes a fuzzy, order-preserving alignment of two slide
// sequences. Slides are matched by a similarity predicate instead of exact
// equality, so edited slides still pair up.
type SlideAligner struct {
	threshold float64
	logger    zerolog.Logger
}

// NewSlideAligner creates a new slide aligner with the given inclusive
// Jaccard similarity threshold.
func NewSlideAligner(threshold float64, logger zerolog.Logger) *SlideAligner {
	return &SlideAligner{
		threshold: threshold,
		logger:    logger.With().Str("component", "SlideAligner").Logger(),
	}
}

// slideKey precomputes the per-slide data the similarity predicate needs, so
// the O(m*n) table fill does not re-tokenize slide text.
type slideKey struct {
	text   string
	layout string
	blank  bool
	words  map[string]struct{}
}

func buildSlideKeys(slides []models.Slide) []slideKey {
	keys := make([]slideKey, len(slides))
	for i, slide := range slides {
		text := slide.Text()
		key := slideKey{
			text:   text,
			layout: slide.Layout,
			blank:  strings.TrimSpace(text) == "",
		}
		if !key.blank {
			words := strings.Fields(text)
			key.words = make(map[string]struct{}, len(words))
			for _, w := range words {
				key.words[w] = struct{}{}
			}
		}
		keys[i] = key
	}
	return keys
}

// Align returns the full ordered alignment of both slide sequences. Every
// old index and every new index appears exactly once; relative order of both
// inputs is preserved, and deletions precede additions at any gap.
func (sa *SlideAligner) Align(oldSlides, newSlides []models.Slide) []AlignedPair {
	oldKeys := buildSlideKeys(oldSlides)
	newKeys := buildSlideKeys(newSlides)

	matches := longestCommonSubsequence(len(oldSlides), len(newSlides), func(i, j int) bool {
		return sa.similar(oldKeys[i], newKeys[j])
	})

	pairs := make([]AlignedPair, 0, len(oldSlides)+len(newSlides))
	oldCursor, newCursor := 0, 0
	for _, m := range matches {
		for ; oldCursor < m.Old; oldCursor++ {
			pairs = append(pairs, AlignedPair{Old: oldCursor, New: gapIndex})
		}
		for ; newCursor < m.New; newCursor++ {
			pairs = append(pairs, AlignedPair{Old: gapIndex, New: newCursor})
		}
		pairs = append(pairs, AlignedPair{Old: m.Old, New: m.New})
		oldCursor, newCursor = m.Old+1, m.New+1
	}
	for ; oldCursor < len(oldSlides); oldCursor++ {
		pairs = append(pairs, AlignedPair{Old: oldCursor, New: gapIndex})
	}
	for ; newCursor < len(newSlides); newCursor++ {
		pairs = append(pairs, AlignedPair{Old: gapIndex, New: newCursor})
	}

	sa.logger.Debug().
		Int("old_slides", len(oldSlides)).
		Int("new_slides", len(newSlides)).
		Int("matches", len(matches)).
		Msg("Slide alignment computed")

	return pairs
}

// similar decides whether two slides count as the same slide:
//  1. identical text and identical layout,
//  2. both blank: layouts must match,
//  3. exactly one blank: never similar,
//  4. otherwise Jaccard word-set overlap at or above the threshold.
func (sa *SlideAligner) similar(a, b slideKey) bool {
	if a.text == b.text && a.layout == b.layout {
		return true
	}
	if a.blank && b.blank {
		return a.layout == b.layout
	}
	if a.blank != b.blank {
		return false
	}
	if len(a.words) == 0 && len(b.words) == 0 {
		return true
	}

	intersection := 0
	for w := range a.words {
		if _, ok := b.words[w]; ok {
			intersection++
		}
	}
	union := len(a.words) + len(b.words) - intersection
	return float64(intersection)/float64(union) >= sa.threshold
}
