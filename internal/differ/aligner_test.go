package differ

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aleister1102/deckdiff/internal/config"
	"github.com/aleister1102/deckdiff/internal/models"
)

func newTestAligner() *SlideAligner {
	return NewSlideAligner(config.DefaultSimilarityThreshold, zerolog.Nop())
}

func textSlide(number int, layout, text string) models.Slide {
	return models.Slide{
		Number: number,
		Layout: layout,
		Shapes: []models.Shape{{Name: "Content", Type: "body", Text: text}},
	}
}

func TestSlideAligner_IdenticalDecks(t *testing.T) {
	aligner := newTestAligner()
	slides := []models.Slide{
		textSlide(1, "Title Slide", "Research Study"),
		textSlide(2, "Title and Content", "Methods and recruitment"),
		textSlide(3, "Title and Content", "Results and findings"),
	}

	pairs := aligner.Align(slides, slides)

	require.Len(t, pairs, 3)
	for i, pair := range pairs {
		assert.Equal(t, i, pair.Old)
		assert.Equal(t, i, pair.New)
	}
}

func TestSlideAligner_NoSimilarity(t *testing.T) {
	aligner := newTestAligner()
	oldSlides := []models.Slide{
		textSlide(1, "Layout A", "alpha beta gamma"),
		textSlide(2, "Layout A", "delta epsilon zeta"),
	}
	newSlides := []models.Slide{
		textSlide(1, "Layout B", "one two three"),
		textSlide(2, "Layout B", "four five six"),
		textSlide(3, "Layout B", "seven eight nine"),
	}

	pairs := aligner.Align(oldSlides, newSlides)

	require.Len(t, pairs, 5)
	deletions, additions, matches := 0, 0, 0
	for _, pair := range pairs {
		switch {
		case pair.IsDeletion():
			deletions++
		case pair.IsAddition():
			additions++
		default:
			matches++
		}
	}
	assert.Equal(t, 2, deletions)
	assert.Equal(t, 3, additions)
	assert.Equal(t, 0, matches)
}

func TestSlideAligner_Monotonicity(t *testing.T) {
	aligner := newTestAligner()
	oldSlides := []models.Slide{
		textSlide(1, "L", "intro welcome overview agenda"),
		textSlide(2, "L", "methods participants scanner protocol"),
		textSlide(3, "L", "results connectivity differences significant"),
		textSlide(4, "L", "discussion implications future work"),
	}
	newSlides := []models.Slide{
		textSlide(1, "L", "intro welcome overview agenda updated"),
		textSlide(2, "L", "completely unrelated new material here"),
		textSlide(3, "L", "results connectivity differences significant"),
		textSlide(4, "L", "discussion implications future work extended"),
	}

	pairs := aligner.Align(oldSlides, newSlides)

	lastOld, lastNew := -1, -1
	for _, pair := range pairs {
		if !pair.IsAddition() {
			assert.Greater(t, pair.Old, lastOld, "old indices must be strictly increasing")
			lastOld = pair.Old
		}
		if !pair.IsDeletion() {
			assert.Greater(t, pair.New, lastNew, "new indices must be strictly increasing")
			lastNew = pair.New
		}
	}
}

func TestSlideAligner_EveryIndexAppearsOnce(t *testing.T) {
	aligner := newTestAligner()
	oldSlides := []models.Slide{
		textSlide(1, "L", "shared words on this slide"),
		textSlide(2, "L", "unique old content entirely"),
		textSlide(3, "L", "closing remarks thanks questions"),
	}
	newSlides := []models.Slide{
		textSlide(1, "L", "brand new opener slide"),
		textSlide(2, "L", "shared words on this slide"),
		textSlide(3, "L", "closing remarks thanks questions"),
	}

	pairs := aligner.Align(oldSlides, newSlides)

	oldSeen := make(map[int]int)
	newSeen := make(map[int]int)
	for _, pair := range pairs {
		if !pair.IsAddition() {
			oldSeen[pair.Old]++
		}
		if !pair.IsDeletion() {
			newSeen[pair.New]++
		}
	}
	assert.Len(t, oldSeen, len(oldSlides))
	assert.Len(t, newSeen, len(newSlides))
	for _, count := range oldSeen {
		assert.Equal(t, 1, count)
	}
	for _, count := range newSeen {
		assert.Equal(t, 1, count)
	}
}

func TestSlideAligner_InsertionInMiddle(t *testing.T) {
	aligner := newTestAligner()
	oldSlides := []models.Slide{
		textSlide(1, "L", "first slide content here"),
		textSlide(2, "L", "second slide content here"),
	}
	newSlides := []models.Slide{
		textSlide(1, "L", "first slide content here"),
		textSlide(2, "L", "inserted brand new material"),
		textSlide(3, "L", "second slide content here"),
	}

	pairs := aligner.Align(oldSlides, newSlides)

	require.Len(t, pairs, 3)
	assert.Equal(t, AlignedPair{Old: 0, New: 0}, pairs[0])
	assert.True(t, pairs[1].IsAddition())
	assert.Equal(t, 1, pairs[1].New)
	assert.Equal(t, AlignedPair{Old: 1, New: 2}, pairs[2])
}

func TestSlideAligner_DeletionsBeforeAdditionsAtGap(t *testing.T) {
	aligner := newTestAligner()
	oldSlides := []models.Slide{
		textSlide(1, "L", "anchor slide stays put"),
		textSlide(2, "L", "old exclusive content removed"),
		textSlide(3, "L", "tail slide stays put"),
	}
	newSlides := []models.Slide{
		textSlide(1, "L", "anchor slide stays put"),
		textSlide(2, "L", "fresh inserted material arrives"),
		textSlide(3, "L", "tail slide stays put"),
	}

	pairs := aligner.Align(oldSlides, newSlides)

	require.Len(t, pairs, 4)
	assert.Equal(t, AlignedPair{Old: 0, New: 0}, pairs[0])
	assert.True(t, pairs[1].IsDeletion(), "deletion must precede addition at a gap")
	assert.True(t, pairs[2].IsAddition())
	assert.Equal(t, AlignedPair{Old: 2, New: 2}, pairs[3])
}

func TestSlideAligner_JaccardBoundary(t *testing.T) {
	aligner := newTestAligner()

	t.Run("ratio one third on same layout matches", func(t *testing.T) {
		// {hello, world} vs {hello, there}: intersection 1, union 3,
		// ratio 0.333... >= 0.3.
		oldSlides := []models.Slide{textSlide(1, "L", "hello world")}
		newSlides := []models.Slide{textSlide(1, "L", "hello there")}

		pairs := aligner.Align(oldSlides, newSlides)

		require.Len(t, pairs, 1)
		assert.Equal(t, AlignedPair{Old: 0, New: 0}, pairs[0])
	})

	t.Run("ratio below threshold on differing layouts splits", func(t *testing.T) {
		// intersection 1, union 5: ratio 0.2 < 0.3.
		oldSlides := []models.Slide{textSlide(1, "Layout A", "hello alpha beta")}
		newSlides := []models.Slide{textSlide(1, "Layout B", "hello gamma delta")}

		pairs := aligner.Align(oldSlides, newSlides)

		require.Len(t, pairs, 2)
		assert.True(t, pairs[0].IsDeletion())
		assert.True(t, pairs[1].IsAddition())
	})
}

func TestSlideAligner_BlankSlides(t *testing.T) {
	aligner := newTestAligner()

	t.Run("both blank same layout match", func(t *testing.T) {
		oldSlides := []models.Slide{textSlide(1, "Blank", "")}
		newSlides := []models.Slide{textSlide(1, "Blank", "   \n\t")}

		pairs := aligner.Align(oldSlides, newSlides)

		require.Len(t, pairs, 1)
		assert.Equal(t, AlignedPair{Old: 0, New: 0}, pairs[0])
	})

	t.Run("both blank differing layouts split", func(t *testing.T) {
		oldSlides := []models.Slide{textSlide(1, "Blank", "")}
		newSlides := []models.Slide{textSlide(1, "Title Slide", "")}

		pairs := aligner.Align(oldSlides, newSlides)

		require.Len(t, pairs, 2)
		assert.True(t, pairs[0].IsDeletion())
		assert.True(t, pairs[1].IsAddition())
	})

	t.Run("one blank never matches", func(t *testing.T) {
		oldSlides := []models.Slide{textSlide(1, "L", "")}
		newSlides := []models.Slide{textSlide(1, "L", "now with content")}

		pairs := aligner.Align(oldSlides, newSlides)

		require.Len(t, pairs, 2)
		assert.True(t, pairs[0].IsDeletion())
		assert.True(t, pairs[1].IsAddition())
	})
}

func TestSlideAligner_IdenticalTextDifferentLayoutStillMatches(t *testing.T) {
	aligner := newTestAligner()
	// Word sets are identical, so the Jaccard ratio is 1.0 regardless of
	// layout.
	oldSlides := []models.Slide{textSlide(1, "Layout A", "same exact words")}
	newSlides := []models.Slide{textSlide(1, "Layout B", "same exact words")}

	pairs := aligner.Align(oldSlides, newSlides)

	require.Len(t, pairs, 1)
	assert.Equal(t, AlignedPair{Old: 0, New: 0}, pairs[0])
}

func TestSlideAligner_EmptyInputs(t *testing.T) {
	aligner := newTestAligner()

	assert.Empty(t, aligner.Align(nil, nil))

	pairs := aligner.Align(nil, []models.Slide{textSlide(1, "L", "only new")})
	require.Len(t, pairs, 1)
	assert.True(t, pairs[0].IsAddition())

	pairs = aligner.Align([]models.Slide{textSlide(1, "L", "only old")}, nil)
	require.Len(t, pairs, 1)
	assert.True(t, pairs[0].IsDeletion())
}
