package differ

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aleister1102/deckdiff/internal/config"
	"github.com/aleister1102/deckdiff/internal/models"
)

func newTestDeckDiffer(t *testing.T) *DeckDiffer {
	t.Helper()
	differ, err := NewDeckDiffer(config.NewDefaultDiffConfig(), zerolog.Nop())
	require.NoError(t, err)
	return differ
}

func researchDeck() *models.Extraction {
	return &models.Extraction{
		FileName: "study_old.pptx",
		Metadata: models.Metadata{
			Title:      strPtr("Research Study"),
			Author:     strPtr("Dr. Smith"),
			SlideCount: 3,
		},
		Slides: []models.Slide{
			{
				Number: 1,
				Layout: "Title Slide",
				Shapes: []models.Shape{
					{Name: "Title 1", Type: "ctrTitle", Text: "Neuroimaging Study of Brain Connectivity"},
					{Name: "Subtitle 2", Type: "subTitle", Text: "Dr. Smith, Department of Neuroscience"},
				},
				Notes: strPtr("Welcome everyone."),
			},
			{
				Number: 2,
				Layout: "Title and Content",
				Shapes: []models.Shape{
					{Name: "Title 1", Type: "title", Text: "Methods"},
					{Name: "Content Placeholder 2", Type: "body", Text: "Participants: 50 healthy adults\nMRI Protocol: 3T scanner"},
				},
				Notes:    strPtr("Explain recruitment criteria"),
				Comments: []string{"Dr. Smith: verify scanner model"},
			},
			{
				Number: 3,
				Layout: "Title and Content",
				Shapes: []models.Shape{
					{Name: "Title 1", Type: "title", Text: "Results"},
					{Name: "Content Placeholder 2", Type: "body", Text: "Significant connectivity differences in DMN"},
				},
				Images: []models.Image{{FileName: "dmn.png", ContentType: "image/png", Hash: "0123456789abcdef0123456789abcdef", Size: 2048}},
			},
		},
	}
}

func TestDeckDiffer_BuildValidation(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.DiffConfig
	}{
		{name: "negative threshold", cfg: config.DiffConfig{SimilarityThreshold: -0.1, TextPreviewLength: 120}},
		{name: "threshold above one", cfg: config.DiffConfig{SimilarityThreshold: 1.1, TextPreviewLength: 120}},
		{name: "zero preview length", cfg: config.DiffConfig{SimilarityThreshold: 0.3, TextPreviewLength: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDeckDiffer(tt.cfg, zerolog.Nop())
			assert.Error(t, err)
		})
	}
}

func TestDeckDiffer_NilInputs(t *testing.T) {
	differ := newTestDeckDiffer(t)

	_, err := differ.Diff(nil, researchDeck())
	assert.Error(t, err)

	_, err = differ.Diff(researchDeck(), nil)
	assert.Error(t, err)
}

func TestDeckDiffer_IdenticalDecks(t *testing.T) {
	differ := newTestDeckDiffer(t)
	deck := researchDeck()

	result, err := differ.Diff(deck, deck)
	require.NoError(t, err)

	assert.Empty(t, result.Slides.Added)
	assert.Empty(t, result.Slides.Deleted)
	assert.Empty(t, result.Slides.Modified)
	assert.Empty(t, result.Metadata.Changes)
	assert.True(t, result.Summary.Identical)
}

func TestDeckDiffer_FullScenario(t *testing.T) {
	differ := newTestDeckDiffer(t)
	oldDeck := researchDeck()

	newDeck := researchDeck()
	newDeck.FileName = "study_new.pptx"
	newDeck.Metadata.Title = strPtr("Research Study v2")
	newDeck.Metadata.SlideCount = 4
	// Edit the methods body text.
	newDeck.Slides[1].Shapes[1].Text = "Participants: 60 healthy adults\nMRI Protocol: 3T scanner"
	// Resolve the old comment, add a new one.
	newDeck.Slides[1].Comments = []string{"Dr. Jones: cite the protocol paper"}
	// Swap the embedded figure for new bytes.
	newDeck.Slides[2].Images = []models.Image{{FileName: "dmn.png", ContentType: "image/png", Hash: "fedcba9876543210fedcba9876543210", Size: 4096}}
	// Append a brand new slide.
	newDeck.Slides = append(newDeck.Slides, models.Slide{
		Number: 4,
		Layout: "Title and Content",
		Shapes: []models.Shape{
			{Name: "Title 1", Type: "title", Text: "Limitations"},
			{Name: "Content Placeholder 2", Type: "body", Text: "Small sample size"},
		},
	})

	result, err := differ.Diff(oldDeck, newDeck)
	require.NoError(t, err)

	assert.Equal(t, "study_old.pptx", result.OldFile)
	assert.Equal(t, "study_new.pptx", result.NewFile)

	// Metadata: title and slide_count changed.
	require.Len(t, result.Metadata.Changes, 2)

	// Slides: one added, none deleted, two modified.
	require.Len(t, result.Slides.Added, 1)
	assert.Equal(t, 4, result.Slides.Added[0].Number)
	assert.Empty(t, result.Slides.Deleted)
	require.Len(t, result.Slides.Modified, 2)

	methods := result.Slides.Modified[0]
	assert.Equal(t, 2, methods.OldNumber)
	assert.Equal(t, 2, methods.NewNumber)
	require.Len(t, methods.ShapesModified, 1)
	assert.Equal(t, []string{"Dr. Jones: cite the protocol paper"}, methods.CommentsAdded)
	assert.Equal(t, []string{"Dr. Smith: verify scanner model"}, methods.CommentsDeleted)

	results := result.Slides.Modified[1]
	assert.Equal(t, 3, results.OldNumber)
	require.Len(t, results.ImagesAdded, 1)
	require.Len(t, results.ImagesDeleted, 1)

	// Summary aggregation.
	summary := result.Summary
	assert.Equal(t, 1, summary.SlidesAdded)
	assert.Equal(t, 0, summary.SlidesDeleted)
	assert.Equal(t, 2, summary.SlidesModified)
	assert.Equal(t, 1, summary.ShapesModified)
	assert.Equal(t, 2, summary.CommentChanges)
	assert.Equal(t, 2, summary.ImageChanges)
	assert.Equal(t, 2, summary.MetadataChanges)
	assert.Equal(t, 0, summary.NotesChanged)
	assert.False(t, summary.Identical)
}

func TestDeckDiffer_TextPreviewTruncation(t *testing.T) {
	cfg := config.NewDefaultDiffConfig()
	cfg.TextPreviewLength = 10
	differ, err := NewDeckDiffer(cfg, zerolog.Nop())
	require.NoError(t, err)

	oldDeck := &models.Extraction{FileName: "old.pptx"}
	newDeck := &models.Extraction{
		FileName: "new.pptx",
		Slides: []models.Slide{
			{
				Number: 1,
				Layout: "Title Slide",
				Shapes: []models.Shape{{Name: "Title", Type: "title", Text: "an extremely long slide title that gets cut"}},
			},
		},
	}

	result, err := differ.Diff(oldDeck, newDeck)
	require.NoError(t, err)

	require.Len(t, result.Slides.Added, 1)
	preview := result.Slides.Added[0].TextPreview
	assert.Equal(t, "an extreme...", preview)
	assert.True(t, strings.HasSuffix(preview, "..."))
}

func TestDeckDiffer_ReorderedSlidesKeepInputOrder(t *testing.T) {
	differ := newTestDeckDiffer(t)
	oldDeck := researchDeck()

	// Reversing the deck breaks the order-preserving alignment: only one
	// slide of the reversed sequence can match, the rest become
	// deletion/addition pairs. Output ordering still follows input order.
	newDeck := researchDeck()
	newDeck.Slides = []models.Slide{oldDeck.Slides[2], oldDeck.Slides[1], oldDeck.Slides[0]}

	result, err := differ.Diff(oldDeck, newDeck)
	require.NoError(t, err)

	assert.Equal(t, len(result.Slides.Added), len(result.Slides.Deleted))
	assert.NotEmpty(t, result.Slides.Added)

	for i := 1; i < len(result.Slides.Deleted); i++ {
		assert.Less(t, result.Slides.Deleted[i-1].Number, result.Slides.Deleted[i].Number)
	}
}
