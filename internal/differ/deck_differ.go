package differ

import (
	"github.com/rs/zerolog"

	"github.com/aleister1102/deckdiff/internal/common"
	"github.com/aleister1102/deckdiff/internal/config"
	"github.com/aleister1102/deckdiff/internal/models"
)

// DeckDiffer runs the full comparison between two extraction snapshots:
// metadata diff, fuzzy slide alignment, per-pair slide comparison, and
// summary aggregation. The comparison itself is a pure function of its
// inputs.
type DeckDiffer struct {
	metadataDiffer *MetadataDiffer
	aligner        *SlideAligner
	comparator     *SlideComparator
	previewLength  int
	logger         zerolog.Logger
}

// DeckDifferBuilder provides a fluent interface for creating DeckDiffer
type DeckDifferBuilder struct {
	cfg    config.DiffConfig
	logger zerolog.Logger
}

// NewDeckDifferBuilder creates a new builder with default configuration
func NewDeckDifferBuilder(logger zerolog.Logger) *DeckDifferBuilder {
	return &DeckDifferBuilder{
		cfg:    config.NewDefaultDiffConfig(),
		logger: logger.With().Str("component", "DeckDiffer").Logger(),
	}
}

// WithDiffConfig sets the diff configuration
func (b *DeckDifferBuilder) WithDiffConfig(cfg config.DiffConfig) *DeckDifferBuilder {
	b.cfg = cfg
	return b
}

// Build creates a new DeckDiffer instance
func (b *DeckDifferBuilder) Build() (*DeckDiffer, error) {
	if b.cfg.SimilarityThreshold < 0 || b.cfg.SimilarityThreshold > 1 {
		return nil, common.NewValidationError("similarity_threshold", b.cfg.SimilarityThreshold, "must be between 0 and 1")
	}
	if b.cfg.TextPreviewLength <= 0 {
		return nil, common.NewValidationError("text_preview_length", b.cfg.TextPreviewLength, "must be positive")
	}

	shapeMatcher := NewShapeMatcher(NewWordDiffEngine(), b.logger)

	return &DeckDiffer{
		metadataDiffer: NewMetadataDiffer(b.logger),
		aligner:        NewSlideAligner(b.cfg.SimilarityThreshold, b.logger),
		comparator:     NewSlideComparator(shapeMatcher, b.logger),
		previewLength:  b.cfg.TextPreviewLength,
		logger:         b.logger,
	}, nil
}

// NewDeckDiffer creates a new DeckDiffer instance using builder pattern
func NewDeckDiffer(cfg config.DiffConfig, logger zerolog.Logger) (*DeckDiffer, error) {
	return NewDeckDifferBuilder(logger).
		WithDiffConfig(cfg).
		Build()
}

// Diff compares two extraction snapshots and returns the aggregated result.
func (dd *DeckDiffer) Diff(oldExtraction, newExtraction *models.Extraction) (*models.DiffResult, error) {
	if oldExtraction == nil {
		return nil, common.NewValidationError("old_extraction", oldExtraction, "extraction cannot be nil")
	}
	if newExtraction == nil {
		return nil, common.NewValidationError("new_extraction", newExtraction, "extraction cannot be nil")
	}

	result := &models.DiffResult{
		OldFile: oldExtraction.FileName,
		NewFile: newExtraction.FileName,
		Slides: models.SlidesDiff{
			Added:    make([]models.SlideEntry, 0),
			Deleted:  make([]models.SlideEntry, 0),
			Modified: make([]models.SlideModification, 0),
		},
	}

	result.Metadata = dd.metadataDiffer.Diff(oldExtraction.Metadata, newExtraction.Metadata)

	pairs := dd.aligner.Align(oldExtraction.Slides, newExtraction.Slides)
	for _, pair := range pairs {
		switch {
		case pair.IsDeletion():
			result.Slides.Deleted = append(result.Slides.Deleted, dd.slideEntry(oldExtraction.Slides[pair.Old]))
		case pair.IsAddition():
			result.Slides.Added = append(result.Slides.Added, dd.slideEntry(newExtraction.Slides[pair.New]))
		default:
			if mod := dd.comparator.Compare(oldExtraction.Slides[pair.Old], newExtraction.Slides[pair.New]); mod != nil {
				result.Slides.Modified = append(result.Slides.Modified, *mod)
			}
		}
	}

	result.Summary = buildSummary(result)

	dd.logger.Info().
		Str("old_file", result.OldFile).
		Str("new_file", result.NewFile).
		Int("slides_added", result.Summary.SlidesAdded).
		Int("slides_deleted", result.Summary.SlidesDeleted).
		Int("slides_modified", result.Summary.SlidesModified).
		Int("metadata_changes", result.Summary.MetadataChanges).
		Bool("identical", result.Summary.Identical).
		Msg("Deck comparison completed")

	return result, nil
}

func (dd *DeckDiffer) slideEntry(slide models.Slide) models.SlideEntry {
	return models.SlideEntry{
		Number:      slide.Number,
		Layout:      slide.Layout,
		TextPreview: truncateText(slide.Text(), dd.previewLength),
	}
}

// truncateText shortens s to at most limit characters, appending an ellipsis
// when anything was cut.
func truncateText(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}

// buildSummary aggregates change counts over the whole result. Identical is
// true only when no tracked dimension changed anywhere.
func buildSummary(result *models.DiffResult) models.DiffSummary {
	summary := models.DiffSummary{
		SlidesAdded:     len(result.Slides.Added),
		SlidesDeleted:   len(result.Slides.Deleted),
		SlidesModified:  len(result.Slides.Modified),
		MetadataChanges: len(result.Metadata.Changes),
	}

	for _, mod := range result.Slides.Modified {
		summary.ShapesAdded += len(mod.ShapesAdded)
		summary.ShapesDeleted += len(mod.ShapesDeleted)
		summary.ShapesModified += len(mod.ShapesModified)
		if mod.NotesChange != nil {
			summary.NotesChanged++
		}
		summary.CommentChanges += len(mod.CommentsAdded) + len(mod.CommentsDeleted)
		summary.ImageChanges += len(mod.ImagesAdded) + len(mod.ImagesDeleted)
	}

	summary.Identical = summary.SlidesAdded == 0 &&
		summary.SlidesDeleted == 0 &&
		summary.SlidesModified == 0 &&
		summary.MetadataChanges == 0

	return summary
}
