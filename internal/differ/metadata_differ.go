package differ

import (
	"github.com/rs/zerolog"

	"github.com/aleister1102/deckdiff/internal/models"
)

// MetadataDiffer compares the document-level core properties of two decks
// field by field. Absent values are distinct from empty strings.
type MetadataDiffer struct {
	logger zerolog.Logger
}

// NewMetadataDiffer creates a new metadata differ
func NewMetadataDiffer(logger zerolog.Logger) *MetadataDiffer {
	return &MetadataDiffer{
		logger: logger.With().Str("component", "MetadataDiffer").Logger(),
	}
}

// Diff compares the five scalar core properties plus the slide count and
// returns one FieldChange per differing field, in fixed field order.
func (md *MetadataDiffer) Diff(oldMeta, newMeta models.Metadata) models.MetadataDiff {
	changes := make([]models.FieldChange, 0)

	appendIfChanged := func(field string, oldValue, newValue models.FieldValue) {
		if !oldValue.Equal(newValue) {
			changes = append(changes, models.FieldChange{Field: field, Old: oldValue, New: newValue})
		}
	}

	appendIfChanged("title", models.OptionalStringValue(oldMeta.Title), models.OptionalStringValue(newMeta.Title))
	appendIfChanged("author", models.OptionalStringValue(oldMeta.Author), models.OptionalStringValue(newMeta.Author))
	appendIfChanged("last_modified_by", models.OptionalStringValue(oldMeta.LastModifiedBy), models.OptionalStringValue(newMeta.LastModifiedBy))
	appendIfChanged("created", models.OptionalStringValue(oldMeta.Created), models.OptionalStringValue(newMeta.Created))
	appendIfChanged("modified", models.OptionalStringValue(oldMeta.Modified), models.OptionalStringValue(newMeta.Modified))
	appendIfChanged("slide_count", models.IntValue(oldMeta.SlideCount), models.IntValue(newMeta.SlideCount))

	return models.MetadataDiff{Changes: changes}
}
