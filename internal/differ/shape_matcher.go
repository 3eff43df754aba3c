package differ

import (
	"github.com/rs/zerolog"

	"github.com/aleister1102/deckdiff/internal/models"
)

// ShapeMatcher computes a name-keyed set diff of two shape lists. Shape
// identity is the name: unnamed shapes never participate, and when several
// shapes share a name only the first occurrence does.
type ShapeMatcher struct {
	wordDiff *WordDiffEngine
	logger   zerolog.Logger
}

// NewShapeMatcher creates a new shape matcher
func NewShapeMatcher(wordDiff *WordDiffEngine, logger zerolog.Logger) *ShapeMatcher {
	return &ShapeMatcher{
		wordDiff: wordDiff,
		logger:   logger.With().Str("component", "ShapeMatcher").Logger(),
	}
}

// DiffShapes returns the added, deleted, and modified shapes between the two
// lists. Deleted and modified entries come out in old input order, added
// entries in new input order, so output is reproducible run to run.
func (sm *ShapeMatcher) DiffShapes(oldShapes, newShapes []models.Shape) (added []models.ShapeEntry, deleted []models.ShapeEntry, modified []models.ShapeModification) {
	oldByName := shapesByName(oldShapes)
	newByName := shapesByName(newShapes)

	visited := make(map[string]struct{}, len(oldByName))
	for _, shape := range oldShapes {
		if shape.Name == "" {
			continue
		}
		if _, dup := visited[shape.Name]; dup {
			continue
		}
		visited[shape.Name] = struct{}{}

		counterpart, ok := newByName[shape.Name]
		if !ok {
			deleted = append(deleted, shapeEntry(shape))
			continue
		}
		if shape.Text != counterpart.Text {
			modified = append(modified, models.ShapeModification{
				Name:        shape.Name,
				OldText:     shape.Text,
				NewText:     counterpart.Text,
				WordChanges: sm.wordDiff.Diff(shape.Text, counterpart.Text),
			})
		}
	}

	visited = make(map[string]struct{}, len(newByName))
	for _, shape := range newShapes {
		if shape.Name == "" {
			continue
		}
		if _, dup := visited[shape.Name]; dup {
			continue
		}
		visited[shape.Name] = struct{}{}

		if _, ok := oldByName[shape.Name]; !ok {
			added = append(added, shapeEntry(shape))
		}
	}

	return added, deleted, modified
}

// shapesByName indexes shapes by name, skipping unnamed shapes and keeping
// the first occurrence per duplicate name.
func shapesByName(shapes []models.Shape) map[string]models.Shape {
	byName := make(map[string]models.Shape, len(shapes))
	for _, shape := range shapes {
		if shape.Name == "" {
			continue
		}
		if _, ok := byName[shape.Name]; ok {
			continue
		}
		byName[shape.Name] = shape
	}
	return byName
}

func shapeEntry(shape models.Shape) models.ShapeEntry {
	return models.ShapeEntry{Name: shape.Name, Type: shape.Type, Text: shape.Text}
}
