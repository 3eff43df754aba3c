package differ

import (
	"strings"

	"github.com/aleister1102/deckdiff/internal/models"
)

// WordDiffEngine produces ordered word-level changes between two text
// fragments. It is stateless and safe for concurrent use.
type WordDiffEngine struct{}

// NewWordDiffEngine creates a new word diff engine
func NewWordDiffEngine() *WordDiffEngine {
	return &WordDiffEngine{}
}

// Diff tokenizes both texts on runs of whitespace and returns the word
// changes transforming the old word sequence into the new one. Each delete
// that is immediately followed by an add is collapsed into a replace.
func (e *WordDiffEngine) Diff(oldText, newText string) []models.WordChange {
	oldWords := strings.Fields(oldText)
	newWords := strings.Fields(newText)

	matches := longestCommonSubsequence(len(oldWords), len(newWords), func(i, j int) bool {
		return oldWords[i] == newWords[j]
	})

	changes := make([]models.WordChange, 0, len(oldWords)+len(newWords))
	oldCursor, newCursor := 0, 0
	for _, m := range matches {
		// Unmatched old words before the match are deletions, unmatched
		// new words are additions. Deletes come before adds at any gap.
		for ; oldCursor < m.Old; oldCursor++ {
			changes = append(changes, models.WordChange{
				Type:     models.WordDelete,
				Old:      oldWords[oldCursor],
				Position: oldCursor,
			})
		}
		for ; newCursor < m.New; newCursor++ {
			changes = append(changes, models.WordChange{
				Type:     models.WordAdd,
				New:      newWords[newCursor],
				Position: newCursor,
			})
		}
		oldCursor, newCursor = m.Old+1, m.New+1
	}
	for ; oldCursor < len(oldWords); oldCursor++ {
		changes = append(changes, models.WordChange{
			Type:     models.WordDelete,
			Old:      oldWords[oldCursor],
			Position: oldCursor,
		})
	}
	for ; newCursor < len(newWords); newCursor++ {
		changes = append(changes, models.WordChange{
			Type:     models.WordAdd,
			New:      newWords[newCursor],
			Position: newCursor,
		})
	}

	return collapseReplacements(changes)
}

// collapseReplacements merges each delete immediately followed by an add
// into a single replace keeping the delete's position. Single left-to-right
// pass, at most one merge per adjacent pair: multi-word replacements come
// out as several consecutive replace ops.
func collapseReplacements(changes []models.WordChange) []models.WordChange {
	collapsed := make([]models.WordChange, 0, len(changes))
	for i := 0; i < len(changes); i++ {
		current := changes[i]
		if current.Type == models.WordDelete && i+1 < len(changes) && changes[i+1].Type == models.WordAdd {
			collapsed = append(collapsed, models.WordChange{
				Type:     models.WordReplace,
				Old:      current.Old,
				New:      changes[i+1].New,
				Position: current.Position,
			})
			i++
			continue
		}
		collapsed = append(collapsed, current)
	}
	return collapsed
}
