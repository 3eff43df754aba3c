package reporter

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/aleister1102/deckdiff/internal/models"
)

// TextReporter renders a diff result as a human-readable report.
type TextReporter struct {
	logger zerolog.Logger
}

// NewTextReporter creates a new text reporter
func NewTextReporter(logger zerolog.Logger) *TextReporter {
	return &TextReporter{
		logger: logger.With().Str("component", "TextReporter").Logger(),
	}
}

// Render produces the full text report for a diff result.
func (tr *TextReporter) Render(result *models.DiffResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Comparing %s -> %s\n", result.OldFile, result.NewFile)
	b.WriteString(strings.Repeat("=", 60) + "\n")

	tr.renderSummary(&b, result.Summary)

	if len(result.Metadata.Changes) > 0 {
		tr.renderMetadata(&b, result.Metadata)
	}
	if len(result.Slides.Deleted) > 0 {
		tr.renderSlideEntries(&b, "Deleted slides", result.Slides.Deleted)
	}
	if len(result.Slides.Added) > 0 {
		tr.renderSlideEntries(&b, "Added slides", result.Slides.Added)
	}
	for _, mod := range result.Slides.Modified {
		tr.renderModification(&b, mod)
	}

	return b.String()
}

func (tr *TextReporter) renderSummary(b *strings.Builder, summary models.DiffSummary) {
	if summary.Identical {
		b.WriteString("Decks are identical.\n")
		return
	}

	b.WriteString("Summary:\n")
	writeCount(b, "slides added", summary.SlidesAdded)
	writeCount(b, "slides deleted", summary.SlidesDeleted)
	writeCount(b, "slides modified", summary.SlidesModified)
	writeCount(b, "shapes added", summary.ShapesAdded)
	writeCount(b, "shapes deleted", summary.ShapesDeleted)
	writeCount(b, "shapes modified", summary.ShapesModified)
	writeCount(b, "notes changed", summary.NotesChanged)
	writeCount(b, "comment changes", summary.CommentChanges)
	writeCount(b, "image changes", summary.ImageChanges)
	writeCount(b, "metadata changes", summary.MetadataChanges)
}

func writeCount(b *strings.Builder, label string, count int) {
	if count == 0 {
		return
	}
	fmt.Fprintf(b, "  %-18s %d\n", label+":", count)
}

func (tr *TextReporter) renderMetadata(b *strings.Builder, metadata models.MetadataDiff) {
	b.WriteString("\nMetadata changes:\n")
	for _, change := range metadata.Changes {
		fmt.Fprintf(b, "  %s: %q -> %q\n", change.Field, change.Old.String(), change.New.String())
	}
}

func (tr *TextReporter) renderSlideEntries(b *strings.Builder, heading string, entries []models.SlideEntry) {
	fmt.Fprintf(b, "\n%s:\n", heading)
	for _, entry := range entries {
		fmt.Fprintf(b, "  Slide %d [%s]", entry.Number, entry.Layout)
		if entry.TextPreview != "" {
			fmt.Fprintf(b, ": %s", entry.TextPreview)
		}
		b.WriteString("\n")
	}
}

func (tr *TextReporter) renderModification(b *strings.Builder, mod models.SlideModification) {
	fmt.Fprintf(b, "\nSlide %d -> %d [%s]:\n", mod.OldNumber, mod.NewNumber, mod.Layout)

	for _, shape := range mod.ShapesDeleted {
		fmt.Fprintf(b, "  - shape %q (%s) removed\n", shape.Name, shape.Type)
	}
	for _, shape := range mod.ShapesAdded {
		fmt.Fprintf(b, "  + shape %q (%s) added\n", shape.Name, shape.Type)
	}
	for _, shape := range mod.ShapesModified {
		fmt.Fprintf(b, "  ~ shape %q changed:\n", shape.Name)
		for _, change := range shape.WordChanges {
			b.WriteString("      " + formatWordChange(change) + "\n")
		}
	}

	if mod.NotesChange != nil {
		tr.renderNotesChange(b, mod.NotesChange)
	}

	for _, comment := range mod.CommentsDeleted {
		fmt.Fprintf(b, "  - comment removed: %s\n", comment)
	}
	for _, comment := range mod.CommentsAdded {
		fmt.Fprintf(b, "  + comment added: %s\n", comment)
	}
	for _, image := range mod.ImagesDeleted {
		fmt.Fprintf(b, "  - image removed: %s\n", image)
	}
	for _, image := range mod.ImagesAdded {
		fmt.Fprintf(b, "  + image added: %s\n", image)
	}
}

func formatWordChange(change models.WordChange) string {
	switch change.Type {
	case models.WordAdd:
		return fmt.Sprintf("add %q at word %d", change.New, change.Position)
	case models.WordDelete:
		return fmt.Sprintf("delete %q at word %d", change.Old, change.Position)
	default:
		return fmt.Sprintf("replace %q with %q at word %d", change.Old, change.New, change.Position)
	}
}

// renderNotesChange shows speaker notes inline: deleted fragments wrapped in
// [-...-] and inserted fragments in {+...+}.
func (tr *TextReporter) renderNotesChange(b *strings.Builder, change *models.NotesChange) {
	switch {
	case change.Old == nil && change.New != nil:
		fmt.Fprintf(b, "  + notes added: %s\n", *change.New)
	case change.Old != nil && change.New == nil:
		fmt.Fprintf(b, "  - notes removed: %s\n", *change.Old)
	case change.Old != nil && change.New != nil:
		fmt.Fprintf(b, "  ~ notes changed: %s\n", inlineTextDiff(*change.Old, *change.New))
	}
}

func inlineTextDiff(oldText, newText string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(oldText, newText, false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	var b strings.Builder
	for _, diff := range diffs {
		switch diff.Type {
		case diffmatchpatch.DiffDelete:
			b.WriteString("[-" + diff.Text + "-]")
		case diffmatchpatch.DiffInsert:
			b.WriteString("{+" + diff.Text + "+}")
		default:
			b.WriteString(diff.Text)
		}
	}
	return b.String()
}
