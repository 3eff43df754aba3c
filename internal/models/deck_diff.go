package models

// DiffResult holds the structured result of comparing two presentation
// snapshots. Field names are stable wire format for JSON consumers.
type DiffResult struct {
	OldFile  string       `json:"old_file"`
	NewFile  string       `json:"new_file"`
	Metadata MetadataDiff `json:"metadata"`
	Slides   SlidesDiff   `json:"slides"`
	Summary  DiffSummary  `json:"summary"`
}

// MetadataDiff lists the document-level fields whose values differ.
type MetadataDiff struct {
	Changes []FieldChange `json:"changes"`
}

// FieldChange records one metadata field change carrying both raw values.
type FieldChange struct {
	Field string     `json:"field"`
	Old   FieldValue `json:"old"`
	New   FieldValue `json:"new"`
}

// SlidesDiff groups slide-level changes. Ordering always reflects input
// order, never a resorted view.
type SlidesDiff struct {
	Added    []SlideEntry        `json:"added"`
	Deleted  []SlideEntry        `json:"deleted"`
	Modified []SlideModification `json:"modified"`
}

// SlideEntry identifies an added or deleted slide with a short text preview.
type SlideEntry struct {
	Number      int    `json:"number"`
	Layout      string `json:"layout"`
	TextPreview string `json:"text_preview"`
}

// SlideModification describes the changes between an aligned slide pair. It
// is emitted only when at least one tracked dimension differs.
type SlideModification struct {
	OldNumber       int                 `json:"old_number"`
	NewNumber       int                 `json:"new_number"`
	Layout          string              `json:"layout"`
	ShapesAdded     []ShapeEntry        `json:"shapes_added,omitempty"`
	ShapesDeleted   []ShapeEntry        `json:"shapes_deleted,omitempty"`
	ShapesModified  []ShapeModification `json:"shapes_modified,omitempty"`
	NotesChange     *NotesChange        `json:"notes_change,omitempty"`
	CommentsAdded   []string            `json:"comments_added,omitempty"`
	CommentsDeleted []string            `json:"comments_deleted,omitempty"`
	ImagesAdded     []string            `json:"images_added,omitempty"`
	ImagesDeleted   []string            `json:"images_deleted,omitempty"`
}

// ShapeEntry identifies an added or deleted shape as of its own side.
type ShapeEntry struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Text string `json:"text"`
}

// ShapeModification carries both texts of a modified shape plus the
// word-level changes between them.
type ShapeModification struct {
	Name        string       `json:"name"`
	OldText     string       `json:"old_text"`
	NewText     string       `json:"new_text"`
	WordChanges []WordChange `json:"word_changes"`
}

// NotesChange carries both sides of a speaker-notes change. A nil side means
// the notes were absent, which is distinct from empty text.
type NotesChange struct {
	Old *string `json:"old"`
	New *string `json:"new"`
}

// WordChangeType classifies a single word-level edit.
type WordChangeType string

const (
	// WordAdd is a word present only in the new text.
	WordAdd WordChangeType = "add"
	// WordDelete is a word present only in the old text.
	WordDelete WordChangeType = "delete"
	// WordReplace is a deleted word immediately followed by an added one,
	// collapsed into a single substitution.
	WordReplace WordChangeType = "replace"
)

// WordChange is one word-level edit. Position indexes into the original old
// word sequence for delete and replace, and into the new word sequence for a
// pure add.
type WordChange struct {
	Type     WordChangeType `json:"type"`
	Old      string         `json:"old,omitempty"`
	New      string         `json:"new,omitempty"`
	Position int            `json:"position"`
}

// DiffSummary aggregates change counts across the whole comparison.
type DiffSummary struct {
	SlidesAdded     int  `json:"slides_added"`
	SlidesDeleted   int  `json:"slides_deleted"`
	SlidesModified  int  `json:"slides_modified"`
	ShapesAdded     int  `json:"shapes_added"`
	ShapesDeleted   int  `json:"shapes_deleted"`
	ShapesModified  int  `json:"shapes_modified"`
	NotesChanged    int  `json:"notes_changed"`
	CommentChanges  int  `json:"comment_changes"`
	ImageChanges    int  `json:"image_changes"`
	MetadataChanges int  `json:"metadata_changes"`
	Identical       bool `json:"identical"`
}
