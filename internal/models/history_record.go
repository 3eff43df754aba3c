package models

import "time"

// DiffHistoryRecord defines the schema for storing diff run summaries using
// parquet-go/parquet-go. Tags follow parquet-go conventions.
type DiffHistoryRecord struct {
	OldFile         string `parquet:"old_file"`
	NewFile         string `parquet:"new_file"`
	DiffTimestamp   int64  `parquet:"diff_timestamp"` // unix millis
	SlidesAdded     int32  `parquet:"slides_added"`
	SlidesDeleted   int32  `parquet:"slides_deleted"`
	SlidesModified  int32  `parquet:"slides_modified"`
	ShapesAdded     int32  `parquet:"shapes_added"`
	ShapesDeleted   int32  `parquet:"shapes_deleted"`
	ShapesModified  int32  `parquet:"shapes_modified"`
	NotesChanged    int32  `parquet:"notes_changed"`
	CommentChanges  int32  `parquet:"comment_changes"`
	ImageChanges    int32  `parquet:"image_changes"`
	MetadataChanges int32  `parquet:"metadata_changes"`
	Identical       bool   `parquet:"identical"`
}

// NewDiffHistoryRecord flattens a diff result into a history record stamped
// with the current time.
func NewDiffHistoryRecord(result *DiffResult) DiffHistoryRecord {
	s := result.Summary
	return DiffHistoryRecord{
		OldFile:         result.OldFile,
		NewFile:         result.NewFile,
		DiffTimestamp:   time.Now().UnixMilli(),
		SlidesAdded:     int32(s.SlidesAdded),
		SlidesDeleted:   int32(s.SlidesDeleted),
		SlidesModified:  int32(s.SlidesModified),
		ShapesAdded:     int32(s.ShapesAdded),
		ShapesDeleted:   int32(s.ShapesDeleted),
		ShapesModified:  int32(s.ShapesModified),
		NotesChanged:    int32(s.NotesChanged),
		CommentChanges:  int32(s.CommentChanges),
		ImageChanges:    int32(s.ImageChanges),
		MetadataChanges: int32(s.MetadataChanges),
		Identical:       s.Identical,
	}
}
