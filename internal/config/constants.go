package config

// Default values for configuration sections.
const (
	// DefaultSimilarityThreshold is the minimum Jaccard word-set overlap
	// for two slides to be aligned as the same slide. Product tuning
	// knob, not a derived invariant.
	DefaultSimilarityThreshold = 0.3

	// DefaultTextPreviewLength caps the slide text preview carried by
	// added/deleted slide entries.
	DefaultTextPreviewLength = 120

	// DefaultReportFormat selects the human-readable renderer.
	DefaultReportFormat = "text"

	// DefaultLogLevel is used when no log level is configured.
	DefaultLogLevel = "info"

	// DefaultLogFormat is used when no log format is configured.
	DefaultLogFormat = "console"

	// DefaultMaxLogSizeMB is the rotation threshold for file logs.
	DefaultMaxLogSizeMB = 100

	// DefaultMaxLogBackups is the number of rotated log files kept.
	DefaultMaxLogBackups = 3

	// DefaultHistoryCompression is the parquet compression codec for
	// diff history files.
	DefaultHistoryCompression = "zstd"
)
