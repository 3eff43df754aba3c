package config

// StorageConfig defines where diff history records are persisted. History
// recording is disabled when HistoryBasePath is empty.
type StorageConfig struct {
	HistoryBasePath string `json:"history_base_path,omitempty" yaml:"history_base_path,omitempty"`
	CompressionType string `json:"compression_type,omitempty" yaml:"compression_type,omitempty" validate:"omitempty,oneof=zstd gzip snappy"`
}

// NewDefaultStorageConfig creates default storage configuration
func NewDefaultStorageConfig() StorageConfig {
	return StorageConfig{
		CompressionType: DefaultHistoryCompression,
	}
}
