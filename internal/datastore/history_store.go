package datastore

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/rs/zerolog"

	"github.com/aleister1102/deckdiff/internal/common"
	"github.com/aleister1102/deckdiff/internal/config"
	"github.com/aleister1102/deckdiff/internal/models"
)

// HistoryStore persists diff run summaries as Parquet files, one file per
// run, under the configured base path.
type HistoryStore struct {
	storageConfig config.StorageConfig
	logger        zerolog.Logger
}

// NewHistoryStore creates a new history store
func NewHistoryStore(cfg config.StorageConfig, logger zerolog.Logger) (*HistoryStore, error) {
	if cfg.HistoryBasePath == "" {
		return nil, common.NewValidationError("history_base_path", cfg.HistoryBasePath, "history base path is required")
	}
	return &HistoryStore{
		storageConfig: cfg,
		logger:        logger.With().Str("component", "HistoryStore").Logger(),
	}, nil
}

// Append writes one diff run record to a fresh Parquet file.
func (hs *HistoryStore) Append(record models.DiffHistoryRecord) error {
	if err := os.MkdirAll(hs.storageConfig.HistoryBasePath, 0755); err != nil {
		return common.WrapError(err, "failed to create history directory: "+hs.storageConfig.HistoryBasePath)
	}

	fileName := fmt.Sprintf("diff-%d.parquet", time.Now().UnixNano())
	filePath := filepath.Join(hs.storageConfig.HistoryBasePath, fileName)

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return common.WrapError(err, "failed to create history file: "+filePath)
	}
	defer file.Close()

	writer := parquet.NewWriter(file, parquet.SchemaOf(models.DiffHistoryRecord{}), hs.compressionOption())
	if err := writer.Write(record); err != nil {
		return common.WrapError(err, "failed to write history record")
	}
	if err := writer.Close(); err != nil {
		return common.WrapError(err, "failed to close history writer")
	}

	hs.logger.Debug().Str("path", filePath).Msg("Diff history record written")
	return nil
}

// ReadAll loads every history record under the base path, oldest file first.
func (hs *HistoryStore) ReadAll() ([]models.DiffHistoryRecord, error) {
	entries, err := os.ReadDir(hs.storageConfig.HistoryBasePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, common.WrapError(err, "failed to read history directory: "+hs.storageConfig.HistoryBasePath)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".parquet") {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	var records []models.DiffHistoryRecord
	for _, name := range names {
		fileRecords, err := hs.readFile(filepath.Join(hs.storageConfig.HistoryBasePath, name))
		if err != nil {
			return nil, err
		}
		records = append(records, fileRecords...)
	}
	return records, nil
}

func (hs *HistoryStore) readFile(filePath string) ([]models.DiffHistoryRecord, error) {
	osFile, err := os.Open(filePath)
	if err != nil {
		return nil, common.WrapError(err, "failed to open history file: "+filePath)
	}
	defer osFile.Close()

	stat, err := osFile.Stat()
	if err != nil {
		return nil, common.WrapError(err, "failed to stat history file: "+filePath)
	}

	pqFile, err := parquet.OpenFile(osFile, stat.Size())
	if err != nil {
		return nil, common.WrapError(err, "failed to open parquet file: "+filePath)
	}

	reader := parquet.NewReader(pqFile)
	defer reader.Close()

	var records []models.DiffHistoryRecord
	for {
		var record models.DiffHistoryRecord
		if err := reader.Read(&record); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, common.WrapError(err, "failed to read history record from: "+filePath)
		}
		records = append(records, record)
	}
	return records, nil
}

func (hs *HistoryStore) compressionOption() parquet.WriterOption {
	switch strings.ToLower(hs.storageConfig.CompressionType) {
	case "snappy":
		return parquet.Compression(&parquet.Snappy)
	case "gzip":
		return parquet.Compression(&parquet.Gzip)
	case "zstd":
		return parquet.Compression(&parquet.Zstd)
	default:
		hs.logger.Warn().Str("codec", hs.storageConfig.CompressionType).Msg("Unsupported compression codec, defaulting to Uncompressed")
		return parquet.Compression(&parquet.Uncompressed)
	}
}
