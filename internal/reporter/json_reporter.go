package reporter

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/aleister1102/deckdiff/internal/common"
	"github.com/aleister1102/deckdiff/internal/models"
)

// JSONReporter renders a diff result as indented JSON for machine consumers.
type JSONReporter struct {
	logger zerolog.Logger
}

// NewJSONReporter creates a new JSON reporter
func NewJSONReporter(logger zerolog.Logger) *JSONReporter {
	return &JSONReporter{
		logger: logger.With().Str("component", "JSONReporter").Logger(),
	}
}

// Render serializes the diff result.
func (jr *JSONReporter) Render(result *models.DiffResult) (string, error) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", common.WrapError(err, "failed to serialize diff result")
	}
	return string(data) + "\n", nil
}

// WriteToFile writes a rendered report to the given path, creating parent
// directories as needed.
func WriteToFile(path, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return common.WrapError(err, "failed to create report directory: "+dir)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return common.WrapError(err, "failed to write report: "+path)
	}
	return nil
}
