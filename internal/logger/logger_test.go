package logger

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aleister1102/deckdiff/internal/config"
)

func TestNew_DefaultLevel(t *testing.T) {
	cfg := config.NewDefaultLogConfig()

	logger, err := New(cfg)
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())
}

func TestNew_ExplicitLevel(t *testing.T) {
	cfg := config.NewDefaultLogConfig()
	cfg.LogLevel = "debug"

	logger, err := New(cfg)
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, logger.GetLevel())
}

func TestNew_InvalidLevel(t *testing.T) {
	cfg := config.NewDefaultLogConfig()
	cfg.LogLevel = "shouting"

	_, err := New(cfg)
	assert.Error(t, err)
}

func TestNew_FileOutputCreatesDirectory(t *testing.T) {
	cfg := config.NewDefaultLogConfig()
	cfg.LogFile = filepath.Join(t.TempDir(), "logs", "deckdiff.log")

	logger, err := New(cfg)
	require.NoError(t, err)
	logger.Info().Msg("log file smoke test")

	assert.DirExists(t, filepath.Dir(cfg.LogFile))
}
