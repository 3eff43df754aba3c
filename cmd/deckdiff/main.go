package main

import (
	"fmt"
	"log"
	"time"

	"github.com/rs/zerolog"

	"github.com/aleister1102/deckdiff/internal/config"
	"github.com/aleister1102/deckdiff/internal/datastore"
	"github.com/aleister1102/deckdiff/internal/differ"
	"github.com/aleister1102/deckdiff/internal/extractor"
	"github.com/aleister1102/deckdiff/internal/logger"
	"github.com/aleister1102/deckdiff/internal/models"
	"github.com/aleister1102/deckdiff/internal/reporter"
)

func main() {
	flags := ParseFlags()

	gCfg, err := config.LoadGlobalConfig(flags.GlobalConfigFile)
	if err != nil {
		log.Fatalf("[FATAL] Could not load global config using path '%s': %v", flags.GlobalConfigFile, err)
	}

	// Flags take precedence over config file values
	if flags.Format != "" {
		gCfg.ReporterConfig.Format = flags.Format
	}
	if flags.OutputPath != "" {
		gCfg.ReporterConfig.OutputPath = flags.OutputPath
	}
	if flags.HistoryPath != "" {
		gCfg.StorageConfig.HistoryBasePath = flags.HistoryPath
	}

	if err := config.ValidateConfig(gCfg); err != nil {
		log.Fatalf("[FATAL] Configuration validation failed: %v", err)
	}

	zLogger, err := logger.New(gCfg.LogConfig)
	if err != nil {
		log.Fatalf("[FATAL] Could not initialize logger: %v", err)
	}

	if flags.ListHistory {
		if err := listHistory(gCfg, zLogger); err != nil {
			zLogger.Fatal().Err(err).Msg("Failed to list diff history")
		}
		return
	}

	pptxExtractor := extractor.NewPptxExtractor(gCfg.ExtractorConfig, zLogger)

	oldExtraction, err := pptxExtractor.Extract(flags.OldFile)
	if err != nil {
		zLogger.Fatal().Err(err).Str("file", flags.OldFile).Msg("Failed to extract old presentation")
	}
	newExtraction, err := pptxExtractor.Extract(flags.NewFile)
	if err != nil {
		zLogger.Fatal().Err(err).Str("file", flags.NewFile).Msg("Failed to extract new presentation")
	}

	deckDiffer, err := differ.NewDeckDiffer(gCfg.DiffConfig, zLogger)
	if err != nil {
		zLogger.Fatal().Err(err).Msg("Failed to initialize differ")
	}

	result, err := deckDiffer.Diff(oldExtraction, newExtraction)
	if err != nil {
		zLogger.Fatal().Err(err).Msg("Diff failed")
	}

	report, err := renderReport(gCfg, zLogger, result)
	if err != nil {
		zLogger.Fatal().Err(err).Msg("Failed to render report")
	}

	if gCfg.ReporterConfig.OutputPath != "" {
		if err := reporter.WriteToFile(gCfg.ReporterConfig.OutputPath, report); err != nil {
			zLogger.Fatal().Err(err).Str("path", gCfg.ReporterConfig.OutputPath).Msg("Failed to write report")
		}
		zLogger.Info().Str("path", gCfg.ReporterConfig.OutputPath).Msg("Report written")
	} else {
		fmt.Print(report)
	}

	if gCfg.StorageConfig.HistoryBasePath != "" {
		store, err := datastore.NewHistoryStore(gCfg.StorageConfig, zLogger)
		if err != nil {
			zLogger.Error().Err(err).Msg("Failed to initialize history store, skipping history record")
		} else if err := store.Append(models.NewDiffHistoryRecord(result)); err != nil {
			zLogger.Error().Err(err).Msg("Failed to append history record")
		}
	}
}

func listHistory(gCfg *config.GlobalConfig, zLogger zerolog.Logger) error {
	store, err := datastore.NewHistoryStore(gCfg.StorageConfig, zLogger)
	if err != nil {
		return err
	}

	records, err := store.ReadAll()
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Println("No diff runs recorded.")
		return nil
	}

	for _, rec := range records {
		fmt.Printf("%s  %s -> %s  +%d/-%d/~%d slides",
			time.UnixMilli(rec.DiffTimestamp).Format(time.RFC3339),
			rec.OldFile, rec.NewFile,
			rec.SlidesAdded, rec.SlidesDeleted, rec.SlidesModified)
		if rec.Identical {
			fmt.Print("  (identical)")
		}
		fmt.Println()
	}
	return nil
}

func renderReport(gCfg *config.GlobalConfig, zLogger zerolog.Logger, result *models.DiffResult) (string, error) {
	switch gCfg.ReporterConfig.Format {
	case "json":
		return reporter.NewJSONReporter(zLogger).Render(result)
	default:
		return reporter.NewTextReporter(zLogger).Render(result), nil
	}
}
