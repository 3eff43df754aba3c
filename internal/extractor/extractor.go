package extractor

import (
	"archive/zip"
	"io"
	"path"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/aleister1102/deckdiff/internal/common"
	"github.com/aleister1102/deckdiff/internal/config"
	"github.com/aleister1102/deckdiff/internal/models"
)

// PptxExtractor reads a .pptx package (a ZIP of OOXML parts) and produces an
// immutable extraction snapshot for the differ.
type PptxExtractor struct {
	cfg    config.ExtractorConfig
	logger zerolog.Logger
}

// NewPptxExtractor creates a new pptx extractor
func NewPptxExtractor(cfg config.ExtractorConfig, logger zerolog.Logger) *PptxExtractor {
	return &PptxExtractor{
		cfg:    cfg,
		logger: logger.With().Str("component", "PptxExtractor").Logger(),
	}
}

// Extract opens the presentation at path and returns its content snapshot.
func (pe *PptxExtractor) Extract(path string) (*models.Extraction, error) {
	reader, err := zip.OpenReader(path)
	if err != nil {
		return nil, common.WrapError(err, "failed to open presentation: "+path)
	}
	defer reader.Close()

	return pe.extract(&reader.Reader, filepath.Base(path))
}

// extract walks the package parts of an already-opened archive.
func (pe *PptxExtractor) extract(archive *zip.Reader, fileName string) (*models.Extraction, error) {
	parts := indexParts(archive)

	metadata, err := parseCoreProperties(parts)
	if err != nil {
		return nil, common.WrapError(err, "failed to parse core properties")
	}

	contentTypes, err := parseContentTypes(parts)
	if err != nil {
		return nil, common.WrapError(err, "failed to parse content types")
	}

	slideParts, err := slidePartOrder(parts)
	if err != nil {
		return nil, common.WrapError(err, "failed to resolve slide order")
	}

	authors, err := parseCommentAuthors(parts)
	if err != nil {
		return nil, common.WrapError(err, "failed to parse comment authors")
	}

	slides := make([]models.Slide, 0, len(slideParts))
	for i, partName := range slideParts {
		slide, err := pe.extractSlide(parts, contentTypes, authors, partName, i+1)
		if err != nil {
			return nil, common.WrapError(err, "failed to extract slide: "+partName)
		}
		slides = append(slides, *slide)
	}
	metadata.SlideCount = len(slides)

	pe.logger.Debug().
		Str("file", fileName).
		Int("slides", len(slides)).
		Msg("Presentation extracted")

	return &models.Extraction{
		FileName: fileName,
		Metadata: *metadata,
		Slides:   slides,
	}, nil
}

// indexParts maps normalized part names to their archive entries.
func indexParts(archive *zip.Reader) map[string]*zip.File {
	parts := make(map[string]*zip.File, len(archive.File))
	for _, file := range archive.File {
		parts[strings.TrimPrefix(file.Name, "/")] = file
	}
	return parts
}

// readPart reads the raw bytes of one package part.
func readPart(parts map[string]*zip.File, name string) ([]byte, error) {
	file, ok := parts[name]
	if !ok {
		return nil, common.WrapError(common.ErrNotFound, "missing package part: "+name)
	}
	rc, err := file.Open()
	if err != nil {
		return nil, common.WrapError(err, "failed to open package part: "+name)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, common.WrapError(err, "failed to read package part: "+name)
	}
	return data, nil
}

// resolveTarget resolves a relationship target against the directory of the
// part owning the relationship. Absolute targets are package-rooted.
func resolveTarget(baseDir, target string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	return path.Clean(path.Join(baseDir, target))
}
