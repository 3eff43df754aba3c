package extractor

import (
	"archive/zip"
	"crypto/sha256"
	"encoding/hex"
	"encoding/xml"
	"path"
	"strings"

	"github.com/aleister1102/deckdiff/internal/common"
	"github.com/aleister1102/deckdiff/internal/models"
)

// slideXML maps the parts of a slide (or notes slide) document the extractor
// cares about: the shape tree with its shapes and pictures.
type slideXML struct {
	SpTree spTreeXML `xml:"cSld>spTree"`
}

// spTreeXML is a shape tree. Group shapes nest recursively.
type spTreeXML struct {
	Shapes   []shapeXML   `xml:"sp"`
	Pictures []pictureXML `xml:"pic"`
	Groups   []spTreeXML  `xml:"grpSp"`
}

type shapeXML struct {
	Props       nonVisualPropsXML `xml:"nvSpPr>cNvPr"`
	Placeholder *placeholderXML   `xml:"nvSpPr>nvPr>ph"`
	Paragraphs  []paragraphXML    `xml:"txBody>p"`
}

type pictureXML struct {
	Props nonVisualPropsXML `xml:"nvPicPr>cNvPr"`
	Blip  blipXML           `xml:"blipFill>blip"`
}

type nonVisualPropsXML struct {
	Name string `xml:"name,attr"`
}

type placeholderXML struct {
	Type string `xml:"type,attr"`
}

type paragraphXML struct {
	Runs []string `xml:"r>t"`
}

type blipXML struct {
	Embed string `xml:"http://schemas.openxmlformats.org/officeDocument/2006/relationships embed,attr"`
}

// layoutXML maps a slide layout part; only the layout's display name is
// extracted.
type layoutXML struct {
	CSld struct {
		Name string `xml:"name,attr"`
	} `xml:"cSld"`
}

// text joins the paragraph texts of a shape with line breaks; runs within a
// paragraph concatenate without separators.
func (s shapeXML) text() string {
	paragraphs := make([]string, 0, len(s.Paragraphs))
	for _, p := range s.Paragraphs {
		paragraphs = append(paragraphs, strings.Join(p.Runs, ""))
	}
	return strings.Join(paragraphs, "\n")
}

// shapeType derives the shape's type tag: the placeholder type when the
// shape is a placeholder (a placeholder without an explicit type is a body
// placeholder), otherwise a plain shape.
func (s shapeXML) shapeType() string {
	if s.Placeholder == nil {
		return "shape"
	}
	if s.Placeholder.Type == "" {
		return "body"
	}
	return s.Placeholder.Type
}

// flatten returns all shapes and pictures of the tree including nested
// groups, group contents after the group's siblings.
func (t spTreeXML) flatten() ([]shapeXML, []pictureXML) {
	shapes := append([]shapeXML(nil), t.Shapes...)
	pictures := append([]pictureXML(nil), t.Pictures...)
	for _, group := range t.Groups {
		groupShapes, groupPictures := group.flatten()
		shapes = append(shapes, groupShapes...)
		pictures = append(pictures, groupPictures...)
	}
	return shapes, pictures
}

// extractSlide builds one Slide model from its package part.
func (pe *PptxExtractor) extractSlide(parts map[string]*zip.File, contentTypes *contentTypeIndex, authors map[string]string, partName string, number int) (*models.Slide, error) {
	data, err := readPart(parts, partName)
	if err != nil {
		return nil, err
	}

	var doc slideXML
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, common.WrapError(err, "failed to parse slide XML")
	}

	rels, err := parseRelationships(parts, partName)
	if err != nil {
		return nil, err
	}

	shapes, pictures := doc.SpTree.flatten()

	slide := &models.Slide{
		Number: number,
		Layout: slideLayoutName(parts, rels),
		Shapes: make([]models.Shape, 0, len(shapes)),
	}
	for _, shape := range shapes {
		slide.Shapes = append(slide.Shapes, models.Shape{
			Name: shape.Props.Name,
			Type: shape.shapeType(),
			Text: shape.text(),
		})
	}

	if pe.cfg.IncludeImages {
		images, err := extractImages(parts, contentTypes, rels, pictures)
		if err != nil {
			return nil, err
		}
		slide.Images = images
	}

	if pe.cfg.IncludeNotes {
		notes, err := extractNotes(parts, rels)
		if err != nil {
			return nil, err
		}
		slide.Notes = notes
	}

	if pe.cfg.IncludeComments {
		comments, err := extractComments(parts, rels, authors)
		if err != nil {
			return nil, err
		}
		slide.Comments = comments
	}

	return slide, nil
}

// slideLayoutName resolves the display name of the slide's layout, falling
// back to the layout part's file name when the layout carries no name.
func slideLayoutName(parts map[string]*zip.File, rels *partRelationships) string {
	layoutPart, ok := rels.firstOfType(relTypeSlideLayout)
	if !ok {
		return ""
	}

	data, err := readPart(parts, layoutPart)
	if err != nil {
		return layoutBaseName(layoutPart)
	}

	var layout layoutXML
	if err := xml.Unmarshal(data, &layout); err != nil || layout.CSld.Name == "" {
		return layoutBaseName(layoutPart)
	}
	return layout.CSld.Name
}

func layoutBaseName(partName string) string {
	base := path.Base(partName)
	return strings.TrimSuffix(base, path.Ext(base))
}

// extractImages resolves each picture's blip relationship to its media part
// and hashes the raw bytes. Pictures with unresolvable relationships are
// skipped rather than failing the whole slide.
func extractImages(parts map[string]*zip.File, contentTypes *contentTypeIndex, rels *partRelationships, pictures []pictureXML) ([]models.Image, error) {
	if len(pictures) == 0 {
		return nil, nil
	}

	images := make([]models.Image, 0, len(pictures))
	for _, pic := range pictures {
		target, ok := rels.target(pic.Blip.Embed)
		if !ok {
			continue
		}
		data, err := readPart(parts, target)
		if err != nil {
			return nil, common.WrapError(err, "failed to read image part: "+target)
		}

		digest := sha256.Sum256(data)
		images = append(images, models.Image{
			FileName:    path.Base(target),
			ContentType: contentTypes.lookup(target),
			Hash:        hex.EncodeToString(digest[:]),
			Size:        int64(len(data)),
		})
	}
	return images, nil
}

// extractNotes reads the slide's notes part if one is linked. The notes text
// is the body placeholder's text; decks authored without a body placeholder
// fall back to all text on the notes slide.
func extractNotes(parts map[string]*zip.File, rels *partRelationships) (*string, error) {
	notesPart, ok := rels.firstOfType(relTypeNotesSlide)
	if !ok {
		return nil, nil
	}

	data, err := readPart(parts, notesPart)
	if err != nil {
		return nil, err
	}

	var doc slideXML
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, common.WrapError(err, "failed to parse notes slide: "+notesPart)
	}

	shapes, _ := doc.SpTree.flatten()
	bodyTexts := make([]string, 0, 1)
	allTexts := make([]string, 0, len(shapes))
	for _, shape := range shapes {
		text := shape.text()
		if text == "" {
			continue
		}
		allTexts = append(allTexts, text)
		if shape.Placeholder != nil && (shape.Placeholder.Type == "body" || shape.Placeholder.Type == "") {
			bodyTexts = append(bodyTexts, text)
		}
	}

	texts := bodyTexts
	if len(texts) == 0 {
		texts = allTexts
	}
	notes := strings.Join(texts, "\n")
	return &notes, nil
}
