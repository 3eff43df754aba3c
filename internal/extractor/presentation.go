package extractor

import (
	"archive/zip"
	"encoding/xml"

	"github.com/aleister1102/deckdiff/internal/common"
)

const presentationPart = "ppt/presentation.xml"

// presentationXML maps ppt/presentation.xml. Only the slide ID list matters:
// it defines the slide order of the deck.
type presentationXML struct {
	SlideIDs []slideIDXML `xml:"sldIdLst>sldId"`
}

type slideIDXML struct {
	// RelID is the r:id attribute; the numeric id attribute lives in a
	// different namespace and is irrelevant here.
	RelID string `xml:"http://schemas.openxmlformats.org/officeDocument/2006/relationships id,attr"`
}

// slidePartOrder returns the slide part names in presentation order.
func slidePartOrder(parts map[string]*zip.File) ([]string, error) {
	data, err := readPart(parts, presentationPart)
	if err != nil {
		return nil, err
	}

	var presentation presentationXML
	if err := xml.Unmarshal(data, &presentation); err != nil {
		return nil, common.WrapError(err, "failed to parse "+presentationPart)
	}

	rels, err := parseRelationships(parts, presentationPart)
	if err != nil {
		return nil, err
	}

	slideParts := make([]string, 0, len(presentation.SlideIDs))
	for _, slideID := range presentation.SlideIDs {
		target, ok := rels.target(slideID.RelID)
		if !ok {
			return nil, common.NewValidationError("slide_rel_id", slideID.RelID, "slide relationship not found")
		}
		slideParts = append(slideParts, target)
	}
	return slideParts, nil
}
