package extractor

import (
	"archive/zip"
	"encoding/xml"

	"github.com/aleister1102/deckdiff/internal/common"
	"github.com/aleister1102/deckdiff/internal/models"
)

const corePropertiesPart = "docProps/core.xml"

// corePropertiesXML maps docProps/core.xml. Element names are matched by
// local name, so the dc/cp/dcterms prefixes need no explicit namespaces.
// Pointer fields keep absent properties distinct from empty ones.
type corePropertiesXML struct {
	Title          *string `xml:"title"`
	Creator        *string `xml:"creator"`
	LastModifiedBy *string `xml:"lastModifiedBy"`
	Created        *string `xml:"created"`
	Modified       *string `xml:"modified"`
}

// parseCoreProperties reads the document metadata. A package without core
// properties yields empty metadata.
func parseCoreProperties(parts map[string]*zip.File) (*models.Metadata, error) {
	if _, ok := parts[corePropertiesPart]; !ok {
		return &models.Metadata{}, nil
	}

	data, err := readPart(parts, corePropertiesPart)
	if err != nil {
		return nil, err
	}

	var props corePropertiesXML
	if err := xml.Unmarshal(data, &props); err != nil {
		return nil, common.WrapError(err, "failed to parse "+corePropertiesPart)
	}

	return &models.Metadata{
		Title:          props.Title,
		Author:         props.Creator,
		LastModifiedBy: props.LastModifiedBy,
		Created:        props.Created,
		Modified:       props.Modified,
	}, nil
}
