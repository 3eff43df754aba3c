package extractor

import (
	"archive/zip"
	"encoding/xml"
	"path"
	"strings"

	"github.com/aleister1102/deckdiff/internal/common"
)

const contentTypesPart = "[Content_Types].xml"

type contentTypesXML struct {
	Defaults  []contentTypeDefaultXML  `xml:"Default"`
	Overrides []contentTypeOverrideXML `xml:"Override"`
}

type contentTypeDefaultXML struct {
	Extension   string `xml:"Extension,attr"`
	ContentType string `xml:"ContentType,attr"`
}

type contentTypeOverrideXML struct {
	PartName    string `xml:"PartName,attr"`
	ContentType string `xml:"ContentType,attr"`
}

// contentTypeIndex resolves a part name to its declared content type.
type contentTypeIndex struct {
	byExtension map[string]string
	byPartName  map[string]string
}

func parseContentTypes(parts map[string]*zip.File) (*contentTypeIndex, error) {
	index := &contentTypeIndex{
		byExtension: make(map[string]string),
		byPartName:  make(map[string]string),
	}
	if _, ok := parts[contentTypesPart]; !ok {
		return index, nil
	}

	data, err := readPart(parts, contentTypesPart)
	if err != nil {
		return nil, err
	}

	var parsed contentTypesXML
	if err := xml.Unmarshal(data, &parsed); err != nil {
		return nil, common.WrapError(err, "failed to parse "+contentTypesPart)
	}

	for _, def := range parsed.Defaults {
		index.byExtension[strings.ToLower(def.Extension)] = def.ContentType
	}
	for _, override := range parsed.Overrides {
		index.byPartName[strings.TrimPrefix(override.PartName, "/")] = override.ContentType
	}
	return index, nil
}

// lookup returns the content type of a part, preferring an explicit override
// over the extension default.
func (ci *contentTypeIndex) lookup(partName string) string {
	if ct, ok := ci.byPartName[partName]; ok {
		return ct
	}
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(partName), "."))
	if ct, ok := ci.byExtension[ext]; ok {
		return ct
	}
	return "application/octet-stream"
}
