package extractor

import (
	"archive/zip"
	"encoding/xml"
	"path"

	"github.com/aleister1102/deckdiff/internal/common"
)

// Relationship types of the package parts this extractor follows.
const (
	relTypeSlide       = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide"
	relTypeSlideLayout = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout"
	relTypeNotesSlide  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/notesSlide"
	relTypeComments    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/comments"
	relTypeImage       = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/image"
)

type relationshipsXML struct {
	Relationships []relationshipXML `xml:"Relationship"`
}

type relationshipXML struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}

// partRelationships holds the parsed relationships of one package part with
// targets already resolved to package-rooted part names.
type partRelationships struct {
	byID    map[string]relationshipXML
	ordered []relationshipXML
}

// parseRelationships loads the .rels file of the given part. A part without
// a .rels file yields an empty set, which is not an error.
func parseRelationships(parts map[string]*zip.File, partName string) (*partRelationships, error) {
	relsName := path.Join(path.Dir(partName), "_rels", path.Base(partName)+".rels")
	rels := &partRelationships{byID: make(map[string]relationshipXML)}

	if _, ok := parts[relsName]; !ok {
		return rels, nil
	}

	data, err := readPart(parts, relsName)
	if err != nil {
		return nil, err
	}

	var parsed relationshipsXML
	if err := xml.Unmarshal(data, &parsed); err != nil {
		return nil, common.WrapError(err, "failed to parse relationships: "+relsName)
	}

	baseDir := path.Dir(partName)
	for _, rel := range parsed.Relationships {
		rel.Target = resolveTarget(baseDir, rel.Target)
		rels.byID[rel.ID] = rel
		rels.ordered = append(rels.ordered, rel)
	}
	return rels, nil
}

// target returns the resolved target of the relationship with the given ID.
func (pr *partRelationships) target(id string) (string, bool) {
	rel, ok := pr.byID[id]
	if !ok {
		return "", false
	}
	return rel.Target, true
}

// firstOfType returns the resolved target of the first relationship with the
// given type, in file order.
func (pr *partRelationships) firstOfType(relType string) (string, bool) {
	for _, rel := range pr.ordered {
		if rel.Type == relType {
			return rel.Target, true
		}
	}
	return "", false
}
