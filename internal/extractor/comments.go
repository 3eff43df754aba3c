package extractor

import (
	"archive/zip"
	"encoding/xml"
	"strings"

	"github.com/aleister1102/deckdiff/internal/common"
)

const commentAuthorsPart = "ppt/commentAuthors.xml"

type commentAuthorsXML struct {
	Authors []commentAuthorXML `xml:"cmAuthor"`
}

type commentAuthorXML struct {
	ID   string `xml:"id,attr"`
	Name string `xml:"name,attr"`
}

type commentListXML struct {
	Comments []commentXML `xml:"cm"`
}

type commentXML struct {
	AuthorID string `xml:"authorId,attr"`
	Text     string `xml:"text"`
}

// parseCommentAuthors maps comment author IDs to display names. Decks without
// comments have no author part, which yields an empty map.
func parseCommentAuthors(parts map[string]*zip.File) (map[string]string, error) {
	authors := make(map[string]string)
	if _, ok := parts[commentAuthorsPart]; !ok {
		return authors, nil
	}

	data, err := readPart(parts, commentAuthorsPart)
	if err != nil {
		return nil, err
	}

	var parsed commentAuthorsXML
	if err := xml.Unmarshal(data, &parsed); err != nil {
		return nil, common.WrapError(err, "failed to parse "+commentAuthorsPart)
	}

	for _, author := range parsed.Authors {
		authors[author.ID] = author.Name
	}
	return authors, nil
}

// extractComments reads the slide's comment part if one is linked and renders
// each comment as "author: text". Comments by unknown authors keep their text
// without an author prefix.
func extractComments(parts map[string]*zip.File, rels *partRelationships, authors map[string]string) ([]string, error) {
	commentsPart, ok := rels.firstOfType(relTypeComments)
	if !ok {
		return nil, nil
	}

	data, err := readPart(parts, commentsPart)
	if err != nil {
		return nil, err
	}

	var parsed commentListXML
	if err := xml.Unmarshal(data, &parsed); err != nil {
		return nil, common.WrapError(err, "failed to parse comments: "+commentsPart)
	}

	comments := make([]string, 0, len(parsed.Comments))
	for _, comment := range parsed.Comments {
		text := strings.TrimSpace(comment.Text)
		if text == "" {
			continue
		}
		if name, ok := authors[comment.AuthorID]; ok && name != "" {
			comments = append(comments, name+": "+text)
		} else {
			comments = append(comments, text)
		}
	}
	return comments, nil
}
