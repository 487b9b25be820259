package archive

import (
	"fmt"

	"dearchive/internal/presence"
)

// Medium references a file (banner, booth photo, catalogue cut) already
// written next to the archive by a collector. Path is relative to the
// archive and its contents are never read.
type Medium struct {
	Path        string
	Sources     []Source
	Comments    string
	Description string
}

// MediumDoc is the serialized form of a Medium.
type MediumDoc struct {
	Path        string      `json:"path"`
	Sources     []SourceDoc `json:"sources,omitempty"`
	Comments    string      `json:"comments,omitempty"`
	Description string      `json:"description,omitempty"`
}

// Validate checks the mandatory fields.
func (m Medium) Validate() error {
	if m.Path == "" {
		return invalid("medium", "path", "is empty")
	}
	return nil
}

// ToDocument builds the canonical document for m.
func (m Medium) ToDocument() (MediumDoc, error) {
	if err := m.Validate(); err != nil {
		return MediumDoc{}, err
	}
	sources, err := sourceDocs(m.Sources)
	if err != nil {
		return MediumDoc{}, err
	}
	doc := MediumDoc{Path: m.Path, Sources: sources}
	if presence.String(m.Comments) {
		doc.Comments = m.Comments
	}
	if presence.String(m.Description) {
		doc.Description = m.Description
	}
	return doc, nil
}

// MediumFromDocument rebuilds a Medium.
func MediumFromDocument(doc MediumDoc) (Medium, error) {
	if doc.Path == "" {
		return Medium{}, missing("medium", "path")
	}
	sources, err := sourcesFromDocs(doc.Sources)
	if err != nil {
		return Medium{}, err
	}
	return Medium{
		Path:        doc.Path,
		Sources:     sources,
		Comments:    doc.Comments,
		Description: doc.Description,
	}, nil
}

func mediumDocs(media []Medium) ([]MediumDoc, error) {
	if !presence.Slice(media) {
		return nil, nil
	}
	docs := make([]MediumDoc, 0, len(media))
	for i, m := range media {
		doc, err := m.ToDocument()
		if err != nil {
			return nil, fmt.Errorf("media[%d]: %w", i, err)
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func mediaFromDocs(docs []MediumDoc) ([]Medium, error) {
	if len(docs) == 0 {
		return nil, nil
	}
	out := make([]Medium, 0, len(docs))
	for i, doc := range docs {
		m, err := MediumFromDocument(doc)
		if err != nil {
			return nil, fmt.Errorf("media[%d]: %w", i, err)
		}
		out = append(out, m)
	}
	return out, nil
}
