package archive

import (
	"fmt"

	"dearchive/internal/presence"
)

// SourceType pairs how reliable a source is with where it comes from.
type SourceType struct {
	Reliability Reliability
	Origin      Origin
}

// Source is one provenance record: a URL, a file path, or a short
// description of where a fact was found.
type Source struct {
	Source      string
	Type        SourceType
	Comments    string
	Description string
}

// SourceDoc is the serialized form of a Source. Type holds the reliability
// and origin names, in that order.
type SourceDoc struct {
	Source      string   `json:"source"`
	Type        []string `json:"type"`
	Comments    string   `json:"comments,omitempty"`
	Description string   `json:"description,omitempty"`
}

// Validate checks the mandatory fields.
func (s Source) Validate() error {
	if s.Source == "" {
		return invalid("source", "source", "is empty")
	}
	if !s.Type.Reliability.Valid() {
		return invalid("source", "type", "has no reliability")
	}
	if !s.Type.Origin.Valid() {
		return invalid("source", "type", "has no origin")
	}
	return nil
}

// ToDocument builds the canonical document for s.
func (s Source) ToDocument() (SourceDoc, error) {
	if err := s.Validate(); err != nil {
		return SourceDoc{}, err
	}
	doc := SourceDoc{
		Source: s.Source,
		Type:   []string{s.Type.Reliability.String(), s.Type.Origin.String()},
	}
	if presence.String(s.Comments) {
		doc.Comments = s.Comments
	}
	if presence.String(s.Description) {
		doc.Description = s.Description
	}
	return doc, nil
}

// SourceFromDocument rebuilds a Source, resolving both type names through the
// enumeration tables.
func SourceFromDocument(doc SourceDoc) (Source, error) {
	if doc.Source == "" {
		return Source{}, missing("source", "source")
	}
	if doc.Type == nil {
		return Source{}, missing("source", "type")
	}
	if len(doc.Type) != 2 {
		return Source{}, &MalformedDocumentError{
			Entity: "source",
			Field:  "type",
			Err:    fmt.Errorf("expected [reliability, origin], got %d elements", len(doc.Type)),
		}
	}
	reliability, ok := ParseReliability(doc.Type[0])
	if !ok {
		return Source{}, &InvalidEnumError{Field: "reliability", Value: doc.Type[0]}
	}
	origin, ok := ParseOrigin(doc.Type[1])
	if !ok {
		return Source{}, &InvalidEnumError{Field: "origin", Value: doc.Type[1]}
	}
	return Source{
		Source:      doc.Source,
		Type:        SourceType{Reliability: reliability, Origin: origin},
		Comments:    doc.Comments,
		Description: doc.Description,
	}, nil
}

func sourceDocs(sources []Source) ([]SourceDoc, error) {
	if !presence.Slice(sources) {
		return nil, nil
	}
	docs := make([]SourceDoc, 0, len(sources))
	for i, src := range sources {
		doc, err := src.ToDocument()
		if err != nil {
			return nil, fmt.Errorf("sources[%d]: %w", i, err)
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func sourcesFromDocs(docs []SourceDoc) ([]Source, error) {
	if len(docs) == 0 {
		return nil, nil
	}
	out := make([]Source, 0, len(docs))
	for i, doc := range docs {
		src, err := SourceFromDocument(doc)
		if err != nil {
			return nil, fmt.Errorf("sources[%d]: %w", i, err)
		}
		out = append(out, src)
	}
	return out, nil
}
