package archive

import (
	"fmt"
	"slices"

	"dearchive/internal/presence"
)

// Circle is one participant at one event. A circle attending several events
// is recorded once per event, with the names it used at that event.
type Circle struct {
	Aliases  []string
	PenNames []string
	// Position is the booth location, coarse to fine (hall, row, seat).
	Position    string
	Sources     []Source
	Media       []Medium
	Links       []string
	Comments    string
	Description string
}

// CircleDoc is the serialized form of a Circle.
type CircleDoc struct {
	Aliases     []string    `json:"aliases"`
	PenNames    []string    `json:"pen_names,omitempty"`
	Position    string      `json:"position,omitempty"`
	Sources     []SourceDoc `json:"sources,omitempty"`
	Media       []MediumDoc `json:"media,omitempty"`
	Links       []string    `json:"links,omitempty"`
	Comments    string      `json:"comments,omitempty"`
	Description string      `json:"description,omitempty"`
}

// Validate checks the mandatory fields.
func (c Circle) Validate() error {
	return checkAliases("circle", c.Aliases)
}

// ToDocument builds the canonical document for c.
func (c Circle) ToDocument() (CircleDoc, error) {
	if err := c.Validate(); err != nil {
		return CircleDoc{}, err
	}
	sources, err := sourceDocs(c.Sources)
	if err != nil {
		return CircleDoc{}, err
	}
	media, err := mediumDocs(c.Media)
	if err != nil {
		return CircleDoc{}, err
	}
	doc := CircleDoc{
		Aliases:  slices.Clone(c.Aliases),
		PenNames: presentStrings(c.PenNames),
		Sources:  sources,
		Media:    media,
		Links:    presentStrings(c.Links),
	}
	if presence.String(c.Position) {
		doc.Position = c.Position
	}
	if presence.String(c.Comments) {
		doc.Comments = c.Comments
	}
	if presence.String(c.Description) {
		doc.Description = c.Description
	}
	return doc, nil
}

// CircleFromDocument rebuilds a Circle.
func CircleFromDocument(doc CircleDoc) (Circle, error) {
	if len(doc.Aliases) == 0 || doc.Aliases[0] == "" {
		return Circle{}, missing("circle", "aliases")
	}
	sources, err := sourcesFromDocs(doc.Sources)
	if err != nil {
		return Circle{}, err
	}
	media, err := mediaFromDocs(doc.Media)
	if err != nil {
		return Circle{}, err
	}
	return Circle{
		Aliases:     doc.Aliases,
		PenNames:    optionalStrings(doc.PenNames),
		Position:    doc.Position,
		Sources:     sources,
		Media:       media,
		Links:       optionalStrings(doc.Links),
		Comments:    doc.Comments,
		Description: doc.Description,
	}, nil
}

func presentStrings(v []string) []string {
	if !presence.Slice(v) {
		return nil
	}
	return slices.Clone(v)
}

func optionalStrings(v []string) []string {
	if len(v) == 0 {
		return nil
	}
	return v
}

func circleDocs(circles []Circle) ([]CircleDoc, error) {
	if !presence.Slice(circles) {
		return nil, nil
	}
	docs := make([]CircleDoc, 0, len(circles))
	for i, c := range circles {
		doc, err := c.ToDocument()
		if err != nil {
			return nil, fmt.Errorf("circles[%d]: %w", i, err)
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func circlesFromDocs(docs []CircleDoc) ([]Circle, error) {
	if len(docs) == 0 {
		return nil, nil
	}
	out := make([]Circle, 0, len(docs))
	for i, doc := range docs {
		c, err := CircleFromDocument(doc)
		if err != nil {
			return nil, fmt.Errorf("circles[%d]: %w", i, err)
		}
		out = append(out, c)
	}
	return out, nil
}
