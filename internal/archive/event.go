package archive

import (
	"fmt"
	"slices"

	"dearchive/internal/presence"
)

// Event is one dated occurrence of an event group, such as C95. The first
// alias names the event's shard file, so it must be unique within the group
// and usable as a file name.
type Event struct {
	Aliases []string
	// Dates is "YYYY-MM-DD" or "YYYY-MM-DD,YYYY-MM-DD", optionally followed
	// by " CANCELLED". See ParseDates.
	Dates       string
	Circles     []Circle
	Sources     []Source
	Media       []Medium
	Links       []string
	Comments    string
	Description string
}

// EventDoc is the serialized form of an Event and the content of a shard.
type EventDoc struct {
	Aliases     []string    `json:"aliases"`
	Dates       string      `json:"dates"`
	Circles     []CircleDoc `json:"circles,omitempty"`
	Sources     []SourceDoc `json:"sources,omitempty"`
	Media       []MediumDoc `json:"media,omitempty"`
	Links       []string    `json:"links,omitempty"`
	Comments    string      `json:"comments,omitempty"`
	Description string      `json:"description,omitempty"`
}

// CanonicalAlias returns the first alias, or "" when there is none.
func (e Event) CanonicalAlias() string {
	if len(e.Aliases) == 0 {
		return ""
	}
	return e.Aliases[0]
}

// CircleCount returns the number of circles when the circles field is
// present, and false otherwise.
func (e Event) CircleCount() (int, bool) {
	if !presence.Slice(e.Circles) {
		return 0, false
	}
	return len(e.Circles), true
}

// Validate checks the mandatory fields.
func (e Event) Validate() error {
	if err := checkAliases("event", e.Aliases); err != nil {
		return err
	}
	if e.Dates == "" {
		return invalid("event", "dates", "is empty")
	}
	return nil
}

// ToDocument builds the canonical document for e, circles included.
func (e Event) ToDocument() (EventDoc, error) {
	if err := e.Validate(); err != nil {
		return EventDoc{}, err
	}
	circles, err := circleDocs(e.Circles)
	if err != nil {
		return EventDoc{}, fmt.Errorf("event %q: %w", e.Aliases[0], err)
	}
	sources, err := sourceDocs(e.Sources)
	if err != nil {
		return EventDoc{}, fmt.Errorf("event %q: %w", e.Aliases[0], err)
	}
	media, err := mediumDocs(e.Media)
	if err != nil {
		return EventDoc{}, fmt.Errorf("event %q: %w", e.Aliases[0], err)
	}
	doc := EventDoc{
		Aliases: slices.Clone(e.Aliases),
		Dates:   e.Dates,
		Circles: circles,
		Sources: sources,
		Media:   media,
		Links:   presentStrings(e.Links),
	}
	if presence.String(e.Comments) {
		doc.Comments = e.Comments
	}
	if presence.String(e.Description) {
		doc.Description = e.Description
	}
	return doc, nil
}

// EventFromDocument rebuilds an Event.
func EventFromDocument(doc EventDoc) (Event, error) {
	if len(doc.Aliases) == 0 || doc.Aliases[0] == "" {
		return Event{}, missing("event", "aliases")
	}
	if doc.Dates == "" {
		return Event{}, missing("event", "dates")
	}
	circles, err := circlesFromDocs(doc.Circles)
	if err != nil {
		return Event{}, fmt.Errorf("event %q: %w", doc.Aliases[0], err)
	}
	sources, err := sourcesFromDocs(doc.Sources)
	if err != nil {
		return Event{}, fmt.Errorf("event %q: %w", doc.Aliases[0], err)
	}
	media, err := mediaFromDocs(doc.Media)
	if err != nil {
		return Event{}, fmt.Errorf("event %q: %w", doc.Aliases[0], err)
	}
	return Event{
		Aliases:     doc.Aliases,
		Dates:       doc.Dates,
		Circles:     circles,
		Sources:     sources,
		Media:       media,
		Links:       optionalStrings(doc.Links),
		Comments:    doc.Comments,
		Description: doc.Description,
	}, nil
}
