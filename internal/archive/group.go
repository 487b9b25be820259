package archive

import (
	"fmt"
	"slices"

	"dearchive/internal/presence"
)

// EventGroup is a named series of events, such as Comiket. Its events keep
// the order they were supplied in.
type EventGroup struct {
	Aliases     []string
	Events      []Event
	Sources     []Source
	Media       []Medium
	Links       []string
	Comments    string
	Description string
}

// EventGroupDoc is the monolithic form of an EventGroup: every event is
// embedded in full. The sharded store writes GroupHeaderDoc instead.
type EventGroupDoc struct {
	Aliases     []string    `json:"aliases"`
	Events      []EventDoc  `json:"events,omitempty"`
	Sources     []SourceDoc `json:"sources,omitempty"`
	Media       []MediumDoc `json:"media,omitempty"`
	Links       []string    `json:"links,omitempty"`
	Comments    string      `json:"comments,omitempty"`
	Description string      `json:"description,omitempty"`
}

// GroupHeaderDoc holds the group-level fields without events. Embedding it
// at the top of another struct keeps its keys first and in order.
type GroupHeaderDoc struct {
	Aliases     []string    `json:"aliases"`
	Sources     []SourceDoc `json:"sources,omitempty"`
	Media       []MediumDoc `json:"media,omitempty"`
	Links       []string    `json:"links,omitempty"`
	Comments    string      `json:"comments,omitempty"`
	Description string      `json:"description,omitempty"`
}

// CanonicalAlias returns the first alias, or "" when there is none.
func (g EventGroup) CanonicalAlias() string {
	if len(g.Aliases) == 0 {
		return ""
	}
	return g.Aliases[0]
}

// Validate checks the group's own mandatory fields. Events are validated
// when they are serialized.
func (g EventGroup) Validate() error {
	return checkAliases("event group", g.Aliases)
}

// HeaderDocument builds the canonical group-level document, leaving events
// to the caller.
func (g EventGroup) HeaderDocument() (GroupHeaderDoc, error) {
	if err := g.Validate(); err != nil {
		return GroupHeaderDoc{}, err
	}
	sources, err := sourceDocs(g.Sources)
	if err != nil {
		return GroupHeaderDoc{}, fmt.Errorf("event group %q: %w", g.Aliases[0], err)
	}
	media, err := mediumDocs(g.Media)
	if err != nil {
		return GroupHeaderDoc{}, fmt.Errorf("event group %q: %w", g.Aliases[0], err)
	}
	doc := GroupHeaderDoc{
		Aliases: slices.Clone(g.Aliases),
		Sources: sources,
		Media:   media,
		Links:   presentStrings(g.Links),
	}
	if presence.String(g.Comments) {
		doc.Comments = g.Comments
	}
	if presence.String(g.Description) {
		doc.Description = g.Description
	}
	return doc, nil
}

// ToDocument builds the monolithic document for g.
func (g EventGroup) ToDocument() (EventGroupDoc, error) {
	header, err := g.HeaderDocument()
	if err != nil {
		return EventGroupDoc{}, err
	}
	var events []EventDoc
	if presence.Slice(g.Events) {
		events = make([]EventDoc, 0, len(g.Events))
		for i, ev := range g.Events {
			doc, err := ev.ToDocument()
			if err != nil {
				return EventGroupDoc{}, fmt.Errorf("event group %q: events[%d]: %w", g.Aliases[0], i, err)
			}
			events = append(events, doc)
		}
	}
	return EventGroupDoc{
		Aliases:     header.Aliases,
		Events:      events,
		Sources:     header.Sources,
		Media:       header.Media,
		Links:       header.Links,
		Comments:    header.Comments,
		Description: header.Description,
	}, nil
}

// GroupFromHeader rebuilds an EventGroup from its header and already
// decoded events.
func GroupFromHeader(doc GroupHeaderDoc, events []Event) (EventGroup, error) {
	if len(doc.Aliases) == 0 || doc.Aliases[0] == "" {
		return EventGroup{}, missing("event group", "aliases")
	}
	sources, err := sourcesFromDocs(doc.Sources)
	if err != nil {
		return EventGroup{}, fmt.Errorf("event group %q: %w", doc.Aliases[0], err)
	}
	media, err := mediaFromDocs(doc.Media)
	if err != nil {
		return EventGroup{}, fmt.Errorf("event group %q: %w", doc.Aliases[0], err)
	}
	if len(events) == 0 {
		events = nil
	}
	return EventGroup{
		Aliases:     doc.Aliases,
		Events:      events,
		Sources:     sources,
		Media:       media,
		Links:       optionalStrings(doc.Links),
		Comments:    doc.Comments,
		Description: doc.Description,
	}, nil
}

// EventGroupFromDocument rebuilds an EventGroup from its monolithic form.
func EventGroupFromDocument(doc EventGroupDoc) (EventGroup, error) {
	var events []Event
	for i, evDoc := range doc.Events {
		ev, err := EventFromDocument(evDoc)
		if err != nil {
			return EventGroup{}, fmt.Errorf("events[%d]: %w", i, err)
		}
		events = append(events, ev)
	}
	return GroupFromHeader(GroupHeaderDoc{
		Aliases:     doc.Aliases,
		Sources:     doc.Sources,
		Media:       doc.Media,
		Links:       doc.Links,
		Comments:    doc.Comments,
		Description: doc.Description,
	}, events)
}
