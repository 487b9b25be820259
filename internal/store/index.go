package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"dearchive/internal/archive"
	"dearchive/internal/textutil"
)

// IndexFile is the name of the group document inside a store folder.
const IndexFile = "event_group.json"

// Index is the content of event_group.json: the group-level fields followed
// by the event index.
type Index struct {
	archive.GroupHeaderDoc
	Events IndexEntries `json:"events"`
}

// IndexEntry summarizes one event without reading its shard. CircleCount is
// nil when the event has no circles field. Both Dates and CircleCount are
// hints copied at save time.
type IndexEntry struct {
	Alias       string `json:"-"`
	Index       int    `json:"index"`
	Dates       string `json:"dates"`
	CircleCount *int   `json:"circle_count"`
}

// IndexEntries is the index object. It encodes as a JSON object keyed by
// canonical alias, keeping slice order as key order.
type IndexEntries []IndexEntry

// Lookup returns the entry for alias.
func (e IndexEntries) Lookup(alias string) (IndexEntry, int, bool) {
	for i, entry := range e {
		if entry.Alias == alias {
			return entry, i, true
		}
	}
	return IndexEntry{}, -1, false
}

// Aliases returns the indexed aliases in key order.
func (e IndexEntries) Aliases() []string {
	out := make([]string, 0, len(e))
	for _, entry := range e {
		out = append(out, entry.Alias)
	}
	return out
}

// MarshalJSON writes the entries as one object. The caller's encoder
// re-indents the result.
func (e IndexEntries) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	buf.WriteByte('{')
	for i, entry := range e {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := enc.Encode(entry.Alias); err != nil {
			return nil, err
		}
		buf.Truncate(buf.Len() - 1)
		buf.WriteByte(':')
		if err := enc.Encode(entry); err != nil {
			return nil, err
		}
		buf.Truncate(buf.Len() - 1)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

type indexEntryDoc struct {
	Index       *int    `json:"index"`
	Dates       *string `json:"dates"`
	CircleCount *int    `json:"circle_count"`
}

// UnmarshalJSON reads the index object in key order. Every entry must carry
// index and dates; circle_count may be null.
func (e *IndexEntries) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return indexError("", err)
	}
	if tok == nil {
		*e = nil
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return indexError("", fmt.Errorf("expected object, got %v", tok))
	}

	entries := IndexEntries{}
	seen := make(map[string]struct{})
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return indexError("", err)
		}
		alias, ok := tok.(string)
		if !ok {
			return indexError("", fmt.Errorf("unexpected key %v", tok))
		}
		if _, dup := seen[alias]; dup {
			return indexError(alias, errors.New("listed twice"))
		}
		seen[alias] = struct{}{}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return indexError(alias, err)
		}
		entry, err := decodeIndexEntry(alias, raw)
		if err != nil {
			return err
		}
		entries = append(entries, entry)
	}
	if _, err := dec.Token(); err != nil {
		return indexError("", err)
	}
	*e = entries
	return nil
}

func decodeIndexEntry(alias string, raw []byte) (IndexEntry, error) {
	if alias == "" {
		return IndexEntry{}, indexError(alias, errors.New("empty alias"))
	}
	if err := textutil.ValidateFileName(alias); err != nil {
		return IndexEntry{}, indexError(alias, fmt.Errorf("key is not a shard name: %w", err))
	}
	if textutil.AliasKey(alias) == reservedAlias {
		return IndexEntry{}, indexError(alias, errors.New("key is reserved for the group document"))
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	var doc indexEntryDoc
	if err := dec.Decode(&doc); err != nil {
		return IndexEntry{}, indexError(alias, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return IndexEntry{}, indexError(alias, errors.New("unexpected data after entry"))
	}
	if doc.Index == nil {
		return IndexEntry{}, &archive.MalformedDocumentError{Entity: "event index", Field: "events." + alias + ".index", Err: errors.New("required key missing")}
	}
	if doc.Dates == nil {
		return IndexEntry{}, &archive.MalformedDocumentError{Entity: "event index", Field: "events." + alias + ".dates", Err: errors.New("required key missing")}
	}
	return IndexEntry{
		Alias:       alias,
		Index:       *doc.Index,
		Dates:       *doc.Dates,
		CircleCount: doc.CircleCount,
	}, nil
}

func indexError(alias string, err error) error {
	field := "events"
	if alias != "" {
		field += "." + alias
	}
	return &archive.MalformedDocumentError{Entity: "event index", Field: field, Err: err}
}

func newIndexEntry(alias string, position int, ev archive.Event) IndexEntry {
	entry := IndexEntry{Alias: alias, Index: position, Dates: ev.Dates}
	if n, ok := ev.CircleCount(); ok {
		entry.CircleCount = &n
	}
	return entry
}

func decodeIndex(data []byte) (Index, error) {
	var idx Index
	if err := archive.UnmarshalStrict(data, &idx, "event group"); err != nil {
		return Index{}, err
	}
	if len(idx.Aliases) == 0 || idx.Aliases[0] == "" {
		return Index{}, &archive.MalformedDocumentError{Entity: "event group", Field: "aliases", Err: errors.New("required key missing or empty")}
	}
	if idx.Events == nil {
		return Index{}, &archive.MalformedDocumentError{Entity: "event group", Field: "events", Err: errors.New("required key missing")}
	}
	return idx, nil
}
