package archive

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// DefaultIndent is the number of spaces used to indent written documents.
const DefaultIndent = 4

// Marshal encodes a document as UTF-8 JSON without HTML escaping, indented by
// indent spaces (compact when indent is 0), with a trailing newline.
func Marshal(v any, indent int) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent > 0 {
		enc.SetIndent("", strings.Repeat(" ", indent))
	}
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("archive: encode document: %w", err)
	}
	return buf.Bytes(), nil
}

// UnmarshalStrict decodes exactly one JSON document into dst. Unknown keys,
// mismatched types, and trailing data fail with *MalformedDocumentError
// attributed to entity.
func UnmarshalStrict(data []byte, dst any, entity string) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return decodeError(entity, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return &MalformedDocumentError{Entity: entity, Err: errors.New("unexpected data after document")}
	}
	return nil
}

func decodeError(entity string, err error) error {
	var malformed *MalformedDocumentError
	if errors.As(err, &malformed) {
		return err
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return &MalformedDocumentError{Entity: entity, Field: typeErr.Field, Err: err}
	}
	return &MalformedDocumentError{Entity: entity, Err: err}
}

// EncodeEvent serializes one event, circles included.
func EncodeEvent(e Event, indent int) ([]byte, error) {
	doc, err := e.ToDocument()
	if err != nil {
		return nil, err
	}
	return Marshal(doc, indent)
}

// DecodeEvent parses one event document.
func DecodeEvent(data []byte) (Event, error) {
	var doc EventDoc
	if err := UnmarshalStrict(data, &doc, "event"); err != nil {
		return Event{}, err
	}
	return EventFromDocument(doc)
}

// EncodeEventGroup serializes g in the monolithic single-file form.
func EncodeEventGroup(g EventGroup, indent int) ([]byte, error) {
	doc, err := g.ToDocument()
	if err != nil {
		return nil, err
	}
	return Marshal(doc, indent)
}

// DecodeEventGroup parses the monolithic single-file form.
func DecodeEventGroup(data []byte) (EventGroup, error) {
	var doc EventGroupDoc
	if err := UnmarshalStrict(data, &doc, "event group"); err != nil {
		return EventGroup{}, err
	}
	return EventGroupFromDocument(doc)
}
