package archive

import (
	"errors"
	"strings"
	"testing"
)

func compact(t *testing.T, doc any) string {
	t.Helper()
	data, err := Marshal(doc, 0)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return strings.TrimSuffix(string(data), "\n")
}

func TestCircleDocumentOmitsAbsentFields(t *testing.T) {
	circle := Circle{Aliases: []string{"Sakuzyo"}, Position: "2F,row-A,seat-23"}
	doc, err := circle.ToDocument()
	if err != nil {
		t.Fatalf("ToDocument: %v", err)
	}
	got := compact(t, doc)
	want := `{"aliases":["Sakuzyo"],"position":"2F,row-A,seat-23"}`
	if got != want {
		t.Fatalf("unexpected document:\n got %s\nwant %s", got, want)
	}
}

func TestDegenerateOptionalsOmitted(t *testing.T) {
	circle := Circle{
		Aliases:  []string{"CorLeonis"},
		PenNames: []string{""},
		Links:    []string{},
		Sources:  []Source{},
		Comments: "",
	}
	doc, err := circle.ToDocument()
	if err != nil {
		t.Fatalf("ToDocument: %v", err)
	}
	if got := compact(t, doc); got != `{"aliases":["CorLeonis"]}` {
		t.Fatalf("expected degenerate fields to be dropped, got %s", got)
	}

	kept := Circle{Aliases: []string{"CorLeonis"}, PenNames: []string{"", ""}}
	doc, err = kept.ToDocument()
	if err != nil {
		t.Fatalf("ToDocument: %v", err)
	}
	if got := compact(t, doc); got != `{"aliases":["CorLeonis"],"pen_names":["",""]}` {
		t.Fatalf("expected two-element list to be kept, got %s", got)
	}
}

func TestEventKeyOrder(t *testing.T) {
	src := Source{Source: "https://example.org/c95", Type: SourceType{Reliable, Official}}
	event := Event{
		Description: "winter",
		Comments:    "note",
		Links:       []string{"https://example.org"},
		Media:       []Medium{{Path: "banner.png", Sources: []Source{src}}},
		Sources:     []Source{src},
		Circles:     []Circle{{Aliases: []string{"A"}}},
		Dates:       "2018-12-29,2018-12-31",
		Aliases:     []string{"C95", "コミックマーケット95"},
	}
	doc, err := event.ToDocument()
	if err != nil {
		t.Fatalf("ToDocument: %v", err)
	}
	want := `{"aliases":["C95","コミックマーケット95"],"dates":"2018-12-29,2018-12-31",` +
		`"circles":[{"aliases":["A"]}],` +
		`"sources":[{"source":"https://example.org/c95","type":["Reliable","Official"]}],` +
		`"media":[{"path":"banner.png","sources":[{"source":"https://example.org/c95","type":["Reliable","Official"]}]}],` +
		`"links":["https://example.org"],"comments":"note","description":"winter"}`
	if got := compact(t, doc); got != want {
		t.Fatalf("unexpected key order:\n got %s\nwant %s", got, want)
	}
}

func TestToDocumentRequiresAliases(t *testing.T) {
	tests := []struct {
		name string
		fn   func() error
	}{
		{"circle", func() error { _, err := Circle{Aliases: []string{}}.ToDocument(); return err }},
		{"circle empty canonical", func() error { _, err := Circle{Aliases: []string{""}}.ToDocument(); return err }},
		{"event", func() error { _, err := Event{Dates: "2018-12-29"}.ToDocument(); return err }},
		{"event dates", func() error { _, err := Event{Aliases: []string{"C95"}}.ToDocument(); return err }},
		{"group", func() error { _, err := EventGroup{}.ToDocument(); return err }},
		{"nested circle", func() error {
			_, err := Event{Aliases: []string{"C95"}, Dates: "2018-12-29", Circles: []Circle{{}}}.ToDocument()
			return err
		}},
		{"source type", func() error { _, err := Source{Source: "x"}.ToDocument(); return err }},
		{"medium path", func() error { _, err := Medium{}.ToDocument(); return err }},
	}
	for _, tt := range tests {
		err := tt.fn()
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("%s: expected ErrValidation, got %v", tt.name, err)
		}
		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("%s: expected *ValidationError, got %T", tt.name, err)
		}
	}
}

func TestSourceFromDocumentRejectsUnknownEnum(t *testing.T) {
	_, err := SourceFromDocument(SourceDoc{Source: "x", Type: []string{"Bogus", "Official"}})
	var enumErr *InvalidEnumError
	if !errors.As(err, &enumErr) {
		t.Fatalf("expected *InvalidEnumError, got %v", err)
	}
	if enumErr.Field != "reliability" || enumErr.Value != "Bogus" {
		t.Fatalf("unexpected enum error fields: %+v", enumErr)
	}
	if !errors.Is(err, ErrInvalidEnum) {
		t.Fatal("expected errors.Is to match ErrInvalidEnum")
	}

	_, err = SourceFromDocument(SourceDoc{Source: "x", Type: []string{"Reliable", "official"}})
	if !errors.As(err, &enumErr) || enumErr.Field != "origin" {
		t.Fatalf("expected origin enum error, got %v", err)
	}
}

func TestSourceFromDocumentShape(t *testing.T) {
	cases := []SourceDoc{
		{Source: "x"},
		{Source: "x", Type: []string{"Reliable"}},
		{Source: "x", Type: []string{"Reliable", "Official", "Extra"}},
		{Type: []string{"Reliable", "Official"}},
	}
	for _, doc := range cases {
		if _, err := SourceFromDocument(doc); !errors.Is(err, ErrMalformedDocument) {
			t.Fatalf("expected malformed error for %+v, got %v", doc, err)
		}
	}
}

func TestDecodeEventMalformed(t *testing.T) {
	cases := map[string]string{
		"missing aliases": `{"dates":"2018-12-29"}`,
		"empty aliases":   `{"aliases":[],"dates":"2018-12-29"}`,
		"missing dates":   `{"aliases":["C95"]}`,
		"aliases string":  `{"aliases":"C95","dates":"2018-12-29"}`,
		"unknown key":     `{"aliases":["C95"],"dates":"2018-12-29","venue":"Big Sight"}`,
		"trailing":        `{"aliases":["C95"],"dates":"2018-12-29"} {}`,
		"type shape":      `{"aliases":["C95"],"dates":"2018-12-29","sources":[{"source":"x","type":"Reliable"}]}`,
		"null":            `null`,
	}
	for name, raw := range cases {
		_, err := DecodeEvent([]byte(raw))
		if !errors.Is(err, ErrMalformedDocument) {
			t.Fatalf("%s: expected ErrMalformedDocument, got %v", name, err)
		}
	}
}

func TestDecodeEventFieldFromTypeError(t *testing.T) {
	_, err := DecodeEvent([]byte(`{"aliases":["C95"],"dates":20181229}`))
	var mErr *MalformedDocumentError
	if !errors.As(err, &mErr) {
		t.Fatalf("expected *MalformedDocumentError, got %v", err)
	}
	if mErr.Field != "dates" {
		t.Fatalf("expected field dates, got %q", mErr.Field)
	}
}

func TestDecodeMissingOptionalsStayAbsent(t *testing.T) {
	event, err := DecodeEvent([]byte(`{"aliases":["C95"],"dates":"2018-12-29","links":[]}`))
	if err != nil {
		t.Fatalf("DecodeEvent: %v", err)
	}
	if event.Circles != nil || event.Sources != nil || event.Media != nil || event.Links != nil {
		t.Fatalf("expected absent optionals, got %+v", event)
	}
	if _, ok := event.CircleCount(); ok {
		t.Fatal("expected no circle count for absent circles")
	}
}

func TestMarshalKeepsUnicodeAndMarkup(t *testing.T) {
	circle := Circle{Aliases: []string{"サークル <A&B>"}}
	doc, err := circle.ToDocument()
	if err != nil {
		t.Fatalf("ToDocument: %v", err)
	}
	data, err := Marshal(doc, DefaultIndent)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := "{\n    \"aliases\": [\n        \"サークル <A&B>\"\n    ]\n}\n"
	if string(data) != want {
		t.Fatalf("unexpected encoding:\n%s", data)
	}
}

func TestEnumTablesAreExhaustive(t *testing.T) {
	for _, r := range []Reliability{Reliable, Likely, Doubtful, Guess, Unlikely} {
		back, ok := ParseReliability(r.String())
		if !ok || back != r {
			t.Fatalf("reliability %d does not round-trip through %q", r, r.String())
		}
	}
	for _, o := range []Origin{Official, OfficialExt, External, Unknown, Unsourced} {
		back, ok := ParseOrigin(o.String())
		if !ok || back != o {
			t.Fatalf("origin %d does not round-trip through %q", o, o.String())
		}
	}
	if Reliability(0).Valid() || Origin(0).Valid() {
		t.Fatal("expected zero enums to be invalid")
	}
}
