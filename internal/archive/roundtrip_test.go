package archive_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"dearchive/internal/archive"
	"dearchive/internal/testsupport"
)

func TestEventGroupRoundTrip(t *testing.T) {
	group := testsupport.SampleGroup()

	data, err := archive.EncodeEventGroup(group, archive.DefaultIndent)
	if err != nil {
		t.Fatalf("EncodeEventGroup returned error: %v", err)
	}
	decoded, err := archive.DecodeEventGroup(data)
	if err != nil {
		t.Fatalf("DecodeEventGroup returned error: %v", err)
	}
	if diff := cmp.Diff(group, decoded); diff != "" {
		t.Fatalf("round trip differs (-want +got):\n%s", diff)
	}

	again, err := archive.EncodeEventGroup(decoded, archive.DefaultIndent)
	if err != nil {
		t.Fatalf("second EncodeEventGroup returned error: %v", err)
	}
	if string(again) != string(data) {
		t.Fatalf("re-encoding changed bytes (-first +second):\n%s", cmp.Diff(string(data), string(again)))
	}
}

func TestEventRoundTripPerEntity(t *testing.T) {
	for _, ev := range testsupport.SampleGroup().Events {
		t.Run(ev.CanonicalAlias(), func(t *testing.T) {
			data, err := archive.EncodeEvent(ev, 2)
			if err != nil {
				t.Fatalf("EncodeEvent returned error: %v", err)
			}
			decoded, err := archive.DecodeEvent(data)
			if err != nil {
				t.Fatalf("DecodeEvent returned error: %v", err)
			}
			if diff := cmp.Diff(ev, decoded); diff != "" {
				t.Fatalf("round trip differs (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDegenerateOptionalsNormalizeOnRoundTrip(t *testing.T) {
	circle := archive.Circle{
		Aliases:  []string{"Sakuzyo"},
		PenNames: []string{""},
		Links:    []string{},
	}
	doc, err := circle.ToDocument()
	if err != nil {
		t.Fatalf("ToDocument returned error: %v", err)
	}
	decoded, err := archive.CircleFromDocument(doc)
	if err != nil {
		t.Fatalf("CircleFromDocument returned error: %v", err)
	}
	want := archive.Circle{Aliases: []string{"Sakuzyo"}}
	if diff := cmp.Diff(want, decoded); diff != "" {
		t.Fatalf("decoded circle differs (-want +got):\n%s", diff)
	}
}
