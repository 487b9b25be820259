package store_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"dearchive/internal/store"
	"dearchive/internal/testsupport"
)

func TestVerifyCleanStore(t *testing.T) {
	folder := testsupport.MustSaveStore(t, t.TempDir(), testsupport.SampleGroup())

	report, err := store.Verify(folder)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if !report.OK() {
		t.Fatalf("expected no issues, got %+v", report.Issues)
	}
	if report.Group != "Comiket" || report.Events != 3 || report.Circles != 3 {
		t.Fatalf("unexpected report %+v", report)
	}
}

func TestVerifyReportsStaleHintsAndStrays(t *testing.T) {
	folder := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(folder, "event_group.json"), `{
    "aliases": ["Comiket"],
    "events": {
        "C95": {"index": 0, "dates": "2018-12-29", "circle_count": 5},
        "C96": {"index": 7, "dates": "2019-08-09", "circle_count": null}
    }
}`)
	testsupport.WriteFile(t, filepath.Join(folder, "C95.json"),
		`{"aliases":["C95"],"dates":"2018-12-29","circles":[{"aliases":["Sakuzyo"]}]}`)
	testsupport.WriteFile(t, filepath.Join(folder, "C96.json"),
		`{"aliases":["C96"],"dates":"2019-08-09,2019-08-12"}`)
	testsupport.WriteFile(t, filepath.Join(folder, "C94.json"),
		`{"aliases":["C94"],"dates":"2018-08-10"}`)
	testsupport.WriteFile(t, filepath.Join(folder, ".C96.json.0000.tmp"), `{}`)

	report, err := store.Verify(folder)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}

	var kinds []string
	for _, issue := range report.Issues {
		kinds = append(kinds, string(issue.Kind)+":"+issue.Alias)
	}
	want := []string{
		"stale_circle_count:C95",
		"index_position:C96",
		"stale_dates:C96",
		"leftover_temp:",
		"orphan_shard:C94",
	}
	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Fatalf("unexpected issues (-want +got):\n%s", diff)
	}
}

func TestVerifyPropagatesLoadErrors(t *testing.T) {
	if _, err := store.Verify(t.TempDir()); !errors.Is(err, store.ErrNotAStore) {
		t.Fatalf("expected ErrNotAStore, got %v", err)
	}
}

func TestLockIsExclusive(t *testing.T) {
	folder := t.TempDir()

	lock, err := store.Lock(folder)
	if err != nil {
		t.Fatalf("Lock returned error: %v", err)
	}
	if _, err := store.Lock(folder); !errors.Is(err, store.ErrLocked) {
		t.Fatalf("expected ErrLocked for second lock, got %v", err)
	}
	if err := lock.Unlock(); err != nil {
		t.Fatalf("Unlock returned error: %v", err)
	}

	again, err := store.Lock(folder)
	if err != nil {
		t.Fatalf("Lock after unlock returned error: %v", err)
	}
	_ = again.Unlock()
}
