package fileutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "event_group.json")

	if err := WriteFileAtomic(target, []byte("first"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := WriteFileAtomic(target, []byte("second"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "second" {
		t.Fatalf("content mismatch: got %q, want %q", got, "second")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected only the target file, found %d entries", len(entries))
	}
}

func TestWriteTempLeavesTargetUntouched(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "C95.json")

	tmp, err := WriteTemp(target, []byte("data"), 0o644)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(target); !os.IsNotExist(err) {
		t.Fatalf("expected target to be absent before rename, got %v", err)
	}
	if !strings.HasPrefix(filepath.Base(tmp), ".C95.json.") || !strings.HasSuffix(tmp, ".tmp") {
		t.Fatalf("unexpected temp name %q", tmp)
	}
	if filepath.Dir(tmp) != dir {
		t.Fatalf("expected temp file beside target, got %q", tmp)
	}

	RemoveAll([]string{tmp})
	if _, err := os.Stat(tmp); !os.IsNotExist(err) {
		t.Fatalf("expected temp file removed, got %v", err)
	}
}

func TestTempPathUnique(t *testing.T) {
	a := TempPath("/tmp/x.json")
	b := TempPath("/tmp/x.json")
	if a == b {
		t.Fatalf("expected unique temp paths, got %q twice", a)
	}
}
