package testsupport

import (
	"path/filepath"
	"testing"

	"dearchive/internal/archive"
	"dearchive/internal/store"
)

// MustSaveStore saves group into a fresh folder named after its canonical
// alias under dir and returns the folder.
func MustSaveStore(t testing.TB, dir string, group archive.EventGroup) string {
	t.Helper()

	folder := filepath.Join(dir, group.CanonicalAlias())
	if err := store.Save(group, folder); err != nil {
		t.Fatalf("save store %s: %v", folder, err)
	}
	return folder
}
