// Package fileutil provides crash-safe file writes: data goes to a temporary
// sibling first and only reaches its final name through a rename.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// TempPath returns a hidden, unique sibling of path for staging writes.
func TempPath(path string) string {
	dir, base := filepath.Split(path)
	return filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", base, uuid.NewString()))
}

// WriteTemp writes data to a fresh temporary sibling of path, syncs it, and
// returns the temporary name. The caller renames or removes it.
func WriteTemp(path string, data []byte, mode os.FileMode) (string, error) {
	tmp := TempPath(path)
	out, err := os.OpenFile(tmp, os.O_CREATE|os.O_EXCL|os.O_WRONLY, mode)
	if err != nil {
		return "", err
	}
	if _, err := out.Write(data); err != nil {
		_ = out.Close()
		_ = os.Remove(tmp)
		return "", err
	}
	if err := out.Sync(); err != nil {
		_ = out.Close()
		_ = os.Remove(tmp)
		return "", err
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(tmp)
		return "", err
	}
	return tmp, nil
}

// WriteFileAtomic replaces path with data so readers see either the old or
// the new content, never a partial file.
func WriteFileAtomic(path string, data []byte, mode os.FileMode) error {
	tmp, err := WriteTemp(path, data, mode)
	if err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return SyncDir(filepath.Dir(path))
}

// SyncDir flushes directory entries so completed renames survive a crash.
func SyncDir(dir string) error {
	f, err := os.Open(dir)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := f.Sync(); err != nil && !errors.Is(err, os.ErrInvalid) {
		return err
	}
	return nil
}

// RemoveAll deletes every listed path, ignoring ones already gone.
func RemoveAll(paths []string) {
	for _, p := range paths {
		_ = os.Remove(p)
	}
}
