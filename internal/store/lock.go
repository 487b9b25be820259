package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// LockFile is the advisory lock file created inside a store folder.
const LockFile = ".dearchive.lock"

// Lock takes the exclusive writer lock of folder without blocking, creating
// the folder when needed. It fails with ErrLocked when another process holds
// it. Release the lock with Unlock.
func Lock(folder string) (*flock.Flock, error) {
	if err := os.MkdirAll(folder, 0o755); err != nil {
		return nil, fmt.Errorf("store: create folder: %w", err)
	}
	lock := flock.New(filepath.Join(folder, LockFile))
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("store: acquire lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrLocked, folder)
	}
	return lock, nil
}
