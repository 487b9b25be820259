package store

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateAlias matches every *DuplicateAliasError.
	ErrDuplicateAlias = errors.New("duplicate or unusable event alias")
	// ErrNotAStore matches every *NotAStoreError.
	ErrNotAStore = errors.New("not an event group store")
	// ErrMissingShard matches every *MissingShardError.
	ErrMissingShard = errors.New("missing event shard")
	// ErrLocked reports a store already locked by another writer.
	ErrLocked = errors.New("store is locked by another process")
)

// DuplicateAliasError reports a canonical event alias that cannot name a
// shard: it collides with another event's alias (Conflict), or Reason says
// why it is not a usable file name.
type DuplicateAliasError struct {
	Alias    string
	Conflict string
	Reason   string
}

func (e *DuplicateAliasError) Error() string {
	switch {
	case e.Conflict == e.Alias:
		return fmt.Sprintf("store: event alias %q is used more than once", e.Alias)
	case e.Conflict != "":
		return fmt.Sprintf("store: event alias %q collides with %q", e.Alias, e.Conflict)
	default:
		return fmt.Sprintf("store: event alias %q: %s", e.Alias, e.Reason)
	}
}

func (e *DuplicateAliasError) Is(target error) bool { return target == ErrDuplicateAlias }

// ErrorKind classifies the error for callers mapping failures to statuses.
func (e *DuplicateAliasError) ErrorKind() string { return "conflict" }

// NotAStoreError reports a folder without event_group.json.
type NotAStoreError struct {
	Folder string
}

func (e *NotAStoreError) Error() string {
	return fmt.Sprintf("store: %s has no %s", e.Folder, IndexFile)
}

func (e *NotAStoreError) Is(target error) bool { return target == ErrNotAStore }

func (e *NotAStoreError) ErrorKind() string { return "not_found" }

// MissingShardError reports an indexed event whose shard file is absent, or
// an alias the index does not list.
type MissingShardError struct {
	Alias string
}

func (e *MissingShardError) Error() string {
	return fmt.Sprintf("store: no shard for event %q", e.Alias)
}

func (e *MissingShardError) Is(target error) bool { return target == ErrMissingShard }

func (e *MissingShardError) ErrorKind() string { return "not_found" }
