package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sort"

	"dearchive/internal/archive"
	"dearchive/internal/fileutil"
	"dearchive/internal/logging"
	"dearchive/internal/textutil"
)

const shardExt = ".json"

var reservedAlias = textutil.AliasKey("event_group")

// ShardPath returns the shard file for the event with the given canonical
// alias.
func ShardPath(folder, alias string) string {
	return filepath.Join(folder, alias+shardExt)
}

// IndexPath returns the event_group.json path of a store folder.
func IndexPath(folder string) string {
	return filepath.Join(folder, IndexFile)
}

// IsStore reports whether folder holds an event_group.json file.
func IsStore(folder string) bool {
	info, err := os.Stat(IndexPath(folder))
	return err == nil && info.Mode().IsRegular()
}

type shard struct {
	alias string
	data  []byte
}

// Save writes group into folder, creating the folder when needed. Nothing is
// written unless every event serializes and every canonical alias names a
// distinct, valid shard file. Shards of events no longer in the group are
// left in place.
func Save(group archive.EventGroup, folder string, opts ...Option) error {
	o := buildOptions(opts)

	header, err := group.HeaderDocument()
	if err != nil {
		return err
	}
	idx := Index{GroupHeaderDoc: header, Events: make(IndexEntries, 0, len(group.Events))}
	shards := make([]shard, 0, len(group.Events))
	seen := make(map[string]string, len(group.Events))

	for i, ev := range group.Events {
		doc, err := ev.ToDocument()
		if err != nil {
			return fmt.Errorf("event group %q: events[%d]: %w", header.Aliases[0], i, err)
		}
		alias := doc.Aliases[0]
		if err := checkShardAlias(alias, seen); err != nil {
			return err
		}
		data, err := archive.Marshal(doc, o.indent)
		if err != nil {
			return err
		}
		shards = append(shards, shard{alias: alias, data: data})
		idx.Events = append(idx.Events, newIndexEntry(alias, i, ev))
	}

	indexData, err := archive.Marshal(idx, o.indent)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(folder, 0o755); err != nil {
		return fmt.Errorf("store: create folder: %w", err)
	}
	if err := writeShards(folder, shards, o); err != nil {
		return err
	}
	if err := fileutil.WriteFileAtomic(IndexPath(folder), indexData, 0o644); err != nil {
		return fmt.Errorf("store: write index: %w", err)
	}

	o.logger.Info("saved event group",
		logging.String(logging.FieldStore, folder),
		logging.String("group", header.Aliases[0]),
		logging.Int("events", len(shards)),
	)
	return nil
}

func checkShardAlias(alias string, seen map[string]string) error {
	if err := textutil.ValidateFileName(alias); err != nil {
		return &DuplicateAliasError{Alias: alias, Reason: err.Error()}
	}
	key := textutil.AliasKey(alias)
	if key == reservedAlias {
		return &DuplicateAliasError{Alias: alias, Reason: "is reserved for the group document"}
	}
	if prior, ok := seen[key]; ok {
		return &DuplicateAliasError{Alias: alias, Conflict: prior}
	}
	seen[key] = alias
	return nil
}

// writeShards stages every shard under a temporary name, then renames them
// all into place. A failure while staging removes the staged files and
// leaves existing shards untouched.
func writeShards(folder string, shards []shard, o options) error {
	staged := make([]string, 0, len(shards))
	for _, sh := range shards {
		tmp, err := fileutil.WriteTemp(ShardPath(folder, sh.alias), sh.data, 0o644)
		if err != nil {
			fileutil.RemoveAll(staged)
			return fmt.Errorf("store: stage shard %q: %w", sh.alias, err)
		}
		staged = append(staged, tmp)
	}
	for i, sh := range shards {
		if err := os.Rename(staged[i], ShardPath(folder, sh.alias)); err != nil {
			fileutil.RemoveAll(staged[i:])
			return fmt.Errorf("store: rename shard %q: %w", sh.alias, err)
		}
		o.logger.Debug("wrote shard",
			logging.String(logging.FieldStore, folder),
			logging.String(logging.FieldEventAlias, sh.alias),
			logging.Int("bytes", len(sh.data)),
		)
	}
	if err := fileutil.SyncDir(folder); err != nil {
		return fmt.Errorf("store: sync folder: %w", err)
	}
	return nil
}

// LoadIndex reads event_group.json without opening any shard.
func LoadIndex(folder string) (Index, error) {
	data, err := os.ReadFile(IndexPath(folder))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Index{}, &NotAStoreError{Folder: folder}
		}
		return Index{}, fmt.Errorf("store: read index: %w", err)
	}
	return decodeIndex(data)
}

// Load reads the whole group from folder. Events come back ordered by their
// index position, ties broken by key order in event_group.json.
func Load(folder string, opts ...Option) (archive.EventGroup, error) {
	o := buildOptions(opts)

	idx, err := LoadIndex(folder)
	if err != nil {
		return archive.EventGroup{}, err
	}
	entries := slices.Clone(idx.Events)
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Index < entries[j].Index })

	events := make([]archive.Event, 0, len(entries))
	for _, entry := range entries {
		ev, err := readShard(folder, entry.Alias)
		if err != nil {
			return archive.EventGroup{}, err
		}
		events = append(events, ev)
	}

	group, err := archive.GroupFromHeader(idx.GroupHeaderDoc, events)
	if err != nil {
		return archive.EventGroup{}, err
	}
	o.logger.Info("loaded event group",
		logging.String(logging.FieldStore, folder),
		logging.String("group", group.CanonicalAlias()),
		logging.Int("events", len(events)),
	)
	return group, nil
}

// LoadEvent reads one indexed event.
func LoadEvent(folder, alias string) (archive.Event, error) {
	idx, err := LoadIndex(folder)
	if err != nil {
		return archive.Event{}, err
	}
	if _, _, ok := idx.Events.Lookup(alias); !ok {
		return archive.Event{}, &MissingShardError{Alias: alias}
	}
	return readShard(folder, alias)
}

func readShard(folder, alias string) (archive.Event, error) {
	data, err := os.ReadFile(ShardPath(folder, alias))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return archive.Event{}, &MissingShardError{Alias: alias}
		}
		return archive.Event{}, fmt.Errorf("store: read shard %q: %w", alias, err)
	}
	ev, err := archive.DecodeEvent(data)
	if err != nil {
		return archive.Event{}, fmt.Errorf("shard %q: %w", alias, err)
	}
	if got := ev.CanonicalAlias(); got != alias {
		return archive.Event{}, &archive.MalformedDocumentError{
			Entity: "event",
			Field:  "aliases",
			Err:    fmt.Errorf("canonical alias %q does not match index key %q", got, alias),
		}
	}
	return ev, nil
}

// ReplaceEvent rewrites the shard of an already indexed event and refreshes
// its index hints. The event keeps its index position.
func ReplaceEvent(folder string, ev archive.Event, opts ...Option) error {
	o := buildOptions(opts)

	doc, err := ev.ToDocument()
	if err != nil {
		return err
	}
	alias := doc.Aliases[0]

	idx, err := LoadIndex(folder)
	if err != nil {
		return err
	}
	entry, pos, ok := idx.Events.Lookup(alias)
	if !ok {
		return &MissingShardError{Alias: alias}
	}

	data, err := archive.Marshal(doc, o.indent)
	if err != nil {
		return err
	}
	refreshed := newIndexEntry(alias, entry.Index, ev)
	idx.Events[pos] = refreshed
	indexData, err := archive.Marshal(idx, o.indent)
	if err != nil {
		return err
	}

	if err := fileutil.WriteFileAtomic(ShardPath(folder, alias), data, 0o644); err != nil {
		return fmt.Errorf("store: write shard %q: %w", alias, err)
	}
	if err := fileutil.WriteFileAtomic(IndexPath(folder), indexData, 0o644); err != nil {
		return fmt.Errorf("store: write index: %w", err)
	}
	o.logger.Info("replaced event",
		logging.String(logging.FieldStore, folder),
		logging.String(logging.FieldEventAlias, alias),
	)
	return nil
}
