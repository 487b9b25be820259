// Package store persists an archive.EventGroup as a folder: event_group.json
// holds the group-level fields and an ordered index of events, and each
// event lives in its own <canonical-alias>.json shard with its circles.
//
// Save validates every event before touching the disk, stages all shards
// under temporary names, renames them into place, and rewrites
// event_group.json last so the index never references a shard that was not
// written. Load reads the index, then each shard in index order.
//
// The package does not lock. Callers that mutate a store take Lock first;
// the CLI does this around every mutating command.
package store
