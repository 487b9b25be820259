// Package catalog maintains a SQLite index over many event-group stores so
// circles can be searched across every event without loading each store.
//
// The catalog is derived data. Build discovers stores under an archive root,
// loads them concurrently, and replaces the whole catalog in one
// transaction; nothing in the catalog is ever written back to a store.
// Schema changes bump schemaVersion, and an out-of-date database must be
// deleted and rebuilt.
package catalog
