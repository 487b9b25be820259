// Package presence decides whether an optional value is worth emitting.
//
// Optional fields in archive documents are either absent or present and
// meaningful. An empty string, an empty list, and a list holding a single
// empty string all count as absent. Lists of two or more elements are always
// present, whatever they contain.
//
// Serialization is the only caller. Entities keep whatever raw values the
// collector handed them and the predicate is applied once, when a document
// is built, so a value that passes here passes again after any number of
// load/save cycles.
package presence
