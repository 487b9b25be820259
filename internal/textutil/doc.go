// Package textutil holds the string rules that decide how names map onto
// files.
//
// An event's canonical alias becomes the name of its shard file, so it must
// survive every filesystem the archive is copied to. ValidateFileName rejects
// aliases that cannot be used verbatim, and AliasKey folds aliases the way
// case-insensitive, normalizing filesystems (macOS, Windows) compare names,
// so two aliases that would land on the same file are caught before writing.
// SanitizeFileName derives a safe file name from free text for outputs whose
// name is not part of the on-disk format.
package textutil
