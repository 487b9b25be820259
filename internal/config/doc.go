// Package config loads, normalizes, and validates dearchive configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours the DEARCHIVE_ARCHIVE_DIR
// environment fallback. The Config type centralizes every knob the CLI needs:
// where event-group stores live, where the search catalog is kept, how
// documents are indented, and how logs are written.
//
// Always obtain settings through this package so downstream code receives
// expanded paths, canonical log formats, and clear validation errors.
package config
