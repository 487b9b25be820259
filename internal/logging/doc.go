// Package logging assembles structured slog loggers and formatting helpers used
// across dearchive packages.
//
// It owns the configurable console/JSON handlers, centralizes level and output
// plumbing, and exposes attribute helpers so store, catalog and CLI code tag
// log lines with the same keys (component, store folder, event alias). The
// package also provides a no-op logger for tests and library callers that do
// not want output.
//
// Prefer these constructors over hand-rolled slog setup so every component
// emits records with the same shape.
package logging
