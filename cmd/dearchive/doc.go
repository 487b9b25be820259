// Package main hosts the dearchive CLI entrypoint and command graph.
//
// The Cobra-based command tree inspects, verifies, normalizes, exports, and
// imports event-group stores, and builds and queries the SQLite catalog that
// spans them. It centralizes configuration resolution, logger setup, and the
// per-store writer lock so subcommands can focus on presentation.
//
// Keep this package lean: add new functionality to the internal packages
// first, then surface it through dedicated commands or flags here.
package main
