package main

import (
	"errors"
	"fmt"
	"testing"

	"dearchive/internal/archive"
	"dearchive/internal/store"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"plain", errors.New("disk on fire"), exitFailure},
		{"not a store", &store.NotAStoreError{Folder: "/x"}, exitDataError},
		{"wrapped duplicate", fmt.Errorf("save: %w", &store.DuplicateAliasError{Alias: "C95", Conflict: "C95"}), exitDataError},
		{"invalid enum", &archive.InvalidEnumError{Field: "reliability", Value: "Bogus"}, exitDataError},
		{"verify issues", &issuesFoundError{folder: "/x", count: 2}, exitDataError},
		{"locked", fmt.Errorf("%w: /x", store.ErrLocked), exitFailure},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCode(tt.err); got != tt.want {
				t.Fatalf("exitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestRootHelp(t *testing.T) {
	out, _, err := runCLI(t, []string{"--help"}, "")
	if err != nil {
		t.Fatalf("help: %v", err)
	}
	for _, name := range []string{"inspect", "verify", "normalize", "export", "import", "catalog"} {
		requireContains(t, out, name)
	}
}
