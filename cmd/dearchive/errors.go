package main

import (
	"errors"
	"fmt"

	"dearchive/internal/catalog"
)

// errorClassifier is implemented by the typed errors of the archive, store,
// and catalog packages.
type errorClassifier interface {
	ErrorKind() string
}

const (
	exitFailure   = 1
	exitDataError = 2
)

// exitCode returns 2 for problems with the archived data or the requested
// names, and 1 for everything else (I/O, configuration, usage).
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var classifier errorClassifier
	if errors.As(err, &classifier) {
		switch classifier.ErrorKind() {
		case "validation", "not_found", "conflict":
			return exitDataError
		}
	}
	if errors.Is(err, catalog.ErrGroupNotFound) {
		return exitDataError
	}
	return exitFailure
}

// issuesFoundError fails verify when the report is not clean.
type issuesFoundError struct {
	folder string
	count  int
}

func (e *issuesFoundError) Error() string {
	return fmt.Sprintf("verify: %d issue(s) in %s", e.count, e.folder)
}

func (e *issuesFoundError) ErrorKind() string { return "validation" }
