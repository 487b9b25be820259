package archive

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation matches every *ValidationError.
	ErrValidation = errors.New("validation failed")
	// ErrInvalidEnum matches every *InvalidEnumError.
	ErrInvalidEnum = errors.New("invalid enum value")
	// ErrMalformedDocument matches every *MalformedDocumentError.
	ErrMalformedDocument = errors.New("malformed document")
)

// ValidationError reports an entity whose mandatory field cannot be
// serialized.
type ValidationError struct {
	Entity string
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("archive: invalid %s: %s %s", e.Entity, e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// ErrorKind classifies the error for callers mapping failures to statuses.
func (e *ValidationError) ErrorKind() string { return "validation" }

// InvalidEnumError reports a string that names no member of a closed
// enumeration.
type InvalidEnumError struct {
	Field string
	Value string
}

func (e *InvalidEnumError) Error() string {
	return fmt.Sprintf("archive: invalid %s %q", e.Field, e.Value)
}

func (e *InvalidEnumError) Is(target error) bool { return target == ErrInvalidEnum }

func (e *InvalidEnumError) ErrorKind() string { return "validation" }

// MalformedDocumentError reports a document that is missing a required key
// or holds a value of the wrong shape.
type MalformedDocumentError struct {
	Entity string
	Field  string
	Err    error
}

func (e *MalformedDocumentError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("archive: malformed %s document: %v", e.Entity, e.Err)
	}
	return fmt.Sprintf("archive: malformed %s document: %s: %v", e.Entity, e.Field, e.Err)
}

func (e *MalformedDocumentError) Unwrap() error { return e.Err }

func (e *MalformedDocumentError) Is(target error) bool { return target == ErrMalformedDocument }

func (e *MalformedDocumentError) ErrorKind() string { return "validation" }

var errMissing = errors.New("required key missing or empty")

func missing(entity, field string) error {
	return &MalformedDocumentError{Entity: entity, Field: field, Err: errMissing}
}

func invalid(entity, field, reason string) error {
	return &ValidationError{Entity: entity, Field: field, Reason: reason}
}

func checkAliases(entity string, aliases []string) error {
	if len(aliases) == 0 {
		return invalid(entity, "aliases", "must hold at least one alias")
	}
	if aliases[0] == "" {
		return invalid(entity, "aliases", "canonical alias is empty")
	}
	return nil
}
