package svm

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel error kinds. Callers classify failures with errors.Is rather than
// matching message text.
var (
	// ErrNotFound reports a lookup or mutation against an id that is not in
	// the collection.
	ErrNotFound = errors.New("student not found")

	// ErrDuplicateID reports an attempt to introduce an id that is already
	// present in the collection.
	ErrDuplicateID = errors.New("duplicate student id")

	// ErrValidation reports a field constraint violation on a Student.
	ErrValidation = errors.New("validation failed")

	// ErrDataLoad reports that the backing document could not be read or
	// parsed. It is recovered internally by seeding and never escapes
	// service construction.
	ErrDataLoad = errors.New("data load failed")

	// ErrPersistence reports that writing the backing document failed. The
	// in-memory collection is not rolled back; memory and disk stay
	// divergent until the next successful save.
	ErrPersistence = errors.New("persistence failed")

	// ErrNoDocument is returned by a Store whose backing document has never
	// been written. The service responds by materializing the seed data.
	ErrNoDocument = errors.New("no document")
)

// Error is the service-level error carrying the operation that failed and its
// kind. Kind is one of the sentinel errors above.
type Error struct {
	Op   string // operation name, e.g. "add", "delete"
	ID   string // affected student id, may be empty
	Kind error
	Err  error // underlying cause, may be nil
}

func (e *Error) Error() string {
	msg := e.Op
	if e.ID != "" {
		msg += " " + e.ID
	}
	msg += ": " + e.Kind.Error()
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches against the error's kind, so errors.Is(err, ErrNotFound) works
// on wrapped service errors.
func (e *Error) Is(target error) bool { return e.Kind == target }

// FieldError describes a single failed field constraint.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError reports every field of a Student that failed validation.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrValidation.Error()
	}
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = fmt.Sprintf("%s: %s", f.Field, f.Message)
	}
	return fmt.Sprintf("%s: %s", ErrValidation, strings.Join(parts, "; "))
}

// Is reports ErrValidation so callers can classify without a type assertion.
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }
