package dataset

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is matched by NotFoundError through errors.Is.
	ErrNotFound = errors.New("data file not found")

	// ErrEmptyFile is returned when the file has no header row.
	ErrEmptyFile = errors.New("empty data file: no header row")

	// ErrTooManyFields is returned when a data row is wider than the header row.
	// Shorter rows are padded with empty cells instead.
	ErrTooManyFields = errors.New("row has more fields than the header")

	// ErrMissingColumn is returned when a required column is absent after normalization.
	ErrMissingColumn = errors.New("missing required column")
)

// NotFoundError reports that the data file does not exist.
type NotFoundError struct {
	// Path is the path as given by the caller.
	Path string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: %s", ErrNotFound, e.Path)
}

// Is reports whether target is ErrNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// GeneralError wraps any other failure while loading or converting the table.
type GeneralError struct {
	// Op is the stage that failed ("load", "normalize", "coerce").
	Op string

	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *GeneralError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying cause.
func (e *GeneralError) Unwrap() error {
	return e.Err
}
