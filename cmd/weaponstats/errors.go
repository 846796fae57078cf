package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/nao1215/weaponstats/internal/dataset"
)

// Exit codes of a failed run.
const (
	exitGeneral  = 1
	exitNotFound = 2
)

// exitError carries the process exit code of a failure whose message has
// already been printed.
type exitError struct {
	code int
	err  error
}

// Error implements the error interface.
func (e *exitError) Error() string {
	return e.err.Error()
}

// Unwrap returns the underlying cause.
func (e *exitError) Unwrap() error {
	return e.err
}

// reportFailure prints the single-line message for a failed run to w and
// returns an exitError with the matching exit code.
func reportFailure(w io.Writer, err error) error {
	var notFound *dataset.NotFoundError
	if errors.As(err, &notFound) {
		fmt.Fprintf(w, "Error: '%s' not found in the current directory.\n", notFound.Path)
		return &exitError{code: exitNotFound, err: err}
	}

	fmt.Fprintf(w, "An error occurred: %s.\n", err)
	return &exitError{code: exitGeneral, err: err}
}
