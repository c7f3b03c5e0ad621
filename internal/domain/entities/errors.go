package entities

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when the root directory or a required tool is missing.
	ErrNotFound = errors.New("not found")

	// ErrParseFailure is returned when a descriptor file cannot be parsed.
	ErrParseFailure = errors.New("parse failure")

	// ErrProcessFailure is returned when an external tool exits with a non-zero code.
	ErrProcessFailure = errors.New("process failure")

	// ErrValidationFailure is returned when a caller-supplied value is rejected before any I/O.
	ErrValidationFailure = errors.New("validation failure")

	// ErrDirtyWorkspace is returned when files about to be rewritten have uncommitted changes.
	ErrDirtyWorkspace = errors.New("uncommitted changes")
)

// ProcessError describes an external tool that exited unsuccessfully.
type ProcessError struct {
	Tool     string
	ExitCode int
}

// Error reports the tool and its exit code.
func (e *ProcessError) Error() string {
	return fmt.Sprintf("unknown exception with exit code = %d (%s)", e.ExitCode, e.Tool)
}

// Unwrap makes errors.Is(err, ErrProcessFailure) hold.
func (e *ProcessError) Unwrap() error {
	return ErrProcessFailure
}
