// Package errors defines the application error taxonomy and the CLI-facing
// formatting helpers.
package errors

import (
	"errors"
	"fmt"
	"os"

	"github.com/habitflow/habitflow/internal/logger"
)

// ErrNotFound is returned when an operation references an unknown habit id.
var ErrNotFound = errors.New("not found")

// ValidationError reports a habit draft or patch that was rejected before
// reaching the repository. The UI surfaces it for inline correction.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// StorageReadError wraps an underlying storage read failure. The repository
// recovers from it by substituting defaults; it is never fatal.
type StorageReadError struct {
	Err error
}

func (e *StorageReadError) Error() string {
	return fmt.Sprintf("storage read failed: %v", e.Err)
}

func (e *StorageReadError) Unwrap() error { return e.Err }

// StorageWriteError wraps an underlying storage write failure. It propagates
// to the caller; the in-memory state is not rolled back.
type StorageWriteError struct {
	Err error
}

func (e *StorageWriteError) Error() string {
	return fmt.Sprintf("storage write failed: %v", e.Err)
}

func (e *StorageWriteError) Unwrap() error { return e.Err }

// IsNotFound reports whether err is or wraps ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}
