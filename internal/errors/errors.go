package errors

import (
	"errors"
	"fmt"
	"os"

	"babylog/internal/logger"
)

// Sentinel errors for the record lifecycle. Callers match them with
// errors.Is after any amount of wrapping.
var (
	// ErrValidation marks malformed or inconsistent form input. Nothing is
	// persisted when it is returned.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound marks a delete or close target that does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrAmbiguous marks a lookup key that matches more than one record when
	// exactly one is required.
	ErrAmbiguous = errors.New("key matches multiple records")
	// ErrStore marks a remote read or write failure. After a failed write the
	// table contents must be re-read, never assumed.
	ErrStore = errors.New("store operation failed")
)

// Validationf wraps ErrValidation with a formatted message.
func Validationf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrValidation}, args...)...)
}

// Storef wraps ErrStore with a formatted message.
func Storef(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrStore}, args...)...)
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
