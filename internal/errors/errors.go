package apperrors

import (
	"errors"
	"fmt"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess       = 0 // Indicates successful execution.
	ExitErrorGeneric  = 1 // Indicates a generic error (unreadable input, failed report write).
	ExitErrorMismatch = 3 // Indicates the sequential and parallel counts disagree.
	ExitErrorConfig   = 4 // Indicates a configuration error.
)

// ConfigError represents a user configuration error, such as a missing input
// path or an invalid flag value. It indicates that the application cannot
// proceed due to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// InputError reports that the input file could not be opened or read.
// Individual malformed lines are never an InputError; they are skipped.
type InputError struct {
	// Path is the file that failed to load.
	Path string
	// Cause is the underlying I/O error.
	Cause error
}

// Error returns the underlying cause message, prefixed with the path.
func (e InputError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Cause)
}

// Unwrap returns the original I/O error.
func (e InputError) Unwrap() error { return e.Cause }

// ValidationError represents an input validation failure. It identifies which
// field failed validation and provides a human-readable explanation.
type ValidationError struct {
	// Field is the name of the field that failed validation.
	Field string
	// Message explains the validation failure.
	Message string
}

// Error returns a formatted message describing the validation failure.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// MismatchError is returned when the sequential and parallel strategies
// produced different prime counts for the same input.
type MismatchError struct {
	Sequential int64
	Parallel   int64
}

// Error returns a formatted message naming both counts.
func (e MismatchError) Error() string {
	return fmt.Sprintf("prime count mismatch: sequential=%d parallel=%d", e.Sequential, e.Parallel)
}

// OutputError reports a failure to write a result artefact (report file,
// metrics textfile). Console output has already been produced when it occurs.
type OutputError struct {
	// Kind names the artefact, e.g. "report" or "metrics".
	Kind string
	// Path is the destination that could not be written.
	Path string
	// Cause is the underlying error.
	Cause error
}

// Error returns a formatted message describing the write failure.
func (e OutputError) Error() string {
	return fmt.Sprintf("failed to write %s to %s: %v", e.Kind, e.Path, e.Cause)
}

// Unwrap returns the underlying error.
func (e OutputError) Unwrap() error { return e.Cause }

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// ExitCodeFor maps an error to the process exit code.
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var (
		configErr     ConfigError
		validationErr ValidationError
		mismatchErr   MismatchError
	)
	switch {
	case errors.As(err, &configErr), errors.As(err, &validationErr):
		return ExitErrorConfig
	case errors.As(err, &mismatchErr):
		return ExitErrorMismatch
	default:
		return ExitErrorGeneric
	}
}
