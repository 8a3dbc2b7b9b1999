// Package apperrors defines the typed errors of primecount and maps them to
// process exit codes.
//
// Errors that carry a cause implement Unwrap, so callers use errors.Is and
// errors.As through any fmt.Errorf("...: %w") wrapping.
package apperrors
