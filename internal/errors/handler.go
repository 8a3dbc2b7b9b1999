package apperrors

import (
	"errors"
	"fmt"
	"io"
)

// ColorProvider supplies the escape codes used when rendering error messages.
// A nil provider renders plain text.
type ColorProvider interface {
	Red() string
	Yellow() string
	Reset() string
}

// HandleError prints a user-facing message for err and returns the exit code
// that corresponds to its class.
//
// Parameters:
//   - err: The error to report. A nil error prints nothing.
//   - out: The writer for the message (normally stderr).
//   - colors: Optional colour codes.
//
// Returns:
//   - int: The exit code for err.
func HandleError(err error, out io.Writer, colors ColorProvider) int {
	if err == nil {
		return ExitSuccess
	}
	red, yellow, reset := "", "", ""
	if colors != nil {
		red, yellow, reset = colors.Red(), colors.Yellow(), colors.Reset()
	}

	var (
		inputErr    InputError
		mismatchErr MismatchError
		outputErr   OutputError
	)
	switch {
	case errors.As(err, &inputErr):
		fmt.Fprintf(out, "%sError reading file: %v%s\n", red, inputErr.Cause, reset)
	case errors.As(err, &mismatchErr):
		fmt.Fprintf(out, "%sCRITICAL: %v%s\n", red, mismatchErr, reset)
	case errors.As(err, &outputErr):
		fmt.Fprintf(out, "%sError saving %s: %v%s\n", yellow, outputErr.Kind, outputErr.Cause, reset)
	default:
		fmt.Fprintf(out, "%sError: %v%s\n", red, err, reset)
	}
	return ExitCodeFor(err)
}
