// Package format holds pure string formatting helpers shared by the CLI and
// TUI presenters.
package format

import (
	"fmt"
	"math"
	"time"
)

// FormatExecutionDuration formats a time.Duration for display.
// It shows microseconds for durations less than a millisecond, milliseconds for
// durations less than a second, and the default string representation otherwise.
//
// Parameters:
//   - d: The duration to format.
//
// Returns:
//   - string: A formatted string representing the duration.
func FormatExecutionDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}

// FormatMillis renders d in milliseconds with one decimal digit, e.g. "12.3".
func FormatMillis(d time.Duration) string {
	return fmt.Sprintf("%.1f", float64(d.Nanoseconds())/1e6)
}

// FormatSpeedup renders a speedup ratio with two decimal digits.
// An infinite ratio (zero parallel time) renders as "inf".
func FormatSpeedup(ratio float64) string {
	if math.IsInf(ratio, 1) {
		return "inf"
	}
	return fmt.Sprintf("%.2f", ratio)
}
