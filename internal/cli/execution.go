package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/agbru/primecount/internal/sysmon"
	"github.com/agbru/primecount/internal/ui"
)

// PrintExecutionConfig displays the pool size and the CPUs it was derived from.
//
// Parameters:
//   - host: The sampled CPU topology.
//   - workers: The resolved pool size.
//   - out: The writer for standard output.
func PrintExecutionConfig(host sysmon.Host, workers int, out io.Writer) {
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Environment: %s%d%s logical processors (%s%d%s available, GOMAXPROCS %d), Go %s.\n",
		ui.ColorBlue(), host.NumCPU, ui.ColorReset(),
		ui.ColorBlue(), host.Available, ui.ColorReset(),
		host.GOMAXPROCS, runtime.Version())
	fmt.Fprintf(out, "Worker pool: %s%d%s goroutines.\n\n", ui.ColorMagenta(), workers, ui.ColorReset())
}
