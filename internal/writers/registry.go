// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"

	"stscan-core/scan"

	"stscan/internal/report"
)

// Run is everything a report writer renders.
type Run struct {
	Observed   []scan.Result
	Simulation []scan.Result
	Summary    *report.Summary
	Header     bool
}

// ReportWriters maps format to handler. Formats register in init()
// blocks from report.go; last registration wins.
var ReportWriters = map[string]func(w io.Writer, run Run) error{}

func Register(format string, fn func(io.Writer, Run) error) { ReportWriters[format] = fn }

// Write dispatches one run to the writer registered for format.
func Write(format string, w io.Writer, run Run) error {
	fn, ok := ReportWriters[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(w, run)
}
