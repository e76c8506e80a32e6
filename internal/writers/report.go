package writers

import (
	"io"

	"stscan/internal/output"
)

func init() {
	Register("text", func(w io.Writer, run Run) error {
		return output.WriteText(w, run.Observed, run.Simulation, run.Summary, run.Header)
	})
	Register("csv", func(w io.Writer, run Run) error {
		// CSV carries the observed table only; see output.WriteCSV.
		return output.WriteCSV(w, run.Observed, run.Header)
	})
	Register("json", func(w io.Writer, run Run) error {
		return output.WriteJSON(w, run.Observed, run.Simulation, run.Summary)
	})
}
