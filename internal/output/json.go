// internal/output/json.go
package output

import (
	"io"

	"stscan-core/scan"

	"stscan/internal/jsonutil"
	"stscan/internal/report"
	"stscan/pkg/api"
)

// BuildReport assembles the stable v1 report payload.
func BuildReport(observed, sim []scan.Result, sum *report.Summary) api.ReportV1 {
	rep := api.ReportV1{
		Observed:   ToAPIResults(observed),
		Simulation: ToAPIResults(sim),
	}
	if sum != nil && sum.Rounds > 0 {
		p := sum.PValue
		rep.PValue = &p
		rep.Null = &api.NullSummaryV1{
			Rounds: sum.Rounds,
			Mean:   api.Score(sum.NullMean),
			StdDev: api.Score(sum.NullStdDev),
			Q50:    api.Score(sum.Q50),
			Q90:    api.Score(sum.Q90),
			Q95:    api.Score(sum.Q95),
			Q99:    api.Score(sum.Q99),
		}
	}
	return rep
}

// WriteJSON writes the full run as a pretty-indented v1 report.
func WriteJSON(w io.Writer, observed, sim []scan.Result, sum *report.Summary) error {
	return jsonutil.EncodePretty(w, BuildReport(observed, sim, sum))
}
