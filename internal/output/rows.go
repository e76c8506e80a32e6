// internal/output/rows.go
package output

import (
	"strconv"
	"strings"

	"stscan-core/scan"

	"stscan/pkg/api"
)

// Column order of both result tables. Fixed; downstream tooling keys
// on these names.
var Columns = []string{"zone", "duration", "score", "relrisk_in", "relrisk_out"}

// Fields renders one result as strings in Columns order. Non-finite
// scores keep Go's float formatting ("-Inf"), which round-trips through
// ParseFloat.
func Fields(r scan.Result) []string {
	return []string{
		strconv.Itoa(r.Zone),
		strconv.Itoa(r.Duration),
		formatFloat(r.Score),
		formatFloat(r.RelRiskIn),
		formatFloat(r.RelRiskOut),
	}
}

// Header returns the tab-joined column names.
func Header() string { return strings.Join(Columns, "\t") }

// Row returns the tab-joined fields of one result.
func Row(r scan.Result) string { return strings.Join(Fields(r), "\t") }

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// ToAPIResult converts a kernel result to the stable wire schema (v1).
func ToAPIResult(r scan.Result) api.ResultV1 {
	return api.ResultV1{
		Zone:       r.Zone,
		Duration:   r.Duration,
		Score:      api.Score(r.Score),
		RelRiskIn:  r.RelRiskIn,
		RelRiskOut: r.RelRiskOut,
	}
}

// ToAPIResults converts a result slice to the stable wire schema.
func ToAPIResults(list []scan.Result) []api.ResultV1 {
	out := make([]api.ResultV1, 0, len(list))
	for _, r := range list {
		out = append(out, ToAPIResult(r))
	}
	return out
}
