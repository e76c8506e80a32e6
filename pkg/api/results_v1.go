// pkg/api/results_v1.go
package api

import (
	"encoding/json"
	"math"
)

// Score is a float64 that marshals non-finite values as null. JSON has
// no encoding for them, and -Inf is how a no-excess candidate scores.
type Score float64

func (s Score) MarshalJSON() ([]byte, error) {
	f := float64(s)
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return []byte("null"), nil
	}
	return json.Marshal(f)
}

// ResultV1 is the stable JSON schema for one retained candidate row.
// Keep fields, names, and types stable. Add new fields only with
// ",omitempty".
type ResultV1 struct {
	Zone       int     `json:"zone"`
	Duration   int     `json:"duration"`
	Score      Score   `json:"score"`
	RelRiskIn  float64 `json:"relrisk_in"`
	RelRiskOut float64 `json:"relrisk_out"`
}

// NullSummaryV1 summarizes the simulated null distribution.
type NullSummaryV1 struct {
	Rounds int     `json:"rounds"`
	Mean   Score   `json:"mean"`
	StdDev Score   `json:"stddev"`
	Q50    Score   `json:"q50"`
	Q90    Score   `json:"q90"`
	Q95    Score   `json:"q95"`
	Q99    Score   `json:"q99"`
}

// ReportV1 is the stable schema for a full scan run: the observed
// table, the per-round simulation maxima, and the significance summary
// when simulation ran.
type ReportV1 struct {
	Observed   []ResultV1     `json:"observed"`
	Simulation []ResultV1     `json:"simulation,omitempty"`
	PValue     *float64       `json:"p_value,omitempty"`
	Null       *NullSummaryV1 `json:"null_summary,omitempty"`
}
