// Package scan holds the statistic-agnostic scaffolding of a space-time
// scan: the retained result record, the retention store, and the
// candidate iteration that drives a Statistic over every zone and
// window duration.
package scan

// Result is one retained candidate evaluation. Zone and Duration are
// 1-based, matching the exported tables.
type Result struct {
	Zone       int
	Duration   int
	Score      float64
	RelRiskIn  float64
	RelRiskOut float64
}
