// Package poisson implements the population-based Poisson space-time
// scan statistic: cumulative aggregates, the likelihood-ratio score,
// the scanner that evaluates every candidate, and the Monte Carlo null
// machinery.
package poisson

import (
	"fmt"

	"stscan-core/table"
)

// Aggregates holds the cumulative observed counts and baselines the
// score reads, plus the observed grand total. Both tables accumulate
// down the time axis, so row r column c is the window sum for the
// trailing window of depth r+1 at location c.
type Aggregates struct {
	CumCounts    *table.IntTable
	CumBaselines *table.FloatTable
	Total        int
}

// NewAggregates builds cumulative tables from raw inputs. The raw
// tables must share one shape.
func NewAggregates(counts *table.IntTable, baselines *table.FloatTable) (*Aggregates, error) {
	if counts.Rows != baselines.Rows || counts.Cols != baselines.Cols {
		return nil, fmt.Errorf("counts are %dx%d but baselines are %dx%d",
			counts.Rows, counts.Cols, baselines.Rows, baselines.Cols)
	}
	return &Aggregates{
		CumCounts:    counts.CumSum(),
		CumBaselines: baselines.CumSum(),
		Total:        counts.Total(),
	}, nil
}
