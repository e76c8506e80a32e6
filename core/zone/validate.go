package zone

import (
	"fmt"

	"stscan-core/table"
)

// ValidateBaselines enforces the scan precondition that every
// zone-duration candidate aggregates a strictly positive baseline.
// Baselines are non-negative and accumulate over time, so the shortest
// window (row 0 alone) is the minimum; checking it covers all
// durations.
func ValidateBaselines(c *Catalog, baselines *table.FloatTable) error {
	for zi, z := range c.Zones {
		sum := 0.0
		for _, loc := range z {
			sum += baselines.At(0, loc)
		}
		if sum <= 0 {
			return fmt.Errorf("zone %d has zero baseline in the most recent time step; every candidate needs a positive expected count", zi+1)
		}
	}
	return nil
}
