package scan

import "stscan-core/zone"

// Statistic scores one zone-duration candidate and retains the outcome.
// zoneNumber and duration are 0-based here; rows holds the cumulative
// row indices of the window, shortest first, and implementations read
// the aggregate at the last entry.
type Statistic interface {
	Calculate(storageIndex, zoneNumber, duration int, z zone.Zone, rows []int)
}

// ForEachCandidate drives stat over every zone in catalog order and
// every trailing window duration 1..maxDuration. Storage indices are
// sequential in iteration order (zones outer, durations inner), so the
// observed and simulated passes enumerate identically.
func ForEachCandidate(c *zone.Catalog, maxDuration int, stat Statistic) {
	rows := make([]int, maxDuration)
	for i := range rows {
		rows[i] = i
	}
	idx := 0
	for zi, z := range c.Zones {
		for d := 0; d < maxDuration; d++ {
			stat.Calculate(idx, zi, d, z, rows[:d+1])
			idx++
		}
	}
}

// CandidateCount is the number of candidates ForEachCandidate visits,
// and the RetainAll slot count.
func CandidateCount(c *zone.Catalog, maxDuration int) int {
	return c.Len() * maxDuration
}
