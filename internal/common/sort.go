// internal/common/sort.go
package common

import (
	"sort"

	"stscan-core/scan"
)

// LessResult orders results best-first for -sort: descending score,
// then zone and duration ascending so equal scores stay deterministic.
func LessResult(a, b scan.Result) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	if a.Zone != b.Zone {
		return a.Zone < b.Zone
	}
	return a.Duration < b.Duration
}

func SortResults(rs []scan.Result) {
	sort.SliceStable(rs, func(i, j int) bool { return LessResult(rs[i], rs[j]) })
}
