package poisson

import (
	"math"

	"stscan-core/zone"
)

// Score computes the Poisson log likelihood ratio for the window ending
// at cumulative row endRow restricted to z, plus the relative risks
// inside and outside the zone.
//
// With C the zone count, B the zone baseline and T the grand total:
//
//	riskIn  = C/B
//	riskOut = (T-C)/(T-B), or 1 when T == B (the zone spans everything
//	          observed, so no outside information exists)
//	score   = C·ln(riskIn) + (T-C)·ln(riskOut) when C > B, else -Inf
//
// A candidate with no excess (C <= B) scores -Inf so it can never win a
// maximum comparison. When C == T the outside term is taken at its
// limit, zero, rather than 0·ln(0). B must be positive; callers
// guarantee that via zone.ValidateBaselines.
func (a *Aggregates) Score(z zone.Zone, endRow int) (score, riskIn, riskOut float64) {
	cs := 0
	b := 0.0
	for _, loc := range z {
		cs += a.CumCounts.At(endRow, loc)
		b += a.CumBaselines.At(endRow, loc)
	}
	c := float64(cs)
	total := float64(a.Total)

	riskIn = c / b
	riskOut = 1.0
	if total > b {
		riskOut = (total - c) / (total - b)
	}

	if c <= b {
		return math.Inf(-1), riskIn, riskOut
	}
	score = c * math.Log(riskIn)
	if total > c {
		score += (total - c) * math.Log(riskOut)
	}
	return score, riskIn, riskOut
}
