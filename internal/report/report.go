// Package report turns retained scan results and the simulated null
// distribution into a significance summary.
package report

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"

	"stscan-core/scan"
)

// Summary is the significance readout of one scan run.
type Summary struct {
	Best   scan.Result // strongest observed candidate
	Rounds int         // simulation rounds behind PValue

	// Monte Carlo p-value: rank of the observed maximum among the
	// simulated maxima, (1 + #{sim >= obs}) / (1 + rounds).
	PValue float64

	// Null distribution shape. Quantiles cover all rounds; mean and
	// stddev cover only the finite ones (a -Inf round would swallow
	// the moments while leaving the quantiles informative).
	NullMean   float64
	NullStdDev float64
	Q50, Q90   float64
	Q95, Q99   float64
}

// Build computes the summary. observed is either the single retained
// maximum or the full candidate table; sim is one maximum per round and
// may be empty, in which case only Best is filled.
func Build(observed, sim []scan.Result) (Summary, error) {
	if len(observed) == 0 {
		return Summary{}, fmt.Errorf("no observed results")
	}
	s := Summary{Best: observed[0], Rounds: len(sim)}
	for _, r := range observed[1:] {
		if r.Score > s.Best.Score {
			s.Best = r
		}
	}
	if len(sim) == 0 {
		return s, nil
	}

	ge := 0
	all := make([]float64, 0, len(sim))
	finite := make([]float64, 0, len(sim))
	for _, r := range sim {
		if r.Score >= s.Best.Score {
			ge++
		}
		all = append(all, r.Score)
		if !math.IsInf(r.Score, 0) && !math.IsNaN(r.Score) {
			finite = append(finite, r.Score)
		}
	}
	s.PValue = float64(1+ge) / float64(1+len(sim))

	if len(finite) > 0 {
		mean, err := stats.Mean(finite)
		if err != nil {
			return s, err
		}
		s.NullMean = mean
		if len(finite) > 1 {
			sd, err := stats.StandardDeviationSample(finite)
			if err != nil {
				return s, err
			}
			s.NullStdDev = sd
		}
	} else {
		s.NullMean = math.Inf(-1)
	}

	for _, q := range []struct {
		p   float64
		dst *float64
	}{{50, &s.Q50}, {90, &s.Q90}, {95, &s.Q95}, {99, &s.Q99}} {
		v, err := quantile(all, q.p)
		if err != nil {
			return s, err
		}
		*q.dst = v
	}
	return s, nil
}

// quantile tolerates -Inf entries, which stats.Percentile handles but a
// single-element slice needs special casing for.
func quantile(vals []float64, p float64) (float64, error) {
	if len(vals) == 1 {
		return vals[0], nil
	}
	return stats.Percentile(vals, p)
}
