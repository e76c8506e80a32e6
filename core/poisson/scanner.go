package poisson

import (
	"fmt"

	"stscan-core/scan"
	"stscan-core/table"
	"stscan-core/zone"
)

// Scanner evaluates the Poisson scan statistic over a zone catalog:
// one observed-data pass, then an optional Monte Carlo pass that
// replays the identical candidate enumeration over simulated counts.
type Scanner struct {
	agg       *Aggregates
	baselines *table.FloatTable // raw, reshared by generators and shape checks
	zones     *zone.Catalog
	maxDur    int
	numSim    int
	store     *scan.Store
	simulated bool
}

// New builds a Scanner over raw (non-cumulative) counts and baselines.
// Row 0 of both tables is the most recent time step. storeEverything
// retains every observed candidate instead of only the maximum;
// numSimulations sizes the Monte Carlo pass run later by Simulate.
func New(counts *table.IntTable, baselines *table.FloatTable, zones *zone.Catalog,
	maxDuration int, storeEverything bool, numSimulations int) (*Scanner, error) {

	if maxDuration < 1 || maxDuration > counts.Rows {
		return nil, fmt.Errorf("max duration %d out of range 1..%d", maxDuration, counts.Rows)
	}
	if numSimulations < 0 {
		return nil, fmt.Errorf("negative simulation count %d", numSimulations)
	}
	if err := zones.Validate(counts.Cols); err != nil {
		return nil, err
	}
	agg, err := NewAggregates(counts, baselines)
	if err != nil {
		return nil, err
	}
	return &Scanner{
		agg:       agg,
		baselines: baselines,
		zones:     zones,
		maxDur:    maxDuration,
		numSim:    numSimulations,
		store:     scan.NewStore(storeEverything, scan.CandidateCount(zones, maxDuration), numSimulations),
	}, nil
}

// Calculate implements scan.Statistic: score the candidate against the
// current aggregates and hand the result to the retention store.
// zoneNumber and duration arrive 0-based and are stored 1-based.
func (s *Scanner) Calculate(storageIndex, zoneNumber, duration int, z zone.Zone, rows []int) {
	endRow := rows[len(rows)-1]
	score, in, out := s.agg.Score(z, endRow)
	s.store.Put(storageIndex, scan.Result{
		Zone:       zoneNumber + 1,
		Duration:   duration + 1,
		Score:      score,
		RelRiskIn:  in,
		RelRiskOut: out,
	})
}

// Scan runs the observed-data pass.
func (s *Scanner) Scan() {
	scan.ForEachCandidate(s.zones, s.maxDur, s)
}

// Simulate runs the full Monte Carlo pass: for each round it draws a
// fresh raw count table from gen, rebuilds the cumulative aggregates
// (baselines keep their original cumulative table), and rescans every
// candidate with per-round maximum retention. A generator failure
// aborts the whole run; a truncated null distribution would silently
// bias downstream significance levels. Simulate may run once.
func (s *Scanner) Simulate(gen Generator) error {
	if s.simulated {
		return fmt.Errorf("simulation already run")
	}
	s.simulated = true
	s.store.BeginSimulation()
	for round := 0; round < s.numSim; round++ {
		counts, err := gen.SimulateCounts()
		if err != nil {
			return fmt.Errorf("simulation round %d: %w", round+1, err)
		}
		if counts.Rows != s.baselines.Rows || counts.Cols != s.baselines.Cols {
			return fmt.Errorf("simulation round %d: generator returned %dx%d table, want %dx%d",
				round+1, counts.Rows, counts.Cols, s.baselines.Rows, s.baselines.Cols)
		}
		// Ownership transfer: the previous round's aggregates are
		// dropped wholesale, never patched in place.
		s.agg = &Aggregates{
			CumCounts:    counts.CumSum(),
			CumBaselines: s.agg.CumBaselines,
			Total:        counts.Total(),
		}
		s.store.SetRound(round)
		scan.ForEachCandidate(s.zones, s.maxDur, s)
	}
	return nil
}

// DrawSample is a per-cell sampling hook shared with statistic variants
// that weight individual cells stochastically. The count-based Poisson
// statistic has no such weighting, so it is a constant.
func (s *Scanner) DrawSample(row, col int) int { return 1 }

// Observed returns the retained observed-data results: every candidate
// in iteration order under storeEverything, otherwise the single best.
func (s *Scanner) Observed() []scan.Result { return s.store.Observed() }

// Simulated returns one maximum per simulation round.
func (s *Scanner) Simulated() []scan.Result { return s.store.Simulated() }
