package scan

import "math"

// Store retains candidate results under one of three policies: keep
// every candidate, keep the single running maximum, or keep one running
// maximum per simulation round. The policy is fixed as a stored
// function value at construction (and switched once, permanently, by
// BeginSimulation), so the per-candidate path never branches on mode.
type Store struct {
	put      func(slot int, r Result)
	observed []Result
	sim      []Result
	round    int
}

// NewStore sizes the observed collection from numCandidates when
// storeEverything is set (one slot per candidate) or to a single
// maximum slot otherwise, and the simulation collection to one slot
// per round. All slots start at -Inf so no-excess candidates can never
// win a maximum comparison.
func NewStore(storeEverything bool, numCandidates, numSimulations int) *Store {
	s := &Store{sim: negInfSlots(numSimulations)}
	if storeEverything {
		s.observed = negInfSlots(numCandidates)
		s.put = s.putAll
	} else {
		s.observed = negInfSlots(1)
		s.put = s.putMax
	}
	return s
}

// Put records r under the active retention policy. slot is the
// candidate's sequential storage index; the maximum policies ignore it.
func (s *Store) Put(slot int, r Result) { s.put(slot, r) }

// BeginSimulation switches retention to per-round maxima. The switch is
// one-way: observed-data policies are never used again.
func (s *Store) BeginSimulation() { s.put = s.putSim }

// SetRound selects the simulation round subsequent Puts compare
// against.
func (s *Store) SetRound(round int) { s.round = round }

// Observed returns the retained observed-data results: every candidate
// in slot order, or the single maximum.
func (s *Store) Observed() []Result { return s.observed }

// Simulated returns one maximum per simulation round.
func (s *Store) Simulated() []Result { return s.sim }

func (s *Store) putAll(slot int, r Result) { s.observed[slot] = r }

// Strict > keeps the earliest-seen candidate on ties.
func (s *Store) putMax(_ int, r Result) {
	if r.Score > s.observed[0].Score {
		s.observed[0] = r
	}
}

func (s *Store) putSim(_ int, r Result) {
	if r.Score > s.sim[s.round].Score {
		s.sim[s.round] = r
	}
}

func negInfSlots(n int) []Result {
	out := make([]Result, n)
	for i := range out {
		out[i].Score = math.Inf(-1)
	}
	return out
}
