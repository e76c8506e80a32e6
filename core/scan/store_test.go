package scan

import (
	"math"
	"testing"
)

func TestRetainAllKeepsEveryRow(t *testing.T) {
	s := NewStore(true, 3, 0)
	for i := 0; i < 3; i++ {
		s.Put(i, Result{Zone: i + 1, Duration: 1, Score: float64(i)})
	}
	got := s.Observed()
	if len(got) != 3 {
		t.Fatalf("got %d rows, want 3", len(got))
	}
	for i, r := range got {
		if r.Zone != i+1 || r.Score != float64(i) {
			t.Errorf("row %d = %+v", i, r)
		}
	}
}

func TestRetainMaxStrictGreater(t *testing.T) {
	s := NewStore(false, 10, 0)

	s.Put(0, Result{Zone: 1, Duration: 1, Score: 5.2})
	// Exact tie: the earlier candidate must survive.
	s.Put(1, Result{Zone: 2, Duration: 3, Score: 5.2})

	got := s.Observed()
	if len(got) != 1 {
		t.Fatalf("got %d rows, want 1", len(got))
	}
	if got[0].Zone != 1 || got[0].Duration != 1 {
		t.Errorf("tie broke to later candidate: %+v", got[0])
	}

	s.Put(2, Result{Zone: 3, Duration: 2, Score: 6})
	if got := s.Observed(); got[0].Zone != 3 {
		t.Errorf("greater score not retained: %+v", got[0])
	}
}

func TestNegInfNeverWins(t *testing.T) {
	s := NewStore(false, 4, 0)
	s.Put(0, Result{Zone: 1, Duration: 1, Score: math.Inf(-1)})
	if !math.IsInf(s.Observed()[0].Score, -1) {
		t.Fatal("empty store should stay at -Inf")
	}
	if s.Observed()[0].Zone != 0 {
		t.Fatal("-Inf candidate must not be stored")
	}

	s.Put(1, Result{Zone: 2, Duration: 1, Score: 0.1})
	s.Put(2, Result{Zone: 3, Duration: 1, Score: math.Inf(-1)})
	if s.Observed()[0].Zone != 2 {
		t.Errorf("finite candidate lost to -Inf: %+v", s.Observed()[0])
	}
}

func TestRetainSimMaxRoundsIndependent(t *testing.T) {
	s := NewStore(false, 4, 3)
	s.BeginSimulation()

	s.SetRound(0)
	s.Put(0, Result{Zone: 1, Duration: 1, Score: 2})
	s.Put(0, Result{Zone: 2, Duration: 1, Score: 1}) // lower, ignored

	s.SetRound(2)
	s.Put(0, Result{Zone: 3, Duration: 2, Score: 7})

	sim := s.Simulated()
	if sim[0].Zone != 1 || sim[0].Score != 2 {
		t.Errorf("round 0 = %+v", sim[0])
	}
	if !math.IsInf(sim[1].Score, -1) {
		t.Errorf("untouched round 1 should be -Inf, got %+v", sim[1])
	}
	if sim[2].Zone != 3 || sim[2].Score != 7 {
		t.Errorf("round 2 = %+v", sim[2])
	}
}

func TestBeginSimulationSwitchIsPermanent(t *testing.T) {
	s := NewStore(true, 2, 1)
	s.Put(0, Result{Zone: 1, Duration: 1, Score: 3})
	s.BeginSimulation()
	s.SetRound(0)
	s.Put(1, Result{Zone: 2, Duration: 1, Score: 9})

	// Observed slots must be untouched by post-switch writes.
	if s.Observed()[0].Zone != 1 {
		t.Errorf("observed slot clobbered: %+v", s.Observed()[0])
	}
	if math.IsInf(s.Observed()[1].Score, -1) == false {
		t.Errorf("observed slot 1 written after switch: %+v", s.Observed()[1])
	}
	if s.Simulated()[0].Zone != 2 {
		t.Errorf("simulation slot missed: %+v", s.Simulated()[0])
	}
}
