package poisson

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"stscan-core/table"
)

// Generator produces one freshly drawn raw count table per call, shaped
// like the observed input and consistent with the baseline model. Each
// simulation round calls it exactly once.
type Generator interface {
	SimulateCounts() (*table.IntTable, error)
}

// MultinomialGenerator redistributes the observed grand total across
// all cells with probability proportional to each cell's baseline: the
// null model of the population-based Poisson scan, which conditions on
// the total count. Draws use the sequential-binomial decomposition of
// the multinomial.
type MultinomialGenerator struct {
	baselines *table.FloatTable
	total     int
	totalB    float64
	src       rand.Source
}

// NewMultinomialGenerator conditions on total observed events. The
// baselines must not sum to zero.
func NewMultinomialGenerator(baselines *table.FloatTable, total int, seed uint64) (*MultinomialGenerator, error) {
	totalB := baselines.Total()
	if totalB <= 0 {
		return nil, fmt.Errorf("baselines sum to %g; the conditional model needs positive mass", totalB)
	}
	if total < 0 {
		return nil, fmt.Errorf("negative total count %d", total)
	}
	return &MultinomialGenerator{
		baselines: baselines,
		total:     total,
		totalB:    totalB,
		src:       rand.NewSource(seed),
	}, nil
}

func (g *MultinomialGenerator) SimulateCounts() (*table.IntTable, error) {
	out := table.NewInt(g.baselines.Rows, g.baselines.Cols)
	remaining := g.total
	remainingB := g.totalB
	for r := 0; r < g.baselines.Rows && remaining > 0; r++ {
		for c := 0; c < g.baselines.Cols && remaining > 0; c++ {
			b := g.baselines.At(r, c)
			if b <= 0 {
				continue
			}
			var draw int
			if b >= remainingB {
				// Last cell with mass; rounding may leave p slightly
				// above 1, so take everything that is left.
				draw = remaining
			} else {
				bin := distuv.Binomial{N: float64(remaining), P: b / remainingB, Src: g.src}
				draw = int(bin.Rand())
			}
			out.Set(r, c, draw)
			remaining -= draw
			remainingB -= b
		}
	}
	return out, nil
}

// IndependentGenerator draws every cell independently from a Poisson
// distribution with the cell's baseline as mean (the unconditional
// null, for callers that do not want to fix the total).
type IndependentGenerator struct {
	baselines *table.FloatTable
	src       rand.Source
}

func NewIndependentGenerator(baselines *table.FloatTable, seed uint64) *IndependentGenerator {
	return &IndependentGenerator{baselines: baselines, src: rand.NewSource(seed)}
}

func (g *IndependentGenerator) SimulateCounts() (*table.IntTable, error) {
	out := table.NewInt(g.baselines.Rows, g.baselines.Cols)
	for r := 0; r < g.baselines.Rows; r++ {
		for c := 0; c < g.baselines.Cols; c++ {
			b := g.baselines.At(r, c)
			if b <= 0 {
				continue
			}
			pois := distuv.Poisson{Lambda: b, Src: g.src}
			out.Set(r, c, int(pois.Rand()))
		}
	}
	return out, nil
}
