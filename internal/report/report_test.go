package report

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stscan-core/scan"
)

func res(zone int, score float64) scan.Result {
	return scan.Result{Zone: zone, Duration: 1, Score: score}
}

func TestBuild_NoObserved(t *testing.T) {
	_, err := Build(nil, nil)
	assert.Error(t, err)
}

func TestBuild_BestOnly(t *testing.T) {
	s, err := Build([]scan.Result{res(1, 2.0), res(2, 5.0), res(3, 3.0)}, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, s.Best.Zone)
	assert.Equal(t, 0, s.Rounds)
	assert.Zero(t, s.PValue)
}

func TestBuild_BestTieKeepsFirst(t *testing.T) {
	s, err := Build([]scan.Result{res(1, 5.0), res(2, 5.0)}, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Best.Zone)
}

func TestBuild_PValue(t *testing.T) {
	observed := []scan.Result{res(1, 4.0)}
	// 2 of 9 rounds reach the observed score: p = (1+2)/(1+9).
	sim := []scan.Result{
		res(1, 1.0), res(1, 4.0), res(1, 2.0), res(1, 0.5), res(1, 5.0),
		res(1, 1.5), res(1, 2.5), res(1, 3.0), res(1, 0.0),
	}
	s, err := Build(observed, sim)
	require.NoError(t, err)
	assert.Equal(t, 9, s.Rounds)
	assert.InDelta(t, 0.3, s.PValue, 1e-12)
}

func TestBuild_NullMoments(t *testing.T) {
	observed := []scan.Result{res(1, 10.0)}
	sim := []scan.Result{res(1, 1.0), res(1, 2.0), res(1, 3.0)}
	s, err := Build(observed, sim)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, s.NullMean, 1e-12)
	assert.InDelta(t, 1.0, s.NullStdDev, 1e-12)
	assert.InDelta(t, 0.1, s.PValue, 1e-12)
}

func TestBuild_NegInfRoundsSkippedInMoments(t *testing.T) {
	observed := []scan.Result{res(1, 10.0)}
	sim := []scan.Result{res(1, math.Inf(-1)), res(1, 2.0), res(1, 4.0)}
	s, err := Build(observed, sim)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, s.NullMean, 1e-12)
	assert.False(t, math.IsInf(s.NullStdDev, 0))
}

func TestBuild_AllNegInfNull(t *testing.T) {
	observed := []scan.Result{res(1, 1.0)}
	sim := []scan.Result{res(1, math.Inf(-1))}
	s, err := Build(observed, sim)
	require.NoError(t, err)
	assert.True(t, math.IsInf(s.NullMean, -1))
	assert.True(t, math.IsInf(s.Q50, -1))
	assert.InDelta(t, 0.5, s.PValue, 1e-12)
}

func TestBuild_QuantilesOrdered(t *testing.T) {
	observed := []scan.Result{res(1, 100.0)}
	sim := make([]scan.Result, 0, 100)
	for i := 0; i < 100; i++ {
		sim = append(sim, res(1, float64(i)))
	}
	s, err := Build(observed, sim)
	require.NoError(t, err)
	assert.LessOrEqual(t, s.Q50, s.Q90)
	assert.LessOrEqual(t, s.Q90, s.Q95)
	assert.LessOrEqual(t, s.Q95, s.Q99)
	assert.InDelta(t, 1.0/101.0, s.PValue, 1e-12)
}
