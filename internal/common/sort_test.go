package common

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"stscan-core/scan"
)

func TestSortResults(t *testing.T) {
	rs := []scan.Result{
		{Zone: 3, Duration: 1, Score: 1.0},
		{Zone: 1, Duration: 2, Score: math.Inf(-1)},
		{Zone: 2, Duration: 1, Score: 4.0},
		{Zone: 1, Duration: 1, Score: 4.0},
	}
	SortResults(rs)

	assert.Equal(t, []scan.Result{
		{Zone: 1, Duration: 1, Score: 4.0},
		{Zone: 2, Duration: 1, Score: 4.0},
		{Zone: 3, Duration: 1, Score: 1.0},
		{Zone: 1, Duration: 2, Score: math.Inf(-1)},
	}, rs)
}

func TestLessResult_DurationBreaksFinalTie(t *testing.T) {
	a := scan.Result{Zone: 1, Duration: 1, Score: 2.0}
	b := scan.Result{Zone: 1, Duration: 3, Score: 2.0}
	assert.True(t, LessResult(a, b))
	assert.False(t, LessResult(b, a))
}
