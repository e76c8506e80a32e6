package output

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stscan-core/scan"

	"stscan/internal/report"
	"stscan/pkg/api"
)

var sample = []scan.Result{
	{Zone: 2, Duration: 2, Score: 4.5, RelRiskIn: 3, RelRiskOut: 0.5},
	{Zone: 1, Duration: 1, Score: math.Inf(-1), RelRiskIn: 0.5, RelRiskOut: 1.25},
}

func TestRow_NegInfRoundTrips(t *testing.T) {
	row := Row(sample[1])
	assert.Equal(t, "1\t1\t-Inf\t0.5\t1.25", row)
}

func TestHeader_MatchesColumns(t *testing.T) {
	assert.Equal(t, "zone\tduration\tscore\trelrisk_in\trelrisk_out", Header())
}

func TestWriteText_ObservedOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, sample, nil, nil, true))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, Header(), lines[0])
	assert.Equal(t, "2\t2\t4.5\t3\t0.5", lines[1])
	assert.NotContains(t, buf.String(), "# simulation")
}

func TestWriteText_WithSimulation(t *testing.T) {
	sim := []scan.Result{{Zone: 1, Duration: 1, Score: 1.5, RelRiskIn: 1.2, RelRiskOut: 0.9}}
	sum, err := report.Build(sample, sim)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, sample, sim, &sum, true))

	out := buf.String()
	assert.Contains(t, out, "# simulation")
	assert.Contains(t, out, "# p_value\t0.5")
	assert.Contains(t, out, "# null_mean\t1.5")
	assert.Contains(t, out, "# null_q50\t1.5")
}

func TestWriteText_NoHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, sample[:1], nil, nil, false))
	assert.Equal(t, "2\t2\t4.5\t3\t0.5\n", buf.String())
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sample, true))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "zone,duration,score,relrisk_in,relrisk_out", lines[0])
	assert.Equal(t, "1,1,-Inf,0.5,1.25", lines[2])
}

func TestWriteJSON_NonFiniteScoreIsNull(t *testing.T) {
	sim := []scan.Result{{Zone: 1, Duration: 1, Score: 1.5}}
	sum, err := report.Build(sample, sim)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sample, sim, &sum))

	var rep struct {
		Observed []struct {
			Zone  int      `json:"zone"`
			Score *float64 `json:"score"`
		} `json:"observed"`
		PValue *float64 `json:"p_value"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rep))
	require.Len(t, rep.Observed, 2)
	require.NotNil(t, rep.Observed[0].Score)
	assert.Equal(t, 4.5, *rep.Observed[0].Score)
	assert.Nil(t, rep.Observed[1].Score, "-Inf must encode as null")
	require.NotNil(t, rep.PValue)
	assert.InDelta(t, 0.5, *rep.PValue, 1e-12)
}

func TestBuildReport_NoSimulationOmitsSummary(t *testing.T) {
	rep := BuildReport(sample, nil, nil)
	assert.Nil(t, rep.PValue)
	assert.Nil(t, rep.Null)

	b, err := json.Marshal(rep)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "p_value")
	assert.NotContains(t, string(b), "null_summary")
}

func TestToAPIResult(t *testing.T) {
	got := ToAPIResult(sample[0])
	assert.Equal(t, api.ResultV1{Zone: 2, Duration: 2, Score: 4.5, RelRiskIn: 3, RelRiskOut: 0.5}, got)
}
