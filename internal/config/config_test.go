package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stscan/internal/cli"
)

func writeConfig(t *testing.T, data string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(fn, []byte(data), 0o644))
	return fn
}

func TestLoad(t *testing.T) {
	fn := writeConfig(t, `
counts: c.csv
baselines: b.csv
zones: z.txt
simulations: 999
model: poisson
seed: 7
`)
	f, err := Load(fn)
	require.NoError(t, err)
	assert.Equal(t, "c.csv", f.Counts)
	require.NotNil(t, f.Simulations)
	assert.Equal(t, 999, *f.Simulations)
	assert.Equal(t, cli.ModelPoisson, f.Model)
	require.NotNil(t, f.Seed)
	assert.Equal(t, uint64(7), *f.Seed)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	fn := writeConfig(t, "simulatons: 5\n")
	_, err := Load(fn)
	assert.Error(t, err)
}

func TestLoadRejectsBadModel(t *testing.T) {
	fn := writeConfig(t, "model: gaussian\n")
	_, err := Load(fn)
	assert.Error(t, err)
}

func TestApplyFlagsWin(t *testing.T) {
	sims := 500
	f := File{Counts: "file.csv", Simulations: &sims, Model: cli.ModelPoisson}

	opt := cli.Options{Counts: "flag.csv", Simulations: 99, Model: cli.ModelMultinomial}
	Apply(&opt, f, map[string]bool{"counts": true, "model": true})

	assert.Equal(t, "flag.csv", opt.Counts, "explicit flag must win")
	assert.Equal(t, cli.ModelMultinomial, opt.Model, "explicit flag must win")
	assert.Equal(t, 500, opt.Simulations, "unset flag takes file value")
}

func TestApplyZeroSimulationsFromFile(t *testing.T) {
	zero := 0
	f := File{Simulations: &zero}
	opt := cli.Options{Simulations: 99}
	Apply(&opt, f, nil)
	assert.Equal(t, 0, opt.Simulations, "explicit file zero must apply")
}
