// Package config loads the optional YAML run configuration. Explicit
// flags always win; the file only fills what the command line left at
// its zero value.
package config

import (
	"bytes"
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"stscan/internal/cli"
)

// File mirrors the flag surface of cmd/stscan.
type File struct {
	Counts      string  `yaml:"counts"`
	Baselines   string  `yaml:"baselines"`
	Zones       string  `yaml:"zones"`
	MaxDuration int     `yaml:"max_duration"`
	Simulations *int    `yaml:"simulations"`
	StoreAll    bool    `yaml:"store_all"`
	Model       string  `yaml:"model"`
	Seed        *uint64 `yaml:"seed"`
	Output      string  `yaml:"output"`
	DB          string  `yaml:"db"`
}

// Load parses the YAML file at path. Unknown keys are an error, so a
// typo cannot silently drop a setting.
func Load(path string) (File, error) {
	var f File
	raw, err := os.ReadFile(path)
	if err != nil {
		return f, err
	}
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return f, fmt.Errorf("%s: %w", path, err)
	}
	if f.Model != "" && f.Model != cli.ModelMultinomial && f.Model != cli.ModelPoisson {
		return f, fmt.Errorf("%s: invalid model %q", path, f.Model)
	}
	if f.Output != "" && f.Output != "text" && f.Output != "csv" && f.Output != "json" {
		return f, fmt.Errorf("%s: invalid output %q", path, f.Output)
	}
	return f, nil
}

// Apply fills opt from f for every flag the user did not set on the
// command line. explicit holds the flag names actually passed (from
// flag.FlagSet.Visit). Pointer fields distinguish "absent" from an
// explicit zero in the file.
func Apply(opt *cli.Options, f File, explicit map[string]bool) {
	if !explicit["counts"] && f.Counts != "" {
		opt.Counts = f.Counts
	}
	if !explicit["baselines"] && f.Baselines != "" {
		opt.Baselines = f.Baselines
	}
	if !explicit["zones"] && f.Zones != "" {
		opt.Zones = f.Zones
	}
	if !explicit["max-duration"] && f.MaxDuration != 0 {
		opt.MaxDuration = f.MaxDuration
	}
	if !explicit["simulations"] && f.Simulations != nil {
		opt.Simulations = *f.Simulations
	}
	if !explicit["store-all"] && f.StoreAll {
		opt.StoreAll = true
	}
	if !explicit["model"] && f.Model != "" {
		opt.Model = f.Model
	}
	if !explicit["seed"] && f.Seed != nil {
		opt.Seed = *f.Seed
	}
	if !explicit["output"] && f.Output != "" {
		opt.Output = f.Output
	}
	if !explicit["db"] && f.DB != "" {
		opt.DB = f.DB
	}
}

// ExplicitFlags returns the set of flag names passed on the command
// line, for Apply.
func ExplicitFlags(fs interface{ Visit(func(*flag.Flag)) }) map[string]bool {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}
