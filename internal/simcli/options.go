// Package simcli parses the stscan-sim command line.
package simcli

import (
	"flag"
	"fmt"
)

// Options is the parsed stscan-sim command line.
type Options struct {
	Baselines string
	Total     int // multinomial grand total; <0 means "take from --counts"
	Counts    string
	Model     string
	Draws     int
	Seed      uint64
	Output    string // csv|json

	Quiet   bool
	Version bool
}

func NewFlagSet(prog string) *flag.FlagSet {
	fs := flag.NewFlagSet(prog, flag.ContinueOnError)
	fs.Usage = func() {
		w := fs.Output()
		fmt.Fprintf(w, "%s - draw simulated count tables from a baseline table\n\n", prog)
		fmt.Fprintf(w, "Usage:\n  %s --baselines FILE [options]\n\n", prog)
		fmt.Fprintf(w, "The baseline CSV has one row per time step (oldest first) and one\n")
		fmt.Fprintf(w, "column per location. Multinomial draws condition on a grand total,\n")
		fmt.Fprintf(w, "taken from --total or from the sum of --counts.\n\n")
		fmt.Fprintf(w, "Options:\n")
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs parses argv into Options. The --help request surfaces as
// flag.ErrHelp.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	fs.StringVar(&opt.Baselines, "baselines", "", "baseline CSV, rows oldest first (required)")
	fs.IntVar(&opt.Total, "total", -1, "grand total for multinomial draws [-1 = derive from --counts]")
	fs.StringVar(&opt.Counts, "counts", "", "count CSV whose sum supplies the multinomial total []")
	fs.StringVar(&opt.Model, "model", "multinomial", "null model: multinomial|poisson [multinomial]")
	fs.IntVar(&opt.Draws, "draws", 1, "number of tables to draw [1]")
	fs.Uint64Var(&opt.Seed, "seed", 1, "RNG seed [1]")
	fs.StringVar(&opt.Output, "output", "csv", "output format: csv|json [csv]")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress warnings [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit [false]")

	if err := fs.Parse(argv); err != nil {
		return Options{}, err
	}
	if opt.Version {
		return opt, nil
	}

	switch opt.Model {
	case "multinomial", "poisson":
	default:
		return Options{}, fmt.Errorf("unknown model %q (multinomial|poisson)", opt.Model)
	}
	switch opt.Output {
	case "csv", "json":
	default:
		return Options{}, fmt.Errorf("unknown output format %q (csv|json)", opt.Output)
	}
	if opt.Draws < 1 {
		return Options{}, fmt.Errorf("--draws must be >= 1, got %d", opt.Draws)
	}
	if opt.Baselines == "" {
		return Options{}, fmt.Errorf("provide --baselines")
	}
	if opt.Model == "multinomial" && opt.Total < 0 && opt.Counts == "" {
		return Options{}, fmt.Errorf("multinomial draws need --total or --counts")
	}
	return opt, nil
}
