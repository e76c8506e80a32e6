// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
)

// Null-count models for the Monte Carlo pass.
const (
	ModelMultinomial = "multinomial"
	ModelPoisson     = "poisson"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input files
	ConfigFile string
	Counts     string
	Baselines  string
	Zones      string

	// Scan parameters
	MaxDuration int
	Simulations int
	StoreAll    bool
	Model       string
	Seed        uint64

	// Output
	Output string
	Sort   bool
	Header bool // true unless --no-header
	DB     string

	Quiet   bool
	Version bool
}

// Parse is the top-level call for CLI parsing.
func Parse() (Options, error) { return ParseArgs(flag.CommandLine, nil) }

// ParseArgs registers and parses all flags, returns an Options struct.
// Presence of the required input files is checked later, after the
// optional config file has been merged in (see app.RunContext).
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	// Input files
	fs.StringVar(&opt.ConfigFile, "config", "", "YAML run configuration; flags win over file values []")
	fs.StringVar(&opt.Counts, "counts", "", "CSV counts matrix, time rows (oldest first) x location columns [*]")
	fs.StringVar(&opt.Baselines, "baselines", "", "CSV baseline matrix, same shape as --counts [*]")
	fs.StringVar(&opt.Zones, "zones", "", "zones file, one zone per line of 1-based location indices [*]")

	// Scan parameters
	fs.IntVar(&opt.MaxDuration, "max-duration", 0, "longest trailing window in time steps (0 = all rows) [0]")
	fs.IntVar(&opt.Simulations, "simulations", 99, "Monte Carlo rounds for the null distribution (0 = skip) [99]")
	fs.BoolVar(&opt.StoreAll, "store-all", false, "retain every candidate instead of only the maximum [false]")
	fs.StringVar(&opt.Model, "model", ModelMultinomial, "null-count model: multinomial | poisson ["+ModelMultinomial+"]")
	fs.Uint64Var(&opt.Seed, "seed", 1, "RNG seed for the simulation pass [1]")

	// Output
	fs.StringVar(&opt.Output, "output", "text", "output format: text | csv | json [text]")
	fs.BoolVar(&opt.Sort, "sort", false, "sort observed rows by score, best first [false]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in text/CSV [false]")
	fs.StringVar(&opt.DB, "db", "", "SQLite file to persist the run into []")

	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress warnings [false]")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.Header = !noHeader

	// Validation of values known before the config merge.
	if opt.MaxDuration < 0 {
		return opt, errors.New("--max-duration must be >= 0")
	}
	if opt.Simulations < 0 {
		return opt, errors.New("--simulations must be >= 0")
	}
	if opt.Model != ModelMultinomial && opt.Model != ModelPoisson {
		return opt, fmt.Errorf("invalid --model %q", opt.Model)
	}
	if opt.Output != "text" && opt.Output != "csv" && opt.Output != "json" {
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	return opt, nil
}
