// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"stscan-core/poisson"
	"stscan-core/scan"
	"stscan-core/table"
	"stscan-core/zone"

	"stscan/internal/cli"
	"stscan/internal/cmdutil"
	"stscan/internal/common"
	"stscan/internal/config"
	"stscan/internal/report"
	"stscan/internal/store"
	"stscan/internal/version"
	"stscan/internal/writers"
)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("stscan")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		fs.SetOutput(outw)
		fs.Usage()
		return flushExit(outw, stderr, 0)
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return flushExit(outw, stderr, 0)
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	if opts.Version {
		_, _ = fmt.Fprintf(outw, "stscan version %s\n", version.Version)
		return flushExit(outw, stderr, 0)
	}

	if opts.ConfigFile != "" {
		cf, err := config.Load(opts.ConfigFile)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 2
		}
		config.Apply(&opts, cf, config.ExplicitFlags(fs))
	}
	switch {
	case opts.Counts == "":
		_, _ = fmt.Fprintln(stderr, "provide --counts (flag or config)")
		return 2
	case opts.Baselines == "":
		_, _ = fmt.Fprintln(stderr, "provide --baselines (flag or config)")
		return 2
	case opts.Zones == "":
		_, _ = fmt.Fprintln(stderr, "provide --zones (flag or config)")
		return 2
	}

	if parent.Err() != nil {
		return 130
	}
	observed, sim, sum, code := runScan(opts, stderr)
	if code != 0 {
		return code
	}

	run := writers.Run{Observed: observed, Simulation: sim, Summary: sum, Header: opts.Header}
	if opts.Sort {
		common.SortResults(run.Observed)
	}
	if err := writers.Write(opts.Output, outw, run); writers.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return flushExit(outw, stderr, 0)
}

// runScan loads inputs, runs the observed pass and the Monte Carlo
// pass, and optionally persists the run. Exit code 0 means the returned
// slices are valid.
func runScan(opts cli.Options, stderr io.Writer) (observed, sim []scan.Result, sum *report.Summary, code int) {
	counts, err := table.LoadIntCSV(opts.Counts)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return nil, nil, nil, 2
	}
	baselines, err := table.LoadFloatCSV(opts.Baselines)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return nil, nil, nil, 2
	}
	zones, err := zone.Load(opts.Zones)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return nil, nil, nil, 2
	}

	// CSV rows arrive oldest first; the kernel scans trailing windows
	// from the most recent step, so flip both tables once here.
	counts = counts.ReverseRows()
	baselines = baselines.ReverseRows()

	if err := zone.ValidateBaselines(zones, baselines); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return nil, nil, nil, 2
	}

	maxDur := opts.MaxDuration
	if maxDur == 0 {
		maxDur = counts.Rows
	}
	scanner, err := poisson.New(counts, baselines, zones, maxDur, opts.StoreAll, opts.Simulations)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return nil, nil, nil, 2
	}
	scanner.Scan()

	if opts.Simulations > 0 {
		gen, err := buildGenerator(opts, counts, baselines)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return nil, nil, nil, 2
		}
		if err := scanner.Simulate(gen); err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return nil, nil, nil, 3
		}
	}

	observed = scanner.Observed()
	sim = scanner.Simulated()
	s, err := report.Build(observed, sim)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return nil, nil, nil, 3
	}
	sum = &s

	if opts.DB != "" {
		if err := persist(opts, observed, sim, sum); err != nil {
			cmdutil.Warnf(stderr, opts.Quiet, "persist failed: %v", err)
			return nil, nil, nil, 3
		}
	}
	return observed, sim, sum, 0
}

func buildGenerator(opts cli.Options, counts *table.IntTable, baselines *table.FloatTable) (poisson.Generator, error) {
	switch opts.Model {
	case cli.ModelPoisson:
		return poisson.NewIndependentGenerator(baselines, opts.Seed), nil
	default:
		return poisson.NewMultinomialGenerator(baselines, counts.Total(), opts.Seed)
	}
}

func persist(opts cli.Options, observed, sim []scan.Result, sum *report.Summary) error {
	db, err := store.Open(opts.DB)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	meta := store.RunMeta{
		ID:          store.NewRunID(),
		CreatedAt:   time.Now(),
		Counts:      opts.Counts,
		Baselines:   opts.Baselines,
		Zones:       opts.Zones,
		MaxDuration: opts.MaxDuration,
		Simulations: opts.Simulations,
		Model:       opts.Model,
		Seed:        opts.Seed,
	}
	if sum != nil && sum.Rounds > 0 {
		meta.PValue.Float64 = sum.PValue
		meta.PValue.Valid = true
	}
	return db.SaveRun(meta, observed, sim)
}

func flushExit(outw *bufio.Writer, stderr io.Writer, code int) int {
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return code
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
