// internal/simapp/app.go
package simapp

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"

	"stscan-core/poisson"
	"stscan-core/table"

	"stscan/internal/jsonutil"
	"stscan/internal/simcli"
	"stscan/internal/version"
	"stscan/internal/writers"
)

func Run(argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := simcli.NewFlagSet("stscan-sim")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		fs.SetOutput(outw)
		fs.Usage()
		return flushExit(outw, stderr, 0)
	}

	opts, err := simcli.ParseArgs(fs, argv)
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
		_, _ = fmt.Fprintf(outw, "stscan-sim version %s\n", version.Version)
		return flushExit(outw, stderr, 0)
	}

	baselines, err := table.LoadFloatCSV(opts.Baselines)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	baselines = baselines.ReverseRows()

	gen, err := buildGenerator(opts, baselines)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	draws := make([]*table.IntTable, 0, opts.Draws)
	for i := 0; i < opts.Draws; i++ {
		t, err := gen.SimulateCounts()
		if err != nil {
			_, _ = fmt.Fprintln(stderr, fmt.Errorf("draw %d: %w", i+1, err))
			return 3
		}
		draws = append(draws, t)
	}

	if err := write(outw, opts.Output, draws); writers.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return flushExit(outw, stderr, 0)
}

func buildGenerator(opts simcli.Options, baselines *table.FloatTable) (poisson.Generator, error) {
	if opts.Model == "poisson" {
		return poisson.NewIndependentGenerator(baselines, opts.Seed), nil
	}
	total := opts.Total
	if total < 0 {
		counts, err := table.LoadIntCSV(opts.Counts)
		if err != nil {
			return nil, err
		}
		if counts.Rows != baselines.Rows || counts.Cols != baselines.Cols {
			return nil, fmt.Errorf("counts is %dx%d, baselines is %dx%d",
				counts.Rows, counts.Cols, baselines.Rows, baselines.Cols)
		}
		total = counts.Total()
	}
	return poisson.NewMultinomialGenerator(baselines, total, opts.Seed)
}

// write renders the draws. CSV emits one "# draw N" block per table,
// rows back in oldest-first order so the output loads as scan input.
func write(w io.Writer, format string, draws []*table.IntTable) error {
	if format == "json" {
		out := make([][][]int, 0, len(draws))
		for _, t := range draws {
			out = append(out, tableRows(t.ReverseRows()))
		}
		return jsonutil.EncodePretty(w, map[string]any{"draws": out})
	}
	for i, t := range draws {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "# draw %d\n", i+1); err != nil {
			return err
		}
		t = t.ReverseRows()
		for r := 0; r < t.Rows; r++ {
			for c := 0; c < t.Cols; c++ {
				if c > 0 {
					if _, err := fmt.Fprint(w, ","); err != nil {
						return err
					}
				}
				if _, err := fmt.Fprintf(w, "%d", t.At(r, c)); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
	}
	return nil
}

func tableRows(t *table.IntTable) [][]int {
	rows := make([][]int, t.Rows)
	for r := 0; r < t.Rows; r++ {
		rows[r] = make([]int, t.Cols)
		for c := 0; c < t.Cols; c++ {
			rows[r][c] = t.At(r, c)
		}
	}
	return rows
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
