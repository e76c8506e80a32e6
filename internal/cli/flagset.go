// internal/cli/flagset.go
package cli

import (
	"flag"
	"fmt"

	"stscan/internal/version"
)

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: space-time scan statistics for event-count surveillance

Scans every (zone, duration) candidate of a counts table against a
baseline table with the population-based Poisson statistic, and
calibrates the maximum score by Monte Carlo simulation.

Input layout: CSV rows are time steps ordered oldest first, columns are
locations. Zones are one per line, comma-separated 1-based location
indices.

Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}
