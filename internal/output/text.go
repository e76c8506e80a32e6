// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"stscan-core/scan"

	"stscan/internal/report"
)

// WriteText renders the full run as tab-separated sections: the
// observed table, then (when simulation ran) the per-round maxima and
// the significance lines. Section markers are '#' comments so the
// output still round-trips through cut/awk.
func WriteText(w io.Writer, observed, sim []scan.Result, sum *report.Summary, header bool) error {
	if err := writeTable(w, observed, header); err != nil {
		return err
	}
	if len(sim) > 0 {
		if _, err := fmt.Fprintln(w, "# simulation"); err != nil {
			return err
		}
		if err := writeTable(w, sim, header); err != nil {
			return err
		}
	}
	if sum != nil && sum.Rounds > 0 {
		if _, err := fmt.Fprintf(w, "# p_value\t%s\n", formatFloat(sum.PValue)); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "# null_mean\t%s\tnull_stddev\t%s\n",
			formatFloat(sum.NullMean), formatFloat(sum.NullStdDev)); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "# null_q50\t%s\tq90\t%s\tq95\t%s\tq99\t%s\n",
			formatFloat(sum.Q50), formatFloat(sum.Q90),
			formatFloat(sum.Q95), formatFloat(sum.Q99)); err != nil {
			return err
		}
	}
	return nil
}

func writeTable(w io.Writer, list []scan.Result, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, Header()); err != nil {
			return err
		}
	}
	for _, r := range list {
		if _, err := fmt.Fprintln(w, Row(r)); err != nil {
			return err
		}
	}
	return nil
}
