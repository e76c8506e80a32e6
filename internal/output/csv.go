// internal/output/csv.go
package output

import (
	"encoding/csv"
	"io"

	"stscan-core/scan"
)

// WriteCSV writes one table as RFC 4180 CSV. The format holds a single
// table, so callers pick observed or simulation rows; the JSON format
// and the SQLite store carry the full run.
func WriteCSV(w io.Writer, list []scan.Result, header bool) error {
	cw := csv.NewWriter(w)
	if header {
		if err := cw.Write(Columns); err != nil {
			return err
		}
	}
	for _, r := range list {
		if err := cw.Write(Fields(r)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
