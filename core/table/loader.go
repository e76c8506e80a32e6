package table

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// LoadIntCSV reads a counts matrix from a CSV file: one row per time
// step, one column per location. Blank lines and '#' comments are
// skipped. Values must be non-negative integers.
func LoadIntCSV(path string) (*IntTable, error) {
	rows, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	t := NewInt(len(rows), len(rows[0]))
	for r, rec := range rows {
		for c, field := range rec {
			v, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("%s: row %d col %d: bad count %q", path, r+1, c+1, field)
			}
			if v < 0 {
				return nil, fmt.Errorf("%s: row %d col %d: negative count %d", path, r+1, c+1, v)
			}
			t.Set(r, c, v)
		}
	}
	return t, nil
}

// LoadFloatCSV reads a baseline matrix in the same layout as
// LoadIntCSV. Values must be non-negative.
func LoadFloatCSV(path string) (*FloatTable, error) {
	rows, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	t := NewFloat(len(rows), len(rows[0]))
	for r, rec := range rows {
		for c, field := range rec {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("%s: row %d col %d: bad value %q", path, r+1, c+1, field)
			}
			if v < 0 {
				return nil, fmt.Errorf("%s: row %d col %d: negative value %g", path, r+1, c+1, v)
			}
			t.Set(r, c, v)
		}
	}
	return t, nil
}

func readCSV(path string) ([][]string, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()

	rd := csv.NewReader(fh)
	rd.Comment = '#'
	rd.TrimLeadingSpace = true
	rd.FieldsPerRecord = -1 // shape checked below with a clearer message
	recs, err := rd.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	var rows [][]string
	for _, rec := range recs {
		if len(rec) == 1 && strings.TrimSpace(rec[0]) == "" {
			continue
		}
		for i := range rec {
			rec[i] = strings.TrimSpace(rec[i])
		}
		rows = append(rows, rec)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: empty table", path)
	}
	width := len(rows[0])
	for r, rec := range rows {
		if len(rec) != width {
			return nil, fmt.Errorf("%s: row %d has %d fields, want %d", path, r+1, len(rec), width)
		}
	}
	return rows, nil
}
