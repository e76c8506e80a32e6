package zone

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Load reads a zones file: one zone per line, comma- or
// whitespace-separated 1-based location indices. Blank lines and '#'
// comments are skipped.
func Load(path string) (*Catalog, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()

	var zones []Zone
	sc := bufio.NewScanner(fh)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		fields := strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t'
		})
		z := make(Zone, 0, len(fields))
		seen := make(map[int]struct{}, len(fields))
		for _, f := range fields {
			n, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("%s:%d bad location %q", path, ln, f)
			}
			if n < 1 {
				return nil, fmt.Errorf("%s:%d location indices are 1-based, got %d", path, ln, n)
			}
			if _, dup := seen[n]; dup {
				return nil, fmt.Errorf("%s:%d duplicate location %d", path, ln, n)
			}
			seen[n] = struct{}{}
			z = append(z, n-1)
		}
		if len(z) == 0 {
			return nil, fmt.Errorf("%s:%d empty zone", path, ln)
		}
		zones = append(zones, z)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(zones) == 0 {
		return nil, fmt.Errorf("%s: no zones", path)
	}
	return NewCatalog(zones), nil
}
