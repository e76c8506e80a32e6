// Package zone defines spatial zones: fixed sets of location column
// indices scanned as one candidate region.
package zone

import "fmt"

// Zone is an ordered set of 0-based location indices.
type Zone []int

// Catalog is the ordered collection of zones a scan iterates over.
type Catalog struct {
	Zones []Zone
}

func NewCatalog(zones []Zone) *Catalog { return &Catalog{Zones: zones} }

func (c *Catalog) Len() int { return len(c.Zones) }

// Validate checks that the catalog is non-empty and every location
// index fits a table with cols columns.
func (c *Catalog) Validate(cols int) error {
	if len(c.Zones) == 0 {
		return fmt.Errorf("zone catalog is empty")
	}
	for zi, z := range c.Zones {
		if len(z) == 0 {
			return fmt.Errorf("zone %d is empty", zi+1)
		}
		for _, loc := range z {
			if loc < 0 || loc >= cols {
				return fmt.Errorf("zone %d: location %d out of range 1..%d", zi+1, loc+1, cols)
			}
		}
	}
	return nil
}
