// Package selector picks the cheapest record from a normalized product set.
package selector

import (
	"errors"
	"strings"

	"glassfinder/internal/models"
)

// ErrNoRecords is returned when there is nothing to select from. An empty or
// fully-excluded record set must never report a winner.
var ErrNoRecords = errors.New("no valid records to select from")

var eyewearKeywords = []string{"óculos", "oculos", "glass"}

// Cheapest returns the record with the lowest price. Ties keep the record
// that appears first in input order.
func Cheapest(records []models.Record) (models.Record, error) {
	pool := preferEyewear(records)
	if len(pool) == 0 {
		return models.Record{}, ErrNoRecords
	}

	best := pool[0]
	for _, r := range pool[1:] {
		if r.Price < best.Price {
			best = r
		}
	}

	return best, nil
}

// preferEyewear narrows the pool to eyewear products when any are present.
// Catalog listings can mix cases, lens cloths and other accessories into the
// same page; when nothing matches the keywords, every record competes.
func preferEyewear(records []models.Record) []models.Record {
	var eyewear []models.Record

	for _, r := range records {
		name := strings.ToLower(r.Name)
		for _, kw := range eyewearKeywords {
			if strings.Contains(name, kw) {
				eyewear = append(eyewear, r)

				break
			}
		}
	}

	if len(eyewear) == 0 {
		return records
	}

	return eyewear
}
