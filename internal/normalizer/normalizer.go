// Package normalizer converts raw product prices into comparable numeric
// values in base currency units.
package normalizer

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"glassfinder/internal/models"
)

// Normalization errors.
var (
	ErrPriceFormat    = errors.New("price has no parseable numeric content")
	ErrNegativePrice  = errors.New("price is negative")
	ErrPriceNotFinite = errors.New("price is not a finite number")
	ErrPriceUnset     = errors.New("price is missing")
)

// Normalizer resolves the RawPrice union into plain numbers. Text prices
// follow the Brazilian convention (dots grouping thousands, comma as the
// decimal mark) but plain decimal-point strings are accepted too.
type Normalizer struct {
	decorationPattern *regexp.Regexp
}

// NewNormalizer creates a new normalizer instance.
func NewNormalizer() *Normalizer {
	return &Normalizer{
		// Anything that is not a digit, separator or sign is currency
		// symbol or decoration.
		decorationPattern: regexp.MustCompile(`[^\d.,\-]`),
	}
}

// Resolve converts a raw price into a finite, non-negative numeric value.
func (n *Normalizer) Resolve(raw models.RawPrice) (float64, error) {
	switch raw.Kind {
	case models.PriceNumeric:
		if math.IsNaN(raw.Number) || math.IsInf(raw.Number, 0) {
			return 0, fmt.Errorf("%w: %v", ErrPriceNotFinite, raw.Number)
		}

		if raw.Number < 0 {
			return 0, fmt.Errorf("%w: %v", ErrNegativePrice, raw.Number)
		}

		return raw.Number, nil
	case models.PriceText:
		return n.parseText(raw.Text)
	default:
		return 0, ErrPriceUnset
	}
}

// parseText strips decoration and resolves the separator convention.
func (n *Normalizer) parseText(text string) (float64, error) {
	cleaned := n.decorationPattern.ReplaceAllString(text, "")
	if !strings.ContainsAny(cleaned, "0123456789") {
		return 0, fmt.Errorf("%w: %q", ErrPriceFormat, text)
	}

	if strings.Contains(cleaned, ",") {
		// Brazilian format: dots group thousands, the last comma is the
		// decimal mark ("1.234,56").
		cleaned = strings.ReplaceAll(cleaned, ".", "")
		idx := strings.LastIndex(cleaned, ",")
		cleaned = cleaned[:idx] + "." + cleaned[idx+1:]
		cleaned = strings.ReplaceAll(cleaned, ",", "")
	} else if dots := strings.Count(cleaned, "."); dots > 0 {
		// Without a comma the dot is ambiguous: a single dot followed by at
		// most two digits is a decimal mark ("39.90"), anything else is
		// thousands grouping ("1.234.567").
		last := strings.LastIndex(cleaned, ".")
		if dots > 1 || len(cleaned)-last-1 > 2 {
			cleaned = strings.ReplaceAll(cleaned, ".", "")
		}
	}

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrPriceFormat, text)
	}

	if value < 0 {
		return 0, fmt.Errorf("%w: %q", ErrNegativePrice, text)
	}

	return value, nil
}

// Skipped records a product that was excluded from selection and why.
type Skipped struct {
	Product models.Product
	Err     error
}

// Normalize resolves every product price, returning the comparable records
// in input order plus the products that had to be excluded. Exclusions are
// reported, never silent; aborting on them is the caller's call.
func (n *Normalizer) Normalize(products []models.Product) ([]models.Record, []Skipped) {
	records := make([]models.Record, 0, len(products))

	var skipped []Skipped

	for _, p := range products {
		price, err := n.Resolve(p.Price)
		if err != nil {
			skipped = append(skipped, Skipped{Product: p, Err: err})

			continue
		}

		records = append(records, models.Record{
			Name:  p.Name,
			Price: price,
			URL:   p.URL,
		})
	}

	return records, skipped
}
