// Package models defines the product entities shared by the finder pipeline.
package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// PriceKind discriminates the representations a raw price can arrive in.
type PriceKind int

const (
	// PriceUnset marks a price that was never provided.
	PriceUnset PriceKind = iota
	// PriceNumeric is a plain JSON number.
	PriceNumeric
	// PriceText is a formatted string such as "R$ 1.234,56".
	PriceText
)

// ErrUnsupportedPriceType is returned when a price is neither a number nor a string.
var ErrUnsupportedPriceType = errors.New("price must be a number or a string")

// RawPrice is a tagged union over the two price representations catalogs
// produce. The zero value reports PriceUnset, which lets sources detect a
// missing price field.
type RawPrice struct {
	Kind   PriceKind
	Number float64
	Text   string
}

// NumericPrice wraps a plain numeric price.
func NumericPrice(v float64) RawPrice {
	return RawPrice{Kind: PriceNumeric, Number: v}
}

// TextPrice wraps a formatted price string.
func TextPrice(s string) RawPrice {
	return RawPrice{Kind: PriceText, Text: s}
}

// UnmarshalJSON decodes a JSON number into a numeric price and a JSON string
// into a text price. Any other JSON value, including null, is rejected.
func (r *RawPrice) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return ErrUnsupportedPriceType
	}

	switch {
	case trimmed[0] == '"':
		var text string
		if err := json.Unmarshal(trimmed, &text); err != nil {
			return fmt.Errorf("%w: %s", ErrUnsupportedPriceType, data)
		}

		*r = TextPrice(text)

		return nil
	case trimmed[0] == '-' || (trimmed[0] >= '0' && trimmed[0] <= '9'):
		var num float64
		if err := json.Unmarshal(trimmed, &num); err != nil {
			return fmt.Errorf("%w: %s", ErrUnsupportedPriceType, data)
		}

		*r = NumericPrice(num)

		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedPriceType, data)
	}
}

// String renders the raw value for log output.
func (r RawPrice) String() string {
	switch r.Kind {
	case PriceNumeric:
		return strconv.FormatFloat(r.Number, 'f', -1, 64)
	case PriceText:
		return r.Text
	default:
		return "<unset>"
	}
}

// Product is a raw catalog entry as produced by a record source.
type Product struct {
	Name  string   `json:"name"`
	Price RawPrice `json:"price"`
	URL   string   `json:"url"`
}

// Record is a product whose price has been resolved to a comparable value in
// base currency units. Price is always finite and non-negative.
type Record struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	URL   string  `json:"url"`
}
