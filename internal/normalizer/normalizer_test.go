package normalizer

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"glassfinder/internal/models"
)

func TestResolve_Numeric(t *testing.T) {
	n := NewNormalizer()

	got, err := n.Resolve(models.NumericPrice(39.9))
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if got != 39.9 {
		t.Errorf("Resolve = %v, want 39.9", got)
	}
}

func TestResolve_NumericRejected(t *testing.T) {
	n := NewNormalizer()

	tests := []struct {
		name    string
		value   float64
		wantErr error
	}{
		{"negative", -10, ErrNegativePrice},
		{"NaN", math.NaN(), ErrPriceNotFinite},
		{"positive infinity", math.Inf(1), ErrPriceNotFinite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := n.Resolve(models.NumericPrice(tt.value))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Resolve error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestResolve_Text(t *testing.T) {
	n := NewNormalizer()

	tests := []struct {
		text string
		want float64
	}{
		{"R$ 10,00", 10.00},
		{"R$ 1.234,56", 1234.56},
		{"R$1.234.567,89", 1234567.89},
		{"39.90", 39.90},
		{"39,9", 39.9},
		{"1.234", 1234},
		{"1.234.567", 1234567},
		{"  R$  79,90  ", 79.90},
		{"129", 129},
		{"$ 5.5", 5.5},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := n.Resolve(models.TextPrice(tt.text))
			if err != nil {
				t.Fatalf("Resolve(%q) failed: %v", tt.text, err)
			}

			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Resolve(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestResolve_TextRejected(t *testing.T) {
	n := NewNormalizer()

	tests := []struct {
		text    string
		wantErr error
	}{
		{"", ErrPriceFormat},
		{"indisponível", ErrPriceFormat},
		{"R$ --", ErrPriceFormat},
		{"-R$ 10,00", ErrNegativePrice},
		{"-39.90", ErrNegativePrice},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			_, err := n.Resolve(models.TextPrice(tt.text))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Resolve(%q) error = %v, want %v", tt.text, err, tt.wantErr)
			}
		})
	}
}

func TestResolve_Unset(t *testing.T) {
	n := NewNormalizer()

	_, err := n.Resolve(models.RawPrice{})
	if !errors.Is(err, ErrPriceUnset) {
		t.Errorf("Resolve error = %v, want ErrPriceUnset", err)
	}
}

// Formatting a resolved price with two decimals and resolving it again must
// yield the same value.
func TestResolve_RoundTrip(t *testing.T) {
	n := NewNormalizer()

	for _, price := range []float64{0, 5.5, 39.90, 1234.56, 99999.99} {
		formatted := fmt.Sprintf("R$ %.2f", price)

		got, err := n.Resolve(models.TextPrice(formatted))
		if err != nil {
			t.Fatalf("Resolve(%q) failed: %v", formatted, err)
		}

		if math.Abs(got-price) > 1e-9 {
			t.Errorf("round trip of %v via %q = %v", price, formatted, got)
		}
	}
}

func TestNormalize_SkipsUnusableRecords(t *testing.T) {
	n := NewNormalizer()

	products := []models.Product{
		{Name: "A", Price: models.TextPrice("R$ 10,00"), URL: "x"},
		{Name: "B", Price: models.TextPrice("sob consulta")},
		{Name: "C", Price: models.NumericPrice(5.5), URL: "y"},
	}

	records, skipped := n.Normalize(products)

	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}

	if records[0].Name != "A" || records[0].Price != 10.00 {
		t.Errorf("records[0] = %+v, want A at 10.00", records[0])
	}

	if records[1].Name != "C" || records[1].Price != 5.5 {
		t.Errorf("records[1] = %+v, want C at 5.5", records[1])
	}

	if len(skipped) != 1 {
		t.Fatalf("Expected 1 skipped record, got %d", len(skipped))
	}

	if skipped[0].Product.Name != "B" {
		t.Errorf("skipped[0] = %q, want B", skipped[0].Product.Name)
	}

	if !errors.Is(skipped[0].Err, ErrPriceFormat) {
		t.Errorf("skipped[0].Err = %v, want ErrPriceFormat", skipped[0].Err)
	}
}

func TestNormalize_Empty(t *testing.T) {
	n := NewNormalizer()

	records, skipped := n.Normalize(nil)
	if len(records) != 0 || len(skipped) != 0 {
		t.Errorf("Normalize(nil) = %d records, %d skipped; want none", len(records), len(skipped))
	}
}
