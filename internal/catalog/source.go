// Package catalog provides the product record sources the finder can draw
// from: a fixed demo dataset, a local JSON file, or the live web catalog.
package catalog

import (
	"errors"

	"glassfinder/internal/models"
)

// ErrDataFormat indicates a data file that does not describe a product list.
var ErrDataFormat = errors.New("invalid product data format")

// Source produces product records from one origin. Selecting and swapping
// implementations never touches the rest of the pipeline.
type Source interface {
	// Name identifies the source for progress output and error messages.
	Name() string
	// Records returns the raw product records.
	Records() ([]models.Product, error)
}
