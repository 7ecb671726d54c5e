package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"glassfinder/internal/models"
)

// FileSource reads product records from a JSON file.
type FileSource struct {
	path string
}

// NewFileSource creates a source reading from path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Name identifies the source.
func (s *FileSource) Name() string {
	return s.path
}

// Records parses the file as either a bare product array or an object with a
// "products" key. Malformed JSON, a wrong top-level shape, or records missing
// the required name/price fields all report ErrDataFormat.
func (s *FileSource) Records() ([]models.Product, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read data file %s: %w", s.path, err)
	}

	products, err := decodeProducts(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDataFormat, s.path, err)
	}

	for i, p := range products {
		if strings.TrimSpace(p.Name) == "" {
			return nil, fmt.Errorf("%w: %s: record %d has no name", ErrDataFormat, s.path, i)
		}

		if p.Price.Kind == models.PriceUnset {
			return nil, fmt.Errorf("%w: %s: record %d has no price", ErrDataFormat, s.path, i)
		}
	}

	return products, nil
}

func decodeProducts(data []byte) ([]models.Product, error) {
	var products []models.Product
	if err := json.Unmarshal(data, &products); err == nil {
		return products, nil
	}

	var wrapper struct {
		Products []models.Product `json:"products"`
	}

	if err := json.Unmarshal(data, &wrapper); err == nil && wrapper.Products != nil {
		return wrapper.Products, nil
	}

	return nil, errors.New(`expected a product array or an object with a "products" key`)
}
