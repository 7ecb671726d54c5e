package catalog

import (
	"glassfinder/internal/config"
	"glassfinder/internal/crawler"
	"glassfinder/internal/logger"
	"glassfinder/internal/models"
)

// WebSource fetches records from the live catalog. Best-effort: the site
// changing its markup is expected to break extraction, and that failure is
// reported, never silently degraded.
type WebSource struct {
	client  *crawler.Client
	baseURL string
}

// NewWebSource creates a source fetching from the configured catalog.
func NewWebSource(cfg *config.CatalogConfig, log *logger.Logger) *WebSource {
	return &WebSource{
		client:  crawler.NewClient(cfg, log),
		baseURL: cfg.BaseURL,
	}
}

// Name identifies the source.
func (s *WebSource) Name() string {
	return s.baseURL
}

// Records fetches and extracts the live catalog.
func (s *WebSource) Records() ([]models.Product, error) {
	return s.client.FetchProducts()
}
