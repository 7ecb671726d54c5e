// Package crawler fetches and extracts product listings from a live catalog.
package crawler

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"glassfinder/internal/config"
)

// ErrUnexpectedStatusCode indicates an HTTP response with a non-success status.
var ErrUnexpectedStatusCode = errors.New("unexpected status code")

// Scraper performs single-attempt HTTP fetches with a bounded timeout.
// Falling back across catalog URLs is the Client's job; there is no retry.
type Scraper struct {
	client       *http.Client
	userAgent    string
	bufferSizeKb int
}

// NewScraper creates a scraper from catalog configuration.
func NewScraper(cfg *config.CatalogConfig) *Scraper {
	return &Scraper{
		client:       &http.Client{Timeout: cfg.GetTimeout()},
		userAgent:    cfg.UserAgent,
		bufferSizeKb: cfg.BufferSizeKb,
	}
}

// Fetch retrieves the page body at url. The body is capped at the configured
// buffer size.
func (s *Scraper) Fetch(url string) (string, error) {
	req, err := http.NewRequest(http.MethodGet, url, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	// Set user agent to avoid being blocked
	req.Header.Set("User-Agent", s.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: %d", ErrUnexpectedStatusCode, resp.StatusCode)
	}

	// bufferSizeKb is in KB, convert to bytes
	limit := int64(s.bufferSizeKb) * 1024

	body, err := io.ReadAll(io.LimitReader(resp.Body, limit))
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	return string(body), nil
}
