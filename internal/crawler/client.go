package crawler

import (
	"errors"
	"fmt"

	"glassfinder/internal/config"
	"glassfinder/internal/logger"
	"glassfinder/internal/models"
)

// Client errors.
var (
	ErrCatalogUnreachable = errors.New("no catalog URL could be reached")
	ErrNoProducts         = errors.New("no products found in catalog page")
)

// Client ties fetching and extraction together, walking the configured
// candidate URLs until one answers.
type Client struct {
	scraper *Scraper
	parser  *Parser
	urls    []string
	log     *logger.Logger
}

// NewClient creates a crawler client from catalog configuration.
func NewClient(cfg *config.CatalogConfig, log *logger.Logger) *Client {
	return NewClientWithDeps(NewScraper(cfg), NewParser(cfg.Selectors), cfg.GetAllURLs(), log)
}

// NewClientWithDeps creates a crawler client with injected dependencies.
func NewClientWithDeps(scraper *Scraper, parser *Parser, urls []string, log *logger.Logger) *Client {
	if log == nil {
		log = logger.NewLogger("info")
	}

	return &Client{
		scraper: scraper,
		parser:  parser,
		urls:    urls,
		log:     log,
	}
}

// FetchProducts tries each candidate URL once, in order, and extracts
// products from the first page that answers. A page that answers but yields
// no recognizable products is a parse failure, not a reason to fall through
// to the next URL: the next mirror would serve the same markup.
func (c *Client) FetchProducts() ([]models.Product, error) {
	var lastErr error

	for _, u := range c.urls {
		c.log.Debug("fetching catalog", "url", u)

		html, err := c.scraper.Fetch(u)
		if err != nil {
			c.log.Warn("catalog URL failed", "url", u, "error", err)
			lastErr = err

			continue
		}

		products, err := c.parser.ParseProducts(html, u)
		if err != nil {
			return nil, err
		}

		if len(products) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrNoProducts, u)
		}

		c.log.Debug("catalog fetched", "url", u, "products", len(products))

		return products, nil
	}

	if lastErr == nil {
		return nil, ErrCatalogUnreachable
	}

	return nil, fmt.Errorf("%w: last error: %v", ErrCatalogUnreachable, lastErr)
}
