package crawler

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"glassfinder/internal/config"
	"glassfinder/internal/models"
	"glassfinder/pkg/utils"
)

// Parser extracts product records from catalog HTML. All knowledge of the
// page structure lives here, so a markup change touches only this file.
type Parser struct {
	productSelector string
	nameSelector    string
	priceSelector   string
	linkSelector    string
}

// NewParser creates a parser driven by the configured CSS selectors.
func NewParser(selectors config.SelectorsConfig) *Parser {
	return &Parser{
		productSelector: selectors.Product,
		nameSelector:    selectors.Name,
		priceSelector:   selectors.Price,
		linkSelector:    selectors.Link,
	}
}

// ParseProducts extracts the product records found in html. Elements missing
// a name or a price text are skipped; link hrefs are resolved against
// baseURL. An empty result is not an error here, the caller decides.
func (p *Parser) ParseProducts(html, baseURL string) ([]models.Product, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog page: %w", err)
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		base = nil
	}

	var products []models.Product

	doc.Find(p.productSelector).Each(func(_ int, sel *goquery.Selection) {
		name := utils.CleanText(sel.Find(p.nameSelector).First().Text())
		priceText := utils.CleanText(sel.Find(p.priceSelector).First().Text())

		if name == "" || priceText == "" {
			return
		}

		href, _ := sel.Find(p.linkSelector).First().Attr("href")

		products = append(products, models.Product{
			Name:  name,
			Price: models.TextPrice(priceText),
			URL:   resolveLink(base, href),
		})
	})

	return products, nil
}

// resolveLink turns a relative href into an absolute catalog URL.
func resolveLink(base *url.URL, href string) string {
	href = strings.TrimSpace(href)
	if href == "" || base == nil {
		return href
	}

	ref, err := url.Parse(href)
	if err != nil {
		return href
	}

	return base.ResolveReference(ref).String()
}
