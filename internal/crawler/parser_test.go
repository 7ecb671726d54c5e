package crawler

import (
	"testing"

	"glassfinder/internal/config"
	"glassfinder/internal/models"
)

const catalogHTML = `
<html><body>
  <div class="product">
    <h2 class="product-name">
      Óculos de Sol
      Aviador
    </h2>
    <span class="price">R$ 89,90</span>
    <a href="/produto/aviador">ver</a>
  </div>
  <div class="product-item">
    <span class="name">Óculos Redondo</span>
    <span class="product-price">R$ 149,90</span>
    <a href="https://cdn.example.com/produto/redondo">ver</a>
  </div>
  <div class="product">
    <span class="name">Sem preço</span>
    <a href="/produto/sem-preco">ver</a>
  </div>
  <div class="banner">não é produto</div>
</body></html>`

func newTestParser() *Parser {
	return NewParser(config.Default().Catalog.Selectors)
}

func TestParseProducts(t *testing.T) {
	products, err := newTestParser().ParseProducts(catalogHTML, "https://www.zerezes.com.br")
	if err != nil {
		t.Fatalf("ParseProducts failed: %v", err)
	}

	if len(products) != 2 {
		t.Fatalf("Expected 2 products, got %d", len(products))
	}

	first := products[0]
	if first.Name != "Óculos de Sol Aviador" {
		t.Errorf("Name = %q, want collapsed whitespace", first.Name)
	}

	if first.Price != models.TextPrice("R$ 89,90") {
		t.Errorf("Price = %+v, want text R$ 89,90", first.Price)
	}

	if first.URL != "https://www.zerezes.com.br/produto/aviador" {
		t.Errorf("URL = %q, want resolved against base", first.URL)
	}

	// Absolute links pass through untouched.
	if products[1].URL != "https://cdn.example.com/produto/redondo" {
		t.Errorf("URL = %q, want absolute link kept", products[1].URL)
	}
}

func TestParseProducts_NoStructure(t *testing.T) {
	products, err := newTestParser().ParseProducts("<html><body><p>manutenção</p></body></html>", "https://www.zerezes.com.br")
	if err != nil {
		t.Fatalf("ParseProducts failed: %v", err)
	}

	if len(products) != 0 {
		t.Errorf("Expected no products from unrelated markup, got %d", len(products))
	}
}

func TestParseProducts_MissingLink(t *testing.T) {
	html := `<div class="product"><span class="name">Óculos X</span><span class="price">R$ 10,00</span></div>`

	products, err := newTestParser().ParseProducts(html, "https://www.zerezes.com.br")
	if err != nil {
		t.Fatalf("ParseProducts failed: %v", err)
	}

	if len(products) != 1 {
		t.Fatalf("Expected 1 product, got %d", len(products))
	}

	if products[0].URL != "" {
		t.Errorf("URL = %q, want empty when no link element", products[0].URL)
	}
}
