package catalog

import "glassfinder/internal/models"

// DemoSource serves a fixed dataset, so the pipeline can run without network
// or file dependencies.
type DemoSource struct{}

// NewDemoSource creates the demo source.
func NewDemoSource() *DemoSource {
	return &DemoSource{}
}

// Name identifies the source.
func (s *DemoSource) Name() string {
	return "demo"
}

// Records returns the sample Zerezes catalog. Pure, no I/O.
func (s *DemoSource) Records() ([]models.Product, error) {
	return []models.Product{
		{
			Name:  "Óculos de Sol Aviador Classic",
			Price: models.NumericPrice(89.90),
			URL:   "https://www.zerezes.com.br/produto/aviador-classic",
		},
		{
			Name:  "Óculos de Grau Retangular Metal",
			Price: models.NumericPrice(129.90),
			URL:   "https://www.zerezes.com.br/produto/retangular-metal",
		},
		{
			Name:  "Óculos de Sol Wayfarer Style",
			Price: models.NumericPrice(79.90),
			URL:   "https://www.zerezes.com.br/produto/wayfarer-style",
		},
		{
			Name:  "Óculos de Grau Redondo Acetato",
			Price: models.NumericPrice(149.90),
			URL:   "https://www.zerezes.com.br/produto/redondo-acetato",
		},
		{
			Name:  "Óculos de Sol Esportivo Polarizado",
			Price: models.NumericPrice(159.90),
			URL:   "https://www.zerezes.com.br/produto/esportivo-polarizado",
		},
		{
			Name:  "Óculos de Grau Gatinho Fashion",
			Price: models.NumericPrice(99.90),
			URL:   "https://www.zerezes.com.br/produto/gatinho-fashion",
		},
		{
			Name:  "Óculos de Sol Hexagonal Moderno",
			Price: models.NumericPrice(69.90),
			URL:   "https://www.zerezes.com.br/produto/hexagonal-moderno",
		},
		{
			Name:  "Óculos de Leitura +2.00",
			Price: models.NumericPrice(39.90),
			URL:   "https://www.zerezes.com.br/produto/leitura-200",
		},
	}, nil
}
