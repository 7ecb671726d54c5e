// Package main provides the cheapest-glasses finder command-line tool.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"glassfinder/internal/catalog"
	"glassfinder/internal/config"
	"glassfinder/internal/formatter"
	"glassfinder/internal/logger"
	"glassfinder/internal/normalizer"
	"glassfinder/internal/selector"
)

func main() {
	configFile := flag.String("config", "", "Path to YAML configuration file")
	demoMode := flag.Bool("demo", false, "Use the built-in demo dataset (no network)")
	dataFile := flag.String("data", "", "Path to a JSON file with product data")
	catalogURL := flag.String("url", "", "Catalog URL to fetch (overrides config)")
	showUsage := flag.Bool("help", false, "Show usage information")

	flag.Parse()

	if *showUsage {
		printUsage()
		os.Exit(0)
	}

	cfg, err := loadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if *catalogURL != "" {
		cfg.Catalog.BaseURL = *catalogURL
		cfg.Catalog.BackupURLs = nil
	}

	log := logger.NewLogger(cfg.Logging.Level)

	rule := strings.Repeat("=", 70)
	fmt.Println(rule)
	fmt.Println("BUSCADOR DE ÓCULOS MAIS BARATOS")
	fmt.Println(rule)
	fmt.Println()

	source := pickSource(cfg, log, *demoMode, *dataFile)

	products, err := source.Records()
	if err != nil {
		log.Error(fmt.Sprintf("❌ Failed to load products from %s: %v", source.Name(), err))
		os.Exit(1)
	}

	if cfg.Logging.ShowProgress {
		fmt.Printf("✅ %d produtos carregados de %s\n\n", len(products), source.Name())
	}

	norm := normalizer.NewNormalizer()

	records, skipped := norm.Normalize(products)
	for _, s := range skipped {
		log.Warn("⚠️  skipping record with unusable price",
			"name", s.Product.Name, "price", s.Product.Price.String(), "error", s.Err)
	}

	cheapest, err := selector.Cheapest(records)
	if err != nil {
		log.Error(fmt.Sprintf("❌ No valid products to compare: %v", err))
		os.Exit(1)
	}

	fmt.Print(formatter.FormatReport(records, cheapest, &cfg.Report))
}

// loadConfig prefers the -config flag, then the default config file when it
// exists, then built-in defaults.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadConfig(path)
	}

	if _, err := os.Stat(config.DefaultConfigPath); err == nil {
		return config.LoadConfig(config.DefaultConfigPath)
	}

	return config.LoadConfig("")
}

// pickSource maps the CLI flags onto a record source. Demo mode wins over a
// data file; with neither, the live catalog is fetched.
func pickSource(cfg *config.Config, log *logger.Logger, demo bool, dataFile string) catalog.Source {
	switch {
	case demo:
		if cfg.Logging.ShowProgress {
			fmt.Println("🎭 Modo de demonstração ativado")
		}

		return catalog.NewDemoSource()
	case dataFile != "":
		if cfg.Logging.ShowProgress {
			fmt.Printf("📂 Carregando dados do arquivo: %s\n", dataFile)
		}

		return catalog.NewFileSource(dataFile)
	default:
		if cfg.Logging.ShowProgress {
			fmt.Printf("🌐 Buscando catálogo em: %s\n", cfg.Catalog.BaseURL)
		}

		return catalog.NewWebSource(&cfg.Catalog, log)
	}
}

func printUsage() {
	fmt.Println("finder - encontra os óculos mais baratos do catálogo")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  finder                     Fetch the live catalog")
	fmt.Println("  finder -demo               Use the built-in demo dataset")
	fmt.Println("  finder -data products.json Load products from a JSON file")
	fmt.Println()
	fmt.Println("JSON file format:")
	fmt.Println(`  [{"name": "Produto", "price": 99.90, "url": "https://..."}, ...]`)
	fmt.Println(`  price may also be a formatted string such as "R$ 1.234,56".`)
	fmt.Println()
	fmt.Println("Flags:")
	flag.PrintDefaults()
}
