// Package config provides configuration management for the finder.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is where the finder looks for a config file when none is
// given on the command line.
const DefaultConfigPath = "configs/finder.yaml"

// Configuration validation errors.
var (
	ErrMissingBaseURL         = errors.New("catalog.base_url is required")
	ErrInvalidTimeout         = errors.New("catalog.timeout_sec must be at least 1")
	ErrInvalidBufferSize      = errors.New("catalog.buffer_size_kb must be at least 1")
	ErrMissingProductSelector = errors.New("catalog.selectors.product is required")
	ErrMissingNameSelector    = errors.New("catalog.selectors.name is required")
	ErrMissingPriceSelector   = errors.New("catalog.selectors.price is required")
	ErrMissingCurrencyPrefix  = errors.New("report.currency_prefix is required")
	ErrInvalidNameWidth       = errors.New("report.max_name_width must be at least 8")
	ErrInvalidLogLevel        = errors.New("logging.level must be one of: debug, info, warn, error")
)

// Config represents the complete finder configuration.
type Config struct {
	Catalog CatalogConfig `yaml:"catalog"`
	Report  ReportConfig  `yaml:"report"`
	Logging LoggingConfig `yaml:"logging"`
}

// CatalogConfig describes the live catalog and how to fetch it.
type CatalogConfig struct {
	BaseURL      string          `yaml:"base_url"`
	BackupURLs   []string        `yaml:"backup_urls"`
	UserAgent    string          `yaml:"user_agent"`
	TimeoutSec   int             `yaml:"timeout_sec"`
	BufferSizeKb int             `yaml:"buffer_size_kb"`
	Selectors    SelectorsConfig `yaml:"selectors"`
}

// SelectorsConfig holds the CSS selectors used to extract products from the
// catalog page. Kept in configuration so markup changes need no rebuild.
type SelectorsConfig struct {
	Product string `yaml:"product"`
	Name    string `yaml:"name"`
	Price   string `yaml:"price"`
	Link    string `yaml:"link"`
}

// ReportConfig defines how the result report is rendered.
type ReportConfig struct {
	CurrencyPrefix string `yaml:"currency_prefix"`
	ShowAll        bool   `yaml:"show_all_products"`
	MaxNameWidth   int    `yaml:"max_name_width"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level        string `yaml:"level"`
	ShowProgress bool   `yaml:"show_progress"`
}

// Default returns the built-in configuration. It targets the Zerezes catalog
// and must validate on its own so the zero-flag invocation always works.
func Default() *Config {
	return &Config{
		Catalog: CatalogConfig{
			BaseURL: "https://www.zerezes.com.br",
			BackupURLs: []string{
				"https://zerezes.com.br",
				"https://www.zerezes.com",
			},
			UserAgent:    "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36",
			TimeoutSec:   10,
			BufferSizeKb: 2048,
			Selectors: SelectorsConfig{
				Product: ".product, .item, .product-item",
				Name:    ".product-name, .title, .name",
				Price:   ".price, .product-price",
				Link:    "a",
			},
		},
		Report: ReportConfig{
			CurrencyPrefix: "R$",
			ShowAll:        true,
			MaxNameWidth:   45,
		},
		Logging: LoggingConfig{
			Level:        "info",
			ShowProgress: true,
		},
	}
}

// LoadConfig builds the effective configuration: defaults, overlaid with the
// YAML file at path when one is given, overlaid with environment variables.
func LoadConfig(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// applyEnv layers environment overrides on top of the file configuration.
// A .env file in the working directory is honored when present.
func (c *Config) applyEnv() {
	_ = godotenv.Load()

	if v := os.Getenv("CATALOG_URL"); v != "" {
		c.Catalog.BaseURL = v
	}

	if v := os.Getenv("CATALOG_USER_AGENT"); v != "" {
		c.Catalog.UserAgent = v
	}

	if v := os.Getenv("CATALOG_TIMEOUT_SEC"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Catalog.TimeoutSec = n
		}
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Catalog.BaseURL == "" {
		return ErrMissingBaseURL
	}

	if c.Catalog.TimeoutSec < 1 {
		return ErrInvalidTimeout
	}

	if c.Catalog.BufferSizeKb < 1 {
		return ErrInvalidBufferSize
	}

	if c.Catalog.Selectors.Product == "" {
		return ErrMissingProductSelector
	}

	if c.Catalog.Selectors.Name == "" {
		return ErrMissingNameSelector
	}

	if c.Catalog.Selectors.Price == "" {
		return ErrMissingPriceSelector
	}

	if c.Report.CurrencyPrefix == "" {
		return ErrMissingCurrencyPrefix
	}

	if c.Report.MaxNameWidth < 8 {
		return ErrInvalidNameWidth
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return ErrInvalidLogLevel
	}

	return nil
}

// GetAllURLs returns every catalog URL candidate, primary first.
func (c *CatalogConfig) GetAllURLs() []string {
	urls := []string{c.BaseURL}
	urls = append(urls, c.BackupURLs...)

	return urls
}

// GetTimeout returns the fetch timeout duration.
func (c *CatalogConfig) GetTimeout() time.Duration {
	return time.Duration(c.TimeoutSec) * time.Second
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Catalog: %s (+%d backups), Timeout: %ds}",
		c.Catalog.BaseURL,
		len(c.Catalog.BackupURLs),
		c.Catalog.TimeoutSec,
	)
}
