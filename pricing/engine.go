package pricing

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// Config represents the pricing configuration structure
type Config struct {
	Currency        string           `json:"currency"`
	BasePrice       int64            `json:"basePrice"`       // base garment price
	CustomUploadFee int64            `json:"customUploadFee"` // flat fee for user-uploaded stickers
	Pricebook       map[string]int64 `json:"pricebook"`       // template design name -> price
}

// Engine resolves sticker and garment prices from a JSON configuration
type Engine struct {
	config *Config
}

var engineInstance *Engine

// defaultConfig mirrors the built-in catalog pricing used when no config
// file is provided.
func defaultConfig() *Config {
	return &Config{
		Currency:        "USD",
		BasePrice:       25,
		CustomUploadFee: 8,
	}
}

// NewEngine creates the pricing engine from a JSON config file. The engine
// is a process-wide singleton; repeated calls return the first instance.
func NewEngine(configPath string) (*Engine, error) {
	if engineInstance != nil {
		return engineInstance, nil
	}

	if !filepath.IsAbs(configPath) {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		configPath = filepath.Join(wd, configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read pricing config: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse pricing config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid pricing config: %w", err)
	}

	engineInstance = &Engine{config: &config}
	log.Printf("✅ PricingEngine: Successfully loaded pricing config from %s", configPath)
	return engineInstance, nil
}

// NewDefaultEngine creates the engine with compiled-in defaults. Used when
// no PRICING_CONFIG path is configured.
func NewDefaultEngine() *Engine {
	if engineInstance != nil {
		return engineInstance
	}
	engineInstance = &Engine{config: defaultConfig()}
	log.Printf("✅ PricingEngine: Using built-in default pricing")
	return engineInstance
}

func validateConfig(config *Config) error {
	if config.Currency == "" {
		return fmt.Errorf("currency is required")
	}
	if config.BasePrice <= 0 {
		return fmt.Errorf("basePrice must be positive")
	}
	if config.CustomUploadFee < 0 {
		return fmt.Errorf("customUploadFee cannot be negative")
	}
	return nil
}

// GetEngine returns the singleton pricing engine instance
func GetEngine() *Engine {
	return engineInstance
}

// ResetForTest clears the singleton so tests can install their own config
func ResetForTest() {
	engineInstance = nil
}

// BasePrice returns the base garment price
func (e *Engine) BasePrice() int64 {
	return e.config.BasePrice
}

// CustomUploadFee returns the flat price for a user-uploaded sticker
func (e *Engine) CustomUploadFee() int64 {
	return e.config.CustomUploadFee
}

// Currency returns the configured currency code
func (e *Engine) Currency() string {
	return e.config.Currency
}

// TemplatePrice returns the price for a template design. The pricebook
// overrides the catalog's own price when an entry exists for the design
// name; otherwise the catalog price stands.
func (e *Engine) TemplatePrice(name string, catalogPrice int64) int64 {
	if e.config.Pricebook != nil {
		if price, exists := e.config.Pricebook[name]; exists {
			return price
		}
	}
	return catalogPrice
}
