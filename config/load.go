package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"spot-account-go/infrastructure/logger"
)

// AppConfig holds the runtime configuration for one CLI invocation.
type AppConfig struct {
	Gateway GatewayConfig `yaml:"gateway"`
	Account AccountConfig `yaml:"account"`
	Logger  logger.Config `yaml:"logger"`
}

type GatewayConfig struct {
	BaseURL      string          `yaml:"baseURL"`
	APIKey       string          `yaml:"apiKey"`
	APISecret    string          `yaml:"apiSecret"`
	RecvWindowMs int64           `yaml:"recvWindowMs"`
	RateLimit    RateLimitConfig `yaml:"rateLimit"`
}

// RateLimitConfig configures the token bucket in front of the REST client.
// A zero rate disables rate limiting.
type RateLimitConfig struct {
	Rate  float64 `yaml:"rate"`
	Burst int     `yaml:"burst"`
}

// AccountConfig drives valuation and order matching. Thresholds are kept
// as strings in YAML and parsed to decimals on demand so the config file
// never loses precision through a float round-trip.
type AccountConfig struct {
	QuoteAsset string   `yaml:"quoteAsset"`
	Quotes     []string `yaml:"quotes"`
	DustQty    string   `yaml:"dustQty"`
	DustValue  string   `yaml:"dustValue"`
}

// Thresholds are the materiality cutoffs: Qty is asset-unit based and
// applied before pricing, Value is in the quote asset and applied after.
type Thresholds struct {
	Qty   decimal.Decimal
	Value decimal.Decimal
}

func (c AccountConfig) Thresholds() (Thresholds, error) {
	qty, err := decimal.NewFromString(c.DustQty)
	if err != nil {
		return Thresholds{}, fmt.Errorf("parse account.dustQty: %w", err)
	}
	value, err := decimal.NewFromString(c.DustValue)
	if err != nil {
		return Thresholds{}, fmt.Errorf("parse account.dustValue: %w", err)
	}
	if qty.IsNegative() || value.IsNegative() {
		return Thresholds{}, errors.New("account dust thresholds must be >= 0")
	}
	return Thresholds{Qty: qty, Value: value}, nil
}

// Load reads YAML config from path, applies defaults and validates.
func Load(path string) (AppConfig, error) {
	cfg, err := load(path)
	if err != nil {
		return cfg, err
	}
	return cfg, Validate(cfg)
}

// LoadWithEnvOverrides loads config and overrides credentials from the
// environment if present. A .env file next to the process is honored
// first; its absence is not an error. Validation runs only after the
// overrides are layered, so credentials may live solely in the
// environment with no copy in the file.
func LoadWithEnvOverrides(path string) (AppConfig, error) {
	_ = godotenv.Load()
	cfg, err := load(path)
	if err != nil {
		return cfg, err
	}
	if v := os.Getenv("SPOT_API_KEY"); v != "" {
		cfg.Gateway.APIKey = v
	}
	if v := os.Getenv("SPOT_API_SECRET"); v != "" {
		cfg.Gateway.APISecret = v
	}
	return cfg, Validate(cfg)
}

// load parses the file and applies defaults without validating.
func load(path string) (AppConfig, error) {
	var cfg AppConfig
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse yaml: %w", err)
	}
	applyDefaults(&cfg)
	return cfg, nil
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Gateway.BaseURL == "" {
		cfg.Gateway.BaseURL = "https://api.binance.com"
	}
	if cfg.Gateway.RecvWindowMs == 0 {
		cfg.Gateway.RecvWindowMs = 5000
	}
	if cfg.Account.QuoteAsset == "" {
		cfg.Account.QuoteAsset = "USDT"
	}
	if len(cfg.Account.Quotes) == 0 {
		cfg.Account.Quotes = []string{"USDT", "BTC"}
	}
	if cfg.Account.DustQty == "" {
		cfg.Account.DustQty = "0.5"
	}
	if cfg.Account.DustValue == "" {
		cfg.Account.DustValue = "10.0"
	}
	if cfg.Logger.Level == "" {
		cfg.Logger = logger.DefaultConfig()
	}
}

// Validate ensures required fields are present. Credential problems are
// fatal here, before any network call is made.
func Validate(cfg AppConfig) error {
	if cfg.Gateway.BaseURL == "" {
		return errors.New("gateway.baseURL is required")
	}
	if cfg.Gateway.APIKey == "" || cfg.Gateway.APISecret == "" {
		return errors.New("gateway.apiKey/apiSecret is required (or SPOT_API_KEY/SPOT_API_SECRET)")
	}
	if cfg.Gateway.RateLimit.Rate < 0 || cfg.Gateway.RateLimit.Burst < 0 {
		return errors.New("gateway.rateLimit values must be >= 0")
	}
	quoteKnown := false
	for _, q := range cfg.Account.Quotes {
		if q == cfg.Account.QuoteAsset {
			quoteKnown = true
			break
		}
	}
	if !quoteKnown {
		return fmt.Errorf("account.quoteAsset %s must be listed in account.quotes", cfg.Account.QuoteAsset)
	}
	if _, err := cfg.Account.Thresholds(); err != nil {
		return err
	}
	return nil
}
