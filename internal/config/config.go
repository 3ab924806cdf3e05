package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"carshare-settlement/internal/pricing"
)

// Config represents the application configuration
type Config struct {
	Log       LogConfig       `yaml:"log" toml:"log"`
	Pricing   PricingConfig   `yaml:"pricing" toml:"pricing"`
	Batch     BatchConfig     `yaml:"batch" toml:"batch"`
	Metrics   MetricsConfig   `yaml:"metrics" toml:"metrics"`
	Scheduler SchedulerConfig `yaml:"scheduler" toml:"scheduler"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level" toml:"level"`   // "debug", "info", "warn", "error"
	Format string `yaml:"format" toml:"format"` // "json" or "text"
}

// PricingConfig overrides the default rates. Zero values keep the defaults.
type PricingConfig struct {
	CommissionRate                 float64      `yaml:"commission_rate" toml:"commission_rate"`
	InsuranceShare                 float64      `yaml:"insurance_share" toml:"insurance_share"`
	AssistanceFeePerDayCents       int64        `yaml:"assistance_fee_per_day" toml:"assistance_fee_per_day"`
	DeductibleReductionPerDayCents int64        `yaml:"deductible_reduction_per_day" toml:"deductible_reduction_per_day"`
	Discounts                      []TierConfig `yaml:"discounts" toml:"discounts"`
}

type TierConfig struct {
	StartDay int64 `yaml:"start_day" toml:"start_day"`
	Percent  int64 `yaml:"percent" toml:"percent"`
}

// BatchConfig locates the documents of a settlement run
type BatchConfig struct {
	Input  string `yaml:"input" toml:"input"`
	Output string `yaml:"output" toml:"output"` // "-" for stdout
	Mode   string `yaml:"mode" toml:"mode"`
}

// MetricsConfig contains the Prometheus textfile settings
type MetricsConfig struct {
	Textfile string `yaml:"textfile" toml:"textfile"` // empty disables
}

// SchedulerConfig contains cron schedule settings
type SchedulerConfig struct {
	Settle string `yaml:"settle" toml:"settle"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads configuration from a YAML or TOML file, chosen by extension.
// An empty path starts from the defaults. A .env file in the working
// directory is loaded first; variables already set win over it.
func Load(configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	var cfg Config
	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := decode(configPath, data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	// Override with environment variables if present
	cfg.overrideWithEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func decode(path string, data []byte, cfg *Config) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, cfg)
	case ".toml":
		return toml.Unmarshal(data, cfg)
	default:
		return fmt.Errorf("unsupported config format %q", ext)
	}
}

// overrideWithEnv overrides config values with environment variables
func (c *Config) overrideWithEnv() {
	// Batch
	if val := os.Getenv("SETTLE_INPUT"); val != "" {
		c.Batch.Input = val
	}
	if val := os.Getenv("SETTLE_OUTPUT"); val != "" {
		c.Batch.Output = val
	}
	if val := os.Getenv("SETTLE_MODE"); val != "" {
		c.Batch.Mode = val
	}

	// Log
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}

	// Metrics
	if val := os.Getenv("METRICS_TEXTFILE"); val != "" {
		c.Metrics.Textfile = val
	}

	// Scheduler
	if val := os.Getenv("SCHEDULE_SETTLE"); val != "" {
		c.Scheduler.Settle = val
	}
}

func (c *Config) applyDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}

	if c.Batch.Input == "" {
		c.Batch.Input = "data.json"
	}
	if c.Batch.Output == "" {
		c.Batch.Output = "output.json"
	}
	if c.Batch.Mode == "" {
		c.Batch.Mode = "auto"
	}

	if c.Scheduler.Settle == "" {
		c.Scheduler.Settle = "0 0 1 * * *" // 1 AM UTC
	}
}

// Validate fills in defaults and checks the log and pricing settings
func (c *Config) Validate() error {
	c.applyDefaults()

	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format: %q", c.Log.Format)
	}

	return c.Rates().Validate()
}

// Rates builds the pricing rates: the defaults with every configured value
// applied on top.
func (c *Config) Rates() pricing.Rates {
	rates := pricing.DefaultRates()
	if c.Pricing.CommissionRate != 0 {
		rates.CommissionRate = decimal.NewFromFloat(c.Pricing.CommissionRate)
	}
	if c.Pricing.InsuranceShare != 0 {
		rates.InsuranceShare = decimal.NewFromFloat(c.Pricing.InsuranceShare)
	}
	if c.Pricing.AssistanceFeePerDayCents != 0 {
		rates.AssistanceFeePerDayCents = c.Pricing.AssistanceFeePerDayCents
	}
	if c.Pricing.DeductibleReductionPerDayCents != 0 {
		rates.DeductibleReductionPerDayCents = c.Pricing.DeductibleReductionPerDayCents
	}
	if len(c.Pricing.Discounts) > 0 {
		schedule := make(pricing.Schedule, 0, len(c.Pricing.Discounts))
		for _, t := range c.Pricing.Discounts {
			schedule = append(schedule, pricing.Tier{StartDay: t.StartDay, Percent: t.Percent})
		}
		rates.Discounts = schedule
	}
	return rates
}
