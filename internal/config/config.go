package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"

	"PriceLens/internal/model"
)

// Config holds all application configuration.
type Config struct {
	Symbol       string `yaml:"symbol"`
	LookbackDays int    `yaml:"lookback_days"`
	Rates        struct {
		KRWSymbol   string  `yaml:"krw_symbol"`
		MXNSymbol   string  `yaml:"mxn_symbol"`
		FallbackKRW float64 `yaml:"fallback_krw"`
		FallbackMXN float64 `yaml:"fallback_mxn"`
	} `yaml:"rates"`
	Cache struct {
		Driver     string `yaml:"driver"` // "csv" or "sqlite"
		CSVPath    string `yaml:"csv_path"`
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"cache"`
	Fetch struct {
		MaxRetries uint          `yaml:"max_retries"`
		Timeout    time.Duration `yaml:"timeout"`
	} `yaml:"fetch"`
	Schedule struct {
		RefreshCron string `yaml:"refresh_cron"`
	} `yaml:"schedule"`
	Log struct {
		Level       string `yaml:"level"`
		Development bool   `yaml:"development"`
	} `yaml:"log"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("PRICELENS_SYMBOL"); v != "" {
		cfg.Symbol = v
	}
	if v := os.Getenv("PRICELENS_CACHE_DRIVER"); v != "" {
		cfg.Cache.Driver = v
	}
	if v := os.Getenv("CSV_PATH"); v != "" {
		cfg.Cache.CSVPath = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Cache.SQLitePath = v
	}
	if v := os.Getenv("FALLBACK_KRW"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Rates.FallbackKRW = f
		}
	}
	if v := os.Getenv("FALLBACK_MXN"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Rates.FallbackMXN = f
		}
	}
	if v := os.Getenv("CRON_REFRESH"); v != "" {
		cfg.Schedule.RefreshCron = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.Symbol == "" {
		cfg.Symbol = "005930.KS"
	}
	if cfg.LookbackDays == 0 {
		cfg.LookbackDays = 3 * 365
	}
	if cfg.Rates.KRWSymbol == "" {
		cfg.Rates.KRWSymbol = "USDKRW=X"
	}
	if cfg.Rates.MXNSymbol == "" {
		cfg.Rates.MXNSymbol = "USDMXN=X"
	}
	if cfg.Rates.FallbackKRW == 0 {
		cfg.Rates.FallbackKRW = model.DefaultFallbackRate.KRW
	}
	if cfg.Rates.FallbackMXN == 0 {
		cfg.Rates.FallbackMXN = model.DefaultFallbackRate.MXN
	}
	if cfg.Cache.Driver == "" {
		cfg.Cache.Driver = "csv"
	}
	if cfg.Cache.CSVPath == "" {
		cfg.Cache.CSVPath = "data/precios_samsung.csv"
	}
	if cfg.Cache.SQLitePath == "" {
		cfg.Cache.SQLitePath = "data/pricelens.db"
	}
	if cfg.Fetch.MaxRetries == 0 {
		cfg.Fetch.MaxRetries = 3
	}
	if cfg.Fetch.Timeout == 0 {
		cfg.Fetch.Timeout = 30 * time.Second
	}
	if cfg.Schedule.RefreshCron == "" {
		cfg.Schedule.RefreshCron = "0 30 16 * * 1-5"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	return cfg, nil
}

// FallbackRate returns the configured fallback exchange rates.
func (c *Config) FallbackRate() model.ExchangeRate {
	return model.ExchangeRate{KRW: c.Rates.FallbackKRW, MXN: c.Rates.FallbackMXN}
}

// FetchTries is the total number of history fetch attempts: the first try
// plus fetch.max_retries retries.
func (c *Config) FetchTries() uint {
	return c.Fetch.MaxRetries + 1
}

// Validate checks that all fields hold usable values.
func (c *Config) Validate() error {
	if c.LookbackDays < 2 {
		return fmt.Errorf("lookback_days must be at least 2, got %d", c.LookbackDays)
	}
	if err := c.FallbackRate().Validate(); err != nil {
		return fmt.Errorf("rates: %w", err)
	}
	switch c.Cache.Driver {
	case "csv", "sqlite":
	default:
		return fmt.Errorf("cache.driver must be csv or sqlite, got %q", c.Cache.Driver)
	}
	if c.Fetch.Timeout < 0 {
		return fmt.Errorf("fetch.timeout must be positive")
	}
	parser := cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	if _, err := parser.Parse(c.Schedule.RefreshCron); err != nil {
		return fmt.Errorf("schedule.refresh_cron: %w", err)
	}
	return nil
}
