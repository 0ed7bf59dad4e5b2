package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"PriceLens/internal/model"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PRICELENS_SYMBOL", "PRICELENS_CACHE_DRIVER", "CSV_PATH", "SQLITE_PATH",
		"FALLBACK_KRW", "FALLBACK_MXN", "CRON_REFRESH", "LOG_LEVEL", "HTTPS_PROXY",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "005930.KS", cfg.Symbol)
	assert.Equal(t, 1095, cfg.LookbackDays)
	assert.Equal(t, model.DefaultFallbackRate, cfg.FallbackRate())
	assert.Equal(t, "csv", cfg.Cache.Driver)
	assert.Equal(t, uint(3), cfg.Fetch.MaxRetries)
	assert.Equal(t, uint(4), cfg.FetchTries())
	assert.Equal(t, 30*time.Second, cfg.Fetch.Timeout)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
symbol: 000660.KS
lookback_days: 365
rates:
  fallback_krw: 1400
cache:
  driver: sqlite
  sqlite_path: /tmp/x.db
fetch:
  timeout: 10s
schedule:
  refresh_cron: "@daily"
`), 0644))
	clearEnv(t)
	t.Setenv("FALLBACK_MXN", "19.5")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "000660.KS", cfg.Symbol)
	assert.Equal(t, 365, cfg.LookbackDays)
	assert.Equal(t, model.ExchangeRate{KRW: 1400, MXN: 19.5}, cfg.FallbackRate())
	assert.Equal(t, "sqlite", cfg.Cache.Driver)
	assert.Equal(t, "/tmp/x.db", cfg.Cache.SQLitePath)
	assert.Equal(t, 10*time.Second, cfg.Fetch.Timeout)
	assert.Equal(t, "@daily", cfg.Schedule.RefreshCron)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("symbol: [oops"), 0644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative fallback", func(c *Config) { c.Rates.FallbackKRW = -1 }},
		{"unknown driver", func(c *Config) { c.Cache.Driver = "redis" }},
		{"short lookback", func(c *Config) { c.LookbackDays = 1 }},
		{"bad cron", func(c *Config) { c.Schedule.RefreshCron = "every day" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
			require.NoError(t, err)
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
