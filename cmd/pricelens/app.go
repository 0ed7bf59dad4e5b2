package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"PriceLens/internal/analysis"
	"PriceLens/internal/cache"
	"PriceLens/internal/collector"
	"PriceLens/internal/config"
	"PriceLens/internal/logging"
)

// app holds the components shared by all commands.
type app struct {
	cfg      *config.Config
	logger   *zap.Logger
	fetcher  collector.Fetcher
	store    cache.Store
	rates    *collector.RateProvider
	history  *collector.HistoryLoader
	pipeline *analysis.Pipeline

	closers []func() error
}

func resolveConfigPath() string {
	if *configPath != "" {
		return *configPath
	}
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		return v
	}
	return "configs/config.yaml"
}

func newApp() (*app, error) {
	cfg, err := config.Load(resolveConfigPath())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	a := &app{cfg: cfg, logger: logger}
	a.fetcher = collector.NewYahooFetcher(cfg.Proxy, cfg.Fetch.Timeout)
	logger.Info("data source", zap.String("fetcher", a.fetcher.Name()), zap.String("symbol", cfg.Symbol))

	a.store = a.openStore()
	logger.Info("price cache", zap.String("store", a.store.Name()))

	a.rates = collector.NewRateProvider(a.fetcher, collector.RateProviderConfig{
		KRWSymbol: cfg.Rates.KRWSymbol,
		MXNSymbol: cfg.Rates.MXNSymbol,
		Fallback:  cfg.FallbackRate(),
	}, logger)

	a.history = collector.NewHistoryLoader(a.fetcher, a.store, logger)
	a.history.MaxTries = cfg.FetchTries()

	a.pipeline = analysis.NewPipeline(a.rates, a.history, logger)
	return a, nil
}

// openStore returns the configured cache, falling back to the CSV file when
// the database cannot be opened.
func (a *app) openStore() cache.Store {
	csv := cache.NewCSVStore(a.cfg.Cache.CSVPath)
	if a.cfg.Cache.Driver != "sqlite" {
		return csv
	}
	db, err := cache.NewSQLiteStore(a.cfg.Cache.SQLitePath, a.logger)
	if err != nil {
		a.logger.Warn("init sqlite cache failed, using csv", zap.Error(err))
		return csv
	}
	a.closers = append(a.closers, db.Close)
	return db
}

func (a *app) close() {
	for _, c := range a.closers {
		if err := c(); err != nil {
			a.logger.Warn("close", zap.Error(err))
		}
	}
	_ = a.logger.Sync()
}
