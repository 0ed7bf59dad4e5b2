package collector

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"PriceLens/internal/model"
)

// RateProviderConfig names the pair symbols and the rates used when they
// cannot be fetched.
type RateProviderConfig struct {
	KRWSymbol string
	MXNSymbol string
	Fallback  model.ExchangeRate
}

// RateResult is the outcome of a rate acquisition. Err holds the cause when
// Fallback is true.
type RateResult struct {
	Rate     model.ExchangeRate
	Fallback bool
	Err      error
}

// RateProvider obtains the USD/KRW and USD/MXN spot rates.
type RateProvider struct {
	fetcher Fetcher
	cfg     RateProviderConfig
	logger  *zap.Logger
}

// NewRateProvider creates a RateProvider. Empty symbols default to the Yahoo
// pairs and an invalid fallback is replaced by model.DefaultFallbackRate.
func NewRateProvider(fetcher Fetcher, cfg RateProviderConfig, logger *zap.Logger) *RateProvider {
	if cfg.KRWSymbol == "" {
		cfg.KRWSymbol = "USDKRW=X"
	}
	if cfg.MXNSymbol == "" {
		cfg.MXNSymbol = "USDMXN=X"
	}
	if err := cfg.Fallback.Validate(); err != nil {
		cfg.Fallback = model.DefaultFallbackRate
	}
	return &RateProvider{fetcher: fetcher, cfg: cfg, logger: logger}
}

// Fetch returns the live rates, or the fallback pair when either rate is
// unavailable. It never fails.
func (p *RateProvider) Fetch(ctx context.Context) RateResult {
	rate, err := p.fetchLive(ctx)
	if err != nil {
		p.logger.Warn("exchange rate fetch failed, using fallback rates",
			zap.Error(err),
			zap.Float64("krw", p.cfg.Fallback.KRW),
			zap.Float64("mxn", p.cfg.Fallback.MXN))
		return RateResult{Rate: p.cfg.Fallback, Fallback: true, Err: err}
	}
	p.logger.Info("exchange rates fetched",
		zap.String("source", p.fetcher.Name()),
		zap.Float64("krw", rate.KRW),
		zap.Float64("mxn", rate.MXN))
	return RateResult{Rate: rate}
}

func (p *RateProvider) fetchLive(ctx context.Context) (model.ExchangeRate, error) {
	krw, err := p.fetcher.FetchLatestClose(ctx, p.cfg.KRWSymbol)
	if err != nil {
		return model.ExchangeRate{}, fmt.Errorf("%s: %w", p.cfg.KRWSymbol, errors.Join(model.ErrFetchFailure, err))
	}
	mxn, err := p.fetcher.FetchLatestClose(ctx, p.cfg.MXNSymbol)
	if err != nil {
		return model.ExchangeRate{}, fmt.Errorf("%s: %w", p.cfg.MXNSymbol, errors.Join(model.ErrFetchFailure, err))
	}
	rate := model.ExchangeRate{KRW: krw, MXN: mxn}
	if err := rate.Validate(); err != nil {
		return model.ExchangeRate{}, fmt.Errorf("malformed rates: %w", errors.Join(model.ErrFetchFailure, err))
	}
	return rate, nil
}
