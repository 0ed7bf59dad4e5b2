// Package analysis wires rate acquisition, history loading and the
// statistics into a single report.
package analysis

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"PriceLens/internal/calculator"
	"PriceLens/internal/collector"
	"PriceLens/internal/fx"
	"PriceLens/internal/model"
)

// Moving-average windows, in sessions.
const (
	ShortWindow = 30
	LongWindow  = 90
)

// Trend summarizes the direction and the moving averages of the series.
// Unavailable averages are NaN.
type Trend struct {
	Up       bool
	SMAShort model.Amounts
	SMALong  model.Amounts
	High52w  model.Amounts
	Low52w   model.Amounts
	Position float64 // 0.0 ~ 1.0
	// Rolling means aligned with the series, in KRW.
	RollingShort []float64
	RollingLong  []float64
}

// Report is the result of one pipeline run.
type Report struct {
	Symbol      string
	Start       time.Time
	End         time.Time
	Rates       collector.RateResult
	Source      collector.HistorySource
	Series      model.PriceSeries
	Prices      []model.Amounts
	Returns     model.ReturnSeries
	ReturnStats model.DescriptiveStats
	PriceStats  model.PriceStats
	Extremes    model.ReturnSeries
	Trend       Trend
}

// Converter returns the converter built from the report's rates.
func (r *Report) Converter() fx.Converter { return fx.NewConverter(r.Rates.Rate) }

// Pipeline runs the batch analysis.
type Pipeline struct {
	Rates   *collector.RateProvider
	History *collector.HistoryLoader
	Logger  *zap.Logger
	Now     func() time.Time
}

// NewPipeline creates a Pipeline.
func NewPipeline(rates *collector.RateProvider, history *collector.HistoryLoader, logger *zap.Logger) *Pipeline {
	return &Pipeline{Rates: rates, History: history, Logger: logger, Now: time.Now}
}

// Window returns the [start, end) date window ending today.
func (p *Pipeline) Window(lookbackDays int) (start, end time.Time) {
	y, m, d := p.Now().Date()
	end = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return end.AddDate(0, 0, -lookbackDays), end
}

// Refresh fetches the history and updates the cache.
func (p *Pipeline) Refresh(ctx context.Context, symbol string, lookbackDays int) (collector.HistoryResult, error) {
	start, end := p.Window(lookbackDays)
	return p.History.Load(ctx, symbol, start, end)
}

// Run executes the whole pipeline for symbol. Acquisition failures are
// absorbed by fallbacks; derivation failures abort the run.
func (p *Pipeline) Run(ctx context.Context, symbol string, lookbackDays int) (*Report, error) {
	start, end := p.Window(lookbackDays)
	rep := &Report{Symbol: symbol, Start: start, End: end}

	rep.Rates = p.Rates.Fetch(ctx)
	conv := rep.Converter()

	hist, err := p.History.Load(ctx, symbol, start, end)
	if err != nil {
		return nil, err
	}
	rep.Source = hist.Source

	if rep.Series, err = calculator.Normalize(hist.Data); err != nil {
		return nil, err
	}
	p.Logger.Info("price series ready",
		zap.String("symbol", symbol),
		zap.String("source", string(hist.Source)),
		zap.Int("raw_rows", hist.Data.Len()),
		zap.Bool("multi_level", hist.Data.MultiLevel()),
		zap.Int("points", rep.Series.Len()))
	rep.Prices = conv.Series(rep.Series)

	if rep.Returns, err = calculator.LogReturns(rep.Series); err != nil {
		return nil, err
	}
	if rep.ReturnStats, err = calculator.Describe(rep.Returns.Values()); err != nil {
		return nil, fmt.Errorf("return stats: %w", err)
	}
	if rep.PriceStats, err = calculator.DescribePrices(rep.Series, conv); err != nil {
		return nil, err
	}
	rep.Extremes = calculator.Extremes(rep.Returns, rep.ReturnStats.Mean, rep.ReturnStats.StdDev)

	rep.Trend = p.trend(rep.Series, conv)
	return rep, nil
}

func (p *Pipeline) trend(series model.PriceSeries, conv fx.Converter) Trend {
	closes := series.Closes()
	nan := model.Amounts{KRW: math.NaN(), USD: math.NaN(), MXN: math.NaN()}
	tr := Trend{SMAShort: nan, SMALong: nan, High52w: nan, Low52w: nan, Position: math.NaN()}

	if up, err := calculator.Trend(closes); err == nil {
		tr.Up = up
	}

	if ma, err := calculator.CalculateSMA(closes, ShortWindow); err != nil {
		p.Logger.Warn("short moving average unavailable", zap.Int("window", ShortWindow), zap.Error(err))
	} else {
		tr.SMAShort = conv.Amounts(ma)
	}
	if ma, err := calculator.CalculateSMA(closes, LongWindow); err != nil {
		p.Logger.Warn("long moving average unavailable", zap.Int("window", LongWindow), zap.Error(err))
	} else {
		tr.SMALong = conv.Amounts(ma)
	}
	tr.RollingShort, _ = calculator.RollingMean(closes, ShortWindow)
	tr.RollingLong, _ = calculator.RollingMean(closes, LongWindow)

	if h, l, err := calculator.TrailingRange(series, calculator.TradingDaysPerYear); err != nil {
		p.Logger.Warn("52-week range calculation failed", zap.Error(err))
	} else {
		tr.High52w = conv.Amounts(h)
		tr.Low52w = conv.Amounts(l)
		if pos, err := calculator.RangePosition(closes[len(closes)-1], h, l); err == nil {
			tr.Position = pos
		}
	}
	return tr
}
