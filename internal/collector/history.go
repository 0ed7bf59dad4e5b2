package collector

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v5"
	"go.uber.org/zap"

	"PriceLens/internal/cache"
	"PriceLens/internal/model"
)

// HistorySource tells where a dataset came from.
type HistorySource string

const (
	SourceNetwork HistorySource = "network"
	SourceCache   HistorySource = "cache"
)

// HistoryResult is a loaded dataset. FetchErr holds the network failure when
// the data came from the cache.
type HistoryResult struct {
	Data     model.RawDataset
	Source   HistorySource
	FetchErr error
}

// HistoryLoader fetches price history with retries and falls back to the
// cache when the source fails.
type HistoryLoader struct {
	Fetcher Fetcher
	Store   cache.Store
	Logger  *zap.Logger

	MaxTries      uint
	RetryInterval time.Duration
}

// NewHistoryLoader creates a HistoryLoader with the default retry policy.
func NewHistoryLoader(fetcher Fetcher, store cache.Store, logger *zap.Logger) *HistoryLoader {
	return &HistoryLoader{
		Fetcher:       fetcher,
		Store:         store,
		Logger:        logger,
		MaxTries:      3,
		RetryInterval: 500 * time.Millisecond,
	}
}

// Load returns the history of symbol in [start, end). A successful fetch is
// written to the cache; a failed one is replaced by the cached copy. The
// error is non-nil only when both fail.
func (l *HistoryLoader) Load(ctx context.Context, symbol string, start, end time.Time) (HistoryResult, error) {
	ds, fetchErr := l.fetch(ctx, symbol, start, end)
	if fetchErr == nil {
		if err := l.Store.Save(ctx, symbol, ds.OHLCV()); err != nil {
			l.Logger.Warn("save cache failed", zap.String("store", l.Store.Name()), zap.Error(err))
		} else {
			l.Logger.Info("history cached",
				zap.String("symbol", symbol),
				zap.String("store", l.Store.Name()),
				zap.Int("rows", ds.Len()))
		}
		return HistoryResult{Data: ds, Source: SourceNetwork}, nil
	}

	l.Logger.Warn("history fetch failed, loading cache",
		zap.String("symbol", symbol),
		zap.String("store", l.Store.Name()),
		zap.Error(fetchErr))

	bars, cacheErr := l.Store.Load(ctx, symbol)
	if cacheErr != nil {
		return HistoryResult{}, fmt.Errorf("load history %s: %w", symbol, errors.Join(fetchErr, cacheErr))
	}
	ds = model.RawDataset{Symbol: symbol, Bars: make([]model.RawBar, len(bars))}
	for i, b := range bars {
		ds.Bars[i] = model.RawBar{OHLCV: b}
	}
	l.Logger.Info("history loaded from cache", zap.String("symbol", symbol), zap.Int("rows", ds.Len()))
	return HistoryResult{Data: ds, Source: SourceCache, FetchErr: fetchErr}, nil
}

func (l *HistoryLoader) fetch(ctx context.Context, symbol string, start, end time.Time) (model.RawDataset, error) {
	b := backoff.NewExponentialBackOff()
	if l.RetryInterval > 0 {
		b.InitialInterval = l.RetryInterval
	}
	tries := l.MaxTries
	if tries == 0 {
		tries = 1
	}

	attempt := 0
	ds, err := backoff.Retry(ctx, func() (model.RawDataset, error) {
		attempt++
		ds, err := l.Fetcher.FetchHistory(ctx, symbol, start, end)
		if err != nil {
			l.Logger.Debug("history fetch attempt failed", zap.Int("attempt", attempt), zap.Error(err))
			return model.RawDataset{}, err
		}
		if ds.Len() == 0 {
			return model.RawDataset{}, backoff.Permanent(fmt.Errorf("no data for %s between %s and %s",
				symbol, start.Format("2006-01-02"), end.Format("2006-01-02")))
		}
		return ds, nil
	}, backoff.WithBackOff(b), backoff.WithMaxTries(tries))
	if err != nil {
		return model.RawDataset{}, errors.Join(model.ErrFetchFailure, err)
	}
	return ds, nil
}
