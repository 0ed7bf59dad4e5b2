// Package cache persists fetched price history as a flat table of daily bars
// so a later run can fall back to it when the source is unreachable.
package cache

import (
	"context"
	"errors"

	"PriceLens/internal/model"
)

// ErrNotFound is returned by Load when nothing was cached for the symbol.
var ErrNotFound = errors.New("cache: no cached data")

// Store saves and loads daily bars.
type Store interface {
	Save(ctx context.Context, symbol string, bars []model.OHLCV) error
	Load(ctx context.Context, symbol string) ([]model.OHLCV, error)
	Name() string
}
