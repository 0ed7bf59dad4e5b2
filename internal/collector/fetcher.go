package collector

import (
	"context"
	"time"

	"PriceLens/internal/model"
)

// Fetcher defines the interface for fetching market data.
type Fetcher interface {
	// FetchHistory returns daily bars for symbol in [start, end).
	FetchHistory(ctx context.Context, symbol string, start, end time.Time) (model.RawDataset, error)
	// FetchLatestClose returns the most recent close of symbol.
	FetchLatestClose(ctx context.Context, symbol string) (float64, error)
	Name() string
}
