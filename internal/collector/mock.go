package collector

import (
	"context"
	"fmt"
	"time"

	"PriceLens/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Price      float64
	Data       *model.RawDataset
	Closes     map[string]float64
	HistoryErr error
	CloseErr   error

	HistoryCalls int
	CloseCalls   int
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchHistory(_ context.Context, symbol string, start, end time.Time) (model.RawDataset, error) {
	m.HistoryCalls++
	if m.HistoryErr != nil {
		return model.RawDataset{}, m.HistoryErr
	}
	if m.Data != nil {
		return *m.Data, nil
	}
	return generateMockDataset(symbol, m.Price, start, end), nil
}

func (m *MockFetcher) FetchLatestClose(_ context.Context, symbol string) (float64, error) {
	m.CloseCalls++
	if m.CloseErr != nil {
		return 0, m.CloseErr
	}
	if c, ok := m.Closes[symbol]; ok {
		return c, nil
	}
	if m.Price == 0 {
		return 0, fmt.Errorf("mock: no close for %s", symbol)
	}
	return m.Price, nil
}

// generateMockDataset builds one weekday bar per day in [start, end).
func generateMockDataset(symbol string, basePrice float64, start, end time.Time) model.RawDataset {
	ds := model.RawDataset{Symbol: symbol}
	i := 0
	for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}
		p := basePrice * (1 + float64(i%20-10)*0.001)
		ds.Bars = append(ds.Bars, model.RawBar{OHLCV: model.OHLCV{
			Time:   d,
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}})
		i++
	}
	return ds
}
