package model

import "time"

// OHLCV represents a single daily bar as persisted in the cache.
// Missing fields are NaN.
type OHLCV struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// RawBar is one row of a fetched or cached dataset before normalization.
// A non-empty Ticker means the source used a two-level (date, ticker) axis.
type RawBar struct {
	OHLCV
	Ticker string
}

// RawDataset is the tabular price history as returned by a source.
type RawDataset struct {
	Symbol string
	Bars   []RawBar
}

// Len returns the number of rows in the dataset.
func (d RawDataset) Len() int { return len(d.Bars) }

// MultiLevel reports whether any row carries a ticker level.
func (d RawDataset) MultiLevel() bool {
	for _, b := range d.Bars {
		if b.Ticker != "" {
			return true
		}
	}
	return false
}

// OHLCV returns the bars without the ticker level.
func (d RawDataset) OHLCV() []OHLCV {
	bars := make([]OHLCV, len(d.Bars))
	for i, b := range d.Bars {
		bars[i] = b.OHLCV
	}
	return bars
}

// PricePoint is a dated closing price in KRW.
type PricePoint struct {
	Date  time.Time
	Close float64
}

// PriceSeries is a strictly date-ascending sequence of closes without gaps
// (NaN) or duplicate dates.
type PriceSeries struct {
	Symbol string
	Points []PricePoint
}

// Len returns the number of points.
func (s PriceSeries) Len() int { return len(s.Points) }

// Closes returns the closing prices in order.
func (s PriceSeries) Closes() []float64 {
	closes := make([]float64, len(s.Points))
	for i, p := range s.Points {
		closes[i] = p.Close
	}
	return closes
}

// Head returns up to the first n points.
func (s PriceSeries) Head(n int) []PricePoint {
	if n > len(s.Points) {
		n = len(s.Points)
	}
	return s.Points[:n]
}

// Tail returns up to the last n points.
func (s PriceSeries) Tail(n int) []PricePoint {
	if n > len(s.Points) {
		n = len(s.Points)
	}
	return s.Points[len(s.Points)-n:]
}

// Raw turns the series back into a single-level dataset.
func (s PriceSeries) Raw() RawDataset {
	bars := make([]RawBar, len(s.Points))
	for i, p := range s.Points {
		bars[i] = RawBar{OHLCV: OHLCV{Time: p.Date, Close: p.Close}}
	}
	return RawDataset{Symbol: s.Symbol, Bars: bars}
}

// ReturnPoint is the log return realized on Date.
type ReturnPoint struct {
	Date  time.Time
	Value float64
}

// ReturnSeries is an ordered sequence of log returns.
type ReturnSeries struct {
	Points []ReturnPoint
}

// Len returns the number of returns.
func (r ReturnSeries) Len() int { return len(r.Points) }

// Values returns the return values in order.
func (r ReturnSeries) Values() []float64 {
	vals := make([]float64, len(r.Points))
	for i, p := range r.Points {
		vals[i] = p.Value
	}
	return vals
}

// Head returns up to the first n returns.
func (r ReturnSeries) Head(n int) []ReturnPoint {
	if n > len(r.Points) {
		n = len(r.Points)
	}
	return r.Points[:n]
}

// Tail returns up to the last n returns.
func (r ReturnSeries) Tail(n int) []ReturnPoint {
	if n > len(r.Points) {
		n = len(r.Points)
	}
	return r.Points[len(r.Points)-n:]
}
