package calculator

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"PriceLens/internal/model"
)

func day(d int) time.Time {
	return time.Date(2024, 3, d, 0, 0, 0, 0, time.UTC)
}

func bar(t time.Time, close float64) model.RawBar {
	return model.RawBar{OHLCV: model.OHLCV{Time: t, Close: close}}
}

func TestNormalize_Empty(t *testing.T) {
	_, err := Normalize(model.RawDataset{Symbol: "005930.KS"})
	assert.ErrorIs(t, err, model.ErrEmptyInput)
}

func TestNormalize_OnlyMissing(t *testing.T) {
	raw := model.RawDataset{Bars: []model.RawBar{bar(day(1), math.NaN()), bar(day(2), math.Inf(1))}}
	_, err := Normalize(raw)
	assert.ErrorIs(t, err, model.ErrEmptyInput)
}

func TestNormalize_SortsDropsAndDedupes(t *testing.T) {
	raw := model.RawDataset{Symbol: "X", Bars: []model.RawBar{
		bar(day(4), 400),
		bar(day(2), math.NaN()),
		bar(day(1), 100),
		bar(day(3), 300),
		bar(day(3), 301),
		bar(day(2), 200),
	}}

	s, err := Normalize(raw)
	require.NoError(t, err)
	assert.Equal(t, "X", s.Symbol)
	assert.Equal(t, []float64{100, 200, 300, 400}, s.Closes())
	for i := 1; i < s.Len(); i++ {
		assert.True(t, s.Points[i-1].Date.Before(s.Points[i].Date))
	}
}

func TestNormalize_MissingFirstDuplicateDoesNotShadow(t *testing.T) {
	// the NaN row is dropped before deduplication, so the valid row survives
	raw := model.RawDataset{Bars: []model.RawBar{
		bar(day(1), math.NaN()),
		bar(day(1), 150),
	}}
	s, err := Normalize(raw)
	require.NoError(t, err)
	assert.Equal(t, []float64{150}, s.Closes())
}

func TestNormalize_CollapsesTickerLevel(t *testing.T) {
	kst := time.FixedZone("KST", 9*3600)
	raw := model.RawDataset{Bars: []model.RawBar{
		{OHLCV: model.OHLCV{Time: time.Date(2024, 3, 4, 9, 0, 0, 0, kst), Close: 73000}, Ticker: "005930.KS"},
		{OHLCV: model.OHLCV{Time: time.Date(2024, 3, 5, 9, 0, 0, 0, kst), Close: 73500}, Ticker: "005930.KS"},
	}}
	require.True(t, raw.MultiLevel())

	s, err := Normalize(raw)
	require.NoError(t, err)
	require.Equal(t, 2, s.Len())
	assert.Equal(t, time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC), s.Points[0].Date)
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), s.Points[1].Date)
}

func TestNormalize_Idempotent(t *testing.T) {
	raw := model.RawDataset{Symbol: "X", Bars: []model.RawBar{
		bar(day(3), 3), bar(day(1), 1), bar(day(2), math.NaN()), bar(day(1), 9), bar(day(5), 5),
	}}
	once, err := Normalize(raw)
	require.NoError(t, err)
	twice, err := Normalize(once.Raw())
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}
