package fx

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"PriceLens/internal/model"
)

func TestConverter_Scenario(t *testing.T) {
	c := NewConverter(model.ExchangeRate{KRW: 1300, MXN: 18.0})

	assert.InDelta(t, 76.923076, c.ToUSD(100000), 1e-6)
	assert.InDelta(t, 1384.615384, c.ToMXN(100000), 1e-6)
	assert.InDelta(t, 1.384615, c.MXNPer100KRW(), 1e-6)
}

func TestConverter_PathConsistency(t *testing.T) {
	rates := []model.ExchangeRate{
		{KRW: 1300, MXN: 18},
		{KRW: 1387.25, MXN: 17.03},
		{KRW: 0.5, MXN: 1e3},
		{KRW: 9999.99, MXN: 0.01},
	}
	prices := []float64{0, 1, 55000, 78123.5, 1e9}

	for _, r := range rates {
		c := NewConverter(r)
		for _, p := range prices {
			assert.Equal(t, c.ToUSD(p)*r.MXN, c.ToMXN(p), "toMXN vs toUSD*rate, rate=%v price=%v", r, p)
			assert.Equal(t, c.USDToMXN(c.ToUSD(p)), c.ToMXN(p), "round trip, rate=%v price=%v", r, p)
		}
	}
}

func TestConverter_SeriesMatchesScalar(t *testing.T) {
	c := NewConverter(model.ExchangeRate{KRW: 1342.7, MXN: 17.9})
	day := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	s := model.PriceSeries{Points: []model.PricePoint{
		{Date: day, Close: 71000},
		{Date: day.AddDate(0, 0, 1), Close: 72100},
		{Date: day.AddDate(0, 0, 2), Close: 70550},
	}}

	got := c.Series(s)
	require.Len(t, got, 3)
	for i, p := range s.Points {
		assert.Equal(t, c.Amounts(p.Close), got[i])
		assert.Equal(t, p.Close, got[i].KRW)
	}
}

func TestConverter_VarianceScalesBySquare(t *testing.T) {
	c := NewConverter(model.ExchangeRate{KRW: 1300, MXN: 18.0})
	v := 4_000_000.0

	assert.Equal(t, v/(1300.0*1300.0), c.VarianceToUSD(v))
	assert.InDelta(t, v/(1300.0*1300.0)*18*18, c.VarianceToMXN(v), 1e-9)

	// the stddev of the converted series must match sqrt of converted variance
	sd := math.Sqrt(v)
	assert.InDelta(t, c.ToUSD(sd), math.Sqrt(c.VarianceToUSD(v)), 1e-12)
	assert.InDelta(t, c.ToMXN(sd), math.Sqrt(c.VarianceToMXN(v)), 1e-9)
}
