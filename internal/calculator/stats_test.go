package calculator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"PriceLens/internal/fx"
	"PriceLens/internal/model"
)

func TestDescribe_Empty(t *testing.T) {
	_, err := Describe(nil)
	assert.ErrorIs(t, err, model.ErrInsufficientData)
}

func TestDescribe_Single(t *testing.T) {
	st, err := Describe([]float64{42})
	require.NoError(t, err)
	assert.Equal(t, model.DescriptiveStats{Count: 1, Min: 42, Max: 42, Mean: 42}, st)
	assert.False(t, math.IsNaN(st.Variance))
}

func TestDescribe_SampleVariance(t *testing.T) {
	st, err := Describe([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	require.NoError(t, err)
	assert.Equal(t, 8, st.Count)
	assert.Equal(t, 2.0, st.Min)
	assert.Equal(t, 9.0, st.Max)
	assert.Equal(t, 5.0, st.Mean)
	// population variance would be 4
	assert.InDelta(t, 32.0/7.0, st.Variance, 1e-12)
	assert.InDelta(t, math.Sqrt(32.0/7.0), st.StdDev, 1e-12)
}

func TestExtremes(t *testing.T) {
	r := model.ReturnSeries{Points: []model.ReturnPoint{
		{Date: day(1), Value: 0.01},
		{Date: day(2), Value: 0.25},
		{Date: day(3), Value: -0.02},
		{Date: day(4), Value: -0.30},
		{Date: day(5), Value: 0.20},
	}}

	got := Extremes(r, 0, 0.1)
	require.Equal(t, 2, got.Len())
	assert.Equal(t, day(2), got.Points[0].Date)
	assert.Equal(t, day(4), got.Points[1].Date)

	// exactly 2 sigma is not extreme
	assert.Equal(t, 0, Extremes(r, 0, 0.15).Len())
}

func TestDescribePrices_ConvertsEachStatistic(t *testing.T) {
	conv := fx.NewConverter(model.ExchangeRate{KRW: 1300, MXN: 18.0})
	s := series(60000, 65000, 70000, 62000)

	ps, err := DescribePrices(s, conv)
	require.NoError(t, err)
	krw, err := Describe(s.Closes())
	require.NoError(t, err)

	assert.Equal(t, 4, ps.Count)
	assert.Equal(t, 60000.0, ps.Min.KRW)
	assert.Equal(t, conv.ToUSD(60000), ps.Min.USD)
	assert.Equal(t, conv.ToMXN(70000), ps.Max.MXN)
	assert.Equal(t, conv.ToUSD(krw.Mean), ps.Mean.USD)
	assert.Equal(t, conv.ToMXN(krw.StdDev), ps.StdDev.MXN)

	assert.Equal(t, krw.Variance, ps.Variance.KRW)
	assert.Equal(t, krw.Variance/(1300.0*1300.0), ps.Variance.USD)
	assert.NotEqual(t, conv.ToUSD(krw.Variance), ps.Variance.USD)
}

func TestDescribePrices_Empty(t *testing.T) {
	conv := fx.NewConverter(model.DefaultFallbackRate)
	_, err := DescribePrices(model.PriceSeries{}, conv)
	assert.ErrorIs(t, err, model.ErrInsufficientData)
}
