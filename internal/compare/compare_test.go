package compare

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"PriceLens/internal/fx"
	"PriceLens/internal/model"
)

var conv = fx.NewConverter(model.ExchangeRate{KRW: 1300, MXN: 18.0})

func series(closes ...float64) model.PriceSeries {
	start := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
	s := model.PriceSeries{Symbol: "005930.KS"}
	for i, c := range closes {
		s.Points = append(s.Points, model.PricePoint{Date: start.AddDate(0, 0, i), Close: c})
	}
	return s
}

func TestCompare_Scenario(t *testing.T) {
	s := series(100, 200, 150)

	res, err := Compare(s, 0, 2, conv)
	require.NoError(t, err)
	assert.Equal(t, 50.0, res.Diff.KRW)
	assert.Equal(t, conv.ToUSD(50), res.Diff.USD)
	assert.Equal(t, conv.ToMXN(50), res.Diff.MXN)
	assert.Equal(t, 50.0, res.PercentChange)
	assert.True(t, res.PercentDefined)
	assert.Equal(t, model.DirectionUp, res.Direction())
	assert.Equal(t, s.Points[0].Date, res.Date1)
	assert.Equal(t, s.Points[2].Date, res.Date2)
	assert.Equal(t, conv.Amounts(100), res.Price1)
	assert.Equal(t, conv.Amounts(150), res.Price2)
}

func TestCompare_Directions(t *testing.T) {
	s := series(100, 200, 150)

	res, err := Compare(s, 1, 2, conv)
	require.NoError(t, err)
	assert.Equal(t, -25.0, res.PercentChange)
	assert.Equal(t, model.DirectionDown, res.Direction())

	res, err = Compare(s, 1, 1, conv)
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.PercentChange)
	assert.Equal(t, model.DirectionFlat, res.Direction())
}

func TestCompare_ZeroFirstPrice(t *testing.T) {
	res, err := Compare(series(0, 120), 0, 1, conv)
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.PercentChange)
	assert.False(t, res.PercentDefined)
	assert.Equal(t, 120.0, res.Diff.KRW)
	assert.Equal(t, model.DirectionUp, res.Direction())
}

func TestCompare_OutOfRange(t *testing.T) {
	s := series(100, 200, 150)
	for _, idx := range [][2]int{{5, 0}, {0, 3}, {-1, 1}} {
		_, err := Compare(s, idx[0], idx[1], conv)
		assert.ErrorIs(t, err, model.ErrIndexOutOfRange, "indices %v", idx)
	}
}

func TestParseIndex(t *testing.T) {
	idx, err := ParseIndex(" 12\n")
	require.NoError(t, err)
	assert.Equal(t, 12, idx)

	for _, in := range []string{"", "abc", "1.5", "2e3"} {
		_, err := ParseIndex(in)
		assert.ErrorIs(t, err, model.ErrInvalidInput, "input %q", in)
	}
}
