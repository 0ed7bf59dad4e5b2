package calculator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"PriceLens/internal/model"
)

func series(closes ...float64) model.PriceSeries {
	s := model.PriceSeries{Symbol: "TEST"}
	for i, c := range closes {
		s.Points = append(s.Points, model.PricePoint{Date: day(1).AddDate(0, 0, i), Close: c})
	}
	return s
}

func TestLogReturns_Scenario(t *testing.T) {
	r, err := LogReturns(series(100, 110, 99))
	require.NoError(t, err)
	require.Equal(t, 2, r.Len())

	assert.InDelta(t, 0.0953102, r.Points[0].Value, 1e-7)
	assert.InDelta(t, -0.1053605, r.Points[1].Value, 1e-7)
	assert.Equal(t, day(2), r.Points[0].Date)
	assert.Equal(t, day(3), r.Points[1].Date)

	st, err := Describe(r.Values())
	require.NoError(t, err)
	assert.InDelta(t, -0.0050252, st.Mean, 1e-7)
}

func TestLogReturns_Length(t *testing.T) {
	for n := 2; n <= 40; n++ {
		closes := make([]float64, n)
		for i := range closes {
			closes[i] = 100 + float64(i%7)
		}
		r, err := LogReturns(series(closes...))
		require.NoError(t, err)
		assert.Equal(t, n-1, r.Len())
	}
}

func TestLogReturns_Errors(t *testing.T) {
	tests := []struct {
		name   string
		closes []float64
		want   error
	}{
		{"empty", nil, model.ErrInsufficientData},
		{"single", []float64{100}, model.ErrInsufficientData},
		{"zero", []float64{100, 0, 90}, model.ErrInvalidPrice},
		{"negative", []float64{-1, 100}, model.ErrInvalidPrice},
		{"nan", []float64{100, math.NaN()}, model.ErrInvalidPrice},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LogReturns(series(tt.closes...))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
