package calculator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateSMA(t *testing.T) {
	v, err := CalculateSMA([]float64{1, 2, 3, 4, 5}, 3)
	require.NoError(t, err)
	assert.Equal(t, 4.0, v)

	_, err = CalculateSMA([]float64{1, 2}, 3)
	assert.Error(t, err)
	_, err = CalculateSMA([]float64{1, 2}, 0)
	assert.Error(t, err)
}

func TestRollingMean(t *testing.T) {
	got, err := RollingMean([]float64{1, 2, 3, 4, 5}, 3)
	require.NoError(t, err)
	require.Len(t, got, 5)
	assert.True(t, math.IsNaN(got[0]))
	assert.True(t, math.IsNaN(got[1]))
	assert.InDelta(t, 2.0, got[2], 1e-12)
	assert.InDelta(t, 3.0, got[3], 1e-12)
	assert.InDelta(t, 4.0, got[4], 1e-12)

	last, err := CalculateSMA([]float64{1, 2, 3, 4, 5}, 3)
	require.NoError(t, err)
	assert.InDelta(t, last, got[4], 1e-12)

	_, err = RollingMean(nil, 0)
	assert.Error(t, err)
}

func TestTrend(t *testing.T) {
	up, err := Trend([]float64{100, 90, 120})
	require.NoError(t, err)
	assert.True(t, up)

	up, err = Trend([]float64{100, 130, 100})
	require.NoError(t, err)
	assert.False(t, up)

	_, err = Trend(nil)
	assert.Error(t, err)
}
