package collector

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"PriceLens/internal/model"
)

func TestRateProvider_Live(t *testing.T) {
	m := &MockFetcher{Closes: map[string]float64{"USDKRW=X": 1385.2, "USDMXN=X": 17.1}}
	p := NewRateProvider(m, RateProviderConfig{}, zap.NewNop())

	res := p.Fetch(context.Background())
	assert.False(t, res.Fallback)
	assert.NoError(t, res.Err)
	assert.Equal(t, model.ExchangeRate{KRW: 1385.2, MXN: 17.1}, res.Rate)
}

func TestRateProvider_FallbackOnError(t *testing.T) {
	m := &MockFetcher{CloseErr: errors.New("dial tcp: no route to host")}
	fallback := model.ExchangeRate{KRW: 1000, MXN: 20}
	p := NewRateProvider(m, RateProviderConfig{Fallback: fallback}, zap.NewNop())

	res := p.Fetch(context.Background())
	assert.True(t, res.Fallback)
	assert.Equal(t, fallback, res.Rate)
	assert.ErrorIs(t, res.Err, model.ErrFetchFailure)
	assert.Equal(t, 1, m.CloseCalls, "no retries")
}

func TestRateProvider_FallbackWhenOnePairMissing(t *testing.T) {
	m := &MockFetcher{Closes: map[string]float64{"USDKRW=X": 1385.2}}
	p := NewRateProvider(m, RateProviderConfig{Fallback: model.DefaultFallbackRate}, zap.NewNop())

	res := p.Fetch(context.Background())
	assert.True(t, res.Fallback)
	assert.Equal(t, model.ExchangeRate{KRW: 1300, MXN: 18.0}, res.Rate)
}

func TestRateProvider_FallbackOnMalformedRate(t *testing.T) {
	m := &MockFetcher{Closes: map[string]float64{"KRW": -1, "MXN": 17}}
	p := NewRateProvider(m, RateProviderConfig{KRWSymbol: "KRW", MXNSymbol: "MXN"}, zap.NewNop())

	res := p.Fetch(context.Background())
	assert.True(t, res.Fallback)
	assert.Equal(t, model.DefaultFallbackRate, res.Rate)
	assert.ErrorIs(t, res.Err, model.ErrFetchFailure)
}

func TestNewRateProvider_InvalidFallbackReplaced(t *testing.T) {
	p := NewRateProvider(&MockFetcher{}, RateProviderConfig{Fallback: model.ExchangeRate{KRW: 0, MXN: 18}}, zap.NewNop())
	res := p.Fetch(context.Background())
	assert.True(t, res.Fallback)
	assert.Equal(t, model.DefaultFallbackRate, res.Rate)
}
