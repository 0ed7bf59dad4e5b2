// Package fx converts KRW prices into USD and MXN.
package fx

import "PriceLens/internal/model"

// Converter converts amounts using a fixed pair of USD rates. Every bulk
// conversion goes through the scalar methods so both paths agree bit for bit.
type Converter struct {
	rate model.ExchangeRate
}

// NewConverter creates a converter for the given rates. Rates are assumed
// valid (see model.ExchangeRate.Validate).
func NewConverter(rate model.ExchangeRate) Converter {
	return Converter{rate: rate}
}

// Rate returns the rates the converter was built with.
func (c Converter) Rate() model.ExchangeRate { return c.rate }

// ToUSD converts KRW to USD.
func (c Converter) ToUSD(krw float64) float64 {
	return krw / c.rate.KRW
}

// ToMXN converts KRW to MXN through USD.
func (c Converter) ToMXN(krw float64) float64 {
	return c.USDToMXN(c.ToUSD(krw))
}

// USDToMXN converts USD to MXN.
func (c Converter) USDToMXN(usd float64) float64 {
	return usd * c.rate.MXN
}

// Amounts expresses a KRW value in all three currencies.
func (c Converter) Amounts(krw float64) model.Amounts {
	return model.Amounts{KRW: krw, USD: c.ToUSD(krw), MXN: c.ToMXN(krw)}
}

// Series converts every close of the series.
func (c Converter) Series(s model.PriceSeries) []model.Amounts {
	out := make([]model.Amounts, len(s.Points))
	for i, p := range s.Points {
		out[i] = c.Amounts(p.Close)
	}
	return out
}

// VarianceToUSD scales a KRW variance by the square of the KRW->USD factor.
func (c Converter) VarianceToUSD(v float64) float64 {
	return v / (c.rate.KRW * c.rate.KRW)
}

// VarianceToMXN scales a KRW variance by the square of the KRW->MXN factor.
func (c Converter) VarianceToMXN(v float64) float64 {
	return c.VarianceToUSD(v) * (c.rate.MXN * c.rate.MXN)
}

// Variance expresses a KRW variance in all three currencies.
func (c Converter) Variance(v float64) model.Amounts {
	return model.Amounts{KRW: v, USD: c.VarianceToUSD(v), MXN: c.VarianceToMXN(v)}
}

// MXNPer100KRW is the cross rate in pesos per 100 won.
func (c Converter) MXNPer100KRW() float64 {
	return c.rate.MXN / c.rate.KRW * 100
}
