package model

import (
	"fmt"
	"math"
)

// Currency codes handled by the pipeline. KRW is the native quote currency.
const (
	KRW = "KRW"
	USD = "USD"
	MXN = "MXN"
)

// ExchangeRate holds spot rates expressed as quote currency per USD.
type ExchangeRate struct {
	KRW float64
	MXN float64
}

// DefaultFallbackRate is used when no rate can be fetched and none is configured.
var DefaultFallbackRate = ExchangeRate{KRW: 1300, MXN: 18.0}

// Validate checks that both rates are strictly positive and finite.
func (r ExchangeRate) Validate() error {
	if !positiveFinite(r.KRW) {
		return fmt.Errorf("KRW rate must be positive, got %v", r.KRW)
	}
	if !positiveFinite(r.MXN) {
		return fmt.Errorf("MXN rate must be positive, got %v", r.MXN)
	}
	return nil
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

// Amounts is one value expressed in the three currencies.
type Amounts struct {
	KRW float64
	USD float64
	MXN float64
}
