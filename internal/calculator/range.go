package calculator

import (
	"errors"
	"math"

	"PriceLens/internal/model"
)

// TradingDaysPerYear is the session count used for the 52-week window.
const TradingDaysPerYear = 252

// TrailingRange scans the most recent sessions closes and returns the highest
// and lowest close.
func TrailingRange(series model.PriceSeries, sessions int) (high, low float64, err error) {
	if series.Len() == 0 {
		return 0, 0, errors.New("no prices provided")
	}
	if sessions <= 0 {
		return 0, 0, errors.New("sessions must be positive")
	}
	n := series.Len()
	start := n - sessions
	if start < 0 {
		start = 0
	}
	high = math.Inf(-1)
	low = math.Inf(1)
	for i := start; i < n; i++ {
		c := series.Points[i].Close
		if c > high {
			high = c
		}
		if c < low {
			low = c
		}
	}
	return high, low, nil
}

// RangePosition returns where current sits within [low, high] (0.0~1.0).
func RangePosition(current, high, low float64) (float64, error) {
	if high == low {
		return 0.5, nil
	}
	if high < low {
		return 0, errors.New("high must be >= low")
	}
	pos := (current - low) / (high - low)
	if pos < 0 {
		pos = 0
	}
	if pos > 1 {
		pos = 1
	}
	return pos, nil
}
