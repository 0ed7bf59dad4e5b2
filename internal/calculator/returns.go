package calculator

import (
	"fmt"
	"math"

	"PriceLens/internal/model"
)

// LogReturns computes ln(p[i]/p[i-1]) for consecutive closes. Each return is
// dated at the later point.
func LogReturns(series model.PriceSeries) (model.ReturnSeries, error) {
	n := series.Len()
	if n < 2 {
		return model.ReturnSeries{}, fmt.Errorf("log returns need 2 prices, got %d: %w", n, model.ErrInsufficientData)
	}
	for i, p := range series.Points {
		if !(p.Close > 0) || math.IsInf(p.Close, 0) {
			return model.ReturnSeries{}, fmt.Errorf("price %v at %s (index %d): %w",
				p.Close, p.Date.Format("2006-01-02"), i, model.ErrInvalidPrice)
		}
	}

	points := make([]model.ReturnPoint, n-1)
	for i := 1; i < n; i++ {
		points[i-1] = model.ReturnPoint{
			Date:  series.Points[i].Date,
			Value: math.Log(series.Points[i].Close / series.Points[i-1].Close),
		}
	}
	return model.ReturnSeries{Points: points}, nil
}
