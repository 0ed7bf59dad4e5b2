package calculator

import (
	"fmt"
	"math"

	"PriceLens/internal/fx"
	"PriceLens/internal/model"
)

// Describe computes count, extrema, mean and sample variance of values.
// A single value has zero variance.
func Describe(values []float64) (model.DescriptiveStats, error) {
	n := len(values)
	if n == 0 {
		return model.DescriptiveStats{}, fmt.Errorf("describe: %w", model.ErrInsufficientData)
	}

	st := model.DescriptiveStats{Count: n, Min: math.Inf(1), Max: math.Inf(-1)}
	sum := 0.0
	for _, v := range values {
		if v < st.Min {
			st.Min = v
		}
		if v > st.Max {
			st.Max = v
		}
		sum += v
	}
	st.Mean = sum / float64(n)

	if n > 1 {
		ss := 0.0
		for _, v := range values {
			d := v - st.Mean
			ss += d * d
		}
		st.Variance = ss / float64(n-1)
		st.StdDev = math.Sqrt(st.Variance)
	}
	return st, nil
}

// Extremes returns the returns farther than two standard deviations from
// mean, in their original order.
func Extremes(returns model.ReturnSeries, mean, stddev float64) model.ReturnSeries {
	var out []model.ReturnPoint
	for _, r := range returns.Points {
		if math.Abs(r.Value-mean) > 2*stddev {
			out = append(out, r)
		}
	}
	return model.ReturnSeries{Points: out}
}

// DescribePrices computes closing-price statistics in KRW and converts them.
// Variance is scaled by the square of the conversion factor.
func DescribePrices(series model.PriceSeries, conv fx.Converter) (model.PriceStats, error) {
	st, err := Describe(series.Closes())
	if err != nil {
		return model.PriceStats{}, fmt.Errorf("price stats: %w", err)
	}
	return model.PriceStats{
		Count:    st.Count,
		Min:      conv.Amounts(st.Min),
		Max:      conv.Amounts(st.Max),
		Mean:     conv.Amounts(st.Mean),
		StdDev:   conv.Amounts(st.StdDev),
		Variance: conv.Variance(st.Variance),
	}, nil
}
