package model

import "time"

// DescriptiveStats summarizes a numeric series. Variance is the sample
// variance (n-1 denominator).
type DescriptiveStats struct {
	Count    int
	Min      float64
	Max      float64
	Mean     float64
	Variance float64
	StdDev   float64
}

// PriceStats are the closing-price statistics in every currency.
type PriceStats struct {
	Count    int
	Min      Amounts
	Max      Amounts
	Mean     Amounts
	StdDev   Amounts
	Variance Amounts
}

// Direction is the sign of a price move.
type Direction string

const (
	DirectionUp   Direction = "UP"
	DirectionDown Direction = "DOWN"
	DirectionFlat Direction = "FLAT"
)

// ComparisonResult compares two points of a PriceSeries.
type ComparisonResult struct {
	Index1 int
	Index2 int
	Date1  time.Time
	Date2  time.Time
	Price1 Amounts
	Price2 Amounts
	Diff   Amounts
	// PercentChange is 0 when PercentDefined is false (first price is zero).
	PercentChange  float64
	PercentDefined bool
}

// Direction reports whether the price went up, down or stayed flat, from
// the sign of the KRW difference.
func (c ComparisonResult) Direction() Direction {
	switch {
	case c.Diff.KRW > 0:
		return DirectionUp
	case c.Diff.KRW < 0:
		return DirectionDown
	default:
		return DirectionFlat
	}
}
