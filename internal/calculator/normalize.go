package calculator

import (
	"fmt"
	"math"
	"sort"
	"time"

	"PriceLens/internal/model"
)

// Normalize turns a raw dataset into a PriceSeries. The ticker level is
// collapsed first, then missing closes are dropped, then rows are sorted by
// date and only the first row of each date is kept.
func Normalize(raw model.RawDataset) (model.PriceSeries, error) {
	points := make([]model.PricePoint, 0, len(raw.Bars))
	for _, b := range raw.Bars {
		p := model.PricePoint{Date: dateOnly(b.Time), Close: b.Close}
		if math.IsNaN(p.Close) || math.IsInf(p.Close, 0) {
			continue
		}
		points = append(points, p)
	}
	if len(points) == 0 {
		return model.PriceSeries{}, fmt.Errorf("normalize %s: %w", raw.Symbol, model.ErrEmptyInput)
	}

	sort.SliceStable(points, func(i, j int) bool { return points[i].Date.Before(points[j].Date) })

	out := points[:1]
	for _, p := range points[1:] {
		if p.Date.Equal(out[len(out)-1].Date) {
			continue
		}
		out = append(out, p)
	}
	return model.PriceSeries{Symbol: raw.Symbol, Points: out}, nil
}

// dateOnly keeps the calendar date of t in its own location.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
