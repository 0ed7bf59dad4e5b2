// Package compare computes the change between two points of a price series.
package compare

import (
	"fmt"
	"strconv"
	"strings"

	"PriceLens/internal/fx"
	"PriceLens/internal/model"
)

// ParseIndex parses an operator-supplied index.
func ParseIndex(s string) (int, error) {
	idx, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%q is not an integer: %w", strings.TrimSpace(s), model.ErrInvalidInput)
	}
	return idx, nil
}

// Compare computes the move from series[idx1] to series[idx2]. The difference
// is taken in KRW and converted. When the first price is zero the percent
// change is reported as 0 with PercentDefined false.
func Compare(series model.PriceSeries, idx1, idx2 int, conv fx.Converter) (model.ComparisonResult, error) {
	n := series.Len()
	for _, idx := range []int{idx1, idx2} {
		if idx < 0 || idx >= n {
			return model.ComparisonResult{}, fmt.Errorf("index %d not in [0, %d]: %w", idx, n-1, model.ErrIndexOutOfRange)
		}
	}

	p1 := series.Points[idx1]
	p2 := series.Points[idx2]
	diff := p2.Close - p1.Close

	res := model.ComparisonResult{
		Index1: idx1,
		Index2: idx2,
		Date1:  p1.Date,
		Date2:  p2.Date,
		Price1: conv.Amounts(p1.Close),
		Price2: conv.Amounts(p2.Close),
		Diff:   conv.Amounts(diff),
	}
	if p1.Close != 0 {
		res.PercentChange = diff / p1.Close * 100
		res.PercentDefined = true
	}
	return res, nil
}
