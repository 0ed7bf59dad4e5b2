package report

import (
	"math"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money formats v in the currency's display form followed by its code,
// e.g. "₩100,000 KRW" or "$76.92 USD".
func Money(v float64, code string) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "n/a"
	}
	cur := currency(code)
	return cur.Formatter().Format(minorUnits(v, cur)) + " " + code
}

// SignedMoney is Money with an explicit "+" on positive amounts.
func SignedMoney(v float64, code string) string {
	s := Money(v, code)
	if !math.IsNaN(v) && minorUnits(v, currency(code)) > 0 {
		return "+" + s
	}
	return s
}

// Number formats v with thousands separators and digits decimals.
func Number(v float64, digits int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "n/a"
	}
	minor := decimal.NewFromFloat(v).Shift(int32(digits)).Round(0).IntPart()
	return money.NewFormatter(digits, ".", ",", "", "1").Format(minor)
}

// Percent formats a fraction as a signed percentage with decimal places.
func Percent(fraction float64, digits int) string {
	if math.IsNaN(fraction) || math.IsInf(fraction, 0) {
		return "n/a"
	}
	s := Number(fraction*100, digits) + "%"
	if fraction > 0 {
		return "+" + s
	}
	return s
}

// currency never returns nil, unknown codes get a default currency.
func currency(code string) money.Currency {
	return *money.New(0, code).Currency()
}

func minorUnits(v float64, cur money.Currency) int64 {
	return decimal.NewFromFloat(v).Shift(int32(cur.Fraction)).Round(0).IntPart()
}
