// Package report renders analysis results for the terminal.
package report

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"PriceLens/internal/analysis"
	"PriceLens/internal/collector"
	"PriceLens/internal/fx"
	"PriceLens/internal/model"
)

// PreviewRows is how many leading and trailing rows the tables show.
const PreviewRows = 5

// ChartWidth is the default sparkline width.
const ChartWidth = 60

const dateLayout = "2006-01-02"

// Render writes the analysis report to w.
func Render(w io.Writer, rep *analysis.Report) error {
	conv := rep.Converter()
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("PriceLens | %s | %s to %s",
		rep.Symbol, rep.Start.Format(dateLayout), rep.End.Format(dateLayout))))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(fmt.Sprintf("%d sessions, loaded from %s", rep.Series.Len(), rep.Source)))
	b.WriteString("\n")

	section(&b, "Exchange rates")
	b.WriteString(FormatRates(rep.Rates))

	section(&b, "Closing prices")
	b.WriteString(FormatPrices(rep.Series, conv))

	section(&b, "Daily log returns")
	b.WriteString(FormatReturns(rep.Returns))

	section(&b, "Return statistics")
	b.WriteString(FormatReturnStats(rep.ReturnStats))
	b.WriteString("\n")
	b.WriteString(FormatExtremes(rep.Extremes, rep.Returns.Len()))

	section(&b, "Price statistics")
	b.WriteString(FormatPriceStats(rep.PriceStats))

	section(&b, "Trend")
	b.WriteString(FormatTrend(rep.Trend))

	section(&b, "Charts")
	b.WriteString(FormatCharts(rep, ChartWidth))

	_, err := io.WriteString(w, b.String())
	return err
}

// RenderSummary writes the closing exchange-rate summary to w.
func RenderSummary(w io.Writer, conv fx.Converter) error {
	var b strings.Builder
	section(&b, "Rate summary")
	b.WriteString(FormatRateSummary(conv))
	_, err := io.WriteString(w, b.String())
	return err
}

func section(b *strings.Builder, title string) {
	b.WriteString("\n")
	b.WriteString(sectionStyle.Render(title))
	b.WriteString("\n")
}

// FormatRates describes the rates in use and whether they are fallbacks.
func FormatRates(res collector.RateResult) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("1 USD = %s\n", Money(res.Rate.KRW, model.KRW)))
	b.WriteString(fmt.Sprintf("1 USD = %s\n", Money(res.Rate.MXN, model.MXN)))
	b.WriteString(fmt.Sprintf("100 KRW = %s\n", Money(fx.NewConverter(res.Rate).MXNPer100KRW(), model.MXN)))
	if res.Fallback {
		note := "Using fallback rates"
		if res.Err != nil {
			note += ": " + res.Err.Error()
		}
		b.WriteString(warnStyle.Render(note))
		b.WriteString("\n")
	}
	return b.String()
}

// FormatPrices lists the first and last closes in the three currencies.
func FormatPrices(series model.PriceSeries, conv fx.Converter) string {
	t := NewTable("Date", model.KRW, model.USD, model.MXN)
	add := func(points []model.PricePoint) {
		for _, p := range points {
			a := conv.Amounts(p.Close)
			t.AddRow(p.Date.Format(dateLayout), Money(a.KRW, model.KRW), Money(a.USD, model.USD), Money(a.MXN, model.MXN))
		}
	}
	if series.Len() <= 2*PreviewRows {
		add(series.Points)
	} else {
		add(series.Head(PreviewRows))
		t.AddRow("…", "", "", "")
		add(series.Tail(PreviewRows))
	}
	return t.View() + "\n"
}

// FormatReturns lists the first and last log returns.
func FormatReturns(returns model.ReturnSeries) string {
	t := NewTable("Date", "Log return", "%")
	add := func(points []model.ReturnPoint) {
		for _, r := range points {
			t.AddRow(r.Date.Format(dateLayout), Number(r.Value, 6), Percent(r.Value, 2))
		}
	}
	if returns.Len() <= 2*PreviewRows {
		add(returns.Points)
	} else {
		add(returns.Head(PreviewRows))
		t.AddRow("…", "", "")
		add(returns.Tail(PreviewRows))
	}
	return t.View() + "\n"
}

// FormatReturnStats renders the descriptive statistics of the log returns.
func FormatReturnStats(s model.DescriptiveStats) string {
	t := NewTable("Statistic", "Value", "%")
	t.AddRow("Count", fmt.Sprintf("%d", s.Count), "")
	t.AddRow("Mean", Number(s.Mean, 6), Percent(s.Mean, 4))
	t.AddRow("Std dev", Number(s.StdDev, 6), Percent(s.StdDev, 4))
	t.AddRow("Variance", Number(s.Variance, 8), "")
	t.AddRow("Min", Number(s.Min, 6), Percent(s.Min, 2))
	t.AddRow("Max", Number(s.Max, 6), Percent(s.Max, 2))
	return t.View() + "\n"
}

// FormatExtremes summarizes the returns beyond two standard deviations.
func FormatExtremes(extremes model.ReturnSeries, total int) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Extreme returns (beyond 2σ): %d of %d\n", extremes.Len(), total))
	for _, r := range extremes.Points {
		style := upStyle
		if r.Value < 0 {
			style = downStyle
		}
		b.WriteString(fmt.Sprintf("  %s  %s\n", r.Date.Format(dateLayout), style.Render(Percent(r.Value, 2))))
	}
	return b.String()
}

// FormatPriceStats renders the price statistics in the three currencies.
func FormatPriceStats(s model.PriceStats) string {
	t := NewTable("Statistic", model.KRW, model.USD, model.MXN)
	t.AddRow("Count", fmt.Sprintf("%d", s.Count), "", "")
	moneyRow(t, "Min", s.Min)
	moneyRow(t, "Max", s.Max)
	moneyRow(t, "Mean", s.Mean)
	moneyRow(t, "Std dev", s.StdDev)
	t.AddRow("Variance", Number(s.Variance.KRW, 2), Number(s.Variance.USD, 4), Number(s.Variance.MXN, 2))
	return t.View() + "\n"
}

func moneyRow(t *Table, label string, a model.Amounts) {
	t.AddRow(label, Money(a.KRW, model.KRW), Money(a.USD, model.USD), Money(a.MXN, model.MXN))
}

// FormatTrend renders the trend verdict, moving averages and 52-week range.
func FormatTrend(tr analysis.Trend) string {
	var b strings.Builder
	if tr.Up {
		b.WriteString("Direction: " + upStyle.Render("up") + " (last close above first)\n")
	} else {
		b.WriteString("Direction: " + downStyle.Render("down") + " (last close not above first)\n")
	}
	t := NewTable("Measure", model.KRW, model.USD, model.MXN)
	moneyRow(t, fmt.Sprintf("SMA %d", analysis.ShortWindow), tr.SMAShort)
	moneyRow(t, fmt.Sprintf("SMA %d", analysis.LongWindow), tr.SMALong)
	moneyRow(t, "52w high", tr.High52w)
	moneyRow(t, "52w low", tr.Low52w)
	b.WriteString(t.View())
	b.WriteString("\n")
	if !math.IsNaN(tr.Position) {
		b.WriteString(fmt.Sprintf("Position in 52w range: %s%%\n", Number(tr.Position*100, 1)))
	}
	return b.String()
}

// FormatCharts draws the closes in each currency and the returns with the
// extreme observations highlighted.
func FormatCharts(rep *analysis.Report, width int) string {
	var b strings.Builder
	krw := make([]float64, len(rep.Prices))
	usd := make([]float64, len(rep.Prices))
	mxn := make([]float64, len(rep.Prices))
	for i, a := range rep.Prices {
		krw[i], usd[i], mxn[i] = a.KRW, a.USD, a.MXN
	}
	chartLine(&b, model.KRW, NewSparkline(width).SetData(krw).View(), krw, model.KRW)
	chartLine(&b, model.USD, NewSparkline(width).SetData(usd).SetColor(Green).View(), usd, model.USD)
	chartLine(&b, model.MXN, NewSparkline(width).SetData(mxn).SetColor(Yellow).View(), mxn, model.MXN)

	chartLine(&b, "Returns", NewSparkline(width).
		SetData(rep.Returns.Values()).
		SetColor(Purple).
		Mark(extremeMarks(rep.Returns, rep.Extremes)).
		View(), nil, "")
	if rep.Trend.RollingShort != nil {
		chartLine(&b, fmt.Sprintf("SMA %d", analysis.ShortWindow),
			NewSparkline(width).SetData(rep.Trend.RollingShort).SetColor(Muted).View(), nil, "")
	}
	if rep.Trend.RollingLong != nil {
		chartLine(&b, fmt.Sprintf("SMA %d", analysis.LongWindow),
			NewSparkline(width).SetData(rep.Trend.RollingLong).SetColor(Muted).View(), nil, "")
	}
	return b.String()
}

func chartLine(b *strings.Builder, label, spark string, data []float64, code string) {
	b.WriteString(fmt.Sprintf("%-8s %s", label, spark))
	if len(data) > 0 {
		lo, hi := minMax(data)
		b.WriteString(mutedStyle.Render(fmt.Sprintf("  %s .. %s", Money(lo, code), Money(hi, code))))
	}
	b.WriteString("\n")
}

func minMax(data []float64) (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range data {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}

func extremeMarks(returns, extremes model.ReturnSeries) []bool {
	hot := make(map[time.Time]bool, extremes.Len())
	for _, r := range extremes.Points {
		hot[r.Date] = true
	}
	marks := make([]bool, returns.Len())
	for i, r := range returns.Points {
		marks[i] = hot[r.Date]
	}
	return marks
}

// FormatRateSummary restates the rates and what 1,000 KRW buys.
func FormatRateSummary(conv fx.Converter) string {
	rate := conv.Rate()
	var b strings.Builder
	b.WriteString(fmt.Sprintf("1 USD = %s\n", Money(rate.KRW, model.KRW)))
	b.WriteString(fmt.Sprintf("1 USD = %s\n", Money(rate.MXN, model.MXN)))
	b.WriteString(fmt.Sprintf("%s = %s = %s\n",
		Money(1000, model.KRW), Money(conv.ToUSD(1000), model.USD), Money(conv.ToMXN(1000), model.MXN)))
	return b.String()
}

// FormatComparison renders a two-point comparison and its verdict.
func FormatComparison(c model.ComparisonResult) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Comparing #%d (%s) with #%d (%s)\n",
		c.Index1, c.Date1.Format(dateLayout), c.Index2, c.Date2.Format(dateLayout)))
	t := NewTable("", model.KRW, model.USD, model.MXN)
	moneyRow(t, fmt.Sprintf("#%d", c.Index1), c.Price1)
	moneyRow(t, fmt.Sprintf("#%d", c.Index2), c.Price2)
	t.AddRow("Diff", SignedMoney(c.Diff.KRW, model.KRW), SignedMoney(c.Diff.USD, model.USD), SignedMoney(c.Diff.MXN, model.MXN))
	b.WriteString(t.View())
	b.WriteString("\n")

	if c.PercentDefined {
		b.WriteString(fmt.Sprintf("Percent change: %s\n", Percent(c.PercentChange/100, 2)))
	} else {
		b.WriteString(warnStyle.Render("Percent change: undefined (first price is zero)"))
		b.WriteString("\n")
	}

	switch c.Direction() {
	case model.DirectionUp:
		b.WriteString("Verdict: " + upStyle.Render("price went UP") + "\n")
	case model.DirectionDown:
		b.WriteString("Verdict: " + downStyle.Render("price went DOWN") + "\n")
	default:
		b.WriteString("Verdict: price did not change\n")
	}
	return b.String()
}
