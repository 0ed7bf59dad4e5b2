package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"sort"
	"time"

	"PriceLens/internal/model"
)

const yahooBaseURL = "https://query1.finance.yahoo.com"

// YahooFetcher implements Fetcher using Yahoo Finance public API.
type YahooFetcher struct {
	BaseURL   string
	Client    *http.Client
	SymbolMap map[string]string // maps internal symbol to Yahoo ticker
}

// NewYahooFetcher creates a new Yahoo Finance fetcher.
func NewYahooFetcher(proxyURL string, timeout time.Duration) *YahooFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &YahooFetcher{
		BaseURL: yahooBaseURL,
		Client: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
		SymbolMap: map[string]string{
			"USD/KRW": "USDKRW=X",
			"USD/MXN": "USDMXN=X",
			"SAMSUNG": "005930.KS",
		},
	}
}

func (f *YahooFetcher) Name() string { return "yahoo" }

func (f *YahooFetcher) yahooSymbol(symbol string) string {
	if mapped, ok := f.SymbolMap[symbol]; ok {
		return mapped
	}
	return symbol
}

// yahooChart is the response structure from Yahoo Finance chart API.
type yahooChart struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Symbol    string `json:"symbol"`
				Currency  string `json:"currency"`
				GMTOffset int    `json:"gmtoffset"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []interface{} `json:"open"`
					High   []interface{} `json:"high"`
					Low    []interface{} `json:"low"`
					Close  []interface{} `json:"close"`
					Volume []interface{} `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// toFloat maps JSON nulls and missing entries to NaN.
func toFloat(vals []interface{}, i int) float64 {
	if i >= len(vals) || vals[i] == nil {
		return math.NaN()
	}
	switch n := vals[i].(type) {
	case float64:
		return n
	case int:
		return float64(n)
	default:
		return math.NaN()
	}
}

func (f *YahooFetcher) fetchChart(ctx context.Context, symbol string, query url.Values) (model.RawDataset, error) {
	u := fmt.Sprintf("%s/v8/finance/chart/%s?%s",
		f.BaseURL, url.PathEscape(f.yahooSymbol(symbol)), query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return model.RawDataset{}, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := f.Client.Do(req)
	if err != nil {
		return model.RawDataset{}, fmt.Errorf("yahoo fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return model.RawDataset{}, fmt.Errorf("yahoo read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return model.RawDataset{}, fmt.Errorf("yahoo: status %d, body: %s", resp.StatusCode, string(body))
	}

	var chart yahooChart
	if err := json.Unmarshal(body, &chart); err != nil {
		return model.RawDataset{}, fmt.Errorf("yahoo decode: %w", err)
	}
	if chart.Chart.Error != nil {
		return model.RawDataset{}, fmt.Errorf("yahoo api error: %s", chart.Chart.Error.Description)
	}
	if len(chart.Chart.Result) == 0 || len(chart.Chart.Result[0].Timestamp) == 0 ||
		len(chart.Chart.Result[0].Indicators.Quote) == 0 {
		return model.RawDataset{}, fmt.Errorf("yahoo: no data returned for %s", symbol)
	}

	result := chart.Chart.Result[0]
	quote := result.Indicators.Quote[0]
	// bar dates are the exchange's local calendar dates
	loc := time.FixedZone(result.Meta.Symbol, result.Meta.GMTOffset)
	ds := model.RawDataset{Symbol: symbol, Bars: make([]model.RawBar, 0, len(result.Timestamp))}

	for i, ts := range result.Timestamp {
		ds.Bars = append(ds.Bars, model.RawBar{OHLCV: model.OHLCV{
			Time:   time.Unix(ts, 0).In(loc),
			Open:   toFloat(quote.Open, i),
			High:   toFloat(quote.High, i),
			Low:    toFloat(quote.Low, i),
			Close:  toFloat(quote.Close, i),
			Volume: toFloat(quote.Volume, i),
		}})
	}

	sort.SliceStable(ds.Bars, func(i, j int) bool { return ds.Bars[i].Time.Before(ds.Bars[j].Time) })
	return ds, nil
}

// FetchHistory returns the daily bars between start and end. Null closes
// (holidays etc.) are kept as NaN for the normalizer to drop.
func (f *YahooFetcher) FetchHistory(ctx context.Context, symbol string, start, end time.Time) (model.RawDataset, error) {
	q := url.Values{}
	q.Set("interval", "1d")
	q.Set("period1", fmt.Sprint(start.Unix()))
	q.Set("period2", fmt.Sprint(end.Unix()))
	q.Set("events", "history")
	return f.fetchChart(ctx, symbol, q)
}

// FetchLatestClose returns the last non-null close of the current session.
func (f *YahooFetcher) FetchLatestClose(ctx context.Context, symbol string) (float64, error) {
	q := url.Values{}
	q.Set("interval", "1d")
	q.Set("range", "1d")
	ds, err := f.fetchChart(ctx, symbol, q)
	if err != nil {
		return 0, err
	}
	for i := len(ds.Bars) - 1; i >= 0; i-- {
		if c := ds.Bars[i].Close; !math.IsNaN(c) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("yahoo: no price data for %s", symbol)
}
