package cache

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"PriceLens/internal/model"
)

const dateLayout = "2006-01-02"

var csvHeader = []string{"Date", "Open", "High", "Low", "Close", "Volume"}

// CSVStore keeps one symbol's history in a single CSV file.
type CSVStore struct {
	Path string
}

// NewCSVStore creates a store backed by path.
func NewCSVStore(path string) *CSVStore {
	return &CSVStore{Path: path}
}

func (s *CSVStore) Name() string { return "csv" }

// Save overwrites the file with bars. The symbol is not stored; the file
// holds a single symbol.
func (s *CSVStore) Save(_ context.Context, _ string, bars []model.OHLCV) error {
	if dir := filepath.Dir(s.Path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create cache dir: %w", err)
		}
	}
	tmp := s.Path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create cache file: %w", err)
	}

	w := csv.NewWriter(f)
	records := make([][]string, 0, len(bars)+1)
	records = append(records, csvHeader)
	for _, b := range bars {
		records = append(records, []string{
			b.Time.Format(dateLayout),
			formatFloat(b.Open), formatFloat(b.High), formatFloat(b.Low),
			formatFloat(b.Close), formatFloat(b.Volume),
		})
	}
	if err := w.WriteAll(records); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("write cache file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("close cache file: %w", err)
	}
	return os.Rename(tmp, s.Path)
}

// Load reads the file back. Empty cells are returned as NaN.
func (s *CSVStore) Load(_ context.Context, _ string) ([]model.OHLCV, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", s.Path, ErrNotFound)
		}
		return nil, fmt.Errorf("open cache file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(csvHeader)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read cache file %s: %w", s.Path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s is empty: %w", s.Path, ErrNotFound)
	}
	if !strings.EqualFold(records[0][0], csvHeader[0]) {
		return nil, fmt.Errorf("cache file %s: unexpected header %v", s.Path, records[0])
	}

	bars := make([]model.OHLCV, 0, len(records)-1)
	for i, rec := range records[1:] {
		t, err := time.Parse(dateLayout, strings.TrimSpace(rec[0]))
		if err != nil {
			return nil, fmt.Errorf("cache file %s line %d: %w", s.Path, i+2, err)
		}
		vals := make([]float64, 5)
		for j := range vals {
			if vals[j], err = parseFloat(rec[j+1]); err != nil {
				return nil, fmt.Errorf("cache file %s line %d column %s: %w", s.Path, i+2, csvHeader[j+1], err)
			}
		}
		bars = append(bars, model.OHLCV{Time: t, Open: vals[0], High: vals[1], Low: vals[2], Close: vals[3], Volume: vals[4]})
	}
	return bars, nil
}

func formatFloat(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func parseFloat(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return math.NaN(), nil
	}
	return strconv.ParseFloat(s, 64)
}
