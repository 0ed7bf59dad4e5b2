package cache

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"PriceLens/internal/model"
)

// SQLiteStore keeps price history for any number of symbols in a SQLite
// database, one row per (symbol, date).
type SQLiteStore struct {
	db     *sql.DB
	mu     sync.Mutex
	logger *zap.Logger
}

// NewSQLiteStore opens (or creates) the SQLite database and runs migrations.
func NewSQLiteStore(dbPath string, logger *zap.Logger) (*SQLiteStore, error) {
	if dir := filepath.Dir(dbPath); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	s := &SQLiteStore{db: db, logger: logger}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	logger.Info("sqlite cache opened", zap.String("path", dbPath))
	return s, nil
}

func (s *SQLiteStore) Name() string { return "sqlite" }

func (s *SQLiteStore) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS price_cache (
			symbol     TEXT    NOT NULL,
			date       TEXT    NOT NULL,
			open       REAL,
			high       REAL,
			low        REAL,
			close      REAL,
			volume     REAL,
			fetched_at INTEGER NOT NULL,
			PRIMARY KEY (symbol, date)
		)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("exec %q: %w", stmt[:40], err)
		}
	}
	return nil
}

// Save replaces every cached row of symbol with bars.
func (s *SQLiteStore) Save(ctx context.Context, symbol string, bars []model.OHLCV) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM price_cache WHERE symbol = ?`, symbol); err != nil {
		return fmt.Errorf("clear %s: %w", symbol, err)
	}
	// A repeated date keeps its first row unless that row has no close.
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO price_cache
		(symbol, date, open, high, low, close, volume, fetched_at)
		VALUES (?,?,?,?,?,?,?,?)
		ON CONFLICT(symbol, date) DO UPDATE SET
			open = excluded.open, high = excluded.high, low = excluded.low,
			close = excluded.close, volume = excluded.volume, fetched_at = excluded.fetched_at
		WHERE price_cache.close IS NULL AND excluded.close IS NOT NULL`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().Unix()
	for _, b := range bars {
		if _, err := stmt.ExecContext(ctx, symbol, b.Time.Format(dateLayout),
			nullable(b.Open), nullable(b.High), nullable(b.Low), nullable(b.Close), nullable(b.Volume), now,
		); err != nil {
			return fmt.Errorf("insert %s %s: %w", symbol, b.Time.Format(dateLayout), err)
		}
	}
	return tx.Commit()
}

// Load returns the cached rows of symbol in date order.
func (s *SQLiteStore) Load(ctx context.Context, symbol string) ([]model.OHLCV, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.QueryContext(ctx, `SELECT date, open, high, low, close, volume
		FROM price_cache WHERE symbol = ? ORDER BY date`, symbol)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", symbol, err)
	}
	defer rows.Close()

	var bars []model.OHLCV
	for rows.Next() {
		var date string
		var o, h, l, c, v sql.NullFloat64
		if err := rows.Scan(&date, &o, &h, &l, &c, &v); err != nil {
			return nil, fmt.Errorf("scan %s: %w", symbol, err)
		}
		t, err := time.Parse(dateLayout, date)
		if err != nil {
			return nil, fmt.Errorf("parse date %q: %w", date, err)
		}
		bars = append(bars, model.OHLCV{Time: t, Open: orNaN(o), High: orNaN(h), Low: orNaN(l), Close: orNaN(c), Volume: orNaN(v)})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(bars) == 0 {
		return nil, fmt.Errorf("%s: %w", symbol, ErrNotFound)
	}
	return bars, nil
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	s.logger.Info("closing sqlite cache")
	return s.db.Close()
}

func nullable(v float64) sql.NullFloat64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: v, Valid: true}
}

func orNaN(v sql.NullFloat64) float64 {
	if !v.Valid {
		return math.NaN()
	}
	return v.Float64
}
