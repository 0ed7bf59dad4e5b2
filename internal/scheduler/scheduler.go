package scheduler

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"PriceLens/internal/collector"
)

// Refresher reloads the price history of a symbol into the cache.
type Refresher interface {
	Refresh(ctx context.Context, symbol string, lookbackDays int) (collector.HistoryResult, error)
}

// Scheduler runs periodic cache refreshes.
type Scheduler struct {
	Cron         *cron.Cron
	Refresher    Refresher
	Symbol       string
	LookbackDays int
	Logger       *zap.Logger
	Ctx          context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, r Refresher, symbol string, lookbackDays int, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		Cron: cron.New(cron.WithSeconds(), cron.WithChain(
			cron.SkipIfStillRunning(cron.PrintfLogger(zap.NewStdLog(logger))),
		)),
		Refresher:    r,
		Symbol:       symbol,
		LookbackDays: lookbackDays,
		Logger:       logger,
		Ctx:          ctx,
	}
}

// Register adds the refresh task on a six-field cron expression.
func (s *Scheduler) Register(refreshCron string) error {
	if _, err := s.Cron.AddFunc(refreshCron, s.refreshTask); err != nil {
		return fmt.Errorf("register refresh task: %w", err)
	}
	s.Logger.Info("refresh task registered", zap.String("cron", refreshCron), zap.String("symbol", s.Symbol))
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	s.Logger.Info("scheduler started")
}

// Stop stops the cron scheduler and waits for a running refresh to finish.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	s.Logger.Info("scheduler stopped")
}

// Run refreshes once when runNow is set, then runs the schedule until ctx is
// done. It returns after the last refresh has finished.
func (s *Scheduler) Run(ctx context.Context, runNow bool) {
	if runNow {
		s.RunNow()
	}
	s.Start()
	<-ctx.Done()
	s.Stop()
}

// RunNow executes the refresh task immediately.
func (s *Scheduler) RunNow() {
	s.refreshTask()
}

func (s *Scheduler) refreshTask() {
	s.Logger.Info("running refresh task", zap.String("symbol", s.Symbol))
	res, err := s.Refresher.Refresh(s.Ctx, s.Symbol, s.LookbackDays)
	if err != nil {
		s.Logger.Error("refresh failed", zap.String("symbol", s.Symbol), zap.Error(err))
		return
	}
	if res.Source != collector.SourceNetwork {
		s.Logger.Warn("refresh served from cache, source unavailable",
			zap.String("symbol", s.Symbol),
			zap.Error(res.FetchErr))
		return
	}
	s.Logger.Info("refresh complete", zap.String("symbol", s.Symbol), zap.Int("rows", res.Data.Len()))
}
