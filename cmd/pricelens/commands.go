package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"go.uber.org/zap"

	"PriceLens/internal/prompt"
	"PriceLens/internal/report"
	"PriceLens/internal/scheduler"
)

var commands = []subcommands.Command{
	&analyzeCmd{},
	&refreshCmd{},
	&ratesCmd{},
	&scheduleCmd{},
}

// withApp builds the shared components, runs fn and releases them.
func withApp(fn func(a *app) subcommands.ExitStatus) subcommands.ExitStatus {
	a, err := newApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer a.close()
	return fn(a)
}

type analyzeCmd struct {
	interactive bool
}

func (*analyzeCmd) Name() string     { return "analyze" }
func (*analyzeCmd) Synopsis() string { return "analyze the price history and compare two dates" }
func (*analyzeCmd) Usage() string {
	return `pricelens analyze [-interactive=false]

  Loads the exchange rates and the price history, prints the report in KRW,
  USD and MXN, then asks for two indices to compare.
`
}

func (c *analyzeCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.interactive, "interactive", true, "ask for two dates to compare after the report")
}

func (c *analyzeCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withApp(func(a *app) subcommands.ExitStatus {
		rep, err := a.pipeline.Run(ctx, a.cfg.Symbol, a.cfg.LookbackDays)
		if err != nil {
			a.logger.Error("analysis failed", zap.Error(err))
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		if err := report.Render(os.Stdout, rep); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		if c.interactive {
			p := prompt.New(os.Stdin, os.Stdout, a.logger)
			if err := p.CompareOnce(rep.Series, rep.Converter()); err != nil {
				fmt.Fprintln(os.Stderr, err)
				return subcommands.ExitFailure
			}
		}
		if err := report.RenderSummary(os.Stdout, rep.Converter()); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	})
}

type refreshCmd struct{}

func (*refreshCmd) Name() string     { return "refresh" }
func (*refreshCmd) Synopsis() string { return "fetch the price history and update the cache" }
func (*refreshCmd) Usage() string {
	return `pricelens refresh

  Fetches the price history for the configured window and writes it to the
  cache. Fails when neither the source nor the cache has data.
`
}
func (*refreshCmd) SetFlags(*flag.FlagSet) {}

func (*refreshCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withApp(func(a *app) subcommands.ExitStatus {
		res, err := a.pipeline.Refresh(ctx, a.cfg.Symbol, a.cfg.LookbackDays)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(os.Stdout, "%s: %d rows from %s\n", a.cfg.Symbol, res.Data.Len(), res.Source)
		if res.FetchErr != nil {
			fmt.Fprintf(os.Stdout, "source unavailable: %v\n", res.FetchErr)
		}
		return subcommands.ExitSuccess
	})
}

type ratesCmd struct{}

func (*ratesCmd) Name() string     { return "rates" }
func (*ratesCmd) Synopsis() string { return "print the exchange rates in use" }
func (*ratesCmd) Usage() string {
	return `pricelens rates

  Prints the USD/KRW and USD/MXN rates and whether they are fallbacks.
`
}
func (*ratesCmd) SetFlags(*flag.FlagSet) {}

func (*ratesCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withApp(func(a *app) subcommands.ExitStatus {
		fmt.Fprint(os.Stdout, report.FormatRates(a.rates.Fetch(ctx)))
		return subcommands.ExitSuccess
	})
}

type scheduleCmd struct {
	runOnStart bool
}

func (*scheduleCmd) Name() string     { return "schedule" }
func (*scheduleCmd) Synopsis() string { return "refresh the cache on the configured cron schedule" }
func (*scheduleCmd) Usage() string {
	return `pricelens schedule [-now]

  Runs the refresh task on schedule.refresh_cron until interrupted.
`
}

func (c *scheduleCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.runOnStart, "now", os.Getenv("RUN_ON_START") == "true", "run a refresh immediately on start")
}

func (c *scheduleCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withApp(func(a *app) subcommands.ExitStatus {
		sched := scheduler.NewScheduler(ctx, a.pipeline, a.cfg.Symbol, a.cfg.LookbackDays, a.logger)
		if err := sched.Register(a.cfg.Schedule.RefreshCron); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		if c.runOnStart {
			a.logger.Info("run on start enabled, refreshing now")
		}
		a.logger.Info("PriceLens is running, press Ctrl+C to stop")
		sched.Run(ctx, c.runOnStart)
		a.logger.Info("shutdown signal received, stopping")
		return subcommands.ExitSuccess
	})
}
