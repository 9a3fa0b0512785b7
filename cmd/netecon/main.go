// SPDX-License-Identifier: MIT

// Command netecon runs a network economy scenario from a YAML file and
// optionally saves the run to SQLite.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/netecon/config"
	"github.com/katalvlaran/netecon/dynamics"
	"github.com/katalvlaran/netecon/matrix"
	"github.com/katalvlaran/netecon/store"
)

func main() {
	cfgPath := flag.String("config", "scenario.yaml", "path to the scenario file")
	label := flag.String("label", "", "label of the saved run (defaults to the scenario name)")
	verbose := flag.Bool("v", false, "log every period")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, logger, *cfgPath, *label); err != nil {
		slog.Error("run failed", "error", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, cfgPath, label string) error {
	s, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	slog.Info("scenario loaded",
		"path", cfgPath,
		"name", s.Name,
		"sectors", s.Network.Sectors,
		"topology", s.Network.Topology,
		"horizon", s.Horizon,
	)

	var extra []dynamics.Option
	if s.Store.Path != "" {
		db, err := store.Open(s.Store.Path)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer db.Close()
		slog.Info("database opened", "path", s.Store.Path)
		extra = append(extra, dynamics.WithStorage(db))
	}

	d, err := s.NewDynamics(logger, extra...)
	if err != nil {
		return err
	}

	if err := d.RunContext(ctx); err != nil {
		var se *dynamics.StepError
		if errors.As(err, &se) {
			slog.Error("non-finite value", "period", se.Period, "phase", se.Phase, "tensor", se.Tensor)
		}

		return err
	}
	summarize(d)

	db, ok := store.Attached(d)
	if !ok {
		return nil
	}
	if label == "" {
		label = s.Name
	}
	if _, err := db.SaveRun(d, label); err != nil {
		return fmt.Errorf("failed to save run: %w", err)
	}

	return nil
}

// summarize logs the state of the last simulated period.
func summarize(d *dynamics.Dynamics) {
	last := d.TMax() - 1
	prices := d.Prices.Row(d.TMax())
	stocks := d.Stocks.Row(d.TMax())
	n := float64(d.N())

	attrs := []any{
		"period", last,
		"wage", d.Wages[last],
		"labour", d.Labour[last],
		"budget", d.Budget[last],
		"mean_price", matrix.Sum(prices) / n,
		"mean_stock", matrix.Sum(stocks) / n,
	}
	if u, err := d.Utilities(); err == nil {
		attrs = append(attrs, "utility", u[last])
	}
	slog.Info("final state", attrs...)
}
