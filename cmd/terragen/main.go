// Package main is the headless terrain generator. It runs every stage to
// completion and prints a JSON summary of the result.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/terragen/internal/config"
	"github.com/Faultbox/terragen/internal/gen"
	"github.com/Faultbox/terragen/internal/logger"
	"github.com/Faultbox/terragen/internal/pipeline"
	"github.com/Faultbox/terragen/internal/report"
)

var (
	maxSteps = flag.Int("max-steps", 1_000_000, "Abort after this many pipeline ticks")
	timeout  = flag.Duration("timeout", 0, "Abort after this long (0 = no limit)")
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg); err != nil {
		logger.Error("generation failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if *timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}

	p, err := pipeline.New(pipeline.SettingsFromConfig(cfg), gen.FromSeed(cfg.Generation.Seed))
	if err != nil {
		return err
	}

	logger.Info("generating terrain",
		zap.Uint64("seed", p.Seed()),
		zap.Int("size", cfg.Terrain.UnitCount),
		zap.Strings("stages", p.StageNames()))

	start := time.Now()
	ticks, err := p.RunToCompletion(ctx, *maxSteps)
	if err != nil {
		return fmt.Errorf("after %d ticks: %w", ticks, err)
	}
	elapsed := time.Since(start)

	logger.Info("terrain generated", zap.Int("ticks", ticks), zap.Duration("elapsed", elapsed))

	r, err := report.Build(p, ticks, elapsed, cfg.Terrain.WaterLine())
	if err != nil {
		return err
	}
	return report.Write(os.Stdout, r)
}
