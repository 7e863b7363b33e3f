// Package main is the interactive terrain viewer: pick a seed, watch the
// heightmap form, then fly over the result.
package main

import (
	"fmt"
	"os"

	"github.com/sqweek/dialog"
	"go.uber.org/zap"

	"github.com/Faultbox/terragen/internal/config"
	"github.com/Faultbox/terragen/internal/game"
	"github.com/Faultbox/terragen/internal/gen"
	"github.com/Faultbox/terragen/internal/logger"
	"github.com/Faultbox/terragen/internal/pipeline"
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
		showError(err)
		logger.Sync()
		os.Exit(1)
	}
}

// run owns the viewer so its deferred teardown finishes before main exits.
func run(cfg *config.Config) error {
	logger.Info("=== terragen viewer ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	p, err := pipeline.New(pipeline.SettingsFromConfig(cfg), gen.FromSeed(cfg.Generation.Seed))
	if err != nil {
		logger.Error("failed to create pipeline", zap.Error(err))
		return err
	}

	g, err := game.New(cfg, p, showError)
	if err != nil {
		logger.Error("failed to create viewer", zap.Error(err))
		return err
	}
	defer g.Close()

	if err := g.Run(); err != nil {
		logger.Error("viewer error", zap.Error(err))
		return err
	}

	logger.Info("viewer closed normally")
	return nil
}

func showError(err error) {
	dialog.Message("%v", err).Title("terragen").Error()
}
