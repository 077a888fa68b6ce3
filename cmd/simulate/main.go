package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/slingshot/assets"
	"github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/logging"
	"github.com/automoto/slingshot/sim"
	"go.uber.org/zap"
)

func main() {
	level := flag.Int("level", 0, "Level index")
	seed := flag.Uint64("seed", 1, "Flavor text seed")
	ticks := flag.Int("ticks", 600, "Ticks to simulate")
	pulls := flag.String("launches", "40,10", "Drag vectors as x,y;x,y")
	configPath := flag.String("config", "", "Optional YAML tuning file")
	debug := flag.Bool("debug", false, "Verbose logging")
	flag.Parse()

	logger, restore, err := logging.New(*debug)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer restore()

	if *configPath != "" {
		if err := config.LoadFile(*configPath); err != nil {
			logger.Fatal("bad config file", zap.String("path", *configPath), zap.Error(err))
		}
	}
	launches, err := sim.ParsePulls(*pulls)
	if err != nil {
		logger.Fatal("bad -launches", zap.Error(err))
	}

	// No window, so no sprites.
	assets.SetRoot("")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := sim.NewRunner(sim.Options{Level: *level, Seed: *seed, Pulls: launches})
	res, err := runner.Run(ctx, *ticks)
	if err != nil {
		logger.Warn("simulation interrupted", zap.Error(err))
	}

	logger.Info("simulation finished",
		zap.String("level", res.Level),
		zap.Int("ticks", res.Ticks),
		zap.Int("launches", res.Score.Launches),
		zap.Int("points", res.Score.Points),
		zap.Int("pieces", res.Score.Pieces),
		zap.Int("targets", res.Score.Targets),
		zap.Int("targetsLeft", res.TargetsLeft),
		zap.Bool("cleared", res.Cleared),
		zap.Int("bodies", res.Bodies),
		zap.Uint64("fingerprint", res.Fingerprint),
	)
}
