// Package main provides the headless battle simulator. It loads content and
// configuration, then fights a series of automated battles and logs the tally.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/fightsim/internal/config"
	"github.com/cory-johannsen/fightsim/internal/game/ai"
	"github.com/cory-johannsen/fightsim/internal/game/character"
	"github.com/cory-johannsen/fightsim/internal/game/combat"
	"github.com/cory-johannsen/fightsim/internal/game/dice"
	"github.com/cory-johannsen/fightsim/internal/observability"
	"github.com/cory-johannsen/fightsim/internal/sim"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file")
	battles := flag.Int("battles", 0, "number of battles to run; 0 = use config")
	enemy := flag.String("enemy", "", "enemy ID or name; empty = use config")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	if *battles > 0 {
		cfg.Simulation.Battles = *battles
	}
	if *enemy != "" {
		cfg.Simulation.Enemy = *enemy
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	tally, err := run(ctx, cfg, logger)
	fields := append(tally.Fields(), zap.Duration("elapsed", time.Since(start)))
	if err != nil {
		logger.Fatal("simulation stopped", append(fields, zap.Error(err))...)
	}
	logger.Info("simulation complete", fields...)
}

// run wires the simulator from cfg and plays cfg.Simulation.Battles battles.
//
// Postcondition: a non-nil error means the run did not complete; the Tally
// still covers every battle that concluded before it stopped.
func run(ctx context.Context, cfg config.Config, logger *zap.Logger) (sim.Tally, error) {
	start := time.Now()
	content, err := sim.LoadContent(cfg.Content)
	if err != nil {
		return sim.Tally{}, fmt.Errorf("loading content: %w", err)
	}
	logger.Info("content loaded",
		zap.Int("enemies", len(content.Bestiary.All())),
		zap.Duration("elapsed", time.Since(start)),
	)

	var src dice.Source
	if cfg.Simulation.Seed != 0 {
		src = dice.NewSeededSource(cfg.Simulation.Seed)
	} else {
		src = dice.NewCryptoSource()
	}
	diceLogger, err := observability.NewDiceLogger(logger, cfg.Logging)
	if err != nil {
		return sim.Tally{}, fmt.Errorf("initializing dice logger: %w", err)
	}
	rng := dice.NewLoggedRandomizer(dice.NewRandomizer(src), diceLogger)

	consts := cfg.Combat.Constants()
	engine := combat.NewEngine(rng, consts)
	selector := ai.NewSelector(rng, consts.EnemyHealThreshold)

	player, err := character.NewBuilder(content.Registry).Build(
		cfg.Simulation.Player.Stats(),
		cfg.Simulation.Player.Equipment(),
	)
	if err != nil {
		return sim.Tally{}, fmt.Errorf("building player: %w", err)
	}

	runner := sim.NewRunner(
		content.Bestiary,
		player,
		engine,
		selector,
		rng,
		logger,
		cfg.Simulation.Enemy,
		cfg.Simulation.Player.Herbs,
	)

	logger.Info("starting simulation",
		zap.Int("battles", cfg.Simulation.Battles),
		zap.String("enemy", cfg.Simulation.Enemy),
		zap.Uint64("seed", cfg.Simulation.Seed),
	)
	return runner.Run(ctx, cfg.Simulation.Battles)
}
