package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/cory-johannsen/fightsim/internal/config"
)

func devConfig(t *testing.T) config.Config {
	t.Helper()
	cfg, err := config.Load(filepath.Join("..", "..", "configs", "dev.yaml"))
	require.NoError(t, err)
	cfg.Simulation.Seed = 11
	cfg.Simulation.Battles = 3
	cfg.Simulation.Enemy = "slime"
	return cfg
}

func TestRun_CompletesSeededSimulation(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	tally, err := run(context.Background(), devConfig(t), zap.New(core))
	require.NoError(t, err)
	assert.Equal(t, 3, tally.Battles)
	assert.Equal(t, 3, logs.FilterMessage("battle concluded").Len())
}

func TestRun_CancelledContextIsAnError(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	tally, err := run(ctx, devConfig(t), zap.NewNop())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, tally.Battles)
}

func TestRun_UnknownEnemyIsAnError(t *testing.T) {
	cfg := devConfig(t)
	cfg.Simulation.Enemy = "balrog"
	_, err := run(context.Background(), cfg, zap.NewNop())
	assert.ErrorContains(t, err, "balrog")
}

func TestRun_MissingContentIsAnError(t *testing.T) {
	cfg := devConfig(t)
	cfg.Content.EnemiesDir = filepath.Join(t.TempDir(), "missing")
	_, err := run(context.Background(), cfg, zap.NewNop())
	assert.ErrorContains(t, err, "loading content")
}
