package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/fightsim/internal/game/combat"
)

func validConfig(t testing.TB) Config {
	t.Helper()
	cfg, err := LoadFromViper(NewDefaultViper())
	require.NoError(t, err)
	return cfg
}

func TestDefaultsAreValid(t *testing.T) {
	cfg := validConfig(t)
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "info", cfg.Logging.DiceLevel)
	assert.Equal(t, 100, cfg.Simulation.Battles)
}

func TestCombatDefaultsMatchEngineDefaults(t *testing.T) {
	cfg := validConfig(t)
	assert.Equal(t, combat.DefaultConstants(), cfg.Combat.Constants())
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yaml")
	err := os.WriteFile(path, []byte(`
logging:
  level: debug
  format: console
combat:
  crit_one_in: 16
  hurt: {min: 6, max: 13}
  enemy_fire:
    normal: {min: 17, max: 24}
content:
  enemies_dir: /tmp/enemies
simulation:
  battles: 7
  seed: 42
  enemy: slime
  player:
    level: 3
    weapon: club
    herbs: 1
`), 0644)
	require.NoError(t, err)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 16, cfg.Combat.CritOneIn)
	assert.Equal(t, RangeConfig{Min: 6, Max: 13}, cfg.Combat.Hurt)
	assert.Equal(t, RangeConfig{Min: 17, Max: 24}, cfg.Combat.EnemyFire.Normal)
	// Unset keys in a partially specified section keep their defaults.
	assert.Equal(t, RangeConfig{Min: 10, Max: 14}, cfg.Combat.EnemyFire.Reduced)
	assert.Equal(t, 64, cfg.Combat.DodgeSides)
	assert.Equal(t, 6, cfg.Combat.PlayerSleepMaxRounds)
	assert.Equal(t, "/tmp/enemies", cfg.Content.EnemiesDir)
	assert.Equal(t, 7, cfg.Simulation.Battles)
	assert.Equal(t, uint64(42), cfg.Simulation.Seed)
	assert.Equal(t, "slime", cfg.Simulation.Enemy)
	assert.Equal(t, 3, cfg.Simulation.Player.Level)
	assert.Equal(t, "club", cfg.Simulation.Player.Weapon)
	assert.Equal(t, 60, cfg.Simulation.Player.MaxHP)
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yaml")
	require.NoError(t, os.WriteFile(path, []byte("simulation:\n  battles: 3\n"), 0644))
	t.Setenv("FIGHTSIM_SIMULATION_BATTLES", "9")
	t.Setenv("FIGHTSIM_LOGGING_LEVEL", "warn")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Simulation.Battles)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadInvalidPath(t *testing.T) {
	_, err := Load("/nonexistent/path.yaml")
	assert.Error(t, err)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
combat:
  crit_one_in: 0
simulation:
  battles: 0
`), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "crit_one_in")
	assert.Contains(t, err.Error(), "simulation.battles")
}

func TestValidateLoggingLevel(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		cfg := validConfig(t)
		cfg.Logging.Level = level
		assert.NoError(t, cfg.Validate(), "level %q should be valid", level)
	}
	cfg := validConfig(t)
	cfg.Logging.Level = "trace"
	assert.Error(t, cfg.Validate())

	cfg = validConfig(t)
	cfg.Logging.DiceLevel = "verbose"
	assert.ErrorContains(t, cfg.Validate(), "logging.dice_level")
}

func TestValidateLoggingFormat(t *testing.T) {
	for _, format := range []string{"json", "console"} {
		cfg := validConfig(t)
		cfg.Logging.Format = format
		assert.NoError(t, cfg.Validate(), "format %q should be valid", format)
	}
	cfg := validConfig(t)
	cfg.Logging.Format = "xml"
	assert.Error(t, cfg.Validate())
}

func TestValidateCombat(t *testing.T) {
	cfg := validConfig(t)
	cfg.Combat.FleeModifiers = []float64{0.5}
	assert.ErrorContains(t, cfg.Validate(), "flee_modifiers")

	cfg = validConfig(t)
	cfg.Combat.Herb = RangeConfig{Min: 30, Max: 23}
	assert.ErrorContains(t, cfg.Validate(), "herb")

	cfg = validConfig(t)
	cfg.Combat.EnemyHealThreshold = 0
	assert.ErrorContains(t, cfg.Validate(), "enemy_heal_threshold")

	cfg = validConfig(t)
	cfg.Combat.PlayerSleepMaxRounds = 0
	assert.ErrorContains(t, cfg.Validate(), "player_sleep_max_rounds")
}

func TestValidatePlayer(t *testing.T) {
	cfg := validConfig(t)
	cfg.Simulation.Player.Level = 0
	assert.Error(t, cfg.Validate())

	cfg = validConfig(t)
	cfg.Simulation.Player.Level = 31
	assert.ErrorContains(t, cfg.Validate(), "simulation.player.level must be 1-30")

	cfg = validConfig(t)
	cfg.Simulation.Player.Level = 30
	assert.NoError(t, cfg.Validate())

	cfg = validConfig(t)
	cfg.Simulation.Player.MaxHP = 0
	assert.Error(t, cfg.Validate())

	cfg = validConfig(t)
	cfg.Simulation.Player.Herbs = 7
	assert.Error(t, cfg.Validate())
}

func TestPlayerConfigConversions(t *testing.T) {
	p := validConfig(t).Simulation.Player
	stats := p.Stats()
	assert.Equal(t, p.Level, stats.Level)
	assert.Equal(t, p.MaxHP, stats.MaxHP)
	gear := p.Equipment()
	assert.Equal(t, "copper_sword", gear.Weapon)
	assert.Equal(t, p.Herbs, gear.Herbs)
}

func TestConstantsCopiesFleeModifiers(t *testing.T) {
	cfg := validConfig(t)
	consts := cfg.Combat.Constants()
	consts.FleeModifiers[0] = 9
	assert.Equal(t, 0.25, cfg.Combat.FleeModifiers[0])
}

// Property-based tests

func TestPropertyBattleCountValidation(t *testing.T) {
	base := validConfig(t)
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(-100, 1000).Draw(t, "battles")
		cfg := base
		cfg.Simulation.Battles = n
		err := cfg.Validate()
		if n >= 1 && err != nil {
			t.Fatalf("valid battle count %d rejected: %v", n, err)
		}
		if n < 1 && err == nil {
			t.Fatalf("invalid battle count %d accepted", n)
		}
	})
}

func TestPropertyInvertedRangeRejected(t *testing.T) {
	base := validConfig(t)
	rapid.Check(t, func(t *rapid.T) {
		lo := rapid.IntRange(1, 100).Draw(t, "min")
		hi := rapid.IntRange(0, lo-1).Draw(t, "max")
		cfg := base
		cfg.Combat.Hurtmore = RangeConfig{Min: lo, Max: hi}
		if cfg.Validate() == nil {
			t.Fatalf("inverted range [%d, %d] accepted", lo, hi)
		}
	})
}

func TestLoadShippedDevConfig(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "configs", "dev.yaml"))
	require.NoError(t, err)
	assert.Equal(t, combat.DefaultConstants(), cfg.Combat.Constants())
	assert.Equal(t, "console", cfg.Logging.Format)
}
