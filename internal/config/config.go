// Package config provides Viper-based configuration loading for the battle simulator.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/cory-johannsen/fightsim/internal/game/character"
	"github.com/cory-johannsen/fightsim/internal/game/combat"
)

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
	// DiceLevel is the minimum level for the per-draw dice logger. Draws log at
	// debug, so they only appear when both DiceLevel and Level are "debug".
	DiceLevel string `mapstructure:"dice_level"`
}

// RangeConfig is an inclusive {min, max} roll range.
type RangeConfig struct {
	Min int `mapstructure:"min"`
	Max int `mapstructure:"max"`
}

func (r RangeConfig) toRange() combat.Range {
	return combat.Range{Min: r.Min, Max: r.Max}
}

// TieredRangeConfig is an enemy damage table with its armor-reduced branch.
type TieredRangeConfig struct {
	Normal  RangeConfig `mapstructure:"normal"`
	Reduced RangeConfig `mapstructure:"reduced"`
}

func (t TieredRangeConfig) toTieredRange() combat.TieredRange {
	return combat.TieredRange{Normal: t.Normal.toRange(), Reduced: t.Reduced.toRange()}
}

// CombatConfig holds every tuning value of the combat engine.
type CombatConfig struct {
	CritOneIn           int `mapstructure:"crit_one_in"`
	EnemyFleeOneIn      int `mapstructure:"enemy_flee_one_in"`
	EnemyWakeOneIn      int `mapstructure:"enemy_wake_one_in"`
	PlayerWakeOneIn     int `mapstructure:"player_wake_one_in"`
	EnemyStopspellOneIn int `mapstructure:"enemy_stopspell_one_in"`

	DodgeSides    int `mapstructure:"dodge_sides"`
	ResistSides   int `mapstructure:"resist_sides"`
	SurpriseSides int `mapstructure:"surprise_sides"`
	FleeSides     int `mapstructure:"flee_sides"`

	EnemySleepRounds     int `mapstructure:"enemy_sleep_rounds"`
	PlayerSleepRounds    int `mapstructure:"player_sleep_rounds"`
	PlayerSleepMaxRounds int `mapstructure:"player_sleep_max_rounds"`

	EnemyHealThreshold  float64   `mapstructure:"enemy_heal_threshold"`
	EnemySurpriseFactor float64   `mapstructure:"enemy_surprise_factor"`
	FleeModifiers       []float64 `mapstructure:"flee_modifiers"`

	Heal     RangeConfig `mapstructure:"heal"`
	Healmore RangeConfig `mapstructure:"healmore"`
	Hurt     RangeConfig `mapstructure:"hurt"`
	Hurtmore RangeConfig `mapstructure:"hurtmore"`
	Herb     RangeConfig `mapstructure:"herb"`

	EnemyHeal       RangeConfig       `mapstructure:"enemy_heal"`
	EnemyHealmore   RangeConfig       `mapstructure:"enemy_healmore"`
	EnemyHurt       TieredRangeConfig `mapstructure:"enemy_hurt"`
	EnemyHurtmore   TieredRangeConfig `mapstructure:"enemy_hurtmore"`
	EnemyFire       TieredRangeConfig `mapstructure:"enemy_fire"`
	EnemyStrongfire TieredRangeConfig `mapstructure:"enemy_strongfire"`
}

// Constants converts the section into engine constants.
func (c CombatConfig) Constants() combat.Constants {
	return combat.Constants{
		CritOneIn:            c.CritOneIn,
		EnemyFleeOneIn:       c.EnemyFleeOneIn,
		EnemyWakeOneIn:       c.EnemyWakeOneIn,
		PlayerWakeOneIn:      c.PlayerWakeOneIn,
		EnemyStopspellOneIn:  c.EnemyStopspellOneIn,
		DodgeSides:           c.DodgeSides,
		ResistSides:          c.ResistSides,
		SurpriseSides:        c.SurpriseSides,
		FleeSides:            c.FleeSides,
		EnemySleepRounds:     c.EnemySleepRounds,
		PlayerSleepRounds:    c.PlayerSleepRounds,
		PlayerSleepMaxRounds: c.PlayerSleepMaxRounds,
		EnemyHealThreshold:   c.EnemyHealThreshold,
		EnemySurpriseFactor:  c.EnemySurpriseFactor,
		FleeModifiers:        append([]float64(nil), c.FleeModifiers...),
		Heal:                 c.Heal.toRange(),
		Healmore:             c.Healmore.toRange(),
		Hurt:                 c.Hurt.toRange(),
		Hurtmore:             c.Hurtmore.toRange(),
		Herb:                 c.Herb.toRange(),
		EnemyHeal:            c.EnemyHeal.toRange(),
		EnemyHealmore:        c.EnemyHealmore.toRange(),
		EnemyHurt:            c.EnemyHurt.toTieredRange(),
		EnemyHurtmore:        c.EnemyHurtmore.toTieredRange(),
		EnemyFire:            c.EnemyFire.toTieredRange(),
		EnemyStrongfire:      c.EnemyStrongfire.toTieredRange(),
	}
}

// ContentConfig points at directories that replace the embedded content.
// An empty path keeps the embedded default.
type ContentConfig struct {
	EnemiesDir   string `mapstructure:"enemies_dir"`
	EquipmentDir string `mapstructure:"equipment_dir"`
}

// PlayerConfig describes the player the simulator fights with.
type PlayerConfig struct {
	Name     string `mapstructure:"name"`
	Level    int    `mapstructure:"level"`
	Strength int    `mapstructure:"strength"`
	Agility  int    `mapstructure:"agility"`
	MaxHP    int    `mapstructure:"max_hp"`
	MaxMP    int    `mapstructure:"max_mp"`
	Weapon   string `mapstructure:"weapon"`
	Armor    string `mapstructure:"armor"`
	Shield   string `mapstructure:"shield"`
	Herbs    int    `mapstructure:"herbs"`
}

// Stats returns the player's base attributes.
func (p PlayerConfig) Stats() character.Stats {
	return character.Stats{
		Name:     p.Name,
		Level:    p.Level,
		Strength: p.Strength,
		Agility:  p.Agility,
		MaxHP:    p.MaxHP,
		MaxMP:    p.MaxMP,
	}
}

// Equipment returns the player's gear selection.
func (p PlayerConfig) Equipment() character.Equipment {
	return character.Equipment{Weapon: p.Weapon, Armor: p.Armor, Shield: p.Shield, Herbs: p.Herbs}
}

// SimulationConfig controls the automated battle run.
type SimulationConfig struct {
	// Battles is how many battles to run.
	Battles int `mapstructure:"battles"`
	// Seed makes the run reproducible; 0 selects the crypto source.
	Seed uint64 `mapstructure:"seed"`
	// Enemy is an enemy ID or name; empty picks a random enemy each battle.
	Enemy  string       `mapstructure:"enemy"`
	Player PlayerConfig `mapstructure:"player"`
}

// Config is the top-level application configuration.
type Config struct {
	Logging    LoggingConfig    `mapstructure:"logging"`
	Combat     CombatConfig     `mapstructure:"combat"`
	Content    ContentConfig    `mapstructure:"content"`
	Simulation SimulationConfig `mapstructure:"simulation"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := c.Combat.Constants().Validate(); err != nil {
		errs = append(errs, "combat: "+err.Error())
	}
	if err := validateSimulation(c.Simulation); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	if !validLevels[l.DiceLevel] {
		return fmt.Errorf("logging.dice_level must be one of [debug, info, warn, error], got %q", l.DiceLevel)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

func validateSimulation(s SimulationConfig) error {
	var errs []string
	if s.Battles < 1 {
		errs = append(errs, fmt.Sprintf("simulation.battles must be >= 1, got %d", s.Battles))
	}
	p := s.Player
	if p.Level < 1 || p.Level > character.MaxLevel {
		errs = append(errs, fmt.Sprintf("simulation.player.level must be 1-%d, got %d", character.MaxLevel, p.Level))
	}
	if p.MaxHP < 1 {
		errs = append(errs, fmt.Sprintf("simulation.player.max_hp must be >= 1, got %d", p.MaxHP))
	}
	if p.Strength < 0 || p.Agility < 0 || p.MaxMP < 0 {
		errs = append(errs, "simulation.player strength, agility and max_mp must be >= 0")
	}
	if p.Herbs < 0 || p.Herbs > character.MaxHerbs {
		errs = append(errs, fmt.Sprintf("simulation.player.herbs must be 0-%d, got %d", character.MaxHerbs, p.Herbs))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result.
//
// Precondition: path must be a valid file path to a YAML configuration file.
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	// Environment variable overrides with FIGHTSIM_ prefix
	v.SetEnvPrefix("FIGHTSIM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// NewDefaultViper returns a Viper instance holding only the defaults.
func NewDefaultViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.dice_level", "info")

	d := combat.DefaultConstants()
	v.SetDefault("combat.crit_one_in", d.CritOneIn)
	v.SetDefault("combat.enemy_flee_one_in", d.EnemyFleeOneIn)
	v.SetDefault("combat.enemy_wake_one_in", d.EnemyWakeOneIn)
	v.SetDefault("combat.player_wake_one_in", d.PlayerWakeOneIn)
	v.SetDefault("combat.enemy_stopspell_one_in", d.EnemyStopspellOneIn)
	v.SetDefault("combat.dodge_sides", d.DodgeSides)
	v.SetDefault("combat.resist_sides", d.ResistSides)
	v.SetDefault("combat.surprise_sides", d.SurpriseSides)
	v.SetDefault("combat.flee_sides", d.FleeSides)
	v.SetDefault("combat.enemy_sleep_rounds", d.EnemySleepRounds)
	v.SetDefault("combat.player_sleep_rounds", d.PlayerSleepRounds)
	v.SetDefault("combat.player_sleep_max_rounds", d.PlayerSleepMaxRounds)
	v.SetDefault("combat.enemy_heal_threshold", d.EnemyHealThreshold)
	v.SetDefault("combat.enemy_surprise_factor", d.EnemySurpriseFactor)
	v.SetDefault("combat.flee_modifiers", d.FleeModifiers)
	setRangeDefault(v, "combat.heal", d.Heal)
	setRangeDefault(v, "combat.healmore", d.Healmore)
	setRangeDefault(v, "combat.hurt", d.Hurt)
	setRangeDefault(v, "combat.hurtmore", d.Hurtmore)
	setRangeDefault(v, "combat.herb", d.Herb)
	setRangeDefault(v, "combat.enemy_heal", d.EnemyHeal)
	setRangeDefault(v, "combat.enemy_healmore", d.EnemyHealmore)
	setTieredDefault(v, "combat.enemy_hurt", d.EnemyHurt)
	setTieredDefault(v, "combat.enemy_hurtmore", d.EnemyHurtmore)
	setTieredDefault(v, "combat.enemy_fire", d.EnemyFire)
	setTieredDefault(v, "combat.enemy_strongfire", d.EnemyStrongfire)

	v.SetDefault("content.enemies_dir", "")
	v.SetDefault("content.equipment_dir", "")

	v.SetDefault("simulation.battles", 100)
	v.SetDefault("simulation.seed", 0)
	v.SetDefault("simulation.enemy", "")
	v.SetDefault("simulation.player.name", "Hero")
	v.SetDefault("simulation.player.level", 10)
	v.SetDefault("simulation.player.strength", 30)
	v.SetDefault("simulation.player.agility", 20)
	v.SetDefault("simulation.player.max_hp", 60)
	v.SetDefault("simulation.player.max_mp", 40)
	v.SetDefault("simulation.player.weapon", "copper_sword")
	v.SetDefault("simulation.player.armor", "chain_mail")
	v.SetDefault("simulation.player.shield", "small_shield")
	v.SetDefault("simulation.player.herbs", 3)
}

func setRangeDefault(v *viper.Viper, key string, r combat.Range) {
	v.SetDefault(key+".min", r.Min)
	v.SetDefault(key+".max", r.Max)
}

func setTieredDefault(v *viper.Viper, key string, t combat.TieredRange) {
	setRangeDefault(v, key+".normal", t.Normal)
	setRangeDefault(v, key+".reduced", t.Reduced)
}
