// Package observability builds the structured loggers shared by the simulator:
// the main logger and the quieter per-draw dice logger derived from it.
package observability

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/cory-johannsen/fightsim/internal/config"
)

// Service is the value of the "service" field on every log line.
const Service = "fightsim"

// NewLogger creates a structured logger from the given logging configuration.
// Every entry carries service=fightsim.
//
// Precondition: cfg.Level must be one of "debug", "info", "warn", "error".
// Precondition: cfg.Format must be "json" or "console".
// Postcondition: Returns a configured zap.Logger or a non-nil error.
func NewLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	zapCfg, err := buildConfig(cfg)
	if err != nil {
		return nil, err
	}
	logger, err := zapCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return logger, nil
}

func buildConfig(cfg config.LoggingConfig) (zap.Config, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return zap.Config{}, fmt.Errorf("parsing log level %q: %w", cfg.Level, err)
	}

	var zapCfg zap.Config
	switch cfg.Format {
	case "json":
		zapCfg = zap.NewProductionConfig()
		// Every battle conclusion must reach the log.
		zapCfg.Sampling = nil
	case "console":
		zapCfg = zap.NewDevelopmentConfig()
	default:
		return zap.Config{}, fmt.Errorf("unknown log format %q", cfg.Format)
	}

	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zapCfg.InitialFields = map[string]any{"service": Service}
	return zapCfg, nil
}

// NewDiceLogger derives the logger handed to dice.NewLoggedRandomizer. It is
// named "dice" and filtered at cfg.DiceLevel on top of base's own level, so
// draws can be silenced while the rest of the simulator logs at debug. An
// empty DiceLevel means info.
//
// Precondition: base must not be nil.
func NewDiceLogger(base *zap.Logger, cfg config.LoggingConfig) (*zap.Logger, error) {
	if base == nil {
		panic("observability.NewDiceLogger: base must not be nil")
	}
	level, err := zapcore.ParseLevel(cfg.DiceLevel)
	if err != nil {
		return nil, fmt.Errorf("parsing dice log level %q: %w", cfg.DiceLevel, err)
	}
	named := base.Named("dice")
	if level <= zapcore.LevelOf(base.Core()) {
		return named, nil
	}
	return named.WithOptions(zap.IncreaseLevel(level)), nil
}
