package app

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"vectorgen/internal/domain"
	"vectorgen/internal/platform"
	experimentsvc "vectorgen/internal/services/experiment"
	"vectorgen/internal/store"
)

// Wire bundles the store, platform, and services for the CLI and drivers.
type Wire struct {
	Experiments domain.ExperimentStore
	Platform    domain.Platform
	Runner      *experimentsvc.Service
	Logger      *zap.Logger
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	if cfg.WorkDir == "" {
		cfg.WorkDir = "."
	}
	if err := os.MkdirAll(cfg.WorkDir, 0o755); err != nil {
		return nil, err
	}

	logger, err := newLogger(cfg.Verbose)
	if err != nil {
		return nil, err
	}

	experimentStore := store.NewExperimentFileStore(cfg.WorkDir)

	var plat domain.Platform
	if cfg.PlatformURL != "" {
		plat = platform.NewHTTP(cfg.PlatformURL, nil, logger)
	} else {
		plat = platform.NewLocal(cfg.WorkDir, cfg.SimulatorPath, cfg.Jobs, logger)
	}

	runner := experimentsvc.New(experimentStore, plat, logger)

	return &Wire{
		Experiments: experimentStore,
		Platform:    plat,
		Runner:      runner,
		Logger:      logger,
	}, nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}
