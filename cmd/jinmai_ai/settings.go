package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/jonathan/jinmai-creation/internal/catalog"
	"github.com/jonathan/jinmai-creation/internal/config"
	"github.com/jonathan/jinmai-creation/internal/generation"
	"github.com/jonathan/jinmai-creation/internal/logging"
	"github.com/jonathan/jinmai-creation/internal/pipeline"
)

// loadSettings resolves configuration in increasing precedence: built-in
// defaults, config file, environment, then flags (applied by the caller).
func loadSettings(opts *globalOptions) (config.Config, error) {
	var cfg config.Config
	if opts.configPath != "" {
		loaded, err := config.LoadConfig(opts.configPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config file: %w", err)
		}
		cfg = *loaded
	}

	cfg.ApplyEnv()
	cfg = cfg.MergeWithDefaults(config.Defaults())

	if opts.verbose {
		cfg.Verbose = true
		if opts.logLevel == "" {
			cfg.LogLevel = "debug"
		}
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}
	return cfg, nil
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	logger, err := logging.New(logging.Config{Level: cfg.LogLevel, Console: cfg.Verbose})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return logger, nil
}

// newRandom seeds from cfg.Seed, or from the clock when it is zero.
func newRandom(cfg config.Config) *generation.LockedRand {
	if cfg.Seed != 0 {
		return generation.NewLockedRand(cfg.Seed)
	}
	return generation.NewTimeSeededRand()
}

func newCreator(cat *catalog.Catalog, cfg config.Config, onProgress pipeline.ProgressCallback) *pipeline.Creator {
	delayMin, delayMax := cfg.DelayRange()
	opts := pipeline.Options{
		DelayMin:   delayMin,
		DelayMax:   delayMax,
		OnProgress: onProgress,
	}
	if cfg.NoDelay {
		opts.Sleep = pipeline.NoDelay
	}
	return pipeline.NewCreator(cat, newRandom(cfg), opts)
}
