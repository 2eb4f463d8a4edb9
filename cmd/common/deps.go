// Package common provides shared utilities for command implementations.
package common

import (
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/jonesrussell/gofresh/internal/config"
	"github.com/jonesrussell/gofresh/internal/logger"
)

// CommandDeps holds common dependencies for all commands.
// Use this instead of context.Value for type-safe dependency injection.
type CommandDeps struct {
	Logger logger.Interface
	Config *config.Config
}

// Validate ensures all required dependencies are present.
func (d CommandDeps) Validate() error {
	if d.Logger == nil {
		return ErrLoggerRequired
	}
	if d.Config == nil {
		return ErrConfigRequired
	}
	return nil
}

// NewCommandDeps loads the configuration and builds the logger. The config
// file is optional; without one, built-in defaults plus the environment
// apply.
func NewCommandDeps() (CommandDeps, error) {
	cfg, err := loadConfig()
	if err != nil {
		return CommandDeps{}, fmt.Errorf("load config: %w", err)
	}

	applyDebugOverrides(cfg)

	log, err := logger.New(cfg.Logger.Build())
	if err != nil {
		return CommandDeps{}, fmt.Errorf("create logger: %w", err)
	}

	deps := CommandDeps{Logger: log, Config: cfg}
	if validateErr := deps.Validate(); validateErr != nil {
		return CommandDeps{}, fmt.Errorf("validate deps: %w", validateErr)
	}

	return deps, nil
}

// loadConfig resolves the config file path: the --config flag first, then
// the default path when the file exists, otherwise built-in defaults.
func loadConfig() (*config.Config, error) {
	if path := viper.GetString("config"); path != "" {
		return config.Load(path)
	}

	if _, err := os.Stat(config.DefaultConfigPath); err == nil {
		return config.Load(config.DefaultConfigPath)
	}

	return config.Default(), nil
}

// applyDebugOverrides folds the Viper flag/environment layer into the
// typed config.
func applyDebugOverrides(cfg *config.Config) {
	if viper.GetBool("app.debug") {
		cfg.App.Debug = true
		cfg.Logger.Level = string(logger.DebugLevel)
		cfg.Logger.Development = true
		cfg.Logger.Encoding = "console"
		cfg.Logger.EnableColor = true
	}
}
