// Package config loads driver settings from the environment.
package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/born-ml/forward/internal/parallel"
)

// Config holds the settings for elementwise apply in the CLI driver.
//
// Unset variables keep the values from parallel.DefaultConfig.
type Config struct {
	Parallel     bool `env:"FORWARD_PARALLEL"`
	Workers      int  `env:"FORWARD_WORKERS"`
	MinChunkSize int  `env:"FORWARD_MIN_CHUNK"`
}

// ErrInvalid reports a setting outside its allowed range.
var ErrInvalid = errors.New("invalid config")

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load returns the defaults overridden by FORWARD_* environment variables.
func Load() (Config, error) {
	def := parallel.DefaultConfig()
	cfg := Config{
		Parallel:     def.Enabled,
		Workers:      def.NumWorkers,
		MinChunkSize: def.MinChunkSize,
	}
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that worker and chunk counts are positive.
func (c Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be >= 1, got %d", ErrInvalid, c.Workers)
	}
	if c.MinChunkSize < 1 {
		return fmt.Errorf("%w: min chunk size must be >= 1, got %d", ErrInvalid, c.MinChunkSize)
	}
	return nil
}

// ParallelConfig converts c to the form used by parallel.For.
func (c Config) ParallelConfig() parallel.Config {
	return parallel.Config{
		Enabled:      c.Parallel,
		NumWorkers:   c.Workers,
		MinChunkSize: c.MinChunkSize,
	}
}
