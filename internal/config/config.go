// SPDX-License-Identifier: MIT

// Package config loads prefrank settings with koanf.
//
// Layers, lowest to highest priority:
//
//  1. Defaults: built into the binary
//  2. Config file: optional YAML file
//  3. Environment: PREFRANK_* variables
//
// Environment keys map to config paths by dropping the prefix, lowercasing,
// and turning the first underscore into a dot:
//
//	PREFRANK_RANKING_MAX_ITERATIONS -> ranking.max_iterations
//	PREFRANK_LOG_LEVEL              -> log.level
package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/katalvlaran/prefrank/internal/logging"
	"github.com/katalvlaran/prefrank/rank"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "PREFRANK_"

// ErrInvalidConfig is returned when a loaded configuration fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the complete prefrank configuration.
type Config struct {
	Ranking RankingConfig `koanf:"ranking"`
	Log     LogConfig     `koanf:"log"`
}

// RankingConfig tunes the power iteration.
type RankingConfig struct {
	// Damping overrides the adaptive damping factor when set; 0 is a
	// valid override (pure random jump).
	Damping       *float64 `koanf:"damping,omitempty"`
	Epsilon       float64  `koanf:"epsilon"`
	MaxIterations int      `koanf:"max_iterations"`
}

// LogConfig selects the log level and output format.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Ranking: RankingConfig{
			Epsilon:       rank.DefaultEpsilon,
			MaxIterations: rank.DefaultMaxIterations,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load layers defaults, the YAML file at path (skipped when path is empty)
// and PREFRANK_* environment variables, then validates the result.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("config: load defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("config: load %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("config: load environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// envKey maps PREFRANK_SECTION_FIELD_NAME to section.field_name.
func envKey(key string) string {
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))

	return strings.Replace(key, "_", ".", 1)
}

// Validate checks ranges and enumerations.
func (c *Config) Validate() error {
	r := c.Ranking
	if d := r.Damping; d != nil && (math.IsNaN(*d) || *d < 0 || *d > 1) {
		return fmt.Errorf("%w: ranking.damping %v not in [0,1]", ErrInvalidConfig, *d)
	}
	if math.IsNaN(r.Epsilon) || math.IsInf(r.Epsilon, 0) || r.Epsilon <= 0 {
		return fmt.Errorf("%w: ranking.epsilon must be > 0, got %v", ErrInvalidConfig, r.Epsilon)
	}
	if r.MaxIterations <= 0 {
		return fmt.Errorf("%w: ranking.max_iterations must be > 0, got %d", ErrInvalidConfig, r.MaxIterations)
	}
	if !logging.ValidLevel(c.Log.Level) {
		return fmt.Errorf("%w: unknown log.level %q", ErrInvalidConfig, c.Log.Level)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("%w: unknown log.format %q", ErrInvalidConfig, c.Log.Format)
	}

	return nil
}

// RankOptions converts the ranking section into engine options.
// An unset damping keeps the adaptive estimate.
func (c *Config) RankOptions() []rank.Option {
	opts := []rank.Option{
		rank.WithEpsilon(c.Ranking.Epsilon),
		rank.WithMaxIterations(c.Ranking.MaxIterations),
	}
	if c.Ranking.Damping != nil {
		opts = append(opts, rank.WithDamping(*c.Ranking.Damping))
	}

	return opts
}

// Logging returns the logging configuration for this config.
func (c *Config) Logging() logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level = c.Log.Level
	cfg.Format = c.Log.Format

	return cfg
}
