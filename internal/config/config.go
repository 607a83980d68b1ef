// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Load layers a YAML file and GROUPE_ environment variables on top.
// - External errors are wrapped with this package's sentinel errors.
package config

import (
	"fmt"
)

// Defaults.
const (
	DefaultLogLevel           = "info"
	DefaultAddr               = ":9080"
	DefaultShuffleMaxAttempts = 10
	DefaultDedupeSize         = 10_000
	DefaultGroupPrefix        = "Group"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":9080".
	Addr string `koanf:"addr"`

	// ShuffleMaxAttempts bounds redraws per swap in the anti-repeat shuffle.
	ShuffleMaxAttempts int `koanf:"shuffle_max_attempts"`

	// RandomSeed makes allocations reproducible when non-zero.
	RandomSeed int64 `koanf:"random_seed"`

	// DedupeSize bounds the idempotency key cache for saved draws.
	DedupeSize int `koanf:"dedupe_size"`

	// DefaultGroupPrefix names groups when the caller supplies no names.
	DefaultGroupPrefix string `koanf:"default_group_prefix"`
}

// New creates a Config holding the defaults.
func New() *Config {
	return &Config{
		LogLevel:           DefaultLogLevel,
		Addr:               DefaultAddr,
		ShuffleMaxAttempts: DefaultShuffleMaxAttempts,
		DedupeSize:         DefaultDedupeSize,
		DefaultGroupPrefix: DefaultGroupPrefix,
	}
}

// Validate reports the first invalid field.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	if c.ShuffleMaxAttempts < 1 {
		return fmt.Errorf("%w: shuffle_max_attempts must be at least 1, got %d", ErrInvalidConfig, c.ShuffleMaxAttempts)
	}
	if c.DedupeSize < 0 {
		return fmt.Errorf("%w: dedupe_size must not be negative, got %d", ErrInvalidConfig, c.DedupeSize)
	}
	if c.DefaultGroupPrefix == "" {
		return fmt.Errorf("%w: default_group_prefix must not be empty", ErrInvalidConfig)
	}
	return nil
}
