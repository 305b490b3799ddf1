// Package config provides YAML-based configuration loading for snakegrid.
package config

import (
	"fmt"
	"time"
)

// Config contains all settings for a simulation run.
type Config struct {
	Simulation SimulationConfig `yaml:"simulation"`
	Food       FoodConfig       `yaml:"food"`
	Storage    StorageConfig    `yaml:"storage"`
	Log        LogConfig        `yaml:"log"`
}

// SimulationConfig controls the tick loop.
type SimulationConfig struct {
	Ticks          int   `yaml:"ticks"`            // Steps to run; the run stops early when every snake is dead
	Seed           int64 `yaml:"seed"`             // RNG seed for food placement (0 = time based)
	TickIntervalMS int   `yaml:"tick_interval_ms"` // Delay between ticks, 0 = as fast as possible
}

// TickInterval returns the configured delay between ticks.
func (s SimulationConfig) TickInterval() time.Duration {
	return time.Duration(s.TickIntervalMS) * time.Millisecond
}

// FoodConfig selects the food placement policy.
type FoodConfig struct {
	Policy string `yaml:"policy"` // "none", "random" or "first-empty"
}

// StorageConfig controls the run journal.
type StorageConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// LogConfig controls logger output.
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "text", "json" or "auto"
}

// Validate checks that the configuration can drive a run.
func (c Config) Validate() error {
	if c.Simulation.Ticks < 0 {
		return fmt.Errorf("config: simulation.ticks must be >= 0, got %d", c.Simulation.Ticks)
	}
	if c.Simulation.TickIntervalMS < 0 {
		return fmt.Errorf("config: simulation.tick_interval_ms must be >= 0, got %d", c.Simulation.TickIntervalMS)
	}
	if c.Food.Policy == "" {
		return fmt.Errorf("config: food.policy is required")
	}
	if c.Storage.Enabled && c.Storage.Path == "" {
		return fmt.Errorf("config: storage.path is required when storage is enabled")
	}
	switch c.Log.Format {
	case "", "text", "json", "auto":
	default:
		return fmt.Errorf("config: unknown log.format %q", c.Log.Format)
	}
	return nil
}
