package config

import (
	_ "embed"
)

//go:embed defaults/snakegrid.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Simulation: SimulationConfig{
			Ticks:          100,
			Seed:           0,
			TickIntervalMS: 0,
		},
		Food: FoodConfig{
			Policy: "random",
		},
		Storage: StorageConfig{
			Enabled: true,
			Path:    "~/.snakegrid/runs.db",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "auto",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
