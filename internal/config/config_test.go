package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesDefaultConfig(t *testing.T) {
	var fromYAML Config
	if err := yaml.Unmarshal(DefaultYAML(), &fromYAML); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}

	if fromYAML != DefaultConfig() {
		t.Errorf("embedded default differs from DefaultConfig():\n%+v\n%+v", fromYAML, DefaultConfig())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("simulation:\n  ticks: 7\n  tick_interval_ms: 50\nfood:\n  policy: none\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Simulation.Ticks != 7 {
		t.Errorf("Expected ticks 7, got %d", cfg.Simulation.Ticks)
	}
	if cfg.Simulation.TickInterval() != 50*time.Millisecond {
		t.Errorf("Expected 50ms interval, got %v", cfg.Simulation.TickInterval())
	}
	if cfg.Food.Policy != "none" {
		t.Errorf("Expected policy none, got %q", cfg.Food.Policy)
	}
	// Unset sections keep defaults
	if cfg.Storage != DefaultConfig().Storage {
		t.Errorf("Expected default storage, got %+v", cfg.Storage)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Expected default log level, got %q", cfg.Log.Level)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Expected error for missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	//nolint:errcheck // Test setup
	os.WriteFile(bad, []byte("simulation: [oops"), 0o644)
	if _, err := Load(bad); err == nil {
		t.Error("Expected error for malformed YAML")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	//nolint:errcheck // Test setup
	os.WriteFile(invalid, []byte("simulation:\n  ticks: -1\n"), 0o644)
	if _, err := Load(invalid); err == nil {
		t.Error("Expected validation error for negative ticks")
	}
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name   string
		modify func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"negative interval", func(c *Config) { c.Simulation.TickIntervalMS = -5 }, false},
		{"empty policy", func(c *Config) { c.Food.Policy = "" }, false},
		{"storage without path", func(c *Config) { c.Storage.Path = "" }, false},
		{"storage disabled without path", func(c *Config) {
			c.Storage.Enabled = false
			c.Storage.Path = ""
		}, true},
		{"unknown log format", func(c *Config) { c.Log.Format = "xml" }, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.modify(&cfg)
			err := cfg.Validate()
			if tc.ok && err != nil {
				t.Errorf("Expected valid config, got %v", err)
			}
			if !tc.ok && err == nil {
				t.Error("Expected validation error")
			}
		})
	}
}
