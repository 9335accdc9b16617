// SPDX-License-Identifier: MIT

// Package config holds the settings of the tspanneal command.
//
// Sources, lowest precedence first:
//  1. DefaultConfig
//  2. a YAML file ($TSPANNEAL_CONFIG, else ./tspanneal.yaml when present)
//  3. a .env file in the working directory
//  4. process environment (TSPANNEAL_*)
//  5. command-line flags (applied by the command itself)
//
// Validate runs after all sources are merged; the annealer validates its own
// options again when it is constructed.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tspanneal/sa"
)

// DefaultPath is the config file looked up in the working directory.
const DefaultPath = "tspanneal.yaml"

// Fixture names accepted by Config.Fixture.
const (
	FixtureSquare = "square"
	Fixture16     = "fixture16"
)

// Config is the merged command configuration.
type Config struct {
	InitialTemperature float64 `yaml:"initial_temperature" validate:"gt=0,gtfield=MinTemperature"`
	MinTemperature     float64 `yaml:"min_temperature" validate:"gt=0"`
	CoolingRate        float64 `yaml:"cooling_rate" validate:"gt=0,lt=1"`

	// Seed drives the annealer; 0 asks the command for a fresh seed.
	Seed int64 `yaml:"seed"`

	// Cities, Extent and CitySeed describe a random instance. CitiesFile or
	// Fixture take precedence, in that order.
	Cities     int     `yaml:"cities" validate:"gte=1"`
	Extent     float64 `yaml:"extent" validate:"gt=0"`
	CitySeed   int64   `yaml:"city_seed"`
	CitiesFile string  `yaml:"cities_file"`
	Fixture    string  `yaml:"fixture" validate:"omitempty,oneof=square fixture16"`

	AllowSinglePoint bool `yaml:"allow_single_point"`

	Log LogConfig `yaml:"log"`

	// Progress shows a progress bar over the annealing iterations.
	Progress bool `yaml:"progress"`

	// TourOut, when set, receives the best tour as YAML.
	TourOut string `yaml:"tour_out"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// DefaultConfig returns the classic 13-city setup with the 1000 / 1e-3 /
// 0.98 schedule.
func DefaultConfig() *Config {
	return &Config{
		InitialTemperature: sa.DefaultInitialTemperature,
		MinTemperature:     sa.DefaultMinTemperature,
		CoolingRate:        sa.DefaultCoolingRate,
		Cities:             13,
		Extent:             1000,
		Log:                LogConfig{Level: "info", Format: "text"},
	}
}

// Load finds and loads the config file, or returns defaults if none exists.
// It also returns the path used, empty for defaults.
func Load(lookup Lookup) (*Config, string, error) {
	path := FindConfigPath(lookup)
	if path == "" {
		return DefaultConfig(), "", nil
	}

	return LoadFromPath(path)
}

// FindConfigPath returns $TSPANNEAL_CONFIG when set, else DefaultPath when
// it exists, else "".
func FindConfigPath(lookup Lookup) string {
	if lookup != nil {
		if p, ok := lookup(envPrefix + "CONFIG"); ok && p != "" {
			return p
		}
	}
	if _, err := os.Stat(DefaultPath); err == nil {
		return DefaultPath
	}

	return ""
}

// LoadFromPath loads config from a specific path. Keys missing from the
// file keep their defaults.
func LoadFromPath(path string) (*Config, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, path, fmt.Errorf("parse config: %w", err)
	}
	cfg.applyDefaults()

	return cfg, path, nil
}

// applyDefaults restores defaults for fields a file blanked out.
func (c *Config) applyDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Save writes c as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0o644)
}

// Annealing returns the annealer options described by c. Hooks and the
// logger are left for the caller.
func (c *Config) Annealing() sa.Options {
	return sa.Options{
		InitialTemperature: c.InitialTemperature,
		MinTemperature:     c.MinTemperature,
		CoolingRate:        c.CoolingRate,
		Seed:               c.Seed,
		AllowSinglePoint:   c.AllowSinglePoint,
	}
}
