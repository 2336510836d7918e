// Package config loads driver configuration for the mazebot CLI: compiled
// defaults, then an optional YAML file, then environment overrides (with a
// .env file honored when present). The solver itself takes no
// configuration; everything here is presentation pacing and defensive caps.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Default values for Config.
const (
	// DefaultTickInterval paces one decision per second, matching the
	// classic animation cadence.
	DefaultTickInterval = time.Second
	// DefaultMaxSteps of 0 leaves the solve uncapped; the algorithm
	// terminates on its own.
	DefaultMaxSteps = 0
)

// Environment variable names recognized by Load.
const (
	EnvTick     = "MAZEBOT_TICK"
	EnvMaxSteps = "MAZEBOT_MAX_STEPS"
	EnvNoClear  = "MAZEBOT_NO_CLEAR"
)

// Config holds the driver's settings.
type Config struct {
	// TickInterval is the pause between animated decisions.
	TickInterval time.Duration
	// MaxSteps, if > 0, aborts runaway solves defensively.
	MaxSteps int
	// ClearScreen redraws frames over a cleared terminal.
	ClearScreen bool
}

// fileConfig mirrors the YAML file. Durations are strings ("250ms", "2s")
// and absent fields stay nil so defaults survive.
type fileConfig struct {
	TickInterval *string `yaml:"tick_interval"`
	MaxSteps     *int    `yaml:"max_steps"`
	ClearScreen  *bool   `yaml:"clear_screen"`
}

// Default returns a Config with default values.
func Default() Config {
	return Config{
		TickInterval: DefaultTickInterval,
		MaxSteps:     DefaultMaxSteps,
		ClearScreen:  true,
	}
}

// Load builds the effective Config: defaults, overlaid by the YAML file at
// path (missing file and empty path are fine), overlaid by environment
// variables. A .env file in the working directory is loaded first if
// present, so overrides can live next to the maze files.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// fall through to env overrides
		case err != nil:
			return cfg, fmt.Errorf("config: reading %s: %w", path, err)
		default:
			var fc fileConfig
			if err := yaml.Unmarshal(data, &fc); err != nil {
				return cfg, fmt.Errorf("config: parsing %s: %w", path, err)
			}
			if fc.TickInterval != nil {
				d, err := time.ParseDuration(*fc.TickInterval)
				if err != nil {
					return cfg, fmt.Errorf("config: tick_interval in %s: %w", path, err)
				}
				cfg.TickInterval = d
			}
			if fc.MaxSteps != nil {
				cfg.MaxSteps = *fc.MaxSteps
			}
			if fc.ClearScreen != nil {
				cfg.ClearScreen = *fc.ClearScreen
			}
		}
	}

	// .env is optional; absence is not an error.
	_ = godotenv.Load()

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}

	return cfg, cfg.validate()
}

// applyEnv overlays recognized environment variables onto cfg.
func applyEnv(cfg *Config) error {
	if v, ok := os.LookupEnv(EnvTick); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvTick, err)
		}
		cfg.TickInterval = d
	}
	if v, ok := os.LookupEnv(EnvMaxSteps); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %s must be an integer: %w", EnvMaxSteps, err)
		}
		cfg.MaxSteps = n
	}
	if v, ok := os.LookupEnv(EnvNoClear); ok && v != "" && v != "0" && v != "false" {
		cfg.ClearScreen = false
	}

	return nil
}

// validate rejects values no driver run could use.
func (c Config) validate() error {
	if c.TickInterval < 0 {
		return fmt.Errorf("config: tick_interval must be non-negative, got %s", c.TickInterval)
	}
	if c.MaxSteps < 0 {
		return fmt.Errorf("config: max_steps must be non-negative, got %d", c.MaxSteps)
	}

	return nil
}
