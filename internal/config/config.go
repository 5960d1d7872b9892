// Package config loads lgrep configuration from an optional YAML file
// with LGREP_* environment variable overrides.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v10"
	"gopkg.in/yaml.v3"
)

// DefaultPath is where configuration is looked up when --config is not given.
const DefaultPath = ".lgrep.yaml"

// Color mode values accepted by the Color setting.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds the default behavior of the lgrep command. Every field can
// be overridden by a CLI flag; the file and environment only set defaults.
type Config struct {
	// Color controls colorized output: auto, always or never
	Color string `yaml:"color" env:"LGREP_COLOR"`

	// LineNumbers enables -n by default
	LineNumbers bool `yaml:"line_numbers" env:"LGREP_LINE_NUMBERS"`

	// FilenamesOnly enables -l by default
	FilenamesOnly bool `yaml:"files_with_matches" env:"LGREP_FILES_WITH_MATCHES"`

	// CaseInsensitive enables -i by default
	CaseInsensitive bool `yaml:"ignore_case" env:"LGREP_IGNORE_CASE"`

	// InvertMatch enables -v by default
	InvertMatch bool `yaml:"invert_match" env:"LGREP_INVERT_MATCH"`

	// MatchEntireLine enables -x by default
	MatchEntireLine bool `yaml:"line_regexp" env:"LGREP_LINE_REGEXP"`

	// Debug enables diagnostic logging to stderr
	Debug bool `yaml:"debug" env:"LGREP_DEBUG"`
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Color: ColorAuto,
	}
}

// LoadConfig loads configuration from the specified file path.
// If the file doesn't exist, defaults are returned without error.
// If the file exists but is malformed, an error is returned.
// LGREP_* environment variables are applied on top of the file values.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// File doesn't exist, keep defaults (not an error)
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	switch cfg.Color {
	case ColorAuto, ColorAlways, ColorNever:
		return nil
	default:
		return fmt.Errorf("invalid color mode %q (want auto, always or never)", cfg.Color)
	}
}
