package main

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the detector settings a YAML file can provide.
type Config struct {
	Lambda        float64 `yaml:"lambda"`
	LambdaMin     float64 `yaml:"lambda_min"`
	Seed          int64   `yaml:"seed"`
	MaxIterations int     `yaml:"max_iterations"`
	Refine        bool    `yaml:"refine"`
}

// DefaultConfig returns the settings used when no file is given.
func DefaultConfig() Config {
	return Config{
		Lambda:        32,
		LambdaMin:     8,
		Seed:          0,
		MaxIterations: 100,
		Refine:        true,
	}
}

// LoadConfig reads path over the defaults, so keys missing from the
// file keep their default value.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first setting the detector would reject.
func (c Config) Validate() error {
	if !(c.Lambda > 0) || math.IsInf(c.Lambda, 1) {
		return fmt.Errorf("lambda must be positive and finite, got %v", c.Lambda)
	}
	if !(c.LambdaMin >= 0) || math.IsInf(c.LambdaMin, 1) {
		return fmt.Errorf("lambda_min must be non-negative and finite, got %v", c.LambdaMin)
	}
	if c.MaxIterations < 1 {
		return fmt.Errorf("max_iterations must be at least 1, got %d", c.MaxIterations)
	}
	return nil
}
