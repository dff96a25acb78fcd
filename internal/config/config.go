// Package config loads the comparison harness settings from the
// environment.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"

	"github.com/rawbytedev/guid64"
)

var ErrInvalid = errors.New("invalid config")

type Config struct {
	Iterations int      `env:"GUID64_ITERATIONS" envDefault:"1000000"`
	Samples    int      `env:"GUID64_SAMPLES" envDefault:"100"`
	Variants   []string `env:"GUID64_VARIANTS" envSeparator:","`
	MemProfile string   `env:"GUID64_MEM_PROFILE"`
	PprofAddr  string   `env:"GUID64_PPROF_ADDR"`
	Debug      bool     `env:"GUID64_DEBUG"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses and validates Config.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Iterations <= 0 {
		return fmt.Errorf("%w: iterations must be positive, got %d", ErrInvalid, c.Iterations)
	}
	if c.Samples <= 0 {
		return fmt.Errorf("%w: samples must be positive, got %d", ErrInvalid, c.Samples)
	}
	_, err := c.ResolveVariants()
	return err
}

// ResolveVariants returns the configured variants, or all of them when none
// are named.
func (c Config) ResolveVariants() ([]guid64.Variant, error) {
	if len(c.Variants) == 0 {
		return guid64.Variants(), nil
	}
	out := make([]guid64.Variant, 0, len(c.Variants))
	for _, name := range c.Variants {
		v, err := guid64.Lookup(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// Exitf writes a formatted error message to stderr and exits with code 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
