package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/metaphysics/cube"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "METAPHYSICS_"

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ErrInvalidConfig indicates an unreadable or invalid configuration.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds the command settings.
type Config struct {
	// Order is the Hilbert curve order of each side.
	Order int `yaml:"order" env:"ORDER" validate:"min=1,max=15"`
	// Workers bounds parallel region extraction.
	Workers int `yaml:"workers" env:"WORKERS" validate:"min=1,max=1024"`
	// Format selects text, json or yaml output.
	Format string `yaml:"format" env:"FORMAT" validate:"oneof=text json yaml"`
	// Color enables styled text tables.
	Color bool `yaml:"color" env:"COLOR"`
}

var validate = validator.New()

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Order:   cube.DefaultOrder,
		Workers: runtime.GOMAXPROCS(0),
		Format:  FormatText,
		Color:   true,
	}
}

// Load resolves defaults, the YAML file at path (skipped when path is empty)
// and the environment, then validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("%w: read %s: %w", ErrInvalidConfig, path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("%w: parse %s: %w", ErrInvalidConfig, path, err)
		}
	}
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("%w: parse env: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks field ranges.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}
