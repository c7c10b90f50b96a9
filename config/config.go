package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/rollingdie/heuristic"
)

// ErrInvalidConfig is returned by Validate for any unusable setting.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config is the complete CLI configuration.
type Config struct {
	// Heuristics run by compare when none are named on the command line.
	Heuristics []string `yaml:"heuristics" env:"ROLLINGDIE_HEURISTICS"`
	// Format selects human-readable text or a json/yaml export.
	Format   string `yaml:"format" env:"ROLLINGDIE_FORMAT"`
	LogLevel string `yaml:"log_level" env:"ROLLINGDIE_LOG_LEVEL"`
	Color    bool   `yaml:"color" env:"ROLLINGDIE_COLOR"`
	// Parallelism bounds concurrent searches in compare.
	Parallelism int  `yaml:"parallelism" env:"ROLLINGDIE_PARALLELISM"`
	Walkthrough bool `yaml:"walkthrough" env:"ROLLINGDIE_WALKTHROUGH"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Heuristics: []string{
			heuristic.FancyManhattan.String(),
			heuristic.Manhattan.String(),
			heuristic.Euclidean.String(),
			heuristic.Diagonal.String(),
		},
		Format:      FormatText,
		LogLevel:    zerolog.LevelWarnValue,
		Color:       true,
		Parallelism: runtime.GOMAXPROCS(0),
		Walkthrough: true,
	}
}

// Load returns the defaults overlaid with the YAML file at path (skipped when
// path is empty) and then with the environment. The result is validated.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	if err := cfg.ApplyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// ApplyEnv overrides fields whose ROLLINGDIE_* variable is set.
func (c *Config) ApplyEnv() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("config: parse env: %w", err)
	}

	return nil
}

// Kinds parses the configured heuristic names.
func (c Config) Kinds() ([]heuristic.Kind, error) {
	kinds := make([]heuristic.Kind, 0, len(c.Heuristics))
	for _, name := range c.Heuristics {
		k, err := heuristic.ParseKind(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		kinds = append(kinds, k)
	}

	return kinds, nil
}

// Level parses the configured log level.
func (c Config) Level() (zerolog.Level, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("%w: log_level %q", ErrInvalidConfig, c.LogLevel)
	}

	return lvl, nil
}

// Validate checks every field.
func (c Config) Validate() error {
	if len(c.Heuristics) == 0 {
		return fmt.Errorf("%w: no heuristics", ErrInvalidConfig)
	}
	if _, err := c.Kinds(); err != nil {
		return err
	}
	switch strings.ToLower(c.Format) {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("%w: format %q", ErrInvalidConfig, c.Format)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if c.Parallelism < 1 {
		return fmt.Errorf("%w: parallelism %d", ErrInvalidConfig, c.Parallelism)
	}

	return nil
}
