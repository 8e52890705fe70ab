package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Interaction selects how pointer drags move the ring. Only one model is
// active per session.
type Interaction string

const (
	// InteractionSwipe moves the focus one card per swipe.
	InteractionSwipe Interaction = "swipe"
	// InteractionOrbit rotates the ring with the drag and snaps on release.
	InteractionOrbit Interaction = "orbit"
)

// Config holds rope's runtime settings.
type Config struct {
	// Catalog file; empty uses the built-in mock systems.
	SystemsPath string `yaml:"systems" env:"ROPE_SYSTEMS"`
	// Focused system at startup; empty uses the catalog default.
	DefaultSystem string `yaml:"default_system" env:"ROPE_DEFAULT_SYSTEM"`
	// swipe or orbit.
	Interaction Interaction `yaml:"interaction" env:"ROPE_INTERACTION"`
	// Play a short tone whenever the focus changes.
	Chime bool `yaml:"chime" env:"ROPE_CHIME"`

	// Simulated model load before cards appear.
	ModelLoadDelay time.Duration `yaml:"model_load_delay" env:"ROPE_MODEL_LOAD_DELAY"`
	// Delay between card reveals once the model is loaded.
	RevealInterval time.Duration `yaml:"reveal_interval" env:"ROPE_REVEAL_INTERVAL"`

	Logging LoggingConfig `yaml:"logging" envPrefix:"ROPE_LOG_"`
}

// LoggingConfig configures the file logger.
type LoggingConfig struct {
	File  string `yaml:"file" env:"FILE"`
	Level string `yaml:"level" env:"LEVEL"` // debug, info, warn, error
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		Interaction:    InteractionSwipe,
		ModelLoadDelay: 2 * time.Second,
		RevealInterval: 100 * time.Millisecond,
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads a YAML config file on top of the defaults and applies ROPE_*
// environment overrides. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		case os.IsNotExist(err):
		default:
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Validate checks that settings are usable.
func (c *Config) Validate() error {
	c.Interaction = Interaction(strings.ToLower(strings.TrimSpace(string(c.Interaction))))
	switch c.Interaction {
	case InteractionSwipe, InteractionOrbit:
	case "":
		c.Interaction = InteractionSwipe
	default:
		return fmt.Errorf("interaction must be %q or %q, got %q", InteractionSwipe, InteractionOrbit, c.Interaction)
	}
	if c.ModelLoadDelay < 0 {
		return fmt.Errorf("model_load_delay must not be negative")
	}
	if c.RevealInterval < 0 {
		return fmt.Errorf("reveal_interval must not be negative")
	}
	switch strings.ToLower(c.Logging.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Logging.Level)
	}
	return nil
}
