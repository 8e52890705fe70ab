package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rope.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadReadsYAML(t *testing.T) {
	path := writeConfig(t, `
systems: fleet.yaml
default_system: gps
interaction: orbit
chime: true
model_load_delay: 500ms
logging:
  file: rope.log
  level: debug
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := &Config{
		SystemsPath:    "fleet.yaml",
		DefaultSystem:  "gps",
		Interaction:    InteractionOrbit,
		Chime:          true,
		ModelLoadDelay: 500 * time.Millisecond,
		RevealInterval: 100 * time.Millisecond,
		Logging:        LoggingConfig{File: "rope.log", Level: "debug"},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "interaction: orbit\nlogging:\n  level: warn\n")
	t.Setenv("ROPE_INTERACTION", "swipe")
	t.Setenv("ROPE_LOG_LEVEL", "error")
	t.Setenv("ROPE_REVEAL_INTERVAL", "0s")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Interaction != InteractionSwipe {
		t.Fatalf("expected swipe, got %q", cfg.Interaction)
	}
	if cfg.Logging.Level != "error" {
		t.Fatalf("expected error level, got %q", cfg.Logging.Level)
	}
	if cfg.RevealInterval != 0 {
		t.Fatalf("expected zero reveal interval, got %v", cfg.RevealInterval)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	if _, err := Load(writeConfig(t, "interaction: [")); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Interaction = " Orbit "
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if cfg.Interaction != InteractionOrbit {
		t.Fatalf("expected normalized orbit, got %q", cfg.Interaction)
	}

	cfg.Interaction = ""
	if err := cfg.Validate(); err != nil || cfg.Interaction != InteractionSwipe {
		t.Fatalf("expected empty interaction to default to swipe, got %q (%v)", cfg.Interaction, err)
	}

	bad := []func(*Config){
		func(c *Config) { c.Interaction = "fling" },
		func(c *Config) { c.ModelLoadDelay = -time.Second },
		func(c *Config) { c.RevealInterval = -time.Second },
		func(c *Config) { c.Logging.Level = "loud" },
	}
	for i, mutate := range bad {
		c := DefaultConfig()
		mutate(c)
		if err := c.Validate(); err == nil {
			t.Fatalf("case %d: expected validation error", i)
		}
	}
}
