package catalog

import (
	"fmt"
	"os"
	"strings"

	"github.com/olivier-w/rope/internal/carousel"
	"gopkg.in/yaml.v3"
)

// File is the on-disk shape of a catalog file.
type File struct {
	Default string  `yaml:"default"`
	Systems []Entry `yaml:"systems"`
}

// Entry is one system in a catalog file.
type Entry struct {
	ID     string     `yaml:"id"`
	Label  string     `yaml:"label"`
	Status string     `yaml:"status"`
	Value  string     `yaml:"value"`
	Icon   string     `yaml:"icon"`
	Notes  string     `yaml:"notes"`
	Anchor [3]float64 `yaml:"anchor"`
}

// Catalog is a validated ring of systems plus its preferred focus.
type Catalog struct {
	Default string
	Systems []carousel.System
}

// Load reads a YAML catalog file. Labels default to the upper-cased id.
func Load(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("reading catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates catalog YAML.
func Parse(data []byte) (Catalog, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Catalog{}, fmt.Errorf("parsing catalog: %w", err)
	}

	systems := make([]carousel.System, len(f.Systems))
	for i, e := range f.Systems {
		id := strings.TrimSpace(e.ID)
		label := e.Label
		if label == "" {
			label = strings.ToUpper(id)
		}
		systems[i] = carousel.System{
			ID:     id,
			Label:  label,
			Status: e.Status,
			Value:  e.Value,
			Icon:   e.Icon,
			Notes:  e.Notes,
			Anchor: e.Anchor,
		}
	}
	if len(systems) == 0 {
		return Catalog{}, fmt.Errorf("catalog has no systems")
	}
	if err := carousel.Validate(systems); err != nil {
		return Catalog{}, fmt.Errorf("catalog: %w", err)
	}
	c := Catalog{Default: strings.TrimSpace(f.Default), Systems: systems}
	if c.Default != "" && indexOf(systems, c.Default) < 0 {
		return Catalog{}, fmt.Errorf("catalog default %q: %w", c.Default, carousel.ErrInvalidSelection)
	}
	return c, nil
}

// Marshal renders c as catalog YAML.
func Marshal(c Catalog) ([]byte, error) {
	f := File{Default: c.Default, Systems: make([]Entry, len(c.Systems))}
	for i, s := range c.Systems {
		f.Systems[i] = Entry{
			ID:     s.ID,
			Label:  s.Label,
			Status: s.Status,
			Value:  s.Value,
			Icon:   s.Icon,
			Notes:  s.Notes,
			Anchor: s.Anchor,
		}
	}
	return yaml.Marshal(f)
}

var alertStatuses = map[string]bool{
	"alarm":   true,
	"fault":   true,
	"open":    true,
	"low":     true,
	"high":    true,
	"offline": true,
}

// IsAlert reports whether status calls for attention.
func IsAlert(status string) bool {
	return alertStatuses[strings.ToLower(strings.TrimSpace(status))]
}

// Alerting returns the systems whose status calls for attention, in ring order.
func Alerting(systems []carousel.System) []carousel.System {
	var out []carousel.System
	for _, s := range systems {
		if IsAlert(s.Status) {
			out = append(out, s)
		}
	}
	return out
}

func indexOf(systems []carousel.System, id string) int {
	for i, s := range systems {
		if s.ID == id {
			return i
		}
	}
	return -1
}
