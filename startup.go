package main

import (
	"github.com/olivier-w/rope/internal/carousel"
	"github.com/olivier-w/rope/internal/catalog"
	"github.com/olivier-w/rope/internal/config"
	"github.com/spf13/cobra"
)

// loadConfig reads the config file and environment, then applies the flags
// the user actually set.
func (o *options) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("systems") {
		cfg.SystemsPath = o.systemsPath
	}
	if flags.Changed("default") {
		cfg.DefaultSystem = o.defaultID
	}
	if flags.Changed("mode") {
		cfg.Interaction = config.Interaction(o.mode)
	}
	if flags.Changed("chime") {
		cfg.Chime = o.chime
	}
	if flags.Changed("log-file") {
		cfg.Logging.File = o.logFile
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadRing builds the system ring from the configured catalog. The configured
// default system wins over the catalog's own default.
func loadRing(cfg *config.Config) (catalog.Catalog, *carousel.State, error) {
	cat := catalog.Default()
	if cfg.SystemsPath != "" {
		var err error
		cat, err = catalog.Load(cfg.SystemsPath)
		if err != nil {
			return catalog.Catalog{}, nil, err
		}
	}

	focus := cfg.DefaultSystem
	if focus == "" {
		focus = cat.Default
	}
	ring, err := carousel.New(cat.Systems, focus)
	if err != nil {
		return catalog.Catalog{}, nil, err
	}
	return cat, ring, nil
}
