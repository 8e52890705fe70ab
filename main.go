package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/olivier-w/rope/internal/carousel"
	"github.com/olivier-w/rope/internal/catalog"
	"github.com/olivier-w/rope/internal/logging"
	"github.com/olivier-w/rope/internal/sound"
	"github.com/olivier-w/rope/internal/ui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// options holds command-line flags. Flags that were set win over the config
// file and the environment.
type options struct {
	configPath  string
	systemsPath string
	defaultID   string
	mode        string
	chime       bool
	logFile     string
	debug       bool

	systemsYAML bool

	layoutActive   string
	layoutRotation float64
}

func newRootCmd() *cobra.Command {
	o := &options{}
	return o.command()
}

func (o *options) command() *cobra.Command {
	root := &cobra.Command{
		Use:   "rope",
		Short: "rope.core - yacht digital twin for the terminal",
		Long: `rope draws the yacht with its systems orbiting on a ring.

Swipe or drag with the mouse, or use the arrow keys, to bring a system to
the front. Run without a subcommand to start the dashboard.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE:          o.runDashboard,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&o.configPath, "config", "rope.yaml", "config file")
	pf.StringVar(&o.systemsPath, "systems", "", "systems catalog file (default: built-in mock systems)")
	pf.StringVar(&o.defaultID, "default", "", "system focused at startup")

	f := root.Flags()
	f.StringVar(&o.mode, "mode", "", "interaction model: swipe or orbit")
	f.BoolVar(&o.chime, "chime", false, "play a tone when the focus changes")
	f.StringVar(&o.logFile, "log-file", "", "write JSON logs to this file")
	f.BoolVar(&o.debug, "debug", false, "log at debug level")

	systems := &cobra.Command{
		Use:   "systems",
		Short: "Print the systems catalog",
		Args:  cobra.NoArgs,
		RunE:  o.runSystems,
	}
	systems.Flags().BoolVar(&o.systemsYAML, "yaml", false, "print as a catalog file usable with --systems")

	layout := &cobra.Command{
		Use:   "layout",
		Short: "Print where every card sits on the ring",
		Long: `Prints the scene position of every card for a given focus and ring
rotation. The focused card is pulled out of the ring toward the viewer.`,
		Args: cobra.NoArgs,
		RunE: o.runLayout,
	}
	layout.Flags().StringVar(&o.layoutActive, "active", "", "focused system (default: catalog default)")
	layout.Flags().Float64Var(&o.layoutRotation, "rotation", 0, "ring rotation in radians")

	root.AddCommand(systems, layout)
	return root
}

func (o *options) runDashboard(cmd *cobra.Command, _ []string) error {
	cfg, err := o.loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Logging.File, cfg.Logging.Level, o.debug)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	_, ring, err := loadRing(cfg)
	if err != nil {
		return err
	}
	chips, err := carousel.New(catalog.PrimarySystems(), "")
	if err != nil {
		return err
	}

	var chime sound.Chime = sound.Nop{}
	if cfg.Chime {
		player, err := sound.NewOto()
		if err != nil {
			logger.Warn("chime disabled", zap.Error(err))
			cfg.Chime = false
		} else {
			defer player.Close()
			chime = player
		}
	}

	logger.Info("starting dashboard",
		zap.Int("systems", ring.Len()),
		zap.String("active", ring.ActiveID()),
		zap.String("interaction", string(cfg.Interaction)),
	)

	model := ui.New(ring, chips, ui.Options{
		Interaction:    cfg.Interaction,
		ModelLoadDelay: cfg.ModelLoadDelay,
		RevealInterval: cfg.RevealInterval,
		Chime:          chime,
		Logger:         logger,
		Config:         cfg,
	})
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithReportFocus())

	final, err := program.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(ui.Model); ok {
		logger.Info("dashboard closed", zap.String("active", m.ActiveID()))
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
