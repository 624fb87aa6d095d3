package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/evacroute/config"
	"github.com/katalvlaran/evacroute/gridgraph"
)

// app holds the flags shared by every subcommand.
type app struct {
	verbose    bool
	quiet      bool
	configPath string
	floorFiles []string

	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}
	root := &cobra.Command{
		Use:   "evacroute",
		Short: "Fire-aware evacuation route planner",
		Long: `evacroute plans an escape route through a multi-floor building layout
under a fire-intensity snapshot.

The layout is one CSV or whitespace-separated matrix per floor
(0 free, 1 wall, 2 fire-affected, 3 exit marker, 4 start marker).
A route is searched with an ant colony and, when that fails or runs out
of time, with A*.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.quiet {
				return nil
			}
			cfg := zap.NewProductionConfig()
			if a.verbose {
				cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := cfg.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}
	pf := root.PersistentFlags()
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "log search progress at debug level")
	pf.BoolVarP(&a.quiet, "quiet", "q", false, "disable logging")
	pf.StringVarP(&a.configPath, "config", "c", "", "YAML tuning file")
	pf.StringSliceVarP(&a.floorFiles, "floor-file", "f", nil, "floor layout file, floor 0 first (repeatable; overrides the config floors)")

	root.AddCommand(newPlanCmd(a), newFireCmd(a))
	return root
}

// load returns the configuration and the building it describes.
func (a *app) load() (*config.Config, *gridgraph.Building, error) {
	cfg := config.Default()
	if a.configPath != "" {
		var err error
		if cfg, err = config.Load(a.configPath); err != nil {
			return nil, nil, err
		}
	}
	if len(a.floorFiles) > 0 {
		cfg.Floors = a.floorFiles
		cfg.Dir = ""
	}
	b, err := cfg.Building()
	if err != nil {
		return nil, nil, err
	}
	a.logger.Debug("building loaded",
		zap.Strings("floors", cfg.FloorPaths()),
		zap.Int("rows", b.Rows()),
		zap.Int("cols", b.Cols()))
	return cfg, b, nil
}
