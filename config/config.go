// Package config loads the YAML tuning file of the route planner: floor
// layout files, fire stage profiles, cost penalty, search parameters and
// planner timeouts.
//
// Every key is optional; Parse starts from Default and overrides only what
// the document sets. Unknown keys are rejected.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/evacroute/aco"
	"github.com/katalvlaran/evacroute/firefield"
	"github.com/katalvlaran/evacroute/gridgraph"
	"github.com/katalvlaran/evacroute/planner"
)

// ErrInvalid wraps every validation failure of a Config.
var ErrInvalid = errors.New("config: invalid configuration")

// StageConfig is one fire stage profile.
type StageConfig struct {
	DiffusionRate   float64 `yaml:"diffusion_rate"`
	Amplification   float64 `yaml:"amplification"`
	Passes          int     `yaml:"passes"`
	SafetyThreshold float64 `yaml:"safety_threshold"`
}

// StagesConfig holds the three stage profiles.
type StagesConfig struct {
	Initial StageConfig `yaml:"initial"`
	Growth  StageConfig `yaml:"growth"`
	Spread  StageConfig `yaml:"spread"`
}

// FireConfig configures the fire snapshot.
type FireConfig struct {
	Stages StagesConfig `yaml:"stages"`
}

// CostConfig configures the cost field.
type CostConfig struct {
	PenaltyWeight float64 `yaml:"penalty_weight"`
}

// ACOConfig configures the ant colony.
type ACOConfig struct {
	Ants        int     `yaml:"ants"`
	Alpha       float64 `yaml:"alpha"`
	Beta        float64 `yaml:"beta"`
	Rho         float64 `yaml:"rho"`
	Q           float64 `yaml:"q"`
	MaxIter     int     `yaml:"max_iter"`
	MaxSteps    int     `yaml:"max_steps"`
	Tau0        float64 `yaml:"tau0"`
	TauMin      float64 `yaml:"tau_min"`
	TauMax      float64 `yaml:"tau_max"`
	EliteFactor float64 `yaml:"elite_factor"`
	PruneFactor float64 `yaml:"prune_factor"`
	Workers     int     `yaml:"workers"`
	Seed        int64   `yaml:"seed"`
}

// AStarConfig configures the fallback search.
type AStarConfig struct {
	CheckEvery int `yaml:"check_every"`
}

// RouteConfig configures post-processing.
type RouteConfig struct {
	// AngleToleranceDeg is in degrees; the route package works in radians.
	AngleToleranceDeg float64 `yaml:"angle_tolerance_deg"`
	CellSize          float64 `yaml:"cell_size"`
}

// PlannerConfig configures orchestration.
type PlannerConfig struct {
	ACOTimeout      time.Duration `yaml:"aco_timeout"`
	AStarTimeout    time.Duration `yaml:"astar_timeout"`
	VerifyWithAStar bool          `yaml:"verify_with_astar"`
}

// Config models the YAML file.
type Config struct {
	// Floors lists one layout file per floor, floor 0 first. Relative
	// paths are resolved against Dir.
	Floors  []string      `yaml:"floors"`
	Fire    FireConfig    `yaml:"fire"`
	Cost    CostConfig    `yaml:"cost"`
	ACO     ACOConfig     `yaml:"aco"`
	AStar   AStarConfig   `yaml:"astar"`
	Route   RouteConfig   `yaml:"route"`
	Planner PlannerConfig `yaml:"planner"`

	// Dir is the directory of the loaded file, empty for Parse and Default.
	Dir string `yaml:"-"`
}

// Default returns the configuration equivalent to planner.DefaultOptions.
func Default() *Config {
	d := planner.DefaultOptions()
	stage := func(s firefield.Stage) StageConfig {
		p := d.Fire.Profiles[s]
		return StageConfig{
			DiffusionRate:   p.DiffusionRate,
			Amplification:   p.Amplification,
			Passes:          p.Passes,
			SafetyThreshold: p.SafetyThreshold,
		}
	}
	return &Config{
		Fire: FireConfig{Stages: StagesConfig{
			Initial: stage(firefield.StageInitial),
			Growth:  stage(firefield.StageGrowth),
			Spread:  stage(firefield.StageSpread),
		}},
		Cost: CostConfig{PenaltyWeight: d.Cost.PenaltyWeight},
		ACO: ACOConfig{
			Ants:        d.ACO.Ants,
			Alpha:       d.ACO.Alpha,
			Beta:        d.ACO.Beta,
			Rho:         d.ACO.Rho,
			Q:           d.ACO.Q,
			MaxIter:     d.ACO.MaxIter,
			MaxSteps:    d.ACO.MaxSteps,
			Tau0:        d.ACO.Tau0,
			TauMin:      d.ACO.TauMin,
			TauMax:      d.ACO.TauMax,
			EliteFactor: d.ACO.EliteFactor,
			PruneFactor: d.ACO.PruneFactor,
			Workers:     d.ACO.Workers,
			Seed:        d.ACO.Seed,
		},
		AStar: AStarConfig{CheckEvery: d.AStar.CheckEvery},
		Route: RouteConfig{
			AngleToleranceDeg: d.Route.AngleTolerance * 180 / math.Pi,
			CellSize:          d.Route.CellSize,
		},
		Planner: PlannerConfig{
			ACOTimeout:      d.ACOTimeout,
			AStarTimeout:    d.AStarTimeout,
			VerifyWithAStar: d.VerifyWithAStar,
		},
	}
}

// Load reads and validates the file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Dir = filepath.Dir(path)
	return cfg, nil
}

// Parse decodes data over Default and validates the result. An empty
// document yields the defaults.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration by building the planner options.
func (c *Config) Validate() error {
	if err := c.PlannerOptions().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// PlannerOptions maps c onto the package options.
func (c *Config) PlannerOptions() planner.Options {
	o := planner.DefaultOptions()
	profile := func(s StageConfig) firefield.Profile {
		return firefield.Profile{
			DiffusionRate:   s.DiffusionRate,
			Amplification:   s.Amplification,
			Passes:          s.Passes,
			SafetyThreshold: s.SafetyThreshold,
		}
	}
	o.Fire.Profiles = map[firefield.Stage]firefield.Profile{
		firefield.StageInitial: profile(c.Fire.Stages.Initial),
		firefield.StageGrowth:  profile(c.Fire.Stages.Growth),
		firefield.StageSpread:  profile(c.Fire.Stages.Spread),
	}
	o.Cost.PenaltyWeight = c.Cost.PenaltyWeight
	o.ACO = aco.Options{
		Ants:        c.ACO.Ants,
		Alpha:       c.ACO.Alpha,
		Beta:        c.ACO.Beta,
		Rho:         c.ACO.Rho,
		Q:           c.ACO.Q,
		MaxIter:     c.ACO.MaxIter,
		MaxSteps:    c.ACO.MaxSteps,
		Tau0:        c.ACO.Tau0,
		TauMin:      c.ACO.TauMin,
		TauMax:      c.ACO.TauMax,
		EliteFactor: c.ACO.EliteFactor,
		PruneFactor: c.ACO.PruneFactor,
		Workers:     c.ACO.Workers,
		Seed:        c.ACO.Seed,
	}
	o.AStar.CheckEvery = c.AStar.CheckEvery
	o.Route.AngleTolerance = c.Route.AngleToleranceDeg * math.Pi / 180
	o.Route.CellSize = c.Route.CellSize
	o.ACOTimeout = c.Planner.ACOTimeout
	o.AStarTimeout = c.Planner.AStarTimeout
	o.VerifyWithAStar = c.Planner.VerifyWithAStar
	return o
}

// FloorPaths returns Floors with relative entries resolved against Dir.
func (c *Config) FloorPaths() []string {
	out := make([]string, len(c.Floors))
	for i, p := range c.Floors {
		if c.Dir != "" && !filepath.IsAbs(p) {
			p = filepath.Join(c.Dir, p)
		}
		out[i] = p
	}
	return out
}

// Building loads the configured floor files.
func (c *Config) Building() (*gridgraph.Building, error) {
	if len(c.Floors) == 0 {
		return nil, fmt.Errorf("%w: no floors configured", ErrInvalid)
	}
	return gridgraph.LoadFloorFiles(c.FloorPaths()...)
}
