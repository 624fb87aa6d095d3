package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/evacroute/aco"
	"github.com/katalvlaran/evacroute/config"
	"github.com/katalvlaran/evacroute/firefield"
	"github.com/katalvlaran/evacroute/planner"
)

func TestDefault_MatchesPlannerDefaults(t *testing.T) {
	got := config.Default().PlannerOptions()
	want := planner.DefaultOptions()

	assert.Equal(t, want.Fire.Profiles, got.Fire.Profiles)
	assert.Equal(t, want.Cost, got.Cost)
	assert.Equal(t, want.AStar, got.AStar)
	assert.Equal(t, want.ACOTimeout, got.ACOTimeout)
	assert.Equal(t, want.AStarTimeout, got.AStarTimeout)
	assert.Equal(t, want.ACO.Ants, got.ACO.Ants)
	assert.Equal(t, want.ACO.Beta, got.ACO.Beta)
	assert.InDelta(t, want.Route.AngleTolerance, got.Route.AngleTolerance, 1e-12)
	require.NoError(t, config.Default().Validate())
}

func TestParse_Overrides(t *testing.T) {
	doc := []byte(`
floors: [ground.csv, first.csv]
fire:
  stages:
    spread:
      safety_threshold: 0.3
cost:
  penalty_weight: 35
aco:
  ants: 12
  seed: 99
  tau_min: 0.01
  tau_max: 10
  elite_factor: 2
  prune_factor: 0
route:
  angle_tolerance_deg: 20
  cell_size: 0.5
planner:
  aco_timeout: 750ms
  astar_timeout: 3s
  verify_with_astar: true
`)
	cfg, err := config.Parse(doc)
	require.NoError(t, err)
	assert.Equal(t, []string{"ground.csv", "first.csv"}, cfg.Floors)

	o := cfg.PlannerOptions()
	spread := o.Fire.Profiles[firefield.StageSpread]
	assert.Equal(t, 0.3, spread.SafetyThreshold)
	assert.Equal(t, 0.20, spread.DiffusionRate, "unset keys keep defaults")
	assert.Equal(t, 4, spread.Passes)
	assert.Equal(t, 35.0, o.Cost.PenaltyWeight)
	assert.Equal(t, 12, o.ACO.Ants)
	assert.Equal(t, int64(99), o.ACO.Seed)
	assert.Equal(t, aco.DefaultOptions().Rho, o.ACO.Rho)
	assert.Equal(t, 0.01, o.ACO.TauMin)
	assert.Equal(t, 2.0, o.ACO.EliteFactor)
	assert.Zero(t, o.ACO.PruneFactor, "zero turns pruning off")
	assert.InDelta(t, 0.349066, o.Route.AngleTolerance, 1e-6)
	assert.Equal(t, 0.5, o.Route.CellSize)
	assert.Equal(t, 750*time.Millisecond, o.ACOTimeout)
	assert.Equal(t, 3*time.Second, o.AStarTimeout)
	assert.True(t, o.VerifyWithAStar)
}

func TestParse_Empty(t *testing.T) {
	cfg, err := config.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string]string{
		"UnknownKey":     "aco:\n  antz: 3\n",
		"Syntax":         "aco: [",
		"NegativeAnts":   "aco:\n  ants: -1\n",
		"ZeroPenalty":    "cost:\n  penalty_weight: 0\n",
		"ThresholdRange": "fire:\n  stages:\n    growth:\n      safety_threshold: 1.5\n",
		"ZeroTimeout":    "planner:\n  aco_timeout: 0s\n",
		"BadDuration":    "planner:\n  astar_timeout: soon\n",
		"CellSize":       "route:\n  cell_size: -1\n",
		"PruneFactor":    "aco:\n  prune_factor: 0.5\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse([]byte(doc))
			assert.ErrorIs(t, err, config.ErrInvalid)
		})
	}
}

func TestParse_InvalidKeepsCause(t *testing.T) {
	_, err := config.Parse([]byte("aco:\n  rho: 2\n"))
	require.ErrorIs(t, err, config.ErrInvalid)
	assert.ErrorIs(t, err, aco.ErrBadOptions)
	assert.True(t, planner.IsConfigurationError(err))
}

func TestLoad_ResolvesFloors(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "f0.txt"), []byte("0 0 0\n0 1 0\n0 0 0\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "f1.csv"), []byte(",0,1,2\n0,0,0,0\n1,0,1,0\n2,0,0,3\n"), 0o600))
	cfgPath := filepath.Join(dir, "evacroute.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("floors: [f0.txt, f1.csv]\n"), 0o600))

	cfg, err := config.Load(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, dir, cfg.Dir)
	assert.Equal(t, []string{filepath.Join(dir, "f0.txt"), filepath.Join(dir, "f1.csv")}, cfg.FloorPaths())

	b, err := cfg.Building()
	require.NoError(t, err)
	assert.Equal(t, 2, b.Floors())
	assert.Equal(t, 3, b.Rows())
	assert.Equal(t, 3, b.Cols())
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = config.Default().Building()
	assert.ErrorIs(t, err, config.ErrInvalid)
}
