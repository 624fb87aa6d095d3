// SPDX-License-Identifier: MIT

package planner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/evacroute/aco"
	"github.com/katalvlaran/evacroute/astar"
	"github.com/katalvlaran/evacroute/costfield"
	"github.com/katalvlaran/evacroute/firefield"
	"github.com/katalvlaran/evacroute/gridgraph"
	"github.com/katalvlaran/evacroute/route"
)

// Planner plans routes through one Building.
type Planner struct {
	building *gridgraph.Building
	opts     Options
	log      *zap.Logger
}

// New validates opts and returns a Planner over b. A nil logger disables
// logging.
func New(b *gridgraph.Building, opts Options, logger *zap.Logger) (*Planner, error) {
	if b == nil {
		return nil, gridgraph.ErrEmptyGrid
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Planner{building: b, opts: opts, log: logger}, nil
}

// Building returns the shared layout.
func (p *Planner) Building() *gridgraph.Building { return p.building }

// Options returns the planner's options.
func (p *Planner) Options() Options { return p.opts }

// plan is the state of one Plan call.
type plan struct {
	*Planner
	id    string
	req   Request
	stage firefield.Stage
	log   *zap.Logger
}

func (pl *plan) fail(op string, err error) error {
	return &Error{
		Op:        op,
		RequestID: pl.id,
		Stage:     pl.req.Stage,
		Floor:     pl.req.Start.Floor,
		Start:     pl.req.Start,
		Exits:     pl.req.Exits,
		Err:       err,
	}
}

// Plan runs req through validation, fire and cost field construction, the
// bounded ant colony and, when the colony fails or times out, the bounded A*
// fallback, then post-processes the route.
//
// Every returned error is an *Error; use IsInvalidInput,
// IsConfigurationError, IsUnsafe, IsNoPath and IsTimeout to classify it.
func (p *Planner) Plan(ctx context.Context, req Request) (*Response, error) {
	pl := &plan{Planner: p, id: uuid.NewString(), req: req}
	pl.log = p.log.With(
		zap.String("request_id", pl.id),
		zap.String("stage", req.Stage),
		zap.Int("floor", req.Start.Floor),
	)

	// 1) Validate before touching the grid.
	if err := pl.validate(); err != nil {
		pl.log.Debug("request rejected", zap.Error(err))
		return nil, pl.fail("validate", err)
	}

	// 2) Fire snapshot; only a fire on the start floor is considered.
	considered := req.FireFloor == req.Start.Floor
	var (
		fire *firefield.Field
		err  error
	)
	if considered {
		fire, err = firefield.Build(p.building, req.FireSeeds, req.FireFloor, pl.stage, p.opts.Fire)
	} else {
		fire, err = firefield.Zero(p.building, req.Start.Floor, pl.stage, p.opts.Fire)
	}
	if err != nil {
		return nil, pl.fail("fire", err)
	}
	pl.log.Debug("fire snapshot built",
		zap.Bool("fire_considered", considered),
		zap.Float64("max_intensity", fire.Max()),
		zap.Float64("threshold", fire.Threshold()))

	// 3) Cost field; unsafe start or exits end the request here.
	field, err := costfield.Build(p.building, fire, req.Start, req.Exits, p.opts.Cost)
	if err != nil {
		pl.log.Info("cost field rejected request", zap.Error(err))
		return nil, pl.fail("cost", err)
	}
	pl.log.Debug("cost field built", zap.Int("traversable_exits", len(field.Exits())))

	// 4) Structural reachability, ignoring fire.
	if err = pl.reachable(); err != nil {
		return nil, pl.fail("reachability", err)
	}

	// 5) Ant colony, then A* when it yields nothing.
	path, cost, algo, err := pl.search(ctx, field)
	if err != nil {
		return nil, err
	}

	// 6) Post-process.
	summary, err := route.Summarize(path, p.opts.Route)
	if err != nil {
		return nil, pl.fail("route", err)
	}
	resp := &Response{
		RequestID:          pl.id,
		Path:               pairs(path),
		Length:             summary.Length,
		Cost:               cost,
		TurningPointsCount: len(summary.TurningPoints),
		TurningPoints:      make([][2]int, len(summary.TurningPoints)),
		Steps:              summary.Instructions,
		FireConsidered:     considered,
		Algorithm:          algo,
		Floor:              req.Start.Floor,
		Stage:              pl.stage,
	}
	for i, tp := range summary.TurningPoints {
		resp.TurningPoints[i] = [2]int{tp.Cell.Row, tp.Cell.Col}
	}
	for _, in := range summary.Instructions {
		resp.NavigationInstructions = append(resp.NavigationInstructions, in.Text)
	}
	pl.log.Info("route planned",
		zap.String("algorithm", string(algo)),
		zap.Int("cells", len(path)),
		zap.Float64("length", resp.Length),
		zap.Float64("cost", cost),
		zap.Int("turning_points", resp.TurningPointsCount))

	return resp, nil
}

// validate checks exits, stage and coordinates in that order.
func (pl *plan) validate() error {
	if len(pl.req.Exits) == 0 {
		return ErrNoExits
	}
	stage, err := firefield.ParseStage(pl.req.Stage)
	if err != nil {
		return err
	}
	pl.stage = stage

	b := pl.building
	if err = b.Validate(pl.req.Start); err != nil {
		return fmt.Errorf("start: %w", err)
	}
	for _, e := range pl.req.Exits {
		if err = b.Validate(e); err != nil {
			return fmt.Errorf("exit: %w", err)
		}
		if e.Floor != pl.req.Start.Floor {
			return fmt.Errorf("%w: exit %v is not on start floor %d", gridgraph.ErrInvalidCoordinate, e, pl.req.Start.Floor)
		}
	}
	if pl.req.FireFloor < 0 || pl.req.FireFloor >= b.Floors() {
		return fmt.Errorf("%w: fire floor %d of %d", gridgraph.ErrInvalidCoordinate, pl.req.FireFloor, b.Floors())
	}
	for _, s := range pl.req.FireSeeds {
		if err = b.Validate(s); err != nil {
			return fmt.Errorf("fire seed: %w", err)
		}
	}
	return nil
}

// reachable fails with astar.ErrNoPath when walls alone separate the start
// from every exit.
func (pl *plan) reachable() error {
	b := pl.building
	labels, _, err := b.ComponentLabels(pl.req.Start.Floor)
	if err != nil {
		return err
	}
	from := labels[b.Index(pl.req.Start.Row, pl.req.Start.Col)]
	for _, e := range pl.req.Exits {
		if labels[b.Index(e.Row, e.Col)] == from {
			return nil
		}
	}
	return fmt.Errorf("%w: walls separate start %v from every exit", astar.ErrNoPath, pl.req.Start)
}

// search runs the bounded colony and falls back to A* on ErrNoSolution or
// ErrTimeout.
func (pl *plan) search(ctx context.Context, field *costfield.Field) ([]gridgraph.Cell, float64, Algorithm, error) {
	opts := pl.opts.ACO
	if pl.req.Seed != 0 {
		opts.Seed = pl.req.Seed
	}
	if pl.log.Core().Enabled(zap.DebugLevel) {
		log := pl.log
		opts.Observer = func(s aco.IterationStats) {
			log.Debug("aco iteration",
				zap.Int("iteration", s.Iteration),
				zap.Int("successes", s.Successes),
				zap.Float64("best_cost", s.BestCost))
		}
	}

	actx, cancel := context.WithTimeout(ctx, pl.opts.ACOTimeout)
	started := time.Now()
	res, err := aco.Run(actx, field, opts)
	cancel()
	switch {
	case err == nil:
		pl.log.Debug("aco finished",
			zap.Float64("cost", res.Cost),
			zap.Int("iterations", res.Iterations),
			zap.Int("best_iteration", res.BestIteration),
			zap.Duration("elapsed", time.Since(started)))
		if !pl.opts.VerifyWithAStar {
			return res.Path, res.Cost, AlgorithmACO, nil
		}
	case errors.Is(err, aco.ErrNoSolution), errors.Is(err, aco.ErrTimeout):
		pl.log.Info("falling back to a*", zap.Error(err), zap.Int("iterations", res.Iterations))
	default:
		return nil, 0, "", pl.fail("aco", err)
	}

	sctx, cancel := context.WithTimeout(ctx, pl.opts.AStarTimeout)
	defer cancel()
	opt, serr := astar.Search(sctx, field, pl.opts.AStar)
	if serr != nil {
		if err == nil {
			// Verification only; the colony's route stands.
			pl.log.Warn("a* verification failed", zap.Error(serr))
			return res.Path, res.Cost, AlgorithmACO, nil
		}
		return nil, 0, "", pl.fail("astar", serr)
	}
	pl.log.Debug("a* finished", zap.Float64("cost", opt.Cost), zap.Int("expanded", opt.Expanded))
	if err == nil && res.Cost <= opt.Cost {
		return res.Path, res.Cost, AlgorithmACO, nil
	}
	return opt.Path, opt.Cost, AlgorithmAStar, nil
}

func pairs(cells []gridgraph.Cell) [][2]int {
	out := make([][2]int, len(cells))
	for i, c := range cells {
		out[i] = [2]int{c.Row, c.Col}
	}
	return out
}
