package planner

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/evacroute/aco"
	"github.com/katalvlaran/evacroute/astar"
	"github.com/katalvlaran/evacroute/costfield"
	"github.com/katalvlaran/evacroute/firefield"
	"github.com/katalvlaran/evacroute/gridgraph"
	"github.com/katalvlaran/evacroute/route"
)

// ErrNoExits is returned for a request without exits.
var ErrNoExits = costfield.ErrNoExits

// ErrBadOptions indicates invalid planner timeouts.
var ErrBadOptions = errors.New("planner: invalid options")

// Algorithm names the search that produced a route.
type Algorithm string

const (
	AlgorithmACO   Algorithm = "aco"
	AlgorithmAStar Algorithm = "astar"
)

// Request is one planning request.
type Request struct {
	Start     gridgraph.Cell   `json:"start"`
	Exits     []gridgraph.Cell `json:"exits"`
	FireSeeds []gridgraph.Cell `json:"fire_seeds"`
	FireFloor int              `json:"fire_floor"`
	Stage     string           `json:"stage"`
	// Seed overrides Options.ACO.Seed when non-zero.
	Seed int64 `json:"seed,omitempty"`
}

// Response is a planned route. Path and TurningPoints are (row, col) pairs
// on Floor.
type Response struct {
	RequestID              string              `json:"request_id"`
	Path                   [][2]int            `json:"path"`
	Length                 float64             `json:"length"`
	Cost                   float64             `json:"cost"`
	TurningPointsCount     int                 `json:"turning_points_count"`
	TurningPoints          [][2]int            `json:"turning_points"`
	NavigationInstructions []string            `json:"navigation_instructions"`
	Steps                  []route.Instruction `json:"steps"`
	FireConsidered         bool                `json:"fire_considered"`
	Algorithm              Algorithm           `json:"algorithm"`
	Floor                  int                 `json:"floor"`
	Stage                  firefield.Stage     `json:"stage"`
}

// Options configures a Planner.
type Options struct {
	Fire  firefield.Options
	Cost  costfield.Options
	ACO   aco.Options
	AStar astar.Options
	Route route.Options

	// ACOTimeout bounds the ant colony; it is checked between iterations.
	ACOTimeout time.Duration
	// AStarTimeout bounds the fallback search.
	AStarTimeout time.Duration
	// VerifyWithAStar also runs A* after an ant colony success and keeps
	// the cheaper route.
	VerifyWithAStar bool
}

// DefaultOptions returns the package defaults with a 2s colony budget and
// a 5s A* budget.
func DefaultOptions() Options {
	return Options{
		Fire:         firefield.DefaultOptions(),
		Cost:         costfield.DefaultOptions(),
		ACO:          aco.DefaultOptions(),
		AStar:        astar.DefaultOptions(),
		Route:        route.DefaultOptions(),
		ACOTimeout:   2 * time.Second,
		AStarTimeout: 5 * time.Second,
	}
}

// Validate checks every nested option set.
func (o Options) Validate() error {
	if o.ACOTimeout <= 0 || o.AStarTimeout <= 0 {
		return fmt.Errorf("%w: timeouts aco=%v astar=%v must be positive", ErrBadOptions, o.ACOTimeout, o.AStarTimeout)
	}
	for _, err := range []error{
		o.Fire.Validate(), o.Cost.Validate(), o.ACO.Validate(), o.AStar.Validate(), o.Route.Validate(),
	} {
		if err != nil {
			return err
		}
	}
	return nil
}

// Error is a failed Plan call together with the request it came from.
type Error struct {
	// Op is the failing phase: validate, fire, cost, reachability, astar or route.
	Op        string
	RequestID string
	Stage     string
	Floor     int
	Start     gridgraph.Cell
	Exits     []gridgraph.Cell
	Err       error
}

func (e *Error) Error() string {
	return fmt.Sprintf("planner: %s (stage %q, floor %d, start %v, exits %v): %v",
		e.Op, e.Stage, e.Floor, e.Start, e.Exits, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// IsInvalidInput reports whether err rejects the request's coordinates or
// exits.
func IsInvalidInput(err error) bool {
	return errors.Is(err, gridgraph.ErrInvalidCoordinate) || errors.Is(err, ErrNoExits)
}

// IsConfigurationError reports whether err comes from an unknown stage or
// invalid tuning.
func IsConfigurationError(err error) bool {
	for _, target := range []error{
		firefield.ErrUnknownStage, firefield.ErrBadProfile, costfield.ErrBadOptions,
		aco.ErrBadOptions, astar.ErrBadOptions, route.ErrBadOptions, ErrBadOptions,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// IsUnsafe reports whether the start or every exit was impassable.
func IsUnsafe(err error) bool { return errors.Is(err, costfield.ErrStartOrExitUnsafe) }

// IsNoPath reports whether no feasible route exists.
func IsNoPath(err error) bool { return errors.Is(err, astar.ErrNoPath) }

// IsTimeout reports whether the fallback search ran out of time.
func IsTimeout(err error) bool { return errors.Is(err, astar.ErrTimeout) }
