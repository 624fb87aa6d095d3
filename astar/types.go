// Package astar defines core types and configuration options
// for the A* search over a fire cost field.
//
// Options:
//
//	– CheckEvery: how many expansions run between context checks.
//
// Errors (sentinel):
//
//	– ErrNoPath      if no traversable exit is reachable from the start.
//	– ErrTimeout     if the context ends during the search.
//	– ErrBadOptions  if CheckEvery < 1.
package astar

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/evacroute/gridgraph"
)

// Sentinel errors returned by Search.
var (
	// ErrNoPath indicates that no exit is reachable over traversable cells.
	ErrNoPath = errors.New("astar: no path to any exit")

	// ErrTimeout indicates that the context ended before the search finished.
	ErrTimeout = errors.New("astar: search timed out")

	// ErrBadOptions indicates invalid search options.
	ErrBadOptions = errors.New("astar: invalid options")
)

// DefaultCheckEvery is the default number of expansions between context checks.
const DefaultCheckEvery = 1024

// Options configures Search.
type Options struct {
	// CheckEvery is the number of node expansions between ctx.Err() checks.
	CheckEvery int
}

// DefaultOptions returns Options{CheckEvery: DefaultCheckEvery}.
func DefaultOptions() Options {
	return Options{CheckEvery: DefaultCheckEvery}
}

// Validate reports ErrBadOptions for CheckEvery < 1.
func (o Options) Validate() error {
	if o.CheckEvery < 1 {
		return fmt.Errorf("%w: check interval %d < 1", ErrBadOptions, o.CheckEvery)
	}
	return nil
}

// Result is a cost-optimal route.
type Result struct {
	// Path runs from the start to the reached exit, both included.
	Path []gridgraph.Cell
	// Cost is the cost-field cost of Path.
	Cost float64
	// Expanded counts finalized cells.
	Expanded int
}
