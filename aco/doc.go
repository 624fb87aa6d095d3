// Package aco implements a request-scoped ant colony search for a low-cost
// evacuation route over a costfield.Field.
//
// Per iteration:
//
//   - Construction (parallel): each of m ants walks from the start, choosing
//     an unvisited neighbour v of u with probability proportional to
//     τ(u→v)^α · η(u→v)^β, where η(u→v) = 1 / (cost(u→v) + d(v)) and d(v)
//     is the octile distance from v to the nearest exit. An ant that hits a
//     dead end or its step budget fails.
//   - Update (exclusive): τ ← τ·(1-ρ) on every edge, then every successful
//     ant deposits Q / cost on each edge it used.
//
// The best successful walk over all iterations is returned. Every ant draws
// from its own stream derived from (Seed, iteration, ant), so a seed fully
// determines the result regardless of Workers or scheduling.
//
// Defaults: m=30, α=1, β=5, ρ=0.5, Q=15, 50 iterations, τ0=0.1.
//
// Errors:
//
//   - ErrNoSolution: no ant ever reached an exit.
//   - ErrTimeout:    the context ended; checked between iterations only.
//   - ErrBadOptions: invalid parameters.
package aco
