// Package planner sequences one evacuation planning request through the
// engine:
//
//	validate → fire snapshot → cost field → ant colony (bounded)
//	         → on no solution or timeout: A* (bounded) → post-process
//
// Invalid input and unsafe start/exit cells are rejected before any search.
// Ant colony failures are recovered by the A* fallback and never surfaced;
// only a true absence of a feasible route, an A* timeout, or invalid input
// reaches the caller, always as an *Error naming the stage, floor, start and
// exits of the request.
//
// A Planner shares its Building read-only; every fire field, cost field and
// pheromone map belongs to a single Plan call, so Plan is safe for
// concurrent use.
package planner
