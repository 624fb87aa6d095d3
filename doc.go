// Package evacroute is a fire-aware evacuation route planning engine for
// multi-floor buildings laid out as occupancy grids.
//
// 🚀 What is evacroute?
//
//	A request-scoped planner that brings together:
//		• Grid model: immutable floors of walls and walkable cells, 8-way moves
//		• Fire snapshot: per-stage diffusion of seed intensities (gonum matrices)
//		• Cost field: fire penalty per step, impassable cells above the safety threshold
//		• Ant colony search: parallel, seeded, pheromone-guided
//		• A* search: optimal fallback and correctness oracle
//		• Route post-processing: length, turning points, instructions
//
// Control flow of one request:
//
//	request ─▶ gridgraph + firefield ─▶ costfield ─▶ aco (bounded)
//	                                                 │ no solution / timeout
//	                                                 ▼
//	                                               astar (bounded) ─▶ route ─▶ response
//
// Packages:
//
//	gridgraph/     — Building, neighbours, components, floor file loaders
//	firefield/     — stage profiles and intensity snapshots
//	costfield/     — traversal costs and impassable cells for one floor
//	aco/           — ant colony, pheromone map, seeded RNG streams
//	astar/         — A* over a cost field
//	route/         — turning points and navigation instructions
//	planner/       — orchestration, fallback policy, error taxonomy
//	config/        — YAML tuning file
//	cmd/evacroute/ — command-line front end
//
//	go get github.com/katalvlaran/evacroute
package evacroute
