// Package cavenav generates cave-like occupancy maps, sizes them to a robot's
// footprint, guarantees an edge-to-edge route and measures how hard that route
// is to drive.
//
// 🚀 What is cavenav?
//
//	A small, deterministic, pure-Go pipeline that brings together:
//		• Generation: random fill + cellular-automata smoothing
//		• Footprint reduction: k×k window erosion and its inverse
//		• Repair: flood-fill regions, largest edge regions, L-shaped corridors
//		• Routing: turn-constrained A* (≤45° heading change, no corner cutting)
//		• Difficulty: nearest obstacle, density, visibility, dispersion,
//		  directional widths, tortuosity and path averages
//		• Batching: one full pipeline per worker, seeded and replayable
//
// ✨ Why cavenav?
//
//   - Reproducible: every run reports its seed; the same seed gives the same map
//   - Plain data: grids are [][]State, paths are []Coord, fields are [][]float64
//   - Single-owner: each stage fully owns the grid it mutates; no locks needed
//
// Packages, leaf-first:
//
//	grid/        Grid, Coord, neighbor tables, ASCII rendering
//	cave/        Generate, seeded RNG helpers
//	footprint/   Reduce, Restore, Cover
//	region/      Fill, Components, Connector (LargestTouching, Connect)
//	astar/       Search, Plan
//	difficulty/  Analyzer per-cell metrics, fields, PathAverages, Tortuosity
//	pipeline/    Run, RunBatch, Sweep
//	cmd/cavegen  command-line front end
//
// Quick ASCII example (k=1, '@' endpoints, '*' route):
//
//	##########
//	@*....##..
//	..*...##..
//	...****..@
//	.......**.
//	##########
//
//	go run ./cmd/cavegen -rows 25 -cols 25 -fill 0.35 -smooth 4 -kernel 4 -seed 7
package cavenav
