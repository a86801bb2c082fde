// Package pipeline runs the full cave-map workflow: generate an occupancy
// grid, reduce it to an agent footprint, repair connectivity between the left
// and right edges, plan a route across and score its difficulty.
//
// What:
//
//   - Run executes one map end to end from a Config and reports every
//     intermediate artifact in a Result.
//   - RunBatch fans independent runs out over a bounded worker pool, one full
//     pipeline per task, optionally retrying unroutable maps with fresh seeds.
//   - Sweep expands a base Config into the standard fill × smoothing grid used
//     for corpus generation.
//
// Stages (each consumes the previous stage's output in full):
//
//  1. cave.Generate builds the fine occupancy grid.
//  2. footprint.Reduce derives the navigability grid for Config.Kernel.
//  3. region.Connector picks the largest left and right regions and joins them.
//  4. footprint.Restore opens the cleared windows in the occupancy grid.
//  5. Start and goal rows are drawn from the left and right edge cells of the
//     two regions; astar.Plan routes between them on the repaired grid.
//  6. difficulty.Analyzer averages metrics along the path (and, if asked,
//     computes every named field) on the repaired grid.
//
// Determinism:
//
//	One *rand.Rand, seeded from Config.Seed (or the clock, when HasSeed is
//	false), drives every random choice in stage order. Result.Seed always holds
//	the seed used, so any run can be replayed.
//
// Cancellation:
//
//	Stages are not interruptible. Run checks its context between stages;
//	RunBatch stops scheduling new runs once its context is done or a run fails.
//
// Errors:
//
//   - ErrBadConfig: Config.Validate rejected the configuration.
//   - Stage errors are wrapped with the stage name and seed; errors.Is reaches
//     the stage sentinel (e.g. astar.ErrSearchExhausted).
package pipeline
