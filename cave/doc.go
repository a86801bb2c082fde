// Package cave generates binary occupancy grids ("cave" maps) by random
// seeding followed by cellular-automata smoothing.
//
// What:
//
//   - The first and last rows are always walls; they bound every later flood fill.
//   - Every other cell is a wall with independent probability FillProbability.
//   - SmoothIterations synchronous passes then apply the 4/2 rule: a cell with
//     more than 4 wall neighbors becomes a wall, fewer than 2 becomes open,
//     otherwise it keeps its state.
//
// Neighborhood policy:
//
//	Neighbor positions above the first row or below the last row count as walls;
//	positions left or right of the grid are absent and never counted. Open side
//	edges are what let the left and right regions of a cave meet.
//
// Determinism:
//
//	With WithSeed (or WithRand) the output is fully reproducible across runs.
//	Without either, a time-derived seed is used.
//
// Complexity:
//
//   - Time:   O(rows×cols×(1+SmoothIterations×9))
//   - Memory: O(rows×cols); each pass writes into a second buffer.
//
// Errors:
//
//   - ErrBadDimensions: rows or cols ≤ 0.
//   - ErrBadProbability: FillProbability outside [0,1].
//   - ErrBadIterations: SmoothIterations < 0.
package cave
