// Package difficulty measures how hard a cave map is to navigate, per cell and
// along a planned path.
//
// What:
//
//   - NearestObstacle: Euclidean distance from a cell to the first wall reached
//     by a best-first search over the 8-neighborhood. 0 on a wall.
//   - Density: walls in the (2R+1)×(2R+1) window around a cell, center
//     excluded. Walls report the saturated (2R)².
//   - Visibility: mean ray length over the 8 compass rays that end on a wall.
//     Rays that leave the grid are dropped; the origin counts as one cell.
//   - Dispersion: open/wall transitions around 16 short rays of budget R
//     (compass rays cost 1 per step, knight rays cost 2). −1 on a wall.
//   - Width: open cells visible along an Axis in both senses, origin
//     excluded. −1 on a wall.
//   - CharacteristicDimension: the smallest Width over all axes. −1 on a wall.
//   - Tortuosity and PathAverages summarize a path.
//
// Every per-cell metric has a Field variant that evaluates it over the whole
// grid; Fields returns the full named set.
//
// The Analyzer reads its grid without copying it; do not mutate the grid while
// an Analyzer is in use.
//
// Complexity (N = rows×cols):
//
//   - NearestObstacle: O(d² log d) for a wall at distance d, O(N log N) worst case.
//   - Density:         O(R²).
//   - Dispersion:      O(R).
//   - Visibility, Width, CharacteristicDimension: O(rows+cols).
//
// Errors:
//
//   - ErrNilGrid:         New was given a nil grid.
//   - ErrBadRadius:       a radius option is < 1.
//   - ErrPathOutOfBounds: a path cell lies outside the grid.
//   - ErrDegeneratePath:  a path is empty or its endpoints coincide.
package difficulty
