// Package region finds open regions of a navigability grid and repairs the
// grid so that a region touching the left edge and a region touching the right
// edge become reachable from each other.
//
// What:
//
//   - Fill floods the 4-connected open region containing a seed cell.
//   - Components lists every open region, largest first.
//   - Connector.LargestTouching returns the largest region with a cell on the
//     chosen edge column; if the column is fully blocked it opens one random
//     interior cell there instead, so the result is never empty.
//   - Connected reports whether two regions share an open cell.
//   - Connector.Connect carves an L-shaped corridor (horizontal, then vertical)
//     from the rightmost cell of A to the leftmost cell of B.
//   - Connector.Cleared reports every cell opened so far (forced openings and
//     corridor cells) so the fine occupancy grid can be patched to match.
//
// Traversal:
//
//	Flood fills use an explicit FIFO worklist and a visited mask, never
//	recursion, so grid size is bounded by memory rather than stack depth.
//
// Complexity:
//
//   - Fill, Components:   O(rows×cols), Memory O(rows×cols).
//   - LargestTouching:    O(rows×cols) (each cell joins at most one fill).
//   - Connected:          O(rows×cols).
//   - Connect:            O(rows×cols) scan plus O(rows+cols) carving.
package region
