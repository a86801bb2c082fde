// Package astar plans turn-constrained shortest paths on a binary grid.
//
// What:
//
//   - Search runs A* between two cells over the 8-neighborhood.
//   - Plan chains Search over an ordered waypoint list and concatenates the
//     legs, dropping the duplicated junction cell between legs.
//
// Search rules:
//
//   - g counts steps; orthogonal and diagonal steps both cost 1.
//   - h is the straight-line (Euclidean) distance to the goal; f = g + h.
//   - From the start any of the 8 directions may be taken. From every other
//     node only the incoming direction or a 45° turn either side is legal.
//   - A diagonal step is illegal when both orthogonal cells beside it are walls.
//   - The open node with the lowest f is expanded next; ties go to the entry
//     inserted (or last improved) first.
//   - The closed set is keyed by cell. A candidate is dropped when its cell is
//     closed or already open with g no greater than the candidate's.
//
// Open set:
//
//	An indexed binary heap with decrease-key: an improved candidate rewrites
//	the existing entry (new parent, g, f and a fresh sequence number) instead
//	of pushing a duplicate. Search records live in an arena addressed by index;
//	parent links are arena indices, so reconstruction only reads the arena.
//
// Termination:
//
//	Each cell is expanded at most once, so the search is finite. When the open
//	set empties before the goal is dequeued Search returns ErrSearchExhausted;
//	this happens when the turn and corner rules block every route even though
//	an unconstrained route exists.
//
// Complexity:
//
//   - Time:   O(N log N) for N open cells.
//   - Memory: O(N) for the arena, heap and closed set.
package astar
