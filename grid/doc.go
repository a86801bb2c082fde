// Package grid defines the binary cell model shared by every stage of the
// cavenav pipeline: the fine occupancy grid produced by the generator and the
// coarser navigability grid derived from an agent footprint.
//
// What:
//
//   - Grid is a fixed Rows×Cols row-major array of cell states (Open or Wall),
//     origin at the top-left corner.
//   - Coord is an integer (Row, Col) pair; every grid uses the same convention.
//   - Offsets4 and Offsets8 are the neighbor tables used by flood fills,
//     searches and ray casts.
//
// Why:
//
//   - One representation for both resolutions keeps the generate → reduce →
//     repair → route → analyze hand-offs free of conversions.
//   - The array contract (0 = open, 1 = wall) is what external writers of world
//     files and bitmaps consume; FromRows/ToRows convert at that boundary.
//
// Ownership:
//
//	A Grid is mutated in place by at most one stage at a time. It is not safe
//	for concurrent mutation; Clone before handing a grid to another goroutine.
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadCellValue: an input value is neither 0 nor 1.
package grid
