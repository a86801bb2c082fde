// Package footprint derives the navigability grid an agent actually plans
// over from a fine occupancy grid, given the side length k of the agent's
// square footprint, and maps changes back again.
//
// Reduced cell (r,c) stands for the fine window [r, r+k) × [c, c+k): it is a
// Wall iff any fine cell in that window is a Wall. The reduced grid therefore
// has (rows−k+1) × (cols−k+1) cells.
//
// Complexity:
//
//   - Reduce:  O(rows×cols×k²) naive window scan, Memory O(rows×cols).
//   - Restore: O(len(cleared)×k²).
//   - Cover:   O(len(coords)×k²).
package footprint

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/cavenav/grid"
	"github.com/zyedidia/generic/mapset"
)

var (
	// ErrBadKernel indicates k < 1 or k larger than either grid dimension.
	ErrBadKernel = errors.New("footprint: kernel size must be within [1, min(rows, cols)]")
	// ErrOutOfRange indicates a reduced coordinate whose window leaves the fine grid.
	ErrOutOfRange = errors.New("footprint: reduced coordinate window outside fine grid")
)

// Reduce returns the navigability grid of fine for footprint size k.
// fine is not modified.
func Reduce(fine *grid.Grid, k int) (*grid.Grid, error) {
	if k < 1 || k > fine.Rows || k > fine.Cols {
		return nil, fmt.Errorf("%w: k=%d for %d×%d grid", ErrBadKernel, k, fine.Rows, fine.Cols)
	}
	out, _ := grid.New(fine.Rows-k+1, fine.Cols-k+1)
	for r := 0; r < out.Rows; r++ {
		for c := 0; c < out.Cols; c++ {
			if !windowOpen(fine, r, c, k) {
				out.Cells[r][c] = grid.Wall
			}
		}
	}
	return out, nil
}

// windowOpen reports whether every cell of the k×k window anchored at (r,c) is open.
func windowOpen(fine *grid.Grid, r, c, k int) bool {
	for i := r; i < r+k; i++ {
		for j := c; j < c+k; j++ {
			if fine.Cells[i][j] == grid.Wall {
				return false
			}
		}
	}
	return true
}

// Restore opens, in place, the k×k fine window of every reduced coordinate in
// cleared, keeping fine consistent with a repaired reduced grid.
// All coordinates are checked before any cell is touched; the first bad one is
// reported as ErrOutOfRange and fine is left unchanged.
func Restore(fine *grid.Grid, cleared []grid.Coord, k int) error {
	if k < 1 || k > fine.Rows || k > fine.Cols {
		return fmt.Errorf("%w: k=%d for %d×%d grid", ErrBadKernel, k, fine.Rows, fine.Cols)
	}
	for _, rc := range cleared {
		if rc.Row < 0 || rc.Col < 0 || rc.Row+k > fine.Rows || rc.Col+k > fine.Cols {
			return fmt.Errorf("%w: %v with k=%d", ErrOutOfRange, rc, k)
		}
	}
	for _, rc := range cleared {
		for i := rc.Row; i < rc.Row+k; i++ {
			for j := rc.Col; j < rc.Col+k; j++ {
				fine.Cells[i][j] = grid.Open
			}
		}
	}
	return nil
}

// Cover returns the distinct fine cells occupied by the windows of coords, in
// first-seen order. Used to lay a reduced-grid path over the occupancy grid.
func Cover(coords []grid.Coord, k int) []grid.Coord {
	if k < 1 {
		return nil
	}
	seen := mapset.New[grid.Coord]()
	out := make([]grid.Coord, 0, len(coords)*k*k)
	for _, rc := range coords {
		for i := rc.Row; i < rc.Row+k; i++ {
			for j := rc.Col; j < rc.Col+k; j++ {
				fc := grid.Coord{Row: i, Col: j}
				if seen.Has(fc) {
					continue
				}
				seen.Put(fc)
				out = append(out, fc)
			}
		}
	}
	return out
}
