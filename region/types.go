package region

import (
	"github.com/katalvlaran/cavenav/grid"
)

// Edge selects the grid column a region must touch.
type Edge int

const (
	// Left is column 0.
	Left Edge = iota
	// Right is the last column.
	Right
)

// String returns "left" or "right".
func (e Edge) String() string {
	if e == Right {
		return "right"
	}
	return "left"
}

// column returns the column index of e on a grid with cols columns.
func (e Edge) column(cols int) int {
	if e == Right {
		return cols - 1
	}
	return 0
}

// Region is a set of open cells over a Rows×Cols grid.
// Mask[r][c] is true for member cells; Size counts them.
type Region struct {
	Rows, Cols int
	Mask       [][]bool
	Size       int
}

// newRegion returns an empty region shaped like g.
func newRegion(rows, cols int) Region {
	mask := make([][]bool, rows)
	for r := range mask {
		mask[r] = make([]bool, cols)
	}
	return Region{Rows: rows, Cols: cols, Mask: mask}
}

// Contains reports whether c is a member. Out-of-shape coordinates are not members.
func (rg Region) Contains(c grid.Coord) bool {
	return c.Row >= 0 && c.Row < rg.Rows && c.Col >= 0 && c.Col < rg.Cols && rg.Mask[c.Row][c.Col]
}

// Cells lists the members in row-major order.
func (rg Region) Cells() []grid.Coord {
	out := make([]grid.Coord, 0, rg.Size)
	for r := 0; r < rg.Rows; r++ {
		for c := 0; c < rg.Cols; c++ {
			if rg.Mask[r][c] {
				out = append(out, grid.Coord{Row: r, Col: c})
			}
		}
	}
	return out
}

// OnColumn lists the member rows of column col, top to bottom.
func (rg Region) OnColumn(col int) []int {
	var rows []int
	if col < 0 || col >= rg.Cols {
		return rows
	}
	for r := 0; r < rg.Rows; r++ {
		if rg.Mask[r][col] {
			rows = append(rows, r)
		}
	}
	return rows
}

func (rg *Region) add(c grid.Coord) {
	if !rg.Mask[c.Row][c.Col] {
		rg.Mask[c.Row][c.Col] = true
		rg.Size++
	}
}
