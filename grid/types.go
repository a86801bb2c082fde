package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrBadCellValue indicates an input cell value other than 0 or 1.
	ErrBadCellValue = errors.New("grid: cell values must be 0 (open) or 1 (wall)")
)

// State is the occupancy of a single cell.
type State uint8

const (
	// Open is a traversable cell (array value 0).
	Open State = iota
	// Wall is an obstacle cell (array value 1).
	Wall
)

// String returns "open" or "wall".
func (s State) String() string {
	if s == Wall {
		return "wall"
	}
	return "open"
}

// Coord addresses a cell by row and column.
type Coord struct {
	Row, Col int
}

// Add returns c shifted by (dr, dc).
func (c Coord) Add(dr, dc int) Coord {
	return Coord{Row: c.Row + dr, Col: c.Col + dc}
}

// String formats c as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Offsets4 lists the orthogonal neighbor offsets (dRow, dCol): up, right, down, left.
var Offsets4 = [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// Offsets8 lists all eight neighbor offsets (dRow, dCol), clockwise from east:
// E, SE, S, SW, W, NW, N, NE.
var Offsets8 = [8][2]int{{0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}, {-1, 0}, {-1, 1}}

// Grid is a Rows×Cols binary occupancy map.
// Cells[r][c] holds the state at row r, column c.
type Grid struct {
	Rows, Cols int
	Cells      [][]State
}
