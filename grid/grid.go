package grid

import (
	"strings"
)

// New returns a rows×cols grid with every cell Open.
// Returns ErrEmptyGrid if rows or cols is not positive.
// Complexity: O(rows×cols) time and memory.
func New(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyGrid
	}
	cells := make([][]State, rows)
	for r := range cells {
		cells[r] = make([]State, cols)
	}
	return &Grid{Rows: rows, Cols: cols, Cells: cells}, nil
}

// FromRows builds a Grid from a non-empty, rectangular 0/1 array.
// It deep-copies the input so later edits to values do not leak into the grid.
// Returns ErrEmptyGrid, ErrNonRectangular or ErrBadCellValue.
// Complexity: O(rows×cols) time and memory.
func FromRows(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	g, _ := New(h, w)
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			switch values[r][c] {
			case 0:
			case 1:
				g.Cells[r][c] = Wall
			default:
				return nil, ErrBadCellValue
			}
		}
	}
	return g, nil
}

// MustFromRows is like FromRows but panics on invalid input.
// Intended for fixtures in tests and examples.
func MustFromRows(values [][]int) *Grid {
	g, err := FromRows(values)
	if err != nil {
		panic(err)
	}
	return g
}

// ToRows returns the grid as a fresh 0/1 array, the boundary format consumed by
// world-file and bitmap writers.
func (g *Grid) ToRows() [][]int {
	out := make([][]int, g.Rows)
	for r := 0; r < g.Rows; r++ {
		out[r] = make([]int, g.Cols)
		for c := 0; c < g.Cols; c++ {
			out[r][c] = int(g.Cells[r][c])
		}
	}
	return out
}

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.Rows && c.Col >= 0 && c.Col < g.Cols
}

// At returns the state at c. c must be in bounds.
func (g *Grid) At(c Coord) State {
	return g.Cells[c.Row][c.Col]
}

// Set stores s at c. c must be in bounds.
func (g *Grid) Set(c Coord, s State) {
	g.Cells[c.Row][c.Col] = s
}

// IsWall reports whether the in-bounds cell c is a wall.
func (g *Grid) IsWall(c Coord) bool {
	return g.Cells[c.Row][c.Col] == Wall
}

// IsOpen reports whether c is in bounds and open.
func (g *Grid) IsOpen(c Coord) bool {
	return g.InBounds(c) && g.Cells[c.Row][c.Col] == Open
}

// CountWalls returns the number of wall cells.
func (g *Grid) CountWalls() int {
	n := 0
	for _, row := range g.Cells {
		for _, s := range row {
			if s == Wall {
				n++
			}
		}
	}
	return n
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	cp := &Grid{Rows: g.Rows, Cols: g.Cols, Cells: make([][]State, g.Rows)}
	for r := range g.Cells {
		cp.Cells[r] = make([]State, g.Cols)
		copy(cp.Cells[r], g.Cells[r])
	}
	return cp
}

// Equal reports whether g and other have the same shape and cell states.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.Rows != other.Rows || g.Cols != other.Cols {
		return false
	}
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			if g.Cells[r][c] != other.Cells[r][c] {
				return false
			}
		}
	}
	return true
}

// String renders the grid one line per row, '#' for walls and '.' for open cells.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.Rows * (g.Cols + 1))
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			if g.Cells[r][c] == Wall {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
