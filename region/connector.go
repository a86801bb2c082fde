package region

import (
	"math/rand"

	"github.com/katalvlaran/cavenav/grid"
	"github.com/zyedidia/generic/mapset"
)

// defaultSeed seeds the connector stream when the caller passes a nil *rand.Rand.
const defaultSeed int64 = 1

// Connector repairs a navigability grid in place and logs every cell it opens.
// It owns g for the duration of the repair; do not share it across goroutines.
type Connector struct {
	g       *grid.Grid
	rng     *rand.Rand
	cleared []grid.Coord
	seen    mapset.Set[grid.Coord]
}

// NewConnector returns a Connector over g. rng picks the row of a forced
// opening when an edge column is fully blocked; nil uses a fixed default seed.
func NewConnector(g *grid.Grid, rng *rand.Rand) *Connector {
	if rng == nil {
		rng = rand.New(rand.NewSource(defaultSeed))
	}
	return &Connector{g: g, rng: rng, seen: mapset.New[grid.Coord]()}
}

// Grid returns the grid under repair.
func (cn *Connector) Grid() *grid.Grid { return cn.g }

// Cleared returns, in the order they were opened, the distinct cells opened by
// LargestTouching and Connect so far.
func (cn *Connector) Cleared() []grid.Coord {
	out := make([]grid.Coord, len(cn.cleared))
	copy(out, cn.cleared)
	return out
}

func (cn *Connector) open(c grid.Coord) {
	cn.g.Set(c, grid.Open)
	if cn.seen.Has(c) {
		return
	}
	cn.seen.Put(c)
	cn.cleared = append(cn.cleared, c)
}

// LargestTouching returns the largest region that has an open cell on edge.
//
// Behavior:
//  1. Scan the edge column top to bottom; flood from every open cell not
//     already covered by an earlier fill.
//  2. Keep the first fill with the strictly greatest size.
//  3. If the column has no open cell, open one at a random interior row
//     (1..rows-2), record it in Cleared, and return the single-cell region.
//     The first and last rows are never opened; a grid with fewer than three
//     rows has no interior row, so the empty region is returned and nothing
//     is cleared.
func (cn *Connector) LargestTouching(edge Edge) Region {
	g := cn.g
	col := edge.column(g.Cols)
	seen := make([][]bool, g.Rows)
	for r := range seen {
		seen[r] = make([]bool, g.Cols)
	}

	best := newRegion(g.Rows, g.Cols)
	for r := 0; r < g.Rows; r++ {
		if g.Cells[r][col] == grid.Wall || seen[r][col] {
			continue
		}
		rg := newRegion(g.Rows, g.Cols)
		flood(g, grid.Coord{Row: r, Col: col}, &rg, seen)
		if rg.Size > best.Size {
			best = rg
		}
	}
	if best.Size > 0 {
		return best
	}

	if g.Rows < 3 {
		return best
	}
	c := grid.Coord{Row: 1 + cn.rng.Intn(g.Rows-2), Col: col}
	cn.open(c)
	best.add(c)
	return best
}

// Connected reports whether a and b share at least one open cell.
// The regions may have different shapes; only common coordinates are compared.
func Connected(a, b Region) bool {
	rows, cols := min(a.Rows, b.Rows), min(a.Cols, b.Cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if a.Mask[r][c] && b.Mask[r][c] {
				return true
			}
		}
	}
	return false
}

// Connect makes a and b reachable from each other by carving an L-shaped
// corridor in the grid, and returns the cells it opened (nil when a and b are
// already connected or either is empty).
//
// The corridor starts at a's rightmost cell (topmost on ties) and ends at b's
// leftmost cell (topmost on ties): first a horizontal run along the start row
// to the end column, then a vertical run along the end column to the end row.
// Each run steps by the sign of its delta; a zero delta carves nothing.
func (cn *Connector) Connect(a, b Region) []grid.Coord {
	if a.Size == 0 || b.Size == 0 || Connected(a, b) {
		return nil
	}

	from := grid.Coord{Row: -1, Col: -1}
	to := grid.Coord{Row: -1, Col: b.Cols}
	for r := 0; r < a.Rows; r++ {
		for c := 0; c < a.Cols; c++ {
			if a.Mask[r][c] && c > from.Col {
				from = grid.Coord{Row: r, Col: c}
			}
		}
	}
	for r := 0; r < b.Rows; r++ {
		for c := 0; c < b.Cols; c++ {
			if b.Mask[r][c] && c < to.Col {
				to = grid.Coord{Row: r, Col: c}
			}
		}
	}

	var carved []grid.Coord
	dc, dr := sign(to.Col-from.Col), sign(to.Row-from.Row)
	for i := 1; i <= abs(to.Col-from.Col); i++ {
		carved = append(carved, grid.Coord{Row: from.Row, Col: from.Col + i*dc})
	}
	for i := 1; i <= abs(to.Row-from.Row); i++ {
		carved = append(carved, grid.Coord{Row: from.Row + i*dr, Col: to.Col})
	}
	for _, c := range carved {
		cn.open(c)
	}
	return carved
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
