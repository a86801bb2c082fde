package cave

import (
	"github.com/katalvlaran/cavenav/grid"
)

// Generate produces a rows×cols occupancy grid.
//
// Behavior:
//  1. Validate dimensions and options.
//  2. Set the first and last rows to Wall; every other cell becomes a Wall
//     when rng.Float64() < FillProbability, drawn in row-major order.
//  3. Apply SmoothIterations passes of smooth.
//
// Returns ErrBadDimensions, ErrBadProbability or ErrBadIterations (wrapped).
func Generate(rows, cols int, opts ...Option) (*grid.Grid, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(rows, cols); err != nil {
		return nil, err
	}

	rng := cfg.rand()
	g, _ := grid.New(rows, cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if r == 0 || r == rows-1 || rng.Float64() < cfg.FillProbability {
				g.Cells[r][c] = grid.Wall
			}
		}
	}

	next, _ := grid.New(rows, cols)
	for i := 0; i < cfg.SmoothIterations; i++ {
		smooth(g, next)
		g, next = next, g
	}

	return g, nil
}

// smooth runs one synchronous cellular-automata pass, reading src and writing dst.
// src is never modified, so every cell sees the previous generation.
func smooth(src, dst *grid.Grid) {
	for r := 0; r < src.Rows; r++ {
		for c := 0; c < src.Cols; c++ {
			n := wallNeighbors(src, r, c)
			switch {
			case n > 4:
				dst.Cells[r][c] = grid.Wall
			case n < 2:
				dst.Cells[r][c] = grid.Open
			default:
				dst.Cells[r][c] = src.Cells[r][c]
			}
		}
	}
}

// wallNeighbors counts walls in the 8-neighborhood of (r,c).
// Any position above or below the grid counts as a wall, whatever its column;
// positions only off the left or right edge are skipped.
func wallNeighbors(g *grid.Grid, r, c int) int {
	count := 0
	for i := r - 1; i <= r+1; i++ {
		for j := c - 1; j <= c+1; j++ {
			if i == r && j == c {
				continue
			}
			if i < 0 || i >= g.Rows {
				count++
				continue
			}
			if j < 0 || j >= g.Cols {
				continue
			}
			if g.Cells[i][j] == grid.Wall {
				count++
			}
		}
	}
	return count
}
