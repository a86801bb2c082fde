package pipeline

import (
	"strings"

	"github.com/katalvlaran/cavenav/footprint"
	"github.com/katalvlaran/cavenav/grid"
)

// Glyphs used by the renderers.
const (
	glyphWall = '#'
	glyphOpen = '.'
	glyphPath = '*'
	glyphEnd  = '@'
)

// RenderReduced draws the repaired navigability grid with the path as '*' and
// its endpoints as '@'.
func (res *Result) RenderReduced() string {
	return render(res.Reduced, res.Path, res.Start, res.Goal)
}

// RenderOccupancy draws the occupancy grid with every fine cell covered by the
// agent along the path as '*'. The endpoints mark the top-left cell of their
// footprint windows.
func (res *Result) RenderOccupancy() string {
	return render(res.Occupancy, footprint.Cover(res.Path, res.Config.Kernel), res.Start, res.Goal)
}

func render(g *grid.Grid, overlay []grid.Coord, ends ...grid.Coord) string {
	if g == nil {
		return ""
	}
	canvas := make([][]byte, g.Rows)
	for r := range canvas {
		canvas[r] = make([]byte, g.Cols)
		for c := range canvas[r] {
			canvas[r][c] = glyphOpen
			if g.Cells[r][c] == grid.Wall {
				canvas[r][c] = glyphWall
			}
		}
	}
	for _, c := range overlay {
		if g.InBounds(c) {
			canvas[c.Row][c.Col] = glyphPath
		}
	}
	if len(overlay) > 0 {
		for _, c := range ends {
			if g.InBounds(c) {
				canvas[c.Row][c.Col] = glyphEnd
			}
		}
	}

	var sb strings.Builder
	sb.Grow(g.Rows * (g.Cols + 1))
	for _, row := range canvas {
		sb.Write(row)
		sb.WriteByte('\n')
	}
	return sb.String()
}
