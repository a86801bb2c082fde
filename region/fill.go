package region

import (
	"sort"

	"github.com/katalvlaran/cavenav/grid"
)

// Fill returns the 4-connected open region containing start.
// If start is out of bounds or a wall the region is empty.
//
// Time:   O(rows×cols).
// Memory: O(rows×cols) for the mask and worklist.
func Fill(g *grid.Grid, start grid.Coord) Region {
	rg := newRegion(g.Rows, g.Cols)
	flood(g, start, &rg, nil)
	return rg
}

// flood adds to rg every open cell 4-connected to start. When seen is non-nil,
// visited cells are also marked there, letting callers share one visited mask
// across several fills.
func flood(g *grid.Grid, start grid.Coord, rg *Region, seen [][]bool) {
	if !g.IsOpen(start) {
		return
	}
	queue := []grid.Coord{start}
	rg.add(start)
	if seen != nil {
		seen[start.Row][start.Col] = true
	}

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, d := range grid.Offsets4 {
			v := u.Add(d[0], d[1])
			if !g.IsOpen(v) || rg.Mask[v.Row][v.Col] {
				continue
			}
			rg.add(v)
			if seen != nil {
				seen[v.Row][v.Col] = true
			}
			queue = append(queue, v)
		}
	}
}

// Components finds every 4-connected open region of g, largest first.
// Regions of equal size keep row-major discovery order.
//
// Time:   O(rows×cols).
// Memory: O(rows×cols×regions) for the masks.
func Components(g *grid.Grid) []Region {
	seen := make([][]bool, g.Rows)
	for r := range seen {
		seen[r] = make([]bool, g.Cols)
	}

	var comps []Region
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			if g.Cells[r][c] == grid.Wall || seen[r][c] {
				continue
			}
			rg := newRegion(g.Rows, g.Cols)
			flood(g, grid.Coord{Row: r, Col: c}, &rg, seen)
			comps = append(comps, rg)
		}
	}
	sort.SliceStable(comps, func(i, j int) bool { return comps[i].Size > comps[j].Size })
	return comps
}
