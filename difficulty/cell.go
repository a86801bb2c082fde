package difficulty

import (
	"math"

	"github.com/katalvlaran/cavenav/grid"
	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/mapset"
)

// Per-cell metrics. Every method expects c inside the grid.

// probe is one entry of the nearest-obstacle frontier.
type probe struct {
	at   grid.Coord
	dist float64 // Euclidean distance from the query cell
	seq  int
}

// NearestObstacle returns the distance from c to the first wall dequeued by a
// best-first search ordered by straight-line distance from c.
//
// Cells are marked visited when pushed, walls included, so each cell enters
// the frontier once. A wall cell returns 0. When no wall is reachable the
// result falls back to half the grid height, (rows−1)/2 in integer division.
func (a *Analyzer) NearestObstacle(c grid.Coord) float64 {
	pq := heap.New(func(x, y probe) bool {
		if x.dist != y.dist {
			return x.dist < y.dist
		}
		return x.seq < y.seq
	})
	visited := mapset.New[grid.Coord]()
	seq := 0
	pq.Push(probe{at: c})
	visited.Put(c)

	for pq.Size() > 0 {
		p, _ := pq.Pop()
		if a.g.IsWall(p.at) {
			return p.dist
		}
		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				n := p.at.Add(dr, dc)
				if !a.g.InBounds(n) || visited.Has(n) {
					continue
				}
				visited.Put(n)
				seq++
				pq.Push(probe{
					at:   n,
					dist: math.Hypot(float64(n.Row-c.Row), float64(n.Col-c.Col)),
					seq:  seq,
				})
			}
		}
	}
	return float64((a.g.Rows - 1) / 2)
}

// Density returns the number of walls in the (2R+1)×(2R+1) window centered on
// c, excluding c. Cells outside the grid are not counted. A wall cell returns
// the saturated value (2R)².
func (a *Analyzer) Density(c grid.Coord) float64 {
	rad := a.opts.DensityRadius
	if a.g.IsWall(c) {
		return float64(4 * rad * rad)
	}
	n := 0
	for r := c.Row - rad; r <= c.Row+rad; r++ {
		for col := c.Col - rad; col <= c.Col+rad; col++ {
			at := grid.Coord{Row: r, Col: col}
			if at != c && a.g.InBounds(at) && a.g.IsWall(at) {
				n++
			}
		}
	}
	return float64(n)
}

// Visibility returns the mean length of the compass rays from c that end on a
// wall. A ray counts c itself and every open cell after it; rays that leave
// the grid first are excluded from the mean. Returns 0 when no ray ends on a wall.
func (a *Analyzer) Visibility(c grid.Coord) float64 {
	total, rays := 0, 0
	for _, off := range grid.Offsets8 {
		n, hit := 0, false
		for at := c; a.g.InBounds(at); at = at.Add(off[0], off[1]) {
			if a.g.IsWall(at) {
				hit = true
				break
			}
			n++
		}
		if hit {
			total += n
			rays++
		}
	}
	if rays == 0 {
		return 0
	}
	return float64(total) / float64(rays)
}

// dispersionRays are the 16 dispersion directions in angular order, each with
// the radius budget one step consumes. Knight moves count double.
var dispersionRays = [16]struct{ dr, dc, cost int }{
	{0, 1, 1}, {1, 2, 2}, {1, 1, 1}, {2, 1, 2},
	{1, 0, 1}, {2, -1, 2}, {1, -1, 1}, {1, -2, 2},
	{0, -1, 1}, {-2, -1, 2}, {-1, -1, 1}, {-1, -2, 2},
	{-1, 0, 1}, {-2, 1, 2}, {-1, 1, 1}, {-1, 2, 2},
}

// Dispersion counts how often "wall within radius" flips between consecutive
// rays of dispersionRays, including the wrap from the last ray to the first.
// A ray stops after spending the radius budget, on a wall, or at the grid
// edge; leaving the grid counts as no wall. A wall cell returns −1.
func (a *Analyzer) Dispersion(c grid.Coord) float64 {
	if a.g.IsWall(c) {
		return -1
	}
	var hit [len(dispersionRays)]bool
	for i, ray := range dispersionRays {
		at := c
		for spent := 0; spent < a.opts.DispersionRadius; spent += ray.cost {
			at = at.Add(ray.dr, ray.dc)
			if !a.g.InBounds(at) {
				break
			}
			if a.g.IsWall(at) {
				hit[i] = true
				break
			}
		}
	}
	flips := 0
	for i := range hit {
		if hit[i] != hit[(i+1)%len(hit)] {
			flips++
		}
	}
	return float64(flips)
}

// Width returns the number of open cells seen from c along axis in both
// senses, stopping at a wall or the grid edge; c itself is not counted.
// A wall cell returns −1.
func (a *Analyzer) Width(c grid.Coord, axis Axis) float64 {
	if a.g.IsWall(c) {
		return -1
	}
	step := axisStep[axis]
	return float64(a.run(c, step[0], step[1]) + a.run(c, -step[0], -step[1]))
}

// run counts open cells from c (exclusive) in direction (dr,dc).
func (a *Analyzer) run(c grid.Coord, dr, dc int) int {
	n := 0
	for at := c.Add(dr, dc); a.g.IsOpen(at); at = at.Add(dr, dc) {
		n++
	}
	return n
}

// CharacteristicDimension returns the smallest Width over Axes, the
// narrowest opening through c. A wall cell returns −1.
func (a *Analyzer) CharacteristicDimension(c grid.Coord) float64 {
	if a.g.IsWall(c) {
		return -1
	}
	best := math.Inf(1)
	for _, axis := range Axes {
		best = math.Min(best, a.Width(c, axis))
	}
	return best
}
