package astar

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/cavenav/grid"
	"github.com/zyedidia/generic/mapset"
)

// Plan returns one continuous path visiting waypoints in order.
//
// Preconditions, checked before any search (in order):
//  1. g is non-nil (ErrNilGrid).
//  2. At least two waypoints (ErrTooFewWaypoints).
//  3. Every waypoint is inside g (ErrWaypointOutOfBounds) and open (ErrWaypointBlocked).
//
// A leg that cannot be routed fails the whole plan with ErrSearchExhausted,
// wrapped with the leg's endpoints.
func Plan(g *grid.Grid, waypoints []grid.Coord) (Path, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if len(waypoints) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewWaypoints, len(waypoints))
	}
	for _, w := range waypoints {
		if err := checkWaypoint(g, w); err != nil {
			return nil, err
		}
	}

	var out Path
	for i := 0; i+1 < len(waypoints); i++ {
		leg, err := search(g, waypoints[i], waypoints[i+1])
		if err != nil {
			return nil, fmt.Errorf("leg %d: %w", i, err)
		}
		if i > 0 {
			leg = leg[1:]
		}
		out = append(out, leg...)
	}
	return out, nil
}

// Search returns the turn-constrained path from start to goal.
// start == goal yields the single-cell path.
func Search(g *grid.Grid, start, goal grid.Coord) (Path, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	for _, w := range []grid.Coord{start, goal} {
		if err := checkWaypoint(g, w); err != nil {
			return nil, err
		}
	}
	return search(g, start, goal)
}

func checkWaypoint(g *grid.Grid, w grid.Coord) error {
	if !g.InBounds(w) {
		return fmt.Errorf("%w: %v on %d×%d grid", ErrWaypointOutOfBounds, w, g.Rows, g.Cols)
	}
	if g.IsWall(w) {
		return fmt.Errorf("%w: %v", ErrWaypointBlocked, w)
	}
	return nil
}

// runner holds the transient state of a single search.
type runner struct {
	g      *grid.Grid
	goal   grid.Coord
	arena  []node
	open   openPQ
	inOpen map[grid.Coord]*openItem
	closed mapset.Set[grid.Coord]
	seq    uint64
}

func search(g *grid.Grid, start, goal grid.Coord) (Path, error) {
	r := &runner{
		g:      g,
		goal:   goal,
		inOpen: make(map[grid.Coord]*openItem),
		closed: mapset.New[grid.Coord](),
	}
	heap.Init(&r.open)
	r.push(node{at: start, parent: -1, dir: noDir, h: r.heuristic(start)})

	for r.open.Len() > 0 {
		it := heap.Pop(&r.open).(*openItem)
		cur := r.arena[it.node]
		delete(r.inOpen, cur.at)
		if r.closed.Has(cur.at) {
			continue
		}
		r.closed.Put(cur.at)

		if cur.at == goal {
			return r.reconstruct(it.node), nil
		}
		r.expand(it.node)
	}
	return nil, fmt.Errorf("%w: %v -> %v", ErrSearchExhausted, start, goal)
}

// expand offers every legal successor of arena[idx] to the open set.
func (r *runner) expand(idx int) {
	cur := r.arena[idx]
	dirs := allDirs
	if cur.dir != noDir {
		t := turns[cur.dir]
		dirs = t[:]
	}

	for _, d := range dirs {
		off := grid.Offsets8[d]
		child := cur.at.Add(off[0], off[1])
		if !r.g.InBounds(child) || r.g.IsWall(child) {
			continue
		}
		// no squeezing between two diagonal walls
		if off[0] != 0 && off[1] != 0 &&
			r.g.IsWall(cur.at.Add(off[0], 0)) && r.g.IsWall(cur.at.Add(0, off[1])) {
			continue
		}
		if r.closed.Has(child) {
			continue
		}

		cand := node{at: child, g: cur.g + 1, parent: idx, dir: d, h: r.heuristic(child)}
		if ex, ok := r.inOpen[child]; ok {
			if r.arena[ex.node].g <= cand.g {
				continue
			}
			cand.f = float64(cand.g) + cand.h
			r.arena = append(r.arena, cand)
			ex.node = len(r.arena) - 1
			ex.f = cand.f
			ex.seq = r.nextSeq()
			heap.Fix(&r.open, ex.index)
			continue
		}
		r.push(cand)
	}
}

func (r *runner) push(n node) {
	n.f = float64(n.g) + n.h
	r.arena = append(r.arena, n)
	it := &openItem{node: len(r.arena) - 1, f: n.f, seq: r.nextSeq()}
	heap.Push(&r.open, it)
	r.inOpen[n.at] = it
}

func (r *runner) nextSeq() uint64 {
	r.seq++
	return r.seq
}

func (r *runner) heuristic(c grid.Coord) float64 {
	return math.Hypot(float64(c.Row-r.goal.Row), float64(c.Col-r.goal.Col))
}

// reconstruct walks parent links from arena[idx] to the root.
func (r *runner) reconstruct(idx int) Path {
	var rev Path
	for i := idx; i >= 0; i = r.arena[i].parent {
		rev = append(rev, r.arena[i].at)
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return rev
}

// openItem is a heap entry pointing at an arena record.
type openItem struct {
	node  int     // arena index
	f     float64 // priority
	seq   uint64  // insertion order, breaks ties on f
	index int     // position in the heap, maintained by openPQ
}

// openPQ is a min-heap of *openItem ordered by (f, seq).
type openPQ []*openItem

func (pq openPQ) Len() int { return len(pq) }

func (pq openPQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	return pq[i].seq < pq[j].seq
}

func (pq openPQ) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *openPQ) Push(x interface{}) {
	it := x.(*openItem)
	it.index = len(*pq)
	*pq = append(*pq, it)
}

func (pq *openPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	it.index = -1
	*pq = old[:n-1]
	return it
}
