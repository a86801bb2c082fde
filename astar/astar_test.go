package astar_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/cavenav/astar"
	"github.com/katalvlaran/cavenav/cave"
	"github.com/katalvlaran/cavenav/footprint"
	"github.com/katalvlaran/cavenav/grid"
	"github.com/katalvlaran/cavenav/region"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestPlan_Validation(t *testing.T) {
	g := grid.MustFromRows([][]int{
		{1, 1, 1},
		{0, 0, 0},
		{1, 1, 1},
	})
	cases := []struct {
		name string
		g    *grid.Grid
		wps  []grid.Coord
		err  error
	}{
		{"NilGrid", nil, []grid.Coord{{Row: 1, Col: 0}, {Row: 1, Col: 2}}, astar.ErrNilGrid},
		{"NoWaypoints", g, nil, astar.ErrTooFewWaypoints},
		{"OneWaypoint", g, []grid.Coord{{Row: 1, Col: 0}}, astar.ErrTooFewWaypoints},
		{"OutOfBounds", g, []grid.Coord{{Row: 1, Col: 0}, {Row: 1, Col: 3}}, astar.ErrWaypointOutOfBounds},
		{"StartOnWall", g, []grid.Coord{{Row: 0, Col: 0}, {Row: 1, Col: 2}}, astar.ErrWaypointBlocked},
		{"LaterWaypointOnWall", g, []grid.Coord{{Row: 1, Col: 0}, {Row: 1, Col: 2}, {Row: 2, Col: 2}}, astar.ErrWaypointBlocked},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := astar.Plan(tc.g, tc.wps)
			assert.ErrorIs(t, err, tc.err)
			assert.Nil(t, p)
		})
	}
}

// ------------------------------------------------------------------------
// 2. Basic routes
// ------------------------------------------------------------------------

// TestPlan_OpenField: on an obstacle-free 10×10 map (walls only on the border
// rows) the route from (1,0) to (8,9) takes max(|Δrow|,|Δcol|) = 9 steps.
func TestPlan_OpenField(t *testing.T) {
	fine, err := cave.Generate(10, 10, cave.WithFillProbability(0), cave.WithSmoothIterations(0), cave.WithSeed(1))
	require.NoError(t, err)
	red, err := footprint.Reduce(fine, 1)
	require.NoError(t, err)

	start, goal := grid.Coord{Row: 1, Col: 0}, grid.Coord{Row: 8, Col: 9}
	p, err := astar.Plan(red, []grid.Coord{start, goal})
	require.NoError(t, err)
	require.Equal(t, start, p[0])
	require.Equal(t, goal, p[len(p)-1])
	assert.Equal(t, 9, p.Steps())
	assertValidLeg(t, red, p)
}

// TestSearch_SameCell returns the single-cell path.
func TestSearch_SameCell(t *testing.T) {
	g, _ := grid.New(3, 3)
	p, err := astar.Search(g, grid.Coord{Row: 1, Col: 1}, grid.Coord{Row: 1, Col: 1})
	require.NoError(t, err)
	assert.Equal(t, astar.Path{{Row: 1, Col: 1}}, p)
	assert.Equal(t, 0, p.Steps())
}

// TestSearch_CornerCutting: a diagonal between two walls is illegal,
// with one side open it is allowed.
func TestSearch_CornerCutting(t *testing.T) {
	blocked := grid.MustFromRows([][]int{
		{0, 1},
		{1, 0},
	})
	_, err := astar.Search(blocked, grid.Coord{Row: 0, Col: 0}, grid.Coord{Row: 1, Col: 1})
	assert.ErrorIs(t, err, astar.ErrSearchExhausted)

	oneSide := grid.MustFromRows([][]int{
		{0, 0},
		{1, 0},
	})
	p, err := astar.Search(oneSide, grid.Coord{Row: 0, Col: 0}, grid.Coord{Row: 1, Col: 1})
	require.NoError(t, err)
	assert.Equal(t, astar.Path{{Row: 0, Col: 0}, {Row: 1, Col: 1}}, p)
}

// TestSearch_HairpinExhausted: the only route needs a 135° turn in a
// one-cell corridor, so the turn constraint leaves no route even though the
// cells are 4-connected.
//
//	# # # # #
//	S . . . #
//	# # # . #
//	G . . . #
//	# # # # #
func TestSearch_HairpinExhausted(t *testing.T) {
	g := grid.MustFromRows([][]int{
		{1, 1, 1, 1, 1},
		{0, 0, 0, 0, 1},
		{1, 1, 1, 0, 1},
		{0, 0, 0, 0, 1},
		{1, 1, 1, 1, 1},
	})
	start, goal := grid.Coord{Row: 1, Col: 0}, grid.Coord{Row: 3, Col: 0}
	require.True(t, region.Fill(g, start).Contains(goal), "unconstrained route exists")

	_, err := astar.Search(g, start, goal)
	assert.ErrorIs(t, err, astar.ErrSearchExhausted)

	_, err = astar.Plan(g, []grid.Coord{start, goal})
	assert.ErrorIs(t, err, astar.ErrSearchExhausted)
}

// TestPlan_Waypoints chains legs and drops the duplicated junction cell.
func TestPlan_Waypoints(t *testing.T) {
	fine, err := cave.Generate(7, 9, cave.WithFillProbability(0), cave.WithSmoothIterations(0), cave.WithSeed(1))
	require.NoError(t, err)
	mid := grid.Coord{Row: 5, Col: 4}
	wps := []grid.Coord{{Row: 1, Col: 0}, mid, {Row: 1, Col: 8}}

	p, err := astar.Plan(fine, wps)
	require.NoError(t, err)
	assert.Equal(t, wps[0], p[0])
	assert.Equal(t, wps[2], p[len(p)-1])

	hits := 0
	for i, c := range p {
		if c == mid {
			hits++
		}
		if i > 0 {
			assert.NotEqual(t, p[i-1], c, "no repeated cell at %d", i)
			assertStep(t, p[i-1], c)
		}
	}
	assert.Equal(t, 1, hits, "junction appears exactly once")

	leg1, err := astar.Search(fine, wps[0], mid)
	require.NoError(t, err)
	leg2, err := astar.Search(fine, mid, wps[2])
	require.NoError(t, err)
	assert.Equal(t, len(leg1)+len(leg2)-1, len(p))
}

// TestSearch_TieGoesToEarlierDirection: around a single pillar the routes
// below and above cost the same, and the south-east successor is queued
// before the north-east one, so the route passes below.
//
//	. . . . .
//	S # . . G
//	. * * . .
func TestSearch_TieGoesToEarlierDirection(t *testing.T) {
	g := grid.MustFromRows([][]int{
		{0, 0, 0, 0, 0},
		{0, 1, 0, 0, 0},
		{0, 0, 0, 0, 0},
	})
	p, err := astar.Search(g, grid.Coord{Row: 1, Col: 0}, grid.Coord{Row: 1, Col: 4})
	require.NoError(t, err)
	assert.Equal(t, astar.Path{
		{Row: 1, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2}, {Row: 1, Col: 3}, {Row: 1, Col: 4},
	}, p)
}

// TestSearch_MatchesLinearScan compares Search against a plain linear-scan
// implementation of the same rules on random maps. Paths must be identical,
// including which of several equal-cost routes is chosen.
func TestSearch_MatchesLinearScan(t *testing.T) {
	const size = 12
	solved := 0
	for seed := int64(1); seed <= 200; seed++ {
		rng := cave.NewRand(seed)
		g, err := grid.New(size, size)
		require.NoError(t, err)
		var open []grid.Coord
		for r := 0; r < size; r++ {
			for c := 0; c < size; c++ {
				at := grid.Coord{Row: r, Col: c}
				if rng.Float64() < 0.3 {
					g.Set(at, grid.Wall)
					continue
				}
				open = append(open, at)
			}
		}
		if len(open) < 2 {
			continue
		}
		start := open[rng.Intn(len(open))]
		goal := open[rng.Intn(len(open))]

		want, ok := linearScanSearch(g, start, goal)
		got, err := astar.Search(g, start, goal)
		if !ok {
			require.True(t, errors.Is(err, astar.ErrSearchExhausted), "seed=%d: want exhausted, got %v", seed, err)
			continue
		}
		require.NoError(t, err, "seed=%d", seed)
		require.Equal(t, want, got, "seed=%d %v -> %v", seed, start, goal)
		solved++
	}
	assert.Greater(t, solved, 20)
}

type scanNode struct {
	at     grid.Coord
	g      int
	f      float64
	seq    uint64
	parent int
	dir    int
}

// linearScanSearch picks the open node with the lowest (f, seq) by scanning
// every open node. Successor order, the corner rule and the counter that
// orders equal f values follow Search.
func linearScanSearch(g *grid.Grid, start, goal grid.Coord) (astar.Path, bool) {
	var (
		nodes  []scanNode
		openAt = map[grid.Coord]int{}
		closed = map[grid.Coord]bool{}
		seq    uint64
	)
	add := func(n scanNode) {
		seq++
		n.seq = seq
		n.f = float64(n.g) + math.Hypot(float64(n.at.Row-goal.Row), float64(n.at.Col-goal.Col))
		nodes = append(nodes, n)
		openAt[n.at] = len(nodes) - 1
	}
	add(scanNode{at: start, parent: -1, dir: -1})

	for len(openAt) > 0 {
		best := -1
		for _, i := range openAt {
			if best < 0 || nodes[i].f < nodes[best].f || (nodes[i].f == nodes[best].f && nodes[i].seq < nodes[best].seq) {
				best = i
			}
		}
		cur := nodes[best]
		delete(openAt, cur.at)
		closed[cur.at] = true

		if cur.at == goal {
			var rev astar.Path
			for i := best; i >= 0; i = nodes[i].parent {
				rev = append(rev, nodes[i].at)
			}
			for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
				rev[i], rev[j] = rev[j], rev[i]
			}
			return rev, true
		}

		dirs := []int{0, 1, 2, 3, 4, 5, 6, 7}
		if cur.dir >= 0 {
			dirs = []int{(cur.dir + 7) % 8, cur.dir, (cur.dir + 1) % 8}
		}
		for _, d := range dirs {
			off := grid.Offsets8[d]
			child := cur.at.Add(off[0], off[1])
			if !g.InBounds(child) || g.IsWall(child) || closed[child] {
				continue
			}
			if off[0] != 0 && off[1] != 0 && g.IsWall(cur.at.Add(off[0], 0)) && g.IsWall(cur.at.Add(0, off[1])) {
				continue
			}
			if ex, ok := openAt[child]; ok && nodes[ex].g <= cur.g+1 {
				continue
			}
			add(scanNode{at: child, g: cur.g + 1, parent: best, dir: d})
		}
	}
	return nil, false
}

// ------------------------------------------------------------------------
// 3. Properties on generated caves
// ------------------------------------------------------------------------

// TestPlan_GeneratedCaves checks step size, wall avoidance, the 45° turn rule
// and determinism on repaired caves.
func TestPlan_GeneratedCaves(t *testing.T) {
	routed := 0
	for seed := int64(1); seed <= 30; seed++ {
		fine, err := cave.Generate(25, 25, cave.WithSeed(seed), cave.WithFillProbability(0.35), cave.WithSmoothIterations(4))
		require.NoError(t, err)
		red, err := footprint.Reduce(fine, 2)
		require.NoError(t, err)

		cn := region.NewConnector(red, cave.NewRand(seed))
		a := cn.LargestTouching(region.Left)
		b := cn.LargestTouching(region.Right)
		require.Positive(t, a.Size, "seed=%d", seed)
		require.Positive(t, b.Size, "seed=%d", seed)
		cn.Connect(a, b)

		start := grid.Coord{Row: a.OnColumn(0)[0], Col: 0}
		goal := grid.Coord{Row: b.OnColumn(red.Cols - 1)[0], Col: red.Cols - 1}
		p, err := astar.Plan(red, []grid.Coord{start, goal})
		if err != nil {
			require.ErrorIs(t, err, astar.ErrSearchExhausted, "seed=%d", seed)
			continue
		}
		routed++
		require.Equal(t, start, p[0])
		require.Equal(t, goal, p[len(p)-1])
		assertValidLeg(t, red, p)

		again, err := astar.Plan(red, []grid.Coord{start, goal})
		require.NoError(t, err)
		require.Equal(t, p, again, "seed=%d must be deterministic", seed)
	}
	assert.Greater(t, routed, 0, "at least one cave must be routable")
}

// assertValidLeg checks single-leg path invariants.
func assertValidLeg(t *testing.T, g *grid.Grid, p astar.Path) {
	t.Helper()
	for i, c := range p {
		require.True(t, g.IsOpen(c), "cell %v at %d must be open", c, i)
		if i == 0 {
			continue
		}
		assertStep(t, p[i-1], c)
		if i >= 2 {
			d1 := dirIndex(p[i-2], p[i-1])
			d2 := dirIndex(p[i-1], c)
			diff := (d2 - d1 + 8) % 8
			require.Contains(t, []int{0, 1, 7}, diff, "turn >45° at %d: %v -> %v -> %v", i, p[i-2], p[i-1], c)
		}
		if dr, dc := c.Row-p[i-1].Row, c.Col-p[i-1].Col; dr != 0 && dc != 0 {
			side1 := grid.Coord{Row: p[i-1].Row + dr, Col: p[i-1].Col}
			side2 := grid.Coord{Row: p[i-1].Row, Col: p[i-1].Col + dc}
			require.False(t, g.IsWall(side1) && g.IsWall(side2), "corner cut at %d", i)
		}
	}
}

func assertStep(t *testing.T, a, b grid.Coord) {
	t.Helper()
	dr, dc := b.Row-a.Row, b.Col-a.Col
	require.True(t, dr >= -1 && dr <= 1 && dc >= -1 && dc <= 1 && (dr != 0 || dc != 0),
		"step %v -> %v is not an 8-connected move", a, b)
}

func dirIndex(a, b grid.Coord) int {
	off := [2]int{b.Row - a.Row, b.Col - a.Col}
	for i, d := range grid.Offsets8 {
		if d == off {
			return i
		}
	}
	return -1
}
