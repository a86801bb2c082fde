package astar

import (
	"errors"

	"github.com/katalvlaran/cavenav/grid"
)

// Sentinel errors returned by Search and Plan.
var (
	// ErrNilGrid indicates a nil *grid.Grid.
	ErrNilGrid = errors.New("astar: grid is nil")
	// ErrTooFewWaypoints indicates fewer than two waypoints were given.
	ErrTooFewWaypoints = errors.New("astar: path needs at least two waypoints")
	// ErrWaypointOutOfBounds indicates a waypoint outside the grid.
	ErrWaypointOutOfBounds = errors.New("astar: waypoint outside grid")
	// ErrWaypointBlocked indicates a waypoint on a wall cell.
	ErrWaypointBlocked = errors.New("astar: waypoint is a wall")
	// ErrSearchExhausted indicates the open set emptied before the goal was reached.
	ErrSearchExhausted = errors.New("astar: no turn-constrained route to goal")
)

// Path is an ordered list of 8-connected cells from the first waypoint to the last.
type Path []grid.Coord

// Steps returns the number of moves in p (len(p)-1, or 0 for an empty path).
func (p Path) Steps() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// Contains reports whether c appears in p.
func (p Path) Contains(c grid.Coord) bool {
	for _, pc := range p {
		if pc == c {
			return true
		}
	}
	return false
}

// noDir marks the start node, which may leave in any direction.
const noDir = -1

// turns lists, per incoming direction (index into grid.Offsets8), the legal
// outgoing directions: 45° left, straight, 45° right.
var turns = func() (t [8][3]int) {
	for d := 0; d < 8; d++ {
		t[d] = [3]int{(d + 7) % 8, d, (d + 1) % 8}
	}
	return t
}()

// allDirs is the expansion order from the start node.
var allDirs = []int{0, 1, 2, 3, 4, 5, 6, 7}

// node is one search record in the arena.
type node struct {
	at     grid.Coord
	g      int
	h, f   float64
	parent int // arena index, -1 for the root
	dir    int // direction taken to reach at, noDir for the root
}
