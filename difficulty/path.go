package difficulty

import (
	"fmt"
	"math"

	"github.com/katalvlaran/cavenav/grid"
)

// Tortuosity returns arc length over chord length for path: the sum of the
// Euclidean step lengths divided by the straight-line distance between the
// first and last cell. A straight path gives 1.
//
// Returns ErrDegeneratePath for an empty path or coinciding endpoints.
func Tortuosity(path []grid.Coord) (float64, error) {
	if len(path) == 0 {
		return 0, fmt.Errorf("%w: empty path", ErrDegeneratePath)
	}
	chord := dist(path[0], path[len(path)-1])
	if chord == 0 {
		return 0, fmt.Errorf("%w: endpoints coincide at %v", ErrDegeneratePath, path[0])
	}
	arc := 0.0
	for i := 1; i < len(path); i++ {
		arc += dist(path[i-1], path[i])
	}
	return arc / chord, nil
}

func dist(a, b grid.Coord) float64 {
	return math.Hypot(float64(a.Row-b.Row), float64(a.Col-b.Col))
}

// PathAverages returns the mean nearest-obstacle distance, visibility,
// dispersion and characteristic dimension over the cells of path, together
// with its tortuosity.
//
// Returns ErrPathOutOfBounds when a cell lies outside the grid and
// ErrDegeneratePath when the path is empty or its endpoints coincide.
func (a *Analyzer) PathAverages(path []grid.Coord) (PathStats, error) {
	for i, c := range path {
		if !a.g.InBounds(c) {
			return PathStats{}, fmt.Errorf("%w: index %d at %v on %d×%d grid",
				ErrPathOutOfBounds, i, c, a.g.Rows, a.g.Cols)
		}
	}
	tort, err := Tortuosity(path)
	if err != nil {
		return PathStats{}, err
	}

	var s PathStats
	for _, c := range path {
		s.NearestObstacle += a.NearestObstacle(c)
		s.Visibility += a.Visibility(c)
		s.Dispersion += a.Dispersion(c)
		s.CharacteristicDimension += a.CharacteristicDimension(c)
	}
	n := float64(len(path))
	s.NearestObstacle /= n
	s.Visibility /= n
	s.Dispersion /= n
	s.CharacteristicDimension /= n
	s.Tortuosity = tort
	return s, nil
}
