package difficulty_test

import (
	"fmt"

	"github.com/katalvlaran/cavenav/difficulty"
	"github.com/katalvlaran/cavenav/grid"
)

// ExampleAnalyzer_PathAverages scores a diagonal walk through a 3×3 room.
func ExampleAnalyzer_PathAverages() {
	g := grid.MustFromRows([][]int{
		{1, 1, 1, 1, 1},
		{1, 0, 0, 0, 1},
		{1, 0, 0, 0, 1},
		{1, 0, 0, 0, 1},
		{1, 1, 1, 1, 1},
	})
	a, err := difficulty.New(g, difficulty.WithDensityRadius(1))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	center := grid.Coord{Row: 2, Col: 2}
	fmt.Println("nearest obstacle:", a.NearestObstacle(center))
	fmt.Println("density:", a.Density(center))
	fmt.Println("visibility:", a.Visibility(center))
	fmt.Println("width:", a.Width(center, difficulty.Horizontal))

	s, err := a.PathAverages([]grid.Coord{{Row: 1, Col: 1}, center, {Row: 3, Col: 3}})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("path: closest=%.3f vis=%.3f chardim=%.3f tortuosity=%.1f\n",
		s.NearestObstacle, s.Visibility, s.CharacteristicDimension, s.Tortuosity)
	// Output:
	// nearest obstacle: 2
	// density: 0
	// visibility: 2
	// width: 2
	// path: closest=1.333 vis=1.833 chardim=0.667 tortuosity=1.0
}
