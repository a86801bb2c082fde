package difficulty_test

import (
	"testing"

	"github.com/katalvlaran/cavenav/cave"
	"github.com/katalvlaran/cavenav/difficulty"
)

// BenchmarkFields measures every named field on a 60×60 cave.
func BenchmarkFields(b *testing.B) {
	g, err := cave.Generate(60, 60, cave.WithSeed(7))
	if err != nil {
		b.Fatalf("setup Generate failed: %v", err)
	}
	a, err := difficulty.New(g)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = a.Fields()
	}
}

// BenchmarkNearestObstacleField isolates the best-first search.
func BenchmarkNearestObstacleField(b *testing.B) {
	g, err := cave.Generate(100, 100, cave.WithSeed(7))
	if err != nil {
		b.Fatalf("setup Generate failed: %v", err)
	}
	a, _ := difficulty.New(g)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = a.NearestObstacleField()
	}
}
