package region_test

import (
	"testing"

	"github.com/katalvlaran/cavenav/cave"
	"github.com/katalvlaran/cavenav/region"
)

// BenchmarkComponents measures region census on a 300×300 cave.
func BenchmarkComponents(b *testing.B) {
	g, err := cave.Generate(300, 300, cave.WithSeed(42))
	if err != nil {
		b.Fatalf("setup Generate failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = region.Components(g)
	}
}

// BenchmarkLargestTouching measures the left-edge scan on the same cave.
func BenchmarkLargestTouching(b *testing.B) {
	g, err := cave.Generate(300, 300, cave.WithSeed(42))
	if err != nil {
		b.Fatalf("setup Generate failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		cn := region.NewConnector(g.Clone(), nil)
		_ = cn.LargestTouching(region.Left)
	}
}
