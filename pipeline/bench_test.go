package pipeline_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/cavenav/pipeline"
)

// BenchmarkRun measures one default-sized map, analysis included.
func BenchmarkRun(b *testing.B) {
	ctx := context.Background()
	for i := 0; i < b.N; i++ {
		_, _ = pipeline.Run(ctx, pipeline.DefaultConfig().WithSeed(int64(i)+1))
	}
}
