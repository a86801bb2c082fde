package pipeline

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/katalvlaran/cavenav/astar"
	"github.com/katalvlaran/cavenav/cave"
	"github.com/katalvlaran/cavenav/difficulty"
	"github.com/katalvlaran/cavenav/grid"
)

// ErrBadConfig indicates a Config that cannot produce a map.
var ErrBadConfig = errors.New("pipeline: invalid configuration")

// DefaultKernel is the footprint side length of the reference robot.
const DefaultKernel = 4

// Config holds the parameters of one run.
type Config struct {
	Rows, Cols       int
	FillProbability  float64
	SmoothIterations int

	// Kernel is the footprint side length k.
	Kernel int

	DensityRadius    int
	DispersionRadius int

	// Seed seeds the run when HasSeed is true; otherwise a clock seed is drawn.
	Seed    int64
	HasSeed bool

	// Analyze enables path-averaged difficulty metrics.
	Analyze bool
	// Fields additionally computes every named difficulty field.
	Fields bool
}

// DefaultConfig returns a 25×25 map, fill 0.35, 4 smoothing passes, kernel 4,
// radii 3, path metrics on, fields off, no fixed seed.
func DefaultConfig() Config {
	return Config{
		Rows:             25,
		Cols:             25,
		FillProbability:  cave.DefaultFillProbability,
		SmoothIterations: cave.DefaultSmoothIterations,
		Kernel:           DefaultKernel,
		DensityRadius:    difficulty.DefaultRadius,
		DispersionRadius: difficulty.DefaultRadius,
		Analyze:          true,
	}
}

// WithSeed returns a copy of c fixed to seed.
func (c Config) WithSeed(seed int64) Config {
	c.Seed, c.HasSeed = seed, true
	return c
}

// Validate reports the first invalid parameter, wrapped in ErrBadConfig.
// Besides per-field ranges it requires the reduced grid to keep at least three
// rows, since its first and last rows always cover a fine border row, and at
// least two columns, so the start and goal edges differ.
func (c Config) Validate() error {
	switch {
	case c.Rows <= 0 || c.Cols <= 0:
		return fmt.Errorf("%w: dimensions %d×%d", ErrBadConfig, c.Rows, c.Cols)
	case !(c.FillProbability >= 0 && c.FillProbability <= 1):
		return fmt.Errorf("%w: fill probability %v", ErrBadConfig, c.FillProbability)
	case c.SmoothIterations < 0:
		return fmt.Errorf("%w: smoothing iterations %d", ErrBadConfig, c.SmoothIterations)
	case c.Kernel < 1 || c.Kernel > c.Rows || c.Kernel > c.Cols:
		return fmt.Errorf("%w: kernel %d for %d×%d grid", ErrBadConfig, c.Kernel, c.Rows, c.Cols)
	case c.Rows-c.Kernel+1 < 3:
		return fmt.Errorf("%w: kernel %d leaves no interior reduced row", ErrBadConfig, c.Kernel)
	case c.Cols-c.Kernel+1 < 2:
		return fmt.Errorf("%w: kernel %d leaves fewer than two reduced columns", ErrBadConfig, c.Kernel)
	case (c.Analyze || c.Fields) && (c.DensityRadius < 1 || c.DispersionRadius < 1):
		return fmt.Errorf("%w: radii %d/%d", ErrBadConfig, c.DensityRadius, c.DispersionRadius)
	}
	return nil
}

// Result is everything one run produced.
type Result struct {
	// Config is the effective configuration, with Seed and HasSeed filled in.
	Config Config
	Seed   int64

	// Occupancy is the fine grid after repair windows were restored.
	Occupancy *grid.Grid
	// Reduced is the repaired navigability grid the path lives on.
	Reduced *grid.Grid
	// Cleared lists the reduced cells opened during repair.
	Cleared []grid.Coord

	// RegionsBefore and RegionsAfter count 4-connected open regions of the
	// reduced grid around repair.
	RegionsBefore, RegionsAfter int

	Start, Goal grid.Coord
	Path        astar.Path

	// Stats is nil unless Config.Analyze.
	Stats *difficulty.PathStats
	// Fields is nil unless Config.Fields.
	Fields map[string]difficulty.Field
}

// BatchOptions configures RunBatch.
type BatchOptions struct {
	// Workers bounds concurrent runs.
	Workers int
	// MaxAttempts is the number of tries per config; a run whose route search
	// is exhausted is retried with a derived seed.
	MaxAttempts int
	// Progress, when set, is called once per finished config. Calls are
	// serialized.
	Progress func(index int, r *Result)
}

// BatchOption mutates BatchOptions.
type BatchOption func(*BatchOptions)

// DefaultBatchOptions returns Workers=GOMAXPROCS, MaxAttempts=1, no progress hook.
func DefaultBatchOptions() BatchOptions {
	return BatchOptions{Workers: runtime.GOMAXPROCS(0), MaxAttempts: 1}
}

// WithWorkers bounds concurrent runs; n < 1 is treated as 1.
func WithWorkers(n int) BatchOption {
	return func(o *BatchOptions) { o.Workers = max(n, 1) }
}

// WithMaxAttempts sets tries per config; n < 1 is treated as 1.
func WithMaxAttempts(n int) BatchOption {
	return func(o *BatchOptions) { o.MaxAttempts = max(n, 1) }
}

// WithProgress installs a completion callback.
func WithProgress(fn func(index int, r *Result)) BatchOption {
	return func(o *BatchOptions) { o.Progress = fn }
}
