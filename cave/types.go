package cave

import (
	"errors"
	"fmt"
	"math/rand"
)

// Sentinel errors for generation.
var (
	// ErrBadDimensions indicates a non-positive row or column count.
	ErrBadDimensions = errors.New("cave: rows and cols must be positive")
	// ErrBadProbability indicates a fill probability outside [0,1].
	ErrBadProbability = errors.New("cave: fill probability must be within [0,1]")
	// ErrBadIterations indicates a negative smoothing-iteration count.
	ErrBadIterations = errors.New("cave: smoothing iterations must be non-negative")
)

// Defaults taken from the interactive generator.
const (
	DefaultFillProbability  = 0.35
	DefaultSmoothIterations = 4
)

// Options configures Generate.
type Options struct {
	// FillProbability is the chance an interior cell starts as a wall.
	FillProbability float64
	// SmoothIterations is the number of cellular-automata passes.
	SmoothIterations int
	// Rand is the random stream used for seeding. When nil, one is built from
	// Seed (if HasSeed) or from the clock.
	Rand *rand.Rand
	// Seed is used when HasSeed is true and Rand is nil.
	Seed    int64
	HasSeed bool
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns FillProbability=0.35, SmoothIterations=4, no seed.
func DefaultOptions() Options {
	return Options{
		FillProbability:  DefaultFillProbability,
		SmoothIterations: DefaultSmoothIterations,
	}
}

// WithFillProbability sets the initial wall probability. Values outside [0,1]
// are reported as ErrBadProbability by Generate.
func WithFillProbability(p float64) Option {
	return func(o *Options) { o.FillProbability = p }
}

// WithSmoothIterations sets the number of smoothing passes.
func WithSmoothIterations(n int) Option {
	return func(o *Options) { o.SmoothIterations = n }
}

// WithSeed fixes the random seed for reproducible output.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
		o.HasSeed = true
	}
}

// WithRand supplies the random stream directly, so a caller can share one
// stream across generation and later stages. It takes precedence over WithSeed.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) { o.Rand = r }
}

func (o Options) validate(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return fmt.Errorf("%w: got %d×%d", ErrBadDimensions, rows, cols)
	}
	if !(o.FillProbability >= 0 && o.FillProbability <= 1) {
		return fmt.Errorf("%w: got %v", ErrBadProbability, o.FillProbability)
	}
	if o.SmoothIterations < 0 {
		return fmt.Errorf("%w: got %d", ErrBadIterations, o.SmoothIterations)
	}
	return nil
}
