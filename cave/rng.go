package cave

import (
	"math"
	"math/rand"
	"time"
)

// NewRand returns a deterministic *rand.Rand for seed.
//
// math/rand.Rand is not goroutine-safe; each pipeline run owns its own stream.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// ClockSeed returns a seed derived from the wall clock, for runs where the
// caller did not pick one. Callers should record it to reproduce the run.
func ClockSeed() int64 {
	return time.Now().UnixNano()
}

// DeriveSeed mixes a parent seed and a stream identifier into a new seed, so
// batch workers and retries get decorrelated streams from one base seed.
//
// SplitMix64 finalizer; small input changes spread over all output bits. The
// sign bit is cleared so a derived seed is always a valid non-negative -seed
// value for cmd/cavegen.
//
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x & math.MaxInt64)
}

func (o Options) rand() *rand.Rand {
	switch {
	case o.Rand != nil:
		return o.Rand
	case o.HasSeed:
		return NewRand(o.Seed)
	default:
		return NewRand(ClockSeed())
	}
}
