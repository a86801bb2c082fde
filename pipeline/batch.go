package pipeline

import (
	"context"
	"errors"
	"sync"

	"github.com/katalvlaran/cavenav/astar"
	"github.com/katalvlaran/cavenav/cave"
	"golang.org/x/sync/errgroup"
)

// RunBatch runs every config in cfgs on a bounded worker pool and returns the
// results in input order.
//
// Behavior:
//  1. Configs without a seed get one derived from a single clock seed and
//     their index, so concurrent runs never share a stream.
//  2. A run that fails with astar.ErrSearchExhausted is retried, up to
//     MaxAttempts tries, with a seed derived from the previous one.
//  3. The first other error cancels the batch; runs still queued are
//     skipped and that error is returned.
//  4. A config that uses up MaxAttempts counts as such an error: the
//     whole batch stops and no partial results are returned. Sweeps over
//     dense fills, where some seeds never route, should raise MaxAttempts.
func RunBatch(ctx context.Context, cfgs []Config, opts ...BatchOption) ([]*Result, error) {
	bo := DefaultBatchOptions()
	for _, opt := range opts {
		opt(&bo)
	}
	for _, cfg := range cfgs {
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}

	base := cave.ClockSeed()
	out := make([]*Result, len(cfgs))
	var mu sync.Mutex

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(bo.Workers)
	for i, cfg := range cfgs {
		if !cfg.HasSeed {
			cfg = cfg.WithSeed(cave.DeriveSeed(base, uint64(i)))
		}
		eg.Go(func() error {
			res, err := runWithRetry(ctx, cfg, bo.MaxAttempts)
			if err != nil {
				return err
			}
			out[i] = res
			if bo.Progress != nil {
				mu.Lock()
				bo.Progress(i, res)
				mu.Unlock()
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func runWithRetry(ctx context.Context, cfg Config, attempts int) (*Result, error) {
	var err error
	for try := 0; try < attempts; try++ {
		if try > 0 {
			cfg = cfg.WithSeed(cave.DeriveSeed(cfg.Seed, uint64(try)))
		}
		var res *Result
		res, err = Run(ctx, cfg)
		if err == nil {
			return res, nil
		}
		if !errors.Is(err, astar.ErrSearchExhausted) {
			return nil, err
		}
	}
	return nil, err
}

// Sweep fill probabilities and smoothing passes of the standard corpus.
var (
	SweepFillProbabilities = []float64{0.07, 0.12, 0.17, 0.22, 0.27}
	SweepSmoothIterations  = []int{1, 2, 3, 4}
)

// Sweep returns one copy of base per (fill, smoothing) pair, fill-major.
// When base has a seed, each copy gets a seed derived from it and its index;
// otherwise the copies stay unseeded.
func Sweep(base Config) []Config {
	out := make([]Config, 0, len(SweepFillProbabilities)*len(SweepSmoothIterations))
	for _, p := range SweepFillProbabilities {
		for _, n := range SweepSmoothIterations {
			cfg := base
			cfg.FillProbability = p
			cfg.SmoothIterations = n
			if base.HasSeed {
				cfg.Seed = cave.DeriveSeed(base.Seed, uint64(len(out)))
			}
			out = append(out, cfg)
		}
	}
	return out
}
