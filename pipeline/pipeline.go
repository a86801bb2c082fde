package pipeline

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/cavenav/astar"
	"github.com/katalvlaran/cavenav/cave"
	"github.com/katalvlaran/cavenav/difficulty"
	"github.com/katalvlaran/cavenav/footprint"
	"github.com/katalvlaran/cavenav/grid"
	"github.com/katalvlaran/cavenav/region"
)

// Run executes one full pipeline for cfg.
//
// The context is checked before every stage; a cancelled run returns
// ctx.Err(). A route that the turn-constrained planner cannot find surfaces as
// astar.ErrSearchExhausted (wrapped); whether to retry with another seed is
// the caller's choice (see RunBatch).
func Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if !cfg.HasSeed {
		cfg = cfg.WithSeed(cave.ClockSeed())
	}
	r := &runner{ctx: ctx, cfg: cfg, rng: cave.NewRand(cfg.Seed)}
	return r.run()
}

// runner carries the per-run state through the stages.
type runner struct {
	ctx context.Context
	cfg Config
	rng *rand.Rand
	res Result
}

func (r *runner) run() (*Result, error) {
	r.res.Config = r.cfg
	r.res.Seed = r.cfg.Seed

	stages := []struct {
		name string
		fn   func() error
	}{
		{"generate", r.generate},
		{"reduce", r.reduce},
		{"repair", r.repair},
		{"route", r.route},
		{"analyze", r.analyze},
	}
	for _, st := range stages {
		if err := r.ctx.Err(); err != nil {
			return nil, err
		}
		if err := st.fn(); err != nil {
			return nil, fmt.Errorf("pipeline: %s (seed %d): %w", st.name, r.cfg.Seed, err)
		}
	}
	return &r.res, nil
}

func (r *runner) generate() error {
	g, err := cave.Generate(r.cfg.Rows, r.cfg.Cols,
		cave.WithFillProbability(r.cfg.FillProbability),
		cave.WithSmoothIterations(r.cfg.SmoothIterations),
		cave.WithRand(r.rng),
	)
	if err != nil {
		return err
	}
	r.res.Occupancy = g
	return nil
}

func (r *runner) reduce() error {
	red, err := footprint.Reduce(r.res.Occupancy, r.cfg.Kernel)
	if err != nil {
		return err
	}
	r.res.Reduced = red
	r.res.RegionsBefore = len(region.Components(red))
	return nil
}

// repair joins the largest left and right regions and picks the waypoints
// from their edge cells.
func (r *runner) repair() error {
	cn := region.NewConnector(r.res.Reduced, r.rng)
	left := cn.LargestTouching(region.Left)
	right := cn.LargestTouching(region.Right)
	if left.Size == 0 || right.Size == 0 {
		return fmt.Errorf("%w: no open edge cell on the %d-row reduced grid", ErrBadConfig, r.res.Reduced.Rows)
	}
	cn.Connect(left, right)

	r.res.Cleared = cn.Cleared()
	if err := footprint.Restore(r.res.Occupancy, r.res.Cleared, r.cfg.Kernel); err != nil {
		return err
	}
	r.res.RegionsAfter = len(region.Components(r.res.Reduced))

	last := r.res.Reduced.Cols - 1
	r.res.Start = grid.Coord{Row: pick(r.rng, left.OnColumn(0)), Col: 0}
	r.res.Goal = grid.Coord{Row: pick(r.rng, right.OnColumn(last)), Col: last}
	return nil
}

// pick returns a uniformly drawn element of rows, which is never empty for a
// region returned by LargestTouching on that edge.
func pick(rng *rand.Rand, rows []int) int {
	return rows[rng.Intn(len(rows))]
}

func (r *runner) route() error {
	p, err := astar.Plan(r.res.Reduced, []grid.Coord{r.res.Start, r.res.Goal})
	if err != nil {
		return err
	}
	r.res.Path = p
	return nil
}

func (r *runner) analyze() error {
	if !r.cfg.Analyze && !r.cfg.Fields {
		return nil
	}
	a, err := difficulty.New(r.res.Reduced,
		difficulty.WithDensityRadius(r.cfg.DensityRadius),
		difficulty.WithDispersionRadius(r.cfg.DispersionRadius),
	)
	if err != nil {
		return err
	}
	if r.cfg.Analyze {
		s, err := a.PathAverages(r.res.Path)
		if err != nil {
			return err
		}
		r.res.Stats = &s
	}
	if r.cfg.Fields {
		r.res.Fields = a.Fields()
	}
	return nil
}
