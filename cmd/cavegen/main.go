// Command cavegen generates cave maps, repairs edge-to-edge connectivity,
// routes a footprint-sized agent across and prints the result as ASCII.
//
// With -sweep it runs the fill × smoothing corpus grid concurrently and prints
// one summary line per map.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"os/signal"
	"time"

	"github.com/katalvlaran/cavenav/difficulty"
	"github.com/katalvlaran/cavenav/grid"
	"github.com/katalvlaran/cavenav/pipeline"
)

func main() {
	os.Exit(run())
}

func run() int {
	def := pipeline.DefaultConfig()
	cfg := def
	var seed int64
	var sweep, quiet bool
	var workers, attempts int
	var show string
	var timeout time.Duration

	flag.IntVar(&cfg.Rows, "rows", def.Rows, "Occupancy grid height, in cells.")
	flag.IntVar(&cfg.Cols, "cols", def.Cols, "Occupancy grid width, in cells.")
	flag.Float64Var(&cfg.FillProbability, "fill", def.FillProbability,
		"Initial probability that an interior cell is a wall.")
	flag.IntVar(&cfg.SmoothIterations, "smooth", def.SmoothIterations,
		"Number of cellular-automata smoothing passes.")
	flag.IntVar(&cfg.Kernel, "kernel", def.Kernel, "Agent footprint side length, in cells.")
	flag.IntVar(&cfg.DensityRadius, "density_radius", def.DensityRadius, "Density window radius.")
	flag.IntVar(&cfg.DispersionRadius, "dispersion_radius", def.DispersionRadius,
		"Dispersion ray budget.")
	flag.BoolVar(&cfg.Fields, "fields", false, "Also compute and summarize every difficulty field.")
	flag.Int64Var(&seed, "seed", 0, "Random seed to replay; when unset a clock seed is drawn and printed.")
	flag.BoolVar(&sweep, "sweep", false, "Run the fill × smoothing parameter sweep.")
	flag.IntVar(&workers, "workers", pipeline.DefaultBatchOptions().Workers, "Concurrent runs for -sweep.")
	flag.IntVar(&attempts, "attempts", 5, "Tries per map before giving up on an unroutable cave.")
	flag.StringVar(&show, "show", "reduced", "Grid to print: reduced, occupancy, both or none.")
	flag.BoolVar(&quiet, "quiet", false, "Suppress grid output.")
	flag.DurationVar(&timeout, "timeout", 0, "Abort after this long (0 disables).")
	flag.Parse()

	if flagSet("seed") {
		cfg = cfg.WithSeed(seed)
	}
	if err := cfg.Validate(); err != nil {
		log.Printf("cavegen: %v", err)
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	opts := []pipeline.BatchOption{pipeline.WithMaxAttempts(attempts)}
	if sweep {
		return runSweep(ctx, cfg, append(opts, pipeline.WithWorkers(workers)))
	}

	res, err := pipeline.RunBatch(ctx, []pipeline.Config{cfg}, opts...)
	if err != nil {
		log.Printf("cavegen: %v", err)
		return 1
	}
	report(res[0], show, quiet)
	return 0
}

// flagSet reports whether name was given on the command line.
func flagSet(name string) bool {
	found := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

func runSweep(ctx context.Context, base pipeline.Config, opts []pipeline.BatchOption) int {
	cfgs := pipeline.Sweep(base)
	start := time.Now()
	opts = append(opts, pipeline.WithProgress(func(i int, r *pipeline.Result) {
		fmt.Printf("world %d fill %.2f smooths %d seed %d steps %d cleared %d\n",
			i, r.Config.FillProbability, r.Config.SmoothIterations, r.Seed, r.Path.Steps(), len(r.Cleared))
	}))
	if _, err := pipeline.RunBatch(ctx, cfgs, opts...); err != nil {
		log.Printf("cavegen: sweep: %v", err)
		return 1
	}
	log.Printf("cavegen: %d worlds in %v", len(cfgs), time.Since(start))
	return 0
}

func report(res *pipeline.Result, show string, quiet bool) {
	log.Printf("cavegen: seed %d", res.Seed)
	fmt.Printf("Seed: %d\n", res.Seed)
	fmt.Printf("Points: %v -> %v\n", res.Start, res.Goal)
	fmt.Printf("Regions: %d before repair, %d after; %d cells cleared\n",
		res.RegionsBefore, res.RegionsAfter, len(res.Cleared))
	fmt.Printf("Path: %d steps\n", res.Path.Steps())

	if !quiet {
		if show == "reduced" || show == "both" {
			fmt.Printf("\nNavigability grid (k=%d):\n%s", res.Config.Kernel, res.RenderReduced())
		}
		if show == "occupancy" || show == "both" {
			fmt.Printf("\nOccupancy grid:\n%s", res.RenderOccupancy())
		}
	}

	if s := res.Stats; s != nil {
		fmt.Printf("\nPath averages:\n")
		fmt.Printf("  closest obstacle   %.3f\n", s.NearestObstacle)
		fmt.Printf("  visibility         %.3f\n", s.Visibility)
		fmt.Printf("  dispersion         %.3f\n", s.Dispersion)
		fmt.Printf("  char. dimension    %.3f\n", s.CharacteristicDimension)
		fmt.Printf("  tortuosity         %.3f\n", s.Tortuosity)
	}
	if res.Fields != nil {
		fmt.Printf("\nFields (open cells: min / mean / max):\n")
		for _, name := range difficulty.FieldNames {
			lo, mean, hi := summarize(res.Fields[name], res)
			fmt.Printf("  %-16s %7.3f %7.3f %7.3f\n", name, lo, mean, hi)
		}
	}
}

// summarize returns min, mean and max of f over the open cells of the reduced grid.
func summarize(f difficulty.Field, res *pipeline.Result) (lo, mean, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	n := 0
	for r, row := range f {
		for c, v := range row {
			if res.Reduced.Cells[r][c] == grid.Wall {
				continue
			}
			lo, hi = math.Min(lo, v), math.Max(hi, v)
			mean += v
			n++
		}
	}
	if n == 0 {
		return 0, 0, 0
	}
	return lo, mean / float64(n), hi
}
