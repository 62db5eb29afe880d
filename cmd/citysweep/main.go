// Command citysweep runs many seeded sessions of one variant in parallel
// and reports how the final populations are distributed.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math"
	"os"
	"runtime"
	"sort"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"

	"urban-ca/internal/app"
	"urban-ca/internal/city"
)

type runResult struct {
	seed   int64
	census city.Census
}

func main() {
	variant := flag.String("sim", "entropy", "rule variant to sweep")
	runs := flag.Int("runs", 64, "number of seeded runs")
	steps := flag.Int("steps", 200, "generations per run")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel runs")
	seed := flag.Int64("seed", 1, "first seed; run i uses seed+i")
	rows := flag.Int("rows", 0, "grid rows (0 = variant default)")
	cols := flag.Int("cols", 0, "grid columns (0 = variant default)")
	density := flag.Float64("density", 0.6, "initial scatter density")
	logLevel := flag.String("log-level", "info", "log level")
	flag.Parse()

	logger, err := app.NewLogger(os.Stderr, *logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	slog.SetDefault(logger)

	base := city.DefaultConfigFor(*variant)
	if *rows > 0 {
		base.Rows = *rows
	}
	if *cols > 0 {
		base.Cols = *cols
	}
	base.Params.Density = *density
	if err := base.Validate(); err != nil {
		slog.Error("invalid sweep config", "error", err)
		os.Exit(2)
	}

	slog.Info("sweep started", "variant", base.Variant, "runs", *runs, "steps", *steps, "workers", *workers)
	start := time.Now()

	results, err := sweep(context.Background(), base, *seed, *runs, *steps, *workers)
	if err != nil {
		slog.Error("sweep failed", "error", err)
		os.Exit(1)
	}

	report(results, base.Rows*base.Cols)
	slog.Info("sweep finished", "elapsed", time.Since(start).Round(time.Millisecond))
}

func sweep(ctx context.Context, base city.Config, firstSeed int64, runs, steps, workers int) ([]runResult, error) {
	if workers <= 0 {
		workers = 1
	}
	results := make([]runResult, runs)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := 0; i < runs; i++ {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			cfg := base
			cfg.Seed = firstSeed + int64(i)
			s, err := city.NewSession(cfg)
			if err != nil {
				return fmt.Errorf("run %d: %w", i, err)
			}
			for n := 0; n < steps; n++ {
				s.Step()
			}
			results[i] = runResult{seed: cfg.Seed, census: s.Census()}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func report(results []runResult, cells int) {
	if len(results) == 0 {
		return
	}
	for _, mt := range city.AllModules() {
		vals := make([]float64, len(results))
		for i, r := range results {
			vals[i] = float64(r.census.Count(mt))
		}
		mean, stddev := meanStd(vals)
		if mean == 0 {
			continue
		}
		sort.Float64s(vals)
		fmt.Printf("%-9s mean %s (%.1f%%) sd %.1f min %s max %s\n",
			mt.String(),
			humanize.CommafWithDigits(mean, 1),
			100*mean/float64(cells),
			stddev,
			humanize.Comma(int64(vals[0])),
			humanize.Comma(int64(vals[len(vals)-1])),
		)
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].census.Occupied() > results[j].census.Occupied()
	})
	best := results[0]
	fmt.Printf("\nDensest run: seed %d, %s occupied cells\n", best.seed, humanize.Comma(int64(best.census.Occupied())))
	fmt.Printf("  %s\n", best.census)
}

func meanStd(vals []float64) (float64, float64) {
	if len(vals) == 0 {
		return 0, 0
	}
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	mean := sum / float64(len(vals))
	variance := 0.0
	for _, v := range vals {
		d := v - mean
		variance += d * d
	}
	return mean, math.Sqrt(variance / float64(len(vals)))
}
