package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/seedmap/almanac"
	"github.com/katalvlaran/seedmap/piecewise"
)

// LowestLocation returns the smallest value of f over all seed ranges.
// Empty ranges are skipped; ErrNoSeeds is returned if every range is empty.
// Ranges are queried on up to Options.Workers goroutines; the first error
// cancels the remaining queries.
func LowestLocation(ctx context.Context, f *piecewise.Function, ranges []almanac.SeedRange, opts ...Option) (int64, error) {
	if f == nil {
		return 0, piecewise.ErrNilFunction
	}
	cfg := resolve(opts)

	mins := make([]int64, len(ranges))
	done := make([]bool, len(ranges))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for i, r := range ranges {
		lo, hi, ok := r.Bounds()
		if !ok {
			cfg.Logger.Debug("skipping empty seed range", slog.Int("index", i))
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			m, err := f.MinOver(lo, hi)
			if err != nil {
				return fmt.Errorf("seed range %d [%d,%d]: %w", i, lo, hi, err)
			}
			mins[i], done[i] = m, true
			cfg.Logger.Debug("seed range",
				slog.Int("index", i),
				slog.Int64("lo", lo),
				slog.Int64("hi", hi),
				slog.Int64("min", m),
			)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	var (
		best  int64
		found bool
	)
	for i, m := range mins {
		if done[i] && (!found || m < best) {
			best, found = m, true
		}
	}
	if !found {
		return 0, ErrNoSeeds
	}

	return best, nil
}

// LowestSeedLocation treats every seed as a single value and returns the
// smallest f(seed).
func LowestSeedLocation(f *piecewise.Function, seeds []int64) (int64, error) {
	if f == nil {
		return 0, piecewise.ErrNilFunction
	}
	if len(seeds) == 0 {
		return 0, ErrNoSeeds
	}

	best := f.Apply(seeds[0])
	for _, s := range seeds[1:] {
		best = min(best, f.Apply(s))
	}

	return best, nil
}
