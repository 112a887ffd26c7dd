package pipeline

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/seedmap/almanac"
	"github.com/katalvlaran/seedmap/piecewise"
)

// Build gap-fills every stage of a and composes them into one
// seed→location function.
func Build(a *almanac.Almanac, opts ...Option) (*piecewise.Function, error) {
	cfg := resolve(opts)

	var pwOpts []piecewise.Option
	if cfg.Coalesce {
		pwOpts = append(pwOpts, piecewise.WithCoalesce())
	}
	stages, err := a.Functions(pwOpts...)
	if err != nil {
		return nil, err
	}

	return compose(stages[:], cfg)
}

// Compose folds fns left to right: fns[0] is applied first.
//
// Complexity: each step is one piecewise.Compose; interval counts may grow
// with every step unless WithCoalesce is set.
func Compose(fns []*piecewise.Function, opts ...Option) (*piecewise.Function, error) {
	return compose(fns, resolve(opts))
}

func compose(fns []*piecewise.Function, cfg Options) (*piecewise.Function, error) {
	if len(fns) == 0 {
		return nil, ErrNoStages
	}

	var pwOpts []piecewise.Option
	if cfg.Coalesce {
		pwOpts = append(pwOpts, piecewise.WithCoalesce())
	}

	acc := fns[0]
	if acc == nil {
		return nil, fmt.Errorf("stage 0: %w", piecewise.ErrNilFunction)
	}
	for i, next := range fns[1:] {
		f, err := piecewise.Compose(acc, next, pwOpts...)
		if err != nil {
			return nil, fmt.Errorf("stage %d: %w", i+1, err)
		}
		cfg.Logger.Debug("composed stage",
			slog.String("from", f.Domain()),
			slog.String("to", f.Codomain()),
			slog.Int("left", acc.Len()),
			slog.Int("right", next.Len()),
			slog.Int("intervals", f.Len()),
		)
		acc = f
	}

	return acc, nil
}
