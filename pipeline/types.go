package pipeline

import (
	"errors"
	"log/slog"
)

var (
	// ErrNoStages indicates an empty list of functions to compose.
	ErrNoStages = errors.New("pipeline: no stages to compose")

	// ErrNoSeeds indicates that nothing was left to evaluate.
	ErrNoSeeds = errors.New("pipeline: no seeds to evaluate")
)

// Options configures Build, Compose and the queries.
type Options struct {
	Workers  int          // concurrent range queries, ≥ 1
	Coalesce bool         // merge equal-shift neighbours after each step
	Logger   *slog.Logger // Debug-level progress
}

// Option is a functional option.
type Option func(*Options)

// WithWorkers sets the number of concurrent range queries.
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("pipeline: WithWorkers(n<1)")
	}
	return func(o *Options) {
		o.Workers = n
	}
}

// WithCoalesce keeps composed functions small by merging equal-shift neighbours.
func WithCoalesce() Option {
	return func(o *Options) {
		o.Coalesce = true
	}
}

// WithLogger sets the logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("pipeline: WithLogger(nil)")
	}
	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns one worker, no coalescing and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Workers:  1,
		Coalesce: false,
		Logger:   slog.New(slog.DiscardHandler),
	}
}

func resolve(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
