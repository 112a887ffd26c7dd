// SPDX-License-Identifier: MIT

package piecewise

import (
	"errors"

	"github.com/katalvlaran/seedmap/interval"
)

// Sentinel errors returned by this package.
var (
	// ErrNoIntervals indicates that New was called without any rule.
	ErrNoIntervals = errors.New("piecewise: at least one interval is required")

	// ErrInvertedInterval indicates a rule with Lower > Upper.
	ErrInvertedInterval = errors.New("piecewise: interval lower bound exceeds upper bound")

	// ErrOverlap indicates two rules covering a common input value.
	ErrOverlap = errors.New("piecewise: intervals overlap")

	// ErrNilFunction indicates a nil *Function argument or receiver.
	ErrNilFunction = errors.New("piecewise: function is nil")

	// ErrEmptyRange indicates a query range with lo > hi.
	ErrEmptyRange = errors.New("piecewise: query range is empty")

	// ErrNoOverlap indicates that no interval intersects a query range. This
	// cannot happen for a Function built by New.
	ErrNoOverlap = errors.New("piecewise: no interval overlaps the query range")

	// ErrCoverage indicates a broken coverage invariant.
	ErrCoverage = errors.New("piecewise: intervals do not cover the domain")
)

// Function is a total piecewise-linear function over int64.
//
// Invariant: intervals are sorted by Lower, pairwise disjoint, and adjacent
// (next.Lower == prev.Upper+1); the first starts at interval.Min and the last
// ends at interval.Max. A Function is never mutated after construction and
// may be shared between goroutines.
type Function struct {
	domain    string
	codomain  string
	intervals []interval.Interval
}

// Options configures normalization in New and Compose.
//
// Coalesce     – merge adjacent intervals with equal shift after gap-filling.
// CheckOverlap – reject overlapping input rules with ErrOverlap (default true).
type Options struct {
	Coalesce     bool
	CheckOverlap bool
}

// Option is a functional option for New and Compose.
type Option func(*Options)

// WithCoalesce merges neighbouring intervals that share a shift, keeping
// composed functions small.
func WithCoalesce() Option {
	return func(o *Options) {
		o.Coalesce = true
	}
}

// WithoutOverlapCheck disables overlap detection. Overlapping input then
// yields a gap-free but semantically inconsistent Function.
func WithoutOverlapCheck() Option {
	return func(o *Options) {
		o.CheckOverlap = false
	}
}

// DefaultOptions returns the defaults:
//   - Coalesce:     false (keep every interval produced).
//   - CheckOverlap: true  (fail loudly on overlapping rules).
func DefaultOptions() Options {
	return Options{
		Coalesce:     false,
		CheckOverlap: true,
	}
}

func resolve(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
