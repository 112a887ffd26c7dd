// SPDX-License-Identifier: MIT

package piecewise

import (
	"fmt"
	"slices"
	"sort"

	"github.com/katalvlaran/seedmap/interval"
)

// New gap-fills rules into a total Function labelled domain → codomain.
//
// The rules may be partial and in any order; uncovered ranges (including the
// open ends below the first and above the last rule) map through identity.
// The input slice is not modified.
//
// Errors: ErrNoIntervals, ErrInvertedInterval, ErrOverlap (unless
// WithoutOverlapCheck).
//
// Complexity: O(n log n) time, O(n) memory.
func New(domain, codomain string, rules []interval.Interval, opts ...Option) (*Function, error) {
	ivs, err := fillGaps(rules, resolve(opts))
	if err != nil {
		return nil, fmt.Errorf("%s→%s: %w", domain, codomain, err)
	}

	return &Function{domain: domain, codomain: codomain, intervals: ivs}, nil
}

// Identity returns the function f(x) = x, a single interval [Min, Max].
func Identity(domain, codomain string) *Function {
	return &Function{
		domain:    domain,
		codomain:  codomain,
		intervals: []interval.Interval{interval.Identity(interval.Min, interval.Max)},
	}
}

// Domain returns the input label.
func (f *Function) Domain() string { return f.domain }

// Codomain returns the output label.
func (f *Function) Codomain() string { return f.codomain }

// Len returns the number of intervals.
func (f *Function) Len() int { return len(f.intervals) }

// Intervals returns a copy of the ordered intervals.
func (f *Function) Intervals() []interval.Interval {
	return slices.Clone(f.intervals)
}

// Apply evaluates f(x).
// Complexity: O(log n).
func (f *Function) Apply(x int64) int64 {
	i := f.search(x)
	if i == len(f.intervals) || !f.intervals[i].Contains(x) {
		// unreachable for a Function built by New
		return x
	}

	return f.intervals[i].Apply(x)
}

// search returns the index of the first interval whose Upper ≥ x.
func (f *Function) search(x int64) int {
	return sort.Search(len(f.intervals), func(i int) bool {
		return f.intervals[i].Upper >= x
	})
}

// Validate checks the coverage invariant: sorted, adjacent, non-inverted
// intervals spanning exactly [interval.Min, interval.Max].
// Returns nil or an error wrapping ErrCoverage.
func (f *Function) Validate() error {
	if f == nil {
		return ErrNilFunction
	}
	if len(f.intervals) == 0 {
		return fmt.Errorf("%w: no intervals", ErrCoverage)
	}
	if first := f.intervals[0]; first.Lower != interval.Min {
		return fmt.Errorf("%w: first interval %v does not start at -inf", ErrCoverage, first)
	}
	for i, iv := range f.intervals {
		if iv.Lower > iv.Upper {
			return fmt.Errorf("%w: inverted interval %v", ErrCoverage, iv)
		}
		if i == 0 {
			continue
		}
		prev := f.intervals[i-1]
		if prev.Upper == interval.Max || prev.Upper+1 != iv.Lower {
			return fmt.Errorf("%w: %v is not followed directly by %v", ErrCoverage, prev, iv)
		}
	}
	if last := f.intervals[len(f.intervals)-1]; last.Upper != interval.Max {
		return fmt.Errorf("%w: last interval %v does not end at +inf", ErrCoverage, last)
	}

	return nil
}

// String renders the function as "domain→codomain [..]+s [..]+s ...".
func (f *Function) String() string {
	return fmt.Sprintf("%s→%s %v", f.domain, f.codomain, f.intervals)
}
