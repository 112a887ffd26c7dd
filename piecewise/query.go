// SPDX-License-Identifier: MIT

package piecewise

import (
	"fmt"

	"github.com/katalvlaran/seedmap/interval"
)

// MinOver returns the minimum of f(x) for lo ≤ x ≤ hi.
//
// Each interval maps its range through a constant shift, so f is increasing
// inside every interval and its minimum there sits at the leftmost input of
// the overlap: max(Lower, lo) + Shift. The result is the smallest of those
// candidates over all intervals intersecting [lo, hi].
//
// Errors: ErrNilFunction, ErrEmptyRange (lo > hi), ErrNoOverlap (only when the
// coverage invariant was broken upstream).
//
// Complexity: O(log n + m), m = intervals intersecting [lo, hi].
func (f *Function) MinOver(lo, hi int64) (int64, error) {
	if f == nil {
		return 0, ErrNilFunction
	}
	if lo > hi {
		return 0, fmt.Errorf("%w: [%d,%d]", ErrEmptyRange, lo, hi)
	}

	var (
		best  int64
		found bool
	)
	for i := f.search(lo); i < len(f.intervals); i++ {
		iv := f.intervals[i]
		if iv.Lower > hi {
			break
		}
		v := interval.SatAdd(max(iv.Lower, lo), iv.Shift)
		if !found || v < best {
			best, found = v, true
		}
	}
	if !found {
		return 0, fmt.Errorf("%w: [%d,%d]", ErrNoOverlap, lo, hi)
	}

	return best, nil
}
