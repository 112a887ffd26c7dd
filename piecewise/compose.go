// SPDX-License-Identifier: MIT

package piecewise

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/seedmap/interval"
)

// Compose returns a∘b: the function x ↦ b(a(x)), labelled a.Domain() →
// b.Codomain(). Labels are not checked against each other.
//
// Algorithm:
//  1. For every interval ia of a, translate b's intervals into a's input
//     coordinates (subtract ia.Shift) and intersect them with ia
//     (interval.Merge). Intersections with no common input are dropped.
//  2. Because both functions are total, the intersections tile a's domain;
//     they are re-normalized through the gap-filler (New) to restore the
//     sort order and close any gap left by saturation at the sentinels.
//
// Translation is monotonic, so for each ia only the run of b's intervals
// starting at the first one whose translated Upper reaches ia.Lower is
// visited. Composition is associative: Compose(Compose(f,g),h) and
// Compose(f,Compose(g,h)) agree on every input.
//
// Complexity: O(|a|·log|b| + k log k), k = number of intersections
// (k ≤ |a|+|b|-1 for total inputs).
func Compose(a, b *Function, opts ...Option) (*Function, error) {
	if a == nil || b == nil {
		return nil, ErrNilFunction
	}

	merged := make([]interval.Interval, 0, len(a.intervals)+len(b.intervals))
	for _, ia := range a.intervals {
		j := sort.Search(len(b.intervals), func(j int) bool {
			return interval.SatSub(b.intervals[j].Upper, ia.Shift) >= ia.Lower
		})
		covered := false
		var last int64
		for ; j < len(b.intervals); j++ {
			m, ok := interval.Merge(ia, b.intervals[j])
			if !ok {
				break
			}
			// Distinct rules of b can saturate onto the same sentinel;
			// the first one wins.
			if covered {
				if m.Upper <= last {
					continue
				}
				m.Lower = max(m.Lower, last+1)
			}
			merged = append(merged, m)
			covered, last = true, m.Upper
			if last == ia.Upper {
				break
			}
		}
	}

	f, err := New(a.domain, b.codomain, merged, opts...)
	if err != nil {
		return nil, fmt.Errorf("compose: %w", err)
	}

	return f, nil
}
