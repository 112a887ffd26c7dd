// SPDX-License-Identifier: MIT

package piecewise

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/katalvlaran/seedmap/interval"
)

// fillGaps normalizes rules into a total, sorted interval list.
//
// Algorithm:
//  1. Sort a copy of the rules by Lower.
//  2. If the first rule does not start at Min, prepend [Min, first.Lower-1].
//  3. Between consecutive rules with prev.Upper+1 < cur.Lower insert
//     [prev.Upper+1, cur.Lower-1].
//  4. If the last rule does not end at Max, append [last.Upper+1, Max].
//
// Every filler carries shift 0 (identity). Touching rules need no filler.
func fillGaps(rules []interval.Interval, cfg Options) ([]interval.Interval, error) {
	if len(rules) == 0 {
		return nil, ErrNoIntervals
	}

	sorted := slices.Clone(rules)
	slices.SortFunc(sorted, func(a, b interval.Interval) int {
		return cmp.Compare(a.Lower, b.Lower)
	})

	for i, iv := range sorted {
		if iv.Lower > iv.Upper {
			return nil, fmt.Errorf("%w: %v", ErrInvertedInterval, iv)
		}
		if cfg.CheckOverlap && i > 0 && iv.Lower <= sorted[i-1].Upper {
			return nil, fmt.Errorf("%w: %v and %v", ErrOverlap, sorted[i-1], iv)
		}
	}

	out := make([]interval.Interval, 0, 2*len(sorted)+1)
	if first := sorted[0]; first.Lower != interval.Min {
		out = append(out, interval.Identity(interval.Min, first.Lower-1))
	}
	out = append(out, sorted[0])

	for i := 1; i < len(sorted); i++ {
		prev, cur := sorted[i-1], sorted[i]
		if interval.SatSub(cur.Lower, prev.Upper) > 1 {
			out = append(out, interval.Identity(prev.Upper+1, cur.Lower-1))
		}
		out = append(out, cur)
	}

	if last := out[len(out)-1]; last.Upper != interval.Max {
		out = append(out, interval.Identity(last.Upper+1, interval.Max))
	}

	if cfg.Coalesce {
		out = coalesce(out)
	}

	return out, nil
}

// coalesce folds each interval into its predecessor when both are adjacent
// and share a shift. It reuses the backing array of ivs.
func coalesce(ivs []interval.Interval) []interval.Interval {
	out := ivs[:1]
	for _, iv := range ivs[1:] {
		prev := &out[len(out)-1]
		if prev.Shift == iv.Shift && prev.Upper != interval.Max && prev.Upper+1 == iv.Lower {
			prev.Upper = iv.Upper
			continue
		}
		out = append(out, iv)
	}

	return out
}
