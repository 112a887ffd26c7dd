// SPDX-License-Identifier: MIT

// Package piecewise represents total piecewise-linear integer functions as
// ordered sets of interval.Interval rules and composes them algebraically.
//
// 🚀 What is a Function?
//
//	A Function is a sorted, gap-free, non-overlapping list of intervals that
//	covers every int64 from interval.Min to interval.Max. Inside each interval
//	f(x) = x + Shift. Domain and codomain names are labels only.
//
// ✨ Key operations:
//   - New:      gap-fill arbitrary (partial) rules into a total Function.
//   - Compose:  A: X→Y and B: Y→Z become A∘B: X→Z by intersecting rules.
//   - Apply:    evaluate f(x) by binary search.
//   - MinOver:  minimum of f over [lo, hi] without enumerating values.
//   - Validate: check the coverage invariant.
//
// ⚙️ Usage:
//
//	soil, _ := piecewise.New("seed", "soil", rules)
//	fert, _ := piecewise.New("soil", "fertilizer", more)
//	f, _ := piecewise.Compose(soil, fert, piecewise.WithCoalesce())
//	low, err := f.MinOver(79, 92)
//
// Performance:
//
//   - New:     O(n log n) (sort) + O(n) sweep.
//   - Compose: O(|A|·log|B| + k log k) where k is the number of non-empty
//     intersections; the worst case stays O(|A|·|B|).
//   - Apply:   O(log n).
//   - MinOver: O(log n + m), m = intervals overlapping the query.
//
// Interval counts grow across successive compositions; WithCoalesce merges
// touching intervals that carry the same shift.
//
// Errors:
//
//   - ErrNoIntervals      — New received no rules.
//   - ErrInvertedInterval — a rule has Lower > Upper.
//   - ErrOverlap          — two rules share an input value.
//   - ErrNilFunction      — a nil *Function was passed.
//   - ErrEmptyRange       — MinOver with lo > hi.
//   - ErrNoOverlap        — MinOver found no interval (broken invariant).
//   - ErrCoverage         — Validate found a gap, overlap or missing sentinel.
package piecewise
