package interval

import (
	"fmt"
	"strconv"
)

// New builds an Interval after checking lower ≤ upper.
// Returns ErrInverted otherwise.
func New(lower, upper, shift int64) (Interval, error) {
	if lower > upper {
		return Interval{}, fmt.Errorf("%w: [%d,%d]", ErrInverted, lower, upper)
	}

	return Interval{Lower: lower, Upper: upper, Shift: shift}, nil
}

// Identity returns the interval [lower, upper] with a zero shift.
// It is the filler used to close gaps between rules.
func Identity(lower, upper int64) Interval {
	return Interval{Lower: lower, Upper: upper}
}

// Contains reports whether x lies within [Lower, Upper].
func (iv Interval) Contains(x int64) bool {
	return iv.Lower <= x && x <= iv.Upper
}

// Overlaps reports whether iv shares at least one value with [lo, hi].
func (iv Interval) Overlaps(lo, hi int64) bool {
	return iv.Upper >= lo && iv.Lower <= hi
}

// Apply returns x + Shift, saturating at the sentinels.
// The caller is responsible for x lying within the interval.
func (iv Interval) Apply(x int64) int64 {
	return SatAdd(x, iv.Shift)
}

// Image returns the output range [Lower+Shift, Upper+Shift], saturated.
func (iv Interval) Image() (lo, hi int64) {
	return SatAdd(iv.Lower, iv.Shift), SatAdd(iv.Upper, iv.Shift)
}

// Merge composes a (X→Y) with b (Y→Z), where b's bounds are expressed in
// Y-coordinates. b is translated back into X-coordinates by subtracting
// a.Shift; if the translated range does not intersect a, the pair has no
// common input and ok is false. Otherwise the result covers the intersection
// and carries the combined shift a.Shift + b.Shift, i.e. for every x in it
// b(a(x)) = x + a.Shift + b.Shift.
//
// Example:
//
//	a := Interval{Lower: 0, Upper: 9, Shift: 5}
//	b := Interval{Lower: 10, Upper: 19, Shift: -3} // b seen from X: [5,14]
//	m, _ := Merge(a, b)                              // [5,9] shift 2
//
// Complexity: O(1).
func Merge(a, b Interval) (merged Interval, ok bool) {
	lower := SatSub(b.Lower, a.Shift)
	upper := SatSub(b.Upper, a.Shift)
	if a.Upper < lower || upper < a.Lower {
		return Interval{}, false
	}

	return Interval{
		Lower: max(a.Lower, lower),
		Upper: min(a.Upper, upper),
		Shift: SatAdd(a.Shift, b.Shift),
	}, true
}

// String renders the interval as "[lower,upper]+shift", printing the
// sentinels as -inf / +inf.
func (iv Interval) String() string {
	return fmt.Sprintf("[%s,%s]%+d", bound(iv.Lower), bound(iv.Upper), iv.Shift)
}

func bound(v int64) string {
	switch v {
	case Min:
		return "-inf"
	case Max:
		return "+inf"
	}

	return strconv.FormatInt(v, 10)
}
