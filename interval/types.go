package interval

import (
	"errors"
	"math"
)

// Sentinel bounds used for unbounded ends.
const (
	// Min is the lowest representable bound; an Interval starting here is open to the left.
	Min int64 = math.MinInt64
	// Max is the highest representable bound; an Interval ending here is open to the right.
	Max int64 = math.MaxInt64
)

// ErrInverted indicates an Interval whose Lower bound exceeds its Upper bound.
var ErrInverted = errors.New("interval: lower bound exceeds upper bound")

// Interval is a closed integer range [Lower, Upper] mapped through x + Shift.
// It is a plain value: copies never alias, and nothing in this module
// mutates an Interval once it has been built.
type Interval struct {
	Lower int64 // inclusive lower bound (Min = unbounded)
	Upper int64 // inclusive upper bound (Max = unbounded)
	Shift int64 // additive offset applied to every x in range
}
