// Package interval defines the atomic rule of a piecewise-linear integer
// function: a closed range [Lower, Upper] together with an additive Shift.
//
// What:
//
//   - Interval{Lower, Upper, Shift} means f(x) = x + Shift for Lower ≤ x ≤ Upper.
//   - Unbounded ends are written with the sentinels Min and Max
//     (math.MinInt64 / math.MaxInt64); there is no separate "open" flag.
//   - All bound arithmetic goes through SatAdd / SatSub, which clamp at the
//     sentinels instead of wrapping around.
//
// Why:
//
//   - Composing two remapping stages reduces to intersecting their rules in a
//     shared coordinate space (Merge), so a chain of stages can be collapsed
//     into a single function without enumerating individual values.
//
// Complexity:
//
//   - New, Merge, Apply, Contains: O(1) time, O(1) memory.
//
// Errors:
//
//   - ErrInverted: Lower > Upper passed to New.
package interval
