package piecewise_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seedmap/interval"
	"github.com/katalvlaran/seedmap/piecewise"
)

// mustNew builds a Function or fails the test.
func mustNew(t *testing.T, domain, codomain string, rules ...interval.Interval) *piecewise.Function {
	t.Helper()
	f, err := piecewise.New(domain, codomain, rules)
	require.NoError(t, err, "New(%s→%s)", domain, codomain)

	return f
}

// randomRules returns n non-overlapping rules inside [0, 1000) with shifts
// in [-300, 300]. Deterministic for a given seed.
func randomRules(seed int64, n int) []interval.Interval {
	rng := rand.New(rand.NewSource(seed))
	rules := make([]interval.Interval, 0, n)
	start := int64(rng.Intn(20))
	for i := 0; i < n && start < 1000; i++ {
		length := int64(1 + rng.Intn(120))
		rules = append(rules, interval.Interval{
			Lower: start,
			Upper: start + length - 1,
			Shift: int64(rng.Intn(601) - 300),
		})
		start += length + int64(rng.Intn(40)) // 0 gap allowed: touching rules
	}
	// shuffle so New has to sort
	rng.Shuffle(len(rules), func(i, j int) { rules[i], rules[j] = rules[j], rules[i] })

	return rules
}

// samplePoints returns a dense interior sweep plus every interval boundary
// (and its neighbours) of the given functions, kept away from the sentinels.
func samplePoints(fns ...*piecewise.Function) []int64 {
	pts := make([]int64, 0, 2048)
	for x := int64(-400); x <= 1400; x++ {
		pts = append(pts, x)
	}
	for _, f := range fns {
		for _, iv := range f.Intervals() {
			for _, b := range []int64{iv.Lower, iv.Upper} {
				if b == interval.Min || b == interval.Max {
					continue
				}
				pts = append(pts, b-1, b, b+1)
			}
		}
	}

	return pts
}
