package interval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seedmap/interval"
)

// TestNew_Inverted verifies that New rejects lower > upper.
func TestNew_Inverted(t *testing.T) {
	_, err := interval.New(10, 9, 0)
	assert.ErrorIs(t, err, interval.ErrInverted, "lower > upper must error")

	iv, err := interval.New(10, 10, 3)
	require.NoError(t, err, "single-point interval is valid")
	assert.Equal(t, interval.Interval{Lower: 10, Upper: 10, Shift: 3}, iv)
}

// TestMerge covers overlap, disjointness and the combined shift.
func TestMerge(t *testing.T) {
	cases := []struct {
		name string
		a, b interval.Interval
		want interval.Interval
		ok   bool
	}{
		{
			// b seen from X is [5,14]; only [5,9] is shared with a.
			name: "PartialOverlap",
			a:    interval.Interval{Lower: 0, Upper: 9, Shift: 5},
			b:    interval.Interval{Lower: 10, Upper: 19, Shift: -3},
			want: interval.Interval{Lower: 5, Upper: 9, Shift: 2},
			ok:   true,
		},
		{
			name: "Contained",
			a:    interval.Interval{Lower: 0, Upper: 100, Shift: 0},
			b:    interval.Interval{Lower: 10, Upper: 19, Shift: 7},
			want: interval.Interval{Lower: 10, Upper: 19, Shift: 7},
			ok:   true,
		},
		{
			name: "SinglePointTouch",
			a:    interval.Interval{Lower: 0, Upper: 9, Shift: 1},
			b:    interval.Interval{Lower: 10, Upper: 20, Shift: 1},
			want: interval.Interval{Lower: 9, Upper: 9, Shift: 2},
			ok:   true,
		},
		{
			name: "DisjointAbove",
			a:    interval.Interval{Lower: 0, Upper: 9, Shift: 0},
			b:    interval.Interval{Lower: 10, Upper: 19, Shift: 0},
			ok:   false,
		},
		{
			name: "DisjointBelow",
			a:    interval.Interval{Lower: 50, Upper: 60, Shift: -10},
			b:    interval.Interval{Lower: 0, Upper: 39, Shift: 0},
			ok:   false,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := interval.Merge(tc.a, tc.b)
			assert.Equal(t, tc.ok, ok, "overlap flag")
			if tc.ok {
				assert.Equal(t, tc.want, got, "merged interval")
			}
		})
	}
}

// TestMerge_Pointwise checks b(a(x)) == merged(x) over the whole intersection.
func TestMerge_Pointwise(t *testing.T) {
	a := interval.Interval{Lower: -20, Upper: 30, Shift: 12}
	b := interval.Interval{Lower: 0, Upper: 25, Shift: -40}
	m, ok := interval.Merge(a, b)
	require.True(t, ok)

	for x := a.Lower; x <= a.Upper; x++ {
		y := a.Apply(x)
		if !b.Contains(y) {
			assert.False(t, m.Contains(x), "x=%d maps outside b yet lies in merge", x)
			continue
		}
		require.True(t, m.Contains(x), "x=%d maps into b but is missing from merge", x)
		assert.Equal(t, b.Apply(y), m.Apply(x), "x=%d", x)
	}
}

// TestMerge_Sentinels ensures unbounded intervals never wrap when shifted.
func TestMerge_Sentinels(t *testing.T) {
	all := interval.Identity(interval.Min, interval.Max)

	up := interval.Interval{Lower: interval.Min, Upper: interval.Max, Shift: 1000}
	m, ok := interval.Merge(up, all)
	require.True(t, ok)
	assert.Equal(t, interval.Min, m.Lower, "lower stays at sentinel")
	assert.Equal(t, interval.Max-1000, m.Upper, "upper clamps instead of wrapping")
	assert.Equal(t, int64(1000), m.Shift)

	down := interval.Interval{Lower: interval.Min, Upper: interval.Max, Shift: -1000}
	m, ok = interval.Merge(down, all)
	require.True(t, ok)
	assert.Equal(t, interval.Min+1000, m.Lower, "lower clamps instead of wrapping")
	assert.Equal(t, interval.Max, m.Upper)

	huge := interval.Interval{Lower: 0, Upper: 10, Shift: interval.Max}
	m, ok = interval.Merge(huge, interval.Interval{Lower: interval.Max - 5, Upper: interval.Max, Shift: interval.Max})
	require.True(t, ok)
	assert.Equal(t, interval.Max, m.Shift, "combined shift saturates")
	assert.Equal(t, int64(0), m.Lower)
	assert.Equal(t, int64(0), m.Upper)
}

// TestApplyAndImage verifies evaluation and the output range.
func TestApplyAndImage(t *testing.T) {
	iv := interval.Interval{Lower: 50, Upper: 97, Shift: 2}
	assert.Equal(t, int64(81), iv.Apply(79))
	lo, hi := iv.Image()
	assert.Equal(t, int64(52), lo)
	assert.Equal(t, int64(99), hi)

	open := interval.Interval{Lower: 98, Upper: interval.Max, Shift: 5}
	_, hi = open.Image()
	assert.Equal(t, interval.Max, hi, "image of an open end stays open")
}

// TestOverlapsAndContains exercises the inclusive bounds.
func TestOverlapsAndContains(t *testing.T) {
	iv := interval.Interval{Lower: 10, Upper: 20}
	assert.True(t, iv.Contains(10))
	assert.True(t, iv.Contains(20))
	assert.False(t, iv.Contains(21))
	assert.True(t, iv.Overlaps(20, 30))
	assert.True(t, iv.Overlaps(0, 10))
	assert.False(t, iv.Overlaps(21, 30))
	assert.False(t, iv.Overlaps(0, 9))
}

// TestString prints sentinels symbolically.
func TestString(t *testing.T) {
	assert.Equal(t, "[-inf,49]+0", interval.Identity(interval.Min, 49).String())
	assert.Equal(t, "[98,+inf]-48", interval.Interval{Lower: 98, Upper: interval.Max, Shift: -48}.String())
}
