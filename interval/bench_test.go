package interval_test

import (
	"testing"

	"github.com/katalvlaran/seedmap/interval"
)

// BenchmarkMerge measures a single overlapping pairwise merge.
func BenchmarkMerge(b *testing.B) {
	x := interval.Interval{Lower: 0, Upper: 1 << 32, Shift: 1 << 20}
	y := interval.Interval{Lower: 1 << 21, Upper: 1 << 33, Shift: -(1 << 10)}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = interval.Merge(x, y)
	}
}
