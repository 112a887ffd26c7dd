package almanac

import (
	"fmt"

	"github.com/katalvlaran/seedmap/interval"
	"github.com/katalvlaran/seedmap/piecewise"
)

// Rule maps [Source, Source+Length) onto [Destination, Destination+Length).
type Rule struct {
	Destination int64
	Source      int64
	Length      int64
}

// Interval converts the half-open rule into the inclusive interval
// [Source, Source+Length-1] with shift Destination-Source.
func (r Rule) Interval() interval.Interval {
	return interval.Interval{
		Lower: r.Source,
		Upper: interval.SatAdd(r.Source, r.Length-1),
		Shift: interval.SatSub(r.Destination, r.Source),
	}
}

// lookup maps x through r when r covers it.
func (r Rule) lookup(x int64) (int64, bool) {
	if x < r.Source || x-r.Source >= r.Length {
		return 0, false
	}

	return r.Destination + (x - r.Source), true
}

// SeedRange is a (start, length) pair from the seeds line.
type SeedRange struct {
	Start  int64
	Length int64
}

// Bounds returns the inclusive range [Start, Start+Length-1].
// ok is false for an empty range.
func (r SeedRange) Bounds() (lo, hi int64, ok bool) {
	if r.Length <= 0 {
		return 0, 0, false
	}

	return r.Start, interval.SatAdd(r.Start, r.Length-1), true
}

// Almanac holds the seeds line and the rules of every stage, indexed by Stage.
type Almanac struct {
	Seeds []int64
	Rules [StageCount][]Rule
}

// SeedRanges pairs consecutive seed values as (start, length).
// Returns ErrOddSeeds if the seed list has odd length.
func (a *Almanac) SeedRanges() ([]SeedRange, error) {
	if len(a.Seeds)%2 != 0 {
		return nil, fmt.Errorf("%w: %d values", ErrOddSeeds, len(a.Seeds))
	}
	out := make([]SeedRange, 0, len(a.Seeds)/2)
	for i := 0; i < len(a.Seeds); i += 2 {
		out = append(out, SeedRange{Start: a.Seeds[i], Length: a.Seeds[i+1]})
	}

	return out, nil
}

// Functions gap-fills every stage into a total piecewise.Function labelled
// with the stage's categories. Overlapping rules inside a stage are rejected
// with piecewise.ErrOverlap unless piecewise.WithoutOverlapCheck is passed.
func (a *Almanac) Functions(opts ...piecewise.Option) ([StageCount]*piecewise.Function, error) {
	var out [StageCount]*piecewise.Function
	for _, s := range Stages() {
		rules := a.Rules[s]
		if len(rules) == 0 {
			return out, fmt.Errorf("%w: %s", ErrEmptyStage, s)
		}
		ivs := make([]interval.Interval, len(rules))
		for i, r := range rules {
			ivs[i] = r.Interval()
		}
		f, err := piecewise.New(s.Source(), s.Destination(), ivs, opts...)
		if err != nil {
			return out, fmt.Errorf("stage %s: %w", s, err)
		}
		out[s] = f
	}

	return out, nil
}

// Lookup maps one seed through every stage in order, using the first rule
// that covers the current value and identity otherwise.
// Complexity: O(total rules).
func (a *Almanac) Lookup(seed int64) int64 {
	v := seed
	for _, rules := range a.Rules {
		for _, r := range rules {
			if out, ok := r.lookup(v); ok {
				v = out
				break
			}
		}
	}

	return v
}
