// Package almanac reads the seed almanac: a list of seed values followed by
// seven remapping stages (seed→soil→fertilizer→water→light→temperature→
// humidity→location), each a list of "destination source length" rules.
//
// What:
//
//   - Parse / ParseFile turn the line-oriented text into an *Almanac.
//   - Stage enumerates the seven stages in their fixed order.
//   - Rule.Interval converts a half-open rule [source, source+length) into an
//     inclusive interval.Interval with shift destination-source.
//   - Almanac.Functions gap-fills each stage into a piecewise.Function.
//   - Almanac.Lookup evaluates one seed rule by rule, without composition.
//
// Input format:
//
//	seeds: 79 14 55 13
//
//	seed-to-soil map:
//	50 98 2
//	52 50 48
//
//	soil-to-fertilizer map:
//	...
//
// Errors:
//
//   - *ParseError wraps ErrNonNumeric, ErrFieldCount, ErrValueRange,
//     ErrEmptyRule, ErrUnknownStage, ErrStageOrder, ErrMissingHeader.
//   - ErrMissingSeeds, ErrEmptyStage: structural problems found at end of input.
//   - ErrOddSeeds: SeedRanges on an odd-length seed list.
package almanac
