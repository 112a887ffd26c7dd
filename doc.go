// Package seedmap finds the lowest location reachable from large ranges of
// almanac seeds by composing seven piecewise-linear remapping stages into a
// single function, instead of pushing every seed through every stage.
//
// 🚀 What is inside?
//
//	interval/  — Interval{Lower, Upper, Shift}, saturating bound arithmetic, Merge
//	piecewise/ — total functions: gap-filling (New), Compose, Apply, MinOver
//	almanac/   — the text format: seeds line, seven ordered stages, rule triples
//	pipeline/  — stage fold (Build/Compose) and seed-range minimum (LowestLocation)
//	cmd/seedmap/ — command line front end (cobra, YAML config, slog)
//
// ✨ Why compose?
//
//   - Seed ranges span billions of values; enumeration is hopeless.
//   - Every stage is x ↦ x + shift on a handful of ranges, so two stages
//     intersect into another such function, and seven collapse into one.
//   - Inside each interval the function increases, so the minimum over a
//     range only needs the left edge of each overlapping interval.
//
// Quick ASCII example:
//
//	seed   50 ──────────── 97  98 99
//	        │ +2            │   │ -48
//	soil   52 ──────────── 99  50 51
//
//	go get github.com/katalvlaran/seedmap
package seedmap
