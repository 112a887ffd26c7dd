// Package pipeline collapses the seven almanac stages into one
// seed→location function and answers minimum-location queries on it.
//
// Compose folds piecewise.Compose left to right, so the stage order is kept
// (composition is not commutative). LowestLocation evaluates every seed
// range against the composed function, optionally on several goroutines;
// the function is read-only after Build, so workers share it freely.
//
// Options:
//
//   - WithWorkers(n): number of concurrent range queries (default 1).
//   - WithCoalesce():  merge equal-shift neighbours after each composition.
//   - WithLogger(l):   *slog.Logger for Debug progress (default: discard).
//
// Errors:
//
//   - ErrNoStages: Compose called without functions.
//   - ErrNoSeeds:  no non-empty seed range or seed to evaluate.
package pipeline
