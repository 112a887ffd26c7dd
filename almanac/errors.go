package almanac

import (
	"errors"
	"fmt"
)

var (
	// ErrNonNumeric indicates a token that is not a decimal integer.
	ErrNonNumeric = errors.New("almanac: non-numeric token")
	// ErrFieldCount indicates a rule line without exactly three fields.
	ErrFieldCount = errors.New("almanac: rule must have exactly three fields")
	// ErrValueRange indicates a negative value or one that does not fit in int64.
	ErrValueRange = errors.New("almanac: value out of range")
	// ErrEmptyRule indicates a rule with length 0.
	ErrEmptyRule = errors.New("almanac: rule length must be positive")
	// ErrUnknownStage indicates a "<name> map:" header with an unknown name.
	ErrUnknownStage = errors.New("almanac: unknown stage")
	// ErrStageOrder indicates a stage header out of the fixed order.
	ErrStageOrder = errors.New("almanac: stage out of order")
	// ErrMissingHeader indicates a rule line before any stage header.
	ErrMissingHeader = errors.New("almanac: rule outside of a stage")
	// ErrMissingSeeds indicates the seeds line is absent, late or empty.
	ErrMissingSeeds = errors.New("almanac: missing seeds")
	// ErrEmptyStage indicates a stage without any rule.
	ErrEmptyStage = errors.New("almanac: stage has no rules")
	// ErrOddSeeds indicates a seed list that cannot be split into (start, length) pairs.
	ErrOddSeeds = errors.New("almanac: seed list has odd length")
)

// ParseError reports where and why a line was rejected.
// Kind is one of the sentinels above; errors.Is(err, Kind) holds.
type ParseError struct {
	Line  int    // 1-based line number
	Token string // offending token or line
	Kind  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v (line %d: %q)", e.Kind, e.Line, e.Token)
}

func (e *ParseError) Unwrap() error {
	return e.Kind
}
