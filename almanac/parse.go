package almanac

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

const (
	seedsPrefix  = "seeds:"
	headerSuffix = " map:"
)

// ParseFile opens path and parses it with Parse.
func ParseFile(path string) (*Almanac, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads an almanac in a single pass. The seeds line must come first;
// stage headers must follow the fixed order; blank lines are ignored.
// Every stage must end up with at least one rule.
func Parse(r io.Reader) (*Almanac, error) {
	var (
		a       = &Almanac{}
		seeds   bool
		current = Stage(-1)
		lineNo  int
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			continue

		case strings.HasPrefix(line, seedsPrefix):
			if seeds || current >= 0 {
				return nil, &ParseError{Line: lineNo, Token: line, Kind: ErrMissingSeeds}
			}
			fields := strings.Fields(strings.TrimPrefix(line, seedsPrefix))
			if len(fields) == 0 {
				return nil, &ParseError{Line: lineNo, Token: line, Kind: ErrMissingSeeds}
			}
			vals, err := parseFields(lineNo, fields)
			if err != nil {
				return nil, err
			}
			a.Seeds, seeds = vals, true

		case strings.HasSuffix(line, headerSuffix):
			if !seeds {
				return nil, &ParseError{Line: lineNo, Token: line, Kind: ErrMissingSeeds}
			}
			name := strings.TrimSuffix(line, headerSuffix)
			s, ok := stageByName(name)
			if !ok {
				return nil, &ParseError{Line: lineNo, Token: name, Kind: ErrUnknownStage}
			}
			if s != current+1 {
				return nil, &ParseError{Line: lineNo, Token: name, Kind: ErrStageOrder}
			}
			current = s

		default:
			if !seeds {
				return nil, &ParseError{Line: lineNo, Token: line, Kind: ErrMissingSeeds}
			}
			if current < 0 {
				return nil, &ParseError{Line: lineNo, Token: line, Kind: ErrMissingHeader}
			}
			rule, err := parseRule(lineNo, line)
			if err != nil {
				return nil, err
			}
			a.Rules[current] = append(a.Rules[current], rule)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("almanac: read: %w", err)
	}

	if !seeds {
		return nil, ErrMissingSeeds
	}
	for _, s := range Stages() {
		if len(a.Rules[s]) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrEmptyStage, s)
		}
	}

	return a, nil
}

func parseRule(lineNo int, line string) (Rule, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return Rule{}, &ParseError{Line: lineNo, Token: line, Kind: ErrFieldCount}
	}
	vals, err := parseFields(lineNo, fields)
	if err != nil {
		return Rule{}, err
	}
	if vals[2] == 0 {
		return Rule{}, &ParseError{Line: lineNo, Token: line, Kind: ErrEmptyRule}
	}

	return Rule{Destination: vals[0], Source: vals[1], Length: vals[2]}, nil
}

// parseFields converts non-negative decimal tokens.
func parseFields(lineNo int, fields []string) ([]int64, error) {
	out := make([]int64, len(fields))
	for i, tok := range fields {
		v, err := strconv.ParseInt(tok, 10, 64)
		switch {
		case err == nil && v < 0:
			return nil, &ParseError{Line: lineNo, Token: tok, Kind: ErrValueRange}
		case errors.Is(err, strconv.ErrRange):
			return nil, &ParseError{Line: lineNo, Token: tok, Kind: ErrValueRange}
		case err != nil:
			return nil, &ParseError{Line: lineNo, Token: tok, Kind: ErrNonNumeric}
		}
		out[i] = v
	}

	return out, nil
}
