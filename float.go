package numparse

import (
	"errors"
	"math"
	"strconv"
)

// ParseFloat converts the leading portion of s into a float64 accepting
// the full strtod grammar: decimal, exponent, and hexadecimal-float
// forms, plus "inf" and "nan". Leading whitespace is skipped.
//
// ErrSyntax is reported with the cursor at 0 when no number is
// recognized. Overflow of float64 reports ErrRange with the value
// clamped to ±Inf. Values outside [min, max] report ErrBelowMin or
// ErrAboveMax. Leftover characters report ErrTrailing with the cursor
// at the first unconsumed one.
func ParseFloat(s string, min, max float64) (float64, int, error) {
	return parseFloatAt(s, 0, min, max)
}

// parseFloatAt is ParseFloat starting at offset p; on ErrSyntax the
// returned cursor is p itself.
func parseFloatAt(s string, p int, min, max float64) (float64, int, error) {
	start := skipSpace(s, p)
	lit, end := scanFloat(s, start, true)
	if end == start {
		return 0, p, ErrSyntax
	}

	f, convErr := strconv.ParseFloat(lit, 64)
	if convErr != nil {
		if errors.Is(convErr, strconv.ErrRange) {
			return f, end, ErrRange
		}
		// scanFloat only emits literals strconv accepts
		return 0, p, ErrSyntax
	}

	switch {
	case f < min:
		return f, end, ErrBelowMin
	case f > max:
		return f, end, ErrAboveMax
	case end < len(s):
		return f, end, ErrTrailing
	}
	return f, end, nil
}

// Float64 parses s as a float64 with no bounds, requiring the entire
// string to be consumed.
func Float64(s string) (float64, error) {
	v, cur, err := ParseFloat(s, -math.MaxFloat64, math.MaxFloat64)
	if err != nil {
		return 0, &ParseError{Input: s, Offset: cur, Err: err}
	}
	return v, nil
}
