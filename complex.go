package numparse

import (
	"errors"
	"math"
)

// PartKind tags a parsed complex term as real or imaginary.
type PartKind int

const (
	// KindNone means the parse did not identify a term.
	KindNone PartKind = iota
	// KindReal tags a term with no imaginary-unit marker.
	KindReal
	// KindImaginary tags a term carrying the imaginary-unit marker.
	KindImaginary
)

func (k PartKind) String() string {
	switch k {
	case KindReal:
		return "real"
	case KindImaginary:
		return "imaginary"
	}
	return "none"
}

// Minimum and maximum representable complex values, for callers that
// want unbounded parses.
var (
	ComplexMin = complex(-math.MaxFloat64, -math.MaxFloat64)
	ComplexMax = complex(math.MaxFloat64, math.MaxFloat64)
)

// ParsePart parses one signed real or imaginary term into the matching
// lane of *z, leaving the other lane untouched. A term is an optional
// sign followed by a float64 coefficient and an optional case-insensitive
// imaginary-unit marker; a bare marker (with or without a sign) has an
// implicit coefficient of 1.
//
// Two consecutive sign characters report ErrFormat. The signed
// coefficient is checked against the corresponding lane of min and max
// (ErrBelowMin/ErrAboveMax). The returned kind identifies the lane that
// was written; leftover characters report ErrTrailing as usual.
func ParsePart(z *complex128, s string, min, max complex128) (PartKind, int, error) {
	return parsePartAt(z, s, 0, min, max)
}

func parsePartAt(z *complex128, s string, p int, min, max complex128) (PartKind, int, error) {
	p = skipSpace(s, p)

	// The sign is parsed by hand so that a unit lacking a coefficient but
	// carrying a sign ("-i") still parses, and so that a doubled sign is
	// caught (the float conversion would silently reject "+-3" without
	// saying why).
	sign, cur := scanSign(s, p)
	if sign == 0 {
		sign = 1
	}
	if dup, _ := scanSign(s, cur); dup != 0 {
		return KindNone, cur, ErrFormat
	}

	x, end, err := parseFloatAt(s, cur, -math.MaxFloat64, math.MaxFloat64)
	switch {
	case errors.Is(err, ErrSyntax):
		// A failed conversion must be an imaginary unit without a
		// coefficient, immediately at the cursor.
		if cur >= len(s) || lower(s[cur]) != imaginaryUnit {
			return KindNone, cur, ErrFormat
		}
		x, end = 1.0, cur
	case err == nil || errors.Is(err, ErrTrailing):
	default:
		return KindNone, end, err
	}
	cur = end

	if sign < 0 {
		x = -x
	}

	kind, cur := scanImaginaryUnit(s, cur)
	switch kind {
	case KindReal:
		if x < real(min) {
			return kind, cur, ErrBelowMin
		}
		if x > real(max) {
			return kind, cur, ErrAboveMax
		}
		*z = complex(x, imag(*z))
	case KindImaginary:
		if x < imag(min) {
			return kind, cur, ErrBelowMin
		}
		if x > imag(max) {
			return kind, cur, ErrAboveMax
		}
		*z = complex(real(*z), x)
	}

	if cur < len(s) {
		return kind, cur, ErrTrailing
	}
	return kind, cur, nil
}

// ParseComplex parses s as a complex literal of the form "a", "bi",
// "a + bi", or "bi + a", where each part follows the ParsePart grammar
// and the inter-part sign acts as a '+'/'-' operator. An omitted part is
// zero. Duplicate parts (two real or two imaginary terms) are not merged.
//
// If the text after the first part does not complete a well-formed second
// part of the opposite kind, the result holds the first part alone, the
// cursor rolls back to the end of the first part, and the outcome is
// ErrTrailing: a valid prefix is never invalidated by garbage after it.
func ParseComplex(s string, min, max complex128) (complex128, int, error) {
	p := skipSpace(s, 0)

	var z complex128
	firstKind, cur, err := parsePartAt(&z, s, p, min, max)
	if err == nil {
		return z, cur, nil
	}
	if !errors.Is(err, ErrTrailing) {
		return z, cur, err
	}

	// End of the first part. Any failure to complete a second part rolls
	// the cursor back here so the caller sees only the first part as
	// consumed.
	checkpoint := cur

	op, cur := scanSign(s, cur)
	if op == 0 {
		return z, checkpoint, ErrTrailing
	}

	// The second part lands in a scratch value so a duplicated kind can
	// be detected before committing it.
	var scratch complex128
	secondKind, cur, perr := parsePartAt(&scratch, s, cur, min, max)
	if perr != nil && !errors.Is(perr, ErrTrailing) {
		return z, checkpoint, ErrTrailing
	}
	if secondKind == firstKind {
		return z, checkpoint, ErrTrailing
	}

	switch secondKind {
	case KindReal:
		z = complex(float64(op)*real(scratch), imag(z))
	case KindImaginary:
		z = complex(real(z), float64(op)*imag(scratch))
	}

	if cur < len(s) {
		return z, cur, ErrTrailing
	}
	return z, cur, nil
}

// Complex128 parses s as a complex literal with unbounded parts,
// requiring the entire string to be consumed.
func Complex128(s string) (complex128, error) {
	v, cur, err := ParseComplex(s, ComplexMin, ComplexMax)
	if err != nil {
		return 0, &ParseError{Input: s, Offset: cur, Err: err}
	}
	return v, nil
}
