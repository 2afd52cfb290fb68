package numparse

import (
	"errors"
	"math/big"
)

// BigComplex is the arbitrary-precision counterpart of complex128: an
// ordered pair of big.Float lanes.
type BigComplex struct {
	Re *big.Float
	Im *big.Float
}

// NewBigComplex returns a zero-valued BigComplex with both lanes at the
// given precision and rounding mode.
func NewBigComplex(prec uint, mode big.RoundingMode) *BigComplex {
	return &BigComplex{
		Re: new(big.Float).SetPrec(prec).SetMode(mode),
		Im: new(big.Float).SetPrec(prec).SetMode(mode),
	}
}

func validBigBase(base int) bool {
	return base == 0 || base == 10 || base == 16
}

// ParseBigFloat is ParseFloat at arbitrary precision. Supported bases
// are 0, 10, and 16; hexadecimal input carries a "0x" prefix, so base
// 0 and 16 behave alike. nil min or max means unbounded on that side.
//
// Arbitrary precision leaves no overflow to report, so ErrRange does
// not occur, and big.Float has no NaN: "nan" input reports ErrSyntax.
func ParseBigFloat(s string, min, max *big.Float, base int, prec uint, mode big.RoundingMode) (*big.Float, int, error) {
	return parseBigFloatAt(s, 0, min, max, base, prec, mode)
}

func parseBigFloatAt(s string, p int, min, max *big.Float, base int, prec uint, mode big.RoundingMode) (*big.Float, int, error) {
	if !validBigBase(base) {
		return nil, p, ErrBase
	}

	start := skipSpace(s, p)
	lit, end := scanFloat(s, start, base != 10)
	if end == start {
		return nil, p, ErrSyntax
	}

	f, _, convErr := big.ParseFloat(lit, 0, prec, mode)
	if convErr != nil {
		return nil, p, ErrSyntax
	}

	switch {
	case min != nil && f.Cmp(min) < 0:
		return f, end, ErrBelowMin
	case max != nil && f.Cmp(max) > 0:
		return f, end, ErrAboveMax
	case end < len(s):
		return f, end, ErrTrailing
	}
	return f, end, nil
}

// ParseBigPart is ParsePart at arbitrary precision, writing into the
// matching lane of z. nil min or max means unbounded; non-nil bounds
// compare the term against their corresponding lane.
func ParseBigPart(z *BigComplex, s string, min, max *BigComplex, base int, prec uint, mode big.RoundingMode) (PartKind, int, error) {
	return parseBigPartAt(z, s, 0, min, max, base, prec, mode)
}

func parseBigPartAt(z *BigComplex, s string, p int, min, max *BigComplex, base int, prec uint, mode big.RoundingMode) (PartKind, int, error) {
	if !validBigBase(base) {
		return KindNone, p, ErrBase
	}

	p = skipSpace(s, p)

	sign, cur := scanSign(s, p)
	if sign == 0 {
		sign = 1
	}
	if dup, _ := scanSign(s, cur); dup != 0 {
		return KindNone, cur, ErrFormat
	}

	x, end, err := parseBigFloatAt(s, cur, nil, nil, base, prec, mode)
	switch {
	case errors.Is(err, ErrSyntax):
		if cur >= len(s) || lower(s[cur]) != imaginaryUnit {
			return KindNone, cur, ErrFormat
		}
		x = big.NewFloat(1).SetPrec(prec).SetMode(mode)
		end = cur
	case err == nil || errors.Is(err, ErrTrailing):
	default:
		return KindNone, end, err
	}
	cur = end

	if sign < 0 {
		x.Neg(x)
	}

	kind, cur := scanImaginaryUnit(s, cur)
	switch kind {
	case KindReal:
		if min != nil && min.Re != nil && x.Cmp(min.Re) < 0 {
			return kind, cur, ErrBelowMin
		}
		if max != nil && max.Re != nil && x.Cmp(max.Re) > 0 {
			return kind, cur, ErrAboveMax
		}
		z.Re = x
	case KindImaginary:
		if min != nil && min.Im != nil && x.Cmp(min.Im) < 0 {
			return kind, cur, ErrBelowMin
		}
		if max != nil && max.Im != nil && x.Cmp(max.Im) > 0 {
			return kind, cur, ErrAboveMax
		}
		z.Im = x
	}

	if cur < len(s) {
		return kind, cur, ErrTrailing
	}
	return kind, cur, nil
}

// ParseBigComplex is ParseComplex at arbitrary precision, with the same
// checkpoint/rollback behavior: a malformed continuation after a valid
// first part rolls the cursor back and reports ErrTrailing.
func ParseBigComplex(s string, min, max *BigComplex, base int, prec uint, mode big.RoundingMode) (*BigComplex, int, error) {
	if !validBigBase(base) {
		return nil, 0, ErrBase
	}

	p := skipSpace(s, 0)

	z := NewBigComplex(prec, mode)
	firstKind, cur, err := parseBigPartAt(z, s, p, min, max, base, prec, mode)
	if err == nil {
		return z, cur, nil
	}
	if !errors.Is(err, ErrTrailing) {
		return z, cur, err
	}

	checkpoint := cur

	op, cur := scanSign(s, cur)
	if op == 0 {
		return z, checkpoint, ErrTrailing
	}

	scratch := NewBigComplex(prec, mode)
	secondKind, cur, perr := parseBigPartAt(scratch, s, cur, min, max, base, prec, mode)
	if perr != nil && !errors.Is(perr, ErrTrailing) {
		return z, checkpoint, ErrTrailing
	}
	if secondKind == firstKind {
		return z, checkpoint, ErrTrailing
	}

	switch secondKind {
	case KindReal:
		if op < 0 {
			scratch.Re.Neg(scratch.Re)
		}
		z.Re = scratch.Re
	case KindImaginary:
		if op < 0 {
			scratch.Im.Neg(scratch.Im)
		}
		z.Im = scratch.Im
	}

	if cur < len(s) {
		return z, cur, ErrTrailing
	}
	return z, cur, nil
}
