package numparse

import "math"

// ParseUint converts the leading portion of s into a uint64 in the style
// of strtoul: leading whitespace is skipped, an optional sign is
// recognized, and digits are consumed up to the first character invalid
// in the given base. base may be 0 (auto-detect: "0x" selects 16, a
// leading "0" selects 8, otherwise 10) or any value in [2, 36];
// anything else reports ErrBase.
//
// A leading '-' is accepted only when the magnitude is exactly zero;
// a negative nonzero value reports ErrBelowMin. Overflow of uint64
// saturates the value at math.MaxUint64, consumes the remaining digits,
// and reports ErrRange. Values outside [min, max] report ErrBelowMin or
// ErrAboveMax. If characters remain after the digits the value is still
// returned, with ErrTrailing and the cursor at the first leftover
// character. ErrSyntax is reported when no digits were consumed, with
// the cursor at 0.
func ParseUint(s string, min, max uint64, base int) (uint64, int, error) {
	if (base < 2 && base != 0) || base > 36 {
		return 0, 0, ErrBase
	}

	i := skipSpace(s, 0)
	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}

	b := base
	if i < len(s) && s[i] == '0' {
		hasHexPrefix := i+2 < len(s) && lower(s[i+1]) == 'x' && isHexDigit(s[i+2])
		if (b == 0 || b == 16) && hasHexPrefix {
			b = 16
			i += 2
		} else if b == 0 {
			b = 8
		}
	} else if b == 0 {
		b = 10
	}

	var (
		val      uint64
		digits   int
		overflow bool
	)
	for i < len(s) {
		d, ok := digitVal(s[i], b)
		if !ok {
			break
		}
		if val > (math.MaxUint64-uint64(d))/uint64(b) {
			overflow = true
		} else {
			val = val*uint64(b) + uint64(d)
		}
		i++
		digits++
	}

	if digits == 0 {
		return 0, 0, ErrSyntax
	}
	switch {
	case overflow:
		return math.MaxUint64, i, ErrRange
	case val < min:
		return val, i, ErrBelowMin
	case val > max:
		return val, i, ErrAboveMax
	case neg && val != 0:
		return val, i, ErrBelowMin
	case i < len(s):
		return val, i, ErrTrailing
	}
	return val, i, nil
}

// Uint64 parses s as an unsigned integer with auto-detected base,
// requiring the entire string to be consumed.
func Uint64(s string) (uint64, error) {
	v, cur, err := ParseUint(s, 0, math.MaxUint64, 0)
	if err != nil {
		return 0, &ParseError{Input: s, Offset: cur, Err: err}
	}
	return v, nil
}

func digitVal(c byte, base int) (int, bool) {
	var d int
	switch {
	case c >= '0' && c <= '9':
		d = int(c - '0')
	case c >= 'a' && c <= 'z':
		d = int(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		d = int(c-'A') + 10
	default:
		return 0, false
	}
	if d >= base {
		return 0, false
	}
	return d, true
}
