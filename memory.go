package numparse

import (
	"errors"
	"math"
	"strconv"
)

// Magnitude is a power-of-ten exponent selecting a byte-count scale. It
// is applied to memory values whose text carries no explicit unit suffix.
type Magnitude int

// Decimal (SI) byte magnitudes.
const (
	MagByte  Magnitude = 0
	MagKilo  Magnitude = 3
	MagMega  Magnitude = 6
	MagGiga  Magnitude = 9
	MagTera  Magnitude = 12
	MagPeta  Magnitude = 15
	MagExa   Magnitude = 18
	MagZetta Magnitude = 21
	MagYotta Magnitude = 24
)

// ParseMemory parses s as a non-negative byte count: a float64 followed
// by an optional unit suffix ("kB", "MB", ... "YB", case-insensitive,
// bare "B" for bytes). Suffixes scale by decimal powers of ten, so
// "2GB" is 2_000_000_000 bytes. Without a suffix the value is scaled by
// 10^mag. Text after the number that is not a recognized suffix is left
// unconsumed: the default magnitude applies and the outcome is
// ErrTrailing.
//
// The scaled value is truncated toward zero; a result outside the uint64
// range reports ErrRange, and one outside [min, max] reports
// ErrBelowMin/ErrAboveMax. A leading '-' on a nonzero value surfaces as
// ErrBelowMin from the underlying float parse.
func ParseMemory(s string, min, max uint64, mag Magnitude) (uint64, int, error) {
	p := skipSpace(s, 0)

	x, cur, err := parseFloatAt(s, p, 0, math.MaxFloat64)
	exp := int(mag)
	switch {
	case err == nil:
	case errors.Is(err, ErrTrailing):
		if m, next, ok := scanMemoryUnit(s, cur); ok {
			exp = m
			cur = next
		}
	default:
		return 0, cur, err
	}

	x *= math.Pow(10, float64(exp))
	if x < 0 || x >= 1<<64 {
		return 0, cur, ErrRange
	}
	bytes := uint64(x)

	switch {
	case bytes < min:
		return bytes, cur, ErrBelowMin
	case bytes > max:
		return bytes, cur, ErrAboveMax
	case cur < len(s):
		return bytes, cur, ErrTrailing
	}
	return bytes, cur, nil
}

// Memory parses s as a byte count with unbounded range and the given
// default magnitude, requiring the entire string to be consumed.
func Memory(s string, mag Magnitude) (uint64, error) {
	v, cur, err := ParseMemory(s, 0, math.MaxUint64, mag)
	if err != nil {
		return 0, &ParseError{Input: s, Offset: cur, Err: err}
	}
	return v, nil
}

// ByteSize is a memory quantity in bytes that reads and writes the
// ParseMemory text format, making it usable directly as a field type in
// configuration structs decoded from YAML, TOML, or JSON.
type ByteSize uint64

var pow10 = [...]uint64{1, 1e3, 1e6, 1e9, 1e12, 1e15, 1e18}

// String renders the size with the largest decimal suffix that divides
// it exactly: 2_000_000_000 is "2GB", 1500 stays "1500B".
func (b ByteSize) String() string {
	v := uint64(b)
	if v == 0 {
		return "0B"
	}
	for i := len(pow10) - 1; i > 0; i-- {
		if v%pow10[i] == 0 {
			return strconv.FormatUint(v/pow10[i], 10) + byteUnitPrefixes[i-1:i] + "B"
		}
	}
	return strconv.FormatUint(v, 10) + "B"
}

// MarshalText implements encoding.TextMarshaler.
func (b ByteSize) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The default
// magnitude is bytes, and trailing text is an error.
func (b *ByteSize) UnmarshalText(text []byte) error {
	v, err := Memory(string(text), MagByte)
	if err != nil {
		return err
	}
	*b = ByteSize(v)
	return nil
}
