package numparse

import (
	"errors"
	"fmt"
)

// The closed set of parse outcomes. Every parser in this package reports
// its result through one of these sentinels (or nil for success); compare
// with errors.Is.
var (
	// ErrSyntax indicates no parseable value was found at all. The
	// returned cursor equals the starting position.
	ErrSyntax = errors.New("no parseable value")

	// ErrRange indicates the parsed value overflows the target type.
	ErrRange = errors.New("value out of representable range")

	// ErrBelowMin indicates the parsed value is below the caller-supplied
	// minimum.
	ErrBelowMin = errors.New("value below minimum")

	// ErrAboveMax indicates the parsed value is above the caller-supplied
	// maximum.
	ErrAboveMax = errors.New("value above maximum")

	// ErrTrailing indicates a valid value was parsed but unconsumed text
	// remains. Both the value and the cursor are valid; the cursor points
	// at the first unconsumed character.
	ErrTrailing = errors.New("trailing characters after value")

	// ErrBase indicates an unsupported conversion radix argument.
	ErrBase = errors.New("invalid conversion base")

	// ErrFormat indicates a structurally invalid token sequence, such as
	// two consecutive sign characters or a duplicated complex part.
	ErrFormat = errors.New("malformed number")
)

// ParseError decorates one of the sentinel outcomes with the input that
// produced it and the offset of the failure. The whole-string helpers
// (Uint64, Float64, Complex128, Memory) and ByteSize.UnmarshalText return
// *ParseError; errors.Is still matches the underlying sentinel.
type ParseError struct {
	Input  string
	Offset int
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %q at offset %d: %v", e.Input, e.Offset, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
