// Package numparse converts textual input into typed numeric values:
// unsigned integers, floats, complex numbers, and byte-magnitude memory
// sizes.
//
// Unlike the strconv equivalents, every parser in this package tracks an
// end-of-parse cursor and enforces caller-supplied inclusive bounds, so a
// caller can distinguish "the text was not a number" from "the text began
// with a valid number followed by something else" and can re-parse from
// the reported cursor. Outcomes are drawn from a closed set of sentinel
// errors (ErrSyntax, ErrRange, ErrBelowMin, ErrAboveMax, ErrTrailing,
// ErrBase, ErrFormat) matched with errors.Is. ErrTrailing is
// success-adjacent: the returned value and cursor are both valid, and the
// cursor points at the first unconsumed character.
//
// All parsers are pure functions over their inputs: no global state, no
// I/O, safe for unsynchronized concurrent use.
package numparse
