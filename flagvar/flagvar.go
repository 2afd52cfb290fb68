// Package flagvar provides flag.Value implementations backed by the
// numparse parsers, with optional caller-supplied bounds. Every type
// also satisfies pflag.Value (Set/String/Type) and exposes Get, so the
// values can be registered with either the standard library flag package
// or github.com/spf13/pflag.
//
// A flag argument must parse completely: trailing text after the value
// is an error at this surface.
package flagvar

import (
	"fmt"
	"math"

	"github.com/spf13/pflag"

	"github.com/vimeo/numparse"
)

var (
	_ pflag.Value = (*Complex128)(nil)
	_ pflag.Value = (*ByteSize)(nil)
	_ pflag.Value = (*Uint)(nil)
)

// Complex128 is a complex-number flag. Min and Max bound each lane
// inclusively; leaving both at zero means the full complex128 range.
type Complex128 struct {
	Value    complex128
	Min, Max complex128
}

func (v *Complex128) bounds() (complex128, complex128) {
	if v.Min == 0 && v.Max == 0 {
		return numparse.ComplexMin, numparse.ComplexMax
	}
	return v.Min, v.Max
}

func (v *Complex128) Set(s string) error {
	min, max := v.bounds()
	c, cur, err := numparse.ParseComplex(s, min, max)
	if err != nil {
		return &numparse.ParseError{Input: s, Offset: cur, Err: err}
	}
	v.Value = c
	return nil
}

func (v *Complex128) String() string {
	return fmt.Sprintf("%g", v.Value)
}

func (v *Complex128) Type() string {
	return "complex128"
}

func (v *Complex128) Get() any {
	return v.Value
}

// ByteSize is a memory-size flag ("512", "1.5kB", "2GB"). Default is
// the magnitude assumed when the argument has no unit suffix. Min and
// Max bound the byte count; leaving both at zero means the full uint64
// range.
type ByteSize struct {
	Value    numparse.ByteSize
	Default  numparse.Magnitude
	Min, Max uint64
}

func (v *ByteSize) bounds() (uint64, uint64) {
	if v.Min == 0 && v.Max == 0 {
		return 0, math.MaxUint64
	}
	return v.Min, v.Max
}

func (v *ByteSize) Set(s string) error {
	min, max := v.bounds()
	b, cur, err := numparse.ParseMemory(s, min, max, v.Default)
	if err != nil {
		return &numparse.ParseError{Input: s, Offset: cur, Err: err}
	}
	v.Value = numparse.ByteSize(b)
	return nil
}

func (v *ByteSize) String() string {
	return v.Value.String()
}

func (v *ByteSize) Type() string {
	return "bytesize"
}

func (v *ByteSize) Get() any {
	return uint64(v.Value)
}

// Uint is a bounded unsigned-integer flag. Base 0 auto-detects the
// radix from the argument's prefix. Leaving Min and Max at zero means
// the full uint64 range.
type Uint struct {
	Value    uint64
	Base     int
	Min, Max uint64
}

func (v *Uint) bounds() (uint64, uint64) {
	if v.Min == 0 && v.Max == 0 {
		return 0, math.MaxUint64
	}
	return v.Min, v.Max
}

func (v *Uint) Set(s string) error {
	min, max := v.bounds()
	u, cur, err := numparse.ParseUint(s, min, max, v.Base)
	if err != nil {
		return &numparse.ParseError{Input: s, Offset: cur, Err: err}
	}
	v.Value = u
	return nil
}

func (v *Uint) String() string {
	return fmt.Sprintf("%d", v.Value)
}

func (v *Uint) Type() string {
	return "uint"
}

func (v *Uint) Get() any {
	return v.Value
}
