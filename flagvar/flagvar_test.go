package flagvar

import (
	"flag"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vimeo/numparse"
)

// the values must also satisfy the stdlib flag interfaces
var (
	_ flag.Value  = (*Complex128)(nil)
	_ flag.Getter = (*Complex128)(nil)
	_ flag.Value  = (*ByteSize)(nil)
	_ flag.Value  = (*Uint)(nil)
)

func TestFlagSetParse(t *testing.T) {
	t.Parallel()

	var (
		c Complex128
		m = ByteSize{Default: numparse.MagMega}
		u = Uint{Base: 0}
	)

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Var(&c, "origin", "center of the plot")
	fs.Var(&m, "memory", "memory limit")
	fs.Var(&u, "iterations", "maximum iterations")

	require.NoError(t, fs.Parse([]string{
		"--origin=-0.5+0.25i",
		"--memory=2GB",
		"--iterations=0x100",
	}))

	assert.EqualValues(t, complex(-0.5, 0.25), c.Value)
	assert.EqualValues(t, complex(-0.5, 0.25), c.Get())
	assert.EqualValues(t, 2_000_000_000, m.Value)
	assert.EqualValues(t, 256, u.Value)
}

func TestComplex128Value(t *testing.T) {
	t.Parallel()

	var v Complex128
	require.NoError(t, v.Set("3+4i"))
	assert.EqualValues(t, complex(3, 4), v.Value)
	assert.EqualValues(t, "(3+4i)", v.String())
	assert.EqualValues(t, "complex128", v.Type())

	// a flag argument must be consumed completely
	err := v.Set("3+4")
	assert.ErrorIs(t, err, numparse.ErrTrailing)

	assert.ErrorIs(t, v.Set("+-3"), numparse.ErrFormat)

	bounded := Complex128{Min: complex(-1, -1), Max: complex(1, 1)}
	assert.ErrorIs(t, bounded.Set("5"), numparse.ErrAboveMax)
	require.NoError(t, bounded.Set("0.5-0.5i"))
	assert.EqualValues(t, complex(0.5, -0.5), bounded.Value)
}

func TestByteSizeValue(t *testing.T) {
	t.Parallel()

	v := ByteSize{Default: numparse.MagMega}
	require.NoError(t, v.Set("5"))
	assert.EqualValues(t, 5_000_000, v.Value)
	assert.EqualValues(t, "5MB", v.String())
	assert.EqualValues(t, "bytesize", v.Type())
	assert.EqualValues(t, uint64(5_000_000), v.Get())

	require.NoError(t, v.Set("1.5kB"))
	assert.EqualValues(t, 1500, v.Value)

	assert.ErrorIs(t, v.Set("5qux"), numparse.ErrTrailing)

	bounded := ByteSize{Min: 1000, Max: 1_000_000}
	assert.ErrorIs(t, bounded.Set("2MB"), numparse.ErrAboveMax)
	assert.ErrorIs(t, bounded.Set("10B"), numparse.ErrBelowMin)
}

func TestUintValue(t *testing.T) {
	t.Parallel()

	var v Uint
	require.NoError(t, v.Set("42"))
	assert.EqualValues(t, 42, v.Value)
	assert.EqualValues(t, "42", v.String())
	assert.EqualValues(t, "uint", v.Type())

	assert.ErrorIs(t, v.Set("-5"), numparse.ErrBelowMin)
	assert.ErrorIs(t, v.Set("12 cats"), numparse.ErrTrailing)

	bounded := Uint{Min: 1, Max: 10}
	assert.ErrorIs(t, bounded.Set("50"), numparse.ErrAboveMax)
	require.NoError(t, bounded.Set("7"))
	assert.EqualValues(t, 7, bounded.Value)
}
