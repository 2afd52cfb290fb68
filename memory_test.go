package numparse

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMemory(t *testing.T) {
	huge := uint64(math.MaxUint64)

	for _, itbl := range []struct {
		name     string
		in       string
		min, max uint64
		mag      Magnitude
		expected uint64
		cursor   int
		err      error
	}{
		{
			name:     "gigabytes",
			in:       "2GB",
			max:      huge,
			expected: 2_000_000_000,
			cursor:   3,
		},
		{
			name:     "default_magnitude_mega",
			in:       "5",
			max:      huge,
			mag:      MagMega,
			expected: 5_000_000,
			cursor:   1,
		},
		{
			name:     "default_magnitude_bytes",
			in:       "512",
			max:      huge,
			expected: 512,
			cursor:   3,
		},
		{
			name:     "fractional_kilobytes",
			in:       "1.5kB",
			max:      huge,
			expected: 1500,
			cursor:   5,
		},
		{
			name:     "case_insensitive_suffix",
			in:       "2gb",
			max:      huge,
			expected: 2_000_000_000,
			cursor:   3,
		},
		{
			name:     "bare_byte_suffix",
			in:       "10B",
			max:      huge,
			expected: 10,
			cursor:   3,
		},
		{
			name:     "spaced_suffix",
			in:       "1 TB",
			max:      huge,
			expected: 1_000_000_000_000,
			cursor:   4,
		},
		{
			name:     "truncates_toward_zero",
			in:       "1.9B",
			max:      huge,
			expected: 1,
			cursor:   4,
		},
		{
			name:     "unrecognized_suffix_falls_back",
			in:       "5qux",
			max:      huge,
			mag:      MagKilo,
			expected: 5000,
			cursor:   1,
			err:      ErrTrailing,
		},
		{
			name:     "prefix_without_byte_unit",
			in:       "5k",
			max:      huge,
			expected: 5,
			cursor:   1,
			err:      ErrTrailing,
		},
		{
			name: "negative",
			in:   "-1",
			max:  huge,
			err:  ErrBelowMin,
		},
		{
			name: "too_large",
			in:   "1e30",
			max:  huge,
			err:  ErrRange,
		},
		{
			name: "suffix_overflows",
			in:   "2YB",
			max:  huge,
			err:  ErrRange,
		},
		{
			name: "no_digits",
			in:   "lots",
			max:  huge,
			err:  ErrSyntax,
		},
		{
			name:     "below_min_bound",
			in:       "2kB",
			min:      3000,
			max:      huge,
			expected: 2000,
			cursor:   3,
			err:      ErrBelowMin,
		},
		{
			name:     "above_max_bound",
			in:       "2kB",
			max:      1000,
			expected: 2000,
			cursor:   3,
			err:      ErrAboveMax,
		},
	} {
		tbl := itbl
		t.Run(tbl.name, func(t *testing.T) {
			t.Parallel()

			v, cur, err := ParseMemory(tbl.in, tbl.min, tbl.max, tbl.mag)
			if tbl.err != nil {
				require.ErrorIs(t, err, tbl.err)
			} else {
				require.NoError(t, err)
			}
			if err == nil || err == ErrTrailing || err == ErrBelowMin || err == ErrAboveMax {
				assert.EqualValues(t, tbl.expected, v)
				assert.EqualValues(t, tbl.cursor, cur)
			}
		})
	}
}

func TestMemory(t *testing.T) {
	t.Parallel()

	v, err := Memory("2GB", MagByte)
	require.NoError(t, err)
	assert.EqualValues(t, 2_000_000_000, v)

	_, err = Memory("5qux", MagByte)
	assert.ErrorIs(t, err, ErrTrailing)
}

func TestByteSizeString(t *testing.T) {
	for _, itbl := range []struct {
		in       ByteSize
		expected string
	}{
		{in: 0, expected: "0B"},
		{in: 7, expected: "7B"},
		{in: 1500, expected: "1500B"},
		{in: 5_000_000, expected: "5MB"},
		{in: 2_000_000_000, expected: "2GB"},
		{in: 1_000_000_000_000_000_000, expected: "1EB"},
	} {
		tbl := itbl
		t.Run(tbl.expected, func(t *testing.T) {
			t.Parallel()
			assert.EqualValues(t, tbl.expected, tbl.in.String())
		})
	}
}

func TestByteSizeTextRoundTrip(t *testing.T) {
	t.Parallel()

	var b ByteSize
	require.NoError(t, b.UnmarshalText([]byte("2GB")))
	assert.EqualValues(t, 2_000_000_000, b)

	out, err := b.MarshalText()
	require.NoError(t, err)
	assert.EqualValues(t, "2GB", string(out))

	var again ByteSize
	require.NoError(t, again.UnmarshalText(out))
	assert.EqualValues(t, b, again)

	assert.ErrorIs(t, b.UnmarshalText([]byte("2GB extra")), ErrTrailing)
	assert.ErrorIs(t, b.UnmarshalText([]byte("-1")), ErrBelowMin)
}
