package codec

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseEmpty(t *testing.T) {
	directives, err := Parse("")
	require.NoError(t, err)
	require.Empty(t, directives)
}

func TestParseFields(t *testing.T) {
	directives, err := Parse("bBhHiIqQefdtT")
	require.NoError(t, err)
	require.Len(t, directives, 13)
	for _, d := range directives {
		require.Equal(t, KindField, d.Kind)
		require.Equal(t, FieldWidths[d.Code], d.Width)
	}
}

func TestParseEndianness(t *testing.T) {
	directives, err := Parse("<I>Ih")
	require.NoError(t, err)
	require.Len(t, directives, 5)
	require.Equal(t, KindEndian, directives[0].Kind)
	require.Equal(t, LittleEndian, directives[0].Endian)
	require.Equal(t, KindField, directives[1].Kind)
	require.Equal(t, KindEndian, directives[2].Kind)
	require.Equal(t, BigEndian, directives[2].Endian)
}

func TestParsePaddingDefaultsToOne(t *testing.T) {
	directives, err := Parse("x")
	require.NoError(t, err)
	require.Len(t, directives, 1)
	require.Equal(t, KindPad, directives[0].Kind)
	require.Equal(t, 1, directives[0].Width)
}

func TestParsePaddingWithCount(t *testing.T) {
	directives, err := Parse("Ix4I")
	require.NoError(t, err)
	require.Len(t, directives, 3)
	require.Equal(t, KindPad, directives[1].Kind)
	require.Equal(t, 4, directives[1].Width)
}

// x0 is a valid zero-width pad directive, distinct from a bare "x" (width 1).
func TestParseZeroWidthPadding(t *testing.T) {
	directives, err := Parse("Ix0I")
	require.NoError(t, err)
	require.Len(t, directives, 3)
	require.Equal(t, KindPad, directives[1].Kind)
	require.Equal(t, 0, directives[1].Width)
}

func TestParseMultiplePaddingDirectives(t *testing.T) {
	directives, err := Parse("x2x3x4")
	require.NoError(t, err)
	require.Len(t, directives, 3)
	require.Equal(t, KindPad, directives[0].Kind)
	require.Equal(t, 2, directives[0].Width)
	require.Equal(t, KindPad, directives[1].Kind)
	require.Equal(t, 3, directives[1].Width)
	require.Equal(t, KindPad, directives[2].Kind)
	require.Equal(t, 4, directives[2].Width)
}

func TestParseUnknownCode(t *testing.T) {
	_, err := Parse("Z")
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrUnknownCode))
}

func TestParseCountOverflow(t *testing.T) {
	_, err := Parse("x999999999999999999999")
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrCountOverflow))
}

func TestParseTrailingEndianIsAnError(t *testing.T) {
	_, err := Parse("I<")
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrTrailingEndian))

	_, err = Parse(">")
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrTrailingEndian))
}

func TestParseIsPure(t *testing.T) {
	a, err := Parse("<IxH")
	require.NoError(t, err)
	b, err := Parse("<IxH")
	require.NoError(t, err)
	require.Equal(t, a, b)
}
