package binfmt

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnpackUint16LittleEndian(t *testing.T) {
	values, n, err := Unpack([]byte{0x34, 0x12}, "<H")
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.Len(t, values, 1)
	require.Equal(t, uint16(0x1234), values[0].Uint16())
}

func TestUnpackSkipsPaddingWithoutProducingValues(t *testing.T) {
	buf := []byte{1, 0, 0, 0, 0xFF, 0xFF, 0xFF, 0xFF, 2, 0, 0, 0}
	values, n, err := Unpack(buf, "Ix4I")
	require.NoError(t, err)
	require.Equal(t, 12, n)
	require.Len(t, values, 2)
	require.Equal(t, uint32(1), values[0].Uint32())
	require.Equal(t, uint32(2), values[1].Uint32())
}

func TestUnpackMixedEndianness(t *testing.T) {
	// little-endian uint16 1, then switch to big-endian for a second uint16.
	buf := []byte{0x01, 0x00, 0x00, 0x02}
	values, n, err := Unpack(buf, "<H>H")
	require.NoError(t, err)
	require.Equal(t, 4, n)
	require.Len(t, values, 2)
	require.Equal(t, uint16(1), values[0].Uint16())
	require.Equal(t, uint16(2), values[1].Uint16())
}

func TestUnpackSignedFields(t *testing.T) {
	values, _, err := Unpack([]byte{0xFF}, "b")
	require.NoError(t, err)
	require.Equal(t, int8(-1), values[0].Int8())
}

func TestUnpackRejectsBufferTooSmall(t *testing.T) {
	_, _, err := Unpack([]byte{0x01}, "I")
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrBufferOverflow))
}

func TestUnpackRejectsBadFormat(t *testing.T) {
	_, _, err := Unpack([]byte{0x01}, "Z")
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrParse))
}

func TestUnpackEmptyFormatYieldsNoValues(t *testing.T) {
	values, n, err := Unpack([]byte{1, 2, 3}, "")
	require.NoError(t, err)
	require.Equal(t, 0, n)
	require.Empty(t, values)
}
