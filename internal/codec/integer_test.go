package codec

import "testing"

func TestEncodeDecodeUintRoundTrip(t *testing.T) {
	cases := []struct {
		width  int
		value  uint64
		endian Endianness
	}{
		{1, 0xAB, LittleEndian},
		{1, 0xAB, BigEndian},
		{2, 0x1234, LittleEndian},
		{2, 0x1234, BigEndian},
		{4, 0xDEADBEEF, LittleEndian},
		{4, 0xDEADBEEF, BigEndian},
		{8, 0x0123456789ABCDEF, LittleEndian},
		{8, 0x0123456789ABCDEF, BigEndian},
	}

	for _, c := range cases {
		buf := make([]byte, c.width)
		EncodeUint(buf, 0, c.width, c.value, c.endian)
		got := DecodeUint(buf, 0, c.width, c.endian)
		if got != c.value {
			t.Errorf("width=%d endian=%v: round-trip got %#x, want %#x", c.width, c.endian, got, c.value)
		}
	}
}

func TestEncodeUintByteOrder(t *testing.T) {
	buf := make([]byte, 4)
	EncodeUint(buf, 0, 4, 0xDEADBEEF, LittleEndian)
	want := []byte{0xEF, 0xBE, 0xAD, 0xDE}
	for i, b := range want {
		if buf[i] != b {
			t.Fatalf("little-endian byte %d: got %#x, want %#x", i, buf[i], b)
		}
	}

	EncodeUint(buf, 0, 4, 0xDEADBEEF, BigEndian)
	want = []byte{0xDE, 0xAD, 0xBE, 0xEF}
	for i, b := range want {
		if buf[i] != b {
			t.Fatalf("big-endian byte %d: got %#x, want %#x", i, buf[i], b)
		}
	}
}

func TestSignExtend(t *testing.T) {
	cases := []struct {
		v     uint64
		width int
		want  int64
	}{
		{0xFF, 1, -1},
		{0x7F, 1, 127},
		{0x80, 1, -128},
		{0xFFFF, 2, -1},
		{0x8000, 2, -32768},
		{0xFFFFFFFF, 4, -1},
		{0x80000000, 4, -2147483648},
		{0xFFFFFFFFFFFFFFFF, 8, -1},
	}

	for _, c := range cases {
		got := SignExtend(c.v, c.width)
		if got != c.want {
			t.Errorf("SignExtend(%#x, %d) = %d, want %d", c.v, c.width, got, c.want)
		}
	}
}
