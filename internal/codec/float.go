package codec

import "math"

// EncodeFloat32 writes the IEEE-754 binary32 bit pattern of value into
// buf[offset:] in the given endianness.
func EncodeFloat32(buf []byte, offset int, value float32, endian Endianness) {
	EncodeUint(buf, offset, 4, uint64(math.Float32bits(value)), endian)
}

// DecodeFloat32 reads an IEEE-754 binary32 value from buf[offset:].
func DecodeFloat32(buf []byte, offset int, endian Endianness) float32 {
	return math.Float32frombits(uint32(DecodeUint(buf, offset, 4, endian)))
}

// EncodeFloat64 writes the IEEE-754 binary64 bit pattern of value into
// buf[offset:] in the given endianness.
func EncodeFloat64(buf []byte, offset int, value float64, endian Endianness) {
	EncodeUint(buf, offset, 8, math.Float64bits(value), endian)
}

// DecodeFloat64 reads an IEEE-754 binary64 value from buf[offset:].
func DecodeFloat64(buf []byte, offset int, endian Endianness) float64 {
	return math.Float64frombits(DecodeUint(buf, offset, 8, endian))
}
