package codec

import "encoding/binary"

// order returns the stdlib byte-order implementation matching e. Reaching
// for encoding/binary's helpers instead of hand-rolled shift loops follows
// the idiom phiryll-lexy uses for its fixed-width integer codecs.
func order(e Endianness) binary.ByteOrder {
	if e == BigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// EncodeUint writes the low width*8 bits of value into buf[offset:] in the
// given endianness. width must be 1, 2, 4, or 8.
func EncodeUint(buf []byte, offset, width int, value uint64, endian Endianness) {
	switch width {
	case 1:
		buf[offset] = byte(value)
	case 2:
		order(endian).PutUint16(buf[offset:], uint16(value))
	case 4:
		order(endian).PutUint32(buf[offset:], uint32(value))
	case 8:
		order(endian).PutUint64(buf[offset:], value)
	}
}

// DecodeUint reads width bytes from buf[offset:] in the given endianness
// and returns them zero-extended to 64 bits.
func DecodeUint(buf []byte, offset, width int, endian Endianness) uint64 {
	switch width {
	case 1:
		return uint64(buf[offset])
	case 2:
		return uint64(order(endian).Uint16(buf[offset:]))
	case 4:
		return uint64(order(endian).Uint32(buf[offset:]))
	case 8:
		return order(endian).Uint64(buf[offset:])
	}
	return 0
}

// SignExtend reinterprets the low width*8 bits of v as a two's-complement
// signed integer of that width, sign-extended to 64 bits.
func SignExtend(v uint64, width int) int64 {
	bits := uint(width) * 8
	shift := 64 - bits
	return int64(v<<shift) >> shift
}
