// ABOUTME: Bridges the typed Value carrier to internal/codec's byte-level
// ABOUTME: encode/decode routines for each field code
package binfmt

import "github.com/binfmt/binfmt/internal/codec"

func encodeField(buf []byte, offset int, code byte, endian codec.Endianness, val Value) {
	switch code {
	case 'b':
		codec.EncodeUint(buf, offset, 1, uint64(uint8(val.Int8())), endian)
	case 'B':
		codec.EncodeUint(buf, offset, 1, uint64(val.Uint8()), endian)
	case 'h':
		codec.EncodeUint(buf, offset, 2, uint64(uint16(val.Int16())), endian)
	case 'H':
		codec.EncodeUint(buf, offset, 2, uint64(val.Uint16()), endian)
	case 'i':
		codec.EncodeUint(buf, offset, 4, uint64(uint32(val.Int32())), endian)
	case 'I':
		codec.EncodeUint(buf, offset, 4, uint64(val.Uint32()), endian)
	case 'q':
		codec.EncodeUint(buf, offset, 8, uint64(val.Int64()), endian)
	case 'Q':
		codec.EncodeUint(buf, offset, 8, val.Uint64(), endian)
	case 'e':
		codec.EncodeUint(buf, offset, 2, uint64(codec.EncodeFloat16(val.Float32())), endian)
	case 'f':
		codec.EncodeFloat32(buf, offset, val.Float32(), endian)
	case 'd':
		codec.EncodeFloat64(buf, offset, val.Float64(), endian)
	case 't', 'T':
		codec.EncodeBlob(buf, offset, val.Blob128(), endian)
	}
}

func decodeField(buf []byte, offset int, code byte, endian codec.Endianness) Value {
	switch code {
	case 'b':
		return Int8Value(int8(codec.SignExtend(codec.DecodeUint(buf, offset, 1, endian), 1)))
	case 'B':
		return Uint8Value(uint8(codec.DecodeUint(buf, offset, 1, endian)))
	case 'h':
		return Int16Value(int16(codec.SignExtend(codec.DecodeUint(buf, offset, 2, endian), 2)))
	case 'H':
		return Uint16Value(uint16(codec.DecodeUint(buf, offset, 2, endian)))
	case 'i':
		return Int32Value(int32(codec.SignExtend(codec.DecodeUint(buf, offset, 4, endian), 4)))
	case 'I':
		return Uint32Value(uint32(codec.DecodeUint(buf, offset, 4, endian)))
	case 'q':
		return Int64Value(codec.SignExtend(codec.DecodeUint(buf, offset, 8, endian), 8))
	case 'Q':
		return Uint64Value(codec.DecodeUint(buf, offset, 8, endian))
	case 'e':
		return Float16Value(codec.DecodeFloat16(uint16(codec.DecodeUint(buf, offset, 2, endian))))
	case 'f':
		return Float32Value(codec.DecodeFloat32(buf, offset, endian))
	case 'd':
		return Float64Value(codec.DecodeFloat64(buf, offset, endian))
	case 't', 'T':
		return Blob128Value(codec.DecodeBlob(buf, offset, endian))
	default:
		return Value{}
	}
}
