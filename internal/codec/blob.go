package codec

// BlobWidth is the fixed width of the 't'/'T' opaque 128-bit codes.
const BlobWidth = 16

// EncodeBlob writes a 16-byte opaque value into buf[offset:]. Under
// little-endian the buffer image equals the host array byte for byte;
// under big-endian it is reversed. The blob is never interpreted as a
// number, only reversed as a whole.
func EncodeBlob(buf []byte, offset int, value [BlobWidth]byte, endian Endianness) {
	if endian == LittleEndian {
		copy(buf[offset:offset+BlobWidth], value[:])
		return
	}
	for i := 0; i < BlobWidth; i++ {
		buf[offset+i] = value[BlobWidth-1-i]
	}
}

// DecodeBlob reads a 16-byte opaque value from buf[offset:], reversing it
// back to host order when endian is BigEndian.
func DecodeBlob(buf []byte, offset int, endian Endianness) [BlobWidth]byte {
	var out [BlobWidth]byte
	if endian == LittleEndian {
		copy(out[:], buf[offset:offset+BlobWidth])
		return out
	}
	for i := 0; i < BlobWidth; i++ {
		out[i] = buf[offset+BlobWidth-1-i]
	}
	return out
}
