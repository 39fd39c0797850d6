package codec

import (
	"errors"
	"fmt"
)

// ErrBufferOverflow is returned when advancing the cursor would read or
// write past the end of the caller-supplied buffer.
var ErrBufferOverflow = errors.New("buffer overflow")

// Cursor tracks the running (offset, endianness) state threaded through a
// single pack/unpack/locate call. It is stack-local: nothing here is
// retained past the call that owns it.
type Cursor struct {
	Offset int
	Endian Endianness
}

// NewCursor returns a cursor positioned at the start of the buffer with
// the default endianness (little-endian; spec.md Open Question 1).
func NewCursor() Cursor {
	return Cursor{Endian: LittleEndian}
}

// Advance checks that n more bytes fit within a buffer of length bufLen
// starting at the cursor's current offset, and if so moves the offset
// forward by n. It reports ErrBufferOverflow otherwise, including on
// integer overflow of the offset itself.
func (c *Cursor) Advance(n, bufLen int) error {
	next := c.Offset + n
	if next < c.Offset || next > bufLen {
		return fmt.Errorf("%w: need %d byte(s) at offset %d, buffer length %d", ErrBufferOverflow, n, c.Offset, bufLen)
	}
	c.Offset = next
	return nil
}
