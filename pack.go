// ABOUTME: Pack encodes an ordered list of typed values into a caller
// ABOUTME: buffer under the control of a format string (spec.md §4.3)
package binfmt

import (
	"fmt"

	"github.com/binfmt/binfmt/internal/codec"
)

// Pack encodes values into buf according to format. Fields are consumed
// from values in order; endianness markers and padding runs in format
// neither consume a value nor take buffer space beyond the padding
// itself.
//
// On success Pack returns the number of bytes written, equivalently the
// one-past-the-end offset of the last directive. On failure it returns a
// non-nil error and leaves buf's contents past the last successfully
// written directive indeterminate: callers must treat buf as unusable on
// error rather than assume it is untouched.
func Pack(buf []byte, format string, values []Value) (int, error) {
	directives, err := codec.Parse(format)
	if err != nil {
		return 0, wrapParseError(format, err)
	}

	cur := codec.NewCursor()
	next := 0

	for _, d := range directives {
		switch d.Kind {
		case codec.KindEndian:
			cur.Endian = d.Endian

		case codec.KindPad:
			if err := cur.Advance(d.Width, len(buf)); err != nil {
				return 0, err
			}

		case codec.KindField:
			if next >= len(values) {
				return 0, fmt.Errorf("%w: format has more fields than the %d value(s) supplied", ErrValueMismatch, len(values))
			}
			val := values[next]
			if want := kindForCode[d.Code]; val.Kind() != want {
				return 0, fmt.Errorf("%w: field %d (%q) wants %s, got %s", ErrValueMismatch, next, string(d.Code), want, val.Kind())
			}

			start := cur.Offset
			if err := cur.Advance(d.Width, len(buf)); err != nil {
				return 0, err
			}
			encodeField(buf, start, d.Code, cur.Endian, val)
			next++
		}
	}

	if next != len(values) {
		return 0, fmt.Errorf("%w: format has %d field(s), %d value(s) supplied", ErrValueMismatch, next, len(values))
	}

	return cur.Offset, nil
}
