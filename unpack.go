// ABOUTME: Unpack decodes a buffer's fields into an ordered list of typed
// ABOUTME: values under the control of a format string (spec.md §4.3)
package binfmt

import "github.com/binfmt/binfmt/internal/codec"

// Unpack decodes buf according to format and returns the decoded fields
// in order. Padding is skipped without inspection; endianness markers
// update decoding state for subsequent fields but produce no value.
//
// On success Unpack returns the decoded values and the number of bytes
// consumed. On failure it returns a non-nil error; the returned slice and
// count are unset.
func Unpack(buf []byte, format string) ([]Value, int, error) {
	directives, err := codec.Parse(format)
	if err != nil {
		return nil, 0, wrapParseError(format, err)
	}

	cur := codec.NewCursor()
	var values []Value

	for _, d := range directives {
		switch d.Kind {
		case codec.KindEndian:
			cur.Endian = d.Endian

		case codec.KindPad:
			if err := cur.Advance(d.Width, len(buf)); err != nil {
				return nil, 0, err
			}

		case codec.KindField:
			start := cur.Offset
			if err := cur.Advance(d.Width, len(buf)); err != nil {
				return nil, 0, err
			}
			values = append(values, decodeField(buf, start, d.Code, cur.Endian))
		}
	}

	return values, cur.Offset, nil
}
