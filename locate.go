// ABOUTME: Locate walks a format string counting only fields and returns
// ABOUTME: the byte offset of the requested field index (spec.md §4.3)
package binfmt

import (
	"fmt"

	"github.com/binfmt/binfmt/internal/codec"
)

// Locate walks format, counting only width>0 field directives (padding
// and endianness markers are skipped), and returns the byte offset of the
// fieldIndex'th field. Endianness is tracked while walking but has no
// bearing on the returned offset; any multi-byte interpretation of the
// bytes at that offset is the caller's responsibility.
//
// Locate fails if format contains fewer than fieldIndex+1 fields, if
// format fails to parse, or if reaching that field's bytes would run
// past len(buf).
func Locate(buf []byte, format string, fieldIndex int) (int, error) {
	if fieldIndex < 0 {
		return 0, fmt.Errorf("%w: negative field index %d", ErrIndexOutOfRange, fieldIndex)
	}

	directives, err := codec.Parse(format)
	if err != nil {
		return 0, wrapParseError(format, err)
	}

	cur := codec.NewCursor()
	count := 0

	for _, d := range directives {
		switch d.Kind {
		case codec.KindEndian:
			cur.Endian = d.Endian

		case codec.KindPad:
			if err := cur.Advance(d.Width, len(buf)); err != nil {
				return 0, err
			}

		case codec.KindField:
			start := cur.Offset
			if err := cur.Advance(d.Width, len(buf)); err != nil {
				return 0, err
			}
			if count == fieldIndex {
				return start, nil
			}
			count++
		}
	}

	return 0, fmt.Errorf("%w: requested field %d, format has %d field(s)", ErrIndexOutOfRange, fieldIndex, count)
}
