package codec

import (
	"errors"
	"fmt"
)

// Sentinel parse errors. Wrapped with position/detail via fmt.Errorf so
// callers can still errors.Is against these.
var (
	ErrUnknownCode    = errors.New("unknown format code")
	ErrCountOverflow  = errors.New("padding count overflows")
	ErrTrailingEndian = errors.New("endianness marker with no following directive")
)

// maxPadCount bounds the decimal count that may follow 'x'. Buffer lengths
// are realistically int32-sized; this keeps overflow detection simple and
// portable rather than tying it to a particular host int width.
const maxPadCount = int64(1<<31 - 1)

// Kind classifies a single directive emitted by the parser.
type Kind int

const (
	KindEndian Kind = iota
	KindPad
	KindField
)

// Directive is one logical unit of a format string: an endianness switch,
// a run of padding, or a typed field. Endianness markers and padding never
// consume a value slot; only fields do.
type Directive struct {
	Kind   Kind
	Endian Endianness // meaningful when Kind == KindEndian
	Code   byte       // meaningful when Kind == KindField
	Width  int        // byte width: Pad -> count, Field -> fixed code width, Endian -> 0
}

// FieldWidths maps each field code to its fixed byte width.
var FieldWidths = map[byte]int{
	'b': 1, 'B': 1,
	'h': 2, 'H': 2,
	'i': 4, 'I': 4,
	'q': 8, 'Q': 8,
	'e': 2,
	'f': 4,
	'd': 8,
	't': 16, 'T': 16,
}

// Parse scans a format string left to right and returns its directive
// sequence. Parse is pure: the same format string always yields the same
// directives, independent of any buffer or value.
func Parse(format string) ([]Directive, error) {
	var directives []Directive

	i := 0
	for i < len(format) {
		c := format[i]
		switch c {
		case '<':
			directives = append(directives, Directive{Kind: KindEndian, Endian: LittleEndian})
			i++
		case '>':
			directives = append(directives, Directive{Kind: KindEndian, Endian: BigEndian})
			i++
		case 'x':
			i++
			start := i
			n := int64(0)
			for i < len(format) && format[i] >= '0' && format[i] <= '9' {
				d := int64(format[i] - '0')
				if n > (maxPadCount-d)/10 {
					return nil, fmt.Errorf("%w: count at position %d", ErrCountOverflow, start)
				}
				n = n*10 + d
				i++
			}
			if i == start {
				n = 1 // bare 'x' means one byte
			}
			directives = append(directives, Directive{Kind: KindPad, Width: int(n)})
		default:
			width, ok := FieldWidths[c]
			if !ok {
				return nil, fmt.Errorf("%w: %q at position %d", ErrUnknownCode, c, i)
			}
			directives = append(directives, Directive{Kind: KindField, Code: c, Width: width})
			i++
		}
	}

	if len(directives) > 0 && directives[len(directives)-1].Kind == KindEndian {
		return nil, fmt.Errorf("%w", ErrTrailingEndian)
	}

	return directives, nil
}
