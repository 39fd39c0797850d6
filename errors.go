// ABOUTME: Error types surfaced at the public Pack/Unpack/Locate boundary
// ABOUTME: wraps internal/codec's parse and bounds errors for errors.Is/As
package binfmt

import (
	"errors"
	"fmt"

	"github.com/binfmt/binfmt/internal/codec"
)

// Sentinel errors a caller can compare against with errors.Is. They mirror
// the three failure categories of spec.md §7 (ParseError, BufferOverflow,
// IndexOutOfRange), collapsed to a single non-nil error at the boundary —
// Go's multi-value return already supplies the "null/sentinel on failure"
// contract, so no separate end-pointer sentinel is needed.
var (
	ErrParse           = errors.New("format parse error")
	ErrBufferOverflow  = codec.ErrBufferOverflow
	ErrIndexOutOfRange = errors.New("field index out of range")

	// ErrValueMismatch is returned when a caller's Value slice has a kind
	// that doesn't match the field code at its position, or the wrong
	// number of values for the format's field count.
	ErrValueMismatch = errors.New("value does not match field code")
)

// parseError wraps a codec parse failure, mirroring phiryll-lexy's small
// typed-error style (unknownPrefixError, badTypeError): just enough
// structure to carry the detail, Error() does the formatting.
type parseError struct {
	format string
	cause  error
}

func (e *parseError) Error() string {
	return fmt.Sprintf("binfmt: parse %q: %v", e.format, e.cause)
}

func (e *parseError) Unwrap() []error {
	return []error{ErrParse, e.cause}
}

func wrapParseError(format string, cause error) error {
	return &parseError{format: format, cause: cause}
}
