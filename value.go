// ABOUTME: The typed value carrier that stands in for the variadic scalar
// ABOUTME: arguments of the source format, per spec.md's Design Notes
package binfmt

// Kind tags the scalar variant a Value holds. It lines up one-to-one with
// a format string's field codes, so a mismatch between the field at a
// given position and the Value supplied for it is a structural error the
// caller can detect before Pack ever touches the buffer.
type Kind int

const (
	KindInt8 Kind = iota
	KindUint8
	KindInt16
	KindUint16
	KindInt32
	KindUint32
	KindInt64
	KindUint64
	KindFloat16
	KindFloat32
	KindFloat64
	KindBlob128
)

func (k Kind) String() string {
	switch k {
	case KindInt8:
		return "int8"
	case KindUint8:
		return "uint8"
	case KindInt16:
		return "int16"
	case KindUint16:
		return "uint16"
	case KindInt32:
		return "int32"
	case KindUint32:
		return "uint32"
	case KindInt64:
		return "int64"
	case KindUint64:
		return "uint64"
	case KindFloat16:
		return "float16"
	case KindFloat32:
		return "float32"
	case KindFloat64:
		return "float64"
	case KindBlob128:
		return "blob128"
	default:
		return "unknown"
	}
}

// kindForCode maps a format field code to the Kind a Value for that field
// must carry.
var kindForCode = map[byte]Kind{
	'b': KindInt8,
	'B': KindUint8,
	'h': KindInt16,
	'H': KindUint16,
	'i': KindInt32,
	'I': KindUint32,
	'q': KindInt64,
	'Q': KindUint64,
	'e': KindFloat16,
	'f': KindFloat32,
	'd': KindFloat64,
	't': KindBlob128,
	'T': KindBlob128,
}

// Value is a single host-side scalar bound to one field of a format
// string. It is a tagged union (spec.md §9: "a tagged union array, one
// entry per field, variant matches the code") rather than an empty
// interface, so building a []Value is allocation-light and the kind check
// in Pack is a simple tag comparison.
type Value struct {
	kind Kind
	i64  int64
	u64  uint64
	f32  float32
	f64  float64
	blob [16]byte
}

// Kind reports which scalar variant v holds.
func (v Value) Kind() Kind { return v.kind }

// Int8 returns v's signed 8-bit value.
func (v Value) Int8() int8 { return int8(v.i64) }

// Uint8 returns v's unsigned 8-bit value.
func (v Value) Uint8() uint8 { return uint8(v.u64) }

// Int16 returns v's signed 16-bit value.
func (v Value) Int16() int16 { return int16(v.i64) }

// Uint16 returns v's unsigned 16-bit value.
func (v Value) Uint16() uint16 { return uint16(v.u64) }

// Int32 returns v's signed 32-bit value.
func (v Value) Int32() int32 { return int32(v.i64) }

// Uint32 returns v's unsigned 32-bit value.
func (v Value) Uint32() uint32 { return uint32(v.u64) }

// Int64 returns v's signed 64-bit value.
func (v Value) Int64() int64 { return v.i64 }

// Uint64 returns v's unsigned 64-bit value.
func (v Value) Uint64() uint64 { return v.u64 }

// Float32 returns v's 32-bit float value; valid for KindFloat32 and
// KindFloat16 (the half-precision codec always surfaces its value as a
// host float32, per spec.md §3).
func (v Value) Float32() float32 { return v.f32 }

// Float64 returns v's 64-bit float value.
func (v Value) Float64() float64 { return v.f64 }

// Blob128 returns v's 16-byte opaque value.
func (v Value) Blob128() [16]byte { return v.blob }

// Int8Value constructs a Value for a signed 8-bit field ('b').
func Int8Value(x int8) Value { return Value{kind: KindInt8, i64: int64(x)} }

// Uint8Value constructs a Value for an unsigned 8-bit field ('B').
func Uint8Value(x uint8) Value { return Value{kind: KindUint8, u64: uint64(x)} }

// Int16Value constructs a Value for a signed 16-bit field ('h').
func Int16Value(x int16) Value { return Value{kind: KindInt16, i64: int64(x)} }

// Uint16Value constructs a Value for an unsigned 16-bit field ('H').
func Uint16Value(x uint16) Value { return Value{kind: KindUint16, u64: uint64(x)} }

// Int32Value constructs a Value for a signed 32-bit field ('i').
func Int32Value(x int32) Value { return Value{kind: KindInt32, i64: int64(x)} }

// Uint32Value constructs a Value for an unsigned 32-bit field ('I').
func Uint32Value(x uint32) Value { return Value{kind: KindUint32, u64: uint64(x)} }

// Int64Value constructs a Value for a signed 64-bit field ('q').
func Int64Value(x int64) Value { return Value{kind: KindInt64, i64: x} }

// Uint64Value constructs a Value for an unsigned 64-bit field ('Q').
func Uint64Value(x uint64) Value { return Value{kind: KindUint64, u64: x} }

// Float16Value constructs a Value for a binary16 field ('e'), carried as a
// host float32 and converted on encode.
func Float16Value(x float32) Value { return Value{kind: KindFloat16, f32: x} }

// Float32Value constructs a Value for a binary32 field ('f').
func Float32Value(x float32) Value { return Value{kind: KindFloat32, f32: x} }

// Float64Value constructs a Value for a binary64 field ('d').
func Float64Value(x float64) Value { return Value{kind: KindFloat64, f64: x} }

// Blob128Value constructs a Value for an opaque 128-bit field ('t' or
// 'T'). Both codes share one Kind: the blob is never interpreted as a
// number, only byte-reversed as a whole under big-endian.
func Blob128Value(x [16]byte) Value { return Value{kind: KindBlob128, blob: x} }

// Builder assembles an ordered []Value one field at a time, binding one
// value per call and handing the finished slice to Pack on Build. It
// generalizes the teacher's BitStreamEncoder one-method-per-field-code
// idiom (WriteUint8, WriteUint16, ...) to a typed, pre-pack value list
// instead of an immediately-executed write; unlike the teacher's void
// WriteX methods, each Builder method returns *Builder so calls chain.
type Builder struct {
	values []Value
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Int8 appends a signed 8-bit value and returns b for chaining.
func (b *Builder) Int8(x int8) *Builder { b.values = append(b.values, Int8Value(x)); return b }

// Uint8 appends an unsigned 8-bit value and returns b for chaining.
func (b *Builder) Uint8(x uint8) *Builder { b.values = append(b.values, Uint8Value(x)); return b }

// Int16 appends a signed 16-bit value and returns b for chaining.
func (b *Builder) Int16(x int16) *Builder { b.values = append(b.values, Int16Value(x)); return b }

// Uint16 appends an unsigned 16-bit value and returns b for chaining.
func (b *Builder) Uint16(x uint16) *Builder { b.values = append(b.values, Uint16Value(x)); return b }

// Int32 appends a signed 32-bit value and returns b for chaining.
func (b *Builder) Int32(x int32) *Builder { b.values = append(b.values, Int32Value(x)); return b }

// Uint32 appends an unsigned 32-bit value and returns b for chaining.
func (b *Builder) Uint32(x uint32) *Builder { b.values = append(b.values, Uint32Value(x)); return b }

// Int64 appends a signed 64-bit value and returns b for chaining.
func (b *Builder) Int64(x int64) *Builder { b.values = append(b.values, Int64Value(x)); return b }

// Uint64 appends an unsigned 64-bit value and returns b for chaining.
func (b *Builder) Uint64(x uint64) *Builder { b.values = append(b.values, Uint64Value(x)); return b }

// Float16 appends a half-precision value (given as a host float32) and
// returns b for chaining.
func (b *Builder) Float16(x float32) *Builder { b.values = append(b.values, Float16Value(x)); return b }

// Float32 appends a binary32 value and returns b for chaining.
func (b *Builder) Float32(x float32) *Builder { b.values = append(b.values, Float32Value(x)); return b }

// Float64 appends a binary64 value and returns b for chaining.
func (b *Builder) Float64(x float64) *Builder { b.values = append(b.values, Float64Value(x)); return b }

// Blob128 appends an opaque 128-bit value and returns b for chaining.
func (b *Builder) Blob128(x [16]byte) *Builder { b.values = append(b.values, Blob128Value(x)); return b }

// Build returns the assembled, ordered value list for Pack.
func (b *Builder) Build() []Value {
	return b.values
}
