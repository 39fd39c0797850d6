// Package binfmt packs and unpacks heterogeneous scalar values to and from
// a caller-provided byte buffer under the control of a compact format
// string: fixed-width integers, explicit endianness, IEEE-754
// binary16/32/64 floats, 128-bit opaque blobs, and padding runs.
//
// The three public operations, Pack, Unpack, and Locate, are synchronous
// and hold no state beyond a single call's stack frame. The per-field
// encoders allocate nothing, but every call allocates the directive list
// parsed from its format string. Format strings are a small regular grammar:
//
//	format    := directive*
//	directive := endian | padding | field
//	endian    := "<" | ">"
//	padding   := "x" digit*
//	field     := "b" | "B" | "h" | "H" | "i" | "I" | "q" | "Q"
//	           | "e" | "f" | "d" | "t" | "T"
//
// Endianness defaults to little-endian until a '<' or '>' marker is seen.
// See SPEC_FULL.md and DESIGN.md for the full rationale behind each design
// choice.
package binfmt
