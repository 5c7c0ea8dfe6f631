// Package serialerr defines the sentinel errors of the serialization wire
// protocol. Callers use errors.Is to discriminate failure kinds; none of
// the errors carry the offending type's name, matching the "no type-name
// leakage" requirement of the wire error taxonomy.
package serialerr

import "errors"

var (
	// ErrArrayOverflow is returned when a dynamic sequence's length would
	// not fit in the 4-byte unsigned length prefix.
	ErrArrayOverflow = errors.New("serialcore: sequence length exceeds the 32-bit wire limit")

	// ErrBufferOverflow is returned when an input or output byte buffer
	// is too small for the requested read or write.
	ErrBufferOverflow = errors.New("serialcore: buffer too small for operation")

	// ErrLayoutIncompatible is returned when a payload's structural hash
	// does not correspond to any structure compatible with the expected type.
	ErrLayoutIncompatible = errors.New("serialcore: payload layout incompatible with expected type")

	// ErrBinaryIncompatible is returned when a payload's alias matches the
	// expected type but its structural hash does not: the type's shape
	// changed since the payload was written.
	ErrBinaryIncompatible = errors.New("serialcore: payload structure changed for this type")
)
