// Package wire provides the byte-cursor primitives used to read and write
// fingerprinted payloads: a storage byte order (EndianEngine) and an
// advancing, bounds-checked Cursor over a byte slice.
//
// This extends Go's standard encoding/binary the same way a hand-rolled
// byte-order engine would: by combining ByteOrder and AppendByteOrder into
// one interface so callers get both indexed puts/gets and amortized
// appends from a single value.
package wire

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary
// into one interface. binary.LittleEndian and binary.BigEndian already
// satisfy it.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// CheckEndianness reports the host's native byte order.
func CheckEndianness() binary.ByteOrder {
	var i uint16 = 0x0100
	b := *(*[2]byte)(nativePtr(&i))
	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// IsNativeLittleEndian reports whether the host is little-endian.
func IsNativeLittleEndian() bool {
	return CheckEndianness() == binary.LittleEndian
}

// GetLittleEndianEngine returns the little-endian storage order.
func GetLittleEndianEngine() EndianEngine { return binary.LittleEndian }

// GetBigEndianEngine returns the big-endian storage order.
func GetBigEndianEngine() EndianEngine { return binary.BigEndian }

// GetNativeEndianEngine resolves NativeEndian to whichever of Big/Little
// matches the host, per spec: NativeEndian is a build-time choice between
// the two, never a distinct third byte order.
func GetNativeEndianEngine() EndianEngine {
	if IsNativeLittleEndian() {
		return GetLittleEndianEngine()
	}

	return GetBigEndianEngine()
}
