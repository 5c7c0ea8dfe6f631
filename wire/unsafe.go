package wire

import "unsafe"

// nativePtr exposes the address of a uint16 for endianness probing without
// leaking unsafe.Pointer through the exported API.
func nativePtr(i *uint16) unsafe.Pointer {
	return unsafe.Pointer(i)
}
