package codec

import (
	"reflect"

	"github.com/kagelund/serialcore/registry"
)

// fingerprintSize is the fixed 8-byte fingerprint prefix every payload
// carries ahead of its value bytes (spec §4.5).
const fingerprintSize = 8

// Size returns the exact number of bytes Serialize would produce for
// value, including the 8-byte fingerprint prefix (spec §6 "size<T>").
func Size[T any](value T) (int, error) {
	e, err := lookupType[T]()
	if err != nil {
		return 0, err
	}

	sz, err := e.Descriptor.Size(reflect.ValueOf(value))
	if err != nil {
		return 0, err
	}

	return fingerprintSize + sz, nil
}

// StaticSize returns the fingerprint size plus T's fixed value size, and
// whether T is entirely fixed-size. For a dynamic T the value part counts
// as zero, so the result is just the 8-byte fingerprint prefix.
func StaticSize[T any]() (int, bool, error) {
	e, err := lookupType[T]()
	if err != nil {
		return 0, false, err
	}

	sz, ok := e.Descriptor.StaticSize()

	return fingerprintSize + sz, ok, nil
}

func lookupType[T any]() (*registry.Entry, error) {
	var zero T
	t := reflect.TypeOf(zero)

	e, ok := registry.Default.FindByType(t)
	if !ok {
		return nil, unregisteredTypeError(t)
	}

	return e, nil
}
