package codec

import (
	"reflect"

	"github.com/kagelund/serialcore/internal/pool"
	"github.com/kagelund/serialcore/wire"
)

// Serialize encodes value as a fingerprinted payload (spec §4.5):
//
//	bytes ← allocate(8 + byte_size(T, value))
//	write_scalar(cursor, full_fingerprint(T))
//	T::encode(value, cursor)
func Serialize[T any](value T, opts ...Option) ([]byte, error) {
	cfg, err := buildConfig(opts)
	if err != nil {
		return nil, err
	}

	e, err := lookupType[T]()
	if err != nil {
		return nil, err
	}

	v := reflect.ValueOf(value)

	sz, err := e.Descriptor.Size(v)
	if err != nil {
		return nil, err
	}

	bb := pool.GetEncodeBuffer()
	defer pool.PutEncodeBuffer(bb)
	bb.SetLength(0)
	bb.ExtendOrGrow(fingerprintSize + sz)

	cur := wire.NewCursor(bb.Bytes(), cfg.engine)
	if err := cur.WriteUint64(e.Fingerprint); err != nil {
		return nil, err
	}
	if err := e.Descriptor.Encode(v, cur); err != nil {
		return nil, err
	}

	out := make([]byte, cur.Pos())
	copy(out, cur.Bytes()[:cur.Pos()])

	return out, nil
}

// EncodeInto encodes value into out, growing it as needed, and returns
// the number of bytes written. It reuses out's backing array when
// possible instead of allocating a fresh result, unlike Serialize.
func EncodeInto[T any](out *pool.ByteBuffer, value T, opts ...Option) (int, error) {
	cfg, err := buildConfig(opts)
	if err != nil {
		return 0, err
	}

	e, err := lookupType[T]()
	if err != nil {
		return 0, err
	}

	v := reflect.ValueOf(value)

	sz, err := e.Descriptor.Size(v)
	if err != nil {
		return 0, err
	}

	out.SetLength(0)
	out.ExtendOrGrow(fingerprintSize + sz)

	cur := wire.NewCursor(out.Bytes(), cfg.engine)
	if err := cur.WriteUint64(e.Fingerprint); err != nil {
		return 0, err
	}
	if err := e.Descriptor.Encode(v, cur); err != nil {
		return 0, err
	}

	return cur.Pos(), nil
}
