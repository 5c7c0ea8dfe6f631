package codec

import (
	"reflect"

	"github.com/kagelund/serialcore/fingerprint"
	"github.com/kagelund/serialcore/registry"
	"github.com/kagelund/serialcore/serialerr"
	"github.com/kagelund/serialcore/wire"
)

// Parse reconstructs a T from a fingerprinted payload (spec §4.6):
//
//	if len(bytes) < 8, or T is fixed-size and len(bytes) < 8 + size(T):
//	    fail BufferOverflow (a short dynamic payload fails in the init pass)
//	read_scalar(cursor, fp)
//	check alias/structural compatibility (two-tier discrimination)
//	T::init(value, init_cursor)   // resize dynamics
//	T::decode(value, cursor)      // actually read
func Parse[T any](data []byte, opts ...Option) (T, error) {
	var zero T

	cfg, err := buildConfig(opts)
	if err != nil {
		return zero, err
	}

	wantEntry, err := lookupType[T]()
	if err != nil {
		return zero, err
	}

	if minSize, ok := wantEntry.Descriptor.StaticSize(); ok {
		if len(data) < fingerprintSize+minSize {
			return zero, serialerr.ErrBufferOverflow
		}
	} else if len(data) < fingerprintSize {
		return zero, serialerr.ErrBufferOverflow
	}

	cur := wire.NewCursor(data, cfg.engine)
	fp, err := cur.ReadUint64()
	if err != nil {
		return zero, err
	}

	desc, err := resolveCompatibleDescriptor(wantEntry, fp)
	if err != nil {
		return zero, err
	}

	ptr := new(T)
	target := reflect.ValueOf(ptr).Elem()

	initCur := cur.Clone()
	if err := desc.Init(target, initCur); err != nil {
		return zero, err
	}
	if err := desc.Decode(target, cur); err != nil {
		return zero, err
	}

	return *ptr, nil
}

// resolveCompatibleDescriptor implements the two-tier discrimination of
// spec §4.6: an alias mismatch falls back to a structural-match probe
// (tolerating a renamed type, since a rename never changes the
// structural hash); an alias match with a structural mismatch is always
// BinaryIncompatible (the type's shape changed on disk since the
// payload was written). Because the structural hash depends only on
// shape, never on alias or Go type name, the probe is simply a direct
// comparison against the target type's own structural hash — there is
// no need to search the registry for a third type to vouch for it.
func resolveCompatibleDescriptor(want *registry.Entry, fp uint64) (descriptorLike, error) {
	payloadAlias := fingerprint.SplitAlias(fp)
	payloadStruct := fingerprint.SplitStructural(fp)

	if payloadAlias != want.AliasHash {
		if payloadStruct != want.StructuralHash {
			return nil, serialerr.ErrLayoutIncompatible
		}

		return want.Descriptor, nil
	}

	if payloadStruct != want.StructuralHash {
		return nil, serialerr.ErrBinaryIncompatible
	}

	return want.Descriptor, nil
}

// descriptorLike narrows the codec package's dependency on descriptor.Descriptor
// to just the operations the decode path needs, avoiding an import cycle
// concern if registry ever needs to depend on codec in the future.
type descriptorLike interface {
	Init(v reflect.Value, cur *wire.Cursor) error
	Decode(v reflect.Value, cur *wire.Cursor) error
}
