package descriptor

import (
	"reflect"

	"github.com/kagelund/serialcore/fingerprint"
	"github.com/kagelund/serialcore/sink"
	"github.com/kagelund/serialcore/wire"
)

// FixedArray describes a Go array: a compile-time-fixed element count,
// with no length prefix on the wire at all (spec §3 item 2 "Fixed
// array" — distinguished from Sequence precisely by the absence of a
// count).
type FixedArray struct {
	elem   Descriptor
	n      int
	goType reflect.Type
}

var _ Descriptor = (*FixedArray)(nil)

func buildFixedArray(t reflect.Type, elem Descriptor) *FixedArray {
	return &FixedArray{elem: elem, n: t.Len(), goType: t}
}

func (a *FixedArray) Family() Family       { return FamilyFixedArray }
func (a *FixedArray) GoType() reflect.Type { return a.goType }

func (a *FixedArray) StaticSize() (int, bool) {
	elemSize, ok := a.elem.StaticSize()
	if !ok {
		return 0, false
	}

	return elemSize * a.n, true
}

func (a *FixedArray) Size(v reflect.Value) (int, error) {
	if sz, ok := a.StaticSize(); ok {
		return sz, nil
	}
	total := 0
	for i := 0; i < a.n; i++ {
		sz, err := a.elem.Size(v.Index(i))
		if err != nil {
			return 0, err
		}
		total += sz
	}

	return total, nil
}

func (a *FixedArray) StructuralHash(h *uint32, depth int) {
	fingerprint.Combine(h, byte(FamilyFixedArray))
	fingerprint.CombineInt(h, a.n)
	a.elem.StructuralHash(h, depth)
}

func (a *FixedArray) Init(v reflect.Value, cur *wire.Cursor) error {
	for i := 0; i < a.n; i++ {
		if err := a.elem.Init(v.Index(i), cur); err != nil {
			return err
		}
	}

	return nil
}

func (a *FixedArray) Encode(v reflect.Value, cur *wire.Cursor) error {
	for i := 0; i < a.n; i++ {
		if err := a.elem.Encode(v.Index(i), cur); err != nil {
			return err
		}
	}

	return nil
}

func (a *FixedArray) Decode(v reflect.Value, cur *wire.Cursor) error {
	for i := 0; i < a.n; i++ {
		if err := a.elem.Decode(v.Index(i), cur); err != nil {
			return err
		}
	}

	return nil
}

func (a *FixedArray) Print(v reflect.Value, s sink.Sink, indent int) {
	writeIndent(s, indent)
	s.WriteString("[")
	for i := 0; i < a.n; i++ {
		if i > 0 {
			s.WriteString(", ")
		}
		a.elem.Print(v.Index(i), s, 0)
	}
	s.WriteString("]")
}
