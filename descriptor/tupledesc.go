package descriptor

import (
	"reflect"

	"github.com/kagelund/serialcore/fingerprint"
	"github.com/kagelund/serialcore/sink"
	"github.com/kagelund/serialcore/wire"
)

// Tuple describes an instantiated tuple.Pair/Triple/Quad: its fields are
// folded in declaration order exactly like Aggregate, but without
// consuming nesting-depth budget (spec §4.2; see tuple package doc).
type Tuple struct {
	fields []*field
	goType reflect.Type
}

var _ Descriptor = (*Tuple)(nil)

func (t *Tuple) Family() Family       { return FamilyTuple }
func (t *Tuple) GoType() reflect.Type { return t.goType }

func (t *Tuple) StaticSize() (int, bool) {
	total := 0
	for _, f := range t.fields {
		sz, ok := f.desc.StaticSize()
		if !ok {
			return 0, false
		}
		total += sz
	}

	return total, true
}

func (t *Tuple) Size(v reflect.Value) (int, error) {
	total := 0
	for _, f := range t.fields {
		sz, err := f.desc.Size(v.Field(f.index))
		if err != nil {
			return 0, err
		}
		total += sz
	}

	return total, nil
}

func (t *Tuple) StructuralHash(h *uint32, depth int) {
	fingerprint.Combine(h, byte(FamilyTuple))
	fingerprint.CombineInt(h, len(t.fields))
	for _, f := range t.fields {
		f.desc.StructuralHash(h, depth)
	}
}

func (t *Tuple) Init(v reflect.Value, cur *wire.Cursor) error {
	for _, f := range t.fields {
		if err := f.desc.Init(v.Field(f.index), cur); err != nil {
			return err
		}
	}

	return nil
}

func (t *Tuple) Encode(v reflect.Value, cur *wire.Cursor) error {
	for _, f := range t.fields {
		if err := f.desc.Encode(v.Field(f.index), cur); err != nil {
			return err
		}
	}

	return nil
}

func (t *Tuple) Decode(v reflect.Value, cur *wire.Cursor) error {
	for _, f := range t.fields {
		if err := f.desc.Decode(v.Field(f.index), cur); err != nil {
			return err
		}
	}

	return nil
}

func (t *Tuple) Print(v reflect.Value, s sink.Sink, indent int) {
	writeIndent(s, indent)
	s.WriteString("(")
	for i, f := range t.fields {
		if i > 0 {
			s.WriteString(", ")
		}
		f.desc.Print(v.Field(f.index), s, 0)
	}
	s.WriteString(")")
}
