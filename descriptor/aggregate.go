package descriptor

import (
	"reflect"

	"github.com/kagelund/serialcore/fingerprint"
	"github.com/kagelund/serialcore/sink"
	"github.com/kagelund/serialcore/wire"
)

// field pairs a struct field's index with its built descriptor. Shared by
// Aggregate and Tuple since both are ordered field lists; they differ
// only in how StructuralHash treats the nesting-depth budget.
type field struct {
	index int
	name  string
	desc  Descriptor
}

// Aggregate describes a Go struct whose fields are folded in declaration
// order (spec §3 item 7 "Aggregate"). Unlike Tuple, building an
// aggregate's structural hash bumps the nesting-depth budget by one
// before recursing into its fields (spec §4.2), which is what makes a
// self-referential aggregate (a struct containing, transitively, a slice
// of itself) well-defined instead of diverging.
type Aggregate struct {
	fields []*field
	goType reflect.Type
}

var _ Descriptor = (*Aggregate)(nil)

func (a *Aggregate) Family() Family       { return FamilyAggregate }
func (a *Aggregate) GoType() reflect.Type { return a.goType }

func (a *Aggregate) StaticSize() (int, bool) {
	total := 0
	for _, f := range a.fields {
		sz, ok := f.desc.StaticSize()
		if !ok {
			return 0, false
		}
		total += sz
	}

	return total, true
}

func (a *Aggregate) Size(v reflect.Value) (int, error) {
	total := 0
	for _, f := range a.fields {
		sz, err := f.desc.Size(v.Field(f.index))
		if err != nil {
			return 0, err
		}
		total += sz
	}

	return total, nil
}

// StructuralHash bumps depth by one for this aggregate's own fields, per
// spec §4.2. Self-referential aggregates build a cyclic descriptor graph
// (see build.go's cache-before-recurse), so without a depth bound this
// walk would never terminate; once depth is exhausted it folds in the
// sentinel byte instead of recursing further. Field names are never
// folded in, only count and per-field shape, so renaming a field leaves
// the hash unchanged.
func (a *Aggregate) StructuralHash(h *uint32, depth int) {
	fingerprint.Combine(h, byte(FamilyAggregate))
	if depth >= fingerprint.DefaultDepth {
		fingerprint.Combine(h, fingerprint.DepthSentinel)

		return
	}
	fingerprint.CombineInt(h, len(a.fields))
	for _, f := range a.fields {
		f.desc.StructuralHash(h, depth+1)
	}
}

func (a *Aggregate) Init(v reflect.Value, cur *wire.Cursor) error {
	for _, f := range a.fields {
		if err := f.desc.Init(v.Field(f.index), cur); err != nil {
			return err
		}
	}

	return nil
}

func (a *Aggregate) Encode(v reflect.Value, cur *wire.Cursor) error {
	for _, f := range a.fields {
		if err := f.desc.Encode(v.Field(f.index), cur); err != nil {
			return err
		}
	}

	return nil
}

func (a *Aggregate) Decode(v reflect.Value, cur *wire.Cursor) error {
	for _, f := range a.fields {
		if err := f.desc.Decode(v.Field(f.index), cur); err != nil {
			return err
		}
	}

	return nil
}

func (a *Aggregate) Print(v reflect.Value, s sink.Sink, indent int) {
	writeIndent(s, indent)
	s.WriteString("{")
	for i, f := range a.fields {
		if i > 0 {
			s.WriteString(", ")
		}
		s.WriteString(f.name)
		s.WriteString(": ")
		f.desc.Print(v.Field(f.index), s, 0)
	}
	s.WriteString("}")
}
