package descriptor

import (
	"reflect"

	"github.com/kagelund/serialcore/fingerprint"
	"github.com/kagelund/serialcore/serialerr"
	"github.com/kagelund/serialcore/sink"
	"github.com/kagelund/serialcore/wire"
)

// maxSequenceLen mirrors maxStringLen: a 32-bit element count is the wire
// contract, so a slice longer than that can never be represented (spec §6
// "Array overflow").
const maxSequenceLen = 1<<32 - 1

// Sequence describes a Go slice: a 32-bit element count followed by each
// element encoded in turn (spec §3 item 3 "Dynamic sequence").
type Sequence struct {
	elem   Descriptor
	goType reflect.Type
}

var _ Descriptor = (*Sequence)(nil)

func buildSequence(t reflect.Type, elem Descriptor) *Sequence {
	return &Sequence{elem: elem, goType: t}
}

func (s *Sequence) Family() Family          { return FamilySequence }
func (s *Sequence) GoType() reflect.Type    { return s.goType }
func (s *Sequence) StaticSize() (int, bool) { return 0, false }

func (s *Sequence) Size(v reflect.Value) (int, error) {
	n := v.Len()
	if n > maxSequenceLen {
		return 0, serialerr.ErrArrayOverflow
	}
	total := 4
	if staticSize, ok := s.elem.StaticSize(); ok {
		total += staticSize * n

		return total, nil
	}
	for i := 0; i < n; i++ {
		sz, err := s.elem.Size(v.Index(i))
		if err != nil {
			return 0, err
		}
		total += sz
	}

	return total, nil
}

func (s *Sequence) StructuralHash(h *uint32, depth int) {
	fingerprint.Combine(h, byte(FamilySequence))
	s.elem.StructuralHash(h, depth)
}

// Init reads the real element count off the wire (v is still its zero
// value here), checks it against the remaining buffer before allocating
// anything (an attacker-controlled length must never drive an unbounded
// MakeSlice), pre-allocates v to that length, and recurses into each
// element's own init pass so nested dynamic parts size correctly too.
func (s *Sequence) Init(v reflect.Value, cur *wire.Cursor) error {
	n, err := cur.ReadUint32()
	if err != nil {
		return err
	}
	elemLowerBound, err := s.elem.Size(reflect.Zero(s.goType.Elem()))
	if err != nil {
		return err
	}
	if int64(n)*int64(elemLowerBound) > int64(cur.Remaining()) {
		return serialerr.ErrBufferOverflow
	}
	v.Set(reflect.MakeSlice(s.goType, int(n), int(n)))
	for i := 0; i < int(n); i++ {
		if err := s.elem.Init(v.Index(i), cur); err != nil {
			return err
		}
	}

	return nil
}

func (s *Sequence) Encode(v reflect.Value, cur *wire.Cursor) error {
	n := v.Len()
	if n > maxSequenceLen {
		return serialerr.ErrArrayOverflow
	}
	if err := cur.WriteUint32(uint32(n)); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if err := s.elem.Encode(v.Index(i), cur); err != nil {
			return err
		}
	}

	return nil
}

func (s *Sequence) Decode(v reflect.Value, cur *wire.Cursor) error {
	n, err := cur.ReadUint32()
	if err != nil {
		return err
	}
	if v.Len() != int(n) {
		v.Set(reflect.MakeSlice(s.goType, int(n), int(n)))
	}
	for i := 0; i < int(n); i++ {
		if err := s.elem.Decode(v.Index(i), cur); err != nil {
			return err
		}
	}

	return nil
}

func (s *Sequence) Print(v reflect.Value, sk sink.Sink, indent int) {
	writeIndent(sk, indent)
	sk.WriteString("[")
	n := v.Len()
	for i := 0; i < n; i++ {
		if i > 0 {
			sk.WriteString(", ")
		}
		s.elem.Print(v.Index(i), sk, 0)
	}
	sk.WriteString("]")
}
