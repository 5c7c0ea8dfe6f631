package descriptor

import (
	"fmt"
	"reflect"

	"github.com/kagelund/serialcore/bitset"
	"github.com/kagelund/serialcore/fingerprint"
	"github.com/kagelund/serialcore/sink"
	"github.com/kagelund/serialcore/wire"
)

var bitsType = reflect.TypeOf(bitset.Bits{})

// Bitset describes a bitset.Bits field of a fixed width N declared via a
// `serial:"bits=N"` struct tag (see bitset package doc). The byte length
// on the wire is ceil(N/8), packed LSB-first, no length prefix — the
// width is part of the type's structural identity, not its data.
type Bitset struct {
	n int
}

var _ Descriptor = (*Bitset)(nil)

func buildBitset(n int) (*Bitset, error) {
	if n <= 0 {
		return nil, fmt.Errorf("descriptor: bitset width must be positive, got %d", n)
	}

	return &Bitset{n: n}, nil
}

func (b *Bitset) Family() Family       { return FamilyBitset }
func (b *Bitset) GoType() reflect.Type { return bitsType }

func (b *Bitset) byteLen() int { return (b.n + 7) / 8 }

func (b *Bitset) StaticSize() (int, bool)          { return b.byteLen(), true }
func (b *Bitset) Size(reflect.Value) (int, error) { return b.byteLen(), nil }

func (b *Bitset) StructuralHash(h *uint32, _ int) {
	fingerprint.Combine(h, byte(FamilyBitset))
	fingerprint.CombineInt(h, b.n)
}

func (b *Bitset) Init(_ reflect.Value, cur *wire.Cursor) error {
	return cur.Skip(b.byteLen())
}

func (b *Bitset) Encode(v reflect.Value, cur *wire.Cursor) error {
	bits := v.Interface().(bitset.Bits)
	if bits.Len() != b.n {
		return fmt.Errorf("descriptor: bitset width mismatch: field declares %d, value has %d", b.n, bits.Len())
	}

	return cur.WriteBytes(bits.Bytes())
}

func (b *Bitset) Decode(v reflect.Value, cur *wire.Cursor) error {
	raw, err := cur.ReadBytes(b.byteLen())
	if err != nil {
		return err
	}
	bits, err := bitset.FromBytes(b.n, raw)
	if err != nil {
		return err
	}
	v.Set(reflect.ValueOf(bits))

	return nil
}

func (b *Bitset) Print(v reflect.Value, s sink.Sink, indent int) {
	writeIndent(s, indent)
	bits := v.Interface().(bitset.Bits)
	s.WriteString("[")
	for i := 0; i < bits.Len(); i++ {
		if bits.Test(i) {
			s.WriteString("1")
		} else {
			s.WriteString("0")
		}
	}
	s.WriteString("]")
}
