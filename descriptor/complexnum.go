package descriptor

import (
	"reflect"

	"github.com/kagelund/serialcore/fingerprint"
	"github.com/kagelund/serialcore/sink"
	"github.com/kagelund/serialcore/wire"
)

// Complex encodes a Go complex64/complex128 as (real, imag), each
// component written independently through the same primitive encode path
// (spec §3 item 10, §9 open question (b): no cross-component endian
// coupling).
type Complex struct {
	compSize int // 4 for complex64, 8 for complex128
	goType   reflect.Type
}

var _ Descriptor = (*Complex)(nil)

func buildComplex(t reflect.Type) *Complex {
	size := 8
	if t.Kind() == reflect.Complex64 {
		size = 4
	}

	return &Complex{compSize: size, goType: t}
}

func (c *Complex) Family() Family          { return FamilyComplex }
func (c *Complex) GoType() reflect.Type    { return c.goType }
func (c *Complex) StaticSize() (int, bool) { return c.compSize * 2, true }
func (c *Complex) Size(reflect.Value) (int, error) { return c.compSize * 2, nil }

func (c *Complex) StructuralHash(h *uint32, _ int) {
	fingerprint.Combine(h, byte(FamilyComplex))
	fingerprint.Combine(h, byte(PrimFloat))
	fingerprint.Combine(h, byte(c.compSize))
}

func (c *Complex) Init(_ reflect.Value, cur *wire.Cursor) error {
	return cur.Skip(c.compSize * 2)
}

func (c *Complex) Encode(v reflect.Value, cur *wire.Cursor) error {
	z := v.Complex()
	if c.compSize == 4 {
		if err := cur.WriteFloat32(float32(real(z))); err != nil {
			return err
		}

		return cur.WriteFloat32(float32(imag(z)))
	}
	if err := cur.WriteFloat64(real(z)); err != nil {
		return err
	}

	return cur.WriteFloat64(imag(z))
}

func (c *Complex) Decode(v reflect.Value, cur *wire.Cursor) error {
	if c.compSize == 4 {
		re, err := cur.ReadFloat32()
		if err != nil {
			return err
		}
		im, err := cur.ReadFloat32()
		if err != nil {
			return err
		}
		v.SetComplex(complex(float64(re), float64(im)))

		return nil
	}
	re, err := cur.ReadFloat64()
	if err != nil {
		return err
	}
	im, err := cur.ReadFloat64()
	if err != nil {
		return err
	}
	v.SetComplex(complex(re, im))

	return nil
}

func (c *Complex) Print(v reflect.Value, s sink.Sink, indent int) {
	writeIndent(s, indent)
	z := v.Complex()
	s.WriteFloat(real(z), c.compSize*8)
	s.WriteString("+")
	s.WriteFloat(imag(z), c.compSize*8)
	s.WriteString("i")
}
