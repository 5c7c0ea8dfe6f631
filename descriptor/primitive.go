package descriptor

import (
	"fmt"
	"reflect"

	"github.com/kagelund/serialcore/fingerprint"
	"github.com/kagelund/serialcore/sink"
	"github.com/kagelund/serialcore/wire"
)

// PrimitiveKind distinguishes the four scalar sub-families (spec §4.2
// "Primitive" rule); width alone would conflate e.g. uint32 and float32.
type PrimitiveKind uint8

const (
	PrimBool PrimitiveKind = iota
	PrimSigned
	PrimUnsigned
	PrimFloat
)

// enumSalt is folded in addition to the normal primitive hash to
// distinguish a named integer type (an enumeration) from a plain one of
// the same width, per spec §4.2: "a hash salt distinguishing them from
// plain integers."
const enumSalt byte = 0xE7

// Primitive describes a boolean, integer, or floating-point scalar,
// optionally an enumeration over one (any Go defined type whose
// underlying kind is a scalar kind).
type Primitive struct {
	kind   PrimitiveKind
	size   int
	isEnum bool
	goType reflect.Type
}

var _ Descriptor = (*Primitive)(nil)

func buildPrimitive(t reflect.Type) (*Primitive, error) {
	p := &Primitive{goType: t, isEnum: t.PkgPath() != ""}

	switch t.Kind() {
	case reflect.Bool:
		p.kind, p.size = PrimBool, 1
	case reflect.Int8:
		p.kind, p.size = PrimSigned, 1
	case reflect.Int16:
		p.kind, p.size = PrimSigned, 2
	case reflect.Int32:
		p.kind, p.size = PrimSigned, 4
	case reflect.Int64, reflect.Int:
		p.kind, p.size = PrimSigned, 8
	case reflect.Uint8:
		p.kind, p.size = PrimUnsigned, 1
	case reflect.Uint16:
		p.kind, p.size = PrimUnsigned, 2
	case reflect.Uint32:
		p.kind, p.size = PrimUnsigned, 4
	case reflect.Uint64, reflect.Uint:
		p.kind, p.size = PrimUnsigned, 8
	case reflect.Float32:
		p.kind, p.size = PrimFloat, 4
	case reflect.Float64:
		p.kind, p.size = PrimFloat, 8
	default:
		return nil, fmt.Errorf("descriptor: unsupported primitive kind %s", t.Kind())
	}

	return p, nil
}

func (p *Primitive) Family() Family          { return FamilyPrimitive }
func (p *Primitive) GoType() reflect.Type    { return p.goType }
func (p *Primitive) StaticSize() (int, bool) { return p.size, true }
func (p *Primitive) Size(reflect.Value) (int, error) { return p.size, nil }

func (p *Primitive) StructuralHash(h *uint32, _ int) {
	fingerprint.Combine(h, byte(FamilyPrimitive))
	fingerprint.Combine(h, byte(p.kind))
	fingerprint.Combine(h, byte(p.size))
	if p.isEnum {
		fingerprint.Combine(h, enumSalt)
	}
}

func (p *Primitive) Init(_ reflect.Value, cur *wire.Cursor) error {
	return cur.Skip(p.size)
}

func (p *Primitive) Encode(v reflect.Value, cur *wire.Cursor) error {
	switch p.kind {
	case PrimBool:
		var b uint8
		if v.Bool() {
			b = 1
		}

		return cur.WriteUint8(b)
	case PrimSigned:
		n := v.Int()
		switch p.size {
		case 1:
			return cur.WriteInt8(int8(n))
		case 2:
			return cur.WriteInt16(int16(n))
		case 4:
			return cur.WriteInt32(int32(n))
		default:
			return cur.WriteInt64(n)
		}
	case PrimUnsigned:
		n := v.Uint()
		switch p.size {
		case 1:
			return cur.WriteUint8(uint8(n))
		case 2:
			return cur.WriteUint16(uint16(n))
		case 4:
			return cur.WriteUint32(uint32(n))
		default:
			return cur.WriteUint64(n)
		}
	case PrimFloat:
		f := v.Float()
		if p.size == 4 {
			return cur.WriteFloat32(float32(f))
		}

		return cur.WriteFloat64(f)
	default:
		return fmt.Errorf("descriptor: unreachable primitive kind %d", p.kind)
	}
}

func (p *Primitive) Decode(v reflect.Value, cur *wire.Cursor) error {
	switch p.kind {
	case PrimBool:
		b, err := cur.ReadUint8()
		if err != nil {
			return err
		}
		v.SetBool(b != 0)

		return nil
	case PrimSigned:
		switch p.size {
		case 1:
			n, err := cur.ReadInt8()
			if err != nil {
				return err
			}
			v.SetInt(int64(n))
		case 2:
			n, err := cur.ReadInt16()
			if err != nil {
				return err
			}
			v.SetInt(int64(n))
		case 4:
			n, err := cur.ReadInt32()
			if err != nil {
				return err
			}
			v.SetInt(int64(n))
		default:
			n, err := cur.ReadInt64()
			if err != nil {
				return err
			}
			v.SetInt(n)
		}

		return nil
	case PrimUnsigned:
		switch p.size {
		case 1:
			n, err := cur.ReadUint8()
			if err != nil {
				return err
			}
			v.SetUint(uint64(n))
		case 2:
			n, err := cur.ReadUint16()
			if err != nil {
				return err
			}
			v.SetUint(uint64(n))
		case 4:
			n, err := cur.ReadUint32()
			if err != nil {
				return err
			}
			v.SetUint(uint64(n))
		default:
			n, err := cur.ReadUint64()
			if err != nil {
				return err
			}
			v.SetUint(n)
		}

		return nil
	case PrimFloat:
		if p.size == 4 {
			f, err := cur.ReadFloat32()
			if err != nil {
				return err
			}
			v.SetFloat(float64(f))

			return nil
		}
		f, err := cur.ReadFloat64()
		if err != nil {
			return err
		}
		v.SetFloat(f)

		return nil
	default:
		return fmt.Errorf("descriptor: unreachable primitive kind %d", p.kind)
	}
}

func (p *Primitive) Print(v reflect.Value, s sink.Sink, indent int) {
	writeIndent(s, indent)
	switch p.kind {
	case PrimBool:
		if v.Bool() {
			s.WriteString("true")
		} else {
			s.WriteString("false")
		}
	case PrimSigned:
		s.WriteInt(v.Int())
	case PrimUnsigned:
		s.WriteUint(v.Uint())
	case PrimFloat:
		s.WriteFloat(v.Float(), p.size*8)
	}
}
