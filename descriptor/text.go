package descriptor

import (
	"reflect"

	"github.com/kagelund/serialcore/fingerprint"
	"github.com/kagelund/serialcore/serialerr"
	"github.com/kagelund/serialcore/sink"
	"github.com/kagelund/serialcore/wire"
)

var stringType = reflect.TypeOf("")

// maxStringLen bounds the length prefix the same way Sequence does (spec
// §6 "Array overflow"): a length that would not round-trip through the
// 32-bit count on the wire is rejected before anything is written.
const maxStringLen = 1<<32 - 1

// Text encodes a Go string as a 32-bit byte length followed by the raw
// UTF-8 bytes, unterminated (spec §3 item 4 "String").
type Text struct{}

var _ Descriptor = Text{}

func (Text) Family() Family          { return FamilyString }
func (Text) GoType() reflect.Type    { return stringType }
func (Text) StaticSize() (int, bool) { return 0, false }

func (Text) Size(v reflect.Value) (int, error) {
	n := len(v.String())
	if n > maxStringLen {
		return 0, serialerr.ErrArrayOverflow
	}

	return 4 + n, nil
}

func (Text) StructuralHash(h *uint32, _ int) {
	fingerprint.Combine(h, byte(FamilyString))
}

// Init reads the real length prefix off the wire (the target is still its
// zero value at this point) so the init pass's cursor ends up exactly
// where the decode pass will need it to start.
func (Text) Init(_ reflect.Value, cur *wire.Cursor) error {
	n, err := cur.ReadUint32()
	if err != nil {
		return err
	}

	return cur.Skip(int(n))
}

func (Text) Encode(v reflect.Value, cur *wire.Cursor) error {
	s := v.String()
	if len(s) > maxStringLen {
		return serialerr.ErrArrayOverflow
	}
	if err := cur.WriteUint32(uint32(len(s))); err != nil {
		return err
	}

	return cur.WriteBytes([]byte(s))
}

func (Text) Decode(v reflect.Value, cur *wire.Cursor) error {
	n, err := cur.ReadUint32()
	if err != nil {
		return err
	}
	b, err := cur.ReadBytes(int(n))
	if err != nil {
		return err
	}
	v.SetString(string(b))

	return nil
}

func (Text) Print(v reflect.Value, s sink.Sink, indent int) {
	writeIndent(s, indent)
	s.WriteString(`"`)
	s.WriteString(v.String())
	s.WriteString(`"`)
}
