package descriptor

import (
	"reflect"
	"time"

	"github.com/kagelund/serialcore/fingerprint"
	"github.com/kagelund/serialcore/sink"
	"github.com/kagelund/serialcore/wire"
)

var timeDurationType = reflect.TypeOf(time.Duration(0))

// Duration encodes a time.Duration as its tick count: a signed 64-bit
// count of nanoseconds (spec §3 item 9, §6 "Period is identity, not
// encoded"). The tick unit is always one nanosecond, so no Period value
// ever reaches the wire; it is folded into the structural hash only.
type Duration struct{}

var _ Descriptor = Duration{}

func (Duration) Family() Family          { return FamilyDuration }
func (Duration) GoType() reflect.Type    { return timeDurationType }
func (Duration) StaticSize() (int, bool) { return 8, true }
func (Duration) Size(reflect.Value) (int, error) { return 8, nil }

func (Duration) StructuralHash(h *uint32, _ int) {
	fingerprint.Combine(h, byte(FamilyDuration))
	fingerprint.CombineInt(h, 1) // numerator: 1 nanosecond per tick
	fingerprint.CombineInt(h, int(time.Second))
	fingerprint.Combine(h, byte(PrimSigned))
	fingerprint.Combine(h, 8)
}

func (Duration) Init(_ reflect.Value, cur *wire.Cursor) error { return cur.Skip(8) }

func (Duration) Encode(v reflect.Value, cur *wire.Cursor) error {
	return cur.WriteInt64(int64(v.Interface().(time.Duration)))
}

func (Duration) Decode(v reflect.Value, cur *wire.Cursor) error {
	n, err := cur.ReadInt64()
	if err != nil {
		return err
	}
	v.Set(reflect.ValueOf(time.Duration(n)))

	return nil
}

func (Duration) Print(v reflect.Value, s sink.Sink, indent int) {
	writeIndent(s, indent)
	s.WriteString(v.Interface().(time.Duration).String())
}
