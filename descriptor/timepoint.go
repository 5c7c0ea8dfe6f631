package descriptor

import (
	"reflect"
	"time"

	"github.com/kagelund/serialcore/fingerprint"
	"github.com/kagelund/serialcore/sink"
	"github.com/kagelund/serialcore/wire"
)

var timeTimeType = reflect.TypeOf(time.Time{})

// clockIdentity names the epoch this module's only supported clock is
// measured against (spec §4.2 "Time point": "clock identity tag"). Go's
// time.Time is itself already monotonic-aware internally; on the wire we
// only ever carry the wall-clock Unix epoch offset, so one identity
// suffices.
const clockIdentity = "unix"

// TimePoint encodes a time.Time as a signed 64-bit count of nanoseconds
// since the Unix epoch — its duration-since-epoch, per spec §3 item 8.
type TimePoint struct{}

var _ Descriptor = TimePoint{}

func (TimePoint) Family() Family          { return FamilyTimePoint }
func (TimePoint) GoType() reflect.Type    { return timeTimeType }
func (TimePoint) StaticSize() (int, bool) { return 8, true }
func (TimePoint) Size(reflect.Value) (int, error) { return 8, nil }

func (TimePoint) StructuralHash(h *uint32, _ int) {
	fingerprint.Combine(h, byte(FamilyTimePoint))
	fingerprint.CombineString(h, clockIdentity)
	// duration hash of the underlying int64-nanosecond rep
	fingerprint.Combine(h, byte(FamilyDuration))
	fingerprint.CombineInt(h, 1) // numerator
	fingerprint.CombineInt(h, int(time.Second))
}

func (TimePoint) Init(_ reflect.Value, cur *wire.Cursor) error { return cur.Skip(8) }

func (TimePoint) Encode(v reflect.Value, cur *wire.Cursor) error {
	t := v.Interface().(time.Time)

	return cur.WriteInt64(t.UnixNano())
}

func (TimePoint) Decode(v reflect.Value, cur *wire.Cursor) error {
	ns, err := cur.ReadInt64()
	if err != nil {
		return err
	}
	v.Set(reflect.ValueOf(time.Unix(0, ns).UTC()))

	return nil
}

func (TimePoint) Print(v reflect.Value, s sink.Sink, indent int) {
	writeIndent(s, indent)
	t := v.Interface().(time.Time)
	s.WriteString(t.UTC().Format(time.RFC3339Nano))
}
