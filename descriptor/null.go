package descriptor

import (
	"reflect"

	"github.com/kagelund/serialcore/fingerprint"
	"github.com/kagelund/serialcore/sink"
	"github.com/kagelund/serialcore/wire"
)

// Null is the unit value: the empty struct{}, zero bytes on the wire,
// with a well-defined fingerprint (spec §3 item 11). Registering Null
// gives the registry a real, non-dangling occupant for dense index 0.
type Null struct{}

var nullType = reflect.TypeOf(Null{})

type nullDescriptor struct{}

var _ Descriptor = nullDescriptor{}

func (nullDescriptor) Family() Family       { return FamilyNull }
func (nullDescriptor) GoType() reflect.Type { return nullType }
func (nullDescriptor) StaticSize() (int, bool) { return 0, true }
func (nullDescriptor) Size(reflect.Value) (int, error) { return 0, nil }

func (nullDescriptor) StructuralHash(h *uint32, _ int) {
	fingerprint.Combine(h, byte(FamilyNull))
}

func (nullDescriptor) Init(reflect.Value, *wire.Cursor) error   { return nil }
func (nullDescriptor) Encode(reflect.Value, *wire.Cursor) error { return nil }
func (nullDescriptor) Decode(reflect.Value, *wire.Cursor) error { return nil }

func (nullDescriptor) Print(_ reflect.Value, s sink.Sink, indent int) {
	writeIndent(s, indent)
	s.WriteString("null")
}
