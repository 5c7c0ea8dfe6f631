// Package descriptor implements C2 of the serialization core: per-type
// metadata describing how a Go value of a given shape is sized,
// byte-laid-out, and hashed. Go has no compile-time reflection /
// metaprogramming facility equivalent to C++ templates, so where the
// original would generate one specialization per instantiated type at
// compile time, this package builds one Descriptor tree per reflect.Type
// the first time it is encountered (Build), memoizes it for the life of
// the process, and from then on walks that tree against reflect.Value
// instances. This is the idiomatic Go substitute the spec's design notes
// call out: "a target language should substitute a build-time
// code-generation pass" — here the pass runs once, lazily, at process
// warm-up instead of at compile time, but the result is the same
// process-lifetime, write-once descriptor the spec requires.
package descriptor

import (
	"reflect"

	"github.com/kagelund/serialcore/sink"
	"github.com/kagelund/serialcore/wire"
)

// Family identifies which of the eleven supported type families a
// Descriptor implements. The byte value doubles as the family tag folded
// into the structural hash (spec §3/§4.3).
type Family uint8

const (
	FamilyNull Family = iota
	FamilyPrimitive
	FamilyFixedArray
	FamilySequence
	FamilyString
	FamilyBitset
	FamilyTuple
	FamilyAggregate
	FamilyTimePoint
	FamilyDuration
	FamilyComplex
)

func (f Family) String() string {
	switch f {
	case FamilyNull:
		return "Null"
	case FamilyPrimitive:
		return "Primitive"
	case FamilyFixedArray:
		return "FixedArray"
	case FamilySequence:
		return "Sequence"
	case FamilyString:
		return "String"
	case FamilyBitset:
		return "Bitset"
	case FamilyTuple:
		return "Tuple"
	case FamilyAggregate:
		return "Aggregate"
	case FamilyTimePoint:
		return "TimePoint"
	case FamilyDuration:
		return "Duration"
	case FamilyComplex:
		return "Complex"
	default:
		return "Unknown"
	}
}

// Descriptor is the per-family operation set from spec §4.2. v is always
// an addressable reflect.Value of the family's Go type when mutated
// (Init, Decode) and may be a plain value when only read (Size, Encode,
// Print, StructuralHash needs no value at all).
type Descriptor interface {
	// Family reports which type family this descriptor implements.
	Family() Family

	// GoType is the concrete Go type this descriptor was built for.
	GoType() reflect.Type

	// StructuralHash folds this type's shape into h. depth counts the
	// aggregate levels already entered (0 at the top); implementations
	// that recurse into nested aggregates must pass it on so the
	// fingerprint.DefaultDepth bound holds (spec §3 invariants).
	StructuralHash(h *uint32, depth int)

	// StaticSize reports the byte size for fixed-size types. ok is
	// false for dynamic types (sequences, strings, and anything that
	// contains one).
	StaticSize() (size int, ok bool)

	// Size returns the exact number of bytes v will occupy on the wire.
	Size(v reflect.Value) (int, error)

	// Init is the decoder's first pass: it sizes/resizes any dynamic
	// sub-parts of v and advances cur past the region v will occupy,
	// without reading v's actual field bytes yet.
	Init(v reflect.Value, cur *wire.Cursor) error

	// Encode writes v's bytes starting at cur's position.
	Encode(v reflect.Value, cur *wire.Cursor) error

	// Decode reads v's bytes; Init must already have sized v.
	Decode(v reflect.Value, cur *wire.Cursor) error

	// Print renders v in human-readable form to sink.
	Print(v reflect.Value, s sink.Sink, indent int)
}

func writeIndent(s sink.Sink, indent int) {
	for range indent {
		s.WriteString("  ")
	}
}
