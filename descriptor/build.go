package descriptor

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/kagelund/serialcore/tuple"
)

// aggregateCache holds in-progress and finished *Aggregate descriptors
// keyed by Go type. Build stores the (still-empty) aggregate pointer
// before recursing into its own fields, so a field that refers back to
// the same type — directly, or through a slice/array/pointer — resolves
// to the same pointer instead of recursing forever. Registration happens
// once at process warm-up, before any encode/decode/hash call ever
// touches the tree, so the cache never observes a half-built aggregate
// in use.
var aggregateCache sync.Map // reflect.Type -> *Aggregate

var tupleValueType = reflect.TypeOf((*tuple.Value)(nil)).Elem()

// Build constructs the descriptor tree for t, memoizing aggregates by
// type so that repeated and self-referential types share one descriptor
// instance (substituting for the original's compile-time template
// instantiation, done once per process here instead of once per build).
func Build(t reflect.Type) (Descriptor, error) {
	switch {
	case t == nullType:
		return nullDescriptor{}, nil
	case t == timeTimeType:
		return TimePoint{}, nil
	case t == timeDurationType:
		return Duration{}, nil
	case t == bitsType:
		return nil, fmt.Errorf("descriptor: bitset.Bits field requires a `serial:\"bits=N\"` struct tag")
	}

	switch t.Kind() {
	case reflect.Bool, reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return buildPrimitive(t)
	case reflect.Complex64, reflect.Complex128:
		return buildComplex(t), nil
	case reflect.String:
		return Text{}, nil
	case reflect.Array:
		elem, err := Build(t.Elem())
		if err != nil {
			return nil, err
		}

		return buildFixedArray(t, elem), nil
	case reflect.Slice:
		elem, err := Build(t.Elem())
		if err != nil {
			return nil, err
		}

		return buildSequence(t, elem), nil
	case reflect.Struct:
		return buildStruct(t)
	default:
		return nil, fmt.Errorf("descriptor: unsupported type %s (kind %s)", t, t.Kind())
	}
}

func buildStruct(t reflect.Type) (Descriptor, error) {
	if t.Implements(tupleValueType) || reflect.PointerTo(t).Implements(tupleValueType) {
		return buildTuple(t)
	}

	return buildAggregate(t)
}

func buildTuple(t reflect.Type) (*Tuple, error) {
	fields, err := buildFields(t)
	if err != nil {
		return nil, err
	}

	return &Tuple{fields: fields, goType: t}, nil
}

func buildAggregate(t reflect.Type) (*Aggregate, error) {
	if cached, ok := aggregateCache.Load(t); ok {
		return cached.(*Aggregate), nil
	}

	agg := &Aggregate{goType: t}
	aggregateCache.Store(t, agg)

	fields, err := buildFields(t)
	if err != nil {
		aggregateCache.Delete(t)

		return nil, err
	}
	agg.fields = fields

	return agg, nil
}

func buildFields(t reflect.Type) ([]*field, error) {
	fields := make([]*field, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		desc, err := buildField(sf)
		if err != nil {
			return nil, fmt.Errorf("descriptor: field %s.%s: %w", t, sf.Name, err)
		}
		fields = append(fields, &field{index: i, name: sf.Name, desc: desc})
	}

	return fields, nil
}

// buildField handles the one case Build itself can't resolve from the Go
// type alone: a bitset.Bits field, whose bit width lives in the struct
// tag rather than the type (see bitset package doc).
func buildField(sf reflect.StructField) (Descriptor, error) {
	if sf.Type == bitsType {
		n, err := bitsWidth(sf)
		if err != nil {
			return nil, err
		}

		return buildBitset(n)
	}

	return Build(sf.Type)
}

func bitsWidth(sf reflect.StructField) (int, error) {
	tag := sf.Tag.Get("serial")
	for _, part := range strings.Split(tag, ",") {
		k, v, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok || k != "bits" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("descriptor: invalid bits width %q: %w", v, err)
		}

		return n, nil
	}

	return 0, fmt.Errorf(`descriptor: bitset.Bits field needs a serial:"bits=N" tag`)
}
