// Package serialcore is the public entry point for the structural binary
// serialization core: register a Go type once, then Serialize/Parse
// values of it to and from a compact, fingerprinted byte payload (spec §6
// "External interfaces"). The payload carries only the type's
// fingerprint, not its schema.
package serialcore

import (
	"fmt"
	"reflect"

	"github.com/kagelund/serialcore/codec"
	"github.com/kagelund/serialcore/registry"
	"github.com/kagelund/serialcore/sink"
	"github.com/kagelund/serialcore/trace"
	"github.com/kagelund/serialcore/wire"
)

// Option configures a Serialize or Parse call's storage byte order.
type Option = codec.Option

var (
	WithBigEndian    = codec.WithBigEndian
	WithLittleEndian = codec.WithLittleEndian
	WithNativeEndian = codec.WithNativeEndian
	WithEngine       = codec.WithEngine
)

// Register adds T to the process-wide registry under alias. Call it from
// a package-level var initializer; the registry is closed once program
// startup completes (spec §4.4).
func Register[T any](alias string) {
	registry.MustRegister[T](registry.Default, alias)
}

// Serialize encodes value as a fingerprinted payload.
func Serialize[T any](value T, opts ...Option) ([]byte, error) {
	return codec.Serialize(value, opts...)
}

// Parse reconstructs a T from a fingerprinted payload, honoring the
// structural-match fallback for renamed types (spec §4.6).
func Parse[T any](data []byte, opts ...Option) (T, error) {
	return codec.Parse[T](data, opts...)
}

// Size returns the exact byte length Serialize would produce for value.
func Size[T any](value T) (int, error) {
	return codec.Size(value)
}

// StaticSize returns T's minimum fixed payload size and whether T is
// entirely fixed-size.
func StaticSize[T any]() (int, bool, error) {
	return codec.StaticSize[T]()
}

// Hash reads a payload's 8-byte fingerprint prefix without decoding the
// rest (spec §6 "hash<B>"). It honors the same storage byte order the
// payload was serialized with.
func Hash(data []byte, opts ...Option) (uint64, error) {
	engine, err := codec.EngineFromOptions(opts...)
	if err != nil {
		return 0, err
	}
	cur := wire.NewCursor(data, engine)

	return cur.ReadUint64()
}

// Ident returns T's own fingerprint (spec §6 "ident<T>").
func Ident[T any]() (uint64, bool) {
	var zero T
	e, ok := registry.Default.FindByType(reflect.TypeOf(zero))
	if !ok {
		return 0, false
	}

	return e.Fingerprint, true
}

// IdentByAlias looks up a registered type's fingerprint by its alias
// (spec §6 "ident(alias)").
func IdentByAlias(alias string) (uint64, bool) {
	e, ok := registry.Default.FindByAlias(alias)
	if !ok {
		return 0, false
	}

	return e.Fingerprint, true
}

// Alias returns a registered fingerprint's alias string (spec §6
// "alias(id)").
func Alias(fingerprint uint64) (string, bool) {
	e, ok := registry.Default.FindByFingerprint(fingerprint)
	if !ok {
		return "", false
	}

	return e.Alias, true
}

// Print renders value directly to s, bypassing any fingerprint lookup
// (spec §6 "print<T,S>").
func Print[T any](value T, s sink.Sink) error {
	var zero T
	e, ok := registry.Default.FindByType(reflect.TypeOf(zero))
	if !ok {
		return unregisteredType(reflect.TypeOf(zero))
	}

	e.Descriptor.Print(reflect.ValueOf(value), s, 0)

	return nil
}

// Trace resolves a payload's type purely from its fingerprint prefix and
// prints it to s. It never returns an error: any failure is silent
// (spec §4.7).
func Trace(data []byte, s sink.Sink, opts ...Option) {
	engine, err := codec.EngineFromOptions(opts...)
	if err != nil {
		return
	}

	trace.Trace(registry.Default, data, s, engine)
}

// SerialVersion returns the reduced digest of the process-wide registry
// (spec §6 "serial_version()").
func SerialVersion() uint64 {
	return registry.Default.ReducedDigest()
}

// CheckVersion reports whether the current process's registry digest
// matches want, the digest recorded by some other build of this program
// (spec §6 "check_version()" — compile-vs-runtime catalog parity).
func CheckVersion(want uint64) bool {
	return registry.Default.ReducedDigest() == want
}

// CheckVersionFor reports whether T is present in the registry with
// exactly the fingerprint recorded as want.
func CheckVersionFor[T any](want uint64) bool {
	fp, ok := Ident[T]()

	return ok && fp == want
}

func unregisteredType(t reflect.Type) error {
	return fmt.Errorf("serialcore: type %s is not registered", t)
}
