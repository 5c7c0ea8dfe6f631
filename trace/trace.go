// Package trace implements C7: pretty-printing a payload whose Go type
// isn't known at the call site, resolved purely from its fingerprint
// prefix against the registry (spec §4.7).
package trace

import (
	"reflect"

	"github.com/kagelund/serialcore/registry"
	"github.com/kagelund/serialcore/sink"
	"github.com/kagelund/serialcore/wire"
)

// Trace reads the first 8 bytes of data as a fingerprint, looks it up in
// r, and if found decodes the rest as that type and prints it to s. On
// any failure — unknown fingerprint, a short buffer, a decode error — it
// returns silently: tracing must never raise (spec §4.7).
func Trace(r *registry.Registry, data []byte, s sink.Sink, engine wire.EndianEngine) {
	if len(data) < 8 {
		return
	}

	cur := wire.NewCursor(data, engine)
	fp, err := cur.ReadUint64()
	if err != nil {
		return
	}

	entry, ok := r.FindByFingerprint(fp)
	if !ok {
		return
	}

	target := reflect.New(entry.Descriptor.GoType()).Elem()

	initCur := cur.Clone()
	if err := entry.Descriptor.Init(target, initCur); err != nil {
		return
	}
	if err := entry.Descriptor.Decode(target, cur); err != nil {
		return
	}

	entry.Descriptor.Print(target, s, 0)
}
