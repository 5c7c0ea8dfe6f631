// Package catalog persists a process's type registry as a fixed-layout
// snapshot: one 16-byte Entry per registered type, prefixed by a header
// carrying the same reduced digest SerialVersion reports at runtime. A
// snapshot taken at build time and shipped alongside a binary lets a
// reader verify, without decoding a single payload, that the binary it
// is about to talk to still agrees on every registered type's shape
// (spec §6 "serial_version()"/"check_version()").
package catalog

import "github.com/kagelund/serialcore/wire"

// EntrySize is the fixed on-wire size of one Entry.
const EntrySize = 16

// Entry records one registered type's identity: its full 64-bit
// fingerprint, the dense index it was assigned at registration, and the
// alias hash half of the fingerprint broken out for quick alias-only
// comparisons without re-splitting the fingerprint.
type Entry struct {
	Fingerprint uint64
	Index       uint32
	AliasHash   uint32
}

// Bytes encodes e into a freshly allocated 16-byte slice.
func (e Entry) Bytes(engine wire.EndianEngine) []byte {
	var b [EntrySize]byte
	engine.PutUint64(b[0:8], e.Fingerprint)
	engine.PutUint32(b[8:12], e.Index)
	engine.PutUint32(b[12:16], e.AliasHash)

	return b[:]
}

// WriteToSlice writes e into data at offset and returns the next write
// position, for encoding many entries into one pre-allocated buffer.
func (e Entry) WriteToSlice(data []byte, offset int, engine wire.EndianEngine) int {
	engine.PutUint64(data[offset:offset+8], e.Fingerprint)
	engine.PutUint32(data[offset+8:offset+12], e.Index)
	engine.PutUint32(data[offset+12:offset+16], e.AliasHash)

	return offset + EntrySize
}

// ParseEntry decodes one Entry from the front of data.
func ParseEntry(data []byte, engine wire.EndianEngine) (Entry, error) {
	if len(data) < EntrySize {
		return Entry{}, ErrTruncatedEntry
	}

	return Entry{
		Fingerprint: engine.Uint64(data[0:8]),
		Index:       engine.Uint32(data[8:12]),
		AliasHash:   engine.Uint32(data[12:16]),
	}, nil
}
