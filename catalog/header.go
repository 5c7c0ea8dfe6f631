package catalog

import "github.com/kagelund/serialcore/wire"

// HeaderSize is the fixed on-wire size of a Header.
const HeaderSize = 16

// magic identifies a catalog snapshot's byte layout, distinct from a
// serialcore payload's fingerprint prefix so the two are never confused
// when read from the same directory.
const magic = uint16(0xCA70)

// Header precedes a Snapshot's Entry list: a magic number, the entry
// count, and the reduced digest the entries sum to (registry.ReducedDigest
// at the time the snapshot was taken).
type Header struct {
	Count  uint32
	Digest uint64
}

func (h Header) bytes(engine wire.EndianEngine) []byte {
	var b [HeaderSize]byte
	engine.PutUint16(b[0:2], magic)
	engine.PutUint32(b[4:8], h.Count)
	engine.PutUint64(b[8:16], h.Digest)

	return b[:]
}

func parseHeader(data []byte, engine wire.EndianEngine) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, ErrTruncatedHeader
	}
	if got := engine.Uint16(data[0:2]); got != magic {
		return Header{}, ErrBadMagic
	}

	return Header{
		Count:  engine.Uint32(data[4:8]),
		Digest: engine.Uint64(data[8:16]),
	}, nil
}
