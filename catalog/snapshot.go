package catalog

import (
	"github.com/kagelund/serialcore/internal/pool"
	"github.com/kagelund/serialcore/registry"
	"github.com/kagelund/serialcore/wire"
)

// Snapshot is a point-in-time copy of a registry's entries, suitable for
// writing to disk at build time and comparing against a running process's
// registry later (spec §6 "check_version()").
type Snapshot struct {
	Entries []Entry
	Digest  uint64
}

// Build flattens r's entries into a Snapshot using pooled scratch columns,
// mirroring how a columnar encoder assembles parallel slices from a row
// source before writing them out.
func Build(r *registry.Registry) Snapshot {
	n := r.Count()

	fps, doneFP := pool.GetUint64Slice(n)
	defer doneFP()
	indices, doneIdx := pool.GetInt32Slice(n)
	defer doneIdx()
	aliasHashes, doneAlias := pool.GetUint32Slice(n)
	defer doneAlias()

	i := 0
	r.ForEach(func(e *registry.Entry) bool {
		fps[i] = e.Fingerprint
		indices[i] = int32(e.Index) //nolint:gosec
		aliasHashes[i] = e.AliasHash
		i++

		return true
	})

	entries := make([]Entry, n)
	var digest uint64
	for i := range entries {
		entries[i] = Entry{
			Fingerprint: fps[i],
			Index:       uint32(indices[i]), //nolint:gosec
			AliasHash:   aliasHashes[i],
		}
		digest += fps[i]
	}

	return Snapshot{Entries: entries, Digest: digest}
}

// Marshal encodes s as Header || Entry*.
func (s Snapshot) Marshal(engine wire.EndianEngine) []byte {
	hdr := Header{Count: uint32(len(s.Entries)), Digest: s.Digest} //nolint:gosec

	out := make([]byte, HeaderSize+len(s.Entries)*EntrySize)
	copy(out, hdr.bytes(engine))

	offset := HeaderSize
	for _, e := range s.Entries {
		offset = e.WriteToSlice(out, offset, engine)
	}

	return out
}

// Unmarshal decodes a Snapshot previously produced by Marshal.
func Unmarshal(data []byte, engine wire.EndianEngine) (Snapshot, error) {
	hdr, err := parseHeader(data, engine)
	if err != nil {
		return Snapshot{}, err
	}

	entries := make([]Entry, 0, hdr.Count)
	offset := HeaderSize
	for i := uint32(0); i < hdr.Count; i++ {
		e, err := ParseEntry(data[offset:], engine)
		if err != nil {
			return Snapshot{}, err
		}
		entries = append(entries, e)
		offset += EntrySize
	}

	return Snapshot{Entries: entries, Digest: hdr.Digest}, nil
}

// Verify checks that r's current state is compatible with the snapshot:
// the reduced digests must match, and every snapshotted fingerprint must
// still resolve in r. Summing is not injective, so a matching digest
// alone does not prove every fingerprint is present; the per-entry check
// runs after the digest check for that reason.
func (s Snapshot) Verify(r *registry.Registry) error {
	if r.ReducedDigest() != s.Digest {
		return ErrDigestMismatch
	}

	for _, e := range s.Entries {
		if _, ok := r.FindByFingerprint(e.Fingerprint); !ok {
			return ErrMissingType
		}
	}

	return nil
}

// Diff reports how two snapshots' type sets differ: fingerprints present
// in other but not s (Added), and fingerprints present in s but not other
// (Removed). A fingerprint appearing in both is unchanged by definition,
// since the fingerprint already encodes the type's full shape.
type Diff struct {
	Added   []uint64
	Removed []uint64
}

// Diff compares s against other.
func (s Snapshot) Diff(other Snapshot) Diff {
	inS := make(map[uint64]struct{}, len(s.Entries))
	for _, e := range s.Entries {
		inS[e.Fingerprint] = struct{}{}
	}
	inOther := make(map[uint64]struct{}, len(other.Entries))
	for _, e := range other.Entries {
		inOther[e.Fingerprint] = struct{}{}
	}

	var d Diff
	for fp := range inOther {
		if _, ok := inS[fp]; !ok {
			d.Added = append(d.Added, fp)
		}
	}
	for fp := range inS {
		if _, ok := inOther[fp]; !ok {
			d.Removed = append(d.Removed, fp)
		}
	}

	return d
}
