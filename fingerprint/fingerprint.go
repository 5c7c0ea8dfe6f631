// Package fingerprint implements the 32-bit mixing function that folds a
// type's alias string and structural shape into the two halves of a
// 64-bit fingerprint (spec §4.3). It has no knowledge of descriptors or
// the registry; descriptor.Descriptor implementations call Combine* while
// folding their own shape, and the registry package assembles the two
// 32-bit halves into the full 64-bit identity.
package fingerprint

import "encoding/binary"

// StructuralSeed is the initial accumulator value for a structural hash
// fold, before any family tag or field is combined in.
const StructuralSeed uint32 = 0xFFFFFFFF

// DefaultDepth bounds aggregate nesting in a structural hash. The fold
// starts at depth 0 and each nested aggregate level adds one; an
// aggregate reached at depth DefaultDepth folds a sentinel instead of its
// fields.
const DefaultDepth = 16

// DepthSentinel is folded in place of further recursion once the nesting
// budget is exhausted, so mutually (or self-) recursive record shapes
// still produce a well-defined, finite hash.
const DepthSentinel byte = 0x5A

// Combine folds a single byte into the running hash using the same
// mixing step for both the alias hash and the structural hash.
func Combine(h *uint32, b byte) {
	s := *h
	*h = s ^ (uint32(b) + 0x9E3779B9 + (s << 6) + (s >> 2))
}

// CombineBytes folds each byte of data in order.
func CombineBytes(h *uint32, data []byte) {
	for _, b := range data {
		Combine(h, b)
	}
}

// CombineString folds the bytes of an alias or field name.
func CombineString(h *uint32, s string) {
	CombineBytes(h, []byte(s))
}

// CombineUint32 folds a 4-byte big-endian view of v. The byte order here
// is purely an internal hashing convention; it never appears on the wire.
func CombineUint32(h *uint32, v uint32) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	CombineBytes(h, b[:])
}

// CombineUint64 folds an 8-byte big-endian view of v.
func CombineUint64(h *uint32, v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	CombineBytes(h, b[:])
}

// CombineInt folds a non-negative count or index (element counts, field
// widths, nesting depth).
func CombineInt(h *uint32, v int) {
	CombineUint64(h, uint64(v))
}

// AliasHash computes the high 32 bits of a type's fingerprint from its
// canonical alias string.
func AliasHash(alias string) uint32 {
	var h uint32
	CombineString(&h, alias)

	return h
}

// Full concatenates the alias hash (high 32 bits) and structural hash
// (low 32 bits) into the 64-bit fingerprint.
func Full(aliasHash, structuralHash uint32) uint64 {
	return uint64(aliasHash)<<32 | uint64(structuralHash)
}

// SplitAlias extracts the alias-hash half of a fingerprint.
func SplitAlias(fp uint64) uint32 { return uint32(fp >> 32) }

// SplitStructural extracts the structural-hash half of a fingerprint.
func SplitStructural(fp uint64) uint32 { return uint32(fp) }
