// Package aliasindex accelerates alias-string lookup for the registry. A
// registry entry's canonical identity is its alias string (spec §3's
// "serial_ident"), but comparing strings on every FindByAlias call is
// wasteful once a program registers hundreds of types. Index keys every
// alias by its xxHash64 accelerator value (internal/hash) and compares
// strings only among the entries in that one bucket; internal/collision
// records whether any bucket has ever held two distinct aliases.
package aliasindex

import (
	"github.com/kagelund/serialcore/internal/collision"
	"github.com/kagelund/serialcore/internal/hash"
)

// Index maps alias strings to arbitrary values V through an xxHash64
// accelerator. A lookup scans only the bucket for its accelerator hash,
// which holds more than one entry only after a collision.
type Index[V any] struct {
	buckets  map[uint64][]entry[V]
	tracker  *collision.Tracker
	aliasMap map[string]V
}

type entry[V any] struct {
	alias string
	value V
}

// New creates an empty alias index.
func New[V any]() *Index[V] {
	return &Index[V]{
		buckets:  make(map[uint64][]entry[V]),
		tracker:  collision.NewTracker(),
		aliasMap: make(map[string]V),
	}
}

// Put registers alias -> value. Returns an error if alias is empty or
// already registered.
func (idx *Index[V]) Put(alias string, value V) error {
	accel := hash.ID(alias)
	if err := idx.tracker.TrackAlias(alias, accel); err != nil {
		return err
	}

	idx.buckets[accel] = append(idx.buckets[accel], entry[V]{alias: alias, value: value})
	idx.aliasMap[alias] = value

	return nil
}

// Get looks up alias, returning its value and whether it was found. The
// accelerator hash narrows the search to a small bucket; ties within a
// bucket (only possible once HasCollision is true) are broken by an
// exact string comparison.
func (idx *Index[V]) Get(alias string) (V, bool) {
	accel := hash.ID(alias)
	for _, e := range idx.buckets[accel] {
		if e.alias == alias {
			return e.value, true
		}
	}

	var zero V

	return zero, false
}

// HasCollision reports whether two distinct aliases have ever produced
// the same accelerator hash.
func (idx *Index[V]) HasCollision() bool { return idx.tracker.HasCollision() }

// Len returns the number of distinct aliases registered.
func (idx *Index[V]) Len() int { return len(idx.aliasMap) }
