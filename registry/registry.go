// Package registry implements C4: the compile-time-closed catalog of all
// user-registered record types, densely indexed and searchable by
// fingerprint, alias, or exact Go type. The structural-match fallback
// that tolerates a renamed type (spec §4.6) needs no registry-wide
// search: a decode call always knows its target type T, so it compares
// the payload's structural hash directly against T's own entry. Go has
// no build-time code-generation pass over the program's own type
// declarations, so the substitute used here is the idiomatic one:
// package-level var initializers calling Register[T] before main runs,
// which for Go gives the same "closed at program start" guarantee the
// spec's compile-time enumeration provides.
package registry

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/kagelund/serialcore/descriptor"
	"github.com/kagelund/serialcore/fingerprint"
	"github.com/kagelund/serialcore/internal/aliasindex"
)

// Entry is one registered type's full catalog record.
type Entry struct {
	Index          int
	Alias          string
	Descriptor     descriptor.Descriptor
	AliasHash      uint32
	StructuralHash uint32
	Fingerprint    uint64
}

// Registry is the process-wide closed catalog. The zero value is not
// usable; use New or the package-level Default.
type Registry struct {
	mu      sync.RWMutex
	entries []*Entry
	byFP    map[uint64]*Entry
	byType  map[reflect.Type]*Entry
	aliases *aliasindex.Index[*Entry]
	closed  bool
}

// New creates an empty registry with the null type pre-registered at
// dense index 0, per spec §4.4.
func New() *Registry {
	r := &Registry{
		byFP:    make(map[uint64]*Entry),
		byType:  make(map[reflect.Type]*Entry),
		aliases: aliasindex.New[*Entry](),
	}
	if err := r.register("Null", descriptor.Null{}); err != nil {
		panic(fmt.Sprintf("registry: failed to register null type: %v", err))
	}

	return r
}

// Default is the process-wide registry used by the package-level
// Register/MustRegister helpers and, in turn, by the top-level
// serialcore package's Serialize/Parse/Ident/Alias/Trace family.
var Default = New()

// Register[T] builds T's descriptor, computes its fingerprint, and adds
// it to r under the given alias. Intended to run from a package-level
// var initializer, mirroring the spec's compile-time enumeration.
func Register[T any](r *Registry, alias string) (*Entry, error) {
	var zero T

	return r.register(alias, zero)
}

// MustRegister panics instead of returning an error; meant for var-init
// call sites where a registration failure is a programming error.
func MustRegister[T any](r *Registry, alias string) *Entry {
	e, err := Register[T](r, alias)
	if err != nil {
		panic(err)
	}

	return e
}

func (r *Registry) register(alias string, zero any) (*Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t := reflect.TypeOf(zero)

	if existing, ok := r.byType[t]; ok {
		return existing, fmt.Errorf("registry: type %s already registered as %q", t, existing.Alias)
	}

	desc, err := descriptor.Build(t)
	if err != nil {
		return nil, fmt.Errorf("registry: building descriptor for %s: %w", t, err)
	}

	var structuralHash uint32 = fingerprint.StructuralSeed
	desc.StructuralHash(&structuralHash, 0)
	aliasHash := fingerprint.AliasHash(alias)
	fp := fingerprint.Full(aliasHash, structuralHash)

	if dup, ok := r.byFP[fp]; ok {
		return nil, fmt.Errorf("registry: fingerprint collision between %q and %q", alias, dup.Alias)
	}

	e := &Entry{
		Index:          len(r.entries),
		Alias:          alias,
		Descriptor:     desc,
		AliasHash:      aliasHash,
		StructuralHash: structuralHash,
		Fingerprint:    fp,
	}

	if err := r.aliases.Put(alias, e); err != nil {
		return nil, fmt.Errorf("registry: %w", err)
	}

	r.entries = append(r.entries, e)
	r.byFP[fp] = e
	r.byType[t] = e

	return e, nil
}

// FindByFingerprint returns the entry whose full fingerprint matches fp.
func (r *Registry) FindByFingerprint(fp uint64) (*Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.byFP[fp]

	return e, ok
}

// FindByAlias returns the entry registered under alias.
func (r *Registry) FindByAlias(alias string) (*Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.aliases.Get(alias)
}

// FindByType returns the entry registered for the exact Go type t.
func (r *Registry) FindByType(t reflect.Type) (*Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.byType[t]

	return e, ok
}

// ForEach calls fn for every registered entry in dense-index order,
// stopping early if fn returns false. Used by tracing and digesting
// (spec §4.4).
func (r *Registry) ForEach(fn func(*Entry) bool) {
	r.mu.RLock()
	entries := make([]*Entry, len(r.entries))
	copy(entries, r.entries)
	r.mu.RUnlock()

	for _, e := range entries {
		if !fn(e) {
			return
		}
	}
}

// Count returns the number of registered entries, including the null
// type at index 0.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.entries)
}

// ReducedDigest computes the sum, modulo 2^64, of every entry's full
// fingerprint (spec §4.3 "reduced digest"). A quick equality check
// between two catalogs without comparing every entry.
func (r *Registry) ReducedDigest() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var sum uint64
	for _, e := range r.entries {
		sum += e.Fingerprint
	}

	return sum
}

// PerfectSet returns the full multiset of registered fingerprints (spec
// §4.3), used when an individual type's presence in the catalog must be
// confirmed rather than just the aggregate digest.
func (r *Registry) PerfectSet() []uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]uint64, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.Fingerprint
	}

	return out
}
