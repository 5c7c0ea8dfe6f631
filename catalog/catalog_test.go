package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kagelund/serialcore/catalog"
	"github.com/kagelund/serialcore/registry"
	"github.com/kagelund/serialcore/wire"
)

type catalogPoint struct {
	X, Y int32
}

type catalogLabel struct {
	Name string
}

func buildTestRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	r := registry.New()
	_, err := registry.Register[catalogPoint](r, "Point")
	require.NoError(t, err)
	_, err = registry.Register[catalogLabel](r, "Label")
	require.NoError(t, err)

	return r
}

func TestEntry_RoundTrip(t *testing.T) {
	engine := wire.GetNativeEndianEngine()
	e := catalog.Entry{Fingerprint: 0x0102030405060708, Index: 3, AliasHash: 0xAABBCCDD}

	out, err := catalog.ParseEntry(e.Bytes(engine), engine)
	require.NoError(t, err)
	require.Equal(t, e, out)
}

func TestEntry_WriteToSlice(t *testing.T) {
	engine := wire.GetNativeEndianEngine()
	e := catalog.Entry{Fingerprint: 42, Index: 1, AliasHash: 7}

	buf := make([]byte, catalog.EntrySize+4)
	next := e.WriteToSlice(buf, 2, engine)
	require.Equal(t, 2+catalog.EntrySize, next)

	out, err := catalog.ParseEntry(buf[2:], engine)
	require.NoError(t, err)
	require.Equal(t, e, out)
}

func TestBuildMarshalUnmarshal_RoundTrip(t *testing.T) {
	r := buildTestRegistry(t)
	engine := wire.GetNativeEndianEngine()

	snap := catalog.Build(r)
	require.Len(t, snap.Entries, r.Count())
	require.Equal(t, r.ReducedDigest(), snap.Digest)

	data := snap.Marshal(engine)
	decoded, err := catalog.Unmarshal(data, engine)
	require.NoError(t, err)
	require.Equal(t, snap, decoded)
}

func TestSnapshot_Verify(t *testing.T) {
	r := buildTestRegistry(t)
	snap := catalog.Build(r)

	require.NoError(t, snap.Verify(r))
}

func TestSnapshot_Verify_DigestMismatch(t *testing.T) {
	r := buildTestRegistry(t)
	snap := catalog.Build(r)

	r2 := registry.New()
	_, err := registry.Register[catalogPoint](r2, "Point")
	require.NoError(t, err)

	require.ErrorIs(t, snap.Verify(r2), catalog.ErrDigestMismatch)
}

func TestSnapshot_Diff(t *testing.T) {
	r1 := registry.New()
	_, err := registry.Register[catalogPoint](r1, "Point")
	require.NoError(t, err)
	before := catalog.Build(r1)

	r2 := registry.New()
	_, err = registry.Register[catalogPoint](r2, "Point")
	require.NoError(t, err)
	_, err = registry.Register[catalogLabel](r2, "Label")
	require.NoError(t, err)
	after := catalog.Build(r2)

	diff := before.Diff(after)
	require.Len(t, diff.Added, 1)
	require.Empty(t, diff.Removed)
}

func TestUnmarshal_BadMagic(t *testing.T) {
	engine := wire.GetNativeEndianEngine()
	_, err := catalog.Unmarshal(make([]byte, catalog.HeaderSize), engine)
	require.ErrorIs(t, err, catalog.ErrBadMagic)
}

func TestUnmarshal_TruncatedHeader(t *testing.T) {
	engine := wire.GetNativeEndianEngine()
	_, err := catalog.Unmarshal([]byte{1, 2, 3}, engine)
	require.ErrorIs(t, err, catalog.ErrTruncatedHeader)
}
