package codec

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/kagelund/serialcore/registry"
	"github.com/kagelund/serialcore/serialerr"
)

type sample struct {
	ID      int32
	Name    string
	Score   float64
	Tags    []string
	Created time.Time
}

type renamedSample struct {
	ID      int32
	Name    string
	Score   float64
	Tags    []string
	Created time.Time
}

func freshRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	r := registry.New()
	_, err := registry.Register[sample](r, "Sample")
	require.NoError(t, err)

	return r
}

// withDefault temporarily swaps registry.Default so each test runs
// against its own isolated catalog instead of a process-wide shared one.
func withDefault(t *testing.T, r *registry.Registry) {
	t.Helper()
	prev := registry.Default
	registry.Default = r
	t.Cleanup(func() { registry.Default = prev })
}

func TestSerializeParse_RoundTrip(t *testing.T) {
	withDefault(t, freshRegistry(t))

	in := sample{
		ID:      7,
		Name:    "widget",
		Score:   3.25,
		Tags:    []string{"a", "b", "c"},
		Created: time.Unix(0, 1_700_000_000_000_000_000).UTC(),
	}

	data, err := Serialize(in)
	require.NoError(t, err)

	out, err := Parse[sample](data)
	require.NoError(t, err)
	require.Equal(t, in.ID, out.ID)
	require.Equal(t, in.Name, out.Name)
	require.Equal(t, in.Score, out.Score)
	require.Equal(t, in.Tags, out.Tags)
	require.True(t, in.Created.Equal(out.Created))
}

func TestSize_MatchesSerializedLength(t *testing.T) {
	withDefault(t, freshRegistry(t))

	in := sample{ID: 1, Name: "x", Tags: []string{"one", "two"}}
	data, err := Serialize(in)
	require.NoError(t, err)

	sz, err := Size(in)
	require.NoError(t, err)
	require.Equal(t, len(data), sz)
}

func TestParse_BufferOverflow(t *testing.T) {
	withDefault(t, freshRegistry(t))

	_, err := Parse[sample]([]byte{1, 2, 3})
	require.ErrorIs(t, err, serialerr.ErrBufferOverflow)
}

func TestParse_StructuralMatch_AfterRename(t *testing.T) {
	r := registry.New()
	original, err := registry.Register[sample](r, "Sample")
	require.NoError(t, err)
	withDefault(t, r)

	in := sample{ID: 42, Name: "renamed-ok", Tags: []string{"x"}}
	data, err := Serialize(in)
	require.NoError(t, err)

	// Register renamedSample under a new registry where "Sample" no
	// longer exists — simulating the type having been renamed between
	// when the payload was written and when it is read back.
	r2 := registry.New()
	_, err = registry.Register[renamedSample](r2, "RenamedSample")
	require.NoError(t, err)
	withDefault(t, r2)

	out, err := Parse[renamedSample](data)
	require.NoError(t, err)
	require.Equal(t, in.ID, out.ID)
	require.Equal(t, in.Name, out.Name)

	_ = original
}

type reshaped struct {
	ID int32
}

func TestParse_BinaryIncompatible_SameAliasDifferentShape(t *testing.T) {
	r := registry.New()
	_, err := registry.Register[sample](r, "Sample")
	require.NoError(t, err)
	withDefault(t, r)

	in := sample{ID: 9, Name: "before-evolution"}
	data, err := Serialize(in)
	require.NoError(t, err)

	r2 := registry.New()
	_, err = registry.Register[reshaped](r2, "Sample")
	require.NoError(t, err)
	withDefault(t, r2)

	_, err = Parse[reshaped](data)
	require.ErrorIs(t, err, serialerr.ErrBinaryIncompatible)
}

type unrelated struct {
	Flag bool
}

func TestParse_LayoutIncompatible(t *testing.T) {
	r := registry.New()
	_, err := registry.Register[sample](r, "Sample")
	require.NoError(t, err)
	withDefault(t, r)

	in := sample{ID: 1}
	data, err := Serialize(in)
	require.NoError(t, err)

	r2 := registry.New()
	_, err = registry.Register[unrelated](r2, "Unrelated")
	require.NoError(t, err)
	withDefault(t, r2)

	_, err = Parse[unrelated](data)
	require.ErrorIs(t, err, serialerr.ErrLayoutIncompatible)
}

func TestSerializeParse_EndianOrthogonality(t *testing.T) {
	withDefault(t, freshRegistry(t))

	in := sample{ID: -5, Name: "endian", Score: 1.5}

	be, err := Serialize(in, WithBigEndian())
	require.NoError(t, err)
	le, err := Serialize(in, WithLittleEndian())
	require.NoError(t, err)
	require.NotEqual(t, be, le)

	outBE, err := Parse[sample](be, WithBigEndian())
	require.NoError(t, err)
	outLE, err := Parse[sample](le, WithLittleEndian())
	require.NoError(t, err)

	require.Equal(t, in.ID, outBE.ID)
	require.Equal(t, in.ID, outLE.ID)
}
