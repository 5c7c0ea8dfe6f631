package registry

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type point struct {
	X int32
	Y int32
}

type renamedPoint struct {
	X int32
	Y int32
}

func TestNew_HasNullAtIndexZero(t *testing.T) {
	r := New()

	require.Equal(t, 1, r.Count())

	e, ok := r.FindByAlias("Null")
	require.True(t, ok)
	require.Equal(t, 0, e.Index)
}

func TestRegister_AssignsDenseIndex(t *testing.T) {
	r := New()

	p, err := Register[point](r, "Point")
	require.NoError(t, err)
	require.Equal(t, 1, p.Index)

	s, err := Register[string](r, "Text")
	require.NoError(t, err)
	require.Equal(t, 2, s.Index)

	require.Equal(t, 3, r.Count())
}

func TestRegister_DuplicateType(t *testing.T) {
	r := New()

	_, err := Register[point](r, "Point")
	require.NoError(t, err)

	_, err = Register[point](r, "PointAgain")
	require.Error(t, err)
}

func TestRegister_DuplicateAlias(t *testing.T) {
	r := New()

	_, err := Register[point](r, "Point")
	require.NoError(t, err)

	_, err = Register[string](r, "Point")
	require.Error(t, err)
}

func TestFindByFingerprint(t *testing.T) {
	r := New()
	entry, err := Register[point](r, "Point")
	require.NoError(t, err)

	found, ok := r.FindByFingerprint(entry.Fingerprint)
	require.True(t, ok)
	require.Equal(t, entry, found)

	_, ok = r.FindByFingerprint(0xdeadbeefdeadbeef)
	require.False(t, ok)
}

func TestFindByAlias(t *testing.T) {
	r := New()
	entry, err := Register[point](r, "Point")
	require.NoError(t, err)

	found, ok := r.FindByAlias("Point")
	require.True(t, ok)
	require.Equal(t, entry, found)

	_, ok = r.FindByAlias("NoSuchAlias")
	require.False(t, ok)
}

func TestStructuralHash_SameShapeDifferentAlias(t *testing.T) {
	r := New()
	original, err := Register[point](r, "Point")
	require.NoError(t, err)

	// A structurally identical struct registered under a different Go
	// type and different alias must still fold to the same structural
	// hash, since StructuralHash never depends on alias or type name.
	// This is what lets codec.Parse tolerate a renamed type: it compares
	// a payload's structural hash directly against its own target type's
	// StructuralHash, with no registry-wide search needed.
	renamed, err := Register[renamedPoint](r, "RenamedPoint")
	require.NoError(t, err)
	require.Equal(t, original.StructuralHash, renamed.StructuralHash)
	require.NotEqual(t, original.AliasHash, renamed.AliasHash)
	require.NotEqual(t, original.Fingerprint, renamed.Fingerprint)
}

func TestForEach_VisitsInDenseOrder(t *testing.T) {
	r := New()
	_, err := Register[point](r, "Point")
	require.NoError(t, err)
	_, err = Register[string](r, "Text")
	require.NoError(t, err)

	var indices []int
	r.ForEach(func(e *Entry) bool {
		indices = append(indices, e.Index)

		return true
	})

	require.Equal(t, []int{0, 1, 2}, indices)
}

func TestForEach_StopsEarly(t *testing.T) {
	r := New()
	_, err := Register[point](r, "Point")
	require.NoError(t, err)
	_, err = Register[string](r, "Text")
	require.NoError(t, err)

	count := 0
	r.ForEach(func(e *Entry) bool {
		count++

		return e.Index < 1
	})

	require.Equal(t, 2, count)
}

func TestReducedDigest_SumsFingerprints(t *testing.T) {
	r := New()
	null, _ := r.FindByAlias("Null")
	p, err := Register[point](r, "Point")
	require.NoError(t, err)

	require.Equal(t, null.Fingerprint+p.Fingerprint, r.ReducedDigest())
}

func TestPerfectSet_ContainsEveryFingerprint(t *testing.T) {
	r := New()
	p, err := Register[point](r, "Point")
	require.NoError(t, err)

	set := r.PerfectSet()
	require.Contains(t, set, p.Fingerprint)
	require.Len(t, set, r.Count())
}

func TestFindByType(t *testing.T) {
	r := New()
	entry, err := Register[point](r, "Point")
	require.NoError(t, err)

	found, ok := r.FindByType(entry.Descriptor.GoType())
	require.True(t, ok)
	require.Equal(t, entry, found)
}
