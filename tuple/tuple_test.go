package tuple_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kagelund/serialcore/tuple"
)

func TestPair_ImplementsValue(t *testing.T) {
	var v tuple.Value = tuple.Pair[int32, string]{First: 1, Second: "x"}
	require.NotNil(t, v)
}

func TestTriple_ImplementsValue(t *testing.T) {
	var v tuple.Value = tuple.Triple[int32, string, bool]{First: 1, Second: "x", Third: true}
	require.NotNil(t, v)
}

func TestQuad_ImplementsValue(t *testing.T) {
	var v tuple.Value = tuple.Quad[int32, string, bool, float64]{First: 1, Second: "x", Third: true, Fourth: 2.5}
	require.NotNil(t, v)
}

func TestPair_FieldAccess(t *testing.T) {
	p := tuple.Pair[int32, string]{First: 42, Second: "hello"}
	require.Equal(t, int32(42), p.First)
	require.Equal(t, "hello", p.Second)
}
