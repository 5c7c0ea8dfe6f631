package trace_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kagelund/serialcore/codec"
	"github.com/kagelund/serialcore/registry"
	"github.com/kagelund/serialcore/sink"
	"github.com/kagelund/serialcore/trace"
	"github.com/kagelund/serialcore/wire"
)

type widget struct {
	ID   int32
	Name string
}

func TestTrace_KnownFingerprint(t *testing.T) {
	r := registry.New()
	_, err := registry.Register[widget](r, "Widget")
	require.NoError(t, err)

	prev := registry.Default
	registry.Default = r
	defer func() { registry.Default = prev }()

	data, err := codec.Serialize(widget{ID: 1, Name: "bolt"})
	require.NoError(t, err)

	var sb sink.StringBuilder
	trace.Trace(r, data, &sb, wire.GetNativeEndianEngine())

	require.Contains(t, sb.String(), "bolt")
}

func TestTrace_UnknownFingerprint_Silent(t *testing.T) {
	r := registry.New()

	var sb sink.StringBuilder
	require.NotPanics(t, func() {
		trace.Trace(r, []byte{0, 0, 0, 0, 0, 0, 0, 0}, &sb, wire.GetNativeEndianEngine())
	})
	require.Empty(t, sb.String())
}

func TestTrace_ShortBuffer_Silent(t *testing.T) {
	r := registry.New()

	var sb sink.StringBuilder
	require.NotPanics(t, func() {
		trace.Trace(r, []byte{1, 2, 3}, &sb, wire.GetNativeEndianEngine())
	})
	require.Empty(t, sb.String())
}
