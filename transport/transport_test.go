package transport_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kagelund/serialcore/registry"
	"github.com/kagelund/serialcore/transport"
)

func TestCodecs_RoundTrip(t *testing.T) {
	payload := []byte("the quick brown fox jumps over the lazy dog, repeated. " +
		"the quick brown fox jumps over the lazy dog, repeated.")

	for _, algo := range []transport.Algorithm{transport.None, transport.Zstd, transport.S2, transport.LZ4} {
		t.Run(algo.String(), func(t *testing.T) {
			c, err := transport.CreateCodec(algo)
			require.NoError(t, err)

			compressed, err := c.Compress(payload)
			require.NoError(t, err)

			out, err := c.Decompress(compressed)
			require.NoError(t, err)
			require.Equal(t, payload, out)
		})
	}
}

func TestCreateCodec_Unsupported(t *testing.T) {
	_, err := transport.CreateCodec(transport.Algorithm(99))
	require.Error(t, err)
}

func TestCodecs_EmptyInput(t *testing.T) {
	for _, algo := range []transport.Algorithm{transport.None, transport.Zstd, transport.S2, transport.LZ4} {
		c, err := transport.CreateCodec(algo)
		require.NoError(t, err)

		compressed, err := c.Compress(nil)
		require.NoError(t, err)

		out, err := c.Decompress(compressed)
		require.NoError(t, err)
		require.Empty(t, out)
	}
}

type packedWidget struct {
	ID   int32
	Name string
	Tags []string
}

func withFreshRegistry(t *testing.T) {
	t.Helper()
	r := registry.New()
	_, err := registry.Register[packedWidget](r, "PackedWidget")
	require.NoError(t, err)

	prev := registry.Default
	registry.Default = r
	t.Cleanup(func() { registry.Default = prev })
}

func TestPackUnpack_RoundTrip(t *testing.T) {
	withFreshRegistry(t)

	in := packedWidget{ID: 3, Name: "bolt", Tags: []string{"a", "b", "c", "a", "b", "c"}}

	for _, algo := range []transport.Algorithm{transport.None, transport.Zstd, transport.S2, transport.LZ4} {
		data, err := transport.Pack(in, algo)
		require.NoError(t, err)

		out, err := transport.Unpack[packedWidget](data)
		require.NoError(t, err)
		require.Equal(t, in, out)
	}
}

func TestPack_FingerprintStaysUncompressed(t *testing.T) {
	withFreshRegistry(t)

	in := packedWidget{ID: 3, Name: "bolt"}

	plain, err := transport.Pack(in, transport.None)
	require.NoError(t, err)
	compressed, err := transport.Pack(in, transport.Zstd)
	require.NoError(t, err)

	require.Equal(t, plain[:8], compressed[:8])
}

func TestUnpack_BufferOverflow(t *testing.T) {
	withFreshRegistry(t)

	_, err := transport.Unpack[packedWidget]([]byte{1, 2, 3})
	require.Error(t, err)
}
