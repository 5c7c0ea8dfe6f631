package bitset_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kagelund/serialcore/bitset"
)

func TestNew_ZeroValue(t *testing.T) {
	b := bitset.New(12)
	require.Equal(t, 12, b.Len())
	require.Len(t, b.Bytes(), 2)

	for i := 0; i < 12; i++ {
		require.False(t, b.Test(i))
	}
}

func TestSetClearTest(t *testing.T) {
	b := bitset.New(10)

	b.Set(0)
	b.Set(9)
	require.True(t, b.Test(0))
	require.True(t, b.Test(9))
	require.False(t, b.Test(1))

	b.Clear(0)
	require.False(t, b.Test(0))
	require.True(t, b.Test(9))
}

func TestFromBytes_RoundTrip(t *testing.T) {
	b := bitset.New(10)
	b.Set(1)
	b.Set(8)

	out, err := bitset.FromBytes(10, b.Bytes())
	require.NoError(t, err)
	require.Equal(t, 10, out.Len())
	require.True(t, out.Test(1))
	require.True(t, out.Test(8))
	require.False(t, out.Test(0))
}

func TestFromBytes_WrongLength(t *testing.T) {
	_, err := bitset.FromBytes(10, make([]byte, 1))
	require.Error(t, err)
}

func TestFromBytes_CopiesData(t *testing.T) {
	src := []byte{0xFF}
	out, err := bitset.FromBytes(8, src)
	require.NoError(t, err)

	src[0] = 0x00
	require.True(t, out.Test(0), "FromBytes must not alias the caller's slice")
}

func TestBitPacking_LSBFirst(t *testing.T) {
	b := bitset.New(8)
	b.Set(0)
	require.Equal(t, byte(0x01), b.Bytes()[0])

	b2 := bitset.New(8)
	b2.Set(7)
	require.Equal(t, byte(0x80), b2.Bytes()[0])
}
