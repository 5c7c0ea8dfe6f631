package serialcore_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kagelund/serialcore"
	"github.com/kagelund/serialcore/registry"
	"github.com/kagelund/serialcore/sink"
)

type account struct {
	ID      int64
	Owner   string
	Balance float64
}

func withFreshDefault(t *testing.T) {
	t.Helper()
	prev := registry.Default
	registry.Default = registry.New()
	t.Cleanup(func() { registry.Default = prev })
}

func TestRegisterSerializeParse(t *testing.T) {
	withFreshDefault(t)
	serialcore.Register[account]("Account")

	in := account{ID: 1, Owner: "ada", Balance: 12.5}
	data, err := serialcore.Serialize(in)
	require.NoError(t, err)

	out, err := serialcore.Parse[account](data)
	require.NoError(t, err)
	require.Equal(t, in, out)
}

type fixedRecord struct {
	A int32
	B float64
}

func TestSizeAndStaticSize(t *testing.T) {
	withFreshDefault(t)
	serialcore.Register[account]("Account")
	serialcore.Register[fixedRecord]("FixedRecord")

	in := account{ID: 1, Owner: "a", Balance: 1}
	sz, err := serialcore.Size(in)
	require.NoError(t, err)
	require.Positive(t, sz)

	_, isFixed, err := serialcore.StaticSize[account]()
	require.NoError(t, err)
	require.False(t, isFixed, "a string field makes account's size dependent on its contents")

	staticSz, fixed, err := serialcore.StaticSize[fixedRecord]()
	require.NoError(t, err)
	require.True(t, fixed)
	require.Equal(t, 8+4+8, staticSz)
}

func TestHash_ReadsFingerprintPrefix(t *testing.T) {
	withFreshDefault(t)
	serialcore.Register[account]("Account")

	in := account{ID: 2}
	data, err := serialcore.Serialize(in)
	require.NoError(t, err)

	fp, err := serialcore.Hash(data)
	require.NoError(t, err)

	ident, ok := serialcore.Ident[account]()
	require.True(t, ok)
	require.Equal(t, ident, fp)
}

func TestIdentByAliasAndAlias(t *testing.T) {
	withFreshDefault(t)
	serialcore.Register[account]("Account")

	fp, ok := serialcore.IdentByAlias("Account")
	require.True(t, ok)

	alias, ok := serialcore.Alias(fp)
	require.True(t, ok)
	require.Equal(t, "Account", alias)
}

func TestPrint(t *testing.T) {
	withFreshDefault(t)
	serialcore.Register[account]("Account")

	var sb sink.StringBuilder
	err := serialcore.Print(account{ID: 9, Owner: "bolt", Balance: 4}, &sb)
	require.NoError(t, err)
	require.Contains(t, sb.String(), "bolt")
}

func TestTrace_RendersKnownPayload(t *testing.T) {
	withFreshDefault(t)
	serialcore.Register[account]("Account")

	data, err := serialcore.Serialize(account{ID: 3, Owner: "grace", Balance: 8})
	require.NoError(t, err)

	var sb sink.StringBuilder
	serialcore.Trace(data, &sb)
	require.Contains(t, sb.String(), "grace")
}

func TestSerialVersionAndCheckVersion(t *testing.T) {
	withFreshDefault(t)
	serialcore.Register[account]("Account")

	v := serialcore.SerialVersion()
	require.True(t, serialcore.CheckVersion(v))
	require.False(t, serialcore.CheckVersion(v+1))
}

func TestCheckVersionFor(t *testing.T) {
	withFreshDefault(t)
	serialcore.Register[account]("Account")

	fp, ok := serialcore.Ident[account]()
	require.True(t, ok)
	require.True(t, serialcore.CheckVersionFor[account](fp))
	require.False(t, serialcore.CheckVersionFor[account](fp+1))
}
