package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashSymbol(t *testing.T) {
	require.Equal(t, "0xaaaebeba3810b1e6b70781f14b2d72c1cb89c0b2b320c43bb67ff79f562f5ff4", HashSymbol("ETH").String())
	require.Equal(t, "0xe98e2830be1a7e4156d656a7505e65d08c67660dc618072422e9c78053c261e9", HashSymbol("BTC").String())
	require.Equal(t, HashSymbol("ETH"), ETHSymbolHash)
	require.NotEqual(t, HashSymbol("ETH"), HashSymbol("eth"))
}

func TestParseSymbolHash(t *testing.T) {
	h := HashSymbol("USDC")

	parsed, err := ParseSymbolHash(h.String())
	require.NoError(t, err)
	require.Equal(t, h, parsed)

	parsed, err = ParseSymbolHash(h.String()[2:])
	require.NoError(t, err)
	require.Equal(t, h, parsed)

	_, err = ParseSymbolHash("0x1234")
	require.ErrorIs(t, err, ErrInvalidSymbolHash)
	_, err = ParseSymbolHash("0xzz")
	require.ErrorIs(t, err, ErrInvalidSymbolHash)

	var decoded SymbolHash
	require.ErrorIs(t, decoded.UnmarshalText([]byte("ETH")), ErrInvalidSymbolHash)
}

func TestSymbolHashText(t *testing.T) {
	h := HashSymbol("BTC")
	text, err := h.MarshalText()
	require.NoError(t, err)

	var decoded SymbolHash
	require.NoError(t, decoded.UnmarshalText(text))
	require.Equal(t, h, decoded)
	require.False(t, decoded.IsZero())
	require.True(t, SymbolHash{}.IsZero())
}
