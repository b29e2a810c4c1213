package types

import (
	"math/big"
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"
)

func TestNewPriceState(t *testing.T) {
	state := NewPriceState()
	require.Equal(t, "1", state.Price.String())
	require.False(t, state.FailoverActive)
	require.NoError(t, state.Validate())
}

func TestPriceStateEncoding(t *testing.T) {
	for _, state := range []PriceState{
		NewPriceState(),
		{Price: math.NewUint(3950_000000), FailoverActive: true},
		{Price: math.NewUintFromBigInt(new(big.Int).Lsh(big.NewInt(1), 247))},
	} {
		bz, err := state.Marshal()
		require.NoError(t, err)

		var decoded PriceState
		require.NoError(t, decoded.Unmarshal(bz))
		require.True(t, state.Price.Equal(decoded.Price))
		require.Equal(t, state.FailoverActive, decoded.FailoverActive)
	}
}

func TestPriceStateUnmarshalRejectsGarbage(t *testing.T) {
	for _, bz := range [][]byte{nil, {0x00}, {0x07, '1'}, {0x00, 'x'}, {0x01, '-', '1'}} {
		var state PriceState
		require.ErrorIs(t, state.Unmarshal(bz), ErrInvalidPriceState, "%x", bz)
	}
}

func TestPriceStateValidate(t *testing.T) {
	require.ErrorIs(t, PriceState{Price: math.ZeroUint()}.Validate(), ErrInvalidPriceState)
	require.ErrorIs(t, PriceState{}.Validate(), ErrInvalidPriceState)

	tooWide := PriceState{Price: math.NewUintFromBigInt(new(big.Int).Lsh(big.NewInt(1), StoredPriceBits))}
	require.ErrorIs(t, tooWide.Validate(), ErrOverflow)
}
