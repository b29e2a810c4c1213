package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/stretchr/testify/require"

	keepertest "github.com/paw-chain/anchor/testutil/keeper"
	"github.com/paw-chain/anchor/x/anchor/keeper"
	"github.com/paw-chain/anchor/x/anchor/types"
)

func TestMsgServerValidate(t *testing.T) {
	k, _, ctx := keepertest.AnchorKeeper(t)
	ms := keeper.NewMsgServerImpl(*k)

	resp, err := ms.Validate(ctx, types.NewMsgValidate(keepertest.ETHReporter, math.NewInt(395_000_000_000)))
	require.NoError(t, err)
	require.True(t, resp.Valid)

	resp, err = ms.Validate(ctx, types.NewMsgValidate(keepertest.ETHReporter, math.NewInt(100_000_000_000)))
	require.NoError(t, err)
	require.False(t, resp.Valid)

	_, err = ms.Validate(ctx, types.NewMsgValidate(keepertest.Stranger, math.NewInt(395_000_000_000)))
	require.ErrorIs(t, err, types.ErrTokenConfigNotFound)

	_, err = ms.Validate(ctx, types.NewMsgValidate("not-an-address", math.NewInt(1)))
	require.ErrorIs(t, err, sdkerrors.ErrInvalidAddress)
}

func TestMsgServerFailoverLifecycle(t *testing.T) {
	k, _, ctx := keepertest.AnchorKeeper(t)
	ms := keeper.NewMsgServerImpl(*k)

	_, err := ms.ActivateFailover(ctx, &types.MsgActivateFailover{Owner: keepertest.Stranger, SymbolHash: types.ETHSymbolHash})
	require.ErrorIs(t, err, types.ErrUnauthorized)

	_, err = ms.ActivateFailover(ctx, &types.MsgActivateFailover{Owner: keepertest.Owner})
	require.ErrorIs(t, err, sdkerrors.ErrInvalidRequest)

	_, err = ms.ActivateFailover(ctx, &types.MsgActivateFailover{Owner: keepertest.Owner, SymbolHash: types.ETHSymbolHash})
	require.NoError(t, err)

	poke, err := ms.PokeFailedOverPrice(ctx, &types.MsgPokeFailedOverPrice{Sender: keepertest.Stranger, SymbolHash: types.ETHSymbolHash})
	require.NoError(t, err)
	require.Equal(t, math.NewUint(keepertest.ETHAnchorPrice), poke.Price)

	_, err = ms.DeactivateFailover(ctx, &types.MsgDeactivateFailover{Owner: keepertest.Owner, SymbolHash: types.ETHSymbolHash})
	require.NoError(t, err)

	_, err = ms.PokeFailedOverPrice(ctx, &types.MsgPokeFailedOverPrice{Sender: keepertest.Stranger, SymbolHash: types.ETHSymbolHash})
	require.ErrorIs(t, err, types.ErrFailoverNotActive)
}
