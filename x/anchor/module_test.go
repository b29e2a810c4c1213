package anchor_test

import (
	"encoding/json"
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/paw-chain/anchor/testutil/keeper"
	"github.com/paw-chain/anchor/x/anchor"
	"github.com/paw-chain/anchor/x/anchor/types"
)

func TestAppModuleBasicGenesis(t *testing.T) {
	basic := anchor.AppModuleBasic{}
	require.Equal(t, types.ModuleName, basic.Name())

	defaultGenesis := basic.DefaultGenesis(nil)
	require.NoError(t, basic.ValidateGenesis(nil, nil, defaultGenesis))

	require.Error(t, basic.ValidateGenesis(nil, nil, json.RawMessage(`{"params":`)))

	bad, err := json.Marshal(types.GenesisState{
		Params:  types.DefaultParams(),
		Configs: []types.AssetConfig{{SymbolHash: types.ETHSymbolHash, BaseUnit: math.ZeroUint()}},
	})
	require.NoError(t, err)
	require.ErrorIs(t, basic.ValidateGenesis(nil, nil, bad), types.ErrBaseUnitZero)
}

func TestAppModuleGenesisRoundTrip(t *testing.T) {
	k, _, ctx := keepertest.AnchorKeeper(t)
	am := anchor.NewAppModule(*k)

	valid, err := k.Validate(ctx, keepertest.ETHReporter, math.NewInt(395_000_000_000))
	require.NoError(t, err)
	require.True(t, valid)

	exported := am.ExportGenesis(ctx, nil)
	require.NoError(t, am.ValidateGenesis(nil, nil, exported))

	k2, _, ctx2 := keepertest.AnchorKeeper(t)
	am2 := anchor.NewAppModule(*k2)
	am2.InitGenesis(ctx2, nil, exported)

	price, err := k2.Price(ctx2, "ETH")
	require.NoError(t, err)
	require.Equal(t, math.NewUint(3_950_000_000), price)

	require.JSONEq(t, string(exported), string(am2.ExportGenesis(ctx2, nil)))
}

func TestAppModuleInitGenesisPanicsOnForeignState(t *testing.T) {
	k, _, ctx := keepertest.AnchorKeeper(t)
	am := anchor.NewAppModule(*k)

	bz, err := json.Marshal(types.GenesisState{
		Params:  keepertest.TestParams(),
		Configs: keepertest.TestConfigs(),
		PriceStates: []types.GenesisPriceState{
			{SymbolHash: types.HashSymbol("DOGE"), State: types.NewPriceState()},
		},
	})
	require.NoError(t, err)

	require.Panics(t, func() { am.InitGenesis(ctx, nil, bz) })
}
