package keeper

import (
	"testing"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/paw-chain/anchor/x/anchor/keeper"
	"github.com/paw-chain/anchor/x/anchor/types"
)

// Market identifiers and ticks of the test fixtures. The ETH market is quoted
// USDC per ETH reversed; its tick yields an anchor of 3950.860042 USD. The BTC
// market quotes WETH per WBTC; its tick yields 60003.030137 USD.
const (
	ETHMarket = "uniswap/usdc-weth"
	BTCMarket = "uniswap/wbtc-weth"

	ETHMarketTick int64 = 193503
	BTCMarketTick int64 = 257476

	ETHAnchorPrice uint64 = 3950860042
	BTCAnchorPrice uint64 = 60003030137

	TestAnchorPeriod uint32 = 1800
)

// Test identities.
var (
	Owner       = testAddress(0x01)
	ETHReporter = testAddress(0x02)
	BTCReporter = testAddress(0x03)
	Stranger    = testAddress(0x04)

	CETH  = testAddress(0x10)
	WETH  = testAddress(0x11)
	CWBTC = testAddress(0x12)
	WBTC  = testAddress(0x13)
	CUSDC = testAddress(0x14)
	USDC  = testAddress(0x15)
	CSAI  = testAddress(0x16)
	SAI   = testAddress(0x17)
)

// SAIFixedPrice is the fixed ETH price of SAI, scaled by 1e18.
var SAIFixedPrice = math.NewUint(5285551943761727)

func testAddress(b byte) string {
	bz := make([]byte, 20)
	for i := range bz {
		bz[i] = b
	}
	return sdk.AccAddress(bz).String()
}

// TestParams returns params with a 10% tolerance, owned by Owner.
func TestParams() types.Params {
	return types.Params{
		AnchorToleranceMantissa: math.NewUint(100_000_000_000_000_000),
		AnchorPeriod:            TestAnchorPeriod,
		Owner:                   Owner,
	}
}

// TestConfigs returns ETH and BTC reporter assets, USDC at a fixed USD price
// and SAI at a fixed ETH price.
func TestConfigs() []types.AssetConfig {
	return []types.AssetConfig{
		{
			SymbolHash:         types.HashSymbol("ETH"),
			Asset:              CETH,
			Underlying:         WETH,
			BaseUnit:           types.PowTen(18),
			PriceSource:        types.PriceSourceReporter,
			FixedPrice:         math.ZeroUint(),
			Market:             ETHMarket,
			Reporter:           ETHReporter,
			ReporterMultiplier: types.PowTen(16),
			IsMarketReversed:   true,
		},
		{
			SymbolHash:         types.HashSymbol("BTC"),
			Asset:              CWBTC,
			Underlying:         WBTC,
			BaseUnit:           types.PowTen(8),
			PriceSource:        types.PriceSourceReporter,
			FixedPrice:         math.ZeroUint(),
			Market:             BTCMarket,
			Reporter:           BTCReporter,
			ReporterMultiplier: types.PowTen(6),
		},
		{
			SymbolHash:         types.HashSymbol("USDC"),
			Asset:              CUSDC,
			Underlying:         USDC,
			BaseUnit:           types.PowTen(6),
			PriceSource:        types.PriceSourceFixedUSD,
			FixedPrice:         math.NewUint(1_000_000),
			ReporterMultiplier: math.ZeroUint(),
		},
		{
			SymbolHash:         types.HashSymbol("SAI"),
			Asset:              CSAI,
			Underlying:         SAI,
			BaseUnit:           types.PowTen(18),
			PriceSource:        types.PriceSourceFixedETH,
			FixedPrice:         SAIFixedPrice,
			ReporterMultiplier: math.ZeroUint(),
		},
	}
}

// NewTestMarket returns a market keeper serving the fixture ticks.
func NewTestMarket() *MockMarketKeeper {
	market := NewMockMarketKeeper()
	market.SetAverageTick(ETHMarket, ETHMarketTick, TestAnchorPeriod)
	market.SetAverageTick(BTCMarket, BTCMarketTick, TestAnchorPeriod)
	return market
}

// AnchorKeeper creates a test keeper over an in-memory store with the
// fixture params, configs and market, with genesis already applied.
func AnchorKeeper(t testing.TB) (*keeper.Keeper, *MockMarketKeeper, sdk.Context) {
	return AnchorKeeperWith(t, TestParams(), TestConfigs())
}

// AnchorKeeperWith is AnchorKeeper with custom params and configs.
func AnchorKeeperWith(t testing.TB, params types.Params, configs []types.AssetConfig) (*keeper.Keeper, *MockMarketKeeper, sdk.Context) {
	storeKey, ctx := AnchorStore(t)

	market := NewTestMarket()
	k, err := keeper.NewKeeper(storeKey, market, params, configs)
	require.NoError(t, err)
	require.NoError(t, k.InitGenesis(ctx, types.GenesisState{Params: params, Configs: configs}))

	return k, market, ctx
}

// AnchorStore mounts an empty anchor store in a fresh in-memory multistore.
func AnchorStore(t testing.TB) (storetypes.StoreKey, sdk.Context) {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	return storeKey, sdk.NewContext(stateStore, cmtproto.Header{}, false, log.NewNopLogger())
}
