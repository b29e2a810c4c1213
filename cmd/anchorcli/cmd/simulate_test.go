package cmd

import (
	"context"
	"testing"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/paw-chain/anchor/x/anchor/types"
)

func TestSimulation(t *testing.T) {
	deployment, err := LoadDeployment("testdata/deployment.yaml")
	require.NoError(t, err)

	sim, err := NewSimulation(deployment, log.NewNopLogger())
	require.NoError(t, err)

	valid, err := sim.Report("ETH", math.NewInt(395_000_000_000))
	require.NoError(t, err)
	require.True(t, valid)

	valid, err = sim.Report("BTC", math.NewInt(9_000_000_000_000))
	require.NoError(t, err)
	require.False(t, valid)

	_, err = sim.Report("DOGE", math.NewInt(1))
	require.ErrorIs(t, err, types.ErrTokenConfigNotFound)

	prices, err := sim.Prices()
	require.NoError(t, err)
	require.Equal(t, []SymbolPrice{
		{Symbol: "ETH", Price: math.NewUint(3_950_000_000)},
		{Symbol: "BTC", Price: math.OneUint()},
		{Symbol: "USDC", Price: math.NewUint(1_000_000)},
		{Symbol: "SAI", Price: math.NewUint(20_877_930)},
	}, prices)
}

func TestSimulationFailover(t *testing.T) {
	deployment, err := LoadDeployment("testdata/deployment.yaml")
	require.NoError(t, err)

	sim, err := NewSimulation(deployment, log.NewNopLogger())
	require.NoError(t, err)

	require.NoError(t, sim.ActivateFailover("BTC"))
	require.ErrorIs(t, sim.ActivateFailover("USDC"), types.ErrInvalidPriceSource)

	prices, err := sim.Prices()
	require.NoError(t, err)
	require.Equal(t, "BTC", prices[1].Symbol)
	require.True(t, math.NewUint(60_003_030_137).Equal(prices[1].Price))
}

func TestSimulationTokenNamedByHash(t *testing.T) {
	deployment, err := LoadDeployment("testdata/deployment.yaml")
	require.NoError(t, err)

	btcHash := types.HashSymbol("BTC").String()
	deployment.Tokens[1].Symbol = ""
	deployment.Tokens[1].SymbolHash = btcHash

	sim, err := NewSimulation(deployment, log.NewNopLogger())
	require.NoError(t, err)

	valid, err := sim.Report(btcHash, math.NewInt(6_000_000_000_000))
	require.NoError(t, err)
	require.True(t, valid)

	prices, err := sim.Prices()
	require.NoError(t, err)
	require.Equal(t, btcHash, prices[1].Symbol)
	require.True(t, math.NewUint(60_000_000_000).Equal(prices[1].Price))

	require.NoError(t, sim.ActivateFailover(btcHash))
	require.ErrorIs(t, sim.ActivateFailover("BTC"), types.ErrFailoverAlreadyActive)
}

func TestSimulateCmd(t *testing.T) {
	out, err := execute(t, "simulate", "testdata/deployment.yaml",
		"--report", "ETH=395000000000",
		"--report", "ETH=500000000000",
		"--failover", "BTC",
		"--metrics",
	)
	require.NoError(t, err)
	require.Contains(t, out, "failover BTC activated\n")
	require.Contains(t, out, "report ETH=395000000000 valid=true\n")
	require.Contains(t, out, "report ETH=500000000000 valid=false\n")
	require.Contains(t, out, "price ETH 3950000000\n")
	require.Contains(t, out, "price BTC 60003030137\n")
	require.Contains(t, out, "paw_anchor_price_updates_total")
}

func TestSimulateCmdRejectsBadInput(t *testing.T) {
	_, err := execute(t, "simulate", "testdata/deployment.yaml", "--report", "ETH")
	require.ErrorContains(t, err, "expected SYMBOL=ANSWER")

	_, err = execute(t, "simulate", "testdata/deployment.yaml", "--report", "ETH=lots")
	require.ErrorContains(t, err, "invalid answer")

	_, err = execute(t, "simulate", "testdata/invalid.json")
	require.ErrorIs(t, err, types.ErrReporterNotAllowed)
}

func TestStaticMarket(t *testing.T) {
	market := staticMarket{"uniswap/usdc-weth": 193503}

	cumulatives, err := market.ObserveTickCumulatives(context.Background(), "Uniswap/USDC-WETH", []uint32{1800, 0})
	require.NoError(t, err)
	require.Len(t, cumulatives, 2)

	tick, err := types.TimeWeightedAverageTick(cumulatives[0], cumulatives[1], 1800)
	require.NoError(t, err)
	require.Equal(t, int64(193503), tick)

	_, err = market.ObserveTickCumulatives(context.Background(), "uniswap/dai-weth", []uint32{1800, 0})
	require.Error(t, err)
}
