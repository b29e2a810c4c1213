package types

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"
)

const (
	testReporter   = "cosmos1reporter"
	testMarket     = "uniswap/usdc-weth"
	testAsset      = "cosmos1ceth"
	testUnderlying = "cosmos1weth"
)

func reporterConfig(symbol string) AssetConfig {
	return AssetConfig{
		SymbolHash:         HashSymbol(symbol),
		Asset:              testAsset + symbol,
		Underlying:         testUnderlying + symbol,
		BaseUnit:           PowTen(18),
		PriceSource:        PriceSourceReporter,
		FixedPrice:         math.ZeroUint(),
		Market:             testMarket + symbol,
		Reporter:           testReporter + symbol,
		ReporterMultiplier: PowTen(16),
	}
}

func fixedConfig(symbol string, source PriceSource) AssetConfig {
	return AssetConfig{
		SymbolHash:         HashSymbol(symbol),
		Asset:              testAsset + symbol,
		Underlying:         testUnderlying + symbol,
		BaseUnit:           PowTen(6),
		PriceSource:        source,
		FixedPrice:         math.NewUint(1_000_000),
		ReporterMultiplier: math.ZeroUint(),
	}
}

func TestAssetConfigValidate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(c *AssetConfig)
		base        AssetConfig
		expectedErr error
	}{
		{"valid reporter", func(c *AssetConfig) {}, reporterConfig("ETH"), nil},
		{"valid fixed usd", func(c *AssetConfig) {}, fixedConfig("USDC", PriceSourceFixedUSD), nil},
		{"valid fixed eth", func(c *AssetConfig) {}, fixedConfig("SAI", PriceSourceFixedETH), nil},
		{"zero base unit", func(c *AssetConfig) { c.BaseUnit = math.ZeroUint() }, reporterConfig("ETH"), ErrBaseUnitZero},
		{"nil base unit", func(c *AssetConfig) { c.BaseUnit = math.Uint{} }, fixedConfig("USDC", PriceSourceFixedUSD), ErrBaseUnitZero},
		{"reporter without market", func(c *AssetConfig) { c.Market = "" }, reporterConfig("ETH"), ErrAnchorRequired},
		{"reporter without reporter", func(c *AssetConfig) { c.Reporter = " " }, reporterConfig("ETH"), ErrReporterRequired},
		{"fixed with market", func(c *AssetConfig) { c.Market = testMarket }, fixedConfig("USDC", PriceSourceFixedUSD), ErrAnchorNotAllowed},
		{"fixed with reporter", func(c *AssetConfig) { c.Reporter = testReporter }, fixedConfig("SAI", PriceSourceFixedETH), ErrReporterNotAllowed},
		{"unknown source", func(c *AssetConfig) { c.PriceSource = PriceSource(9) }, fixedConfig("USDC", PriceSourceFixedUSD), ErrInvalidPriceSource},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := tt.base
			tt.mutate(&config)
			err := config.Validate()
			if tt.expectedErr != nil {
				require.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestNewConfigRegistryAbortsOnFirstViolation(t *testing.T) {
	bad := reporterConfig("BTC")
	bad.Market = ""
	worse := fixedConfig("USDC", PriceSourceFixedUSD)
	worse.BaseUnit = math.ZeroUint()

	registry, err := NewConfigRegistry([]AssetConfig{reporterConfig("ETH"), bad, worse})
	require.ErrorIs(t, err, ErrAnchorRequired)
	require.True(t, IsConfigError(err))
	require.Zero(t, registry.Len())
}

func TestConfigRegistryLookups(t *testing.T) {
	eth := reporterConfig("ETH")
	usdc := fixedConfig("USDC", PriceSourceFixedUSD)
	registry, err := NewConfigRegistry([]AssetConfig{eth, usdc})
	require.NoError(t, err)
	require.Equal(t, 2, registry.Len())

	got, err := registry.ConfigBySymbol("ETH")
	require.NoError(t, err)
	require.Equal(t, eth.SymbolHash, got.SymbolHash)

	got, err = registry.ConfigBySymbolHash(HashSymbol("USDC"))
	require.NoError(t, err)
	require.Equal(t, usdc.Asset, got.Asset)

	got, err = registry.ConfigByAsset(eth.Asset)
	require.NoError(t, err)
	require.Equal(t, eth.SymbolHash, got.SymbolHash)

	got, err = registry.ConfigByUnderlying(usdc.Underlying)
	require.NoError(t, err)
	require.Equal(t, usdc.SymbolHash, got.SymbolHash)

	got, err = registry.ConfigByReporter(eth.Reporter)
	require.NoError(t, err)
	require.Equal(t, eth.SymbolHash, got.SymbolHash)

	got, err = registry.ConfigAt(1)
	require.NoError(t, err)
	require.Equal(t, usdc.SymbolHash, got.SymbolHash)
}

func TestConfigRegistryMisses(t *testing.T) {
	registry, err := NewConfigRegistry([]AssetConfig{reporterConfig("ETH"), fixedConfig("USDC", PriceSourceFixedUSD)})
	require.NoError(t, err)

	_, err = registry.ConfigBySymbol("DOGE")
	require.ErrorIs(t, err, ErrTokenConfigNotFound)
	_, err = registry.ConfigBySymbolHash(SymbolHash{})
	require.ErrorIs(t, err, ErrTokenConfigNotFound)
	_, err = registry.ConfigByAsset("cosmos1unknown")
	require.ErrorIs(t, err, ErrTokenConfigNotFound)
	_, err = registry.ConfigByUnderlying("")
	require.ErrorIs(t, err, ErrTokenConfigNotFound)
	_, err = registry.ConfigByReporter("")
	require.ErrorIs(t, err, ErrTokenConfigNotFound)
	_, err = registry.ConfigByReporter("cosmos1stranger")
	require.ErrorIs(t, err, ErrTokenConfigNotFound)
	_, err = registry.ConfigAt(2)
	require.ErrorIs(t, err, ErrTokenConfigNotFound)
	_, err = registry.ConfigAt(-1)
	require.ErrorIs(t, err, ErrTokenConfigNotFound)
}

func TestConfigRegistryFirstEntryWins(t *testing.T) {
	first := reporterConfig("ETH")
	second := reporterConfig("ETH")
	second.Asset = "cosmos1other"

	registry, err := NewConfigRegistry([]AssetConfig{first, second})
	require.NoError(t, err)

	got, err := registry.ConfigBySymbol("ETH")
	require.NoError(t, err)
	require.Equal(t, first.Asset, got.Asset)

	got, err = registry.ConfigByAsset("cosmos1other")
	require.NoError(t, err)
	require.Equal(t, second.Asset, got.Asset)
}

func TestConfigRegistryIsImmutable(t *testing.T) {
	configs := []AssetConfig{reporterConfig("ETH")}
	registry, err := NewConfigRegistry(configs)
	require.NoError(t, err)

	configs[0].Reporter = "cosmos1attacker"
	listed := registry.Configs()
	listed[0].Reporter = "cosmos1attacker"

	_, err = registry.ConfigByReporter("cosmos1attacker")
	require.ErrorIs(t, err, ErrTokenConfigNotFound)

	got, err := registry.ConfigBySymbol("ETH")
	require.NoError(t, err)
	require.Equal(t, testReporter+"ETH", got.Reporter)
}

func TestConfigRegistryNormalizesNilAmounts(t *testing.T) {
	config := fixedConfig("USDC", PriceSourceFixedUSD)
	config.ReporterMultiplier = math.Uint{}

	registry, err := NewConfigRegistry([]AssetConfig{config})
	require.NoError(t, err)

	got, err := registry.ConfigBySymbol("USDC")
	require.NoError(t, err)
	require.False(t, got.ReporterMultiplier.IsNil())
	require.True(t, got.ReporterMultiplier.IsZero())
}

func TestParsePriceSource(t *testing.T) {
	for _, source := range []PriceSource{PriceSourceFixedETH, PriceSourceFixedUSD, PriceSourceReporter} {
		parsed, err := ParsePriceSource(source.String())
		require.NoError(t, err)
		require.Equal(t, source, parsed)
	}

	parsed, err := ParsePriceSource(" Reporter ")
	require.NoError(t, err)
	require.Equal(t, PriceSourceReporter, parsed)

	_, err = ParsePriceSource("oracle")
	require.ErrorIs(t, err, ErrInvalidPriceSource)
}
