package keeper

import (
	"context"
	"fmt"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"

	"github.com/paw-chain/anchor/x/anchor/types"
)

// anchorDenominator removes the ETH base unit and the 18-decimal scale from
// an unscaled anchor price.
var anchorDenominator = types.EthBaseUnit.Mul(types.ExpScale)

// FetchAnchorPrice converts the time-weighted price of config's market into a
// 6-decimal USD price. conversionFactor is EthBaseUnit when pricing ETH itself
// and the ETH/USD anchor price otherwise.
func (k Keeper) FetchAnchorPrice(ctx context.Context, config types.AssetConfig, conversionFactor math.Uint) (math.Uint, error) {
	twap, err := k.fetchTwap(ctx, config)
	if err != nil {
		return math.ZeroUint(), err
	}

	unscaled, err := types.MulDiv(twap, conversionFactor, math.OneUint())
	if err != nil {
		return math.ZeroUint(), errorsmod.Wrap(err, "unscaled anchor price")
	}

	anchorPrice, err := types.MulDiv(unscaled, config.BaseUnit, anchorDenominator)
	if err != nil {
		return math.ZeroUint(), errorsmod.Wrap(err, "anchor price")
	}
	return anchorPrice, nil
}

// fetchTwap returns the market's time-weighted price ratio over the anchor
// period, scaled by ExpScale.
func (k Keeper) fetchTwap(ctx context.Context, config types.AssetConfig) (math.Uint, error) {
	if k.anchorPeriod == 0 {
		return math.ZeroUint(), types.ErrInvalidAnchorPeriod
	}

	cumulatives, err := k.marketKeeper.ObserveTickCumulatives(ctx, config.Market, []uint32{k.anchorPeriod, 0})
	if err != nil {
		k.metrics.AnchorFailures.WithLabelValues(config.SymbolHash.String()).Inc()
		return math.ZeroUint(), errorsmod.Wrapf(err, "observe market %s", config.Market)
	}
	if len(cumulatives) != 2 {
		return math.ZeroUint(), fmt.Errorf("market %s returned %d observations, expected 2", config.Market, len(cumulatives))
	}

	tick, err := types.TimeWeightedAverageTick(cumulatives[0], cumulatives[1], k.anchorPeriod)
	if err != nil {
		k.metrics.AnchorFailures.WithLabelValues(config.SymbolHash.String()).Inc()
		return math.ZeroUint(), err
	}
	if config.IsMarketReversed {
		tick = -tick
	}

	sqrtPriceX96, err := types.GetSqrtRatioAtTick(tick)
	if err != nil {
		return math.ZeroUint(), err
	}

	twapX96, err := types.MulDiv(sqrtPriceX96, sqrtPriceX96, types.Q96)
	if err != nil {
		return math.ZeroUint(), err
	}

	// Scale up to 18 decimals, then down from Q96.
	return types.MulDiv(types.ExpScale, twapX96, types.Q96)
}

// CalculateAnchorPriceFromEthPrice returns the USD anchor price of a
// reporter-sourced asset. Non-ETH markets are quoted against ETH, so the ETH
// anchor price is resolved first and used as the conversion factor.
func (k Keeper) CalculateAnchorPriceFromEthPrice(ctx context.Context, config types.AssetConfig) (math.Uint, error) {
	if !config.IsReporter() {
		return math.ZeroUint(), errorsmod.Wrapf(types.ErrInvalidPriceSource, "only reporter prices get posted, %s is %s", config.SymbolHash, config.PriceSource)
	}

	ethConfig, err := k.registry.ConfigBySymbolHash(types.ETHSymbolHash)
	if err != nil {
		return math.ZeroUint(), errorsmod.Wrap(err, "ETH config")
	}
	if !ethConfig.IsReporter() {
		return math.ZeroUint(), errorsmod.Wrapf(types.ErrInvalidPriceSource, "ETH is %s", ethConfig.PriceSource)
	}

	ethPrice, err := k.FetchAnchorPrice(ctx, ethConfig, types.EthBaseUnit)
	if err != nil {
		return math.ZeroUint(), err
	}
	if config.IsETH() {
		return ethPrice, nil
	}

	return k.FetchAnchorPrice(ctx, config, ethPrice)
}
