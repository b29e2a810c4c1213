package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"

	"github.com/paw-chain/anchor/x/anchor/types"
)

// Price returns the canonical 6-decimal USD price of symbol.
func (k Keeper) Price(ctx context.Context, symbol string) (math.Uint, error) {
	config, err := k.registry.ConfigBySymbol(symbol)
	if err != nil {
		return math.ZeroUint(), err
	}
	return k.priceInternal(ctx, config)
}

// PriceBySymbolHash is Price keyed by the symbol hash.
func (k Keeper) PriceBySymbolHash(ctx context.Context, symbolHash types.SymbolHash) (math.Uint, error) {
	config, err := k.registry.ConfigBySymbolHash(symbolHash)
	if err != nil {
		return math.ZeroUint(), err
	}
	return k.priceInternal(ctx, config)
}

// GetUnderlyingPrice returns the price of one smallest unit of underlying,
// scaled to 36 minus the underlying's decimals.
func (k Keeper) GetUnderlyingPrice(ctx context.Context, underlying string) (math.Uint, error) {
	config, err := k.registry.ConfigByUnderlying(underlying)
	if err != nil {
		return math.ZeroUint(), err
	}
	return k.underlyingPrice(ctx, config)
}

// GetAssetUnderlyingPrice is GetUnderlyingPrice keyed by the canonical asset handle.
func (k Keeper) GetAssetUnderlyingPrice(ctx context.Context, asset string) (math.Uint, error) {
	config, err := k.registry.ConfigByAsset(asset)
	if err != nil {
		return math.ZeroUint(), err
	}
	return k.underlyingPrice(ctx, config)
}

func (k Keeper) underlyingPrice(ctx context.Context, config types.AssetConfig) (math.Uint, error) {
	price, err := k.priceInternal(ctx, config)
	if err != nil {
		return math.ZeroUint(), err
	}
	return types.MulDiv(types.UnderlyingPriceScale, price, config.BaseUnit)
}

func (k Keeper) priceInternal(ctx context.Context, config types.AssetConfig) (math.Uint, error) {
	switch config.PriceSource {
	case types.PriceSourceReporter:
		state, err := k.GetPriceState(ctx, config.SymbolHash)
		if err != nil {
			return math.ZeroUint(), err
		}
		return state.Price, nil

	case types.PriceSourceFixedUSD:
		return config.FixedPrice, nil

	case types.PriceSourceFixedETH:
		// An ETH that is not a reporter asset has no stored price and reads as 0.
		// TODO: the ETH sentinel price of 1 passes this check; decide whether
		// FixedETH assets should wait for a first accepted ETH report.
		ethState, found, err := k.getStoredPriceState(ctx, types.ETHSymbolHash)
		if err != nil {
			return math.ZeroUint(), err
		}
		if !found || ethState.Price.IsZero() {
			return math.ZeroUint(), types.ErrPriceNotReady
		}
		return types.MulDiv(config.FixedPrice, ethState.Price, types.EthBaseUnit)

	default:
		return math.ZeroUint(), errorsmod.Wrapf(types.ErrInvalidPriceSource, "unknown price source %d", uint8(config.PriceSource))
	}
}
