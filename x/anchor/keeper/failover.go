package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"

	"github.com/paw-chain/anchor/x/anchor/types"
)

// ActivateFailover makes the anchor price canonical for an asset until
// DeactivateFailover is called. The anchor price is stored immediately.
func (k Keeper) ActivateFailover(ctx context.Context, owner string, symbolHash types.SymbolHash) error {
	if owner != k.owner {
		return errorsmod.Wrapf(types.ErrUnauthorized, "expected %s, got %s", k.owner, owner)
	}

	state, err := k.GetPriceState(ctx, symbolHash)
	if err != nil {
		return err
	}
	if state.FailoverActive {
		return errorsmod.Wrapf(types.ErrFailoverAlreadyActive, "symbol hash %s", symbolHash)
	}

	config, err := k.registry.ConfigBySymbolHash(symbolHash)
	if err != nil {
		return err
	}
	if !config.IsReporter() {
		return errorsmod.Wrapf(types.ErrInvalidPriceSource, "only reporter prices can fail over, %s is %s", symbolHash, config.PriceSource)
	}

	anchorPrice, err := k.CalculateAnchorPriceFromEthPrice(ctx, config)
	if err != nil {
		return err
	}

	state.FailoverActive = true
	if err := k.storeCanonicalPrice(ctx, symbolHash, state, anchorPrice); err != nil {
		return err
	}

	k.emitFailoverActivated(ctx, symbolHash, owner)
	k.metrics.FailoverTransitions.WithLabelValues(symbolHash.String(), "activate").Inc()
	k.metrics.FailoverActive.WithLabelValues(symbolHash.String()).Set(1)
	k.Logger(ctx).Info("failover activated", "symbol_hash", symbolHash.String(), "anchor_price", anchorPrice.String())
	return nil
}

// DeactivateFailover returns an asset to reporter pricing. The canonical
// price is left as is until the next accepted report.
func (k Keeper) DeactivateFailover(ctx context.Context, owner string, symbolHash types.SymbolHash) error {
	if owner != k.owner {
		return errorsmod.Wrapf(types.ErrUnauthorized, "expected %s, got %s", k.owner, owner)
	}

	state, err := k.GetPriceState(ctx, symbolHash)
	if err != nil {
		return err
	}
	if !state.FailoverActive {
		return errorsmod.Wrapf(types.ErrFailoverAlreadyInactive, "symbol hash %s", symbolHash)
	}

	state.FailoverActive = false
	if err := k.setPriceState(ctx, symbolHash, state); err != nil {
		return err
	}

	k.emitFailoverDeactivated(ctx, symbolHash, owner)
	k.metrics.FailoverTransitions.WithLabelValues(symbolHash.String(), "deactivate").Inc()
	k.metrics.FailoverActive.WithLabelValues(symbolHash.String()).Set(0)
	k.Logger(ctx).Info("failover deactivated", "symbol_hash", symbolHash.String())
	return nil
}

// PokeFailedOverPrice recomputes and stores the anchor price of an asset in
// failover. Anyone may call it.
func (k Keeper) PokeFailedOverPrice(ctx context.Context, symbolHash types.SymbolHash) (math.Uint, error) {
	state, err := k.GetPriceState(ctx, symbolHash)
	if err != nil {
		return math.ZeroUint(), err
	}
	if !state.FailoverActive {
		return math.ZeroUint(), errorsmod.Wrapf(types.ErrFailoverNotActive, "symbol hash %s", symbolHash)
	}

	config, err := k.registry.ConfigBySymbolHash(symbolHash)
	if err != nil {
		return math.ZeroUint(), err
	}

	anchorPrice, err := k.CalculateAnchorPriceFromEthPrice(ctx, config)
	if err != nil {
		return math.ZeroUint(), err
	}

	if err := k.storeCanonicalPrice(ctx, symbolHash, state, anchorPrice); err != nil {
		return math.ZeroUint(), err
	}
	k.metrics.PriceUpdates.WithLabelValues(symbolHash.String(), sourceAnchor).Inc()
	return anchorPrice, nil
}
