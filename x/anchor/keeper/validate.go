package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"

	"github.com/paw-chain/anchor/x/anchor/types"
)

// Validate processes a reporter's answer. The caller must be the reporter of
// exactly one configured asset; that lookup is the only authorization.
//
// The answer is scaled to 6-decimal USD and compared with the anchor price.
// Within bounds it becomes the canonical price and Validate returns true.
// Out of bounds the canonical price is left untouched, a guard event is
// emitted and Validate returns false without an error. While failover is
// active the anchor price is stored instead and Validate returns false.
func (k Keeper) Validate(ctx context.Context, reporter string, currentAnswer math.Int) (bool, error) {
	config, err := k.registry.ConfigByReporter(reporter)
	if err != nil {
		return false, err
	}

	if currentAnswer.IsNil() || currentAnswer.IsNegative() {
		return false, errorsmod.Wrapf(types.ErrNegativeValue, "answer %s", currentAnswer)
	}

	reportedPrice, err := types.MulDiv(math.NewUintFromBigInt(currentAnswer.BigInt()), config.ReporterMultiplier, config.BaseUnit)
	if err != nil {
		return false, errorsmod.Wrap(err, "reported price")
	}

	anchorPrice, err := k.CalculateAnchorPriceFromEthPrice(ctx, config)
	if err != nil {
		return false, err
	}

	state, err := k.GetPriceState(ctx, config.SymbolHash)
	if err != nil {
		return false, err
	}

	if state.FailoverActive {
		if err := k.storeCanonicalPrice(ctx, config.SymbolHash, state, anchorPrice); err != nil {
			return false, err
		}
		k.metrics.PriceUpdates.WithLabelValues(config.SymbolHash.String(), sourceAnchor).Inc()
		return false, nil
	}

	within, err := k.isWithinAnchor(reportedPrice, anchorPrice)
	if err != nil {
		return false, err
	}

	if !within {
		k.emitPriceGuarded(ctx, config.SymbolHash, reportedPrice, anchorPrice)
		k.metrics.PriceGuarded.WithLabelValues(config.SymbolHash.String()).Inc()
		k.Logger(ctx).Warn("reported price outside anchor bounds",
			"symbol_hash", config.SymbolHash.String(),
			"reporter", config.Reporter,
			"reported_price", reportedPrice.String(),
			"anchor_price", anchorPrice.String(),
		)
		return false, nil
	}

	if err := k.storeCanonicalPrice(ctx, config.SymbolHash, state, reportedPrice); err != nil {
		return false, err
	}
	k.metrics.PriceUpdates.WithLabelValues(config.SymbolHash.String(), sourceReporter).Inc()
	k.Logger(ctx).Debug("reported price accepted",
		"symbol_hash", config.SymbolHash.String(),
		"price", reportedPrice.String(),
		"anchor_price", anchorPrice.String(),
	)
	return true, nil
}

// isWithinAnchor reports whether anchorPrice/reportedPrice lies within the
// configured bounds. A zero reported price is never within bounds.
func (k Keeper) isWithinAnchor(reportedPrice, anchorPrice math.Uint) (bool, error) {
	if reportedPrice.IsZero() {
		return false, nil
	}

	ratio, err := types.MulDiv(anchorPrice, types.ExpScale, reportedPrice)
	if err != nil {
		return false, errorsmod.Wrap(err, "anchor ratio")
	}
	return k.bounds.Contains(ratio), nil
}

// storeCanonicalPrice narrows price to the storage width, writes it and emits
// PriceUpdated. Nothing is written if the price does not fit.
func (k Keeper) storeCanonicalPrice(ctx context.Context, symbolHash types.SymbolHash, state types.PriceState, price math.Uint) error {
	stored, err := types.ToStoredPrice(price)
	if err != nil {
		return err
	}

	state.Price = stored
	if err := k.setPriceState(ctx, symbolHash, state); err != nil {
		return err
	}

	k.emitPriceUpdated(ctx, symbolHash, stored)
	k.metrics.observePrice(symbolHash, stored)
	return nil
}
