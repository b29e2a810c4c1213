package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	storetypes "cosmossdk.io/store/types"

	"github.com/paw-chain/anchor/x/anchor/types"
)

// GetPriceState returns the stored price state of an asset, or the initial
// state (price 1, failover inactive) if none was written yet.
func (k Keeper) GetPriceState(ctx context.Context, symbolHash types.SymbolHash) (types.PriceState, error) {
	state, found, err := k.getStoredPriceState(ctx, symbolHash)
	if err != nil {
		return types.PriceState{}, err
	}
	if !found {
		return types.NewPriceState(), nil
	}
	return state, nil
}

// getStoredPriceState reads the raw store entry. Genesis seeds one for every
// reporter asset, so a missing entry means symbolHash is not one.
func (k Keeper) getStoredPriceState(ctx context.Context, symbolHash types.SymbolHash) (types.PriceState, bool, error) {
	store := k.getStore(ctx)
	bz := store.Get(types.PriceStateKey(symbolHash))
	if bz == nil {
		return types.PriceState{}, false, nil
	}

	var state types.PriceState
	if err := state.Unmarshal(bz); err != nil {
		return types.PriceState{}, false, errorsmod.Wrapf(err, "corrupted price state for %s", symbolHash)
	}
	return state, true, nil
}

// setPriceState writes a price state. The price must already fit the
// canonical storage width.
func (k Keeper) setPriceState(ctx context.Context, symbolHash types.SymbolHash, state types.PriceState) error {
	if _, err := types.ToStoredPrice(state.Price); err != nil {
		return err
	}

	bz, err := state.Marshal()
	if err != nil {
		return errorsmod.Wrap(err, "failed to marshal price state")
	}

	store := k.getStore(ctx)
	store.Set(types.PriceStateKey(symbolHash), bz)
	return nil
}

// IteratePriceStates iterates over all stored price states
func (k Keeper) IteratePriceStates(ctx context.Context, cb func(symbolHash types.SymbolHash, state types.PriceState) (stop bool)) error {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.PriceStateKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		key := iterator.Key()[len(types.PriceStateKeyPrefix):]
		if len(key) != len(types.SymbolHash{}) {
			return errorsmod.Wrapf(types.ErrInvalidPriceState, "key length %d", len(key))
		}

		var symbolHash types.SymbolHash
		copy(symbolHash[:], key)

		var state types.PriceState
		if err := state.Unmarshal(iterator.Value()); err != nil {
			return errorsmod.Wrapf(err, "corrupted price state for %s", symbolHash)
		}
		if cb(symbolHash, state) {
			break
		}
	}
	return nil
}

// GetAllPriceStates returns every stored price state
func (k Keeper) GetAllPriceStates(ctx context.Context) ([]types.GenesisPriceState, error) {
	var states []types.GenesisPriceState
	err := k.IteratePriceStates(ctx, func(symbolHash types.SymbolHash, state types.PriceState) bool {
		states = append(states, types.GenesisPriceState{SymbolHash: symbolHash, State: state})
		return false
	})
	return states, err
}
