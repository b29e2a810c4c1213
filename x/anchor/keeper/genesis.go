package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"

	"github.com/paw-chain/anchor/x/anchor/types"
)

// InitGenesis seeds the price state of every reporter asset with the initial
// sentinel price, then applies any exported states.
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	for _, config := range k.registry.Configs() {
		if !config.IsReporter() {
			continue
		}
		if err := k.setPriceState(ctx, config.SymbolHash, types.NewPriceState()); err != nil {
			return err
		}
	}

	for _, ps := range genState.PriceStates {
		config, err := k.registry.ConfigBySymbolHash(ps.SymbolHash)
		if err != nil {
			return errorsmod.Wrapf(types.ErrInvalidGenesis, "price state for unknown asset %s", ps.SymbolHash)
		}
		if !config.IsReporter() {
			return errorsmod.Wrapf(types.ErrInvalidGenesis, "price state for %s source asset %s", config.PriceSource, ps.SymbolHash)
		}
		if err := ps.State.Validate(); err != nil {
			return errorsmod.Wrapf(types.ErrInvalidGenesis, "price state for %s: %s", ps.SymbolHash, err)
		}
		if err := k.setPriceState(ctx, ps.SymbolHash, ps.State); err != nil {
			return err
		}
	}

	k.Logger(ctx).Info("anchor module genesis initialized",
		"assets", k.registry.Len(),
		"price_states", len(genState.PriceStates),
	)
	return nil
}

// ExportGenesis returns the module's exported genesis state.
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	states, err := k.GetAllPriceStates(ctx)
	if err != nil {
		return nil, err
	}
	if states == nil {
		states = []types.GenesisPriceState{}
	}

	return &types.GenesisState{
		Params:      k.Params(),
		Configs:     k.registry.Configs(),
		PriceStates: states,
	}, nil
}
