package types

import (
	errorsmod "cosmossdk.io/errors"
)

// GenesisState is the complete construction input and exported state of the
// anchor module.
type GenesisState struct {
	Params      Params              `json:"params"`
	Configs     []AssetConfig       `json:"configs"`
	PriceStates []GenesisPriceState `json:"price_states"`
}

// GenesisPriceState pairs a price state with its asset.
type GenesisPriceState struct {
	SymbolHash SymbolHash `json:"symbol_hash"`
	State      PriceState `json:"state"`
}

// DefaultGenesis returns the default genesis state for the anchor module.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:      DefaultParams(),
		Configs:     []AssetConfig{},
		PriceStates: []GenesisPriceState{},
	}
}

// Validate ensures the genesis state is well-formed.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}

	registry, err := NewConfigRegistry(gs.Configs)
	if err != nil {
		return err
	}

	seen := make(map[SymbolHash]struct{}, len(gs.PriceStates))
	for _, ps := range gs.PriceStates {
		if _, dup := seen[ps.SymbolHash]; dup {
			return errorsmod.Wrapf(ErrInvalidGenesis, "duplicate price state for %s", ps.SymbolHash)
		}
		seen[ps.SymbolHash] = struct{}{}

		config, err := registry.ConfigBySymbolHash(ps.SymbolHash)
		if err != nil {
			return errorsmod.Wrapf(ErrInvalidGenesis, "price state for unknown asset %s", ps.SymbolHash)
		}
		if !config.IsReporter() {
			return errorsmod.Wrapf(ErrInvalidGenesis, "price state for %s source asset %s", config.PriceSource, ps.SymbolHash)
		}
		if err := ps.State.Validate(); err != nil {
			return errorsmod.Wrapf(ErrInvalidGenesis, "price state for %s: %s", ps.SymbolHash, err)
		}
	}

	return nil
}
