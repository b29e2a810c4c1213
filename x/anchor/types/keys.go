package types

import (
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
)

const (
	// ModuleName defines the module name
	ModuleName = "anchor"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName
)

var (
	// PriceStateKeyPrefix is the prefix for per-asset price state keys
	PriceStateKeyPrefix = []byte{0x01}
)

// PriceStateKey returns the store key of the price state for a symbol hash.
func PriceStateKey(symbolHash SymbolHash) []byte {
	return append(append([]byte{}, PriceStateKeyPrefix...), symbolHash[:]...)
}

// DefaultAuthority returns the governance module address, the default owner
// allowed to switch failover on and off.
func DefaultAuthority() string {
	return authtypes.NewModuleAddress(govtypes.ModuleName).String()
}
