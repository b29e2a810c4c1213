package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/anchor/x/anchor/types"
)

// RegisterInvariants registers all anchor module invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "price-state", PriceStateInvariant(k))
}

// PriceStateInvariant checks that every stored price state belongs to a
// reporter asset and holds a positive price that fits the storage width.
func PriceStateInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var issues []string

		err := k.IteratePriceStates(ctx, func(symbolHash types.SymbolHash, state types.PriceState) bool {
			config, err := k.registry.ConfigBySymbolHash(symbolHash)
			if err != nil {
				issues = append(issues, fmt.Sprintf("price state for unknown asset %s", symbolHash))
				return false
			}
			if !config.IsReporter() {
				issues = append(issues, fmt.Sprintf("price state for %s source asset %s", config.PriceSource, symbolHash))
			}
			if err := state.Validate(); err != nil {
				issues = append(issues, fmt.Sprintf("asset %s: %s", symbolHash, err))
			}
			return false
		})
		if err != nil {
			issues = append(issues, err.Error())
		}

		var msg string
		if len(issues) > 0 {
			msg = fmt.Sprintf("%d invalid price states:\n", len(issues))
			for _, issue := range issues {
				msg += fmt.Sprintf("  - %s\n", issue)
			}
		}

		return sdk.FormatInvariant(types.ModuleName, "price-state", msg), len(issues) > 0
	}
}
