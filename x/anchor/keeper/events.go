package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/anchor/x/anchor/types"
)

func (k Keeper) emitPriceUpdated(ctx context.Context, symbolHash types.SymbolHash, price math.Uint) {
	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypePriceUpdated,
			sdk.NewAttribute(types.AttributeKeySymbolHash, symbolHash.String()),
			sdk.NewAttribute(types.AttributeKeyPrice, price.String()),
		),
	)
}

func (k Keeper) emitPriceGuarded(ctx context.Context, symbolHash types.SymbolHash, reportedPrice, anchorPrice math.Uint) {
	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypePriceGuarded,
			sdk.NewAttribute(types.AttributeKeySymbolHash, symbolHash.String()),
			sdk.NewAttribute(types.AttributeKeyReportedPrice, reportedPrice.String()),
			sdk.NewAttribute(types.AttributeKeyAnchorPrice, anchorPrice.String()),
		),
	)
}

func (k Keeper) emitFailoverActivated(ctx context.Context, symbolHash types.SymbolHash, actor string) {
	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeFailoverActivated,
			sdk.NewAttribute(types.AttributeKeySymbolHash, symbolHash.String()),
			sdk.NewAttribute(types.AttributeKeyActor, actor),
		),
	)
}

func (k Keeper) emitFailoverDeactivated(ctx context.Context, symbolHash types.SymbolHash, actor string) {
	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeFailoverDeactivated,
			sdk.NewAttribute(types.AttributeKeySymbolHash, symbolHash.String()),
			sdk.NewAttribute(types.AttributeKeyActor, actor),
		),
	)
}
