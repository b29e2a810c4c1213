package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/anchor/x/anchor/types"
)

// Keeper maintains the canonical prices of the anchor module. The config
// registry and bounds are fixed at construction; only per-asset price state
// lives in the store.
type Keeper struct {
	storeKey     storetypes.StoreKey
	marketKeeper types.MarketKeeper

	registry          types.ConfigRegistry
	bounds            types.Bounds
	toleranceMantissa math.Uint
	anchorPeriod      uint32
	owner             string

	metrics *AnchorMetrics
}

// NewKeeper validates params and configs and creates a Keeper. Construction
// is all-or-nothing: any invalid input returns an error and no keeper.
func NewKeeper(
	key storetypes.StoreKey,
	marketKeeper types.MarketKeeper,
	params types.Params,
	configs []types.AssetConfig,
) (*Keeper, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if marketKeeper == nil {
		return nil, fmt.Errorf("market keeper cannot be nil")
	}

	registry, err := types.NewConfigRegistry(configs)
	if err != nil {
		return nil, err
	}

	return &Keeper{
		storeKey:          key,
		marketKeeper:      marketKeeper,
		registry:          registry,
		bounds:            types.NewBounds(params.AnchorToleranceMantissa),
		toleranceMantissa: params.AnchorToleranceMantissa,
		anchorPeriod:      params.AnchorPeriod,
		owner:             params.Owner,
		metrics:           NewAnchorMetrics(),
	}, nil
}

// getStore returns the KVStore for the anchor module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.KVStore(k.storeKey)
}

// Logger returns a module-specific logger
func (k Keeper) Logger(ctx context.Context) log.Logger {
	return sdk.UnwrapSDKContext(ctx).Logger().With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

// Registry returns the immutable config registry.
func (k Keeper) Registry() types.ConfigRegistry {
	return k.registry
}

// Params returns the construction parameters.
func (k Keeper) Params() types.Params {
	return types.Params{
		AnchorToleranceMantissa: k.toleranceMantissa,
		AnchorPeriod:            k.anchorPeriod,
		Owner:                   k.owner,
	}
}

// GetAuthority returns the owner allowed to toggle failover.
func (k Keeper) GetAuthority() string {
	return k.owner
}

// UpperBoundAnchorRatio returns the largest accepted anchor/reported ratio.
func (k Keeper) UpperBoundAnchorRatio() math.Uint {
	return k.bounds.Upper
}

// LowerBoundAnchorRatio returns the smallest accepted anchor/reported ratio.
func (k Keeper) LowerBoundAnchorRatio() math.Uint {
	return k.bounds.Lower
}

// AnchorPeriod returns the TWAP window in seconds.
func (k Keeper) AnchorPeriod() uint32 {
	return k.anchorPeriod
}
