package keeper

import (
	"context"
	"strings"

	errorsmod "cosmossdk.io/errors"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/paw-chain/anchor/x/anchor/types"
)

type queryServer struct {
	Keeper
}

// NewQueryServerImpl returns an implementation of the QueryServer interface
func NewQueryServerImpl(keeper Keeper) types.QueryServer {
	return &queryServer{Keeper: keeper}
}

var _ types.QueryServer = queryServer{}

// Price returns the canonical price of a symbol
func (qs queryServer) Price(goCtx context.Context, req *types.QueryPriceRequest) (*types.QueryPriceResponse, error) {
	if req == nil {
		return nil, errorsmod.Wrap(sdkerrors.ErrInvalidRequest, "empty request")
	}

	price, err := qs.Keeper.Price(goCtx, req.Symbol)
	if err != nil {
		return nil, err
	}
	return &types.QueryPriceResponse{Price: price}, nil
}

// UnderlyingPrice returns the normalized price of an underlying asset
func (qs queryServer) UnderlyingPrice(goCtx context.Context, req *types.QueryUnderlyingPriceRequest) (*types.QueryUnderlyingPriceResponse, error) {
	if req == nil {
		return nil, errorsmod.Wrap(sdkerrors.ErrInvalidRequest, "empty request")
	}

	price, err := qs.Keeper.GetUnderlyingPrice(goCtx, req.Underlying)
	if err != nil {
		return nil, err
	}
	return &types.QueryUnderlyingPriceResponse{Price: price}, nil
}

// Bounds returns the anchor ratio bounds
func (qs queryServer) Bounds(_ context.Context, _ *types.QueryBoundsRequest) (*types.QueryBoundsResponse, error) {
	return &types.QueryBoundsResponse{
		UpperBoundAnchorRatio: qs.UpperBoundAnchorRatio(),
		LowerBoundAnchorRatio: qs.LowerBoundAnchorRatio(),
	}, nil
}

// AnchorPeriod returns the TWAP window
func (qs queryServer) AnchorPeriod(_ context.Context, _ *types.QueryAnchorPeriodRequest) (*types.QueryAnchorPeriodResponse, error) {
	return &types.QueryAnchorPeriodResponse{AnchorPeriod: qs.Keeper.AnchorPeriod()}, nil
}

// TokenConfig looks up a config by exactly one of its keys
func (qs queryServer) TokenConfig(_ context.Context, req *types.QueryTokenConfigRequest) (*types.QueryTokenConfigResponse, error) {
	if req == nil {
		return nil, errorsmod.Wrap(sdkerrors.ErrInvalidRequest, "empty request")
	}

	symbol := strings.TrimSpace(req.Symbol)
	asset := strings.TrimSpace(req.Asset)
	underlying := strings.TrimSpace(req.Underlying)
	reporter := strings.TrimSpace(req.Reporter)

	keys := 0
	for _, key := range []string{symbol, asset, underlying, reporter} {
		if key != "" {
			keys++
		}
	}
	if keys != 1 {
		return nil, errorsmod.Wrapf(sdkerrors.ErrInvalidRequest, "exactly one lookup key required, got %d", keys)
	}

	var (
		config   types.AssetConfig
		err      error
		registry = qs.Registry()
	)
	switch {
	case symbol != "":
		config, err = registry.ConfigBySymbol(symbol)
	case asset != "":
		config, err = registry.ConfigByAsset(asset)
	case underlying != "":
		config, err = registry.ConfigByUnderlying(underlying)
	default:
		config, err = registry.ConfigByReporter(reporter)
	}
	if err != nil {
		return nil, err
	}
	return &types.QueryTokenConfigResponse{Config: config}, nil
}

// PriceState returns the stored price state of an asset
func (qs queryServer) PriceState(goCtx context.Context, req *types.QueryPriceStateRequest) (*types.QueryPriceStateResponse, error) {
	if req == nil {
		return nil, errorsmod.Wrap(sdkerrors.ErrInvalidRequest, "empty request")
	}

	config, err := qs.Registry().ConfigBySymbolHash(req.SymbolHash)
	if err != nil {
		return nil, err
	}
	if !config.IsReporter() {
		return nil, errorsmod.Wrapf(types.ErrInvalidPriceSource, "%s is %s", req.SymbolHash, config.PriceSource)
	}

	state, err := qs.GetPriceState(goCtx, req.SymbolHash)
	if err != nil {
		return nil, err
	}
	return &types.QueryPriceStateResponse{State: state}, nil
}
