package types

import (
	"context"

	"cosmossdk.io/math"
)

// QueryServer answers read-only questions about canonical prices.
type QueryServer interface {
	Price(context.Context, *QueryPriceRequest) (*QueryPriceResponse, error)
	UnderlyingPrice(context.Context, *QueryUnderlyingPriceRequest) (*QueryUnderlyingPriceResponse, error)
	Bounds(context.Context, *QueryBoundsRequest) (*QueryBoundsResponse, error)
	AnchorPeriod(context.Context, *QueryAnchorPeriodRequest) (*QueryAnchorPeriodResponse, error)
	TokenConfig(context.Context, *QueryTokenConfigRequest) (*QueryTokenConfigResponse, error)
	PriceState(context.Context, *QueryPriceStateRequest) (*QueryPriceStateResponse, error)
}

type QueryPriceRequest struct {
	Symbol string `json:"symbol"`
}

type QueryPriceResponse struct {
	Price math.Uint `json:"price"`
}

type QueryUnderlyingPriceRequest struct {
	Underlying string `json:"underlying"`
}

type QueryUnderlyingPriceResponse struct {
	Price math.Uint `json:"price"`
}

type QueryBoundsRequest struct{}

type QueryBoundsResponse struct {
	UpperBoundAnchorRatio math.Uint `json:"upper_bound_anchor_ratio"`
	LowerBoundAnchorRatio math.Uint `json:"lower_bound_anchor_ratio"`
}

type QueryAnchorPeriodRequest struct{}

type QueryAnchorPeriodResponse struct {
	AnchorPeriod uint32 `json:"anchor_period"`
}

// QueryTokenConfigRequest selects a config by exactly one key.
type QueryTokenConfigRequest struct {
	Symbol     string `json:"symbol,omitempty"`
	Asset      string `json:"asset,omitempty"`
	Underlying string `json:"underlying,omitempty"`
	Reporter   string `json:"reporter,omitempty"`
}

type QueryTokenConfigResponse struct {
	Config AssetConfig `json:"config"`
}

type QueryPriceStateRequest struct {
	SymbolHash SymbolHash `json:"symbol_hash"`
}

type QueryPriceStateResponse struct {
	State PriceState `json:"state"`
}
