package keeper

import (
	"context"

	"github.com/paw-chain/anchor/x/anchor/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the MsgServer interface
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// Validate handles a reporter's round answer
func (ms msgServer) Validate(goCtx context.Context, msg *types.MsgValidate) (*types.MsgValidateResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	valid, err := ms.Keeper.Validate(goCtx, msg.Reporter, msg.CurrentAnswer)
	if err != nil {
		return nil, err
	}
	return &types.MsgValidateResponse{Valid: valid}, nil
}

// ActivateFailover handles the owner switching an asset to its anchor price
func (ms msgServer) ActivateFailover(goCtx context.Context, msg *types.MsgActivateFailover) (*types.MsgActivateFailoverResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	if err := ms.Keeper.ActivateFailover(goCtx, msg.Owner, msg.SymbolHash); err != nil {
		return nil, err
	}
	return &types.MsgActivateFailoverResponse{}, nil
}

// DeactivateFailover handles the owner returning an asset to reporter pricing
func (ms msgServer) DeactivateFailover(goCtx context.Context, msg *types.MsgDeactivateFailover) (*types.MsgDeactivateFailoverResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	if err := ms.Keeper.DeactivateFailover(goCtx, msg.Owner, msg.SymbolHash); err != nil {
		return nil, err
	}
	return &types.MsgDeactivateFailoverResponse{}, nil
}

// PokeFailedOverPrice refreshes the anchor price of a failed-over asset
func (ms msgServer) PokeFailedOverPrice(goCtx context.Context, msg *types.MsgPokeFailedOverPrice) (*types.MsgPokeFailedOverPriceResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	price, err := ms.Keeper.PokeFailedOverPrice(goCtx, msg.SymbolHash)
	if err != nil {
		return nil, err
	}
	return &types.MsgPokeFailedOverPriceResponse{Price: price}, nil
}
