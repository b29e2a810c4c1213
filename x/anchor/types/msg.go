package types

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// MsgServer handles the state-changing operations of the anchor module.
type MsgServer interface {
	Validate(context.Context, *MsgValidate) (*MsgValidateResponse, error)
	ActivateFailover(context.Context, *MsgActivateFailover) (*MsgActivateFailoverResponse, error)
	DeactivateFailover(context.Context, *MsgDeactivateFailover) (*MsgDeactivateFailoverResponse, error)
	PokeFailedOverPrice(context.Context, *MsgPokeFailedOverPrice) (*MsgPokeFailedOverPriceResponse, error)
}

// MsgValidate carries a reporter's round update. Only CurrentAnswer is used;
// the other round fields keep the shape of the upstream reporting protocol.
type MsgValidate struct {
	Reporter        string    `json:"reporter"`
	PreviousRoundId math.Uint `json:"previous_round_id"`
	PreviousAnswer  math.Int  `json:"previous_answer"`
	CurrentRoundId  math.Uint `json:"current_round_id"`
	CurrentAnswer   math.Int  `json:"current_answer"`
}

// MsgValidateResponse reports whether the answer became the canonical price.
type MsgValidateResponse struct {
	Valid bool `json:"valid"`
}

// NewMsgValidate creates a MsgValidate for the current answer of a round.
func NewMsgValidate(reporter string, currentAnswer math.Int) *MsgValidate {
	return &MsgValidate{
		Reporter:        reporter,
		PreviousRoundId: math.ZeroUint(),
		PreviousAnswer:  math.ZeroInt(),
		CurrentRoundId:  math.ZeroUint(),
		CurrentAnswer:   currentAnswer,
	}
}

// ValidateBasic performs stateless validation
func (msg *MsgValidate) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Reporter); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid reporter address: %s", err)
	}
	if msg.CurrentAnswer.IsNil() {
		return errorsmod.Wrap(sdkerrors.ErrInvalidRequest, "current answer cannot be nil")
	}
	return nil
}

// MsgActivateFailover switches an asset to its anchor price.
type MsgActivateFailover struct {
	Owner      string     `json:"owner"`
	SymbolHash SymbolHash `json:"symbol_hash"`
}

// MsgActivateFailoverResponse is the response of ActivateFailover.
type MsgActivateFailoverResponse struct{}

// ValidateBasic performs stateless validation
func (msg *MsgActivateFailover) ValidateBasic() error {
	return validateOwnerAndSymbol(msg.Owner, msg.SymbolHash)
}

// MsgDeactivateFailover returns an asset to reporter pricing.
type MsgDeactivateFailover struct {
	Owner      string     `json:"owner"`
	SymbolHash SymbolHash `json:"symbol_hash"`
}

// MsgDeactivateFailoverResponse is the response of DeactivateFailover.
type MsgDeactivateFailoverResponse struct{}

// ValidateBasic performs stateless validation
func (msg *MsgDeactivateFailover) ValidateBasic() error {
	return validateOwnerAndSymbol(msg.Owner, msg.SymbolHash)
}

// MsgPokeFailedOverPrice refreshes the anchor price of a failed-over asset.
// Anyone may send it.
type MsgPokeFailedOverPrice struct {
	Sender     string     `json:"sender"`
	SymbolHash SymbolHash `json:"symbol_hash"`
}

// MsgPokeFailedOverPriceResponse is the response of PokeFailedOverPrice.
type MsgPokeFailedOverPriceResponse struct {
	Price math.Uint `json:"price"`
}

// ValidateBasic performs stateless validation
func (msg *MsgPokeFailedOverPrice) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid sender address: %s", err)
	}
	if msg.SymbolHash.IsZero() {
		return errorsmod.Wrap(sdkerrors.ErrInvalidRequest, "symbol hash cannot be empty")
	}
	return nil
}

func validateOwnerAndSymbol(owner string, symbolHash SymbolHash) error {
	if _, err := sdk.AccAddressFromBech32(owner); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid owner address: %s", err)
	}
	if symbolHash.IsZero() {
		return errorsmod.Wrap(sdkerrors.ErrInvalidRequest, "symbol hash cannot be empty")
	}
	return nil
}
