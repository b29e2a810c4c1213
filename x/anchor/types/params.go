package types

import (
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	// DefaultAnchorPeriod is the TWAP window in seconds.
	DefaultAnchorPeriod uint32 = 1800
)

// DefaultAnchorToleranceMantissa allows reported prices within 15% of the anchor.
var DefaultAnchorToleranceMantissa = math.NewUint(150_000_000_000_000_000)

// Params are the construction inputs of the engine besides the asset list.
type Params struct {
	// AnchorToleranceMantissa is the allowed anchor/reported deviation, scaled by ExpScale.
	AnchorToleranceMantissa math.Uint `json:"anchor_tolerance_mantissa"`
	// AnchorPeriod is the TWAP window in seconds.
	AnchorPeriod uint32 `json:"anchor_period"`
	// Owner may switch failover on and off.
	Owner string `json:"owner"`
}

// DefaultParams returns default anchor parameters
func DefaultParams() Params {
	return Params{
		AnchorToleranceMantissa: DefaultAnchorToleranceMantissa,
		AnchorPeriod:            DefaultAnchorPeriod,
		Owner:                   DefaultAuthority(),
	}
}

// Validate checks the params.
func (p Params) Validate() error {
	if p.AnchorToleranceMantissa.IsNil() {
		return errorsmod.Wrap(ErrInvalidParams, "anchor tolerance mantissa must be set")
	}
	if p.AnchorPeriod == 0 {
		return ErrInvalidAnchorPeriod
	}
	if _, err := sdk.AccAddressFromBech32(p.Owner); err != nil {
		return errorsmod.Wrapf(ErrInvalidParams, "invalid owner address: %s", err)
	}
	return nil
}
