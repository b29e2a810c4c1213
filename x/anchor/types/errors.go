package types

import (
	"errors"

	sdkerrors "cosmossdk.io/errors"
)

// Anchor module sentinel errors
var (
	// Configuration errors
	ErrBaseUnitZero       = sdkerrors.Register(ModuleName, 2, "baseUnit must be greater than zero")
	ErrAnchorRequired     = sdkerrors.Register(ModuleName, 3, "reported prices must have an anchor")
	ErrReporterRequired   = sdkerrors.Register(ModuleName, 4, "reported price must have a reporter")
	ErrAnchorNotAllowed   = sdkerrors.Register(ModuleName, 5, "only reported prices utilize an anchor")
	ErrReporterNotAllowed = sdkerrors.Register(ModuleName, 6, "only reported prices utilize a reporter")
	ErrInvalidParams      = sdkerrors.Register(ModuleName, 7, "invalid params")
	ErrInvalidGenesis     = sdkerrors.Register(ModuleName, 8, "invalid genesis state")
	ErrInvalidPriceSource = sdkerrors.Register(ModuleName, 9, "invalid price source")

	// Lookup and access errors
	ErrTokenConfigNotFound = sdkerrors.Register(ModuleName, 10, "token config not found")
	ErrUnauthorized        = sdkerrors.Register(ModuleName, 11, "unauthorized")
	ErrInvalidSymbolHash   = sdkerrors.Register(ModuleName, 12, "invalid symbol hash")

	// Calculation errors
	ErrNegativeValue       = sdkerrors.Register(ModuleName, 20, "value must be non-negative")
	ErrTickOutOfRange      = sdkerrors.Register(ModuleName, 21, "TWAP not in range")
	ErrInvalidAnchorPeriod = sdkerrors.Register(ModuleName, 22, "anchor period must be greater than zero")
	ErrOverflow            = sdkerrors.Register(ModuleName, 23, "arithmetic overflow")
	ErrPriceNotReady       = sdkerrors.Register(ModuleName, 24, "ETH price not set")

	// Failover state errors
	ErrFailoverAlreadyActive   = sdkerrors.Register(ModuleName, 30, "failover already active")
	ErrFailoverAlreadyInactive = sdkerrors.Register(ModuleName, 31, "failover already inactive")
	ErrFailoverNotActive       = sdkerrors.Register(ModuleName, 32, "failover is not active")

	// Stored state errors
	ErrInvalidPriceState = sdkerrors.Register(ModuleName, 40, "invalid price state")
)

// IsConfigError reports whether err is one of the construction-time
// configuration violations.
func IsConfigError(err error) bool {
	for _, target := range []*sdkerrors.Error{
		ErrBaseUnitZero,
		ErrAnchorRequired,
		ErrReporterRequired,
		ErrAnchorNotAllowed,
		ErrReporterNotAllowed,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
