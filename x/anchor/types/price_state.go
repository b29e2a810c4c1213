package types

import (
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
)

// PriceState is the mutable canonical price of a reporter-sourced asset.
type PriceState struct {
	// Price is the canonical 6-decimal USD price; 1 until a price is accepted.
	Price math.Uint `json:"price"`
	// FailoverActive is set while the anchor price governs the asset.
	FailoverActive bool `json:"failover_active"`
}

// NewPriceState returns the state every reporter asset starts in.
func NewPriceState() PriceState {
	return PriceState{Price: math.OneUint()}
}

// Validate checks that the state could have been produced by the engine.
func (s PriceState) Validate() error {
	if s.Price.IsNil() || s.Price.IsZero() {
		return errorsmod.Wrap(ErrInvalidPriceState, "price must be positive")
	}
	if _, err := ToStoredPrice(s.Price); err != nil {
		return err
	}
	return nil
}

const (
	failoverInactiveFlag byte = 0x00
	failoverActiveFlag   byte = 0x01
)

// Marshal encodes the state as a failover flag byte followed by the decimal price.
func (s PriceState) Marshal() ([]byte, error) {
	priceBz, err := s.Price.Marshal()
	if err != nil {
		return nil, err
	}

	flag := failoverInactiveFlag
	if s.FailoverActive {
		flag = failoverActiveFlag
	}
	return append([]byte{flag}, priceBz...), nil
}

// Unmarshal decodes a state written by Marshal.
func (s *PriceState) Unmarshal(bz []byte) error {
	if len(bz) < 2 {
		return errorsmod.Wrapf(ErrInvalidPriceState, "too short: %d bytes", len(bz))
	}

	switch bz[0] {
	case failoverInactiveFlag:
		s.FailoverActive = false
	case failoverActiveFlag:
		s.FailoverActive = true
	default:
		return errorsmod.Wrapf(ErrInvalidPriceState, "failover flag 0x%02x", bz[0])
	}

	price := math.ZeroUint()
	if err := price.Unmarshal(bz[1:]); err != nil {
		return errorsmod.Wrapf(ErrInvalidPriceState, "price: %s", err)
	}
	s.Price = price
	return nil
}
