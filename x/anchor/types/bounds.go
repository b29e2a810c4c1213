package types

import (
	"math/big"

	"cosmossdk.io/math"
)

// Bounds limits the ratio anchor/reported, scaled by ExpScale, that a
// reported price may have before it is guarded.
type Bounds struct {
	Upper math.Uint
	Lower math.Uint
}

// NewBounds derives the ratio bounds from a tolerance mantissa. The upper
// bound saturates at MaxUint256 and the lower bound never drops below 1.
func NewBounds(toleranceMantissa math.Uint) Bounds {
	one := ExpScale.BigInt()
	tolerance := toleranceMantissa.BigInt()

	upper := new(big.Int).Add(one, tolerance)
	if upper.Cmp(maxUint256) > 0 {
		upper.Set(maxUint256)
	}

	lower := big.NewInt(1)
	if tolerance.Cmp(one) < 0 {
		lower.Sub(one, tolerance)
	}

	return Bounds{
		Upper: math.NewUintFromBigInt(upper),
		Lower: math.NewUintFromBigInt(lower),
	}
}

// Contains reports whether Lower <= ratio <= Upper.
func (b Bounds) Contains(ratio math.Uint) bool {
	return ratio.GTE(b.Lower) && ratio.LTE(b.Upper)
}
