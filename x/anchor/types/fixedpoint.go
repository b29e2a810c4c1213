package types

import (
	"math/big"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
)

const (
	// MaxUintBits is the width of every value handled by the engine.
	MaxUintBits = 256

	// StoredPriceBits is the width of the canonical price field.
	StoredPriceBits = 248
)

var (
	// ExpScale is the engine's internal 18-decimal fixed-point "1.0".
	ExpScale = math.NewUint(1_000_000_000_000_000_000)

	// EthBaseUnit is the number of smallest units in one ETH.
	EthBaseUnit = math.NewUint(1_000_000_000_000_000_000)

	// Q96 is 2^96, the fractional base of square-root price ratios.
	Q96 = math.NewUintFromBigInt(new(big.Int).Lsh(big.NewInt(1), 96))

	// UnderlyingPriceScale rescales a 6-decimal USD price to a 36-decimal
	// figure per smallest underlying unit.
	UnderlyingPriceScale = math.NewUintFromBigInt(new(big.Int).Exp(big.NewInt(10), big.NewInt(30), nil))

	maxUint256 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), MaxUintBits), big.NewInt(1))
)

// MaxUint256 returns 2^256 - 1.
func MaxUint256() math.Uint {
	return math.NewUintFromBigInt(maxUint256)
}

// MulDiv returns floor(a*b/denominator). The product is computed at full
// precision, so it succeeds whenever the quotient fits in 256 bits even if
// a*b does not. A zero denominator or an oversized result fails with
// ErrOverflow.
func MulDiv(a, b, denominator math.Uint) (math.Uint, error) {
	if denominator.IsZero() {
		return math.ZeroUint(), errorsmod.Wrap(ErrOverflow, "mulDiv: division by zero")
	}

	product := new(big.Int).Mul(a.BigInt(), b.BigInt())
	result := product.Quo(product, denominator.BigInt())
	if result.BitLen() > MaxUintBits {
		return math.ZeroUint(), errorsmod.Wrapf(ErrOverflow, "mulDiv: result needs %d bits", result.BitLen())
	}

	return math.NewUintFromBigInt(result), nil
}

// ToStoredPrice narrows a price to the canonical storage width.
func ToStoredPrice(price math.Uint) (math.Uint, error) {
	if bits := price.BigInt().BitLen(); bits > StoredPriceBits {
		return math.ZeroUint(), errorsmod.Wrapf(ErrOverflow, "price %s needs %d bits, max %d", price, bits, StoredPriceBits)
	}
	return price, nil
}

// PowTen returns 10^exp as a Uint.
func PowTen(exp uint64) math.Uint {
	return math.NewUintFromBigInt(new(big.Int).Exp(big.NewInt(10), new(big.Int).SetUint64(exp), nil))
}
