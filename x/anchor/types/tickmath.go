package types

import (
	"math/big"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
)

const (
	// MinTick is the lowest tick whose price 1.0001^tick is representable.
	MinTick int64 = -887272
	// MaxTick is the highest tick whose price 1.0001^tick is representable.
	MaxTick int64 = 887272
)

// sqrtRatioFactors[i] is sqrt(1.0001^-(2^i)) as a Q128 number.
var sqrtRatioFactors = []*big.Int{
	mustHex("fffcb933bd6fad37aa2d162d1a594001"),
	mustHex("fff97272373d413259a46990580e213a"),
	mustHex("fff2e50f5f656932ef12357cf3c7fdcc"),
	mustHex("ffe5caca7e10e4e61c3624eaa0941cd0"),
	mustHex("ffcb9843d60f6159c9db58835c926644"),
	mustHex("ff973b41fa98c081472e6896dfb254c0"),
	mustHex("ff2ea16466c96a3843ec78b326b52861"),
	mustHex("fe5dee046a99a2a811c461f1969c3053"),
	mustHex("fcbe86c7900a88aedcffc83b479aa3a4"),
	mustHex("f987a7253ac413176f2b074cf7815e54"),
	mustHex("f3392b0822b70005940c7a398e4b70f3"),
	mustHex("e7159475a2c29b7443b29c7fa6e889d9"),
	mustHex("d097f3bdfd2022b8845ad8f792aa5825"),
	mustHex("a9f746462d870fdf8a65dc1f90e061e5"),
	mustHex("70d869a156d2a1b890bb3df62baf32f7"),
	mustHex("31be135f97d08fd981231505542fcfa6"),
	mustHex("9aa508b5b7a84e1c677de54f3e99bc9"),
	mustHex("5d6af8dedb81196699c329225ee604"),
	mustHex("2216e584f5fa1ea926041bedfe98"),
	mustHex("48a170391f7dc42444e8fa2"),
}

var q128 = new(big.Int).Lsh(big.NewInt(1), 128)

func mustHex(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("tickmath: bad constant " + s)
	}
	return v
}

// CheckTick verifies that tick lies within [MinTick, MaxTick]. The range is
// narrower than int24, so it also bounds the tick width.
func CheckTick(tick int64) error {
	if tick < MinTick || tick > MaxTick {
		return errorsmod.Wrapf(ErrTickOutOfRange, "tick %d not in [%d, %d]", tick, MinTick, MaxTick)
	}
	return nil
}

// GetSqrtRatioAtTick returns sqrt(1.0001^tick) as a Q64.96 number, rounded up.
func GetSqrtRatioAtTick(tick int64) (math.Uint, error) {
	if err := CheckTick(tick); err != nil {
		return math.ZeroUint(), err
	}

	absTick := tick
	if absTick < 0 {
		absTick = -absTick
	}

	ratio := new(big.Int).Set(q128)
	if absTick&1 != 0 {
		ratio.Set(sqrtRatioFactors[0])
	}
	for i := 1; i < len(sqrtRatioFactors); i++ {
		if absTick&(1<<uint(i)) != 0 {
			ratio.Mul(ratio, sqrtRatioFactors[i])
			ratio.Rsh(ratio, 128)
		}
	}

	if tick > 0 {
		ratio.Quo(maxUint256, ratio)
	}

	// Q128.128 to Q64.96, rounded up.
	remainder := new(big.Int).And(ratio, big.NewInt(1<<32-1))
	ratio.Rsh(ratio, 32)
	if remainder.Sign() != 0 {
		ratio.Add(ratio, big.NewInt(1))
	}

	return math.NewUintFromBigInt(ratio), nil
}

// TimeWeightedAverageTick returns (newer - older) / period, truncated toward
// zero, as a tick in the supported range.
func TimeWeightedAverageTick(olderCumulative, newerCumulative int64, period uint32) (int64, error) {
	if period == 0 {
		return 0, ErrInvalidAnchorPeriod
	}

	delta := new(big.Int).Sub(big.NewInt(newerCumulative), big.NewInt(olderCumulative))
	avg := delta.Quo(delta, big.NewInt(int64(period)))
	if !avg.IsInt64() {
		return 0, errorsmod.Wrapf(ErrTickOutOfRange, "average tick %s", avg)
	}

	tick := avg.Int64()
	if err := CheckTick(tick); err != nil {
		return 0, err
	}
	return tick, nil
}
