package types

import (
	"math/big"
	"testing"

	"cosmossdk.io/math"
)

// FuzzMulDiv checks MulDiv against big.Int for 64-bit operands scaled into
// the upper half of the 256-bit range.
func FuzzMulDiv(f *testing.F) {
	seeds := []struct {
		a, b, d uint64
		shift   uint8
	}{
		{0, 0, 1, 0},
		{1, 1, 0, 0},
		{3950860042, 1_000_000_000_000_000_000, 1_000_000_000_000_000_000, 0},
		{^uint64(0), ^uint64(0), 1, 192},
		{^uint64(0), ^uint64(0), ^uint64(0), 190},
		{1, 2, 3, 255},
	}
	for _, seed := range seeds {
		f.Add(seed.a, seed.b, seed.d, seed.shift)
	}

	f.Fuzz(func(t *testing.T, a, b, d uint64, shift uint8) {
		aBig := new(big.Int).SetUint64(a)
		aBig.Lsh(aBig, uint(shift%193))
		if aBig.BitLen() > MaxUintBits {
			return
		}

		result, err := MulDiv(math.NewUintFromBigInt(aBig), math.NewUint(b), math.NewUint(d))
		if d == 0 {
			if err == nil {
				t.Fatalf("MulDiv(%s, %d, 0) did not fail", aBig, b)
			}
			return
		}

		expected := new(big.Int).Mul(aBig, new(big.Int).SetUint64(b))
		expected.Quo(expected, new(big.Int).SetUint64(d))

		if expected.BitLen() > MaxUintBits {
			if err == nil {
				t.Fatalf("MulDiv(%s, %d, %d) = %s, expected overflow", aBig, b, d, result)
			}
			return
		}
		if err != nil {
			t.Fatalf("MulDiv(%s, %d, %d) failed: %v", aBig, b, d, err)
		}
		if result.BigInt().Cmp(expected) != 0 {
			t.Errorf("MulDiv(%s, %d, %d) = %s, expected %s", aBig, b, d, result, expected)
		}
	})
}

// FuzzTimeWeightedAverageTick checks that every accepted average tick is in
// range and maps to a sqrt ratio.
func FuzzTimeWeightedAverageTick(f *testing.F) {
	f.Add(int64(0), int64(193503*1800), uint32(1800))
	f.Add(int64(0), int64(-887272*60), uint32(60))
	f.Add(int64(-1<<62), int64(1<<62), uint32(1))
	f.Add(int64(5), int64(-5), uint32(3))
	f.Add(int64(1), int64(2), uint32(0))

	f.Fuzz(func(t *testing.T, older, newer int64, period uint32) {
		tick, err := TimeWeightedAverageTick(older, newer, period)
		if err != nil {
			return
		}
		if tick < MinTick || tick > MaxTick {
			t.Fatalf("average tick %d out of range", tick)
		}
		if _, err := GetSqrtRatioAtTick(tick); err != nil {
			t.Fatalf("tick %d accepted as average but rejected by sqrt ratio: %v", tick, err)
		}
	})
}

// FuzzPriceStateUnmarshal checks that decoding never panics and that every
// decoded state survives a round trip.
func FuzzPriceStateUnmarshal(f *testing.F) {
	for _, state := range []PriceState{
		NewPriceState(),
		{Price: math.NewUint(3950000000), FailoverActive: true},
	} {
		bz, err := state.Marshal()
		if err != nil {
			f.Fatal(err)
		}
		f.Add(bz)
	}
	f.Add([]byte{})
	f.Add([]byte{0x02, '1'})
	f.Add([]byte{0x00, '-', '1'})

	f.Fuzz(func(t *testing.T, data []byte) {
		var state PriceState
		if err := state.Unmarshal(data); err != nil {
			return
		}

		bz, err := state.Marshal()
		if err != nil {
			t.Fatalf("re-encoding %x failed: %v", data, err)
		}

		var again PriceState
		if err := again.Unmarshal(bz); err != nil {
			t.Fatalf("decoding re-encoded %x failed: %v", bz, err)
		}
		if !again.Price.Equal(state.Price) || again.FailoverActive != state.FailoverActive {
			t.Errorf("round trip of %x changed the state", data)
		}
	})
}
