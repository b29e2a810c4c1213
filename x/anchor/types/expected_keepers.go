package types

import "context"

// MarketKeeper exposes the time-weighted tick observations of a market.
type MarketKeeper interface {
	// ObserveTickCumulatives returns the cumulative tick of market at each of
	// secondsAgos seconds before the current block time, in the same order.
	ObserveTickCumulatives(ctx context.Context, market string, secondsAgos []uint32) ([]int64, error)
}
