package keeper

import (
	"context"
	"fmt"
	"sync"
)

// MockMarketKeeper serves fixed tick cumulatives per market.
type MockMarketKeeper struct {
	mu          sync.Mutex
	cumulatives map[string][2]int64
	errs        map[string]error
	calls       int
}

// NewMockMarketKeeper creates an empty MockMarketKeeper.
func NewMockMarketKeeper() *MockMarketKeeper {
	return &MockMarketKeeper{
		cumulatives: make(map[string][2]int64),
		errs:        make(map[string]error),
	}
}

// SetAverageTick makes market report tick as its average over period seconds.
func (m *MockMarketKeeper) SetAverageTick(market string, tick int64, period uint32) {
	const base int64 = 1_000_000_000
	m.SetCumulatives(market, base, base+tick*int64(period))
}

// SetCumulatives sets the cumulative tick period seconds ago and now.
func (m *MockMarketKeeper) SetCumulatives(market string, older, newer int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cumulatives[market] = [2]int64{older, newer}
	delete(m.errs, market)
}

// SetError makes every observation of market fail with err.
func (m *MockMarketKeeper) SetError(market string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errs[market] = err
}

// Calls returns the number of observations served.
func (m *MockMarketKeeper) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// ObserveTickCumulatives implements types.MarketKeeper.
func (m *MockMarketKeeper) ObserveTickCumulatives(_ context.Context, market string, secondsAgos []uint32) ([]int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err, ok := m.errs[market]; ok {
		return nil, err
	}
	cumulative, ok := m.cumulatives[market]
	if !ok {
		return nil, fmt.Errorf("market %q not observed", market)
	}
	m.calls++

	out := make([]int64, len(secondsAgos))
	for i, ago := range secondsAgos {
		if ago == 0 {
			out[i] = cumulative[1]
		} else {
			out[i] = cumulative[0]
		}
	}
	return out, nil
}
