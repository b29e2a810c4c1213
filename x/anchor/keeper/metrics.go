package keeper

import (
	"math/big"
	"sync"

	"cosmossdk.io/math"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/paw-chain/anchor/x/anchor/types"
)

// Labels for the source of a canonical price update.
const (
	sourceReporter = "reporter"
	sourceAnchor   = "anchor"
)

// AnchorMetrics holds all Prometheus metrics for the anchor module
type AnchorMetrics struct {
	PriceUpdates        *prometheus.CounterVec
	PriceGuarded        *prometheus.CounterVec
	CanonicalPrice      *prometheus.GaugeVec
	FailoverActive      *prometheus.GaugeVec
	FailoverTransitions *prometheus.CounterVec
	AnchorFailures      *prometheus.CounterVec
}

var (
	anchorMetricsOnce sync.Once
	anchorMetrics     *AnchorMetrics
)

// NewAnchorMetrics creates and registers anchor metrics (singleton pattern)
func NewAnchorMetrics() *AnchorMetrics {
	anchorMetricsOnce.Do(func() {
		anchorMetrics = &AnchorMetrics{
			PriceUpdates: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "paw",
					Subsystem: "anchor",
					Name:      "price_updates_total",
					Help:      "Canonical price updates by asset and source",
				},
				[]string{"symbol_hash", "source"},
			),
			PriceGuarded: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "paw",
					Subsystem: "anchor",
					Name:      "price_guarded_total",
					Help:      "Reported prices rejected for falling outside anchor bounds",
				},
				[]string{"symbol_hash"},
			),
			CanonicalPrice: promauto.NewGaugeVec(
				prometheus.GaugeOpts{
					Namespace: "paw",
					Subsystem: "anchor",
					Name:      "canonical_price_usd",
					Help:      "Current canonical price in USD",
				},
				[]string{"symbol_hash"},
			),
			FailoverActive: promauto.NewGaugeVec(
				prometheus.GaugeOpts{
					Namespace: "paw",
					Subsystem: "anchor",
					Name:      "failover_active",
					Help:      "1 while the anchor price governs the asset",
				},
				[]string{"symbol_hash"},
			),
			FailoverTransitions: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "paw",
					Subsystem: "anchor",
					Name:      "failover_transitions_total",
					Help:      "Failover activations and deactivations",
				},
				[]string{"symbol_hash", "direction"},
			),
			AnchorFailures: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "paw",
					Subsystem: "anchor",
					Name:      "anchor_failures_total",
					Help:      "Anchor price computations that failed on market observation",
				},
				[]string{"symbol_hash"},
			),
		}
	})
	return anchorMetrics
}

// usdScale converts 6-decimal prices to floating point dollars.
var usdScale = big.NewFloat(1e6)

func (m *AnchorMetrics) observePrice(symbolHash types.SymbolHash, price math.Uint) {
	usd, _ := new(big.Float).Quo(new(big.Float).SetInt(price.BigInt()), usdScale).Float64()
	m.CanonicalPrice.WithLabelValues(symbolHash.String()).Set(usd)
}
