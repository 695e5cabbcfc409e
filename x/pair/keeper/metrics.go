package keeper

import (
	"sync"

	"cosmossdk.io/math"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PairMetrics holds the Prometheus collectors shared by every pair instance.
type PairMetrics struct {
	SwapsTotal       *prometheus.CounterVec
	SwapVolume       *prometheus.CounterVec
	DepositsTotal    *prometheus.CounterVec
	WithdrawalsTotal *prometheus.CounterVec
	ProtocolFeeMints *prometheus.CounterVec
	Reserves         *prometheus.GaugeVec
	SharesSupply     *prometheus.GaugeVec
}

var (
	pairMetricsOnce sync.Once
	pairMetrics     *PairMetrics
)

// NewPairMetrics creates and registers pair metrics (singleton pattern)
func NewPairMetrics() *PairMetrics {
	pairMetricsOnce.Do(func() {
		pairMetrics = &PairMetrics{
			SwapsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "soroswap",
					Subsystem: "pair",
					Name:      "swaps_total",
					Help:      "Total number of swaps settled by pairs",
				},
				[]string{"pair", "status"},
			),
			SwapVolume: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "soroswap",
					Subsystem: "pair",
					Name:      "swap_volume_total",
					Help:      "Total input volume swapped, per pair token",
				},
				[]string{"pair", "token"},
			),
			DepositsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "soroswap",
					Subsystem: "pair",
					Name:      "deposits_total",
					Help:      "Total number of liquidity deposits",
				},
				[]string{"pair"},
			),
			WithdrawalsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "soroswap",
					Subsystem: "pair",
					Name:      "withdrawals_total",
					Help:      "Total number of liquidity withdrawals",
				},
				[]string{"pair"},
			),
			ProtocolFeeMints: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "soroswap",
					Subsystem: "pair",
					Name:      "protocol_fee_mints_total",
					Help:      "Total number of protocol fee share mints",
				},
				[]string{"pair"},
			),
			Reserves: promauto.NewGaugeVec(
				prometheus.GaugeOpts{
					Namespace: "soroswap",
					Subsystem: "pair",
					Name:      "reserves",
					Help:      "Current reserves of each pair token",
				},
				[]string{"pair", "token"},
			),
			SharesSupply: promauto.NewGaugeVec(
				prometheus.GaugeOpts{
					Namespace: "soroswap",
					Subsystem: "pair",
					Name:      "shares_supply",
					Help:      "Outstanding LP shares per pair",
				},
				[]string{"pair"},
			),
		}
	})
	return pairMetrics
}

func gaugeValue(x math.Int) float64 {
	return math.LegacyNewDecFromInt(x).MustFloat64()
}
