package keeper

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RouterMetrics holds the Prometheus collectors of the router.
type RouterMetrics struct {
	OperationsTotal  *prometheus.CounterVec
	OperationLatency *prometheus.HistogramVec
	SwapHops         prometheus.Histogram
}

var (
	routerMetricsOnce sync.Once
	routerMetrics     *RouterMetrics
)

// NewRouterMetrics creates and registers router metrics (singleton pattern)
func NewRouterMetrics() *RouterMetrics {
	routerMetricsOnce.Do(func() {
		routerMetrics = &RouterMetrics{
			OperationsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "soroswap",
					Subsystem: "router",
					Name:      "operations_total",
					Help:      "Total number of router operations by outcome",
				},
				[]string{"operation", "status"},
			),
			OperationLatency: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Namespace: "soroswap",
					Subsystem: "router",
					Name:      "operation_latency_seconds",
					Help:      "Router operation latency in seconds",
					Buckets:   prometheus.DefBuckets,
				},
				[]string{"operation"},
			),
			SwapHops: promauto.NewHistogram(
				prometheus.HistogramOpts{
					Namespace: "soroswap",
					Subsystem: "router",
					Name:      "swap_hops",
					Help:      "Number of pairs crossed by a routed swap",
					Buckets:   []float64{1, 2, 3, 4, 6, 8},
				},
			),
		}
	})
	return routerMetrics
}
