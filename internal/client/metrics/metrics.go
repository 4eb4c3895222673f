// Package metrics holds the Prometheus collectors of the client core.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// Registry holds the client collectors.
	Registry = prometheus.NewRegistry()

	gatewayRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gophfood",
			Subsystem: "gateway",
			Name:      "requests_total",
			Help:      "Total number of backend requests by operation and HTTP status (0 = transport failure).",
		},
		[]string{"op", "status"},
	)

	gatewayDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "gophfood",
			Subsystem: "gateway",
			Name:      "request_duration_seconds",
			Help:      "Duration of backend requests.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 10), // 10ms to ~5s
		},
		[]string{"op"},
	)

	imageCache = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gophfood",
			Subsystem: "images",
			Name:      "lookups_total",
			Help:      "Image resolutions by result (hit, miss).",
		},
		[]string{"result"},
	)

	orders = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gophfood",
			Subsystem: "orders",
			Name:      "placements_total",
			Help:      "Order placements by outcome.",
		},
		[]string{"outcome"},
	)
)

func init() {
	Registry.MustRegister(gatewayRequests, gatewayDuration, imageCache, orders)
}

// ObserveGatewayRequest records one backend call.
func ObserveGatewayRequest(op string, status int, d time.Duration) {
	gatewayRequests.WithLabelValues(op, strconv.Itoa(status)).Inc()
	gatewayDuration.WithLabelValues(op).Observe(d.Seconds())
}

func ImageCacheHit() {
	imageCache.WithLabelValues("hit").Inc()
}

func ImageCacheMiss() {
	imageCache.WithLabelValues("miss").Inc()
}

// OrderOutcome records an order placement result, e.g. "placed",
// "NotRegistered" or "error".
func OrderOutcome(outcome string) {
	orders.WithLabelValues(outcome).Inc()
}
