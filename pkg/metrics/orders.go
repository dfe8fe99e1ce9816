package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the order creation transaction, successful or not
	OrderCreateLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "orders_create_latency_seconds",
		Help:    "Latency of the order creation transaction",
		Buckets: prometheus.DefBuckets,
	})

	OrdersCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "orders_created_total",
		Help: "Total number of committed orders",
	})

	OrdersReplayed = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "orders_idempotent_replays_total",
		Help: "Order submissions answered from an earlier idempotency key",
	})

	// reason: validation, out_of_stock, not_found, in_flight, internal
	OrdersFailed = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "orders_failed_total",
		Help: "Order submissions that were rejected or rolled back",
	}, []string{"reason"})

	ShippingStatusUpdates = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "orders_shipping_status_updates_total",
		Help: "Shipping status changes by target status",
	}, []string{"status"})
)

func Init() {
	prometheus.MustRegister(
		OrderCreateLatency,
		OrdersCreated,
		OrdersReplayed,
		OrdersFailed,
		ShippingStatusUpdates,
	)
}
