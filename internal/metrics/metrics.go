// Package metrics provides Prometheus metrics collection for the fulfillment service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// QuotesTotal tracks delivery fee quotes by zone ("none" when
	// unserviceable).
	QuotesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fulfillment_quotes_total",
			Help: "Total number of delivery fee quotes",
		},
		[]string{"zone", "serviceable"},
	)

	// EligibilityDecisionsTotal tracks go/no-go eligibility decisions by
	// outcome (eligible, or the blocking condition).
	EligibilityDecisionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fulfillment_eligibility_decisions_total",
			Help: "Total number of fulfillment eligibility decisions",
		},
		[]string{"outcome"},
	)

	// CheckoutTransitionsTotal tracks checkout workflow transitions.
	CheckoutTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkout_transitions_total",
			Help: "Total number of checkout workflow transitions",
		},
		[]string{"step", "result"},
	)

	// OrdersCreatedTotal tracks orders created at checkout submission.
	OrdersCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orders_created_total",
			Help: "Total number of orders created",
		},
		[]string{"delivery_type"},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordQuote records a delivery fee quote.
func RecordQuote(zone string, serviceable bool) {
	if zone == "" {
		zone = "none"
	}
	QuotesTotal.WithLabelValues(zone, strconv.FormatBool(serviceable)).Inc()
}

// RecordEligibilityDecision records an eligibility decision outcome.
func RecordEligibilityDecision(outcome string) {
	EligibilityDecisionsTotal.WithLabelValues(outcome).Inc()
}

// RecordCheckoutTransition records a checkout workflow transition attempt.
func RecordCheckoutTransition(step, result string) {
	CheckoutTransitionsTotal.WithLabelValues(step, result).Inc()
}

// RecordOrderCreated records a created order.
func RecordOrderCreated(deliveryType string) {
	OrdersCreatedTotal.WithLabelValues(deliveryType).Inc()
}
