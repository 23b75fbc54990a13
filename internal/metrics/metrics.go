// Package metrics defines the Prometheus collectors exported on /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "foodgram_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "route", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "foodgram_api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "foodgram_api_active_requests",
			Help: "Number of API requests currently being served",
		},
	)

	RecipeWrites = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "foodgram_recipe_writes_total",
			Help: "Recipe write transactions by operation and outcome",
		},
		[]string{"operation", "result"},
	)

	RelationToggles = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "foodgram_relation_toggles_total",
			Help: "Favorite, shopping cart and subscription toggles by outcome",
		},
		[]string{"kind", "action", "result"},
	)

	ShoppingListDownloads = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "foodgram_shopping_list_downloads_total",
			Help: "Number of shopping lists exported",
		},
	)

	LoginRateLimited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "foodgram_login_rate_limited_total",
			Help: "Login attempts rejected by the rate limiter",
		},
	)

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "foodgram_circuit_breaker_state",
			Help: "Circuit breaker state (0 = closed, 1 = half-open, 2 = open)",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "foodgram_circuit_breaker_transitions_total",
			Help: "Circuit breaker state transitions",
		},
		[]string{"name", "from", "to"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "foodgram_circuit_breaker_requests_total",
			Help: "Requests passed through a circuit breaker by result",
		},
		[]string{"name", "result"},
	)
)

// RecordAPIRequest records an API request metric.
func RecordAPIRequest(method, route, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, route, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func TrackActiveRequest(start bool) {
	if start {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

func RecordRecipeWrite(operation string, err error) {
	RecipeWrites.WithLabelValues(operation, result(err)).Inc()
}

func RecordRelationToggle(kind, action string, err error) {
	RelationToggles.WithLabelValues(kind, action, result(err)).Inc()
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
