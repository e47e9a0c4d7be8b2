package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	namespace = "bola"

	// Authorization outcomes recorded by the reservation handlers.
	OutcomeAllowed    = "allowed"
	OutcomeUnchecked  = "unchecked"
	OutcomeMissing    = "missing_identity"
	OutcomeMalformed  = "malformed_identity"
	OutcomeInvalid    = "invalid_identity"
	OutcomeForbidden  = "forbidden"
	OutcomeStoreError = "store_error"
)

func init() {
	prometheus.MustRegister(httpRequestsTotal)
	prometheus.MustRegister(httpRequestDurationSeconds)
	prometheus.MustRegister(authzDecisionsTotal)
}

var (
	// httpRequestsTotal counts served requests by route template, method and status.
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests served, labeled by route, method and status code.",
		},
		[]string{"route", "method", "status"},
	)

	// httpRequestDurationSeconds measures handler latency. Everything is in
	// memory, so the buckets are small.
	httpRequestDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Histogram of HTTP request handling time in seconds.",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
		[]string{"route"},
	)

	// authzDecisionsTotal counts how each reservation lookup was decided.
	// The vulnerable endpoint always records "unchecked".
	authzDecisionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "authorization_decisions_total",
			Help:      "Reservation lookups by endpoint and authorization outcome.",
		},
		[]string{"endpoint", "outcome"},
	)
)

// ObserveRequest records one served HTTP request.
func ObserveRequest(route, method string, status int, seconds float64) {
	if route == "" {
		route = "unmatched"
	}
	httpRequestsTotal.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	httpRequestDurationSeconds.WithLabelValues(route).Observe(seconds)
}

// ObserveDecision records the authorization outcome of one reservation lookup.
func ObserveDecision(endpoint, outcome string) {
	authzDecisionsTotal.WithLabelValues(endpoint, outcome).Inc()
}
