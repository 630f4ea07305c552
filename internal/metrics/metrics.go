// Package metrics registers the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts responses by method, chi route pattern and status code.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "advising_http_requests_total",
			Help: "Total HTTP responses served.",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "advising_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"method", "route"},
	)

	RateLimitRejections = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "advising_rate_limit_rejections_total",
			Help: "Requests rejected by the per-IP rate limiter.",
		},
	)

	// IntegrationChecks counts probe outcomes labelled by integration name and resulting status.
	IntegrationChecks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "advising_integration_checks_total",
			Help: "Integration health checks by outcome.",
		},
		[]string{"integration", "status"},
	)

	// CircuitBreakerState is 0 closed, 1 half-open, 2 open.
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "advising_integration_circuit_state",
			Help: "Circuit breaker state per integration (0=closed 1=half_open 2=open).",
		},
		[]string{"integration"},
	)

	DataFlushes = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "advising_data_flushes_total",
			Help: "Completed bulk data flushes.",
		},
	)
)
