// Package observability exposes the service's Prometheus metrics.
package observability

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "route", "status"},
	)

	httpRequestDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds.",
			Buckets: prometheus.ExponentialBuckets(0.005, 2, 12), // 5ms to ~20s
		},
		[]string{"method", "route", "status"},
	)

	encodeTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wkt_encode_total",
			Help: "WKT encode calls by geometry type and outcome.",
		},
		[]string{"type", "outcome"},
	)

	encodeDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wkt_encode_duration_seconds",
			Help:    "Duration of WKT encode calls in seconds.",
			Buckets: prometheus.ExponentialBuckets(0.000005, 2, 16), // 5us up
		},
		[]string{"type"},
	)

	cacheResults = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_results_total",
			Help: "WKT cache lookups by outcome.",
		},
		[]string{"outcome"},
	)

	cacheOpDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cache_op_duration_seconds",
			Help:    "Duration of cache backend operations in seconds.",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12),
		},
		[]string{"op", "status"},
	)

	buildInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_build_info",
			Help: "Build information for the binary.",
		},
		[]string{"version"},
	)
)

func ObserveHTTP(method, route string, status int, durationSeconds float64) {
	st := strconv.Itoa(status)
	httpRequestsTotal.WithLabelValues(method, route, st).Inc()
	httpRequestDurationSeconds.WithLabelValues(method, route, st).Observe(durationSeconds)
}

func ObserveEncode(geomType string, err error, durationSeconds float64) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	encodeTotal.WithLabelValues(geomType, outcome).Inc()
	if err == nil {
		encodeDurationSeconds.WithLabelValues(geomType).Observe(durationSeconds)
	}
}

func ObserveCacheOp(op string, err error, durationSeconds float64) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	cacheOpDurationSeconds.WithLabelValues(op, status).Observe(durationSeconds)
}

// IncCacheResult counts one lookup outcome: "hit_memory", "hit_redis"
// or "miss".
func IncCacheResult(outcome string) {
	cacheResults.WithLabelValues(outcome).Inc()
}

func ExposeBuildInfo(version string) {
	if version == "" {
		version = "dev"
	}
	buildInfo.WithLabelValues(version).Set(1)
}
