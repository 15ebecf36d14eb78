package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	UpstreamCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cwaweather_upstream_calls_total",
			Help: "Total CWA open-data API calls",
		},
		[]string{"dataset", "status"},
	)

	UpstreamLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cwaweather_upstream_latency_seconds",
			Help:    "CWA open-data API call latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"dataset"},
	)

	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cwaweather_http_requests_total",
			Help: "Total HTTP requests served",
		},
		[]string{"method", "path", "code"},
	)
)
