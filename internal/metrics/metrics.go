package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "artfolio_http_requests_total",
			Help: "Number of HTTP requests by method, path and status.",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "artfolio_http_request_duration_seconds",
			Help: "HTTP request latency by method and path.",
		},
		[]string{"method", "path"},
	)

	ImageDeletionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "artfolio_image_deletions_total",
			Help: "Remote image deletion attempts by result (ok, failed, skipped).",
		},
		[]string{"result"},
	)
)
