package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "restbucks_http_request_duration_seconds",
			Help:    "Time spent serving a request to the ordering API, by route template",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "restbucks_http_requests_total",
			Help: "Requests served by the ordering API, by route template and status",
		},
		[]string{"method", "route", "status"},
	)
)
