package rate_limiter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RequestsThrottledTotal counts requests answered with 429 before reaching a resource.
var RequestsThrottledTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "restbucks_http_requests_throttled_total",
		Help: "Requests to the ordering API turned away with 429 Too Many Requests",
	},
	[]string{"method", "route"},
)
