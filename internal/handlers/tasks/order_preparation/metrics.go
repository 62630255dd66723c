package order_preparation

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrdersTransitionedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "restbucks_order_preparation_transitions_total",
			Help: "Orders moved by the preparation task",
		},
		[]string{"transition"},
	)

	RunDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "restbucks_order_preparation_run_duration_seconds",
			Help:    "Duration of a single preparation run",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
	)
)
