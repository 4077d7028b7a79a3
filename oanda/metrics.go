package oanda

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "oanda_client",
			Name:      "requests_total",
			Help:      "REST requests sent, by method and HTTP status (0 = transport error).",
		},
		[]string{"method", "status"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "oanda_client",
			Name:      "request_duration_seconds",
			Help:      "REST request round-trip latency.",
		},
		[]string{"method"},
	)
)
