package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service holds all the Prometheus metrics for the application.
type Service struct {
	UpstreamFetches      *prometheus.CounterVec
	UpstreamFetchFailure *prometheus.CounterVec
	APIRequests          *prometheus.CounterVec
	RequestDuration      *prometheus.HistogramVec
	StartupTimeSeconds   prometheus.Gauge
}
