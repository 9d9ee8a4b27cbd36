package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		UpstreamFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "league_upstream_fetches_total",
			Help: "The total number of statistics API fetches, by resource.",
		}, []string{"resource"}),
		UpstreamFetchFailure: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "league_upstream_fetch_failures_total",
			Help: "The total number of failed statistics API fetches, by resource.",
		}, []string{"resource"}),
		APIRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "league_api_requests_total",
			Help: "The total number of requests served by the statistics API.",
		}, []string{"route", "status"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "league_api_request_duration_seconds",
			Help:    "The duration of statistics API requests.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"route"}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "league_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.UpstreamFetches,
		s.UpstreamFetchFailure,
		s.APIRequests,
		s.RequestDuration,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncUpstreamFetch(resource string) {
	s.UpstreamFetches.WithLabelValues(resource).Inc()
}

func (s *Service) IncUpstreamFetchFailed(resource string) {
	s.UpstreamFetchFailure.WithLabelValues(resource).Inc()
}

func (s *Service) IncAPIRequest(route string, status int) {
	s.APIRequests.WithLabelValues(route, strconv.Itoa(status)).Inc()
}

func (s *Service) ObserveRequestDuration(route string, duration float64) {
	s.RequestDuration.WithLabelValues(route).Observe(duration)
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
