package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService(t *testing.T) {
	reg := prometheus.NewRegistry()
	svc := NewService(reg)

	svc.IncUpstreamFetch("tournaments")
	svc.IncUpstreamFetch("tournaments")
	svc.IncUpstreamFetchFailed("tournaments")
	svc.IncAPIRequest("/api/tournaments", http.StatusOK)
	svc.ObserveRequestDuration("/api/tournaments", 0.02)
	svc.SetStartupTime(1.5)

	assert.Equal(t, 2.0, testutil.ToFloat64(svc.UpstreamFetches.WithLabelValues("tournaments")))
	assert.Equal(t, 1.0, testutil.ToFloat64(svc.UpstreamFetchFailure.WithLabelValues("tournaments")))
	assert.Equal(t, 1.0, testutil.ToFloat64(svc.APIRequests.WithLabelValues("/api/tournaments", "200")))
	assert.Equal(t, 1.5, testutil.ToFloat64(svc.StartupTimeSeconds))

	rec := httptest.NewRecorder()
	NewMetricsHandler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "league_upstream_fetches_total")
	assert.Contains(t, rec.Body.String(), "league_api_request_duration_seconds")
}

func TestMock(t *testing.T) {
	m := NewMock()
	m.IncUpstreamFetch("player_stats")
	m.IncUpstreamFetchFailed("player_stats")
	m.IncAPIRequest("/health", http.StatusOK)
	m.SetStartupTime(0.25)

	assert.Equal(t, 1, m.Fetches("player_stats"))
	assert.Equal(t, 1, m.FetchFailures("player_stats"))
	assert.Equal(t, 0, m.FetchFailures("tournaments"))
	assert.Equal(t, 1, m.APIRequests("/health"))
	assert.Equal(t, 0.25, m.StartupTime())
}
