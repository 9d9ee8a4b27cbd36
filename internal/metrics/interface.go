package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the application from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	IncUpstreamFetch(resource string)
	IncUpstreamFetchFailed(resource string)
	IncAPIRequest(route string, status int)
	ObserveRequestDuration(route string, duration float64)
	SetStartupTime(duration float64)
}
