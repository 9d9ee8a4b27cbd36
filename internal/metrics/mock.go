package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu               sync.Mutex
	fetches          map[string]int
	fetchFailures    map[string]int
	apiRequests      map[string]int
	requestDurations []float64
	startupTime      float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		fetches:          make(map[string]int),
		fetchFailures:    make(map[string]int),
		apiRequests:      make(map[string]int),
		requestDurations: make([]float64, 0),
	}
}

var _ Metrics = (*Mock)(nil)

func (m *Mock) IncUpstreamFetch(resource string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fetches[resource]++
}

func (m *Mock) IncUpstreamFetchFailed(resource string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fetchFailures[resource]++
}

func (m *Mock) IncAPIRequest(route string, status int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.apiRequests[route]++
}

func (m *Mock) ObserveRequestDuration(route string, duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requestDurations = append(m.requestDurations, duration)
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// Fetches returns the number of times IncUpstreamFetch was called for resource.
func (m *Mock) Fetches(resource string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fetches[resource]
}

// FetchFailures returns the number of times IncUpstreamFetchFailed was called for resource.
func (m *Mock) FetchFailures(resource string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fetchFailures[resource]
}

// APIRequests returns the number of requests recorded for route.
func (m *Mock) APIRequests(route string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.apiRequests[route]
}

// StartupTime returns the last value passed to SetStartupTime.
func (m *Mock) StartupTime() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.startupTime
}
