package statsapi

import (
	"context"
	"sync"
)

// MockTransport is a mock implementation of the Transport interface for testing.
// It is safe for concurrent use.
type MockTransport struct {
	mu sync.Mutex

	// Spies for method calls
	GetPlayerStatsFunc func(ctx context.Context) ([]RawPlayerStat, error)
	GetPlayerStatFunc  func(ctx context.Context, playerID int64) (RawPlayerStat, error)
	GetTournamentsFunc func(ctx context.Context) ([]RawTournament, error)
	GetTournamentFunc  func(ctx context.Context, tournamentID int64) (RawTournament, error)

	// Call records
	GetPlayerStatsCalls int
	GetPlayerStatCalls  []int64
	GetTournamentsCalls int
	GetTournamentCalls  []int64
}

// NewMockTransport creates a new mock instance.
func NewMockTransport() *MockTransport {
	return &MockTransport{}
}

var _ Transport = (*MockTransport)(nil)

// Reset clears all call records.
func (m *MockTransport) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetPlayerStatsCalls = 0
	m.GetPlayerStatCalls = nil
	m.GetTournamentsCalls = 0
	m.GetTournamentCalls = nil
}

func (m *MockTransport) GetPlayerStats(ctx context.Context) ([]RawPlayerStat, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetPlayerStatsCalls++
	if m.GetPlayerStatsFunc != nil {
		return m.GetPlayerStatsFunc(ctx)
	}
	return []RawPlayerStat{}, nil
}

func (m *MockTransport) GetPlayerStat(ctx context.Context, playerID int64) (RawPlayerStat, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetPlayerStatCalls = append(m.GetPlayerStatCalls, playerID)
	if m.GetPlayerStatFunc != nil {
		return m.GetPlayerStatFunc(ctx, playerID)
	}
	return RawPlayerStat{}, ErrNotFound
}

func (m *MockTransport) GetTournaments(ctx context.Context) ([]RawTournament, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetTournamentsCalls++
	if m.GetTournamentsFunc != nil {
		return m.GetTournamentsFunc(ctx)
	}
	return []RawTournament{}, nil
}

func (m *MockTransport) GetTournament(ctx context.Context, tournamentID int64) (RawTournament, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetTournamentCalls = append(m.GetTournamentCalls, tournamentID)
	if m.GetTournamentFunc != nil {
		return m.GetTournamentFunc(ctx, tournamentID)
	}
	return RawTournament{}, ErrNotFound
}
