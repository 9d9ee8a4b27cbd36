package store

import (
	"context"
	"sync"

	"github.com/mahjong-league/league-stats/internal/statsapi"
)

// MockStore is a mock implementation of the StatsStore interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	UpsertTournamentFunc  func(ctx context.Context, tournament statsapi.RawTournament) error
	UpsertTournamentsFunc func(ctx context.Context, tournaments []statsapi.RawTournament) error
	GetTournamentsFunc    func(ctx context.Context) ([]statsapi.RawTournament, error)
	GetTournamentFunc     func(ctx context.Context, tournamentID int64) (statsapi.RawTournament, error)
	GetPlayersFunc        func(ctx context.Context) ([]statsapi.RawPlayer, error)
	GetPlayerStatsFunc    func(ctx context.Context) ([]statsapi.RawPlayerStat, error)
	GetPlayerStatFunc     func(ctx context.Context, playerID int64) (statsapi.RawPlayerStat, error)
	ClearFunc             func()

	// Call records
	UpsertTournamentCalls  []statsapi.RawTournament
	UpsertTournamentsCalls [][]statsapi.RawTournament
	GetTournamentCalls     []int64
	GetPlayerStatCalls     []int64
	ClearCalls             int
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

var _ StatsStore = (*MockStore)(nil)

func (m *MockStore) UpsertTournament(ctx context.Context, tournament statsapi.RawTournament) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpsertTournamentCalls = append(m.UpsertTournamentCalls, tournament)
	if m.UpsertTournamentFunc != nil {
		return m.UpsertTournamentFunc(ctx, tournament)
	}
	return nil
}

func (m *MockStore) UpsertTournaments(ctx context.Context, tournaments []statsapi.RawTournament) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpsertTournamentsCalls = append(m.UpsertTournamentsCalls, tournaments)
	if m.UpsertTournamentsFunc != nil {
		return m.UpsertTournamentsFunc(ctx, tournaments)
	}
	return nil
}

func (m *MockStore) GetTournaments(ctx context.Context) ([]statsapi.RawTournament, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetTournamentsFunc != nil {
		return m.GetTournamentsFunc(ctx)
	}
	return []statsapi.RawTournament{}, nil
}

func (m *MockStore) GetTournament(ctx context.Context, tournamentID int64) (statsapi.RawTournament, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetTournamentCalls = append(m.GetTournamentCalls, tournamentID)
	if m.GetTournamentFunc != nil {
		return m.GetTournamentFunc(ctx, tournamentID)
	}
	return statsapi.RawTournament{}, statsapi.ErrNotFound
}

func (m *MockStore) GetPlayers(ctx context.Context) ([]statsapi.RawPlayer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetPlayersFunc != nil {
		return m.GetPlayersFunc(ctx)
	}
	return []statsapi.RawPlayer{}, nil
}

func (m *MockStore) GetPlayerStats(ctx context.Context) ([]statsapi.RawPlayerStat, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetPlayerStatsFunc != nil {
		return m.GetPlayerStatsFunc(ctx)
	}
	return []statsapi.RawPlayerStat{}, nil
}

func (m *MockStore) GetPlayerStat(ctx context.Context, playerID int64) (statsapi.RawPlayerStat, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetPlayerStatCalls = append(m.GetPlayerStatCalls, playerID)
	if m.GetPlayerStatFunc != nil {
		return m.GetPlayerStatFunc(ctx, playerID)
	}
	return statsapi.RawPlayerStat{}, statsapi.ErrNotFound
}

func (m *MockStore) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ClearCalls++
	if m.ClearFunc != nil {
		m.ClearFunc()
	}
}
