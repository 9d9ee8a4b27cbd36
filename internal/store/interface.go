package store

import (
	"context"

	"github.com/mahjong-league/league-stats/internal/statsapi"
)

// StatsStore persists finished tournaments and serves them, together with the
// player statistics derived from them, in the statistics API wire format.
type StatsStore interface {
	statsapi.Transport
	UpsertTournament(ctx context.Context, tournament statsapi.RawTournament) error
	UpsertTournaments(ctx context.Context, tournaments []statsapi.RawTournament) error
	GetPlayers(ctx context.Context) ([]statsapi.RawPlayer, error)
	Clear()
}
