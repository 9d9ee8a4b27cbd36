package statsapi

import "context"

// Transport is the read-only view of the statistics API used by the player and
// tournament pipelines. Implementations report a missing record with ErrNotFound.
type Transport interface {
	GetPlayerStats(ctx context.Context) ([]RawPlayerStat, error)
	GetPlayerStat(ctx context.Context, playerID int64) (RawPlayerStat, error)
	GetTournaments(ctx context.Context) ([]RawTournament, error)
	GetTournament(ctx context.Context, tournamentID int64) (RawTournament, error)
}
