package fixtures

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/mahjong-league/league-stats/internal/league"
	"github.com/mahjong-league/league-stats/internal/statsapi"
)

// Source serves the fixture tournaments through the statsapi.Transport
// interface, so the pipelines can run without a statistics server.
type Source struct {
	tournaments []statsapi.RawTournament
}

var _ statsapi.Transport = (*Source)(nil)

// NewSource loads the bundled fixtures into an in-memory transport.
func NewSource() (*Source, error) {
	tournaments, err := Tournaments()
	if err != nil {
		return nil, err
	}
	log.Debug("Loaded fixture tournaments", "count", len(tournaments))
	return &Source{tournaments: tournaments}, nil
}

func (s *Source) GetPlayerStats(ctx context.Context) ([]statsapi.RawPlayerStat, error) {
	return league.AggregatePlayerStats(s.tournaments), nil
}

func (s *Source) GetPlayerStat(ctx context.Context, playerID int64) (statsapi.RawPlayerStat, error) {
	for _, stat := range league.AggregatePlayerStats(s.tournaments) {
		if stat.PlayerID == playerID {
			stat.GameDetails = league.PlayerGameDetails(s.tournaments, playerID)
			return stat, nil
		}
	}
	return statsapi.RawPlayerStat{}, statsapi.ErrNotFound
}

func (s *Source) GetTournaments(ctx context.Context) ([]statsapi.RawTournament, error) {
	out := make([]statsapi.RawTournament, len(s.tournaments))
	copy(out, s.tournaments)
	return out, nil
}

func (s *Source) GetTournament(ctx context.Context, tournamentID int64) (statsapi.RawTournament, error) {
	for _, tournament := range s.tournaments {
		if tournament.ID == tournamentID {
			return tournament, nil
		}
	}
	return statsapi.RawTournament{}, statsapi.ErrNotFound
}
