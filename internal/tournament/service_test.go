package tournament

import (
	"context"
	"errors"
	"testing"

	"github.com/mahjong-league/league-stats/internal/fixtures"
	"github.com/mahjong-league/league-stats/internal/metrics"
	"github.com/mahjong-league/league-stats/internal/statsapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_FetchTournamentList(t *testing.T) {
	t.Run("maps fixture tournaments", func(t *testing.T) {
		source, err := fixtures.NewSource()
		require.NoError(t, err)
		svc := NewService(source, metrics.NewMock())

		tournaments, err := svc.FetchTournamentList(context.Background())

		require.NoError(t, err)
		require.Len(t, tournaments, 2)
		for _, tournament := range tournaments {
			for _, entry := range tournament.Summary {
				assert.Len(t, entry.RoundPoints, len(tournament.Sessions))
			}
		}
	})

	t.Run("transport failure is wrapped", func(t *testing.T) {
		upstream := &statsapi.StatusError{StatusCode: 502}
		transport := statsapi.NewMockTransport()
		transport.GetTournamentsFunc = func(ctx context.Context) ([]statsapi.RawTournament, error) {
			return nil, upstream
		}
		metr := metrics.NewMock()
		svc := NewService(transport, metr)

		tournaments, err := svc.FetchTournamentList(context.Background())

		require.Error(t, err)
		assert.Nil(t, tournaments)
		assert.Contains(t, err.Error(), "fetch tournament list")
		var statusErr *statsapi.StatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, 502, statusErr.StatusCode)
		assert.Equal(t, 1, metr.FetchFailures(resourceTournaments))
	})
}

func TestService_FetchTournamentByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		transport := statsapi.NewMockTransport()
		transport.GetTournamentFunc = func(ctx context.Context, tournamentID int64) (statsapi.RawTournament, error) {
			return preseason(), nil
		}
		svc := NewService(transport, metrics.NewMock())

		tournament, err := svc.FetchTournamentByID(context.Background(), 1)

		require.NoError(t, err)
		require.NotNil(t, tournament)
		assert.Equal(t, "Pre-season", tournament.Info.SubName)
		assert.Equal(t, []int64{1}, transport.GetTournamentCalls)
	})

	t.Run("not found is absent", func(t *testing.T) {
		transport := statsapi.NewMockTransport()
		metr := metrics.NewMock()
		svc := NewService(transport, metr)

		tournament, err := svc.FetchTournamentByID(context.Background(), 99)

		assert.NoError(t, err)
		assert.Nil(t, tournament)
		assert.Equal(t, 0, metr.FetchFailures(resourceTournament))
	})

	t.Run("transport failure is logged and absent", func(t *testing.T) {
		transport := statsapi.NewMockTransport()
		transport.GetTournamentFunc = func(ctx context.Context, tournamentID int64) (statsapi.RawTournament, error) {
			return statsapi.RawTournament{}, errors.New("connection reset")
		}
		metr := metrics.NewMock()
		svc := NewService(transport, metr)

		tournament, err := svc.FetchTournamentByID(context.Background(), 1)

		assert.NoError(t, err)
		assert.Nil(t, tournament)
		assert.Equal(t, 1, metr.FetchFailures(resourceTournament))
	})
}
