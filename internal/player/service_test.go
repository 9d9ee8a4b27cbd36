package player

import (
	"context"
	"errors"
	"testing"

	"github.com/mahjong-league/league-stats/internal/metrics"
	"github.com/mahjong-league/league-stats/internal/statsapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_FetchPlayerList(t *testing.T) {
	t.Run("maps the transport result", func(t *testing.T) {
		transport := statsapi.NewMockTransport()
		transport.GetPlayerStatsFunc = func(ctx context.Context) ([]statsapi.RawPlayerStat, error) {
			return []statsapi.RawPlayerStat{
				{PlayerID: 7, GameCount: nil},
				{PlayerID: 1, GameCount: statsapi.Int(6)},
			}, nil
		}
		metr := metrics.NewMock()
		svc := NewService(transport, metr, ListErrorPropagate)

		stats, err := svc.FetchPlayerList(context.Background())

		require.NoError(t, err)
		require.Len(t, stats, 2)
		assert.Equal(t, int64(0), stats[0].GameCount)
		assert.Equal(t, int64(6), stats[1].GameCount)
		assert.Equal(t, 1, transport.GetPlayerStatsCalls)
		assert.Equal(t, 1, metr.Fetches(resourcePlayerStats))
	})

	t.Run("propagate policy returns the transport error", func(t *testing.T) {
		upstream := errors.New("connection refused")
		transport := statsapi.NewMockTransport()
		transport.GetPlayerStatsFunc = func(ctx context.Context) ([]statsapi.RawPlayerStat, error) {
			return nil, upstream
		}
		metr := metrics.NewMock()
		svc := NewService(transport, metr, ListErrorPropagate)

		stats, err := svc.FetchPlayerList(context.Background())

		require.Error(t, err)
		assert.ErrorIs(t, err, upstream)
		assert.Nil(t, stats)
		assert.Equal(t, 1, metr.FetchFailures(resourcePlayerStats))
	})

	t.Run("empty policy resolves to an empty list", func(t *testing.T) {
		transport := statsapi.NewMockTransport()
		transport.GetPlayerStatsFunc = func(ctx context.Context) ([]statsapi.RawPlayerStat, error) {
			return nil, &statsapi.StatusError{StatusCode: 503}
		}
		metr := metrics.NewMock()
		svc := NewService(transport, metr, ListErrorEmpty)

		stats, err := svc.FetchPlayerList(context.Background())

		require.NoError(t, err)
		assert.NotNil(t, stats)
		assert.Empty(t, stats)
		assert.Equal(t, 1, metr.FetchFailures(resourcePlayerStats))
	})

	t.Run("unknown policy falls back to propagate", func(t *testing.T) {
		transport := statsapi.NewMockTransport()
		transport.GetPlayerStatsFunc = func(ctx context.Context) ([]statsapi.RawPlayerStat, error) {
			return nil, errors.New("boom")
		}
		svc := NewService(transport, metrics.NewMock(), ListErrorPolicy("retry"))

		_, err := svc.FetchPlayerList(context.Background())
		assert.Error(t, err)
	})
}

func TestService_FetchPlayerByID(t *testing.T) {
	t.Run("not found is absent, not an error", func(t *testing.T) {
		transport := statsapi.NewMockTransport()
		metr := metrics.NewMock()
		svc := NewService(transport, metr, ListErrorPropagate)

		player, err := svc.FetchPlayerByID(context.Background(), 42)

		require.NoError(t, err)
		assert.Nil(t, player)
		assert.Equal(t, []int64{42}, transport.GetPlayerStatCalls)
		assert.Equal(t, 0, metr.FetchFailures(resourcePlayerStat))
	})

	t.Run("found player carries details", func(t *testing.T) {
		transport := statsapi.NewMockTransport()
		transport.GetPlayerStatFunc = func(ctx context.Context, playerID int64) (statsapi.RawPlayerStat, error) {
			return statsapi.RawPlayerStat{
				PlayerID:    playerID,
				PlayerName:  "Player 3",
				GameCount:   statsapi.Int(1),
				GameDetails: []statsapi.RawGameDetail{{GameID: 9, TournamentID: 2}},
			}, nil
		}
		svc := NewService(transport, metrics.NewMock(), ListErrorPropagate)

		player, err := svc.FetchPlayerByID(context.Background(), 3)

		require.NoError(t, err)
		require.NotNil(t, player)
		assert.Equal(t, int64(3), player.ID)
		require.Len(t, player.GameDetails, 1)
		assert.Equal(t, int64(9), player.GameDetails[0].GameID)
	})

	t.Run("transport failure propagates", func(t *testing.T) {
		transport := statsapi.NewMockTransport()
		transport.GetPlayerStatFunc = func(ctx context.Context, playerID int64) (statsapi.RawPlayerStat, error) {
			return statsapi.RawPlayerStat{}, &statsapi.StatusError{StatusCode: 500}
		}
		metr := metrics.NewMock()
		svc := NewService(transport, metr, ListErrorEmpty)

		player, err := svc.FetchPlayerByID(context.Background(), 3)

		require.Error(t, err)
		assert.Nil(t, player)
		var statusErr *statsapi.StatusError
		assert.ErrorAs(t, err, &statusErr)
		assert.Equal(t, 1, metr.FetchFailures(resourcePlayerStat))
	})
}
