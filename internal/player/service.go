package player

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/mahjong-league/league-stats/internal/metrics"
	"github.com/mahjong-league/league-stats/internal/statsapi"
)

const (
	resourcePlayerStats = "player_stats"
	resourcePlayerStat  = "player_stat"
)

// Service fetches player statistics and maps them into view models. It keeps
// no state between calls.
type Service struct {
	transport  statsapi.Transport
	metrics    metrics.Metrics
	listPolicy ListErrorPolicy
}

// NewService creates a player Service. An unknown policy falls back to
// ListErrorPropagate.
func NewService(transport statsapi.Transport, metricsSvc metrics.Metrics, listPolicy ListErrorPolicy) *Service {
	if listPolicy != ListErrorEmpty {
		listPolicy = ListErrorPropagate
	}
	return &Service{
		transport:  transport,
		metrics:    metricsSvc,
		listPolicy: listPolicy,
	}
}

// FetchPlayerList fetches every player's statistics. What happens on a
// transport failure depends on the service's ListErrorPolicy.
func (s *Service) FetchPlayerList(ctx context.Context) ([]Stat, error) {
	s.metrics.IncUpstreamFetch(resourcePlayerStats)
	raw, err := s.transport.GetPlayerStats(ctx)
	if err != nil {
		s.metrics.IncUpstreamFetchFailed(resourcePlayerStats)
		if s.listPolicy == ListErrorEmpty {
			log.Error("Failed to fetch player list, returning empty list", "error", err)
			return []Stat{}, nil
		}
		return nil, fmt.Errorf("error fetching player list: %w", err)
	}
	log.Debug("Fetched player list", "count", len(raw))
	return MapPlayerList(raw), nil
}

// FetchPlayerByID fetches one player with game details. An unknown id
// resolves to (nil, nil); other failures are returned.
func (s *Service) FetchPlayerByID(ctx context.Context, playerID int64) (*WithGames, error) {
	s.metrics.IncUpstreamFetch(resourcePlayerStat)
	raw, err := s.transport.GetPlayerStat(ctx, playerID)
	if errors.Is(err, statsapi.ErrNotFound) {
		log.Debug("Player not found", "playerID", playerID)
		return nil, nil
	}
	if err != nil {
		s.metrics.IncUpstreamFetchFailed(resourcePlayerStat)
		return nil, fmt.Errorf("error fetching player %d: %w", playerID, err)
	}
	player := MapPlayerWithDetail(raw)
	return &player, nil
}
