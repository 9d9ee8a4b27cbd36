package tournament

import (
	"context"
	"errors"

	"github.com/charmbracelet/log"
	crerr "github.com/cockroachdb/errors"
	"github.com/mahjong-league/league-stats/internal/metrics"
	"github.com/mahjong-league/league-stats/internal/statsapi"
)

const (
	resourceTournaments = "tournaments"
	resourceTournament  = "tournament"
)

// Service fetches tournaments and maps them into view models. It keeps no
// state between calls.
//
// The list and single fetches deliberately handle transport failures
// differently: the list returns a wrapped error, the single fetch logs and
// resolves to nil.
type Service struct {
	transport statsapi.Transport
	metrics   metrics.Metrics
}

// NewService creates a tournament Service.
func NewService(transport statsapi.Transport, metricsSvc metrics.Metrics) *Service {
	return &Service{
		transport: transport,
		metrics:   metricsSvc,
	}
}

// FetchTournamentList fetches and maps every tournament. Transport failures
// are returned wrapped with a stack trace.
func (s *Service) FetchTournamentList(ctx context.Context) ([]Tournament, error) {
	s.metrics.IncUpstreamFetch(resourceTournaments)
	raw, err := s.transport.GetTournaments(ctx)
	if err != nil {
		s.metrics.IncUpstreamFetchFailed(resourceTournaments)
		return nil, crerr.Wrapf(err, "fetch tournament list")
	}
	log.Debug("Fetched tournament list", "count", len(raw))
	return MapTournamentList(raw), nil
}

// FetchTournamentByID fetches one tournament. It never returns an error: an
// unknown id and a transport failure both resolve to nil, the latter logged.
func (s *Service) FetchTournamentByID(ctx context.Context, tournamentID int64) (*Tournament, error) {
	s.metrics.IncUpstreamFetch(resourceTournament)
	raw, err := s.transport.GetTournament(ctx, tournamentID)
	if errors.Is(err, statsapi.ErrNotFound) {
		log.Debug("Tournament not found", "tournamentID", tournamentID)
		return nil, nil
	}
	if err != nil {
		s.metrics.IncUpstreamFetchFailed(resourceTournament)
		log.Error("Failed to fetch tournament", "tournamentID", tournamentID, "error", err)
		return nil, nil
	}
	tournament := MapTournamentDetail(raw)
	return &tournament, nil
}
