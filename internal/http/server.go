package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/mahjong-league/league-stats/internal/metrics"
	"github.com/mahjong-league/league-stats/internal/store"
)

func NewServer(store store.StatsStore, metricsSvc metrics.Metrics, metricsHandler http.Handler) *Server {
	server := &Server{
		Store:          store,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Router:         chi.NewRouter(),
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	s.Router.Use(middleware.Recoverer)
	s.Router.Use(s.requestMiddleware)
	s.Router.Use(paramsMiddleware)

	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Get("/health", s.HealthCheckHandler())

	s.Router.Route("/api", func(r chi.Router) {
		r.Get("/health", s.HealthCheckHandler())
		r.Get("/players", s.ListPlayersHandler())
		r.Get("/player_stats", s.ListPlayerStatsHandler())
		r.Get("/player_stats/{id}", s.GetPlayerStatHandler())
		r.Get("/tournaments", s.ListTournamentsHandler())
		r.Get("/tournaments/{id}", s.GetTournamentHandler())
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
