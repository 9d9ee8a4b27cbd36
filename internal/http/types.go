package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mahjong-league/league-stats/internal/metrics"
	"github.com/mahjong-league/league-stats/internal/store"
)

type Server struct {
	Store          store.StatsStore
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Router         *chi.Mux
}

type errorResponse struct {
	Error string `json:"error"`
}
