package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	sonic "github.com/bytedance/sonic"
	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/mahjong-league/league-stats/internal/statsapi"
)

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

// ListPlayersHandler serves the player directory.
func (s *Server) ListPlayersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		players, err := s.Store.GetPlayers(r.Context())
		if err != nil {
			log.Error("Failed to get players from store", "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to get players")
			return
		}
		writeJSON(w, http.StatusOK, players)
	}
}

func (s *Server) ListPlayerStatsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := s.Store.GetPlayerStats(r.Context())
		if err != nil {
			log.Error("Failed to get player stats from store", "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to get player stats")
			return
		}
		writeJSON(w, http.StatusOK, stats)
	}
}

// GetPlayerStatHandler serves one player's statistics with game details.
func (s *Server) GetPlayerStatHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := parseID(w, r)
		if !ok {
			return
		}
		stat, err := s.Store.GetPlayerStat(r.Context(), playerID)
		if errors.Is(err, statsapi.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Player not found")
			return
		}
		if err != nil {
			log.Error("Failed to get player stat from store", "playerID", playerID, "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to get player stat")
			return
		}
		writeJSON(w, http.StatusOK, stat)
	}
}

func (s *Server) ListTournamentsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tournaments, err := s.Store.GetTournaments(r.Context())
		if err != nil {
			log.Error("Failed to get tournaments from store", "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to get tournaments")
			return
		}
		writeJSON(w, http.StatusOK, tournaments)
	}
}

func (s *Server) GetTournamentHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tournamentID, ok := parseID(w, r)
		if !ok {
			return
		}
		tournament, err := s.Store.GetTournament(r.Context(), tournamentID)
		if errors.Is(err, statsapi.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Tournament not found")
			return
		}
		if err != nil {
			log.Error("Failed to get tournament from store", "tournamentID", tournamentID, "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to get tournament")
			return
		}
		writeJSON(w, http.StatusOK, tournament)
	}
}

// parseID reads the {id} path parameter, answering 400 when it is not a
// positive integer.
func parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	idParam := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil || id <= 0 {
		log.Warn("Invalid id parameter", "id", idParam)
		writeError(w, http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := sonic.Marshal(v)
	if err != nil {
		log.Error("Failed to encode response", "error", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		log.Error("Failed to write response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
