package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/mahjong-league/league-stats/internal/league"
	"github.com/mahjong-league/league-stats/internal/statsapi"
)

// New creates a new StatsStore.
func New(db *sql.DB) StatsStore {
	return &store{
		db: db,
	}
}

// UpsertTournament writes a tournament with all of its sessions, games and
// results. Sessions, games and results already stored for the tournament are
// replaced, so re-seeding the same record is a no-op.
func (s *store) UpsertTournament(ctx context.Context, tournament statsapi.RawTournament) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := upsertTournament(ctx, tx, tournament); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

// UpsertTournaments writes every tournament in a single transaction.
func (s *store) UpsertTournaments(ctx context.Context, tournaments []statsapi.RawTournament) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	for _, tournament := range tournaments {
		if err := upsertTournament(ctx, tx, tournament); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

func upsertTournament(ctx context.Context, tx *sql.Tx, t statsapi.RawTournament) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO tournaments (id, name, sub_name, date, location)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			sub_name = excluded.sub_name,
			date = excluded.date,
			location = excluded.location;
	`, t.ID, t.Info.Name, t.Info.SubName, t.Info.Date, t.Info.Location)
	if err != nil {
		return fmt.Errorf("upsert tournament %d: %w", t.ID, err)
	}

	// Children are rewritten wholesale; results go first for the foreign keys.
	if _, err := tx.ExecContext(ctx, `
		DELETE FROM game_results WHERE game_id IN (
			SELECT g.id FROM games g JOIN sessions s ON s.id = g.session_id WHERE s.tournament_id = ?
		)`, t.ID); err != nil {
		return fmt.Errorf("clear results of tournament %d: %w", t.ID, err)
	}
	if _, err := tx.ExecContext(ctx, `
		DELETE FROM games WHERE session_id IN (SELECT id FROM sessions WHERE tournament_id = ?)`, t.ID); err != nil {
		return fmt.Errorf("clear games of tournament %d: %w", t.ID, err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM sessions WHERE tournament_id = ?", t.ID); err != nil {
		return fmt.Errorf("clear sessions of tournament %d: %w", t.ID, err)
	}

	playerStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO players (id, name) VALUES (?, ?)
		ON CONFLICT(id) DO UPDATE SET name = excluded.name;
	`)
	if err != nil {
		return err
	}
	defer playerStmt.Close()

	resultStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO game_results (game_id, player_id, seat, table_point, game_point, place_point)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer resultStmt.Close()

	for sessionPos, session := range t.Sessions {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO sessions (id, tournament_id, position, name) VALUES (?, ?, ?, ?)",
			session.Info.ID, t.ID, sessionPos, session.Info.Name); err != nil {
			return fmt.Errorf("insert session %d: %w", session.Info.ID, err)
		}
		for gamePos, game := range session.Games {
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO games (id, session_id, position, forfeit_game_point) VALUES (?, ?, ?, ?)",
				game.ID, session.Info.ID, gamePos, nullFloat(game.ForfeitGamePoint)); err != nil {
				return fmt.Errorf("insert game %d: %w", game.ID, err)
			}
			for seat, result := range game.PlayerResults {
				if _, err := playerStmt.ExecContext(ctx, result.PlayerID, result.PlayerName); err != nil {
					return fmt.Errorf("upsert player %d: %w", result.PlayerID, err)
				}
				if _, err := resultStmt.ExecContext(ctx, game.ID, result.PlayerID, seat,
					nullFloat(result.TablePoint), nullFloat(result.GamePoint), nullFloat(result.PlacePoint)); err != nil {
					return fmt.Errorf("insert result of player %d in game %d: %w", result.PlayerID, game.ID, err)
				}
			}
		}
	}
	log.Debug("Upserted tournament", "tournamentID", t.ID, "sessions", len(t.Sessions))
	return nil
}

// GetTournaments returns every stored tournament, newest first, with its
// ranking computed from the stored games.
func (s *store) GetTournaments(ctx context.Context) ([]statsapi.RawTournament, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadTournaments(ctx, scope{})
}

// GetTournament returns one tournament or statsapi.ErrNotFound.
func (s *store) GetTournament(ctx context.Context, tournamentID int64) (statsapi.RawTournament, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tournaments, err := s.loadTournaments(ctx, scope{tournamentID: tournamentID, single: true})
	if err != nil {
		return statsapi.RawTournament{}, err
	}
	if len(tournaments) == 0 {
		return statsapi.RawTournament{}, statsapi.ErrNotFound
	}
	return tournaments[0], nil
}

// GetPlayers returns the player directory ordered by id.
func (s *store) GetPlayers(ctx context.Context) ([]statsapi.RawPlayer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadPlayers(ctx)
}

// GetPlayerStats returns statistics for every known player. Players without
// a recorded game are listed with empty aggregates.
func (s *store) GetPlayerStats(ctx context.Context) ([]statsapi.RawPlayerStat, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	players, err := s.loadPlayers(ctx)
	if err != nil {
		return nil, err
	}
	tournaments, err := s.loadTournaments(ctx, scope{})
	if err != nil {
		return nil, err
	}

	aggregated := make(map[int64]statsapi.RawPlayerStat)
	for _, stat := range league.AggregatePlayerStats(tournaments) {
		aggregated[stat.PlayerID] = stat
	}
	stats := make([]statsapi.RawPlayerStat, 0, len(players))
	for _, p := range players {
		if stat, ok := aggregated[p.ID]; ok {
			stats = append(stats, stat)
			continue
		}
		stats = append(stats, statsapi.RawPlayerStat{PlayerID: p.ID, PlayerName: p.Name})
	}
	return stats, nil
}

// GetPlayerStat returns one player's statistics including the games they
// played, or statsapi.ErrNotFound for an unknown player.
func (s *store) GetPlayerStat(ctx context.Context, playerID int64) (statsapi.RawPlayerStat, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var name string
	err := s.db.QueryRowContext(ctx, "SELECT name FROM players WHERE id = ?", playerID).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return statsapi.RawPlayerStat{}, statsapi.ErrNotFound
	}
	if err != nil {
		return statsapi.RawPlayerStat{}, err
	}

	tournaments, err := s.loadTournaments(ctx, scope{})
	if err != nil {
		return statsapi.RawPlayerStat{}, err
	}
	stat := statsapi.RawPlayerStat{PlayerID: playerID, PlayerName: name}
	for _, candidate := range league.AggregatePlayerStats(tournaments) {
		if candidate.PlayerID == playerID {
			stat = candidate
			break
		}
	}
	stat.GameDetails = league.PlayerGameDetails(tournaments, playerID)
	return stat, nil
}

// Clear removes all data from the store.
func (s *store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		log.Error("Failed to begin transaction for clearing store", "error", err)
		return
	}
	for _, table := range []string{"game_results", "games", "sessions", "tournaments", "players"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			log.Error("Failed to clear table", "table", table, "error", err)
			tx.Rollback()
			return
		}
	}
	if err := tx.Commit(); err != nil {
		log.Error("Failed to commit transaction for clearing store", "error", err)
	}
}

func (s *store) loadPlayers(ctx context.Context) ([]statsapi.RawPlayer, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, name FROM players ORDER BY id")
	if err != nil {
		log.Error("Failed to query players", "error", err)
		return nil, err
	}
	defer rows.Close()

	players := []statsapi.RawPlayer{}
	for rows.Next() {
		var p statsapi.RawPlayer
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, err
		}
		players = append(players, p)
	}
	return players, rows.Err()
}

// loadTournaments assembles tournaments bottom-up: results, games, sessions,
// then the tournaments themselves.
func (s *store) loadTournaments(ctx context.Context, sc scope) ([]statsapi.RawTournament, error) {
	results, err := s.loadResults(ctx, sc)
	if err != nil {
		return nil, err
	}
	games, err := s.loadGames(ctx, sc, results)
	if err != nil {
		return nil, err
	}
	sessions, err := s.loadSessions(ctx, sc, games)
	if err != nil {
		return nil, err
	}

	where, args := sc.where("id")
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, sub_name, date, location FROM tournaments"+where+" ORDER BY date DESC, id DESC", args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tournaments := []statsapi.RawTournament{}
	for rows.Next() {
		var t statsapi.RawTournament
		if err := rows.Scan(&t.ID, &t.Info.Name, &t.Info.SubName, &t.Info.Date, &t.Info.Location); err != nil {
			return nil, err
		}
		t.Sessions = sessions[t.ID]
		if t.Sessions == nil {
			t.Sessions = []statsapi.RawSession{}
		}
		t.Summary = league.Summarize(t.Sessions)
		tournaments = append(tournaments, t)
	}
	return tournaments, rows.Err()
}

func (s *store) loadResults(ctx context.Context, sc scope) (map[int64][]statsapi.RawPlayerResult, error) {
	where, args := sc.where("s.tournament_id")
	rows, err := s.db.QueryContext(ctx, `
		SELECT r.game_id, r.player_id, p.name, r.table_point, r.game_point, r.place_point
		FROM game_results r
		JOIN players p ON p.id = r.player_id
		JOIN games g ON g.id = r.game_id
		JOIN sessions s ON s.id = g.session_id`+where+`
		ORDER BY r.game_id, r.seat`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := make(map[int64][]statsapi.RawPlayerResult)
	for rows.Next() {
		var (
			gameID                          int64
			r                               statsapi.RawPlayerResult
			tablePoint, gamePoint, placePts sql.NullFloat64
		)
		if err := rows.Scan(&gameID, &r.PlayerID, &r.PlayerName, &tablePoint, &gamePoint, &placePts); err != nil {
			return nil, err
		}
		r.TablePoint = floatPtr(tablePoint)
		r.GamePoint = floatPtr(gamePoint)
		r.PlacePoint = floatPtr(placePts)
		results[gameID] = append(results[gameID], r)
	}
	return results, rows.Err()
}

func (s *store) loadGames(ctx context.Context, sc scope, results map[int64][]statsapi.RawPlayerResult) (map[int64][]statsapi.RawGame, error) {
	where, args := sc.where("s.tournament_id")
	rows, err := s.db.QueryContext(ctx, `
		SELECT g.id, g.session_id, g.forfeit_game_point
		FROM games g
		JOIN sessions s ON s.id = g.session_id`+where+`
		ORDER BY g.session_id, g.position`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	games := make(map[int64][]statsapi.RawGame)
	for rows.Next() {
		var (
			sessionID int64
			g         statsapi.RawGame
			forfeit   sql.NullFloat64
		)
		if err := rows.Scan(&g.ID, &sessionID, &forfeit); err != nil {
			return nil, err
		}
		g.ForfeitGamePoint = floatPtr(forfeit)
		g.PlayerResults = results[g.ID]
		if g.PlayerResults == nil {
			g.PlayerResults = []statsapi.RawPlayerResult{}
		}
		games[sessionID] = append(games[sessionID], g)
	}
	return games, rows.Err()
}

func (s *store) loadSessions(ctx context.Context, sc scope, games map[int64][]statsapi.RawGame) (map[int64][]statsapi.RawSession, error) {
	where, args := sc.where("tournament_id")
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, tournament_id, name FROM sessions"+where+" ORDER BY tournament_id, position", args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessions := make(map[int64][]statsapi.RawSession)
	for rows.Next() {
		var (
			tournamentID int64
			session      statsapi.RawSession
		)
		if err := rows.Scan(&session.Info.ID, &tournamentID, &session.Info.Name); err != nil {
			return nil, err
		}
		session.Games = games[session.Info.ID]
		if session.Games == nil {
			session.Games = []statsapi.RawGame{}
		}
		sessions[tournamentID] = append(sessions[tournamentID], session)
	}
	return sessions, rows.Err()
}

func nullFloat(p *float64) sql.NullFloat64 {
	if p == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *p, Valid: true}
}

func floatPtr(n sql.NullFloat64) *float64 {
	if !n.Valid {
		return nil
	}
	return statsapi.Float(n.Float64)
}
