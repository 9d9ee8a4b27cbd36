package tournament

import (
	"github.com/charmbracelet/log"
	"github.com/mahjong-league/league-stats/internal/league"
	"github.com/mahjong-league/league-stats/internal/statsapi"
)

// MapTournamentDetail converts a wire tournament into its view model, keeping
// the nesting intact. Place points missing from the record are derived from
// the table point; supplied ones are kept.
func MapTournamentDetail(raw statsapi.RawTournament) Tournament {
	summary := make([]SummaryEntry, 0, len(raw.Summary))
	for _, entry := range raw.Summary {
		if len(entry.RoundPoint) != len(raw.Sessions) {
			log.Warn("Round points do not match session count",
				"tournamentID", raw.ID, "playerID", entry.PlayerID,
				"rounds", len(entry.RoundPoint), "sessions", len(raw.Sessions))
		}
		rounds := make([]Points, 0, len(entry.RoundPoint))
		for _, r := range entry.RoundPoint {
			rounds = append(rounds, mapPoints(r))
		}
		summary = append(summary, SummaryEntry{
			PlayerID:       entry.PlayerID,
			PlayerName:     entry.PlayerName,
			TournamentRank: entry.TournamentRank,
			TotalPoint:     mapPoints(entry.TotalPoint),
			RoundPoints:    rounds,
		})
	}

	sessions := make([]Session, 0, len(raw.Sessions))
	for _, s := range raw.Sessions {
		games := make([]Game, 0, len(s.Games))
		for _, g := range s.Games {
			games = append(games, mapGame(g))
		}
		sessions = append(sessions, Session{
			Info:  SessionInfo{ID: s.Info.ID, Name: s.Info.Name},
			Games: games,
		})
	}

	return Tournament{
		ID: raw.ID,
		Info: Info{
			Name:     raw.Info.Name,
			SubName:  raw.Info.SubName,
			Date:     raw.Info.Date,
			Location: raw.Info.Location,
		},
		Summary:  summary,
		Sessions: sessions,
	}
}

// MapTournamentList maps every tournament, keeping order.
func MapTournamentList(raw []statsapi.RawTournament) []Tournament {
	tournaments := make([]Tournament, 0, len(raw))
	for _, r := range raw {
		tournaments = append(tournaments, MapTournamentDetail(r))
	}
	return tournaments
}

func mapGame(raw statsapi.RawGame) Game {
	results := make([]PlayerResult, 0, len(raw.PlayerResults))
	for _, r := range raw.PlayerResults {
		results = append(results, PlayerResult{
			PlayerID:   r.PlayerID,
			PlayerName: r.PlayerName,
			TablePoint: statsapi.FloatValue(r.TablePoint),
			GamePoint:  statsapi.FloatValue(r.GamePoint),
			PlacePoint: league.SeatPlacePoint(r),
		})
	}
	return Game{
		ID:               raw.ID,
		ForfeitGamePoint: statsapi.FloatValue(raw.ForfeitGamePoint),
		PlayerResults:    results,
	}
}

func mapPoints(raw statsapi.RawPoints) Points {
	return Points{
		TablePoint: statsapi.FloatValue(raw.TablePoint),
		GamePoint:  statsapi.FloatValue(raw.GamePoint),
	}
}
