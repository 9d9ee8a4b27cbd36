package league

import (
	"sort"

	"github.com/mahjong-league/league-stats/internal/statsapi"
)

type standing struct {
	playerID   int64
	playerName string
	tablePoint float64
	gamePoint  float64
	rounds     []roundTotal
}

type roundTotal struct {
	tablePoint float64
	gamePoint  float64
}

// Summarize builds the final ranking of a tournament from its sessions.
// Every entry carries exactly one round point per session; a player who sat
// out a session gets a zero pair for it. Ranking is by total table point,
// then total game point, then player id.
func Summarize(sessions []statsapi.RawSession) []statsapi.RawSummaryEntry {
	byPlayer := make(map[int64]*standing)
	for i, session := range sessions {
		for _, game := range session.Games {
			for _, result := range game.PlayerResults {
				s, ok := byPlayer[result.PlayerID]
				if !ok {
					s = &standing{
						playerID:   result.PlayerID,
						playerName: result.PlayerName,
						rounds:     make([]roundTotal, len(sessions)),
					}
					byPlayer[result.PlayerID] = s
				}
				tp := statsapi.FloatValue(result.TablePoint)
				gp := statsapi.FloatValue(result.GamePoint)
				s.tablePoint += tp
				s.gamePoint += gp
				s.rounds[i].tablePoint += tp
				s.rounds[i].gamePoint += gp
			}
		}
	}

	standings := make([]*standing, 0, len(byPlayer))
	for _, s := range byPlayer {
		standings = append(standings, s)
	}
	sort.Slice(standings, func(i, j int) bool {
		a, b := standings[i], standings[j]
		if a.tablePoint != b.tablePoint {
			return a.tablePoint > b.tablePoint
		}
		if a.gamePoint != b.gamePoint {
			return a.gamePoint > b.gamePoint
		}
		return a.playerID < b.playerID
	})

	summary := make([]statsapi.RawSummaryEntry, 0, len(standings))
	for rank, s := range standings {
		rounds := make([]statsapi.RawPoints, len(s.rounds))
		for i, r := range s.rounds {
			rounds[i] = statsapi.RawPoints{
				TablePoint: statsapi.Float(r.tablePoint),
				GamePoint:  statsapi.Float(r.gamePoint),
			}
		}
		summary = append(summary, statsapi.RawSummaryEntry{
			PlayerID:       s.playerID,
			PlayerName:     s.playerName,
			TournamentRank: rank + 1,
			TotalPoint: statsapi.RawPoints{
				TablePoint: statsapi.Float(s.tablePoint),
				GamePoint:  statsapi.Float(s.gamePoint),
			},
			RoundPoint: rounds,
		})
	}
	return summary
}
