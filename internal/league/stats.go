package league

import (
	"sort"

	"github.com/mahjong-league/league-stats/internal/statsapi"
)

type tally struct {
	playerName string
	games      int64
	gamePoint  float64
	tablePoint float64
	rankPoint  float64
	places     [4]int64
}

// SeatPlacePoint returns the place point recorded for a seat, deriving it from
// the table point when the record does not carry one.
func SeatPlacePoint(result statsapi.RawPlayerResult) float64 {
	if result.PlacePoint != nil {
		return *result.PlacePoint
	}
	return PlacePoint(statsapi.FloatValue(result.TablePoint))
}

// AggregatePlayerStats rolls every seat of every game up into per-player
// statistics, ordered by player id. Averages and placement percentages are
// rounded to two decimals here; consumers pass them through untouched.
func AggregatePlayerStats(tournaments []statsapi.RawTournament) []statsapi.RawPlayerStat {
	tallies := make(map[int64]*tally)
	for _, tournament := range tournaments {
		for _, session := range tournament.Sessions {
			for _, game := range session.Games {
				for _, result := range game.PlayerResults {
					t, ok := tallies[result.PlayerID]
					if !ok {
						t = &tally{}
						tallies[result.PlayerID] = t
					}
					tp := statsapi.FloatValue(result.TablePoint)
					t.playerName = result.PlayerName
					t.games++
					t.gamePoint += statsapi.FloatValue(result.GamePoint)
					t.tablePoint += tp
					t.rankPoint += SeatPlacePoint(result)
					t.places[PlacementFor(tp)-1]++
				}
			}
		}
	}

	ids := make([]int64, 0, len(tallies))
	for id := range tallies {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	stats := make([]statsapi.RawPlayerStat, 0, len(ids))
	for _, id := range ids {
		stats = append(stats, tallies[id].stat(id))
	}
	return stats
}

func (t *tally) stat(playerID int64) statsapi.RawPlayerStat {
	games := float64(t.games)
	ratio := func(count int64) *float64 {
		return statsapi.Float(round2(float64(count) / games * 100))
	}
	return statsapi.RawPlayerStat{
		PlayerID:         playerID,
		PlayerName:       t.playerName,
		GameCount:        statsapi.Int(t.games),
		TotalGP:          statsapi.Float(t.gamePoint),
		TotalTP:          statsapi.Float(t.tablePoint),
		TotalRP:          statsapi.Float(t.rankPoint),
		FirstPlaceCount:  statsapi.Int(t.places[0]),
		SecondPlaceCount: statsapi.Int(t.places[1]),
		ThirdPlaceCount:  statsapi.Int(t.places[2]),
		FourthPlaceCount: statsapi.Int(t.places[3]),
		AvgGP:            statsapi.Float(round2(t.gamePoint / games)),
		AvgTP:            statsapi.Float(round2(t.tablePoint / games)),
		AvgRP:            statsapi.Float(round2(t.rankPoint / games)),
		FirstPlaceRatio:  ratio(t.places[0]),
		SecondPlaceRatio: ratio(t.places[1]),
		ThirdPlaceRatio:  ratio(t.places[2]),
		FourthPlaceRatio: ratio(t.places[3]),
	}
}

// PlayerGameDetails lists every game the player sat in, in tournament,
// session and game order. Place points are always filled in.
func PlayerGameDetails(tournaments []statsapi.RawTournament, playerID int64) []statsapi.RawGameDetail {
	details := []statsapi.RawGameDetail{}
	for _, tournament := range tournaments {
		for _, session := range tournament.Sessions {
			for _, game := range session.Games {
				if !seated(game, playerID) {
					continue
				}
				players := make([]statsapi.RawGameResult, 0, len(game.PlayerResults))
				for _, result := range game.PlayerResults {
					players = append(players, statsapi.RawGameResult{
						PlayerID:   result.PlayerID,
						PlayerName: result.PlayerName,
						GamePoint:  statsapi.Float(statsapi.FloatValue(result.GamePoint)),
						PlacePoint: statsapi.Float(SeatPlacePoint(result)),
						TablePoint: statsapi.Float(statsapi.FloatValue(result.TablePoint)),
					})
				}
				details = append(details, statsapi.RawGameDetail{
					GameID:             game.ID,
					TournamentID:       tournament.ID,
					TournamentName:     tournament.Info.Name,
					TournamentSubName:  tournament.Info.SubName,
					TournamentLocation: tournament.Info.Location,
					TournamentDate:     tournament.Info.Date,
					SessionName:        session.Info.Name,
					Players:            players,
				})
			}
		}
	}
	return details
}

func seated(game statsapi.RawGame, playerID int64) bool {
	for _, result := range game.PlayerResults {
		if result.PlayerID == playerID {
			return true
		}
	}
	return false
}
