package player

import "github.com/mahjong-league/league-stats/internal/statsapi"

// MapPlayer converts one wire record into a Stat. Absent aggregates become
// zero; percentages are passed through as the API computed them.
func MapPlayer(raw statsapi.RawPlayerStat) Stat {
	return Stat{
		ID:                    raw.PlayerID,
		Name:                  raw.PlayerName,
		GameCount:             statsapi.IntValue(raw.GameCount),
		GPTotal:               statsapi.FloatValue(raw.TotalGP),
		TPTotal:               statsapi.FloatValue(raw.TotalTP),
		RPTotal:               statsapi.FloatValue(raw.TotalRP),
		FirstPlaceCount:       statsapi.IntValue(raw.FirstPlaceCount),
		SecondPlaceCount:      statsapi.IntValue(raw.SecondPlaceCount),
		ThirdPlaceCount:       statsapi.IntValue(raw.ThirdPlaceCount),
		FourthPlaceCount:      statsapi.IntValue(raw.FourthPlaceCount),
		GPAvg:                 statsapi.FloatValue(raw.AvgGP),
		TPAvg:                 statsapi.FloatValue(raw.AvgTP),
		RPAvg:                 statsapi.FloatValue(raw.AvgRP),
		FirstPlacePercentage:  statsapi.FloatValue(raw.FirstPlaceRatio),
		SecondPlacePercentage: statsapi.FloatValue(raw.SecondPlaceRatio),
		ThirdPlacePercentage:  statsapi.FloatValue(raw.ThirdPlaceRatio),
		FourthPlacePercentage: statsapi.FloatValue(raw.FourthPlaceRatio),
	}
}

// MapPlayerList maps every record, keeping order and length.
func MapPlayerList(raw []statsapi.RawPlayerStat) []Stat {
	stats := make([]Stat, 0, len(raw))
	for _, r := range raw {
		stats = append(stats, MapPlayer(r))
	}
	return stats
}

// MapPlayerWithDetail maps a record and its per-game detail block. A record
// without details yields an empty GameDetails slice.
func MapPlayerWithDetail(raw statsapi.RawPlayerStat) WithGames {
	details := make([]GameDetail, 0, len(raw.GameDetails))
	for _, d := range raw.GameDetails {
		players := make([]GameResult, 0, len(d.Players))
		for _, p := range d.Players {
			players = append(players, GameResult{
				PlayerID:   p.PlayerID,
				PlayerName: p.PlayerName,
				GamePoint:  statsapi.FloatValue(p.GamePoint),
				PlacePoint: statsapi.FloatValue(p.PlacePoint),
				TablePoint: statsapi.FloatValue(p.TablePoint),
			})
		}
		details = append(details, GameDetail{
			GameID:             d.GameID,
			TournamentID:       d.TournamentID,
			TournamentName:     d.TournamentName,
			TournamentSubName:  d.TournamentSubName,
			TournamentLocation: d.TournamentLocation,
			TournamentDate:     d.TournamentDate,
			SessionName:        d.SessionName,
			Players:            players,
		})
	}
	return WithGames{
		Stat:        MapPlayer(raw),
		GameDetails: details,
	}
}
