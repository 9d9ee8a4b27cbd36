package tournament

import (
	"testing"

	"github.com/mahjong-league/league-stats/internal/statsapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func preseason() statsapi.RawTournament {
	return statsapi.RawTournament{
		ID: 1,
		Info: statsapi.RawTournamentInfo{
			Name:     "第1回",
			SubName:  "Pre-season",
			Date:     "2021-03-28",
			Location: "雀荘",
		},
		Summary: []statsapi.RawSummaryEntry{
			{
				PlayerID:       1,
				PlayerName:     "Player 1",
				TournamentRank: 1,
				TotalPoint:     statsapi.RawPoints{TablePoint: statsapi.Float(4), GamePoint: statsapi.Float(245)},
				RoundPoint: []statsapi.RawPoints{
					{TablePoint: statsapi.Float(4), GamePoint: statsapi.Float(245)},
				},
			},
		},
		Sessions: []statsapi.RawSession{
			{
				Info: statsapi.RawSessionInfo{ID: 1, Name: "1回戦"},
				Games: []statsapi.RawGame{
					{
						ID: 1,
						PlayerResults: []statsapi.RawPlayerResult{
							{PlayerID: 1, PlayerName: "Player 1", TablePoint: statsapi.Float(4), GamePoint: statsapi.Float(245)},
							{PlayerID: 2, PlayerName: "Player 2", TablePoint: statsapi.Float(1.5), GamePoint: statsapi.Float(-40)},
							{PlayerID: 3, PlayerName: "Player 3", TablePoint: statsapi.Float(3), GamePoint: statsapi.Float(20), PlacePoint: statsapi.Float(9)},
							{PlayerID: 4, PlayerName: "Player 4", TablePoint: statsapi.Float(1.5), GamePoint: statsapi.Float(-225)},
						},
					},
				},
			},
		},
	}
}

func TestMapTournamentDetail(t *testing.T) {
	t.Run("renames info and derives place points", func(t *testing.T) {
		tournament := MapTournamentDetail(preseason())

		assert.Equal(t, int64(1), tournament.ID)
		assert.Equal(t, "Pre-season", tournament.Info.SubName)
		assert.Equal(t, "2021-03-28", tournament.Info.Date)

		require.Len(t, tournament.Sessions, 1)
		assert.Equal(t, "1回戦", tournament.Sessions[0].Info.Name)
		require.Len(t, tournament.Sessions[0].Games, 1)
		results := tournament.Sessions[0].Games[0].PlayerResults
		require.Len(t, results, 4)

		assert.Equal(t, 4.0, results[0].TablePoint)
		assert.Equal(t, 245.0, results[0].GamePoint)
		assert.Equal(t, 3.0, results[0].PlacePoint)
		assert.Equal(t, -2.0, results[1].PlacePoint)
		assert.Equal(t, 9.0, results[2].PlacePoint, "supplied place point is kept")
		assert.Equal(t, -2.0, results[3].PlacePoint)
	})

	t.Run("summary keeps one round point per session", func(t *testing.T) {
		tournament := MapTournamentDetail(preseason())

		require.Len(t, tournament.Summary, 1)
		entry := tournament.Summary[0]
		assert.Equal(t, 1, entry.TournamentRank)
		assert.Equal(t, Points{TablePoint: 4, GamePoint: 245}, entry.TotalPoint)
		assert.Len(t, entry.RoundPoints, len(tournament.Sessions))
	})

	t.Run("mismatched round points are mapped as is", func(t *testing.T) {
		raw := preseason()
		raw.Summary[0].RoundPoint = append(raw.Summary[0].RoundPoint, statsapi.RawPoints{})

		tournament := MapTournamentDetail(raw)

		assert.Len(t, tournament.Summary[0].RoundPoints, 2)
	})

	t.Run("absent numbers default to zero", func(t *testing.T) {
		raw := statsapi.RawTournament{
			ID: 5,
			Sessions: []statsapi.RawSession{{
				Games: []statsapi.RawGame{{
					ID:            3,
					PlayerResults: []statsapi.RawPlayerResult{{PlayerID: 8}},
				}},
			}},
		}

		tournament := MapTournamentDetail(raw)

		result := tournament.Sessions[0].Games[0].PlayerResults[0]
		assert.Equal(t, 0.0, result.TablePoint)
		assert.Equal(t, 0.0, result.GamePoint)
		assert.Equal(t, -5.0, result.PlacePoint)
		assert.Equal(t, 0.0, tournament.Sessions[0].Games[0].ForfeitGamePoint)
		assert.NotNil(t, tournament.Summary)
	})
}

func TestMapTournamentList(t *testing.T) {
	t.Run("empty in, empty out", func(t *testing.T) {
		tournaments := MapTournamentList(nil)
		assert.NotNil(t, tournaments)
		assert.Empty(t, tournaments)
	})

	t.Run("keeps order", func(t *testing.T) {
		second := preseason()
		second.ID = 2
		tournaments := MapTournamentList([]statsapi.RawTournament{second, preseason()})

		require.Len(t, tournaments, 2)
		assert.Equal(t, int64(2), tournaments[0].ID)
		assert.Equal(t, int64(1), tournaments[1].ID)
	})
}
