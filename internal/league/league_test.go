package league

import (
	"testing"

	"github.com/mahjong-league/league-stats/internal/statsapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seat(playerID int64, name string, tablePoint, gamePoint float64) statsapi.RawPlayerResult {
	return statsapi.RawPlayerResult{
		PlayerID:   playerID,
		PlayerName: name,
		TablePoint: statsapi.Float(tablePoint),
		GamePoint:  statsapi.Float(gamePoint),
	}
}

func TestPlacePoint(t *testing.T) {
	tests := []struct {
		tablePoint float64
		want       float64
	}{
		{4, 3},
		{3, 1},
		{2, -1},
		{1, -3},
		{1.5, -2},
		{2.5, 0},
		{0, -5},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PlacePoint(tt.tablePoint), "table point %v", tt.tablePoint)
	}
}

func TestPlacementFor(t *testing.T) {
	assert.Equal(t, FirstPlace, PlacementFor(4))
	assert.Equal(t, SecondPlace, PlacementFor(3))
	assert.Equal(t, SecondPlace, PlacementFor(3.5))
	assert.Equal(t, ThirdPlace, PlacementFor(2.5))
	assert.Equal(t, ThirdPlace, PlacementFor(2))
	assert.Equal(t, FourthPlace, PlacementFor(1.5))
	assert.Equal(t, FourthPlace, PlacementFor(1))
}

func TestSummarize(t *testing.T) {
	sessions := []statsapi.RawSession{
		{
			Info: statsapi.RawSessionInfo{ID: 1, Name: "Session 1"},
			Games: []statsapi.RawGame{{
				ID: 1,
				PlayerResults: []statsapi.RawPlayerResult{
					seat(1, "A", 4, 200), seat(2, "B", 3, 50), seat(3, "C", 2, -100), seat(4, "D", 1, -150),
				},
			}},
		},
		{
			Info: statsapi.RawSessionInfo{ID: 2, Name: "Session 2"},
			Games: []statsapi.RawGame{{
				ID: 2,
				PlayerResults: []statsapi.RawPlayerResult{
					seat(1, "A", 1, -80), seat(2, "B", 4, 120), seat(3, "C", 2.5, 0), seat(5, "E", 2.5, 0),
				},
			}},
		},
	}

	summary := Summarize(sessions)
	require.Len(t, summary, 5)

	t.Run("ordered by table point then game point", func(t *testing.T) {
		ids := make([]int64, len(summary))
		for i, entry := range summary {
			ids[i] = entry.PlayerID
			assert.Equal(t, i+1, entry.TournamentRank)
		}
		assert.Equal(t, []int64{2, 1, 3, 5, 4}, ids)
	})

	t.Run("one round point per session", func(t *testing.T) {
		for _, entry := range summary {
			assert.Len(t, entry.RoundPoint, len(sessions))
		}
		e := summary[3]
		assert.Equal(t, int64(5), e.PlayerID)
		assert.Equal(t, 0.0, *e.RoundPoint[0].TablePoint, "sat out the first session")
		assert.Equal(t, 2.5, *e.RoundPoint[1].TablePoint)
	})

	t.Run("totals", func(t *testing.T) {
		assert.Equal(t, 7.0, *summary[0].TotalPoint.TablePoint)
		assert.Equal(t, 170.0, *summary[0].TotalPoint.GamePoint)
		assert.Equal(t, 4.5, *summary[2].TotalPoint.TablePoint)
	})

	t.Run("empty tournament", func(t *testing.T) {
		assert.Empty(t, Summarize(nil))
	})
}

func TestAggregatePlayerStats(t *testing.T) {
	tournaments := []statsapi.RawTournament{{
		ID: 1,
		Sessions: []statsapi.RawSession{{
			Games: []statsapi.RawGame{
				{ID: 1, PlayerResults: []statsapi.RawPlayerResult{
					seat(1, "A", 4, 245), seat(2, "B", 3, -19), seat(3, "C", 1.5, -104), seat(4, "D", 1.5, -122),
				}},
				{ID: 2, PlayerResults: []statsapi.RawPlayerResult{
					seat(1, "A", 2, -10), seat(2, "B", 4, 90), seat(3, "C", 3, 20), seat(4, "D", 1, -100),
				}},
				{ID: 3, PlayerResults: []statsapi.RawPlayerResult{
					seat(1, "A", 1, -60), seat(2, "B", 3, 10),
					{PlayerID: 3, PlayerName: "C", TablePoint: statsapi.Float(4), GamePoint: statsapi.Float(70), PlacePoint: statsapi.Float(10)},
					seat(4, "D", 2, -20),
				}},
			},
		}},
	}}

	stats := AggregatePlayerStats(tournaments)
	require.Len(t, stats, 4)

	a := stats[0]
	assert.Equal(t, int64(1), a.PlayerID)
	assert.Equal(t, int64(3), *a.GameCount)
	assert.Equal(t, 175.0, *a.TotalGP)
	assert.Equal(t, 7.0, *a.TotalTP)
	assert.Equal(t, -1.0, *a.TotalRP)
	assert.Equal(t, int64(1), *a.FirstPlaceCount)
	assert.Equal(t, int64(0), *a.SecondPlaceCount)
	assert.Equal(t, int64(1), *a.ThirdPlaceCount)
	assert.Equal(t, int64(1), *a.FourthPlaceCount)
	assert.Equal(t, 58.33, *a.AvgGP)
	assert.Equal(t, 2.33, *a.AvgTP)
	assert.Equal(t, -0.33, *a.AvgRP)
	assert.Equal(t, 33.33, *a.FirstPlaceRatio)
	assert.Equal(t, 0.0, *a.SecondPlaceRatio)

	c := stats[2]
	assert.Equal(t, 8.5, *c.TotalTP)
	assert.Equal(t, -2.0+1+10, *c.TotalRP, "an upstream place point is used as is")
	assert.Equal(t, int64(1), *c.FourthPlaceCount, "a shared 1.5 counts as fourth")
}

func TestPlayerGameDetails(t *testing.T) {
	tournaments := []statsapi.RawTournament{{
		ID:   7,
		Info: statsapi.RawTournamentInfo{Name: "Round 1", SubName: "Pre-season", Date: "2021-03-28", Location: "Takadanobaba"},
		Sessions: []statsapi.RawSession{{
			Info: statsapi.RawSessionInfo{ID: 1, Name: "Session 1"},
			Games: []statsapi.RawGame{
				{ID: 1, PlayerResults: []statsapi.RawPlayerResult{seat(1, "A", 4, 245), seat(2, "B", 3, -19)}},
				{ID: 2, PlayerResults: []statsapi.RawPlayerResult{seat(3, "C", 4, 100), seat(4, "D", 1, -100)}},
			},
		}},
	}}

	details := PlayerGameDetails(tournaments, 2)
	require.Len(t, details, 1)
	d := details[0]
	assert.Equal(t, int64(1), d.GameID)
	assert.Equal(t, int64(7), d.TournamentID)
	assert.Equal(t, "Pre-season", d.TournamentSubName)
	assert.Equal(t, "Session 1", d.SessionName)
	require.Len(t, d.Players, 2)
	assert.Equal(t, 3.0, *d.Players[0].PlacePoint)
	assert.Equal(t, 1.0, *d.Players[1].PlacePoint)

	assert.Empty(t, PlayerGameDetails(tournaments, 99))
	assert.NotNil(t, PlayerGameDetails(tournaments, 99))
}
