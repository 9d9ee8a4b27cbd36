package statsapi

// RawPlayerStat is one row of the player statistics endpoint. Aggregates are
// nullable on the wire: a player without finished games has no totals yet.
type RawPlayerStat struct {
	PlayerID         int64           `json:"player_id"`
	PlayerName       string          `json:"player_name"`
	GameCount        *int64          `json:"game_count"`
	TotalGP          *float64        `json:"total_gp"`
	TotalTP          *float64        `json:"total_tp"`
	TotalRP          *float64        `json:"total_rp"`
	FirstPlaceCount  *int64          `json:"first_place_count"`
	SecondPlaceCount *int64          `json:"second_place_count"`
	ThirdPlaceCount  *int64          `json:"third_place_count"`
	FourthPlaceCount *int64          `json:"fourth_place_count"`
	AvgGP            *float64        `json:"avg_gp"`
	AvgTP            *float64        `json:"avg_tp"`
	AvgRP            *float64        `json:"avg_rp"`
	FirstPlaceRatio  *float64        `json:"first_place_ratio"`
	SecondPlaceRatio *float64        `json:"second_place_ratio"`
	ThirdPlaceRatio  *float64        `json:"third_place_ratio"`
	FourthPlaceRatio *float64        `json:"fourth_place_ratio"`
	GameDetails      []RawGameDetail `json:"game_details,omitempty"`
}

// RawGameDetail is one game a player took part in, with its tournament context.
type RawGameDetail struct {
	GameID             int64           `json:"game_id"`
	TournamentID       int64           `json:"tournament_id"`
	TournamentName     string          `json:"tournament_name"`
	TournamentSubName  string          `json:"tournament_sub_name"`
	TournamentLocation string          `json:"tournament_location"`
	TournamentDate     string          `json:"tournament_date"`
	SessionName        string          `json:"session_name"`
	Players            []RawGameResult `json:"players"`
}

// RawGameResult is a seat result inside a RawGameDetail.
type RawGameResult struct {
	PlayerID   int64    `json:"player_id"`
	PlayerName string   `json:"player_name"`
	GamePoint  *float64 `json:"game_point"`
	PlacePoint *float64 `json:"place_point"`
	TablePoint *float64 `json:"table_point"`
}

// RawPlayer is an entry of the plain player directory.
type RawPlayer struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// RawTournament is the tournament record as served by the statistics API.
type RawTournament struct {
	ID       int64             `json:"id"`
	Info     RawTournamentInfo `json:"info"`
	Summary  []RawSummaryEntry `json:"summary"`
	Sessions []RawSession      `json:"sessions"`
}

type RawTournamentInfo struct {
	Name     string `json:"name"`
	SubName  string `json:"sub_name"`
	Date     string `json:"date"`
	Location string `json:"location"`
}

// RawSummaryEntry is one line of the final ranking. RoundPoint holds one entry
// per session, in session order.
type RawSummaryEntry struct {
	PlayerID       int64       `json:"player_id"`
	PlayerName     string      `json:"player_name"`
	TournamentRank int         `json:"tournament_rank"`
	TotalPoint     RawPoints   `json:"total_point"`
	RoundPoint     []RawPoints `json:"round_point"`
}

type RawPoints struct {
	TablePoint *float64 `json:"table_point"`
	GamePoint  *float64 `json:"game_point"`
}

type RawSession struct {
	Info  RawSessionInfo `json:"info"`
	Games []RawGame      `json:"games"`
}

type RawSessionInfo struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type RawGame struct {
	ID               int64             `json:"id"`
	ForfeitGamePoint *float64          `json:"forfeit_game_point"`
	PlayerResults    []RawPlayerResult `json:"player_results"`
}

// RawPlayerResult is one seat of a game. PlacePoint is only present on
// schemas that compute it upstream.
type RawPlayerResult struct {
	PlayerID   int64    `json:"player_id"`
	PlayerName string   `json:"player_name"`
	TablePoint *float64 `json:"table_point"`
	GamePoint  *float64 `json:"game_point"`
	PlacePoint *float64 `json:"place_point,omitempty"`
}

// Float returns a pointer to v. Handy for building wire records.
func Float(v float64) *float64 {
	return &v
}

// Int returns a pointer to v.
func Int(v int64) *int64 {
	return &v
}

// FloatValue dereferences p, defaulting to zero.
func FloatValue(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

// IntValue dereferences p, defaulting to zero.
func IntValue(p *int64) int64 {
	if p == nil {
		return 0
	}
	return *p
}
