package player

// Stat is a player's aggregate performance across every recorded game, shaped
// for display. Every numeric field is always set; missing values are zero.
type Stat struct {
	ID                    int64   `json:"id"`
	Name                  string  `json:"name"`
	GameCount             int64   `json:"gameCount"`
	GPTotal               float64 `json:"gpTotal"`
	TPTotal               float64 `json:"tpTotal"`
	RPTotal               float64 `json:"rpTotal"`
	FirstPlaceCount       int64   `json:"firstPlaceCount"`
	SecondPlaceCount      int64   `json:"secondPlaceCount"`
	ThirdPlaceCount       int64   `json:"thirdPlaceCount"`
	FourthPlaceCount      int64   `json:"fourthPlaceCount"`
	GPAvg                 float64 `json:"gpAvg"`
	TPAvg                 float64 `json:"tpAvg"`
	RPAvg                 float64 `json:"rpAvg"`
	FirstPlacePercentage  float64 `json:"firstPlacePercentage"`
	SecondPlacePercentage float64 `json:"secondPlacePercentage"`
	ThirdPlacePercentage  float64 `json:"thirdPlacePercentage"`
	FourthPlacePercentage float64 `json:"fourthPlacePercentage"`
}

// WithGames is a Stat together with the games behind it.
type WithGames struct {
	Stat
	GameDetails []GameDetail `json:"gameDetails"`
}

// GameDetail is one game the player took part in.
type GameDetail struct {
	GameID             int64        `json:"gameId"`
	TournamentID       int64        `json:"tournamentId"`
	TournamentName     string       `json:"tournamentName"`
	TournamentSubName  string       `json:"tournamentSubName"`
	TournamentLocation string       `json:"tournamentLocation"`
	TournamentDate     string       `json:"tournamentDate"`
	SessionName        string       `json:"sessionName"`
	Players            []GameResult `json:"players"`
}

// GameResult is one seat of a GameDetail.
type GameResult struct {
	PlayerID   int64   `json:"playerId"`
	PlayerName string  `json:"playerName"`
	GamePoint  float64 `json:"gamePoint"`
	PlacePoint float64 `json:"placePoint"`
	TablePoint float64 `json:"tablePoint"`
}

// ListErrorPolicy decides what FetchPlayerList does when the transport fails.
type ListErrorPolicy string

const (
	// ListErrorPropagate returns the transport error to the caller.
	ListErrorPropagate ListErrorPolicy = "propagate"
	// ListErrorEmpty logs the failure and resolves to an empty list.
	ListErrorEmpty ListErrorPolicy = "empty"
)
