package tournament

// Tournament is one completed event shaped for display.
type Tournament struct {
	ID       int64          `json:"id"`
	Info     Info           `json:"info"`
	Summary  []SummaryEntry `json:"summary"`
	Sessions []Session      `json:"sessions"`
}

type Info struct {
	Name     string `json:"name"`
	SubName  string `json:"subName"`
	Date     string `json:"date"`
	Location string `json:"location"`
}

// SummaryEntry is one line of the final ranking. RoundPoints is in session
// order and has one entry per session.
type SummaryEntry struct {
	PlayerID       int64    `json:"playerId"`
	PlayerName     string   `json:"playerName"`
	TournamentRank int      `json:"tournamentRank"`
	TotalPoint     Points   `json:"totalPoint"`
	RoundPoints    []Points `json:"roundPoint"`
}

type Points struct {
	TablePoint float64 `json:"tablePoint"`
	GamePoint  float64 `json:"gamePoint"`
}

type Session struct {
	Info  SessionInfo `json:"info"`
	Games []Game      `json:"games"`
}

type SessionInfo struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Game struct {
	ID               int64          `json:"id"`
	ForfeitGamePoint float64        `json:"forfeitGamePoint"`
	PlayerResults    []PlayerResult `json:"playerResults"`
}

type PlayerResult struct {
	PlayerID   int64   `json:"playerId"`
	PlayerName string  `json:"playerName"`
	TablePoint float64 `json:"tablePoint"`
	GamePoint  float64 `json:"gamePoint"`
	PlacePoint float64 `json:"placePoint"`
}
