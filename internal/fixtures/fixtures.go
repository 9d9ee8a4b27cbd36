// Package fixtures ships the pre-season tournaments used for local
// development: the in-memory transport behind the CLI --mock flag and the
// database seeder both start from here.
package fixtures

import (
	_ "embed"
	"fmt"

	sonic "github.com/bytedance/sonic"
	"github.com/mahjong-league/league-stats/internal/league"
	"github.com/mahjong-league/league-stats/internal/statsapi"
)

//go:embed preseason.json
var preseasonJSON []byte

// Tournaments decodes the bundled tournaments, newest first, with their
// ranking summaries filled in. Each call returns a fresh copy.
func Tournaments() ([]statsapi.RawTournament, error) {
	var tournaments []statsapi.RawTournament
	if err := sonic.Unmarshal(preseasonJSON, &tournaments); err != nil {
		return nil, fmt.Errorf("failed to decode fixture tournaments: %w", err)
	}
	for i := range tournaments {
		tournaments[i].Summary = league.Summarize(tournaments[i].Sessions)
	}
	return tournaments, nil
}
