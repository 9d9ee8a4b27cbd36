package main

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mahjong-league/league-stats/internal/config"
	"github.com/mahjong-league/league-stats/internal/database"
	"github.com/mahjong-league/league-stats/internal/fixtures"
	"github.com/mahjong-league/league-stats/internal/store"
)

func main() {
	log.Info("Starting database seeder...")
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %s", err)
	}
	config.SetupLogging(cfg.LogLevel)

	db, teardown, err := database.InitDB(cfg.DBName, cfg.Turso.PrimaryURL, cfg.Turso.AuthToken)
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer teardown()

	tournaments, err := fixtures.Tournaments()
	if err != nil {
		log.Fatalf("Failed to load fixture tournaments: %s", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := store.New(db).UpsertTournaments(ctx, tournaments); err != nil {
		log.Fatalf("Failed to seed tournaments: %s", err)
	}
	log.Info("Seeding complete", "tournaments", len(tournaments))
}
