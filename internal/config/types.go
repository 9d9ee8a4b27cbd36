package config

import "time"

// Config holds all configuration for the application.
type Config struct {
	DBName          string
	Port            string
	LogLevel        string
	Turso           TursoConfig
	StatsAPI        StatsAPIConfig
	PlayerListError string
}

type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}

// StatsAPIConfig locates the statistics API the viewer reads from.
type StatsAPIConfig struct {
	BaseURL string
	Timeout time.Duration
}
