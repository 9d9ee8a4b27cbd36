package config

import (
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	crerr "github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
)

const (
	DefaultPort       = "8080"
	DefaultDBName     = "league.db"
	DefaultBaseURL    = "http://localhost:8080/api"
	DefaultHTTPTimeout = 10 * time.Second
)

// Load reads configuration from environment variables and .env file.
// Every value has a default; malformed values are reported as errors.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, reading from environment variables")
	}

	getEnv := func(key, fallback string) string {
		if value, ok := os.LookupEnv(key); ok && strings.TrimSpace(value) != "" {
			return strings.TrimSpace(value)
		}
		return fallback
	}

	baseURL, err := ValidateBaseURL(getEnv("API_BASE_URL", DefaultBaseURL))
	if err != nil {
		return Config{}, err
	}

	timeout := DefaultHTTPTimeout
	if raw := getEnv("HTTP_TIMEOUT", ""); raw != "" {
		timeout, err = time.ParseDuration(raw)
		if err != nil {
			return Config{}, crerr.Wrapf(err, "invalid HTTP_TIMEOUT %q", raw)
		}
		if timeout <= 0 {
			return Config{}, crerr.Newf("HTTP_TIMEOUT must be positive, got %s", raw)
		}
	}

	cfg := Config{
		DBName:   getEnv("DB_NAME", DefaultDBName),
		Port:     getEnv("PORT", DefaultPort),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Turso: TursoConfig{
			PrimaryURL: getEnv("TURSO_PRIMARY_URL", ""),
			AuthToken:  getEnv("TURSO_AUTH_TOKEN", ""),
		},
		StatsAPI: StatsAPIConfig{
			BaseURL: baseURL,
			Timeout: timeout,
		},
		PlayerListError: getEnv("PLAYER_LIST_ERROR_POLICY", "propagate"),
	}
	return cfg, nil
}

// ValidateBaseURL checks that raw is an absolute http(s) URL and returns it
// without a trailing slash.
func ValidateBaseURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", crerr.Wrapf(err, "invalid API_BASE_URL %q", raw)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", crerr.Newf("API_BASE_URL must use http or https, got %q", raw)
	}
	if u.Host == "" {
		return "", crerr.Newf("API_BASE_URL has no host: %q", raw)
	}
	return strings.TrimRight(raw, "/"), nil
}

// SetupLogging applies the configured level to the default logger. Unknown
// levels leave the logger at info.
func SetupLogging(level string) {
	lvl, err := log.ParseLevel(strings.ToLower(level))
	if err != nil {
		log.Warn("Unknown log level, using info", "level", level)
		lvl = log.InfoLevel
	}
	log.SetLevel(lvl)
}
