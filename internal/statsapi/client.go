package statsapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

const (
	// DefaultBaseURL points at a locally running statistics server.
	DefaultBaseURL = "http://localhost:8080/api"
	// RequestIDHeader carries the per-request id to the server logs.
	RequestIDHeader = "X-Request-ID"

	defaultTimeout = 10 * time.Second
	userAgent      = "LeagueStatsGoClient/1.0"
)

// ClientConfig configures an APIClient. Only BaseURL is normally set; the
// zero value talks to DefaultBaseURL.
type ClientConfig struct {
	HTTPClient *http.Client
	BaseURL    string
	Timeout    time.Duration
}

// APIClient talks to the statistics API over HTTP. Every call is a single
// attempt; timeouts come from the underlying http.Client.
type APIClient struct {
	httpClient *http.Client
	baseURL    string
}

// Ensure APIClient implements the Transport interface.
var _ Transport = (*APIClient)(nil)

// NewClient creates a new statistics API client.
func NewClient(cfg ClientConfig) *APIClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &APIClient{
		httpClient: httpClient,
		baseURL:    baseURL,
	}
}

// BaseURL returns the normalised base URL the client sends requests to.
func (c *APIClient) BaseURL() string {
	return c.baseURL
}

// GetPlayerStats fetches the aggregate statistics of every player.
func (c *APIClient) GetPlayerStats(ctx context.Context) ([]RawPlayerStat, error) {
	var stats []RawPlayerStat
	if err := c.doJSON(ctx, "/player_stats", &stats); err != nil {
		return nil, err
	}
	return stats, nil
}

// GetPlayerStat fetches one player's statistics including the per-game details.
func (c *APIClient) GetPlayerStat(ctx context.Context, playerID int64) (RawPlayerStat, error) {
	var stat RawPlayerStat
	if err := c.doJSON(ctx, fmt.Sprintf("/player_stats/%d", playerID), &stat); err != nil {
		return RawPlayerStat{}, err
	}
	return stat, nil
}

// GetTournaments fetches every tournament record.
func (c *APIClient) GetTournaments(ctx context.Context) ([]RawTournament, error) {
	var tournaments []RawTournament
	if err := c.doJSON(ctx, "/tournaments", &tournaments); err != nil {
		return nil, err
	}
	return tournaments, nil
}

// GetTournament fetches a single tournament record.
func (c *APIClient) GetTournament(ctx context.Context, tournamentID int64) (RawTournament, error) {
	var tournament RawTournament
	if err := c.doJSON(ctx, fmt.Sprintf("/tournaments/%d", tournamentID), &tournament); err != nil {
		return RawTournament{}, err
	}
	return tournament, nil
}

func (c *APIClient) doJSON(ctx context.Context, path string, target any) error {
	url := c.baseURL + path
	requestID := uuid.NewString()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set(RequestIDHeader, requestID)

	log.Debug("Requesting statistics API", "url", url, "request_id", requestID)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		log.Debug("Statistics API has no such record", "url", url, "request_id", requestID)
		return ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		log.Error("Received non-OK HTTP status from statistics API", "status", resp.StatusCode, "body", string(body), "request_id", requestID)
		return &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	if err := sonic.Unmarshal(body, target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
