package main

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	sonic "github.com/bytedance/sonic"
	"github.com/spf13/cobra"
)

func addCommands(rootCmd *cobra.Command, a *app) {
	rootCmd.AddCommand(
		homeCmd(a),
		playersCmd(a),
		playerCmd(a),
		resultsCmd(a),
		tournamentCmd(a),
		healthCmd(a),
	)
}

func homeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "home",
		Short: "Show the latest tournament and the current leaders",
		RunE: func(cmd *cobra.Command, args []string) error {
			tournaments, err := a.tournaments.FetchTournamentList(cmd.Context())
			if err != nil {
				return err
			}
			stats, err := a.players.FetchPlayerList(cmd.Context())
			if err != nil {
				return err
			}
			if a.jsonOut {
				return a.printJSON(homeView{Tournaments: tournaments, Players: stats})
			}
			return renderHome(a.out, tournaments, stats)
		},
	}
}

func playersCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "players",
		Short: "List every player's statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := a.players.FetchPlayerList(cmd.Context())
			if err != nil {
				return err
			}
			if a.jsonOut {
				return a.printJSON(stats)
			}
			return renderPlayerList(a.out, stats)
		},
	}
}

func playerCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "player <id>",
		Short: "Show one player's statistics and games",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			playerID, err := parseID(args[0])
			if err != nil {
				return err
			}
			p, err := a.players.FetchPlayerByID(cmd.Context(), playerID)
			if err != nil {
				return err
			}
			if p == nil {
				return fmt.Errorf("player %d not found", playerID)
			}
			if a.jsonOut {
				return a.printJSON(p)
			}
			return renderPlayer(a.out, *p)
		},
	}
}

func resultsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "results",
		Short: "List tournament results, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			tournaments, err := a.tournaments.FetchTournamentList(cmd.Context())
			if err != nil {
				return err
			}
			if a.jsonOut {
				return a.printJSON(tournaments)
			}
			return renderResults(a.out, tournaments)
		},
	}
}

func tournamentCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tournament <id>",
		Short: "Show one tournament with every session and game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tournamentID, err := parseID(args[0])
			if err != nil {
				return err
			}
			t, _ := a.tournaments.FetchTournamentByID(cmd.Context(), tournamentID)
			if t == nil {
				return fmt.Errorf("tournament %d not available", tournamentID)
			}
			if a.jsonOut {
				return a.printJSON(t)
			}
			return renderTournament(a.out, *t)
		},
	}
}

func healthCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check the health of the server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.mock {
				fmt.Fprintln(a.out, "Using bundled data: OK!")
				return nil
			}
			return a.performGetRequest(a.baseURL + "/health")
		},
	}
}

func (a *app) performGetRequest(url string) error {
	fmt.Fprintf(a.out, "Making request to %s\n", url)

	client := &http.Client{Timeout: a.cfg.StatsAPI.Timeout}
	resp, err := client.Get(url)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Fprintf(a.out, "Status Code: %d\n", resp.StatusCode)
	fmt.Fprintln(a.out, "Response Body:")
	fmt.Fprintln(a.out, string(body))
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server is unhealthy: status %d", resp.StatusCode)
	}
	return nil
}

func (a *app) printJSON(v any) error {
	body, err := sonic.ConfigDefault.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	_, err = fmt.Fprintln(a.out, string(body))
	return err
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}
