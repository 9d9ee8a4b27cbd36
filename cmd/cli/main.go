package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/mahjong-league/league-stats/internal/config"
	"github.com/mahjong-league/league-stats/internal/fixtures"
	"github.com/mahjong-league/league-stats/internal/metrics"
	"github.com/mahjong-league/league-stats/internal/player"
	"github.com/mahjong-league/league-stats/internal/statsapi"
	"github.com/mahjong-league/league-stats/internal/tournament"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

// app carries what every command needs once the flags are parsed.
type app struct {
	out         io.Writer
	jsonOut     bool
	mock        bool
	baseURL     string
	cfg         config.Config
	players     *player.Service
	tournaments *tournament.Service
}

func newRootCmd() *cobra.Command {
	var (
		host    string
		mock    bool
		jsonOut bool
		a       = &app{}
	)

	rootCmd := &cobra.Command{
		Use:   "league-cli",
		Short: "A CLI to browse mahjong league results and player statistics",
		Long: `A command-line viewer for the league statistics API. Each command
mirrors a page of the league site: home, players, player, results.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			config.SetupLogging(cfg.LogLevel)

			a.out = cmd.OutOrStdout()
			a.jsonOut = jsonOut
			a.mock = mock
			a.cfg = cfg
			a.baseURL = cfg.StatsAPI.BaseURL
			if cmd.Flags().Changed("host") {
				root, err := config.ValidateBaseURL(host)
				if err != nil {
					return err
				}
				a.baseURL = root + "/api"
			}

			var transport statsapi.Transport
			if mock {
				source, err := fixtures.NewSource()
				if err != nil {
					return err
				}
				transport = source
			} else {
				transport = statsapi.NewClient(statsapi.ClientConfig{
					BaseURL: a.baseURL,
					Timeout: cfg.StatsAPI.Timeout,
				})
			}

			// Metrics are collected into a private registry; the CLI never serves them.
			metricsSvc := metrics.NewService(prometheus.NewRegistry())
			a.players = player.NewService(transport, metricsSvc, player.ListErrorPolicy(cfg.PlayerListError))
			a.tournaments = tournament.NewService(transport, metricsSvc)
			log.Debug("CLI initialised", "baseURL", a.baseURL, "mock", mock)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&host, "host", "http://localhost:8080", "The host address of the server (defaults to API_BASE_URL when set)")
	rootCmd.PersistentFlags().BoolVar(&mock, "mock", false, "Use the bundled pre-season data instead of the server")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Print the view model as JSON")

	addCommands(rootCmd, a)
	return rootCmd
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Whoops. There was an error while executing your command '%s'\n", err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
