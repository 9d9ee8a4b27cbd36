package main

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/mahjong-league/league-stats/internal/player"
	"github.com/mahjong-league/league-stats/internal/tournament"
)

const leaderCount = 5

type homeView struct {
	Tournaments []tournament.Tournament `json:"tournaments"`
	Players     []player.Stat           `json:"players"`
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func point(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func percent(v float64) string {
	return fmt.Sprintf("%.2f%%", v)
}

func renderHome(w io.Writer, tournaments []tournament.Tournament, stats []player.Stat) error {
	if len(tournaments) == 0 {
		fmt.Fprintln(w, "No tournaments yet.")
	} else {
		latest := tournaments[0]
		fmt.Fprintf(w, "Latest tournament: %s\n", heading(latest.Info))
		if err := renderRanking(w, latest, false); err != nil {
			return err
		}
	}
	fmt.Fprintln(w)

	leaders := make([]player.Stat, len(stats))
	copy(leaders, stats)
	sort.SliceStable(leaders, func(i, j int) bool {
		return leaders[i].TPTotal > leaders[j].TPTotal
	})
	if len(leaders) > leaderCount {
		leaders = leaders[:leaderCount]
	}
	fmt.Fprintln(w, "Leaders by table point:")
	tw := newTable(w)
	fmt.Fprintln(tw, "#\tPLAYER\tGAMES\tTP\tGP")
	for i, s := range leaders {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t%s\n", i+1, s.Name, s.GameCount, point(s.TPTotal), point(s.GPTotal))
	}
	return tw.Flush()
}

func renderPlayerList(w io.Writer, stats []player.Stat) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tPLAYER\tGAMES\tTP\tGP\tRP\tAVG TP\tAVG GP\t1ST\t2ND\t3RD\t4TH")
	for _, s := range stats {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			s.ID, s.Name, s.GameCount,
			point(s.TPTotal), point(s.GPTotal), point(s.RPTotal),
			point(s.TPAvg), point(s.GPAvg),
			percent(s.FirstPlacePercentage), percent(s.SecondPlacePercentage),
			percent(s.ThirdPlacePercentage), percent(s.FourthPlacePercentage))
	}
	return tw.Flush()
}

func renderPlayer(w io.Writer, p player.WithGames) error {
	fmt.Fprintf(w, "%s (#%d)\n", p.Name, p.ID)
	fmt.Fprintf(w, "Games: %d  TP: %s  GP: %s  RP: %s\n", p.GameCount, point(p.TPTotal), point(p.GPTotal), point(p.RPTotal))
	fmt.Fprintf(w, "Average TP: %s  GP: %s  RP: %s\n", point(p.TPAvg), point(p.GPAvg), point(p.RPAvg))
	fmt.Fprintf(w, "Places: 1st %d (%s)  2nd %d (%s)  3rd %d (%s)  4th %d (%s)\n\n",
		p.FirstPlaceCount, percent(p.FirstPlacePercentage),
		p.SecondPlaceCount, percent(p.SecondPlacePercentage),
		p.ThirdPlaceCount, percent(p.ThirdPlacePercentage),
		p.FourthPlaceCount, percent(p.FourthPlacePercentage))

	tw := newTable(w)
	fmt.Fprintln(tw, "DATE\tTOURNAMENT\tSESSION\tTP\tGP\tRP\tTABLE")
	for _, g := range p.GameDetails {
		var own player.GameResult
		names := make([]string, 0, len(g.Players))
		for _, r := range g.Players {
			if r.PlayerID == p.ID {
				own = r
			}
			names = append(names, r.PlayerName)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			g.TournamentDate, g.TournamentName, g.SessionName,
			point(own.TablePoint), point(own.GamePoint), point(own.PlacePoint),
			strings.Join(names, ", "))
	}
	return tw.Flush()
}

func renderResults(w io.Writer, tournaments []tournament.Tournament) error {
	if len(tournaments) == 0 {
		fmt.Fprintln(w, "No tournaments yet.")
		return nil
	}
	for i, t := range tournaments {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "#%d %s\n", t.ID, heading(t.Info))
		if err := renderRanking(w, t, true); err != nil {
			return err
		}
	}
	return nil
}

func renderTournament(w io.Writer, t tournament.Tournament) error {
	fmt.Fprintln(w, heading(t.Info))
	if err := renderRanking(w, t, true); err != nil {
		return err
	}
	for _, s := range t.Sessions {
		fmt.Fprintf(w, "\n%s\n", s.Info.Name)
		tw := newTable(w)
		fmt.Fprintln(tw, "GAME\tPLAYER\tTP\tGP\tRP")
		for _, g := range s.Games {
			for _, r := range g.PlayerResults {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", g.ID, r.PlayerName, point(r.TablePoint), point(r.GamePoint), point(r.PlacePoint))
			}
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	return nil
}

// renderRanking prints the final standings, optionally with the table point
// of each round.
func renderRanking(w io.Writer, t tournament.Tournament, rounds bool) error {
	tw := newTable(w)
	header := "RANK\tPLAYER\tTP\tGP"
	if rounds {
		for i := range t.Sessions {
			header += fmt.Sprintf("\tR%d", i+1)
		}
	}
	fmt.Fprintln(tw, header)
	for _, e := range t.Summary {
		line := fmt.Sprintf("%d\t%s\t%s\t%s", e.TournamentRank, e.PlayerName, point(e.TotalPoint.TablePoint), point(e.TotalPoint.GamePoint))
		if rounds {
			for _, r := range e.RoundPoints {
				line += "\t" + point(r.TablePoint)
			}
		}
		fmt.Fprintln(tw, line)
	}
	return tw.Flush()
}

func heading(info tournament.Info) string {
	parts := []string{info.Name}
	if info.SubName != "" {
		parts = append(parts, info.SubName)
	}
	title := strings.Join(parts, " ")
	if info.Location != "" {
		return fmt.Sprintf("%s (%s, %s)", title, info.Date, info.Location)
	}
	return fmt.Sprintf("%s (%s)", title, info.Date)
}
