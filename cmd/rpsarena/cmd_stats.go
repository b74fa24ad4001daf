package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/nvandessel/rps-arena/internal/config"
	"github.com/nvandessel/rps-arena/internal/results"
)

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show recorded game results",
		Long: `Display win counts and recent games from the results database.

Games land in the database when run is given --results-db (or when
results.path is set in the config file).

Examples:
  rpsarena stats --results-db results.db
  rpsarena stats --results-db results.db --recent 25
  rpsarena stats --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dbPath, _ := cmd.Flags().GetString("results-db")
			recent, _ := cmd.Flags().GetInt("recent")
			jsonOut, _ := cmd.Flags().GetBool("json")

			if dbPath == "" {
				cfg, err := config.Load("")
				if err != nil {
					return err
				}
				dbPath = cfg.Results.Path
			}
			if dbPath == "" {
				return fmt.Errorf("no results database configured (use --results-db or set results.path in the config file)")
			}

			store, err := results.Open(dbPath)
			if err != nil {
				return err
			}
			defer store.Close()

			ctx := context.Background()
			totals, err := store.Stats(ctx)
			if err != nil {
				return err
			}
			summary, err := store.Summary(ctx)
			if err != nil {
				return err
			}
			games, err := store.RecentGames(ctx, recent)
			if err != nil {
				return err
			}

			if jsonOut {
				return writeStatsJSON(cmd.OutOrStdout(), totals, summary, games)
			}
			writeStatsText(cmd.OutOrStdout(), totals, summary, games)
			return nil
		},
	}

	cmd.Flags().String("results-db", "", "Results database (default results.path from the config file)")
	cmd.Flags().Int("recent", 10, "Number of recent games to list")

	return cmd
}

func writeStatsJSON(w io.Writer, totals results.Totals, summary []results.WinnerCount, games []results.GameRecord) error {
	type winnerJSON struct {
		Winner string `json:"winner"`
		Games  int    `json:"games"`
	}
	type gameJSON struct {
		FinishedAt string `json:"finished_at"`
		Seed       int64  `json:"seed"`
		Size       string `json:"size"`
		Units      int    `json:"units_per_kind"`
		Kinds      string `json:"kinds"`
		Blocks     string `json:"blocks"`
		Winner     string `json:"winner"`
		Steps      int    `json:"steps"`
		ElapsedMS  int64  `json:"elapsed_ms"`
	}

	wins := make([]winnerJSON, 0, len(summary))
	for _, wc := range summary {
		wins = append(wins, winnerJSON{Winner: wc.Winner, Games: wc.Games})
	}

	recent := make([]gameJSON, 0, len(games))
	for _, g := range games {
		recent = append(recent, gameJSON{
			FinishedAt: g.FinishedAt.Format(time.RFC3339),
			Seed:       g.Seed,
			Size:       fmt.Sprintf("%dx%d", g.Width, g.Height),
			Units:      g.UnitsPerKind,
			Kinds:      g.Kinds,
			Blocks:     g.Blocks,
			Winner:     g.Winner,
			Steps:      g.Steps,
			ElapsedMS:  g.Elapsed.Milliseconds(),
		})
	}

	return json.NewEncoder(w).Encode(map[string]interface{}{
		"total_games":     totals.Games,
		"mean_steps":      totals.MeanSteps,
		"mean_elapsed_ms": totals.MeanElapsed.Milliseconds(),
		"wins":            wins,
		"recent":          recent,
	})
}

func writeStatsText(w io.Writer, totals results.Totals, summary []results.WinnerCount, games []results.GameRecord) {
	if totals.Games == 0 {
		fmt.Fprintln(w, "No games recorded yet.")
		return
	}

	fmt.Fprintf(w, "Game Results\n")
	fmt.Fprintf(w, "============\n\n")
	fmt.Fprintf(w, "Games played: %d\n", totals.Games)
	fmt.Fprintf(w, "Mean steps:   %.1f\n", totals.MeanSteps)
	fmt.Fprintf(w, "Mean elapsed: %s\n\n", totals.MeanElapsed.Round(time.Millisecond))

	fmt.Fprintf(w, "Wins:\n")
	for _, wc := range summary {
		fmt.Fprintf(w, "  %-12s %4d  (%.0f%%)\n",
			wc.Winner, wc.Games, float64(wc.Games)/float64(totals.Games)*100)
	}

	if len(games) > 0 {
		fmt.Fprintf(w, "\nRecent games:\n\n")
		fmt.Fprintf(w, "%-20s %8s %-10s %6s %-12s %7s %10s\n",
			"FINISHED", "SEED", "SIZE", "UNITS", "WINNER", "STEPS", "ELAPSED")
		fmt.Fprintln(w, strings.Repeat("-", 79))
		for _, g := range games {
			fmt.Fprintf(w, "%-20s %8d %-10s %6d %-12s %7d %10s\n",
				g.FinishedAt.Local().Format("2006-01-02 15:04:05"),
				g.Seed,
				fmt.Sprintf("%dx%d", g.Width, g.Height),
				g.UnitsPerKind,
				g.Winner,
				g.Steps,
				g.Elapsed.Round(time.Millisecond))
		}
	}
}
