package main

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/nvandessel/rps-arena/internal/results"
)

func sampleRecord() results.GameRecord {
	started := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return results.GameRecord{
		StartedAt:    started,
		FinishedAt:   started.Add(3*time.Second + 600*time.Millisecond),
		Seed:         42,
		Width:        800,
		Height:       800,
		UnitsPerKind: 50,
		Kinds:        "paper,rock,scissors",
		Blocks:       "none",
		Winner:       "rock",
		Steps:        120,
		Elapsed:      3*time.Second + 600*time.Millisecond,
	}
}

func TestWriteStatsTextEmpty(t *testing.T) {
	var buf bytes.Buffer
	writeStatsText(&buf, results.Totals{}, nil, nil)
	if got := buf.String(); got != "No games recorded yet.\n" {
		t.Errorf("output = %q, want %q", got, "No games recorded yet.\n")
	}
}

func TestWriteStatsText(t *testing.T) {
	totals := results.Totals{Games: 4, MeanSteps: 151.5, MeanElapsed: 3600 * time.Millisecond}
	summary := []results.WinnerCount{
		{Winner: "rock", Games: 3},
		{Winner: "paper", Games: 1},
	}
	games := []results.GameRecord{sampleRecord()}

	var buf bytes.Buffer
	writeStatsText(&buf, totals, summary, games)
	out := buf.String()

	for _, want := range []string{
		"Games played: 4",
		"Mean steps:   151.5",
		"Mean elapsed: 3.6s",
		"Wins:",
		"(75%)",
		"(25%)",
		"Recent games:",
		"800x800",
		"rock",
		"120",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteStatsJSON(t *testing.T) {
	totals := results.Totals{Games: 4, MeanSteps: 151.5, MeanElapsed: 3600 * time.Millisecond}
	summary := []results.WinnerCount{
		{Winner: "rock", Games: 3},
		{Winner: "paper", Games: 1},
	}
	games := []results.GameRecord{sampleRecord()}

	var buf bytes.Buffer
	if err := writeStatsJSON(&buf, totals, summary, games); err != nil {
		t.Fatalf("writeStatsJSON() error = %v", err)
	}

	var decoded struct {
		TotalGames    int     `json:"total_games"`
		MeanSteps     float64 `json:"mean_steps"`
		MeanElapsedMS int64   `json:"mean_elapsed_ms"`
		Wins          []struct {
			Winner string `json:"winner"`
			Games  int    `json:"games"`
		} `json:"wins"`
		Recent []struct {
			Seed      int64  `json:"seed"`
			Size      string `json:"size"`
			Kinds     string `json:"kinds"`
			Winner    string `json:"winner"`
			Steps     int    `json:"steps"`
			ElapsedMS int64  `json:"elapsed_ms"`
		} `json:"recent"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("decoding output: %v", err)
	}

	if decoded.TotalGames != 4 {
		t.Errorf("total_games = %d, want 4", decoded.TotalGames)
	}
	if decoded.MeanSteps != 151.5 {
		t.Errorf("mean_steps = %v, want 151.5", decoded.MeanSteps)
	}
	if decoded.MeanElapsedMS != 3600 {
		t.Errorf("mean_elapsed_ms = %d, want 3600", decoded.MeanElapsedMS)
	}
	if len(decoded.Wins) != 2 || decoded.Wins[0].Winner != "rock" || decoded.Wins[0].Games != 3 {
		t.Errorf("wins = %+v, want rock with 3 games first", decoded.Wins)
	}
	if len(decoded.Recent) != 1 {
		t.Fatalf("recent has %d entries, want 1", len(decoded.Recent))
	}
	rec := decoded.Recent[0]
	if rec.Seed != 42 || rec.Size != "800x800" || rec.Winner != "rock" || rec.Steps != 120 {
		t.Errorf("recent[0] = %+v, want seed 42, size 800x800, winner rock, steps 120", rec)
	}
	if rec.ElapsedMS != 3600 {
		t.Errorf("elapsed_ms = %d, want 3600", rec.ElapsedMS)
	}
}

func TestWriteStatsJSONEmptyArrays(t *testing.T) {
	var buf bytes.Buffer
	if err := writeStatsJSON(&buf, results.Totals{}, nil, nil); err != nil {
		t.Fatalf("writeStatsJSON() error = %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, `"wins":[]`) || !strings.Contains(out, `"recent":[]`) {
		t.Errorf("empty stats should encode as empty arrays, got %s", out)
	}
}

func TestStatsCommandReadsDatabase(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "results.db")
	store, err := results.Open(dbPath)
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	rec := sampleRecord()
	rec.Winner = "scissors"
	if err := store.RecordGame(context.Background(), rec); err != nil {
		t.Fatalf("recording game: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("closing store: %v", err)
	}

	cmd := newStatsCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{"--results-db", dbPath})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("stats command error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Games played: 1") {
		t.Errorf("output missing game count:\n%s", out)
	}
	if !strings.Contains(out, "scissors") {
		t.Errorf("output missing winner:\n%s", out)
	}
}
