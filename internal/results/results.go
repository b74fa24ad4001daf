// Package results persists finished game outcomes to SQLite so win
// rates can be inspected across sessions with the stats command.
package results

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // SQLite driver
)

// SchemaVersion is the current schema version.
const SchemaVersion = 1

const schemaV1 = `
CREATE TABLE IF NOT EXISTS games (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    started_at TEXT NOT NULL,
    finished_at TEXT NOT NULL,
    seed INTEGER NOT NULL,
    width INTEGER NOT NULL,
    height INTEGER NOT NULL,
    units_per_kind INTEGER NOT NULL,
    kinds TEXT NOT NULL,   -- comma-joined kind names in kind order
    blocks TEXT NOT NULL,  -- obstacle source description
    winner TEXT NOT NULL,
    steps INTEGER NOT NULL,
    elapsed_ms INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_games_winner ON games(winner);

CREATE TABLE IF NOT EXISTS schema_version (
    version INTEGER PRIMARY KEY,
    applied_at TEXT NOT NULL
);
`

// GameRecord is one finished game.
type GameRecord struct {
	StartedAt    time.Time
	FinishedAt   time.Time
	Seed         int64
	Width        int
	Height       int
	UnitsPerKind int
	Kinds        string
	Blocks       string
	Winner       string
	Steps        int
	Elapsed      time.Duration
}

// WinnerCount pairs a winning kind with the number of games it won.
type WinnerCount struct {
	Winner string
	Games  int
}

// Store persists game records in a SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the results database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("failed to open results database: %w", err)
	}
	db.SetMaxOpenConns(1) // SQLite works best with a single writer

	if err := initSchema(context.Background(), db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &Store{db: db}, nil
}

// initSchema creates the tables on first open and applies migrations
// on later ones.
func initSchema(ctx context.Context, db *sql.DB) error {
	var version int
	err := db.QueryRowContext(ctx, `SELECT MAX(version) FROM schema_version`).Scan(&version)
	if err != nil {
		// Fresh database, create everything in one transaction.
		tx, txErr := db.BeginTx(ctx, nil)
		if txErr != nil {
			return fmt.Errorf("failed to begin transaction: %w", txErr)
		}
		defer tx.Rollback()

		if _, execErr := tx.ExecContext(ctx, schemaV1); execErr != nil {
			return fmt.Errorf("failed to create tables: %w", execErr)
		}
		if _, execErr := tx.ExecContext(ctx,
			`INSERT INTO schema_version (version, applied_at) VALUES (?, datetime('now'))`,
			SchemaVersion); execErr != nil {
			return fmt.Errorf("failed to record schema version: %w", execErr)
		}
		return tx.Commit()
	}

	if version > SchemaVersion {
		return fmt.Errorf("results database schema version %d is newer than supported %d", version, SchemaVersion)
	}
	return nil
}

// RecordGame inserts one finished game.
func (s *Store) RecordGame(ctx context.Context, rec GameRecord) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO games (started_at, finished_at, seed, width, height,
		                   units_per_kind, kinds, blocks, winner, steps, elapsed_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.StartedAt.UTC().Format(time.RFC3339Nano),
		rec.FinishedAt.UTC().Format(time.RFC3339Nano),
		rec.Seed, rec.Width, rec.Height,
		rec.UnitsPerKind, rec.Kinds, rec.Blocks,
		rec.Winner, rec.Steps, rec.Elapsed.Milliseconds())
	if err != nil {
		return fmt.Errorf("failed to record game: %w", err)
	}
	return nil
}

// Totals aggregates the whole games table.
type Totals struct {
	Games       int
	MeanSteps   float64
	MeanElapsed time.Duration
}

// Stats returns the table-wide aggregates. An empty table yields zero
// totals, not an error.
func (s *Store) Stats(ctx context.Context) (Totals, error) {
	var t Totals
	var meanMS float64
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(AVG(steps), 0), COALESCE(AVG(elapsed_ms), 0)
		FROM games`).Scan(&t.Games, &t.MeanSteps, &meanMS)
	if err != nil {
		return Totals{}, fmt.Errorf("failed to query game totals: %w", err)
	}
	t.MeanElapsed = time.Duration(meanMS * float64(time.Millisecond))
	return t, nil
}

// Summary returns per-kind win counts, most wins first, ties broken by
// kind name.
func (s *Store) Summary(ctx context.Context) ([]WinnerCount, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT winner, COUNT(*) AS games
		FROM games
		GROUP BY winner
		ORDER BY games DESC, winner ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query summary: %w", err)
	}
	defer rows.Close()

	var summary []WinnerCount
	for rows.Next() {
		var wc WinnerCount
		if err := rows.Scan(&wc.Winner, &wc.Games); err != nil {
			return nil, fmt.Errorf("failed to scan summary row: %w", err)
		}
		summary = append(summary, wc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read summary rows: %w", err)
	}
	return summary, nil
}

// RecentGames returns up to limit games, newest first.
func (s *Store) RecentGames(ctx context.Context, limit int) ([]GameRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT started_at, finished_at, seed, width, height,
		       units_per_kind, kinds, blocks, winner, steps, elapsed_ms
		FROM games
		ORDER BY id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent games: %w", err)
	}
	defer rows.Close()

	var games []GameRecord
	for rows.Next() {
		var rec GameRecord
		var started, finished string
		var elapsedMS int64
		if err := rows.Scan(&started, &finished, &rec.Seed, &rec.Width, &rec.Height,
			&rec.UnitsPerKind, &rec.Kinds, &rec.Blocks, &rec.Winner, &rec.Steps, &elapsedMS); err != nil {
			return nil, fmt.Errorf("failed to scan game row: %w", err)
		}
		if rec.StartedAt, err = time.Parse(time.RFC3339Nano, started); err != nil {
			return nil, fmt.Errorf("failed to parse started_at: %w", err)
		}
		if rec.FinishedAt, err = time.Parse(time.RFC3339Nano, finished); err != nil {
			return nil, fmt.Errorf("failed to parse finished_at: %w", err)
		}
		rec.Elapsed = time.Duration(elapsedMS) * time.Millisecond
		games = append(games, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read game rows: %w", err)
	}
	return games, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
