// Package matchlog writes the match log shared by windowed and headless
// runs: one settings line and one STEP header per session, then a CSV
// census row for every tick that converted at least one agent and a
// game_end summary per game. Lines append to the log file and echo to
// stdout unless quiet.
package matchlog

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

const timeLayout = "2006-01-02 15:04:05.000000"

// Settings describes one game for the settings line.
type Settings struct {
	Width        int
	Height       int
	UnitsPerKind int
	DelayMS      int

	// Seed is the game's seed; it is printed only when SeedFixed is
	// set, otherwise the line reads "seed=random".
	Seed      int64
	SeedFixed bool

	// Kinds holds the kind names in kind order.
	Kinds []string

	FastForward bool
	NumGames    int

	// Blocks describes the obstacle source, e.g. "none", "random(4)",
	// or "file:blocks.yaml".
	Blocks string
}

// Logger writes match log lines to a file and an optional echo writer.
// It is safe for concurrent use. A nil Logger is safe to use; all
// methods are no-ops on nil receiver.
type Logger struct {
	mu   sync.Mutex
	file io.WriteCloser
	echo io.Writer
}

// Open opens path for append and returns a Logger echoing to stdout.
// With quiet set, only the file is written.
func Open(path string, quiet bool) (*Logger, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("opening match log: %w", err)
	}
	var echo io.Writer
	if !quiet {
		echo = os.Stdout
	}
	return &Logger{file: f, echo: echo}, nil
}

// New returns a Logger writing to the given destinations. Either may
// be nil.
func New(file io.WriteCloser, echo io.Writer) *Logger {
	return &Logger{file: file, echo: echo}
}

// Line writes one raw line to the file and the echo writer.
// Safe to call on nil receiver.
func (l *Logger) Line(line string) {
	if l == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file != nil {
		fmt.Fprintln(l.file, line)
	}
	if l.echo != nil {
		fmt.Fprintln(l.echo, line)
	}
}

// SessionStart writes the settings line and the STEP header. Both
// appear once per session, not per game; census rows from every game
// in the session share them. Labels are the display labels matching
// the order of s.Kinds.
func (l *Logger) SessionStart(s Settings, labels []string) {
	seed := "random"
	if s.SeedFixed {
		seed = strconv.FormatInt(s.Seed, 10)
	}
	ff := "off"
	if s.FastForward {
		ff = "on"
	}
	l.Line(fmt.Sprintf(
		"start=%s | size=%dx%d | units_per_kind=%d | total_units=%d | delay_ms=%d | seed=%s | kinds=%s | fast_forward=%s | num_games=%d | blocks=%s",
		time.Now().Format(timeLayout), s.Width, s.Height,
		s.UnitsPerKind, s.UnitsPerKind*len(s.Kinds), s.DelayMS,
		seed, strings.Join(s.Kinds, ","), ff, s.NumGames, s.Blocks))
	l.Line("STEP," + strings.Join(labels, ","))
}

// Counts writes one CSV census row: the step number followed by the
// population of each kind in kind order.
func (l *Logger) Counts(step int, counts []int) {
	row := make([]string, 0, len(counts)+1)
	row = append(row, strconv.Itoa(step))
	for _, c := range counts {
		row = append(row, strconv.Itoa(c))
	}
	l.Line(strings.Join(row, ","))
}

// GameEnd writes the end-of-game summary line.
func (l *Logger) GameEnd(elapsed time.Duration, steps int) {
	l.Line(fmt.Sprintf("game_end at %s; elapsed=%.3fs; steps=%d",
		time.Now().Format(timeLayout), elapsed.Seconds(), steps))
}

// Close closes the log file. Safe to call on nil receiver.
func (l *Logger) Close() {
	if l == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file != nil {
		l.file.Close()
		l.file = nil
	}
}
