// Package session drives complete games of the arena: it owns seeding,
// obstacle and population setup, match logging, pacing, and the
// multi-game lifecycle.
//
// Each game runs on its own seeded stream so a logged seed replays the
// whole game, blocks included. Fixed seeds count up from the base seed
// (S, S+1, S+2, ...); unseeded sessions draw every next seed from the
// finished game's stream.
package session

import (
	"context"
	"io"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"github.com/nvandessel/rps-arena/internal/arena"
	"github.com/nvandessel/rps-arena/internal/matchlog"
	"github.com/nvandessel/rps-arena/internal/obstacle"
	"github.com/nvandessel/rps-arena/internal/results"
	"github.com/nvandessel/rps-arena/internal/species"
)

// PostgameDelay is how long a finished game stays on screen before the
// next one starts. Windowed runs only; batch runs restart immediately.
const PostgameDelay = 5 * time.Second

// maxRandomSeed bounds randomly drawn seeds to keep logged seeds short
// enough to retype.
const maxRandomSeed = 1_000_000

// Params configures a Session.
type Params struct {
	Kinds        *species.Set
	Width        int
	Height       int
	UnitsPerKind int

	// BaseDelay is the inter-tick delay for paced runs.
	BaseDelay   time.Duration
	FastForward bool

	// Seed fixes the first game's seed. Nil draws a fresh random seed
	// per game.
	Seed *int64

	// NumGames limits the session; 0 means unlimited.
	NumGames int

	// Countdown pauses physics for this many seconds before each game
	// in paced runs.
	Countdown int

	// PostgameDelay overrides how long paced runs hold a finished game
	// on screen. Zero selects the default.
	PostgameDelay time.Duration

	// Blocks supplies each game's obstacle field; nil means none.
	Blocks *obstacle.Source

	// BlockColor fills in blocks that do not name their own color.
	BlockColor string

	// Log receives match log lines; nil disables match logging.
	Log *matchlog.Logger

	// Observer receives per-agent notifications; nil for none.
	Observer arena.Observer

	// Events receives lifecycle notifications; nil for none.
	Events Events

	// Store persists finished games; nil disables persistence.
	Store *results.Store

	// Logger is the operational logger; nil discards.
	Logger *slog.Logger
}

// Result summarizes one finished game.
type Result struct {
	Game       int
	Seed       int64
	Winner     species.Kind
	WinnerName string
	Steps      int
	Elapsed    time.Duration
	StartedAt  time.Time
	FinishedAt time.Time
}

// Session runs games until the configured count is reached or the
// context is canceled. It is single-goroutine: all callbacks fire on
// the goroutine running RunBatch or RunPaced.
type Session struct {
	kinds      *species.Set
	arena      *arena.Arena
	blocks     *obstacle.Source
	blockColor string

	log    *matchlog.Logger
	events Events
	store  *results.Store
	logger *slog.Logger

	width        int
	height       int
	unitsPerKind int
	baseDelayMS  int
	ffEnabled    bool
	numGames     int
	countdown    int
	postgame     time.Duration

	fixedSeed bool
	curSeed   int64
	rng       *rand.Rand

	game      int
	played    int
	stepNum   int
	gameStart time.Time
}

// New builds a session and places the first game. The settings line is
// written before placement so the log records the run even when it is
// interrupted mid-game.
func New(p Params) *Session {
	if p.Events == nil {
		p.Events = NopEvents{}
	}
	if p.Logger == nil {
		p.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if p.PostgameDelay <= 0 {
		p.PostgameDelay = PostgameDelay
	}
	if p.Blocks == nil {
		p.Blocks = &obstacle.Source{}
	}

	s := &Session{
		kinds:        p.Kinds,
		blocks:       p.Blocks,
		blockColor:   p.BlockColor,
		log:          p.Log,
		events:       p.Events,
		store:        p.Store,
		logger:       p.Logger,
		width:        p.Width,
		height:       p.Height,
		unitsPerKind: p.UnitsPerKind,
		baseDelayMS:  int(p.BaseDelay / time.Millisecond),
		ffEnabled:    p.FastForward,
		numGames:     p.NumGames,
		countdown:    p.Countdown,
		postgame:     p.PostgameDelay,
	}

	if p.Seed != nil {
		s.fixedSeed = true
		s.curSeed = *p.Seed
	} else {
		boot := rand.New(rand.NewSource(time.Now().UnixNano()))
		s.curSeed = boot.Int63n(maxRandomSeed) + 1
	}

	s.arena = arena.New(arena.Params{
		Kinds:        p.Kinds,
		Width:        p.Width,
		Height:       p.Height,
		UnitsPerKind: p.UnitsPerKind,
		BaseDelay:    p.BaseDelay,
		FastForward:  p.FastForward,
	}, p.Observer)

	s.writeSettings()
	s.game = 1
	s.resetGame()
	s.events.GameStarted(s.game, s.curSeed, s.arena.Field())

	return s
}

// Arena exposes the running arena. Read it only from the session's
// goroutine or before Run starts.
func (s *Session) Arena() *arena.Arena { return s.arena }

// GamesPlayed returns the number of finished games.
func (s *Session) GamesPlayed() int { return s.played }

// CurrentSeed returns the running game's seed.
func (s *Session) CurrentSeed() int64 { return s.curSeed }

func (s *Session) writeSettings() {
	s.log.SessionStart(matchlog.Settings{
		Width:        s.width,
		Height:       s.height,
		UnitsPerKind: s.unitsPerKind,
		DelayMS:      s.baseDelayMS,
		Seed:         s.curSeed,
		SeedFixed:    s.fixedSeed,
		Kinds:        s.kinds.Names(),
		FastForward:  s.ffEnabled,
		NumGames:     s.numGames,
		Blocks:       s.blocks.Describe(),
	}, s.kinds.Labels())
}

// resetGame seeds the new game's stream and rebuilds the field and
// population. Blocks draw before placement, so one seed reproduces the
// whole game.
func (s *Session) resetGame() {
	s.rng = rand.New(rand.NewSource(s.curSeed))
	field := s.blocks.Build(s.rng, s.width, s.height, arena.PlacementMargin, s.blockColor)
	s.arena.Reset(s.rng, field)
	s.stepNum = 0
	s.gameStart = time.Now()
}

// advanceSeed picks the next game's seed.
func (s *Session) advanceSeed() {
	if s.fixedSeed {
		s.curSeed++
		return
	}
	s.curSeed = s.rng.Int63n(maxRandomSeed) + 1
}

// nextGame starts the following game.
func (s *Session) nextGame() {
	s.advanceSeed()
	s.game++
	s.resetGame()
	s.events.GameStarted(s.game, s.curSeed, s.arena.Field())
}

// tick advances one step. Returns true when the game ended on this
// tick.
func (s *Session) tick(ctx context.Context) bool {
	s.stepNum++
	converted := s.arena.Step()
	if converted {
		s.log.Counts(s.stepNum, s.arena.Counts())
	}
	s.events.StepDone(s.stepNum)

	winner, done := s.arena.Winner()
	if !done {
		return false
	}
	s.finishGame(ctx, winner)
	return true
}

// finishedAll reports whether the session played its full game count.
func (s *Session) finishedAll() bool {
	return s.numGames > 0 && s.played >= s.numGames
}

func (s *Session) finishGame(ctx context.Context, winner species.Kind) {
	finished := time.Now()
	elapsed := finished.Sub(s.gameStart)
	s.log.GameEnd(elapsed, s.stepNum)
	s.played++

	res := Result{
		Game:       s.game,
		Seed:       s.curSeed,
		Winner:     winner,
		WinnerName: s.kinds.Name(winner),
		Steps:      s.stepNum,
		Elapsed:    elapsed,
		StartedAt:  s.gameStart,
		FinishedAt: finished,
	}

	s.logger.Info("game finished",
		"game", res.Game,
		"seed", res.Seed,
		"winner", res.WinnerName,
		"steps", res.Steps,
		"elapsed", elapsed)

	if s.store != nil {
		rec := results.GameRecord{
			StartedAt:    s.gameStart,
			FinishedAt:   finished,
			Seed:         s.curSeed,
			Width:        s.width,
			Height:       s.height,
			UnitsPerKind: s.unitsPerKind,
			Kinds:        strings.Join(s.kinds.Names(), ","),
			Blocks:       s.blocks.Describe(),
			Winner:       res.WinnerName,
			Steps:        s.stepNum,
			Elapsed:      elapsed,
		}
		if err := s.store.RecordGame(ctx, rec); err != nil {
			s.logger.Warn("failed to record game result", "error", err)
		}
	}

	s.events.GameEnded(res)
}
