package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/nvandessel/rps-arena/internal/config"
	"github.com/nvandessel/rps-arena/internal/logging"
	"github.com/nvandessel/rps-arena/internal/matchlog"
	"github.com/nvandessel/rps-arena/internal/obstacle"
	"github.com/nvandessel/rps-arena/internal/results"
	"github.com/nvandessel/rps-arena/internal/session"
	"github.com/nvandessel/rps-arena/internal/species"
	"github.com/nvandessel/rps-arena/internal/ui"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the arena simulation",
		Long: `Run games in a window, or with --headless as a batch without one.

Settings are layered: defaults, then the config file, then RPS_ARENA_*
environment variables, then flags. With a fixed --seed, games run seeds
N, N+1, N+2, ... so a whole session can be replayed.

Examples:
  rpsarena run
  rpsarena run --size 1024,768 -u 30 --blocks 5
  rpsarena run --headless -n 100 --seed 42 --results-db results.db`,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if err := applyFlags(cfg, cmd.Flags()); err != nil {
				return err
			}
			cfg.Normalize()
			if err := cfg.Validate(); err != nil {
				return err
			}
			return runSession(cfg)
		},
	}

	cmd.Flags().String("config", "", "Config file (default ~/.rps-arena/config.yaml)")
	cmd.Flags().IntSlice("size", []int{config.DefaultWidth, config.DefaultHeight}, "Play area as width,height")
	cmd.Flags().IntP("units", "u", config.DefaultUnitsPerKind, "Units per kind")
	cmd.Flags().IntP("delay", "d", config.DefaultDelayMS, "Tick delay in ms (0 coerced to 1)")
	cmd.Flags().Int64("seed", 0, "Random seed for the first game; later games use seed+1, seed+2, ...")
	cmd.Flags().IntP("num-games", "n", 0, "Number of games to play (0 = unlimited; headless defaults to 1)")
	cmd.Flags().Bool("no-fast-forward", false, "Disable fast forward (no auto-switch to delay=1)")
	cmd.Flags().String("bg", config.DefaultBackground, "Background color (name or #RRGGBB) or image file (windowed)")
	cmd.Flags().Int("countdown", 0, "Seconds to pause after placement (windowed only)")
	cmd.Flags().Bool("headless", false, "Run without a window")
	cmd.Flags().BoolP("quiet", "q", false, "Suppress stdout match log echo (still written to the log file)")
	cmd.Flags().Bool("show-stats", false, "Show elapsed time, step, and counts in the lower right (windowed only)")
	cmd.Flags().String("blocks", config.DefaultBlocks, "Number of random blocks (e.g. 5) or path to a blocks file")
	cmd.Flags().String("game", "", "Game definition file with a custom kind set")
	cmd.Flags().String("log-file", config.DefaultMatchLog, "Match log file")
	cmd.Flags().String("results-db", "", "SQLite database to record game results in")
	cmd.Flags().String("log-level", "info", "Log level (debug, info, warn, error)")

	return cmd
}

// applyFlags lays explicitly set flags over the loaded config. Unset
// flags leave the config (file and environment) values alone.
func applyFlags(cfg *config.Config, flags *pflag.FlagSet) error {
	if flags.Changed("size") {
		size, _ := flags.GetIntSlice("size")
		if len(size) != 2 {
			return fmt.Errorf("--size needs width,height, got %d values", len(size))
		}
		cfg.Arena.Width, cfg.Arena.Height = size[0], size[1]
	}
	if flags.Changed("units") {
		cfg.Arena.UnitsPerKind, _ = flags.GetInt("units")
	}
	if flags.Changed("delay") {
		cfg.Arena.DelayMS, _ = flags.GetInt("delay")
	}
	if flags.Changed("seed") {
		seed, _ := flags.GetInt64("seed")
		cfg.Session.Seed = &seed
	}
	if flags.Changed("num-games") {
		cfg.Session.NumGames, _ = flags.GetInt("num-games")
	}
	if flags.Changed("no-fast-forward") {
		noFF, _ := flags.GetBool("no-fast-forward")
		cfg.Session.FastForward = !noFF
	}
	if flags.Changed("countdown") {
		cfg.Session.CountdownSeconds, _ = flags.GetInt("countdown")
	}
	if flags.Changed("blocks") {
		cfg.Session.Blocks, _ = flags.GetString("blocks")
	}
	if flags.Changed("game") {
		cfg.Session.GameFile, _ = flags.GetString("game")
	}
	if flags.Changed("headless") {
		cfg.Display.Headless, _ = flags.GetBool("headless")
	}
	if flags.Changed("bg") {
		cfg.Display.Background, _ = flags.GetString("bg")
	}
	if flags.Changed("show-stats") {
		cfg.Display.ShowStats, _ = flags.GetBool("show-stats")
	}
	if flags.Changed("quiet") {
		cfg.Logging.Quiet, _ = flags.GetBool("quiet")
	}
	if flags.Changed("log-file") {
		cfg.Logging.MatchLog, _ = flags.GetString("log-file")
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level, _ = flags.GetString("log-level")
	}
	if flags.Changed("results-db") {
		cfg.Results.Path, _ = flags.GetString("results-db")
	}
	return nil
}

// loadKinds resolves the kind set: the built-in rock/paper/scissors
// game, or a custom one from a game file.
func loadKinds(path string) (*species.Set, error) {
	if path == "" {
		return species.Default(), nil
	}
	set, err := species.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load game file: %w", err)
	}
	return set, nil
}

func runSession(cfg *config.Config) error {
	logger := logging.NewLogger(cfg.Logging.Level, os.Stderr)

	kinds, err := loadKinds(cfg.Session.GameFile)
	if err != nil {
		return err
	}

	blocks, err := obstacle.ParseSource(cfg.Session.Blocks)
	if err != nil {
		return err
	}

	matchLog, err := matchlog.Open(cfg.Logging.MatchLog, cfg.Logging.Quiet)
	if err != nil {
		return fmt.Errorf("failed to open match log: %w", err)
	}
	defer matchLog.Close()

	var store *results.Store
	if cfg.Results.Path != "" {
		store, err = results.Open(cfg.Results.Path)
		if err != nil {
			return fmt.Errorf("failed to open results store: %w", err)
		}
		defer store.Close()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigCh := make(chan os.Signal, 1)
	notifySignals(sigCh)
	go func() {
		<-sigCh
		cancel()
	}()

	params := session.Params{
		Kinds:        kinds,
		Width:        cfg.Arena.Width,
		Height:       cfg.Arena.Height,
		UnitsPerKind: cfg.Arena.UnitsPerKind,
		BaseDelay:    time.Duration(cfg.Arena.DelayMS) * time.Millisecond,
		FastForward:  cfg.Session.FastForward,
		Seed:         cfg.Session.Seed,
		NumGames:     cfg.Session.NumGames,
		Countdown:    cfg.Session.CountdownSeconds,
		Blocks:       blocks,
		BlockColor:   "white",
		Log:          matchLog,
		Store:        store,
		Logger:       logger,
	}

	if cfg.Display.Headless {
		err := session.New(params).RunBatch(ctx)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}

	app, err := ui.New(ui.Config{
		Width:      cfg.Arena.Width,
		Height:     cfg.Arena.Height,
		Background: cfg.Display.Background,
		ShowStats:  cfg.Display.ShowStats,
		Kinds:      kinds,
		Logger:     logger,
		Quit:       cancel,
	})
	if err != nil {
		return err
	}

	// Random blocks take the overlay color so they stay visible over
	// the chosen background.
	params.BlockColor = app.TextColorName()
	params.Observer = app
	params.Events = app
	sess := session.New(params)

	errCh := make(chan error, 1)
	go func() {
		errCh <- sess.RunPaced(ctx)
		app.Finish()
	}()

	ebiten.SetWindowSize(cfg.Arena.Width, cfg.Arena.Height)
	ebiten.SetWindowTitle("RPS Arena")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)

	gameErr := ebiten.RunGame(app)
	cancel()
	runErr := <-errCh

	if gameErr != nil {
		return gameErr
	}
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return runErr
	}
	return nil
}
