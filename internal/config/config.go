// Package config provides unified configuration loading for the arena.
// It supports loading from YAML files and environment variables, with
// command-line flags applied on top by the CLI layer.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Defaults for a session. Width and height are in play-area units
// (pixels when rendered).
const (
	DefaultWidth        = 800
	DefaultHeight       = 800
	DefaultUnitsPerKind = 50
	DefaultDelayMS      = 30
	DefaultBackground   = "white"
	DefaultBlocks       = "0"
	DefaultMatchLog     = "rps_arena_log.txt"
)

// Config contains all arena configuration settings.
type Config struct {
	// Arena contains the play-area and pacing settings.
	Arena ArenaConfig `json:"arena" yaml:"arena"`

	// Session contains the multi-game lifecycle settings.
	Session SessionConfig `json:"session" yaml:"session"`

	// Display contains the windowed-renderer settings.
	Display DisplayConfig `json:"display" yaml:"display"`

	// Logging contains operational and match logging settings.
	Logging LoggingConfig `json:"logging" yaml:"logging"`

	// Results contains the results database settings.
	Results ResultsConfig `json:"results" yaml:"results"`
}

// ArenaConfig configures the play area and population.
type ArenaConfig struct {
	// Width and Height are the play-area dimensions.
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`

	// UnitsPerKind is the number of agents each kind starts with.
	UnitsPerKind int `json:"units_per_kind" yaml:"units_per_kind"`

	// DelayMS is the base inter-tick delay in milliseconds. Zero and
	// negative values are coerced to 1 by Normalize.
	DelayMS int `json:"delay_ms" yaml:"delay_ms"`
}

// SessionConfig configures the multi-game lifecycle.
type SessionConfig struct {
	// Seed fixes the first game's seed; later games use seed+1, seed+2,
	// and so on. Nil draws a fresh random seed per game.
	Seed *int64 `json:"seed,omitempty" yaml:"seed,omitempty"`

	// NumGames limits the session; 0 means unlimited.
	NumGames int `json:"num_games" yaml:"num_games"`

	// FastForward enables collapsing the tick delay in a resolvable
	// two-kind endgame.
	FastForward bool `json:"fast_forward" yaml:"fast_forward"`

	// CountdownSeconds pauses physics for a visible countdown before
	// each game. Windowed mode only; Normalize zeroes it headless.
	CountdownSeconds int `json:"countdown_s" yaml:"countdown_s"`

	// Blocks is the obstacle option: "0" for none, an integer for that
	// many random blocks, or a path to a blocks file.
	Blocks string `json:"blocks" yaml:"blocks"`

	// GameFile points at a custom kinds file. Empty selects the
	// built-in rock/paper/scissors set.
	GameFile string `json:"game_file,omitempty" yaml:"game_file,omitempty"`
}

// DisplayConfig configures the windowed renderer.
type DisplayConfig struct {
	// Headless disables the window entirely and runs games in a tight
	// loop.
	Headless bool `json:"headless" yaml:"headless"`

	// Background is a color name, #RGB/#RRGGBB value, or image path.
	Background string `json:"background" yaml:"background"`

	// ShowStats draws elapsed time, step, and live counts in the
	// lower-right corner.
	ShowStats bool `json:"show_stats" yaml:"show_stats"`
}

// LoggingConfig configures operational and match logging.
type LoggingConfig struct {
	// Level sets operational log verbosity: "debug", "info", "warn",
	// or "error".
	Level string `json:"level" yaml:"level"`

	// MatchLog is the match log file path, appended across sessions.
	MatchLog string `json:"match_log" yaml:"match_log"`

	// Quiet suppresses match log echo to stdout; the file still gets
	// every line.
	Quiet bool `json:"quiet" yaml:"quiet"`
}

// ResultsConfig configures game-result persistence.
type ResultsConfig struct {
	// Path is the SQLite database file. Empty disables persistence.
	Path string `json:"path,omitempty" yaml:"path,omitempty"`
}

// Default returns a Config matching a plain windowed session.
func Default() *Config {
	return &Config{
		Arena: ArenaConfig{
			Width:        DefaultWidth,
			Height:       DefaultHeight,
			UnitsPerKind: DefaultUnitsPerKind,
			DelayMS:      DefaultDelayMS,
		},
		Session: SessionConfig{
			NumGames:    0,
			FastForward: true,
			Blocks:      DefaultBlocks,
		},
		Display: DisplayConfig{
			Headless:   false,
			Background: DefaultBackground,
		},
		Logging: LoggingConfig{
			Level:    "info",
			MatchLog: DefaultMatchLog,
		},
	}
}

// Load loads configuration in layers: defaults, then the config file,
// then RPS_ARENA_* environment variables. With an empty path the file
// layer is ~/.rps-arena/config.yaml when it exists; an explicit path
// must exist.
func Load(path string) (*Config, error) {
	config := Default()

	if path != "" {
		fileConfig, err := LoadFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
		config = fileConfig
	} else if homeDir, err := os.UserHomeDir(); err == nil {
		configPath := filepath.Join(homeDir, ".rps-arena", "config.yaml")
		if _, statErr := os.Stat(configPath); statErr == nil {
			fileConfig, loadErr := LoadFromFile(configPath)
			if loadErr != nil {
				return nil, fmt.Errorf("loading config file: %w", loadErr)
			}
			config = fileConfig
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// LoadFromFile loads configuration from a specific YAML file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return config, nil
}

// Validate checks that the configuration is usable. Values the engine
// coerces silently (delay, units per kind) are not errors; see
// Normalize.
func (c *Config) Validate() error {
	if c.Arena.Width <= 0 || c.Arena.Height <= 0 {
		return fmt.Errorf("arena size must be positive, got %dx%d", c.Arena.Width, c.Arena.Height)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if c.Logging.Level != "" && !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level: %s (valid: debug, info, warn, error)", c.Logging.Level)
	}

	return nil
}

// Normalize applies the engine's silent coercions: non-positive delay
// becomes 1ms, units per kind at least 1, game count never negative,
// and headless runs drop the countdown and default to a single game.
func (c *Config) Normalize() {
	if c.Arena.DelayMS <= 0 {
		c.Arena.DelayMS = 1
	}
	if c.Arena.UnitsPerKind < 1 {
		c.Arena.UnitsPerKind = 1
	}
	if c.Session.NumGames < 0 {
		c.Session.NumGames = 0
	}
	if c.Session.CountdownSeconds < 0 {
		c.Session.CountdownSeconds = 0
	}
	if c.Display.Headless {
		c.Session.CountdownSeconds = 0
		if c.Session.NumGames == 0 {
			c.Session.NumGames = 1
		}
	}
}

// applyEnvOverrides applies RPS_ARENA_* environment overrides.
func applyEnvOverrides(config *Config) {
	if v := os.Getenv("RPS_ARENA_WIDTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			config.Arena.Width = n
		}
	}
	if v := os.Getenv("RPS_ARENA_HEIGHT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			config.Arena.Height = n
		}
	}
	if v := os.Getenv("RPS_ARENA_UNITS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			config.Arena.UnitsPerKind = n
		}
	}
	if v := os.Getenv("RPS_ARENA_DELAY_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			config.Arena.DelayMS = n
		}
	}
	if v := os.Getenv("RPS_ARENA_SEED"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			config.Session.Seed = &n
		}
	}
	if v := os.Getenv("RPS_ARENA_NUM_GAMES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			config.Session.NumGames = n
		}
	}
	if v := os.Getenv("RPS_ARENA_FAST_FORWARD"); v != "" {
		config.Session.FastForward = v == "true" || v == "1"
	}
	if v := os.Getenv("RPS_ARENA_BLOCKS"); v != "" {
		config.Session.Blocks = v
	}
	if v := os.Getenv("RPS_ARENA_GAME_FILE"); v != "" {
		config.Session.GameFile = v
	}
	if v := os.Getenv("RPS_ARENA_HEADLESS"); v != "" {
		config.Display.Headless = v == "true" || v == "1"
	}
	if v := os.Getenv("RPS_ARENA_BACKGROUND"); v != "" {
		config.Display.Background = v
	}
	if v := os.Getenv("RPS_ARENA_LOG_LEVEL"); v != "" {
		config.Logging.Level = v
	}
	if v := os.Getenv("RPS_ARENA_MATCH_LOG"); v != "" {
		config.Logging.MatchLog = v
	}
	if v := os.Getenv("RPS_ARENA_RESULTS_DB"); v != "" {
		config.Results.Path = v
	}
}
