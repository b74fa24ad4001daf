package obstacle

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

// Mode says where a game's blocks come from.
type Mode int

const (
	// ModeNone runs with a clear arena.
	ModeNone Mode = iota
	// ModeRandom regenerates Count random blocks at every game reset.
	ModeRandom
	// ModeFile re-applies the same file-loaded blocks at every reset.
	ModeFile
)

// Source is the parsed blocks option. Random layouts change per game;
// file layouts are validated once up front and then treated as opaque
// static input for the whole session.
type Source struct {
	Mode  Mode
	Count int    // block count for ModeRandom
	Path  string // origin file for ModeFile

	fixed Field // canonical rects from the file, colors may be empty
}

// ParseSource interprets the blocks option: a string of digits is a
// random-block count ("0" means none), anything else is read as a
// blocks file path. An empty option also means none. File problems
// surface here, before any game state exists.
func ParseSource(opt string) (*Source, error) {
	trimmed := strings.TrimSpace(opt)
	if trimmed == "" {
		return &Source{Mode: ModeNone}, nil
	}
	if isDigits(trimmed) {
		n, err := strconv.Atoi(trimmed)
		if err != nil {
			return nil, fmt.Errorf("blocks count %q: %w", trimmed, err)
		}
		if n == 0 {
			return &Source{Mode: ModeNone}, nil
		}
		return &Source{Mode: ModeRandom, Count: n}, nil
	}
	fixed, err := LoadFile(trimmed)
	if err != nil {
		return nil, err
	}
	return &Source{Mode: ModeFile, Path: trimmed, fixed: fixed}, nil
}

// Build returns the blocks for one game. Random mode draws fresh
// rectangles from rng on every call; file mode copies the canonical
// rects, filling defaultColor where the file left color unset. The rng
// is only consumed in random mode.
func (s *Source) Build(rng *rand.Rand, width, height, margin int, defaultColor string) Field {
	switch s.Mode {
	case ModeRandom:
		return Generate(rng, s.Count, width, height, margin, defaultColor)
	case ModeFile:
		out := make(Field, len(s.fixed))
		copy(out, s.fixed)
		for i := range out {
			if out[i].Color == "" {
				out[i].Color = defaultColor
			}
		}
		return out
	default:
		return nil
	}
}

// Describe renders the source for the session settings line, for
// example "none", "random(12)", or "file:layouts/cross.yaml".
func (s *Source) Describe() string {
	switch s.Mode {
	case ModeRandom:
		return fmt.Sprintf("random(%d)", s.Count)
	case ModeFile:
		return "file:" + s.Path
	default:
		return "none"
	}
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
