package ui

import (
	"image/color"
	"time"

	"github.com/nvandessel/rps-arena/internal/colorx"
	"github.com/nvandessel/rps-arena/internal/obstacle"
	"github.com/nvandessel/rps-arena/internal/session"
	"github.com/nvandessel/rps-arena/internal/species"
)

// AgentCreated installs or replaces the sprite for id. Placement reuses
// ids from zero each game, so a new game overwrites the old display
// list in place.
func (a *App) AgentCreated(id int, kind species.Kind, x, y float64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for len(a.sprites) <= id {
		a.sprites = append(a.sprites, sprite{})
	}
	a.sprites[id] = sprite{kind: kind, x: x, y: y}
}

func (a *App) AgentMoved(id int, x, y float64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if id < len(a.sprites) {
		a.sprites[id].x = x
		a.sprites[id].y = y
	}
}

func (a *App) AgentConverted(id int, kind species.Kind) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if id < len(a.sprites) {
		a.sprites[id].kind = kind
	}
}

// GameStarted swaps in the new game's obstacle field and restarts the
// overlay clock.
func (a *App) GameStarted(game int, seed int64, field obstacle.Field) {
	colors := make([]color.RGBA, len(field))
	for i, r := range field {
		c, err := colorx.Parse(r.Color)
		if err != nil {
			c = overlayColor(a.textName)
		}
		colors[i] = c
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.field = field
	a.blockColors = colors
	a.step = 0
	a.gameStart = time.Now()
}

// CountdownTick shows remaining in the center of the window; zero hides
// it again.
func (a *App) CountdownTick(remaining int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.countdown = remaining
}

func (a *App) StepDone(step int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.step = step
}

// GameEnded keeps the final frame on screen; the session's postgame
// hold provides the pause before the next GameStarted redraws.
func (a *App) GameEnded(session.Result) {}
