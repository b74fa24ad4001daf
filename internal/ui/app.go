// Package ui renders a session in a desktop window with ebiten. The app
// mirrors simulation state pushed through the arena observer and the
// session events; Draw only reads that mirror, never the engine.
package ui

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	textv2 "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"

	"github.com/nvandessel/rps-arena/internal/arena"
	"github.com/nvandessel/rps-arena/internal/colorx"
	"github.com/nvandessel/rps-arena/internal/obstacle"
	"github.com/nvandessel/rps-arena/internal/species"
)

// Config carries everything the window needs up front.
type Config struct {
	Width, Height int

	// Background is a color name, #RGB/#RRGGBB hex, or an image file
	// path. Invalid colors fall back to white; unreadable images fall
	// back to the string treated as a color.
	Background string

	// ShowStats enables the elapsed/step/counts line in the lower right.
	ShowStats bool

	Kinds  *species.Set
	Logger *slog.Logger

	// Quit is invoked once when the user closes the game with Esc or q.
	Quit func()
}

// sprite is the retained display state of one agent.
type sprite struct {
	kind species.Kind
	x, y float64
}

// App is the ebiten front end. It implements ebiten.Game plus the
// arena observer and session event interfaces; those callbacks arrive
// on the session goroutine, so every field below mu is guarded.
type App struct {
	width, height int
	showStats     bool
	logger        *slog.Logger

	bgColor   color.RGBA
	bgImage   *ebiten.Image
	textColor color.RGBA
	textName  string

	names      []string
	kindColors []color.RGBA

	face *textv2.GoTextFace

	mu          sync.Mutex
	sprites     []sprite
	field       obstacle.Field
	blockColors []color.RGBA
	step        int
	gameStart   time.Time
	countdown   int
	quit        func()
	done        bool
}

// New builds the app and resolves the background and kind colors.
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	a := &App{
		width:      cfg.Width,
		height:     cfg.Height,
		showStats:  cfg.ShowStats,
		logger:     logger,
		names:      cfg.Kinds.Names(),
		kindColors: kindColors(cfg.Kinds),
		quit:       cfg.Quit,
	}
	a.resolveBackground(cfg.Background)

	src, err := textv2.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load countdown font: %w", err)
	}
	a.face = &textv2.GoTextFace{Source: src, Size: countdownFontSize(cfg.Width, cfg.Height)}

	return a, nil
}

// resolveBackground loads an image background or parses a color one,
// then picks the overlay text color that reads over the result.
func (a *App) resolveBackground(spec string) {
	if st, err := os.Stat(spec); err == nil && !st.IsDir() {
		img, src, err := ebitenutil.NewImageFromFile(spec)
		if err == nil {
			a.bgImage = img
			a.textName = colorx.ContrastOver(colorx.Mean(src))
			a.textColor = overlayColor(a.textName)
			return
		}
		a.logger.Warn("failed to load background image, treating as color", "path", spec, "error", err)
	}

	c, err := colorx.Parse(spec)
	if err != nil {
		a.logger.Warn("invalid background color, defaulting to white", "background", spec)
		c = color.RGBA{0xff, 0xff, 0xff, 0xff}
	}
	a.bgColor = c
	a.textName = colorx.ContrastOver(c)
	a.textColor = overlayColor(a.textName)
}

// TextColorName returns "black" or "white", the overlay color picked
// against the background. The session uses it as the default color for
// random blocks.
func (a *App) TextColorName() string { return a.textName }

// Finish tells the app the session is over; the next Update closes the
// window.
func (a *App) Finish() {
	a.mu.Lock()
	a.done = true
	a.mu.Unlock()
}

// Update handles input and window shutdown. Simulation state never
// changes here; the session goroutine owns it.
func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		a.mu.Lock()
		quit := a.quit
		a.quit = nil
		a.mu.Unlock()
		if quit != nil {
			quit()
		}
		return ebiten.Termination
	}

	a.mu.Lock()
	done := a.done
	a.mu.Unlock()
	if done {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the mirrored state: background, blocks, agents, legend,
// then the overlays.
func (a *App) Draw(screen *ebiten.Image) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.drawBackground(screen)

	for i, r := range a.field {
		vector.DrawFilledRect(screen,
			float32(r.X1), float32(r.Y1),
			float32(r.X2-r.X1), float32(r.Y2-r.Y1),
			a.blockColors[i], true)
	}

	for _, s := range a.sprites {
		vector.DrawFilledCircle(screen,
			float32(s.x), float32(s.y), arena.Radius,
			a.kindColors[s.kind], true)
	}

	a.drawLegend(screen)
	if a.showStats {
		a.drawStats(screen)
	}
	if a.countdown > 0 {
		a.drawCountdown(screen)
	}
}

func (a *App) drawBackground(screen *ebiten.Image) {
	if a.bgImage == nil {
		screen.Fill(a.bgColor)
		return
	}
	b := a.bgImage.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(a.width)/float64(b.Dx()), float64(a.height)/float64(b.Dy()))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(a.bgImage, op)
}

func (a *App) drawLegend(screen *ebiten.Image) {
	for i, name := range a.names {
		y := 16 + 16*i
		vector.DrawFilledCircle(screen, 12, float32(y-4), 5, a.kindColors[i], true)
		text.Draw(screen, name, basicfont.Face7x13, 22, y, a.textColor)
	}
}

func (a *App) drawStats(screen *ebiten.Image) {
	line := statsLine(time.Since(a.gameStart), a.step, a.names, countByKind(a.sprites, len(a.names)))
	b := text.BoundString(basicfont.Face7x13, line)
	text.Draw(screen, line, basicfont.Face7x13, a.width-5-b.Dx(), a.height-5, a.textColor)
}

func (a *App) drawCountdown(screen *ebiten.Image) {
	digits := strconv.Itoa(a.countdown)
	w, h := textv2.Measure(digits, a.face, 0)
	op := &textv2.DrawOptions{}
	op.GeoM.Translate((float64(a.width)-w)/2, (float64(a.height)-h)/2)
	op.ColorScale.ScaleWithColor(a.textColor)
	textv2.Draw(screen, digits, a.face, op)
}

// Layout fixes the logical size to the play area.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

// statsLine formats the overlay: elapsed seconds, step, then one
// name:count pair per kind in kind order.
func statsLine(elapsed time.Duration, step int, names []string, counts []int) string {
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s:%d", name, counts[i])
	}
	return fmt.Sprintf("t=%.1fs step=%d %s", elapsed.Seconds(), step, strings.Join(parts, " "))
}

// countByKind tallies the display list per kind.
func countByKind(sprites []sprite, kinds int) []int {
	counts := make([]int, kinds)
	for _, s := range sprites {
		counts[s.kind]++
	}
	return counts
}

// countdownFontSize scales the countdown digit with the window: a
// quarter of the smaller dimension, clamped to [48, 220].
func countdownFontSize(width, height int) float64 {
	size := min(width, height) / 4
	if size < 48 {
		size = 48
	}
	if size > 220 {
		size = 220
	}
	return float64(size)
}

func overlayColor(name string) color.RGBA {
	if name == "black" {
		return color.RGBA{0x00, 0x00, 0x00, 0xff}
	}
	return color.RGBA{0xff, 0xff, 0xff, 0xff}
}
